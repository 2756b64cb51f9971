package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/samber/do"

	"github.com/xiaobogaga/cfront/compiler"
	"github.com/xiaobogaga/cfront/config"
)

// cfront reads a C-like or Java-like source file and prints the lexical, syntax and semantic
// analysis reports.

var (
	path          = flag.String("path", "-", "the source file to analyze, - reads stdin")
	configPath    = flag.String("config", "", "an optional toml config file")
	writeConfigTo = flag.String("write-config", "", "write the effective config to this toml file and exit")
	dialect       = flag.String("dialect", "", "the language dialect: c or java, overrides the config file")
	stage         = flag.String("stage", "", "the last stage to run: lexical, syntax, semantic or all")
	verbose       = flag.Bool("v", false, "whether log the progress of each stage")
)

func main() {
	flag.Parse()
	ok, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(2)
	}
	if !ok {
		os.Exit(1)
	}
}

func run() (bool, error) {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return false, err
	}
	if *dialect != "" {
		cfg.Dialect = *dialect
	}
	if *stage != "" {
		cfg.Stage = *stage
	}
	if err := cfg.Validate(); err != nil {
		return false, err
	}
	if *writeConfigTo != "" {
		return true, writeConfig(*writeConfigTo, cfg)
	}
	source, err := openSource(*path)
	if err != nil {
		return false, err
	}
	defer source.Close()
	logOutput := io.Discard
	if *verbose {
		logOutput = os.Stderr
	}
	injector := newInjector(cfg, logOutput)
	c, err := do.Invoke[*compiler.Compiler](injector)
	if err != nil {
		return false, err
	}
	return analyze(c, source, cfg.Stage, os.Stdout)
}

// writeConfig saves cfg after checking that its dialect exists.
func writeConfig(path string, cfg *config.Config) error {
	if _, err := compiler.DialectByName(cfg.Dialect); err != nil {
		return err
	}
	return config.Save(path, cfg)
}

func openSource(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %s, err: %w", path, err)
	}
	return file, nil
}
