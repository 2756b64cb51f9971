// Package config loads the analyzer settings from an optional TOML file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const (
	StageLexical  = "lexical"
	StageSyntax   = "syntax"
	StageSemantic = "semantic"
	StageAll      = "all"
)

type Config struct {
	Dialect       string   `toml:"dialect"`
	Stage         string   `toml:"stage"`
	ExtraKeywords []string `toml:"extra_keywords"`
	ExtraBuiltins []string `toml:"extra_builtins"`
}

func Default() *Config {
	return &Config{Dialect: "c", Stage: StageAll}
}

// Load reads path on top of the defaults. An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (cfg *Config) Validate() error {
	cfg.Stage = strings.ToLower(strings.TrimSpace(cfg.Stage))
	switch cfg.Stage {
	case "":
		cfg.Stage = StageAll
	case StageLexical, StageSyntax, StageSemantic, StageAll:
	default:
		return fmt.Errorf("unknown stage: %s", cfg.Stage)
	}
	if strings.TrimSpace(cfg.Dialect) == "" {
		cfg.Dialect = "c"
	}
	return nil
}

// Save writes cfg to path as TOML.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
