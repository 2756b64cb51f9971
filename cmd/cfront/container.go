package main

import (
	"io"
	"log"

	"github.com/samber/do"

	"github.com/xiaobogaga/cfront/compiler"
	"github.com/xiaobogaga/cfront/config"
)

// newInjector registers every stage of the pipeline. Services are built lazily on first invoke.
func newInjector(cfg *config.Config, logOutput io.Writer) *do.Injector {
	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, log.New(logOutput, "cfront: ", 0))

	do.Provide(injector, func(i *do.Injector) (*compiler.Dialect, error) {
		cfg := do.MustInvoke[*config.Config](i)
		dialect, err := compiler.DialectByName(cfg.Dialect)
		if err != nil {
			return nil, err
		}
		return dialect.WithKeywords(cfg.ExtraKeywords...), nil
	})
	do.Provide(injector, func(i *do.Injector) (*compiler.Tokenizer, error) {
		dialect, err := do.Invoke[*compiler.Dialect](i)
		if err != nil {
			return nil, err
		}
		return compiler.NewTokenizer(dialect), nil
	})
	do.Provide(injector, func(i *do.Injector) (*compiler.Parser, error) {
		dialect, err := do.Invoke[*compiler.Dialect](i)
		if err != nil {
			return nil, err
		}
		return compiler.NewParser(dialect), nil
	})
	do.Provide(injector, func(i *do.Injector) (*compiler.SemanticChecker, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return compiler.NewSemanticChecker(cfg.ExtraBuiltins...), nil
	})
	do.Provide(injector, func(i *do.Injector) (*compiler.Compiler, error) {
		tokenizer, err := do.Invoke[*compiler.Tokenizer](i)
		if err != nil {
			return nil, err
		}
		parser, err := do.Invoke[*compiler.Parser](i)
		if err != nil {
			return nil, err
		}
		checker, err := do.Invoke[*compiler.SemanticChecker](i)
		if err != nil {
			return nil, err
		}
		return compiler.NewCompiler(tokenizer, parser, checker, do.MustInvoke[*log.Logger](i)), nil
	})
	return injector
}
