package main

import (
	"fmt"
	"io"

	"github.com/xiaobogaga/cfront/compiler"
	"github.com/xiaobogaga/cfront/config"
)

// analyze runs the stages up to stage and writes each report to out. A later stage only runs when
// the one before it allows it. It returns whether the last stage that ran succeeded.
func analyze(c *compiler.Compiler, source io.Reader, stage string, out io.Writer) (bool, error) {
	tokens, err := c.Lex(source)
	if err != nil {
		return false, err
	}
	fmt.Fprintln(out, compiler.FormatTokens(tokens))
	if stage == config.StageLexical || len(tokens) == 0 {
		return true, nil
	}

	syntaxResult, err := c.Validate()
	if err != nil {
		return false, err
	}
	fmt.Fprintln(out, compiler.FormatSyntax(syntaxResult))
	if stage == config.StageSyntax {
		return syntaxResult.Success, nil
	}
	if !syntaxResult.Success {
		fmt.Fprintln(out, "Semantic analysis skipped: fix the syntax errors first.")
		return false, nil
	}

	semanticResult, err := c.Check()
	if err != nil {
		return false, err
	}
	fmt.Fprintln(out, compiler.FormatSemantic(semanticResult))
	return semanticResult.Success, nil
}
