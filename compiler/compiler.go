package compiler

import (
	"errors"
	"io"
	"log"
)

var (
	ErrNoTokens        = errors.New("no tokens, run lexical analysis on non-empty source first")
	ErrSyntaxNotPassed = errors.New("syntax analysis has not passed for the current tokens")
)

// Compiler runs the three stages over one source text. Syntax analysis needs tokens from Lex,
// semantic analysis needs a successful syntax analysis of those same tokens.
type Compiler struct {
	tokenizer *Tokenizer
	parser    *Parser
	checker   *SemanticChecker
	logger    *log.Logger

	tokens       []*Token
	syntaxPassed bool
}

func NewCompiler(tokenizer *Tokenizer, parser *Parser, checker *SemanticChecker, logger *log.Logger) *Compiler {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Compiler{
		tokenizer: tokenizer,
		parser:    parser,
		checker:   checker,
		logger:    logger,
	}
}

// Lex tokenizes the source read from rd and starts a new run, forgetting the results of the
// previous one.
func (compiler *Compiler) Lex(rd io.Reader) ([]*Token, error) {
	compiler.logger.Printf("start lexical analysis with dialect %s", compiler.tokenizer.Dialect().Name)
	compiler.tokens, compiler.syntaxPassed = nil, false
	tokens, err := compiler.tokenizer.TokenizeReader(rd)
	if err != nil {
		return nil, err
	}
	compiler.tokens = tokens
	compiler.logger.Printf("lexical analysis produced %d tokens", len(tokens))
	return tokens, nil
}

func (compiler *Compiler) Validate() (*SyntaxResult, error) {
	if len(compiler.tokens) == 0 {
		return nil, ErrNoTokens
	}
	compiler.logger.Printf("start syntax analysis")
	result := compiler.parser.Validate(compiler.tokens)
	compiler.syntaxPassed = result.Success
	compiler.logger.Printf("syntax analysis finished: %d constructs, %d errors", len(result.Constructs), len(result.Errors))
	return result, nil
}

func (compiler *Compiler) Check() (*SemanticResult, error) {
	if len(compiler.tokens) == 0 {
		return nil, ErrNoTokens
	}
	if !compiler.syntaxPassed {
		return nil, ErrSyntaxNotPassed
	}
	compiler.logger.Printf("start semantic analysis")
	result := compiler.checker.Check(compiler.tokens)
	compiler.logger.Printf("semantic analysis finished: %d errors, %d warnings", len(result.Errors), len(result.Warnings))
	return result, nil
}
