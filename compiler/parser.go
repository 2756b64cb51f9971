package compiler

import (
	"fmt"
	"strings"
)

// The syntax analyzer does not build a tree. Every rule that completes appends one Construct,
// so a nested statement is recorded before the statement enclosing it.

type ConstructKind int

const (
	PreprocessorConstruct        ConstructKind = iota // #include <stdio.h>
	FunctionDeclarationConstruct                      // int add(int a, int b) { ... }
	VariableDeclarationConstruct                      // int a = 1, b;
	IfStatementConstruct                              // if (a) { ... } else ...
	WhileStatementConstruct                           // while (a) ...
	ForStatementConstruct                             // for (;;) ...
	ReturnStatementConstruct                          // return a;
	FunctionCallConstruct                             // print(a, b);
	AssignmentConstruct                               // a += 1;
)

var constructKindNames = map[ConstructKind]string{
	PreprocessorConstruct:        "PREPROCESSOR",
	FunctionDeclarationConstruct: "FUNCTION_DECLARATION",
	VariableDeclarationConstruct: "VARIABLE_DECLARATION",
	IfStatementConstruct:         "IF_STATEMENT",
	WhileStatementConstruct:      "WHILE_STATEMENT",
	ForStatementConstruct:        "FOR_STATEMENT",
	ReturnStatementConstruct:     "RETURN_STATEMENT",
	FunctionCallConstruct:        "FUNCTION_CALL",
	AssignmentConstruct:          "ASSIGNMENT",
}

func (kind ConstructKind) String() string {
	name, ok := constructKindNames[kind]
	if !ok {
		return fmt.Sprintf("ConstructKind(%d)", int(kind))
	}
	return name
}

// Construct is a recognized syntactic form. Name is the declared or called identifier, or the
// header of an include, and is empty for control statements.
type Construct struct {
	Kind ConstructKind
	Name string
	Line int
}

type SyntaxResult struct {
	Success    bool
	Message    string
	Constructs []*Construct
	Errors     []*Diagnostic
}

const syntaxSuccessMessage = "Syntax analysis completed successfully!"

type Parser struct {
	dialect         *Dialect
	currentTokenPos int
	currentTokens   []*Token
	constructs      []*Construct
	errors          []*Diagnostic
}

func NewParser(dialect *Dialect) *Parser {
	if dialect == nil {
		dialect = CDialect
	}
	return &Parser{dialect: dialect}
}

func (parser *Parser) reset(tokens []*Token) {
	parser.currentTokenPos, parser.currentTokens = 0, tokens
	parser.constructs, parser.errors = nil, nil
	if parser.dialect == nil {
		parser.dialect = CDialect
	}
}

// Validate walks tokens statement by statement. A failed expectation is recorded and parsing
// goes on from the same token; tokens no rule starts with are skipped.
func (parser *Parser) Validate(tokens []*Token) (result *SyntaxResult) {
	parser.reset(tokens)
	defer func() {
		if r := recover(); r != nil {
			result = &SyntaxResult{
				Errors: append(parser.errors, newDiagnostic(UnknownLine, "%v", r)),
			}
		}
	}()
	for parser.hasRemainTokens() {
		parser.parseStatement()
	}
	if len(parser.errors) > 0 {
		return &SyntaxResult{Errors: parser.errors}
	}
	return &SyntaxResult{
		Success:    true,
		Message:    syntaxSuccessMessage,
		Constructs: parser.constructs,
	}
}

func (parser *Parser) hasRemainTokens() bool {
	return parser.currentTokenPos < len(parser.currentTokens)
}

func (parser *Parser) currentToken() *Token {
	if !parser.hasRemainTokens() {
		return nil
	}
	return parser.currentTokens[parser.currentTokenPos]
}

func (parser *Parser) stepForward() {
	parser.currentTokenPos++
}

// match reports whether the current token has kind and, if content is not empty, that content.
func (parser *Parser) match(kind TokenKind, content string) bool {
	return parser.currentToken().Is(kind, content)
}

func (parser *Parser) matchSeparator(content string) bool {
	return parser.match(SeparatorKind, content)
}

// expect consumes the current token if it matches. Otherwise it records an error and returns nil
// without moving, so the caller continues from the offending token.
func (parser *Parser) expect(kind TokenKind, content string) *Token {
	if parser.match(kind, content) {
		token := parser.currentToken()
		parser.stepForward()
		return token
	}
	expected := kind.String()
	if content != "" {
		expected = fmt.Sprintf("%s '%s'", kind, content)
	}
	token := parser.currentToken()
	if token == nil {
		parser.errors = append(parser.errors, newDiagnostic(EndOfFileLine,
			"Expected %s, but got end of file", expected))
		return nil
	}
	parser.errors = append(parser.errors, newDiagnostic(token.Line, "Expected %s, but got %s", expected, token))
	return nil
}

func (parser *Parser) addConstruct(kind ConstructKind, name string, line int) {
	parser.constructs = append(parser.constructs, &Construct{Kind: kind, Name: name, Line: line})
}

func (parser *Parser) parseStatement() {
	if !parser.hasRemainTokens() {
		return
	}
	token := parser.currentToken()
	switch token.Kind {
	case SeparatorKind:
		if token.Content == "#" {
			parser.parsePreprocessor()
			return
		}
		parser.stepForward()
	case KeywordKind:
		switch {
		case parser.dialect.isDeclarationType(token.Content):
			parser.parseDeclaration()
		case token.Content == "if":
			parser.parseIfStatement()
		case token.Content == "while":
			parser.parseWhileStatement()
		case token.Content == "for":
			parser.parseForStatement()
		case token.Content == "return":
			parser.parseReturnStatement()
		default:
			parser.stepForward()
		}
	case IdentifierKind:
		parser.parseAssignmentOrFunctionCall()
	default:
		parser.stepForward()
	}
}

// #include <header> or #include "header". Other directives are recorded without their arguments.
func (parser *Parser) parsePreprocessor() {
	hash := parser.currentToken()
	parser.expect(SeparatorKind, "#")
	header := ""
	if parser.match(KeywordKind, "include") {
		parser.stepForward()
		header = parser.parseHeaderReference(hash.Line)
	}
	parser.addConstruct(PreprocessorConstruct, header, hash.Line)
}

// parseHeaderReference consumes a quoted header, or an angle bracketed one up to the closing '>'
// on the directive's line.
func (parser *Parser) parseHeaderReference(line int) string {
	if parser.match(StringLiteralKind, "") {
		header := parser.currentToken().Content
		parser.stepForward()
		return strings.Trim(header, `"`)
	}
	if !parser.match(OperatorKind, "<") {
		return ""
	}
	parser.stepForward()
	var header strings.Builder
	for token := parser.currentToken(); token != nil && token.Line == line; token = parser.currentToken() {
		parser.stepForward()
		if token.Is(OperatorKind, ">") {
			break
		}
		header.WriteString(token.Content)
	}
	return header.String()
}

// type identifier ( params ) { body }   or   type identifier [= expr] {, identifier [= expr]} ;
func (parser *Parser) parseDeclaration() {
	parser.stepForward()
	if !parser.match(IdentifierKind, "") {
		return
	}
	identifier := parser.currentToken()
	parser.stepForward()
	if parser.matchSeparator("(") {
		parser.parseFunctionDeclaration(identifier)
		return
	}
	parser.parseVariableDeclaration(identifier)
}

func (parser *Parser) parseFunctionDeclaration(identifier *Token) {
	parser.expect(SeparatorKind, "(")
	// Parameters are not checked, the list ends at ')' or at a token that cannot be inside it.
	for parser.hasRemainTokens() && !parser.matchSeparator(")") && !parser.matchSeparator("{") &&
		!parser.matchSeparator("}") && !parser.matchSeparator(";") {
		parser.stepForward()
	}
	parser.expect(SeparatorKind, ")")
	if parser.matchSeparator("{") {
		parser.stepForward()
		parser.parseBlock()
	} else if parser.matchSeparator(";") {
		parser.stepForward()
	}
	parser.addConstruct(FunctionDeclarationConstruct, identifier.Content, identifier.Line)
}

func (parser *Parser) parseVariableDeclaration(identifier *Token) {
	if parser.match(OperatorKind, "=") {
		parser.stepForward()
		parser.parseExpression()
	}
	for parser.matchSeparator(",") {
		parser.stepForward()
		if !parser.match(IdentifierKind, "") {
			continue
		}
		parser.stepForward()
		if parser.match(OperatorKind, "=") {
			parser.stepForward()
			parser.parseExpression()
		}
	}
	parser.expect(SeparatorKind, ";")
	parser.addConstruct(VariableDeclarationConstruct, identifier.Content, identifier.Line)
}

// parseBody parses either a braced block or a single statement.
func (parser *Parser) parseBody() {
	if parser.matchSeparator("{") {
		parser.stepForward()
		parser.parseBlock()
		return
	}
	parser.parseStatement()
}

func (parser *Parser) parseIfStatement() {
	line := parser.currentToken().Line
	parser.expect(KeywordKind, "if")
	parser.parseCondition()
	parser.parseBody()
	if parser.match(KeywordKind, "else") {
		parser.stepForward()
		parser.parseBody()
	}
	parser.addConstruct(IfStatementConstruct, "", line)
}

func (parser *Parser) parseWhileStatement() {
	line := parser.currentToken().Line
	parser.expect(KeywordKind, "while")
	parser.parseCondition()
	parser.parseBody()
	parser.addConstruct(WhileStatementConstruct, "", line)
}

// ( expression )
func (parser *Parser) parseCondition() {
	parser.expect(SeparatorKind, "(")
	parser.parseExpression()
	parser.expect(SeparatorKind, ")")
}

// for ( [init] ; [condition] ; [update] ) body
func (parser *Parser) parseForStatement() {
	line := parser.currentToken().Line
	parser.expect(KeywordKind, "for")
	parser.expect(SeparatorKind, "(")
	if !parser.matchSeparator(";") {
		parser.parseExpression()
	}
	parser.expect(SeparatorKind, ";")
	if !parser.matchSeparator(";") {
		parser.parseExpression()
	}
	parser.expect(SeparatorKind, ";")
	if !parser.matchSeparator(")") {
		parser.parseExpression()
	}
	parser.expect(SeparatorKind, ")")
	parser.parseBody()
	parser.addConstruct(ForStatementConstruct, "", line)
}

func (parser *Parser) parseReturnStatement() {
	line := parser.currentToken().Line
	parser.expect(KeywordKind, "return")
	if !parser.matchSeparator(";") {
		parser.parseExpression()
	}
	parser.expect(SeparatorKind, ";")
	parser.addConstruct(ReturnStatementConstruct, "", line)
}

// identifier ( args ) ;   or   identifier operator expression ;
// Any other continuation, such as a member access, records nothing.
func (parser *Parser) parseAssignmentOrFunctionCall() {
	identifier := parser.currentToken()
	parser.stepForward()
	switch {
	case parser.matchSeparator("("):
		parser.stepForward()
		parser.parseArguments()
		parser.expect(SeparatorKind, ")")
		parser.expect(SeparatorKind, ";")
		parser.addConstruct(FunctionCallConstruct, identifier.Content, identifier.Line)
	case parser.match(OperatorKind, ""):
		parser.stepForward()
		parser.parseExpression()
		parser.expect(SeparatorKind, ";")
		parser.addConstruct(AssignmentConstruct, identifier.Content, identifier.Line)
	}
}

func (parser *Parser) parseArguments() {
	for parser.hasRemainTokens() && !parser.matchSeparator(")") {
		if parser.matchSeparator(",") {
			parser.stepForward()
			continue
		}
		parser.parseExpression()
		if !parser.matchSeparator(",") && !parser.matchSeparator(")") {
			return
		}
	}
}

// parseBlock parses statements up to and including the closing '}'.
func (parser *Parser) parseBlock() {
	for parser.hasRemainTokens() && !parser.matchSeparator("}") {
		parser.parseStatement()
	}
	parser.expect(SeparatorKind, "}")
}

// parseExpression skips an expression without looking at its structure. It stops before an
// unmatched ')', or before ';' ',' '{' '}' when no parenthesis is open.
func (parser *Parser) parseExpression() {
	depth := 0
	for token := parser.currentToken(); token != nil; token = parser.currentToken() {
		if token.Kind == SeparatorKind {
			switch token.Content {
			case "(":
				depth++
			case ")":
				if depth == 0 {
					return
				}
				depth--
			case ";", ",", "{", "}":
				if depth == 0 {
					return
				}
			}
		}
		parser.stepForward()
	}
}
