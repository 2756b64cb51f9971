package compiler

import "strings"

// The semantic checker works on the token sequence directly and never looks at the syntax
// analyzer's constructs. It makes several passes over the same tokens:
// * buildSymbolTable: registers variables and functions, reports redeclarations.
// * checkTypeCompatibility: looks at the token right after each '=' and tracks initialization and use.
// * checkUndeclaredVariables: reports names that are neither declared nor builtin.
// * checkFunctionCalls: marks called functions as used.
// * checkUnusedVariables: warns about initialized variables nobody reads.

// declarableTypes start a variable or function declaration.
var declarableTypes = newSet("int", "float", "double", "char", "void", "boolean", "byte", "short", "long", "String")

// declaringTypes are the types whose following identifier is not checked for existence.
var declaringTypes = newSet("int", "float", "double", "char", "void", "boolean", "String")

// skippedNames are never reported as undeclared.
var skippedNames = newSet(
	"int", "float", "double", "char", "void", "if", "else", "while",
	"for", "return", "break", "continue", "printf", "scanf", "include", "main",
	"import", "package", "class", "public", "private", "protected", "static",
	"new", "this", "super", "boolean", "byte", "short", "long", "String",
	"true", "false", "null",
)

// DefaultBuiltins are runtime and library names of both dialects assumed to exist.
var DefaultBuiltins = []string{
	"printf", "scanf", "main", "stdio", "stdlib", "string", "math",
	"System", "Scanner", "String", "Math", "Object", "Integer",
	"Double", "Float", "Boolean", "Character", "out", "in", "err",
	"java", "util", "io", "lang", "ArrayList", "List", "Map", "Set",
	"println", "print", "next", "nextInt", "nextLine", "nextDouble",
	"length", "size", "add", "remove", "get", "set", "toString",
	"equals", "hashCode", "close",
}

type SemanticResult struct {
	Success   bool
	Message   string
	Symbols   []*Symbol
	Functions []*Function
	Errors    []*Diagnostic
	Warnings  []*Diagnostic
}

const semanticSuccessMessage = "Semantic analysis completed successfully!"

type SemanticChecker struct {
	builtins        map[string]bool
	tokens          []*Token
	currentScope    string
	symbolTable     *SymbolTable
	functionTable   *FunctionTable
	parameterScopes []*parameterScope
	errors          []*Diagnostic
	warnings        []*Diagnostic
}

// parameterScope is the token span from a function's '(' to the end of its body, or to its ')'
// when it has none. The function's parameter names are declared inside the span only.
type parameterScope struct {
	names      map[string]bool
	start, end int
}

// NewSemanticChecker returns a checker that also accepts extraBuiltins as declared names.
func NewSemanticChecker(extraBuiltins ...string) *SemanticChecker {
	builtins := newSet(DefaultBuiltins...)
	for _, name := range extraBuiltins {
		builtins[name] = true
	}
	return &SemanticChecker{builtins: builtins}
}

func (checker *SemanticChecker) reset(tokens []*Token) {
	if checker.builtins == nil {
		checker.builtins = newSet(DefaultBuiltins...)
	}
	checker.tokens = tokens
	checker.currentScope = GlobalScope
	checker.symbolTable = NewSymbolTable()
	checker.functionTable = NewFunctionTable()
	checker.parameterScopes = nil
	checker.errors, checker.warnings = nil, nil
}

// Check runs every pass over tokens. The result does not share state with the checker, so the
// checker can be reused.
func (checker *SemanticChecker) Check(tokens []*Token) *SemanticResult {
	checker.reset(tokens)
	checker.buildSymbolTable()
	checker.checkTypeCompatibility()
	checker.checkUndeclaredVariables()
	checker.checkFunctionCalls()
	checker.checkUnusedVariables()

	result := &SemanticResult{
		Symbols:   checker.symbolTable.snapshot(),
		Functions: checker.functionTable.snapshot(),
		Errors:    checker.errors,
		Warnings:  checker.warnings,
	}
	if len(checker.errors) == 0 {
		result.Success, result.Message = true, semanticSuccessMessage
	}
	return result
}

func (checker *SemanticChecker) tokenAt(i int) *Token {
	if i < 0 || i >= len(checker.tokens) {
		return nil
	}
	return checker.tokens[i]
}

func (checker *SemanticChecker) addError(line int, format string, args ...interface{}) {
	checker.errors = append(checker.errors, newDiagnostic(line, format, args...))
}

func (checker *SemanticChecker) addWarning(line int, format string, args ...interface{}) {
	checker.warnings = append(checker.warnings, newDiagnostic(line, format, args...))
}

// skipDirective skips an import / include statement through its ';', or a '#' header line through
// its '>'. It returns the index to continue from and whether anything was skipped.
func (checker *SemanticChecker) skipDirective(i int) (int, bool) {
	token := checker.tokens[i]
	switch {
	case token.Is(KeywordKind, "import"), token.Is(KeywordKind, "include"):
		return checker.skipPast(i, SeparatorKind, ";", false), true
	case token.Is(SeparatorKind, "#"):
		return checker.skipPast(i, OperatorKind, ">", true), true
	}
	return i, false
}

// skipPast returns the index after the first token at or after i matching kind and content.
// With sameLine the search gives up at the first token on a later line.
func (checker *SemanticChecker) skipPast(i int, kind TokenKind, content string, sameLine bool) int {
	line := checker.tokens[i].Line
	for ; i < len(checker.tokens); i++ {
		token := checker.tokens[i]
		if sameLine && token.Line != line {
			return i
		}
		if token.Is(kind, content) {
			return i + 1
		}
	}
	return i
}

func (checker *SemanticChecker) buildSymbolTable() {
	i := 0
	for i < len(checker.tokens) {
		if next, skipped := checker.skipDirective(i); skipped {
			i = next
			continue
		}
		token := checker.tokens[i]
		i++
		if token.Kind != KeywordKind || !declarableTypes[token.Content] {
			continue
		}
		identifier := checker.tokenAt(i)
		if !identifier.Is(IdentifierKind, "") {
			continue
		}
		i++
		if checker.tokenAt(i).Is(SeparatorKind, "(") {
			i = checker.declareFunction(token.Content, identifier, i+1)
			continue
		}
		checker.declareVariable(token.Content, identifier, checker.tokenAt(i).Is(OperatorKind, "="))
	}
}

// declareFunction registers the function and its parameters, where i is the index right after '('.
// It returns the index of the closing ')'.
func (checker *SemanticChecker) declareFunction(returnType string, identifier *Token, i int) int {
	function := &Function{Name: identifier.Content, ReturnType: returnType, Line: identifier.Line}
	start := i - 1
	var group []*Token
	for ; i < len(checker.tokens) && !checker.tokens[i].Is(SeparatorKind, ")"); i++ {
		if checker.tokens[i].Is(SeparatorKind, ",") {
			function.addParameter(group)
			group = nil
			continue
		}
		group = append(group, checker.tokens[i])
	}
	function.addParameter(group)
	if !checker.functionTable.declare(function) {
		checker.addError(identifier.Line, "Function '%s' is already declared", identifier.Content)
	}
	if len(function.Parameters) > 0 {
		scope := &parameterScope{names: map[string]bool{}, start: start, end: checker.bodyEnd(i)}
		for _, param := range function.Parameters {
			scope.names[param.Name] = true
		}
		checker.parameterScopes = append(checker.parameterScopes, scope)
	}
	return i
}

// bodyEnd returns the index of the '}' closing the body that starts after the ')' at i, the last
// index when that body is unterminated, or i when no body follows.
func (checker *SemanticChecker) bodyEnd(i int) int {
	if !checker.tokenAt(i + 1).Is(SeparatorKind, "{") {
		return i
	}
	depth := 0
	for j := i + 1; j < len(checker.tokens); j++ {
		switch {
		case checker.tokens[j].Is(SeparatorKind, "{"):
			depth++
		case checker.tokens[j].Is(SeparatorKind, "}"):
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return len(checker.tokens) - 1
}

// isParameterAt reports whether name is a parameter of a function whose span holds index i.
func (checker *SemanticChecker) isParameterAt(name string, i int) bool {
	for _, scope := range checker.parameterScopes {
		if scope.start <= i && i <= scope.end && scope.names[name] {
			return true
		}
	}
	return false
}

// addParameter takes the tokens of one parameter, like "int a" or "String[] args", and records
// the last identifier as its name and the first token as its type.
func (function *Function) addParameter(tokens []*Token) {
	if len(tokens) < 2 {
		return
	}
	for j := len(tokens) - 1; j > 0; j-- {
		if tokens[j].Kind == IdentifierKind {
			function.Parameters = append(function.Parameters, &Parameter{Type: tokens[0].Content, Name: tokens[j].Content})
			return
		}
	}
}

func (checker *SemanticChecker) declareVariable(tp string, identifier *Token, initialized bool) {
	symbol := &Symbol{
		Scope: checker.currentScope,
		Name:  identifier.Content,
		Type:  tp,
		Line:  identifier.Line,
	}
	if !checker.symbolTable.declare(symbol) {
		checker.addError(identifier.Line, "Variable '%s' is already declared in this scope", identifier.Content)
		// An initializer on the redeclaration still initializes the first declaration.
		symbol = checker.symbolTable.lookUp(symbol.Scope, symbol.Name)
	}
	if initialized {
		symbol.Initialized = true
	}
}

func (checker *SemanticChecker) markUsed(name string) {
	if symbol := checker.symbolTable.resolve(checker.currentScope, name); symbol != nil {
		symbol.Used = true
	}
}

func (checker *SemanticChecker) checkTypeCompatibility() {
	for i := 0; i < len(checker.tokens); i++ {
		token := checker.tokens[i]
		if token.Kind != IdentifierKind {
			continue
		}
		symbol := checker.symbolTable.resolve(checker.currentScope, token.Content)
		if symbol == nil {
			continue
		}
		if !checker.tokenAt(i + 1).Is(OperatorKind, "=") {
			symbol.Used = true
			continue
		}
		i += 2
		value := checker.tokenAt(i)
		if value == nil {
			continue
		}
		checker.checkAssignment(token, symbol, value)
		// Every identifier up to the end of the statement is read by the assignment.
		for ; i < len(checker.tokens) && !checker.tokens[i].Is(SeparatorKind, ";"); i++ {
			if checker.tokens[i].Kind == IdentifierKind {
				checker.markUsed(checker.tokens[i].Content)
			}
		}
	}
}

// checkAssignment compares the first token of the assigned value against the symbol's type.
func (checker *SemanticChecker) checkAssignment(target *Token, symbol *Symbol, value *Token) {
	switch value.Kind {
	case NumberKind:
		if symbol.Type == "int" && strings.Contains(value.Content, ".") {
			checker.addWarning(target.Line, "Implicit conversion from float to int for variable '%s'", target.Content)
		}
	case CharLiteralKind:
		if symbol.Type != "char" {
			checker.addError(target.Line, "Type mismatch: Cannot assign char to %s variable '%s'",
				symbol.Type, target.Content)
		}
	case StringLiteralKind:
		if symbol.Type != "char" && symbol.Type != "String" {
			checker.addWarning(target.Line, "Assigning string literal to %s variable '%s'", symbol.Type, target.Content)
		}
	case IdentifierKind:
		checker.markUsed(value.Content)
	default:
		return
	}
	symbol.Initialized = true
}

func (checker *SemanticChecker) checkUndeclaredVariables() {
	i := 0
	for i < len(checker.tokens) {
		if next, skipped := checker.skipDirective(i); skipped {
			i = next
			continue
		}
		token := checker.tokens[i]
		if token.Kind == IdentifierKind && checker.tokenAt(i+1).Is(SeparatorKind, ".") {
			i = checker.skipMemberAccess(i)
			continue
		}
		if token.Kind == IdentifierKind && !skippedNames[token.Content] && !checker.builtins[token.Content] {
			checker.checkDeclared(i)
		}
		i++
	}
}

// skipMemberAccess skips a qualified reference like System.out.println and returns the index after it.
func (checker *SemanticChecker) skipMemberAccess(i int) int {
	for ; i < len(checker.tokens); i++ {
		token := checker.tokens[i]
		if token.Kind != IdentifierKind && !token.Is(SeparatorKind, ".") {
			break
		}
	}
	return i
}

func (checker *SemanticChecker) checkDeclared(i int) {
	token := checker.tokens[i]
	previous := checker.tokenAt(i - 1)
	if previous != nil && previous.Kind == KeywordKind && declaringTypes[previous.Content] {
		return
	}
	if previous.Is(SeparatorKind, ".") {
		return
	}
	if checker.tokenAt(i + 1).Is(SeparatorKind, "(") {
		if checker.functionTable.lookUp(token.Content) == nil {
			checker.addError(token.Line, "Function '%s' is not declared", token.Content)
		}
		return
	}
	if checker.symbolTable.resolve(checker.currentScope, token.Content) == nil &&
		checker.functionTable.lookUp(token.Content) == nil &&
		!checker.isParameterAt(token.Content, i) {
		checker.addError(token.Line, "Variable '%s' is not declared", token.Content)
	}
}

func (checker *SemanticChecker) checkFunctionCalls() {
	for i, token := range checker.tokens {
		if token.Kind != IdentifierKind || !checker.tokenAt(i+1).Is(SeparatorKind, "(") {
			continue
		}
		if function := checker.functionTable.lookUp(token.Content); function != nil {
			function.Used = true
		}
	}
}

// checkUnusedVariables warns about symbols that got a value but are never read. Symbols that were
// never initialized are not reported.
func (checker *SemanticChecker) checkUnusedVariables() {
	for _, symbol := range checker.symbolTable.Symbols() {
		if symbol.Initialized && !symbol.Used {
			checker.addWarning(symbol.Line, "Variable '%s' is declared but never used", symbol.Name)
		}
	}
}
