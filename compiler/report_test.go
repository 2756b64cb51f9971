package compiler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTokens(t *testing.T) {
	assert.Equal(t, "No tokens found.", FormatTokens(nil))

	report := FormatTokens(NewTokenizer(CDialect).Tokenize("int x = 5;\nint y;"))
	assert.True(t, strings.HasPrefix(report, "LEXICAL ANALYSIS RESULTS\n"+strings.Repeat("=", 60)+"\n"))
	for _, s := range []string{
		"Total Tokens: 8",
		"KEYWORDs (2):",
		"IDENTIFIERs (2):",
		"OPERATORs (1):",
		"NUMBERs (1):",
		"SEPARATORs (2):",
		`  Line 1: "int"`,
		`  Line 2: "y"`,
	} {
		assert.Contains(t, report, s)
	}
	// Groups follow the order in which their kind first appears.
	assert.Less(t, strings.Index(report, "KEYWORDs"), strings.Index(report, "IDENTIFIERs"))
	assert.Less(t, strings.Index(report, "IDENTIFIERs"), strings.Index(report, "OPERATORs"))
	assert.Less(t, strings.Index(report, "NUMBERs"), strings.Index(report, "SEPARATORs"))
}

func TestFormatSyntax(t *testing.T) {
	parser := NewParser(CDialect)
	tokenizer := NewTokenizer(CDialect)

	report := FormatSyntax(parser.Validate(tokenizer.Tokenize("int x = 5;\nint y;\nf(x);")))
	assert.Contains(t, report, "SYNTAX ANALYSIS RESULTS")
	assert.Contains(t, report, "✓ Syntax analysis completed successfully!")
	assert.Contains(t, report, "Parse Tree Nodes:")
	assert.Contains(t, report, "  VARIABLE_DECLARATION: 2\n")
	assert.Contains(t, report, "  FUNCTION_CALL: 1\n")
	assert.NotContains(t, report, "ERRORS")

	report = FormatSyntax(parser.Validate(tokenizer.Tokenize("if (a > 0 { return 1; }\nint b = 2")))
	assert.Contains(t, report, "SYNTAX ANALYSIS ERRORS")
	assert.Contains(t, report, "Found 2 error(s):")
	assert.Contains(t, report, "1. Line 1: Expected SEPARATOR ')', but got SEPARATOR '{'\n")
	assert.Contains(t, report, "2. Line EOF: Expected SEPARATOR ';', but got end of file\n")
}

func TestFormatSemantic(t *testing.T) {
	checker := NewSemanticChecker()
	tokenizer := NewTokenizer(CDialect)

	report := FormatSemantic(checker.Check(tokenizer.Tokenize("int add(int a, int b) { return a + b; }\nint x = 5.5;")))
	for _, s := range []string{
		"SEMANTIC ANALYSIS RESULTS",
		"✓ Semantic analysis completed successfully!",
		"Symbol Table:",
		"  x (int) - Line 2\n    Initialized: Yes\n    Used: No\n",
		"Functions:",
		"  add(int a, int b) int - Line 1\n    Called: Yes\n",
		"Warnings:",
		"1. Line 2: Implicit conversion from float to int for variable 'x'",
		"2. Line 2: Variable 'x' is declared but never used",
	} {
		assert.Contains(t, report, s)
	}

	report = FormatSemantic(checker.Check(tokenizer.Tokenize("printf(\"hi\");")))
	assert.Contains(t, report, "  No variables found")
	assert.NotContains(t, report, "Functions:")
	assert.NotContains(t, report, "Warnings:")

	report = FormatSemantic(checker.Check(tokenizer.Tokenize("int x = 1; int x = 2;\ny = 2;")))
	for _, s := range []string{
		"Found 2 error(s):",
		"1. Line 1: Variable 'x' is already declared in this scope",
		"2. Line 2: Variable 'y' is not declared",
		"Warnings:",
		"1. Line 1: Variable 'x' is declared but never used",
	} {
		assert.Contains(t, report, s)
	}
	assert.NotContains(t, report, "Symbol Table:")
}

func TestDiagnostic_String(t *testing.T) {
	testData := []struct {
		diagnostic *Diagnostic
		expected   string
	}{
		{diagnostic: newDiagnostic(3, "Variable '%s' is not declared", "y"), expected: "Line 3: Variable 'y' is not declared"},
		{diagnostic: newDiagnostic(EndOfFileLine, "eof"), expected: "Line EOF: eof"},
		{diagnostic: newDiagnostic(UnknownLine, "boom"), expected: "Line N/A: boom"},
	}
	for _, data := range testData {
		assert.Equal(t, data.expected, data.diagnostic.String())
	}
}
