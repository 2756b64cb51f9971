package compiler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tok(kind TokenKind, content string, line int) *Token {
	return &Token{Kind: kind, Content: content, Line: line}
}

func TestTokenizer_Tokenize(t *testing.T) {
	testData := []struct {
		content        string
		expectedTokens []*Token
	}{
		{
			content: "int x = 5;",
			expectedTokens: []*Token{
				tok(KeywordKind, "int", 1), tok(IdentifierKind, "x", 1), tok(OperatorKind, "=", 1),
				tok(NumberKind, "5", 1), tok(SeparatorKind, ";", 1),
			},
		},
		{
			content: "a += b == c -> d <<= e",
			expectedTokens: []*Token{
				tok(IdentifierKind, "a", 1), tok(OperatorKind, "+=", 1), tok(IdentifierKind, "b", 1),
				tok(OperatorKind, "==", 1), tok(IdentifierKind, "c", 1), tok(OperatorKind, "->", 1),
				tok(IdentifierKind, "d", 1), tok(OperatorKind, "<<", 1), tok(OperatorKind, "=", 1),
				tok(IdentifierKind, "e", 1),
			},
		},
		{
			content: "1.2.3 42 7x",
			expectedTokens: []*Token{
				tok(NumberKind, "1.2.3", 1), tok(NumberKind, "42", 1), tok(NumberKind, "7", 1),
				tok(IdentifierKind, "x", 1),
			},
		},
		{
			content: `"he said \"hi\"" 'a' '\''`,
			expectedTokens: []*Token{
				tok(StringLiteralKind, `"he said \"hi\""`, 1), tok(CharLiteralKind, "'a'", 1),
				tok(CharLiteralKind, `'\''`, 1),
			},
		},
		{
			content:        `"abc`,
			expectedTokens: []*Token{tok(StringLiteralKind, `"abc`, 1)},
		},
		{
			content:        `'x`,
			expectedTokens: []*Token{tok(CharLiteralKind, `'x`, 1)},
		},
		{
			content:        `"abc\`,
			expectedTokens: []*Token{tok(StringLiteralKind, `"abc\`, 1)},
		},
		{
			content: "a // comment\nb /* x\ny */ c",
			expectedTokens: []*Token{
				tok(IdentifierKind, "a", 1), tok(IdentifierKind, "b", 2), tok(IdentifierKind, "c", 3),
			},
		},
		{
			content:        "a /* never closed\n b",
			expectedTokens: []*Token{tok(IdentifierKind, "a", 1)},
		},
		{
			content:        "\"a\nb\" c",
			expectedTokens: []*Token{tok(StringLiteralKind, "\"a\nb\"", 1), tok(IdentifierKind, "c", 2)},
		},
		{
			content: "a @ $ é",
			expectedTokens: []*Token{
				tok(IdentifierKind, "a", 1), tok(UnknownKind, "@", 1), tok(UnknownKind, "$", 1),
				tok(UnknownKind, "é", 1),
			},
		},
		{
			content: "a\xff\xfeé\x80",
			expectedTokens: []*Token{
				tok(IdentifierKind, "a", 1), tok(UnknownKind, "\xff", 1), tok(UnknownKind, "\xfe", 1),
				tok(UnknownKind, "é", 1), tok(UnknownKind, "\x80", 1),
			},
		},
		{
			content: "s.x\r\n_y1 / 2",
			expectedTokens: []*Token{
				tok(IdentifierKind, "s", 1), tok(SeparatorKind, ".", 1), tok(IdentifierKind, "x", 1),
				tok(IdentifierKind, "_y1", 2), tok(OperatorKind, "/", 2), tok(NumberKind, "2", 2),
			},
		},
		{
			content: "#include <stdio.h>",
			expectedTokens: []*Token{
				tok(SeparatorKind, "#", 1), tok(KeywordKind, "include", 1), tok(OperatorKind, "<", 1),
				tok(KeywordKind, "stdio", 1), tok(SeparatorKind, ".", 1), tok(KeywordKind, "h", 1),
				tok(OperatorKind, ">", 1),
			},
		},
		{
			content: "printf String",
			expectedTokens: []*Token{
				tok(KeywordKind, "printf", 1), tok(IdentifierKind, "String", 1),
			},
		},
		{
			content:        "  \t\n\n",
			expectedTokens: nil,
		},
	}
	tokenizer := NewTokenizer(CDialect)
	for _, data := range testData {
		tokens := tokenizer.Tokenize(data.content)
		assert.Equal(t, data.expectedTokens, tokens, data.content)
	}
}

func TestTokenizer_JavaDialect(t *testing.T) {
	tokenizer := NewTokenizer(JavaDialect)
	tokens := tokenizer.Tokenize("@Override String printf; a >>> b")
	assert.Equal(t, []*Token{
		tok(SeparatorKind, "@", 1), tok(IdentifierKind, "Override", 1), tok(KeywordKind, "String", 1),
		tok(IdentifierKind, "printf", 1), tok(SeparatorKind, ";", 1), tok(IdentifierKind, "a", 1),
		tok(OperatorKind, ">>", 1), tok(OperatorKind, ">", 1), tok(IdentifierKind, "b", 1),
	}, tokens)
}

func TestTokenizer_LinesNeverDecrease(t *testing.T) {
	sources := []string{
		"int main() {\n  /* a\n b */ printf(\"x\\n\");\n  return 0;\n}\n",
		"'\n'\n\"\n\n\" x /* \n",
		"a\n\n\nb // c\n/**/d",
		strings.Repeat("x = y;\n", 50),
	}
	tokenizer := NewTokenizer(CDialect)
	for _, source := range sources {
		tokens := tokenizer.Tokenize(source)
		for i := 1; i < len(tokens); i++ {
			assert.LessOrEqual(t, tokens[i-1].Line, tokens[i].Line, source)
		}
	}
}

func TestTokenizer_Idempotent(t *testing.T) {
	source := "int a = 1;\nfloat b = a * 2.5; // half\nchar c = 'x';"
	tokenizer := NewTokenizer(CDialect)
	first := tokenizer.Tokenize(source)
	second := tokenizer.Tokenize(source)
	assert.Equal(t, first, second)
	assert.Equal(t, first, NewTokenizer(CDialect).Tokenize(source))
}

func TestTokenizer_ConcatenationAtCleanBoundary(t *testing.T) {
	contents := func(tokens []*Token) []string {
		var ret []string
		for _, token := range tokens {
			ret = append(ret, token.String())
		}
		return ret
	}
	tokenizer := NewTokenizer(CDialect)
	left, right := "int a = 1;", "\nwhile (a) { a -= 1; }"
	expected := append(contents(tokenizer.Tokenize(left)), contents(tokenizer.Tokenize(right))...)
	assert.Equal(t, expected, contents(tokenizer.Tokenize(left+right)))

	// A token spanning the boundary breaks the property.
	left, right = "a +", "= 1;"
	separate := append(contents(tokenizer.Tokenize(left)), contents(tokenizer.Tokenize(right))...)
	assert.NotEqual(t, separate, contents(tokenizer.Tokenize(left+right)))
}

func TestTokenizer_TokenizeReader(t *testing.T) {
	tokenizer := NewTokenizer(nil)
	tokens, err := tokenizer.TokenizeReader(strings.NewReader("return x;"))
	require.Nil(t, err)
	assert.Equal(t, []*Token{
		tok(KeywordKind, "return", 1), tok(IdentifierKind, "x", 1), tok(SeparatorKind, ";", 1),
	}, tokens)
	assert.Equal(t, CDialect, tokenizer.Dialect())
}

func TestToken_Is(t *testing.T) {
	token := tok(SeparatorKind, ")", 3)
	assert.True(t, token.Is(SeparatorKind, ""))
	assert.True(t, token.Is(SeparatorKind, ")"))
	assert.False(t, token.Is(SeparatorKind, "("))
	assert.False(t, token.Is(OperatorKind, ")"))
	var missing *Token
	assert.False(t, missing.Is(SeparatorKind, ""))
	assert.Equal(t, "SEPARATOR ')'", token.String())
	assert.Equal(t, "TokenKind(42)", TokenKind(42).String())
}
