package compiler

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/xiaobogaga/cfront/util"
)

// A lenient tokenizer for C-like and Java-like source.

// Every input character ends up in exactly one token or is skipped as whitespace or comment:
// * Keyword / Identifier: a letter or underscore followed by letters, digits, underscores.
// * Number: digits and dots, taken greedily. "1.2.3" is one token.
// * String / Char literal: "xxx" or 'x', a backslash protects the next character.
// * Separator: single characters from the dialect.
// * Operator: the two character form wins over the one character form.
// * Comment: /**/, //. An unterminated block comment runs to the end of input.
// Anything else is an Unknown token of one character. An invalid UTF-8 byte is such a character and
// its token holds the raw byte.

type TokenKind int

const (
	KeywordKind       TokenKind = iota // int
	IdentifierKind                     // varA
	NumberKind                         // 10.5
	StringLiteralKind                  // "xxx"
	CharLiteralKind                    // 'a'
	OperatorKind                       // +=
	SeparatorKind                      // ;
	UnknownKind                        // $
)

var tokenKindNames = map[TokenKind]string{
	KeywordKind:       "KEYWORD",
	IdentifierKind:    "IDENTIFIER",
	NumberKind:        "NUMBER",
	StringLiteralKind: "STRING_LITERAL",
	CharLiteralKind:   "CHAR_LITERAL",
	OperatorKind:      "OPERATOR",
	SeparatorKind:     "SEPARATOR",
	UnknownKind:       "UNKNOWN",
}

func (kind TokenKind) String() string {
	name, ok := tokenKindNames[kind]
	if !ok {
		return fmt.Sprintf("TokenKind(%d)", int(kind))
	}
	return name
}

type Token struct {
	Kind    TokenKind
	Content string
	Line    int
}

// Is reports whether the token has the given kind and, when content is not empty, that content.
func (token *Token) Is(kind TokenKind, content string) bool {
	if token == nil || token.Kind != kind {
		return false
	}
	return content == "" || token.Content == content
}

func (token *Token) String() string {
	return fmt.Sprintf("%s '%s'", token.Kind, token.Content)
}

type Tokenizer struct {
	dialect     *Dialect
	text        string
	source      []rune
	// offsets[i] is the byte offset of source[i] in text, with one extra entry for the end.
	offsets     []int
	currentPos  int
	currentLine int
	tokens      []*Token
}

func NewTokenizer(dialect *Dialect) *Tokenizer {
	if dialect == nil {
		dialect = CDialect
	}
	return &Tokenizer{dialect: dialect}
}

func (tokenizer *Tokenizer) Dialect() *Dialect {
	return tokenizer.dialect
}

// Tokenize never fails. Calling it again discards the tokens of the previous call.
func (tokenizer *Tokenizer) Tokenize(source string) []*Token {
	tokenizer.Reset()
	if tokenizer.dialect == nil {
		tokenizer.dialect = CDialect
	}
	tokenizer.decode(source)
	for tokenizer.hasRemainCharacters() {
		tokenizer.scanNext()
	}
	tokens := tokenizer.tokens
	tokenizer.text, tokenizer.source, tokenizer.offsets = "", nil, nil
	return tokens
}

// decode splits text into characters. An invalid byte decodes to utf8.RuneError of width one, so
// offsets still point at the original bytes.
func (tokenizer *Tokenizer) decode(text string) {
	tokenizer.text = text
	for pos := 0; pos < len(text); {
		r, size := utf8.DecodeRuneInString(text[pos:])
		tokenizer.source = append(tokenizer.source, r)
		tokenizer.offsets = append(tokenizer.offsets, pos)
		pos += size
	}
	tokenizer.offsets = append(tokenizer.offsets, len(text))
}

// slice returns the original text of the characters source[start:end].
func (tokenizer *Tokenizer) slice(start, end int) string {
	return tokenizer.text[tokenizer.offsets[start]:tokenizer.offsets[end]]
}

func (tokenizer *Tokenizer) TokenizeReader(rd io.Reader) ([]*Token, error) {
	content, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	return tokenizer.Tokenize(string(content)), nil
}

func (tokenizer *Tokenizer) Reset() {
	tokenizer.text, tokenizer.source, tokenizer.offsets, tokenizer.tokens = "", nil, nil, nil
	tokenizer.currentPos, tokenizer.currentLine = 0, 1
}

func (tokenizer *Tokenizer) hasRemainCharacters() bool {
	return tokenizer.currentPos < len(tokenizer.source)
}

func (tokenizer *Tokenizer) current() rune {
	return tokenizer.source[tokenizer.currentPos]
}

// peek returns the character after the current one, or 0 at the end of input.
func (tokenizer *Tokenizer) peek() rune {
	if tokenizer.currentPos+1 >= len(tokenizer.source) {
		return 0
	}
	return tokenizer.source[tokenizer.currentPos+1]
}

func (tokenizer *Tokenizer) scanNext() {
	c := tokenizer.current()
	switch {
	case util.IsNewLine(c):
		tokenizer.currentLine++
		tokenizer.currentPos++
	case util.IsSpace(c):
		tokenizer.currentPos++
	case c == '/' && tokenizer.peek() == '/':
		tokenizer.skipSingleLineComment()
	case c == '/' && tokenizer.peek() == '*':
		tokenizer.skipMultipleLineComment()
	case c == '"':
		tokenizer.tokenQuoted('"', StringLiteralKind)
	case c == '\'':
		tokenizer.tokenQuoted('\'', CharLiteralKind)
	case util.IsNumber(c):
		tokenizer.tokenNumber()
	case util.IsLetterOrUnderscore(c):
		tokenizer.tokenKeywordOrIdentifier()
	case tokenizer.dialect.isSeparator(c):
		tokenizer.emit(SeparatorKind, tokenizer.currentPos, tokenizer.currentPos+1)
	default:
		tokenizer.tokenOperatorOrUnknown()
	}
}

// emit appends the token spanning source[start:end] and moves the cursor to end.
func (tokenizer *Tokenizer) emit(kind TokenKind, start, end int) {
	if end > len(tokenizer.source) {
		end = len(tokenizer.source)
	}
	tokenizer.tokens = append(tokenizer.tokens, &Token{
		Kind:    kind,
		Content: tokenizer.slice(start, end),
		Line:    tokenizer.currentLine,
	})
	tokenizer.currentPos = end
}

func (tokenizer *Tokenizer) skipSingleLineComment() {
	for tokenizer.hasRemainCharacters() && !util.IsNewLine(tokenizer.current()) {
		tokenizer.currentPos++
	}
}

func (tokenizer *Tokenizer) skipMultipleLineComment() {
	tokenizer.currentPos += 2
	for tokenizer.hasRemainCharacters() {
		if tokenizer.current() == '*' && tokenizer.peek() == '/' {
			tokenizer.currentPos += 2
			return
		}
		if util.IsNewLine(tokenizer.current()) {
			tokenizer.currentLine++
		}
		tokenizer.currentPos++
	}
}

// tokenQuoted scans a string or char literal including both quotes. Without a closing quote the
// literal runs to the end of input. The line is the one the literal starts on.
func (tokenizer *Tokenizer) tokenQuoted(quote rune, kind TokenKind) {
	startPos := tokenizer.currentPos
	pos := startPos + 1
	lines := 0
	for pos < len(tokenizer.source) && tokenizer.source[pos] != quote {
		if tokenizer.source[pos] == '\\' {
			pos++
		}
		if pos < len(tokenizer.source) && util.IsNewLine(tokenizer.source[pos]) {
			lines++
		}
		pos++
	}
	tokenizer.emit(kind, startPos, pos+1)
	tokenizer.currentLine += lines
}

func (tokenizer *Tokenizer) tokenNumber() {
	startPos := tokenizer.currentPos
	pos := startPos
	for pos < len(tokenizer.source) && (util.IsNumber(tokenizer.source[pos]) || tokenizer.source[pos] == '.') {
		pos++
	}
	tokenizer.emit(NumberKind, startPos, pos)
}

func (tokenizer *Tokenizer) tokenKeywordOrIdentifier() {
	startPos := tokenizer.currentPos
	pos := startPos
	for pos < len(tokenizer.source) && util.IsLetterOrUnderscoreOrNumber(tokenizer.source[pos]) {
		pos++
	}
	kind := IdentifierKind
	if tokenizer.dialect.isKeyword(tokenizer.slice(startPos, pos)) {
		kind = KeywordKind
	}
	tokenizer.emit(kind, startPos, pos)
}

func (tokenizer *Tokenizer) tokenOperatorOrUnknown() {
	startPos := tokenizer.currentPos
	if next := tokenizer.peek(); next != 0 && tokenizer.dialect.isOperator(string([]rune{tokenizer.current(), next})) {
		tokenizer.emit(OperatorKind, startPos, startPos+2)
		return
	}
	if tokenizer.dialect.isOperator(string(tokenizer.current())) {
		tokenizer.emit(OperatorKind, startPos, startPos+1)
		return
	}
	tokenizer.emit(UnknownKind, startPos, startPos+1)
}
