package compiler

import (
	"fmt"
	"strings"
)

// Dialect is the set of keywords, operators and separators accepted for one language family.
// DeclarationTypes are the keywords the syntax analyzer treats as the start of a declaration.
type Dialect struct {
	Name             string
	Keywords         map[string]bool
	Operators        map[string]bool
	Separators       map[rune]bool
	DeclarationTypes map[string]bool
}

func newSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

func newRuneSet(runes string) map[rune]bool {
	set := map[rune]bool{}
	for _, r := range runes {
		set[r] = true
	}
	return set
}

// C keywords also list common libc functions, header names and a few well-known identifiers,
// so those are classified KEYWORD and never reach the undeclared-name check.
var cKeywords = []string{
	// Data types
	"int", "float", "double", "char", "void", "long", "short", "signed", "unsigned", "bool", "_Bool",
	// Control flow
	"if", "else", "switch", "case", "default", "break", "continue", "for", "while", "do", "goto", "return",
	// Storage classes
	"auto", "static", "extern", "register", "const", "volatile",
	// Derived types
	"struct", "union", "enum", "typedef",
	"sizeof", "inline", "restrict",
	// Preprocessor
	"include", "define", "undef", "ifdef", "ifndef", "endif", "elif", "pragma", "error", "warning",
	// Standard library
	"printf", "scanf", "fprintf", "fscanf", "sprintf", "sscanf",
	"getchar", "putchar", "gets", "puts", "fgets", "fputs",
	"fopen", "fclose", "fread", "fwrite", "fseek", "ftell",
	"malloc", "calloc", "realloc", "free",
	"strlen", "strcmp", "strcpy", "strcat", "strncpy", "strncat",
	"strchr", "strstr", "strtok", "strspn", "strcspn",
	"memcpy", "memmove", "memset", "memcmp", "memchr",
	"atoi", "atof", "atol", "strtol", "strtod",
	"toupper", "tolower", "isalpha", "isdigit", "isalnum",
	"abs", "sqrt", "pow", "ceil", "floor", "sin", "cos", "tan",
	"exit", "abort", "system", "getenv",
	"rand", "srand", "time",
	"main", "argc", "argv", "NULL", "EOF", "FILE",
	// Header names
	"stdio", "stdlib", "string", "math", "ctype", "stdbool", "stdint", "limits", "assert", "errno", "h",
}

var javaKeywords = []string{
	"abstract", "assert", "boolean", "break", "byte", "case", "catch", "char", "class", "const",
	"continue", "default", "do", "double", "else", "enum", "extends", "final", "finally", "float",
	"for", "goto", "if", "implements", "import", "instanceof", "int", "interface", "long", "native",
	"new", "package", "private", "protected", "public", "return", "short", "static", "strictfp",
	"super", "switch", "synchronized", "this", "throw", "throws", "transient", "try", "void",
	"volatile", "while", "true", "false", "null", "var", "String",
}

// Operators are at most two characters long, the tokenizer looks ahead by one character only.
var cOperators = []string{
	"+", "-", "*", "/", "%", "=", "==", "!=", "<", ">",
	"<=", ">=", "&&", "||", "!", "++", "--", "+=", "-=",
	"*=", "/=", "%=", "&", "|", "^", "~", "<<", ">>",
	"->", "&=", "|=", "^=",
}

var javaOperators = []string{
	"+", "-", "*", "/", "%", "=", "==", "!=", "<", ">",
	"<=", ">=", "&&", "||", "!", "++", "--", "+=", "-=",
	"*=", "/=", "%=", "&", "|", "^", "~", "<<", ">>",
	"->", "&=", "|=", "^=",
}

var (
	CDialect = &Dialect{
		Name:             "c",
		Keywords:         newSet(cKeywords...),
		Operators:        newSet(cOperators...),
		Separators:       newRuneSet("(){}[];,.:#?"),
		DeclarationTypes: newSet("int", "float", "double", "char", "void"),
	}
	JavaDialect = &Dialect{
		Name:       "java",
		Keywords:   newSet(javaKeywords...),
		Operators:  newSet(javaOperators...),
		Separators: newRuneSet("(){}[];,.:@?"),
		DeclarationTypes: newSet("int", "float", "double", "char", "void", "boolean", "byte", "short",
			"long", "String"),
	}
)

// DialectByName returns the builtin dialect registered under name, case-insensitively.
func DialectByName(name string) (*Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "c":
		return CDialect, nil
	case "java":
		return JavaDialect, nil
	}
	return nil, fmt.Errorf("unknown dialect: %s", name)
}

// WithKeywords returns a copy of dialect whose keyword table also holds extra.
// The receiver is left untouched.
func (dialect *Dialect) WithKeywords(extra ...string) *Dialect {
	if len(extra) == 0 {
		return dialect
	}
	keywords := make(map[string]bool, len(dialect.Keywords)+len(extra))
	for k := range dialect.Keywords {
		keywords[k] = true
	}
	for _, k := range extra {
		keywords[k] = true
	}
	copied := *dialect
	copied.Keywords = keywords
	return &copied
}

func (dialect *Dialect) isKeyword(word string) bool {
	return dialect.Keywords[word]
}

func (dialect *Dialect) isOperator(op string) bool {
	return dialect.Operators[op]
}

func (dialect *Dialect) isSeparator(r rune) bool {
	return dialect.Separators[r]
}

func (dialect *Dialect) isDeclarationType(word string) bool {
	return dialect.DeclarationTypes[word]
}
