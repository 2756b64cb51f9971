package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDialectByName(t *testing.T) {
	testData := []struct {
		name      string
		expected  *Dialect
		expectErr bool
	}{
		{name: "", expected: CDialect},
		{name: "c", expected: CDialect},
		{name: " C ", expected: CDialect},
		{name: "java", expected: JavaDialect},
		{name: "Java", expected: JavaDialect},
		{name: "cobol", expectErr: true},
	}
	for _, data := range testData {
		dialect, err := DialectByName(data.name)
		if data.expectErr {
			assert.EqualError(t, err, "unknown dialect: "+data.name)
			assert.Nil(t, dialect)
			continue
		}
		assert.Nil(t, err, data.name)
		assert.Same(t, data.expected, dialect, data.name)
	}
}

func TestDialect_WithKeywords(t *testing.T) {
	assert.Same(t, CDialect, CDialect.WithKeywords())

	extended := CDialect.WithKeywords("uint8_t", "size_t")
	assert.True(t, extended.isKeyword("uint8_t"))
	assert.True(t, extended.isKeyword("int"))
	assert.False(t, CDialect.isKeyword("uint8_t"))
	assert.Equal(t, "c", extended.Name)

	tokens := NewTokenizer(extended).Tokenize("uint8_t v;")
	assert.Equal(t, KeywordKind, tokens[0].Kind)
	tokens = NewTokenizer(CDialect).Tokenize("uint8_t v;")
	assert.Equal(t, IdentifierKind, tokens[0].Kind)
}

func TestDialect_Tables(t *testing.T) {
	assert.True(t, CDialect.isSeparator('#'))
	assert.False(t, CDialect.isSeparator('@'))
	assert.True(t, JavaDialect.isSeparator('@'))
	assert.False(t, JavaDialect.isSeparator('#'))

	assert.True(t, JavaDialect.isOperator(">>"))
	assert.True(t, CDialect.isOperator("->"))
	// ':' is a separator, so "::" could never be scanned as one operator.
	assert.False(t, JavaDialect.isOperator("::"))
	assert.False(t, JavaDialect.isOperator(">>>"))
	assert.Equal(t, []*Token{tok(SeparatorKind, ":", 1), tok(SeparatorKind, ":", 1)},
		NewTokenizer(JavaDialect).Tokenize("::"))

	assert.True(t, CDialect.isDeclarationType("char"))
	assert.False(t, CDialect.isDeclarationType("long"))
	assert.True(t, JavaDialect.isDeclarationType("String"))
	assert.True(t, JavaDialect.isDeclarationType("boolean"))
}
