package util

import "unicode"

func IsNumber(r rune) bool {
	return r >= '0' && r <= '9'
}

func IsUnderScore(r rune) bool {
	return r == '_'
}

func IsLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func IsLetterOrUnderscore(r rune) bool {
	return IsLetter(r) || IsUnderScore(r)
}

func IsLetterOrUnderscoreOrNumber(r rune) bool {
	return IsLetter(r) || IsUnderScore(r) || IsNumber(r)
}

func IsNewLine(r rune) bool {
	return r == '\n'
}

// IsSpace reports whitespace other than the line break, which callers count separately.
func IsSpace(r rune) bool {
	return !IsNewLine(r) && unicode.IsSpace(r)
}
