package lexer

import (
	"unicode"
	"unicode/utf8"

	"corund/internal/token"
)

// IsIdent reports whether s lexes as exactly one identifier token: the same
// letters, digits and combining marks scanIdentOrKeyword accepts, and not a keyword.
func IsIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == utf8.RuneError {
			return false
		}
		if r < utf8.RuneSelf {
			ch := byte(r)
			if ch == '_' || isIdentStartByte(ch) || (i > 0 && isDec(ch)) {
				continue
			}
			return false
		}
		if !(unicode.IsLetter(r) || (i > 0 && (unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)))) {
			return false
		}
	}
	_, kw := token.LookupKeyword(s)
	return !kw
}
