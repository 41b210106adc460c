package token

import (
	"corund/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwUse && t.Kind <= KwMut
}

// IsPathStart reports whether the token can begin a path (`a`, `crate`, `super`, `::`).
func (t Token) IsPathStart() bool {
	switch t.Kind {
	case Ident, KwCrate, KwSuper, ColonColon:
		return true
	default:
		return false
	}
}
