package token

import "fmt"

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	Ident
	IntLit
	StringLit

	KwUse    // use
	KwAs     // as
	KwMod    // mod
	KwFn     // fn
	KwExtern // extern
	KwStruct // struct
	KwEnum   // enum
	KwImpl   // impl
	KwCrate  // crate
	KwSuper  // super
	KwMut    // mut

	ColonColon // ::
	Colon      // :
	Semicolon  // ;
	Comma      // ,
	Arrow      // ->
	Amp        // &
	Hash       // #
	LParen     // (
	RParen     // )
	LBrace     // {
	RBrace     // }
	LBracket   // [
	RBracket   // ]
	Lt         // <
	Gt         // >
	// Punct covers operators the declaration parser never inspects (+, =, . ...).
	Punct
)

var kindNames = [...]string{
	Invalid:    "invalid",
	EOF:        "EOF",
	Ident:      "identifier",
	IntLit:     "integer literal",
	StringLit:  "string literal",
	KwUse:      "use",
	KwAs:       "as",
	KwMod:      "mod",
	KwFn:       "fn",
	KwExtern:   "extern",
	KwStruct:   "struct",
	KwEnum:     "enum",
	KwImpl:     "impl",
	KwCrate:    "crate",
	KwSuper:    "super",
	KwMut:      "mut",
	ColonColon: "::",
	Colon:      ":",
	Semicolon:  ";",
	Comma:      ",",
	Arrow:      "->",
	Amp:        "&",
	Hash:       "#",
	LParen:     "(",
	RParen:     ")",
	LBrace:     "{",
	RBrace:     "}",
	LBracket:   "[",
	RBracket:   "]",
	Lt:         "<",
	Gt:         ">",
	Punct:      "punct",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}
