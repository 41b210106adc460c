package token

var keywords = map[string]Kind{
	"use":    KwUse,
	"as":     KwAs,
	"mod":    KwMod,
	"fn":     KwFn,
	"extern": KwExtern,
	"struct": KwStruct,
	"enum":   KwEnum,
	"impl":   KwImpl,
	"crate":  KwCrate,
	"super":  KwSuper,
	"mut":    KwMut,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
