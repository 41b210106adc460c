package lexer

import (
	"testing"

	"corund/internal/diag"
	"corund/internal/source"
	"corund/internal/token"
)

func lexAll(t *testing.T, src string) ([]token.Token, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.al", []byte(src))
	bag := diag.NewBag(16)
	lx := New(fs.Get(id), Options{Reporter: &diag.BagReporter{Bag: bag}})
	return lx.All(), bag
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, tok := range toks {
		out = append(out, tok.Kind)
	}
	return out
}

func TestLexUseDeclaration(t *testing.T) {
	toks, bag := lexAll(t, "use crate::a::{b, c as d};")
	want := []token.Kind{
		token.KwUse, token.KwCrate, token.ColonColon, token.Ident, token.ColonColon,
		token.LBrace, token.Ident, token.Comma, token.Ident, token.KwAs, token.Ident,
		token.RBrace, token.Semicolon, token.EOF,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %v, want %v (all: %v)", i, got[i], want[i], got)
		}
	}
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	if toks[3].Text != "a" || toks[3].Span.Start != 11 || toks[3].Span.End != 12 {
		t.Errorf("ident token = %+v", toks[3])
	}
}

func TestLexSkipsComments(t *testing.T) {
	toks, _ := lexAll(t, "// line\nmod /* block */ m {}\n")
	got := kinds(toks)
	want := []token.Kind{token.KwMod, token.Ident, token.LBrace, token.RBrace, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLexUnicodeIdentifier(t *testing.T) {
	toks, bag := lexAll(t, "use модуль::имя;")
	if toks[1].Kind != token.Ident || toks[1].Text != "модуль" {
		t.Fatalf("unexpected token %+v", toks[1])
	}
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
}

func TestLexReportsErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code diag.Code
	}{
		{"unterminated string", `fn f() { "abc`, diag.LexUnterminatedString},
		{"unterminated comment", "mod m {} /* open", diag.LexUnterminatedBlockComment},
		{"unknown char", "use a`;", diag.LexUnknownChar},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, bag := lexAll(t, tt.src)
			if bag.Len() != 1 {
				t.Fatalf("expected 1 diagnostic, got %d", bag.Len())
			}
			if got := bag.Items()[0].Code; got != tt.code {
				t.Errorf("code = %v, want %v", got, tt.code)
			}
		})
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("p.al", []byte("super::x"))
	lx := New(fs.Get(id), Options{})
	if lx.Peek().Kind != token.KwSuper || lx.Peek().Kind != token.KwSuper {
		t.Fatalf("peek must be idempotent")
	}
	if lx.Next().Kind != token.KwSuper || lx.Next().Kind != token.ColonColon {
		t.Fatalf("unexpected token order")
	}
}

func TestIsIdentAgreesWithLexer(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"app", true},
		{"_x9", true},
		{"my_lib", true},
		{"héllo", true},
		{"имя", true},
		{"é", true},
		{"my-lib", false},
		{"9lib", false},
		{"crate", false},
		{"", false},
		{"a b", false},
	}
	for _, tt := range tests {
		if got := IsIdent(tt.src); got != tt.want {
			t.Errorf("IsIdent(%q) = %v, want %v", tt.src, got, tt.want)
		}
		if !tt.want || tt.src == "" {
			continue
		}
		toks, bag := lexAll(t, tt.src)
		if bag.Len() != 0 || len(toks) != 2 || toks[0].Kind != token.Ident || toks[0].Text != tt.src {
			t.Errorf("%q does not lex as one identifier: %+v", tt.src, toks)
		}
	}
}
