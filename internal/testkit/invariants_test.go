package testkit

import (
	"strings"
	"testing"

	"corund/internal/diag"
	"corund/internal/parser"
	"corund/internal/source"
	"corund/internal/syntax"
)

func TestParsedTreesSatisfyInvariants(t *testing.T) {
	sources := []string{
		"",
		"use a::{b, c::{d, e}, f as g};\n",
		"#[inline]\nmod m { fn f(x: &[u8; 4]) -> (i32, bool) { x } }\n",
		"extern fn exit(code: i32) -> !;\nstruct S { a: u8 }\nenum E { A, B }\nimpl S { fn new() {} }\n",
		"use ;\nuse a;\n} oops\nmod m {}",
	}
	for _, src := range sources {
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("t.cor", []byte(src)))
		tree := parser.ParseFile(file, parser.Options{Reporter: &diag.BagReporter{Bag: diag.NewBag(32)}})
		if err := CheckSpanInvariants(tree, file); err != nil {
			t.Errorf("%q: %v", src, err)
		}
	}
}

func TestCheckSpanInvariantsRejectsEscapingChild(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("t.cor", []byte("use a;")))
	tree := syntax.NewTree(file)
	child := tree.New(syntax.KindIdentifier, source.Span{File: file.ID, Start: 4, End: 6})
	tree.Root = tree.New(syntax.KindSourceFile, source.Span{File: file.ID, Start: 0, End: 5}, syntax.Child{Node: child})

	err := CheckSpanInvariants(tree, file)
	if err == nil || !strings.Contains(err.Error(), "does not contain child") {
		t.Fatalf("err = %v", err)
	}
}
