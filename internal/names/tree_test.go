package names

import (
	"errors"
	"testing"

	"corund/internal/source"
)

func mustCrate(t *testing.T, tr *Tree, name string) ScopeID {
	t.Helper()
	id, err := tr.NewCrate(name, nil, source.Span{})
	if err != nil {
		t.Fatalf("NewCrate(%s): %v", name, err)
	}
	return id
}

func mustModule(t *testing.T, tr *Tree, parent ScopeID, name string) ScopeID {
	t.Helper()
	id, err := tr.NewModule(parent, name, source.Span{})
	if err != nil {
		t.Fatalf("NewModule(%s): %v", name, err)
	}
	return id
}

func TestScopePaths(t *testing.T) {
	tr := NewTree()
	app := mustCrate(t, tr, "app")
	m := mustModule(t, tr, app, "m")
	n := mustModule(t, tr, m, "n")
	blk := tr.NewBlock(n)
	if got := tr.Get(n).Path.String(); got != "app::m::n" {
		t.Fatalf("module path = %s", got)
	}
	if got := tr.Get(blk).Path.String(); got != "app::m::n" {
		t.Fatalf("block path = %s", got)
	}
	if item, ok := tr.Get(app).Items["m"]; !ok || item.Kind != ItemModule || item.Scope != m {
		t.Fatalf("module m not bound in crate: %+v", item)
	}
}

func TestFindCrateAndSuper(t *testing.T) {
	tr := NewTree()
	app := mustCrate(t, tr, "app")
	m := mustModule(t, tr, app, "m")
	n := mustModule(t, tr, m, "n")
	blk := tr.NewBlock(n)

	if got, ok := tr.FindCrate(blk); !ok || got != app {
		t.Fatalf("FindCrate(block) = %d, %v", got, ok)
	}
	if _, ok := tr.FindCrate(tr.Root()); ok {
		t.Fatalf("root has no crate")
	}

	tests := []struct {
		name  string
		scope ScopeID
		want  ScopeID
		ok    bool
	}{
		{"nested module", n, m, true},
		{"block inside nested module", blk, m, true},
		{"top module", m, app, true},
		{"crate root", app, NoScopeID, false},
		{"global root", tr.Root(), NoScopeID, false},
	}
	for _, tt := range tests {
		got, ok := tr.FindSuper(tt.scope)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("%s: FindSuper = %d, %v; want %d, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestAddItemRejectsDuplicates(t *testing.T) {
	tr := NewTree()
	app := mustCrate(t, tr, "app")
	if err := tr.AddItem(app, "b", Alias(NewPath("a", "b"), source.Span{})); err != nil {
		t.Fatalf("first AddItem: %v", err)
	}
	err := tr.AddItem(app, "b", Alias(NewPath("x", "b"), source.Span{}))
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("second AddItem = %v, want ErrDuplicateName", err)
	}
	if got := tr.Get(app).Items["b"].Target.String(); got != "a::b" {
		t.Fatalf("first binding overwritten: %s", got)
	}
	if _, err := tr.NewCrate("app", nil, source.Span{}); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("duplicate crate = %v", err)
	}
	// shadowing in a child scope is allowed
	blk := tr.NewBlock(app)
	if err := tr.AddItem(blk, "b", NamedItem{Kind: ItemFunction}); err != nil {
		t.Fatalf("child scope shadowing: %v", err)
	}
}

func TestLookupWalksParents(t *testing.T) {
	tr := NewTree()
	app := mustCrate(t, tr, "app")
	m := mustModule(t, tr, app, "m")
	if err := tr.AddItem(app, "f", NamedItem{Kind: ItemFunction}); err != nil {
		t.Fatal(err)
	}
	item, owner, ok := tr.Lookup(m, "f")
	if !ok || item.Kind != ItemFunction || owner != app {
		t.Fatalf("Lookup = %+v, %d, %v", item, owner, ok)
	}
	if _, _, ok := tr.Lookup(m, "missing"); ok {
		t.Fatalf("missing name found")
	}
}

func TestResolvePath(t *testing.T) {
	tr := NewTree()
	lib := mustCrate(t, tr, "lib")
	mem := mustModule(t, tr, lib, "mem")
	if err := tr.AddItem(mem, "swap", NamedItem{Kind: ItemFunction}); err != nil {
		t.Fatal(err)
	}
	app := mustCrate(t, tr, "app")
	if err := tr.AddItem(app, "m", Alias(NewPath("lib", "mem"), source.Span{})); err != nil {
		t.Fatal(err)
	}
	if err := tr.AddItem(app, "s", Alias(NewPath("app", "m", "swap"), source.Span{})); err != nil {
		t.Fatal(err)
	}

	item, canonical, err := tr.ResolvePath(NewPath("app", "s"))
	if err != nil {
		t.Fatalf("ResolvePath: %v", err)
	}
	if item.Kind != ItemFunction || canonical.String() != "lib::mem::swap" {
		t.Fatalf("resolved %s %s", item.Kind, canonical)
	}

	_, _, err = tr.ResolvePath(NewPath("lib", "nope"))
	if !errors.Is(err, ErrUnresolved) {
		t.Fatalf("missing segment = %v", err)
	}
	if got := err.Error(); got != `lib::nope: no "nope" in lib: unresolved path` {
		t.Fatalf("Error() = %q", got)
	}
	_, _, err = tr.ResolvePath(NewPath("lib", "mem", "swap", "x"))
	if !errors.Is(err, ErrNotAModule) {
		t.Fatalf("function as module = %v", err)
	}
	var pe *PathError
	if !errors.As(err, &pe) || pe.At.String() != "lib::mem::swap" || pe.Segment != "x" || pe.Kind != ItemFunction {
		t.Fatalf("path error = %+v", pe)
	}
	if got := err.Error(); got != "lib::mem::swap::x: function lib::mem::swap is not a module" {
		t.Fatalf("Error() = %q", got)
	}

	if err := tr.AddItem(app, "loop", Alias(NewPath("app", "loop"), source.Span{})); err != nil {
		t.Fatal(err)
	}
	if _, _, err := tr.ResolvePath(NewPath("app", "loop")); !errors.Is(err, ErrAliasCycle) {
		t.Fatalf("cycle = %v", err)
	}
}
