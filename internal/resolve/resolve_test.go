package resolve

import (
	"context"
	"errors"
	"testing"

	"corund/internal/diag"
	"corund/internal/names"
	"corund/internal/parser"
	"corund/internal/source"
	"corund/internal/syntax"
	"corund/internal/trace"
)

func parse(t *testing.T, src string) *syntax.Tree {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.al", []byte(src))
	bag := diag.NewBag(16)
	tree := parser.ParseFile(fs.Get(id), parser.Options{Reporter: &diag.BagReporter{Bag: bag}})
	if bag.HasErrors() {
		t.Fatalf("parse errors: %+v", bag.Items())
	}
	return tree
}

// declare runs DeclareCrate for src as crate "app".
func declare(t *testing.T, src string) (*names.Tree, names.ScopeID, *diag.Bag, int) {
	t.Helper()
	scopes := names.NewTree()
	bag := diag.NewBag(32)
	crate, errs := DeclareCrate(context.Background(), scopes, "app", parse(t, src), Options{Reporter: &diag.BagReporter{Bag: bag}})
	return scopes, crate, bag, errs
}

func aliasTarget(t *testing.T, scopes *names.Tree, scope names.ScopeID, name string) string {
	t.Helper()
	item, ok := scopes.Get(scope).Items[name]
	if !ok {
		t.Fatalf("alias %q not registered", name)
	}
	if item.Kind != names.ItemAlias {
		t.Fatalf("%q is a %s, not an alias", name, item.Kind)
	}
	return item.Target.String()
}

func firstUseArgument(t *testing.T, tree *syntax.Tree) syntax.NodeID {
	t.Helper()
	items := tree.ChildrenByField(tree.Root, syntax.FieldBody)
	if len(items) == 0 {
		t.Fatalf("no items")
	}
	arg, ok := tree.ChildByField(items[0], syntax.FieldArgument)
	if !ok {
		t.Fatalf("first item is not a use declaration")
	}
	return arg
}

func TestScopedPathVisitor(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"plain", "use a::b::c;", "a::b::c"},
		{"single", "use a;", "a"},
		{"crate anchor", "use crate::x::y;", "app::x::y"},
		{"leading colons start at root", "use ::c;", "c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := parse(t, tt.src)
			scopes := names.NewTree()
			crate, err := scopes.NewCrate("app", tree, source.Span{})
			if err != nil {
				t.Fatal(err)
			}
			got, err := NewScopedPathVisitor(scopes, crate).Visit(firstUseArgument(t, tree))
			if err != nil {
				t.Fatalf("Visit: %v", err)
			}
			if got.String() != tt.want {
				t.Fatalf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestScopedPathVisitorSegments(t *testing.T) {
	tree := parse(t, "use a::b::c;")
	scopes := names.NewTree()
	crate, _ := scopes.NewCrate("app", tree, source.Span{})
	got, err := NewScopedPathVisitor(scopes, crate).Visit(firstUseArgument(t, tree))
	if err != nil {
		t.Fatal(err)
	}
	segs := got.Segments()
	if len(segs) != 3 || segs[0] != "a" || segs[1] != "b" || segs[2] != "c" {
		t.Fatalf("segments = %v", segs)
	}
}

func TestCrateOutsideCrate(t *testing.T) {
	tree := parse(t, "use crate::x;")
	scopes := names.NewTree()
	blk := scopes.NewBlock(scopes.Root())
	scopes.Get(blk).Code = tree
	_, err := NewScopedPathVisitor(scopes, blk).Visit(firstUseArgument(t, tree))
	var rerr *Error
	if !errors.As(err, &rerr) || rerr.Kind != CrateNotAllowed {
		t.Fatalf("err = %v, want CrateNotAllowed", err)
	}
	if rerr.Span.Empty() {
		t.Fatalf("error must carry a location")
	}
}

func TestSuperAnchors(t *testing.T) {
	scopes, crate, bag, errs := declare(t, `
mod m {
    mod n {
        use super::x as y;
        use crate::z;
    }
}
use super::q;
`)
	if errs != 1 {
		t.Fatalf("errors = %d, want 1: %+v", errs, bag.Items())
	}
	if bag.Items()[0].Code != diag.ResSuperNotAllowed {
		t.Fatalf("code = %v, want ResSuperNotAllowed", bag.Items()[0].Code)
	}
	m := scopes.Get(crate).Items["m"].Scope
	n := scopes.Get(m).Items["n"].Scope
	if got := aliasTarget(t, scopes, n, "y"); got != "app::m::x" {
		t.Fatalf("y -> %s", got)
	}
	if got := aliasTarget(t, scopes, n, "z"); got != "app::z" {
		t.Fatalf("z -> %s", got)
	}
	if _, ok := scopes.Get(crate).Items["q"]; ok {
		t.Fatalf("failed use must not register anything")
	}
}

func TestNestedUseListPrefix(t *testing.T) {
	scopes, crate, bag, errs := declare(t, "use a::{b, c::{d}};\nuse e;\nuse f::g::{h as i, j::k};")
	if errs != 0 {
		t.Fatalf("unexpected errors: %+v", bag.Items())
	}
	want := map[string]string{
		"b": "a::b",
		"d": "a::c::d",
		"e": "e",
		"i": "f::g::h",
		"k": "f::g::j::k",
	}
	for name, target := range want {
		if got := aliasTarget(t, scopes, crate, name); got != target {
			t.Fatalf("%s -> %s, want %s", name, got, target)
		}
	}
	if got := scopes.Get(crate).Order; len(got) != len(want) {
		t.Fatalf("registered %v", got)
	}
}

func TestUseVisitorPrefixDoesNotLeak(t *testing.T) {
	tree := parse(t, "use {a::{b}, c};")
	scopes := names.NewTree()
	crate, _ := scopes.NewCrate("app", tree, source.Span{})
	decl := tree.ChildrenByField(tree.Root, syntax.FieldBody)[0]
	if err := NewUseClauseVisitor(scopes, crate).Visit(decl); err != nil {
		t.Fatal(err)
	}
	if got := aliasTarget(t, scopes, crate, "c"); got != "c" {
		t.Fatalf("sibling observed the nested prefix: c -> %s", got)
	}
}

func TestDuplicateAlias(t *testing.T) {
	scopes, crate, bag, errs := declare(t, "use a::b;\nuse x::b;")
	if errs != 1 || bag.Items()[0].Code != diag.ResDuplicateName {
		t.Fatalf("want one ResDuplicateName, got %+v", bag.Items())
	}
	if got := aliasTarget(t, scopes, crate, "b"); got != "a::b" {
		t.Fatalf("b -> %s, first registration must win", got)
	}
}

func TestUseFailsFast(t *testing.T) {
	scopes, crate, _, errs := declare(t, "use {a, a, b};\nuse c;")
	if errs != 1 {
		t.Fatalf("errors = %d, want 1", errs)
	}
	items := scopes.Get(crate).Items
	if _, ok := items["b"]; ok {
		t.Fatalf("items after the failing one must not be registered")
	}
	if _, ok := items["c"]; !ok {
		t.Fatalf("next declaration must still be processed")
	}
}

func TestUseRejectsBareAnchor(t *testing.T) {
	_, _, bag, errs := declare(t, "use crate;")
	if errs != 1 || bag.Items()[0].Code != diag.ResUnexpectedNode {
		t.Fatalf("want ResUnexpectedNode, got %+v", bag.Items())
	}
}

func TestDeclarations(t *testing.T) {
	scopes, crate, bag, errs := declare(t, `
fn f() {}
struct S { x: i32 }
enum E { A }
extern fn puts(s: &u8);
impl S { fn method() {} }
mod m {}
struct f {}
mod m {}
`)
	if errs != 2 {
		t.Fatalf("errors = %d, want 2: %+v", errs, bag.Items())
	}
	for _, d := range bag.Items() {
		if d.Code != diag.ResDuplicateName {
			t.Fatalf("unexpected diagnostic %+v", d)
		}
	}
	items := scopes.Get(crate).Items
	kinds := map[string]names.ItemKind{
		"f": names.ItemFunction, "S": names.ItemStruct, "E": names.ItemEnum,
		"puts": names.ItemFunction, "m": names.ItemModule,
	}
	for name, kind := range kinds {
		if items[name].Kind != kind {
			t.Fatalf("%s is %s, want %s", name, items[name].Kind, kind)
		}
	}
	if _, ok := items["method"]; ok {
		t.Fatalf("impl members live in their own scope")
	}
	// impl S не связывает имя: S остаётся структурой, а method лежит в блоке
	var implScopes int
	scopes.Walk(func(_ names.ScopeID, s *names.Scope) {
		if s.Kind == names.ScopeBlock && s.Parent == crate && s.Items["method"].Kind == names.ItemFunction {
			implScopes++
		}
	})
	if implScopes != 1 {
		t.Fatalf("impl block scopes = %d, want 1", implScopes)
	}
}

func TestGenericItemsKeepTheirScopes(t *testing.T) {
	scopes, crate, bag, errs := declare(t, `
mod m<T> {
	use lib::mem::swap;
	struct Box<U> { inner: &U }
	fn apply(f: fn(i32) -> i32, b: &Box<i32>) {}
}
`)
	if errs != 0 || bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	item := scopes.Get(crate).Items["m"]
	if item.Kind != names.ItemModule {
		t.Fatalf("m is %s, want module", item.Kind)
	}
	if got := aliasTarget(t, scopes, item.Scope, "swap"); got != "lib::mem::swap" {
		t.Fatalf("swap -> %s", got)
	}
	members := scopes.Get(item.Scope).Items
	if members["Box"].Kind != names.ItemStruct || members["apply"].Kind != names.ItemFunction {
		t.Fatalf("module members = %+v", members)
	}
}

func TestIdentifiersAreNormalized(t *testing.T) {
	// precomposed U+00E9 vs e + U+0301
	_, _, bag, errs := declare(t, "use a::\u00e9;\nuse b::e\u0301;")
	if errs != 1 || bag.Items()[0].Code != diag.ResDuplicateName {
		t.Fatalf("normalized names must collide: %+v", bag.Items())
	}
}

func TestShadowingWarning(t *testing.T) {
	scopes := names.NewTree()
	bag := diag.NewBag(8)
	_, errs := DeclareCrate(context.Background(), scopes, "app",
		parse(t, "use a::b;\nmod m { use c::b; }"),
		Options{Reporter: &diag.BagReporter{Bag: bag}, WarnShadowing: true})
	if errs != 0 || bag.HasErrors() {
		t.Fatalf("shadowing is not an error: %+v", bag.Items())
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.ResShadowedAliasUse || len(bag.Items()[0].Notes) != 1 {
		t.Fatalf("want one shadowing warning with a note, got %+v", bag.Items())
	}
}

func TestAliasTracePoints(t *testing.T) {
	ring := trace.NewRingTracer(32, trace.LevelDebug)
	ctx := trace.WithTracer(context.Background(), ring)
	scopes := names.NewTree()
	DeclareCrate(ctx, scopes, "app", parse(t, "use a::{b, c};"), Options{})
	var aliases []string
	for _, ev := range ring.Snapshot() {
		if ev.Kind == trace.KindPoint && ev.Name == "alias" {
			aliases = append(aliases, ev.Detail+"="+ev.Extra["target"])
		}
	}
	if len(aliases) != 2 || aliases[0] != "b=a::b" || aliases[1] != "c=a::c" {
		t.Fatalf("alias events = %v", aliases)
	}
}

func TestDuplicateCrate(t *testing.T) {
	scopes := names.NewTree()
	tree := parse(t, "use a;")
	if _, errs := DeclareCrate(context.Background(), scopes, "app", tree, Options{}); errs != 0 {
		t.Fatalf("first crate failed")
	}
	if id, errs := DeclareCrate(context.Background(), scopes, "app", tree, Options{}); errs != 1 || id.IsValid() {
		t.Fatalf("duplicate crate = %d, %d", id, errs)
	}
}
