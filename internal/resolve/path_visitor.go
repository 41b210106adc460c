package resolve

import (
	"corund/internal/names"
	"corund/internal/syntax"
)

// ScopedPathVisitor turns a path node into a names.Path relative to scope.
type ScopedPathVisitor struct {
	scopes *names.Tree
	scope  names.ScopeID
	code   *syntax.Tree
	d      dispatch[struct{}, names.Path]
}

// NewScopedPathVisitor creates a visitor for paths written inside scope.
// The scope must be associated with a syntax tree.
func NewScopedPathVisitor(scopes *names.Tree, scope names.ScopeID) *ScopedPathVisitor {
	code, ok := scopes.Code(scope)
	if !ok {
		panic("resolve: cannot run on scope without parse context")
	}
	v := &ScopedPathVisitor{scopes: scopes, scope: scope, code: code}
	v.d = dispatch[struct{}, names.Path]{
		tree: code,
		handlers: map[syntax.Kind]handler[struct{}, names.Path]{
			syntax.KindCrate:                v.visitCrate,
			syntax.KindSuper:                v.visitSuper,
			syntax.KindIdentifier:           v.visitIdentifier,
			syntax.KindTypeIdentifier:       v.visitIdentifier,
			syntax.KindScopedIdentifier:     v.visitScoped,
			syntax.KindScopedTypeIdentifier: v.visitScoped,
		},
	}
	return v
}

// Visit resolves node. The path is either fully resolved or an error is
// returned.
func (v *ScopedPathVisitor) Visit(node syntax.NodeID) (names.Path, error) {
	return v.d.visit(node, struct{}{})
}

func (v *ScopedPathVisitor) visitCrate(node syntax.NodeID, _ struct{}) (names.Path, error) {
	crate, ok := v.scopes.FindCrate(v.scope)
	if !ok {
		return names.Path{}, &Error{Kind: CrateNotAllowed, Span: v.code.Span(node), Name: "crate"}
	}
	return v.scopes.Get(crate).Path, nil
}

func (v *ScopedPathVisitor) visitSuper(node syntax.NodeID, _ struct{}) (names.Path, error) {
	parent, ok := v.scopes.FindSuper(v.scope)
	if !ok {
		return names.Path{}, &Error{Kind: SuperNotAllowed, Span: v.code.Span(node), Name: "super"}
	}
	return v.scopes.Get(parent).Path, nil
}

func (v *ScopedPathVisitor) visitIdentifier(node syntax.NodeID, _ struct{}) (names.Path, error) {
	return names.NewPath(nodeText(v.code, node)), nil
}

// visitScoped handles `A::B`; a missing A (leading `::`) starts at the root.
func (v *ScopedPathVisitor) visitScoped(node syntax.NodeID, _ struct{}) (names.Path, error) {
	prefix := names.Root()
	if left, ok := v.code.ChildByField(node, syntax.FieldPath); ok {
		var err error
		if prefix, err = v.Visit(left); err != nil {
			return names.Path{}, err
		}
	}
	name := mustChild(v.code, node, syntax.FieldName)
	return prefix.Extend(nodeText(v.code, name)), nil
}
