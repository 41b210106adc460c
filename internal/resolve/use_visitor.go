package resolve

import (
	"corund/internal/names"
	"corund/internal/source"
	"corund/internal/syntax"
)

// AliasHook observes every alias registered by a UseClauseVisitor.
type AliasHook func(scope names.ScopeID, name string, target names.Path, span source.Span)

// UseClauseVisitor registers the aliases introduced by one use tree.
// The current prefix is an argument of every handler instead of visitor
// state.
type UseClauseVisitor struct {
	scopes *names.Tree
	scope  names.ScopeID
	code   *syntax.Tree
	paths  *ScopedPathVisitor
	hook   AliasHook
	d      dispatch[names.Path, struct{}]
}

// NewUseClauseVisitor creates a visitor registering into scope.
func NewUseClauseVisitor(scopes *names.Tree, scope names.ScopeID) *UseClauseVisitor {
	paths := NewScopedPathVisitor(scopes, scope)
	v := &UseClauseVisitor{scopes: scopes, scope: scope, code: paths.code, paths: paths}
	v.d = dispatch[names.Path, struct{}]{
		tree: v.code,
		handlers: map[syntax.Kind]handler[names.Path, struct{}]{
			syntax.KindUseDeclaration:   v.visitUseDeclaration,
			syntax.KindUseAsClause:      v.visitUseAsClause,
			syntax.KindUseList:          v.visitUseList,
			syntax.KindScopedUseList:    v.visitScopedUseList,
			syntax.KindIdentifier:       v.visitIdentifier,
			syntax.KindScopedIdentifier: v.visitScopedIdentifier,
		},
	}
	return v
}

// OnAlias installs a hook called after each successful registration.
func (v *UseClauseVisitor) OnAlias(hook AliasHook) *UseClauseVisitor {
	v.hook = hook
	return v
}

// Visit processes a use declaration or any use tree node below it,
// starting from the root prefix. The first error aborts the walk.
func (v *UseClauseVisitor) Visit(node syntax.NodeID) error {
	_, err := v.d.visit(node, names.Root())
	return err
}

func (v *UseClauseVisitor) register(node syntax.NodeID, name string, target names.Path) error {
	span := v.code.Span(node)
	if err := v.scopes.AddItem(v.scope, name, names.Alias(target, span)); err != nil {
		return fromNames(err, span, name)
	}
	if v.hook != nil {
		v.hook(v.scope, name, target, span)
	}
	return nil
}

func (v *UseClauseVisitor) visitUseDeclaration(node syntax.NodeID, prefix names.Path) (struct{}, error) {
	return v.d.visit(mustChild(v.code, node, syntax.FieldArgument), prefix)
}

// `use A as B` binds B to prefix ++ A.
func (v *UseClauseVisitor) visitUseAsClause(node syntax.NodeID, prefix names.Path) (struct{}, error) {
	path, err := v.paths.Visit(mustChild(v.code, node, syntax.FieldPath))
	if err != nil {
		return struct{}{}, err
	}
	alias := nodeText(v.code, mustChild(v.code, node, syntax.FieldAlias))
	return struct{}{}, v.register(node, alias, prefix.JoinWith(path))
}

// `{a, b}` visits every item under the same prefix.
func (v *UseClauseVisitor) visitUseList(node syntax.NodeID, prefix names.Path) (struct{}, error) {
	return struct{}{}, v.d.visitChildrenByField(node, syntax.FieldItem, prefix)
}

// `A::{...}` visits the list under prefix ++ A. The extended prefix only
// lives for the nested call.
func (v *UseClauseVisitor) visitScopedUseList(node syntax.NodeID, prefix names.Path) (struct{}, error) {
	suffix := names.Root()
	if path, ok := v.code.ChildByField(node, syntax.FieldPath); ok {
		var err error
		if suffix, err = v.paths.Visit(path); err != nil {
			return struct{}{}, err
		}
	}
	return v.d.visit(mustChild(v.code, node, syntax.FieldList), prefix.JoinWith(suffix))
}

// `N` binds N to prefix ++ N.
func (v *UseClauseVisitor) visitIdentifier(node syntax.NodeID, prefix names.Path) (struct{}, error) {
	name := nodeText(v.code, node)
	return struct{}{}, v.register(node, name, prefix.Extend(name))
}

// `A::B` binds B to prefix ++ A ++ B.
func (v *UseClauseVisitor) visitScopedIdentifier(node syntax.NodeID, prefix names.Path) (struct{}, error) {
	path := names.Root()
	if left, ok := v.code.ChildByField(node, syntax.FieldPath); ok {
		var err error
		if path, err = v.paths.Visit(left); err != nil {
			return struct{}{}, err
		}
	}
	name := nodeText(v.code, mustChild(v.code, node, syntax.FieldName))
	return struct{}{}, v.register(node, name, prefix.JoinWith(path.Extend(name)))
}
