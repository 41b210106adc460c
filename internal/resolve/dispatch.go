package resolve

import (
	"golang.org/x/text/unicode/norm"

	"corund/internal/syntax"
)

// handler visits one node with an argument threaded down by value.
type handler[A, R any] func(node syntax.NodeID, arg A) (R, error)

// dispatch maps node kinds to handlers. Kinds without a handler are
// rejected with UnexpectedNode.
type dispatch[A, R any] struct {
	tree     *syntax.Tree
	handlers map[syntax.Kind]handler[A, R]
}

func (d *dispatch[A, R]) visit(node syntax.NodeID, arg A) (R, error) {
	kind := d.tree.Kind(node)
	if h, ok := d.handlers[kind]; ok {
		return h(node, arg)
	}
	var zero R
	return zero, &Error{Kind: UnexpectedNode, Span: d.tree.Span(node), Name: kind.String()}
}

// visitChildrenByField visits every child stored under field, stopping at
// the first error.
func (d *dispatch[A, R]) visitChildrenByField(node syntax.NodeID, field syntax.Field, arg A) error {
	for _, child := range d.tree.ChildrenByField(node, field) {
		if _, err := d.visit(child, arg); err != nil {
			return err
		}
	}
	return nil
}

// mustChild returns a child the grammar guarantees to exist.
func mustChild(tree *syntax.Tree, node syntax.NodeID, field syntax.Field) syntax.NodeID {
	child, ok := tree.ChildByField(node, field)
	if !ok {
		panic("resolve: " + tree.Kind(node).String() + " without " + field.String())
	}
	return child
}

// nodeText returns the NFC-normalized source text of node, so identifiers
// that differ only in Unicode composition name the same thing.
func nodeText(tree *syntax.Tree, node syntax.NodeID) string {
	return norm.NFC.String(tree.Text(node))
}
