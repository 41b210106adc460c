package syntax

import (
	"fmt"

	"fortio.org/safecast"

	"corund/internal/source"
)

// NodeID identifies a node inside its Tree.
type NodeID uint32

// NoNodeID marks the absence of a node.
const NoNodeID NodeID = 0

// IsValid reports whether the ID refers to an allocated node.
func (id NodeID) IsValid() bool { return id != NoNodeID }

// Child is one ordered child slot, optionally labelled by a field.
type Child struct {
	Field Field
	Node  NodeID
}

// Node is a concrete syntax node. Nodes never change after the parser
// finishes the tree.
type Node struct {
	Kind     Kind
	Span     source.Span
	Children []Child
}

// Tree is an arena of nodes parsed from one file.
type Tree struct {
	File  *source.File
	Root  NodeID
	nodes []Node
}

// NewTree creates an empty tree over file; index 0 is reserved for NoNodeID.
func NewTree(file *source.File) *Tree {
	return &Tree{
		File:  file,
		nodes: make([]Node, 1, 64),
	}
}

// New allocates a node and returns its ID.
func (t *Tree) New(kind Kind, span source.Span, children ...Child) NodeID {
	value, err := safecast.Conv[uint32](len(t.nodes))
	if err != nil {
		panic(fmt.Errorf("syntax arena overflow: %w", err))
	}
	t.nodes = append(t.nodes, Node{Kind: kind, Span: span, Children: children})
	return NodeID(value)
}

// Get returns the node or nil for an invalid ID.
func (t *Tree) Get(id NodeID) *Node {
	if !id.IsValid() || int(id) >= len(t.nodes) {
		return nil
	}
	return &t.nodes[id]
}

// Kind returns the kind of the node, KindInvalid for unknown IDs.
func (t *Tree) Kind(id NodeID) Kind {
	if n := t.Get(id); n != nil {
		return n.Kind
	}
	return KindInvalid
}

// Span returns the node span.
func (t *Tree) Span(id NodeID) source.Span {
	if n := t.Get(id); n != nil {
		return n.Span
	}
	return source.Span{}
}

// Text slices the source text covered by the node.
func (t *Tree) Text(id NodeID) string {
	if t.File == nil {
		return ""
	}
	return t.File.Slice(t.Span(id))
}

// ChildByField returns the first child stored under field.
func (t *Tree) ChildByField(id NodeID, field Field) (NodeID, bool) {
	n := t.Get(id)
	if n == nil {
		return NoNodeID, false
	}
	for _, c := range n.Children {
		if c.Field == field {
			return c.Node, true
		}
	}
	return NoNodeID, false
}

// ChildrenByField returns all children stored under field in source order.
func (t *Tree) ChildrenByField(id NodeID, field Field) []NodeID {
	n := t.Get(id)
	if n == nil {
		return nil
	}
	var out []NodeID
	for _, c := range n.Children {
		if c.Field == field {
			out = append(out, c.Node)
		}
	}
	return out
}

// Children returns all children in source order.
func (t *Tree) Children(id NodeID) []NodeID {
	n := t.Get(id)
	if n == nil {
		return nil
	}
	out := make([]NodeID, 0, len(n.Children))
	for _, c := range n.Children {
		out = append(out, c.Node)
	}
	return out
}

// Len reports the number of allocated nodes.
func (t *Tree) Len() int { return len(t.nodes) - 1 }
