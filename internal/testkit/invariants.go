// Package testkit holds structural checks shared by tests and fuzz harnesses.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"corund/internal/source"
	"corund/internal/syntax"
)

// CheckSpanInvariants walks every node reachable from the root of tree:
// 1) spans point at sf and lie within its content
// 2) every child span is contained in its parent span
// 3) a node is reachable only once
func CheckSpanInvariants(tree *syntax.Tree, sf *source.File) error {
	if tree == nil || sf == nil {
		return fmt.Errorf("nil tree or file")
	}
	if !tree.Root.IsValid() {
		return fmt.Errorf("tree has no root")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	seen := make(map[syntax.NodeID]bool, tree.Len())
	var check func(id syntax.NodeID) error
	check = func(id syntax.NodeID) error {
		if seen[id] {
			return fmt.Errorf("node %d reachable twice", id)
		}
		seen[id] = true
		n := tree.Get(id)
		if n == nil {
			return fmt.Errorf("dangling node id=%d", id)
		}
		sp := n.Span
		if sp.File != sf.ID {
			return fmt.Errorf("%s span points to file %d, want %d", n.Kind, sp.File, sf.ID)
		}
		if sp.Start > sp.End || sp.End > lenContent {
			return fmt.Errorf("%s span %v out of bounds (len=%d)", n.Kind, sp, lenContent)
		}
		for _, c := range n.Children {
			child := tree.Get(c.Node)
			if child == nil {
				return fmt.Errorf("%s has dangling child id=%d", n.Kind, c.Node)
			}
			if !sp.Contains(child.Span) {
				return fmt.Errorf("%s span %v does not contain child %s span %v", n.Kind, sp, child.Kind, child.Span)
			}
			if err := check(c.Node); err != nil {
				return err
			}
		}
		return nil
	}
	return check(tree.Root)
}
