package syntax

import (
	"strings"
)

// SExpr renders the subtree rooted at id in the tree-sitter style:
//
//	(use_declaration argument: (scoped_identifier path: (identifier) name: (identifier)))
//
// Leaves carrying names (identifiers, literals) include their text in quotes.
func (t *Tree) SExpr(id NodeID) string {
	var sb strings.Builder
	t.writeSExpr(&sb, id)
	return sb.String()
}

func (t *Tree) writeSExpr(sb *strings.Builder, id NodeID) {
	n := t.Get(id)
	if n == nil {
		sb.WriteString("()")
		return
	}
	sb.WriteByte('(')
	sb.WriteString(n.Kind.String())
	switch n.Kind {
	case KindIdentifier, KindTypeIdentifier, KindPrimitiveType, KindIntegerLiteral:
		sb.WriteString(" \"")
		sb.WriteString(t.Text(id))
		sb.WriteByte('"')
	}
	for _, c := range n.Children {
		sb.WriteByte(' ')
		if c.Field != FieldNone {
			sb.WriteString(c.Field.String())
			sb.WriteString(": ")
		}
		t.writeSExpr(sb, c.Node)
	}
	sb.WriteByte(')')
}
