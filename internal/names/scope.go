package names

import (
	"corund/internal/source"
	"corund/internal/syntax"
)

// ScopeID identifies a scope in the tree arena.
type ScopeID uint32

// NoScopeID marks the absence of a scope reference.
const NoScopeID ScopeID = 0

// IsValid reports whether the scope ID refers to an allocated scope.
func (id ScopeID) IsValid() bool { return id != NoScopeID }

// ScopeKind enumerates supported scope categories.
type ScopeKind uint8

const (
	ScopeInvalid ScopeKind = iota
	ScopeRoot              // global scope holding crates
	ScopeCrate             // crate root
	ScopeModule            // `mod` body
	ScopeBlock             // impl bodies and other anonymous scopes
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeRoot:
		return "root"
	case ScopeCrate:
		return "crate"
	case ScopeModule:
		return "module"
	case ScopeBlock:
		return "block"
	default:
		return "invalid"
	}
}

// moduleLike reports whether the scope contributes a path segment.
func (k ScopeKind) moduleLike() bool {
	return k == ScopeCrate || k == ScopeModule
}

// ItemKind enumerates what a name in a scope is bound to.
type ItemKind uint8

const (
	ItemInvalid ItemKind = iota
	ItemAlias
	ItemModule
	ItemFunction
	ItemStruct
	ItemEnum
)

func (k ItemKind) String() string {
	switch k {
	case ItemAlias:
		return "alias"
	case ItemModule:
		return "module"
	case ItemFunction:
		return "function"
	case ItemStruct:
		return "struct"
	case ItemEnum:
		return "enum"
	default:
		return "invalid"
	}
}

// NamedItem is the binding of a name inside a scope.
type NamedItem struct {
	Kind   ItemKind
	Target Path    // ItemAlias
	Scope  ScopeID // ItemModule: the module's own scope
	Span   source.Span
}

// Alias builds an alias item pointing at target.
func Alias(target Path, span source.Span) NamedItem {
	return NamedItem{Kind: ItemAlias, Target: target, Span: span}
}

// Scope is a lexical symbol table chained to its parent.
type Scope struct {
	Kind   ScopeKind
	Name   string
	Parent ScopeID
	Path   Path // for block scopes, the path of the enclosing module
	Items  map[string]NamedItem
	Order  []string     // имена в порядке регистрации
	Code   *syntax.Tree // nil for the root; blocks inherit from parents
}
