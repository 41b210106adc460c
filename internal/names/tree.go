package names

import (
	"errors"
	"fmt"

	"fortio.org/safecast"

	"corund/internal/source"
	"corund/internal/syntax"
)

var (
	// ErrDuplicateName is returned when a scope already binds the name.
	ErrDuplicateName = errors.New("name already defined in this scope")
	// ErrUnresolved is returned when a path segment names nothing.
	ErrUnresolved = errors.New("unresolved path")
	// ErrNotAModule is returned when a non-final segment is not a module.
	ErrNotAModule = errors.New("not a module")
	// ErrAliasCycle is returned when alias chasing does not terminate.
	ErrAliasCycle = errors.New("alias cycle")
)

// PathError describes where ResolvePath stopped. Err is one of ErrUnresolved,
// ErrNotAModule or ErrAliasCycle.
type PathError struct {
	Path    Path     // the path being resolved
	At      Path     // canonical prefix resolved before the failure
	Segment string   // segment that failed, empty for ErrAliasCycle
	Kind    ItemKind // ErrNotAModule: kind of the item at At
	Err     error
}

func (e *PathError) Error() string {
	switch {
	case errors.Is(e.Err, ErrNotAModule):
		return fmt.Sprintf("%s: %s %s is %v", e.Path, e.Kind, e.At, e.Err)
	case e.Segment != "":
		return fmt.Sprintf("%s: no %q in %s: %v", e.Path, e.Segment, e.At, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
}

func (e *PathError) Unwrap() error { return e.Err }

// maxAliasDepth bounds alias chasing in ResolvePath.
const maxAliasDepth = 32

// Tree stores all scopes of one compilation in a slice-based arena.
// Scopes are only mutated during name resolution.
type Tree struct {
	data []Scope
	root ScopeID
}

// NewTree creates a tree holding just the global root scope.
func NewTree() *Tree {
	t := &Tree{data: make([]Scope, 1, 32)} // index 0 reserved for NoScopeID
	t.root = t.newScope(ScopeRoot, "", NoScopeID, Root(), nil)
	return t
}

func (t *Tree) newScope(kind ScopeKind, name string, parent ScopeID, path Path, code *syntax.Tree) ScopeID {
	value, err := safecast.Conv[uint32](len(t.data))
	if err != nil {
		panic(fmt.Errorf("scopes arena overflow: %w", err))
	}
	id := ScopeID(value)
	t.data = append(t.data, Scope{
		Kind:   kind,
		Name:   name,
		Parent: parent,
		Path:   path,
		Items:  make(map[string]NamedItem),
		Code:   code,
	})
	return id
}

// Root returns the global scope.
func (t *Tree) Root() ScopeID { return t.root }

// Get returns the scope pointer or nil if ID is invalid.
func (t *Tree) Get(id ScopeID) *Scope {
	if !id.IsValid() || int(id) >= len(t.data) {
		return nil
	}
	return &t.data[id]
}

// Len reports total number of scopes excluding the sentinel.
func (t *Tree) Len() int { return len(t.data) - 1 }

// NewCrate creates a crate under the root and binds its name there.
func (t *Tree) NewCrate(name string, code *syntax.Tree, span source.Span) (ScopeID, error) {
	if _, exists := t.Get(t.root).Items[name]; exists {
		return NoScopeID, fmt.Errorf("crate %q: %w", name, ErrDuplicateName)
	}
	id := t.newScope(ScopeCrate, name, t.root, NewPath(name), code)
	if err := t.AddItem(t.root, name, NamedItem{Kind: ItemModule, Scope: id, Span: span}); err != nil {
		return NoScopeID, err
	}
	return id, nil
}

// NewModule creates module name inside parent and binds it there.
func (t *Tree) NewModule(parent ScopeID, name string, span source.Span) (ScopeID, error) {
	p := t.Get(parent)
	if p == nil {
		return NoScopeID, fmt.Errorf("module %q: invalid parent scope", name)
	}
	if _, exists := p.Items[name]; exists {
		return NoScopeID, fmt.Errorf("%q: %w", name, ErrDuplicateName)
	}
	id := t.newScope(ScopeModule, name, parent, p.Path.Extend(name), nil)
	if err := t.AddItem(parent, name, NamedItem{Kind: ItemModule, Scope: id, Span: span}); err != nil {
		return NoScopeID, err
	}
	return id, nil
}

// NewBlock creates an anonymous scope under parent.
func (t *Tree) NewBlock(parent ScopeID) ScopeID {
	var path Path
	if p := t.Get(parent); p != nil {
		path = p.Path
	}
	return t.newScope(ScopeBlock, "", parent, path, nil)
}

// AddItem binds name in scope. A scope never binds the same name twice.
func (t *Tree) AddItem(scope ScopeID, name string, item NamedItem) error {
	s := t.Get(scope)
	if s == nil {
		return fmt.Errorf("%q: invalid scope", name)
	}
	if _, exists := s.Items[name]; exists {
		return fmt.Errorf("%q: %w", name, ErrDuplicateName)
	}
	s.Items[name] = item
	s.Order = append(s.Order, name)
	return nil
}

// FindCrate returns the nearest crate scope at or above scope.
func (t *Tree) FindCrate(scope ScopeID) (ScopeID, bool) {
	for id := scope; id.IsValid(); id = t.data[id].Parent {
		if t.data[id].Kind == ScopeCrate {
			return id, true
		}
	}
	return NoScopeID, false
}

// nearestModule returns the closest crate or module scope at or above scope.
func (t *Tree) nearestModule(scope ScopeID) (ScopeID, bool) {
	for id := scope; id.IsValid(); id = t.data[id].Parent {
		if t.data[id].Kind.moduleLike() {
			return id, true
		}
	}
	return NoScopeID, false
}

// FindSuper returns the module enclosing the current module. It fails at a
// crate root and outside of any module.
func (t *Tree) FindSuper(scope ScopeID) (ScopeID, bool) {
	mod, ok := t.nearestModule(scope)
	if !ok || t.data[mod].Kind == ScopeCrate {
		return NoScopeID, false
	}
	return t.nearestModule(t.data[mod].Parent)
}

// Code returns the syntax tree the scope was built from.
func (t *Tree) Code(scope ScopeID) (*syntax.Tree, bool) {
	for id := scope; id.IsValid(); id = t.data[id].Parent {
		if code := t.data[id].Code; code != nil {
			return code, true
		}
	}
	return nil, false
}

// Lookup finds name in scope or its ancestors.
func (t *Tree) Lookup(scope ScopeID, name string) (NamedItem, ScopeID, bool) {
	for id := scope; id.IsValid(); id = t.data[id].Parent {
		if item, ok := t.data[id].Items[name]; ok {
			return item, id, true
		}
	}
	return NamedItem{}, NoScopeID, false
}

// ResolvePath walks path from the root, chasing aliases, and returns the
// item it names together with its canonical path.
func (t *Tree) ResolvePath(path Path) (NamedItem, Path, error) {
	return t.resolvePath(path, 0)
}

func (t *Tree) resolvePath(path Path, depth int) (NamedItem, Path, error) {
	if depth > maxAliasDepth {
		return NamedItem{}, Path{}, &PathError{Path: path, Err: ErrAliasCycle}
	}
	if path.IsRoot() {
		return NamedItem{}, Path{}, &PathError{Path: path, Err: ErrUnresolved}
	}
	current := t.root
	canonical := Root()
	for i, seg := range path.segments {
		item, ok := t.data[current].Items[seg]
		if !ok {
			return NamedItem{}, Path{}, &PathError{Path: path, At: canonical, Segment: seg, Err: ErrUnresolved}
		}
		canonical = canonical.Extend(seg)
		if item.Kind == ItemAlias {
			var err error
			item, canonical, err = t.resolvePath(item.Target, depth+1)
			if err != nil {
				return NamedItem{}, Path{}, err
			}
		}
		if i == len(path.segments)-1 {
			return item, canonical, nil
		}
		if item.Kind != ItemModule {
			return NamedItem{}, Path{}, &PathError{Path: path, At: canonical, Segment: path.segments[i+1], Kind: item.Kind, Err: ErrNotAModule}
		}
		current = item.Scope
	}
	return NamedItem{}, Path{}, &PathError{Path: path, Err: ErrUnresolved}
}

// Walk calls fn for every scope in creation order.
func (t *Tree) Walk(fn func(id ScopeID, s *Scope)) {
	for i := 1; i < len(t.data); i++ {
		fn(ScopeID(i), &t.data[i]) //nolint:gosec // i < len(data), which fits ScopeID
	}
}
