package names

import "strings"

// Path is an immutable qualified name. The zero value is the root path.
// Extend and JoinWith always copy, so a Path can be shared freely and
// passed down recursive calls by value.
type Path struct {
	segments []string
}

// Root returns the empty path.
func Root() Path { return Path{} }

// NewPath builds a path from segments.
func NewPath(segments ...string) Path {
	return Path{segments: append([]string(nil), segments...)}
}

// Extend returns p with one more trailing segment.
func (p Path) Extend(segment string) Path {
	out := make([]string, len(p.segments), len(p.segments)+1)
	copy(out, p.segments)
	return Path{segments: append(out, segment)}
}

// JoinWith returns p ++ suffix.
func (p Path) JoinWith(suffix Path) Path {
	if len(suffix.segments) == 0 {
		return p
	}
	out := make([]string, 0, len(p.segments)+len(suffix.segments))
	out = append(out, p.segments...)
	return Path{segments: append(out, suffix.segments...)}
}

// IsRoot reports whether p has no segments.
func (p Path) IsRoot() bool { return len(p.segments) == 0 }

// Len returns the number of segments.
func (p Path) Len() int { return len(p.segments) }

// Segments returns a copy of the segments.
func (p Path) Segments() []string {
	return append([]string(nil), p.segments...)
}

// Last returns the final segment or "" for the root.
func (p Path) Last() string {
	if len(p.segments) == 0 {
		return ""
	}
	return p.segments[len(p.segments)-1]
}

// Equal compares paths segment by segment.
func (p Path) Equal(other Path) bool {
	if len(p.segments) != len(other.segments) {
		return false
	}
	for i := range p.segments {
		if p.segments[i] != other.segments[i] {
			return false
		}
	}
	return true
}

// String renders `a::b::c`; the root path renders as `::`.
func (p Path) String() string {
	if len(p.segments) == 0 {
		return "::"
	}
	return strings.Join(p.segments, "::")
}
