package resolve

import (
	"errors"
	"fmt"

	"corund/internal/diag"
	"corund/internal/names"
	"corund/internal/source"
)

// ErrorKind classifies resolution failures.
type ErrorKind uint8

const (
	CrateNotAllowed ErrorKind = iota + 1
	SuperNotAllowed
	DuplicateName
	UnresolvedPath
	UnexpectedNode
	NotAModule
	AliasCycle
)

func (k ErrorKind) String() string {
	switch k {
	case CrateNotAllowed:
		return "crate not allowed"
	case SuperNotAllowed:
		return "super not allowed"
	case DuplicateName:
		return "duplicate name"
	case UnresolvedPath:
		return "unresolved path"
	case UnexpectedNode:
		return "unexpected node"
	case NotAModule:
		return "not a module"
	case AliasCycle:
		return "alias cycle"
	default:
		return "unknown"
	}
}

// Code maps the kind onto its diagnostic code.
func (k ErrorKind) Code() diag.Code {
	switch k {
	case CrateNotAllowed:
		return diag.ResCrateNotAllowed
	case SuperNotAllowed:
		return diag.ResSuperNotAllowed
	case DuplicateName:
		return diag.ResDuplicateName
	case UnresolvedPath:
		return diag.ResUnresolvedPath
	case NotAModule:
		return diag.ResNotAModule
	case AliasCycle:
		return diag.ResAliasCycle
	default:
		return diag.ResUnexpectedNode
	}
}

// Error is a resolution failure tied to the syntax node that caused it.
type Error struct {
	Kind ErrorKind
	Span source.Span
	Name string // offending name or path, may be empty
	Err  error  // underlying names error, may be nil
}

func (e *Error) Error() string {
	switch {
	case e.Name != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Name, e.Err)
	case e.Name != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Name)
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Message renders the text shown to users.
func (e *Error) Message() string {
	switch e.Kind {
	case CrateNotAllowed:
		return "`crate` can only be used inside a crate"
	case SuperNotAllowed:
		return "`super` has no parent module here"
	case DuplicateName:
		return fmt.Sprintf("%q is already defined in this scope", e.Name)
	case UnexpectedNode:
		return fmt.Sprintf("unexpected %s in this position", e.Name)
	}
	var pe *names.PathError
	if !errors.As(e.Err, &pe) {
		return e.Error()
	}
	switch e.Kind {
	case UnresolvedPath:
		if pe.Segment == "" {
			return fmt.Sprintf("%q refers to an empty path", e.Name)
		}
		if pe.At.IsRoot() {
			return fmt.Sprintf("cannot resolve %q: no crate named %q", pe.Path, pe.Segment)
		}
		return fmt.Sprintf("cannot resolve %q: no %q in %s", pe.Path, pe.Segment, pe.At)
	case NotAModule:
		return fmt.Sprintf("cannot resolve %q: %s is a %s, not a module", pe.Path, pe.At, pe.Kind)
	case AliasCycle:
		return fmt.Sprintf("alias %q never reaches an item (%s)", e.Name, pe.Path)
	default:
		return e.Error()
	}
}

// Report emits the error as a diagnostic.
func (e *Error) Report(r diag.Reporter) {
	diag.ReportError(r, e.Kind.Code(), e.Span, e.Message()).Emit()
}

// fromNames converts a names package error into an *Error.
func fromNames(err error, span source.Span, name string) *Error {
	kind := UnexpectedNode
	switch {
	case errors.Is(err, names.ErrDuplicateName):
		kind = DuplicateName
	case errors.Is(err, names.ErrUnresolved):
		kind = UnresolvedPath
	case errors.Is(err, names.ErrNotAModule):
		kind = NotAModule
	case errors.Is(err, names.ErrAliasCycle):
		kind = AliasCycle
	}
	return &Error{Kind: kind, Span: span, Name: name, Err: err}
}
