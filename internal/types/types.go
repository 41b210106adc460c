package types

import "fmt"

// TypeID uniquely identifies a type inside the interner.
type TypeID uint32

// NoTypeID marks the absence of a type.
const NoTypeID TypeID = 0

// Kind enumerates all supported kinds of types.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindVoid
	KindNever
	KindBool
	KindInt
	KindPointer
	KindArray
	KindTuple
	KindFn
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindVoid:
		return "void"
	case KindNever:
		return "never"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindPointer:
		return "pointer"
	case KindArray:
		return "array"
	case KindTuple:
		return "tuple"
	case KindFn:
		return "fn"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Width captures the precision of integers.
type Width uint8

const (
	WidthSize Width = 0 // usize / isize
	Width8    Width = 8
	Width16   Width = 16
	Width32   Width = 32
	Width64   Width = 64
	Width128  Width = 128
)

// Type is a compact descriptor for any supported type.
//
// Elem используется указателями и массивами, Count хранит длину массива,
// Payload указывает на слот в боковой таблице (кортежи, функции).
type Type struct {
	Kind    Kind
	Elem    TypeID
	Count   uint64
	Width   Width
	Signed  bool
	Const   bool // для указателей: &T против &mut T
	Payload uint32
}

// Descriptor helpers ---------------------------------------------------------

// MakeInt describes an integer of the given width.
func MakeInt(width Width, signed bool) Type {
	return Type{Kind: KindInt, Width: width, Signed: signed}
}

// MakePointer describes a pointer to elem; isConst marks read-only pointers.
func MakePointer(elem TypeID, isConst bool) Type {
	return Type{Kind: KindPointer, Elem: elem, Const: isConst}
}

// MakeArray describes a fixed-size array of elem.
func MakeArray(elem TypeID, count uint64) Type {
	return Type{Kind: KindArray, Elem: elem, Count: count}
}
