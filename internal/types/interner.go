package types

import (
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// Builtins stores TypeIDs for common primitive types.
type Builtins struct {
	Void  TypeID
	Never TypeID
	Bool  TypeID
	Usize TypeID
	Isize TypeID
	I32   TypeID
	U8    TypeID
}

// Interner provides stable TypeIDs by hashing structural descriptors.
// Два структурно равных описания всегда получают один и тот же TypeID.
type Interner struct {
	types    []Type
	index    map[typeKey]TypeID
	builtins Builtins

	tuples     []TupleInfo
	tupleIndex map[string]TypeID
	fns        []FnInfo
	fnIndex    map[string]TypeID
}

// TupleInfo stores the element types for a tuple type.
type TupleInfo struct {
	Elems []TypeID
}

// FnInfo stores metadata for function types.
type FnInfo struct {
	Params []TypeID
	Result TypeID
}

// NewInterner constructs an interner seeded with built-in primitives.
func NewInterner() *Interner {
	in := &Interner{
		index:      make(map[typeKey]TypeID, 64),
		tupleIndex: make(map[string]TypeID),
		fnIndex:    make(map[string]TypeID),
	}
	in.types = append(in.types, Type{}) // reserve 0 as NoTypeID
	in.tuples = append(in.tuples, TupleInfo{})
	in.fns = append(in.fns, FnInfo{})
	in.builtins.Void = in.Intern(Type{Kind: KindVoid})
	in.builtins.Never = in.Intern(Type{Kind: KindNever})
	in.builtins.Bool = in.Intern(Type{Kind: KindBool})
	in.builtins.Usize = in.Intern(MakeInt(WidthSize, false))
	in.builtins.Isize = in.Intern(MakeInt(WidthSize, true))
	in.builtins.I32 = in.Intern(MakeInt(Width32, true))
	in.builtins.U8 = in.Intern(MakeInt(Width8, false))
	return in
}

// Builtins returns TypeIDs for primitive types.
func (in *Interner) Builtins() Builtins {
	return in.builtins
}

// Intern ensures the provided descriptor has a stable TypeID.
// Tuples and functions go through Tuple and Fn.
func (in *Interner) Intern(t Type) TypeID {
	if t.Kind == KindInvalid {
		return NoTypeID
	}
	key := typeKey(t)
	if id, ok := in.index[key]; ok {
		return id
	}
	return in.internRaw(t)
}

func (in *Interner) internRaw(t Type) TypeID {
	lenTypes, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("len(types) overflow: %w", err))
	}
	id := TypeID(lenTypes)
	in.types = append(in.types, t)
	in.index[typeKey(t)] = id
	return id
}

// Pointer is shorthand for Intern(MakePointer(elem, isConst)).
func (in *Interner) Pointer(elem TypeID, isConst bool) TypeID {
	return in.Intern(MakePointer(elem, isConst))
}

// Array is shorthand for Intern(MakeArray(elem, count)).
func (in *Interner) Array(elem TypeID, count uint64) TypeID {
	return in.Intern(MakeArray(elem, count))
}

// Tuple creates or finds a tuple type with the given elements. The empty
// tuple is the void type.
func (in *Interner) Tuple(elems []TypeID) TypeID {
	if len(elems) == 0 {
		return in.builtins.Void
	}
	key := idsKey(elems)
	if id, ok := in.tupleIndex[key]; ok {
		return id
	}
	in.tuples = append(in.tuples, TupleInfo{Elems: cloneIDs(elems)})
	id := in.internRaw(Type{Kind: KindTuple, Payload: in.slot(len(in.tuples) - 1)})
	in.tupleIndex[key] = id
	return id
}

// Fn creates or finds a function type.
func (in *Interner) Fn(params []TypeID, result TypeID) TypeID {
	key := idsKey(params) + "->" + strconv.FormatUint(uint64(result), 10)
	if id, ok := in.fnIndex[key]; ok {
		return id
	}
	in.fns = append(in.fns, FnInfo{Params: cloneIDs(params), Result: result})
	id := in.internRaw(Type{Kind: KindFn, Payload: in.slot(len(in.fns) - 1)})
	in.fnIndex[key] = id
	return id
}

// TupleInfo returns the element types for a tuple TypeID.
func (in *Interner) TupleInfo(id TypeID) (*TupleInfo, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindTuple || int(tt.Payload) >= len(in.tuples) {
		return nil, false
	}
	return &in.tuples[tt.Payload], true
}

// FnInfo returns the signature for a function TypeID.
func (in *Interner) FnInfo(id TypeID) (*FnInfo, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindFn || int(tt.Payload) >= len(in.fns) {
		return nil, false
	}
	return &in.fns[tt.Payload], true
}

// Lookup returns the descriptor for a TypeID.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	if id == NoTypeID || int(id) >= len(in.types) {
		return Type{}, false
	}
	return in.types[id], true
}

// MustLookup panics when id is invalid.
func (in *Interner) MustLookup(id TypeID) Type {
	tt, ok := in.Lookup(id)
	if !ok {
		panic("types: invalid TypeID")
	}
	return tt
}

// IsNever reports whether id is the never type `!`.
func (in *Interner) IsNever(id TypeID) bool {
	return id != NoTypeID && id == in.builtins.Never
}

func (in *Interner) slot(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("side table overflow: %w", err))
	}
	return v
}

type typeKey struct {
	Kind    Kind
	Elem    TypeID
	Count   uint64
	Width   Width
	Signed  bool
	Const   bool
	Payload uint32
}

func idsKey(ids []TypeID) string {
	var sb strings.Builder
	for i, id := range ids {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(uint64(id), 10))
	}
	return sb.String()
}

func cloneIDs(ids []TypeID) []TypeID {
	if len(ids) == 0 {
		return nil
	}
	out := make([]TypeID, len(ids))
	copy(out, ids)
	return out
}
