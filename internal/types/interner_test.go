package types

import "testing"

func TestInternerBuiltins(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	if b.Void == NoTypeID || b.Bool == NoTypeID || b.Never == NoTypeID {
		t.Fatalf("builtins not initialized")
	}
	void, _ := in.Lookup(b.Void)
	if void.Kind != KindVoid {
		t.Fatalf("expected void kind, got %v", void.Kind)
	}
	if !in.IsNever(b.Never) || in.IsNever(b.Void) {
		t.Fatalf("IsNever mismatch")
	}
}

func TestInternerDeduplicatesDescriptors(t *testing.T) {
	in := NewInterner()
	u8 := in.Intern(MakeInt(Width8, false))
	if u8 != in.Builtins().U8 {
		t.Fatalf("u8 should match builtin")
	}
	if in.Array(u8, 4) != in.Array(u8, 4) {
		t.Fatalf("array types should be deduplicated")
	}
	if in.Array(u8, 4) == in.Array(u8, 5) {
		t.Fatalf("array length must affect identity")
	}
}

func TestPointerConstnessAffectsIdentity(t *testing.T) {
	in := NewInterner()
	elem := in.Builtins().I32
	if in.Pointer(elem, true) == in.Pointer(elem, false) {
		t.Fatalf("const and mutable pointers must differ")
	}
}

func TestTupleAndFnAreHashConsed(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	t1 := in.Tuple([]TypeID{b.I32, b.Bool})
	t2 := in.Tuple([]TypeID{b.I32, b.Bool})
	if t1 != t2 {
		t.Fatalf("tuples should be deduplicated")
	}
	if in.Tuple([]TypeID{b.Bool, b.I32}) == t1 {
		t.Fatalf("element order must affect identity")
	}
	if in.Tuple(nil) != b.Void {
		t.Fatalf("empty tuple must be void")
	}
	f1 := in.Fn([]TypeID{b.Usize}, b.Never)
	if f1 != in.Fn([]TypeID{b.Usize}, b.Never) {
		t.Fatalf("fn types should be deduplicated")
	}
	if f1 == in.Fn([]TypeID{b.Usize}, b.Void) {
		t.Fatalf("result type must affect identity")
	}
	info, ok := in.TupleInfo(t1)
	if !ok || len(info.Elems) != 2 || info.Elems[1] != b.Bool {
		t.Fatalf("tuple info = %+v", info)
	}
}

func TestString(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	tests := []struct {
		id   TypeID
		want string
	}{
		{b.Void, "()"},
		{b.Never, "!"},
		{b.Usize, "usize"},
		{in.Intern(MakeInt(Width64, true)), "i64"},
		{in.Pointer(b.U8, true), "&u8"},
		{in.Pointer(b.U8, false), "&mut u8"},
		{in.Array(b.Bool, 3), "[bool; 3]"},
		{in.Tuple([]TypeID{b.I32}), "(i32,)"},
		{in.Tuple([]TypeID{b.I32, b.Bool}), "(i32, bool)"},
		{in.Fn([]TypeID{b.Usize, b.Bool}, b.Never), "fn(usize, bool) -> !"},
	}
	for _, tt := range tests {
		if got := in.String(tt.id); got != tt.want {
			t.Fatalf("String = %q, want %q", got, tt.want)
		}
	}
}
