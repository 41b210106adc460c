package ir

import (
	"fmt"

	"corund/internal/types"
)

// Builder is the only way to construct IR nodes.
type Builder struct {
	ctx *Ctx
}

// NewBuilder creates a builder allocating into ctx.
func NewBuilder(ctx *Ctx) *Builder {
	return &Builder{ctx: ctx}
}

func (b *Builder) rvalue(kind ExprKind, typ types.TypeID, data ExprData) *Expr {
	return b.ctx.alloc(Expr{Kind: kind, Type: typ, ValueType: RValue, Data: data})
}

// constRValue builds a compile-time constant rvalue such as a literal.
func (b *Builder) constRValue(kind ExprKind, typ types.TypeID, data ExprData) *Expr {
	return b.ctx.alloc(Expr{Kind: kind, Type: typ, ValueType: RValue, IsConst: true, Data: data})
}

func (b *Builder) lvalue(kind ExprKind, typ types.TypeID, isConst bool, data ExprData) *Expr {
	return b.ctx.alloc(Expr{Kind: kind, Type: typ, ValueType: LValue, IsConst: isConst, Data: data})
}

// Local references binding id of type typ.
func (b *Builder) Local(id IrID, typ types.TypeID) *Expr {
	return b.lvalue(ExprLocal, typ, false, LocalData{ID: id})
}

// Assign builds `lhs = rhs`. lhs is not checked to be an lvalue; type
// checking guarantees assignable targets.
func (b *Builder) Assign(lhs, rhs *Expr) *Expr {
	return b.rvalue(ExprAssign, b.ctx.Types.Builtins().Void, AssignData{Lhs: lhs, Rhs: rhs})
}

// Void builds the unit value.
func (b *Builder) Void() *Expr {
	return b.rvalue(ExprVoid, b.ctx.Types.Builtins().Void, nil)
}

// Function references item as a constant lvalue of type fn(params) -> ret.
func (b *Builder) Function(item ItemID) *Expr {
	fn := b.ctx.Function(item)
	params := make([]types.TypeID, 0, len(fn.Params))
	for _, p := range fn.Params {
		params = append(params, p.Type)
	}
	return b.lvalue(ExprFn, b.ctx.Types.Fn(params, fn.Return), true, FnData{Item: item})
}

// Unreachable marks a point the program never reaches.
func (b *Builder) Unreachable() *Expr {
	return b.rvalue(ExprUnreachable, b.ctx.Types.Builtins().Never, nil)
}

// BoolLit builds a boolean literal.
func (b *Builder) BoolLit(v bool) *Expr {
	return b.constRValue(ExprLit, b.ctx.Types.Builtins().Bool, LitData{Kind: LitBool, Bool: v})
}

// IntLit builds an integer literal of type typ.
func (b *Builder) IntLit(v int64, typ types.TypeID) *Expr {
	data := LitData{Kind: LitInt}
	if v < 0 {
		data.Minus = true
		data.Int = uint64(-(v + 1)) + 1
	} else {
		data.Int = uint64(v)
	}
	return b.constRValue(ExprLit, typ, data)
}

// TupleIndex projects element index of tuple. The element type comes from
// the type checker; value category and constness follow the operand.
func (b *Builder) TupleIndex(tuple *Expr, index int, typ types.TypeID) *Expr {
	return b.ctx.alloc(Expr{
		Kind:      ExprTupleIndex,
		Type:      typ,
		ValueType: tuple.ValueType,
		IsConst:   tuple.IsConst,
		Data:      TupleIndexData{Tuple: tuple, Index: index},
	})
}

// Field projects field of obj. Same rules as TupleIndex.
func (b *Builder) Field(obj *Expr, field IrID, typ types.TypeID) *Expr {
	return b.ctx.alloc(Expr{
		Kind:      ExprField,
		Type:      typ,
		ValueType: obj.ValueType,
		IsConst:   obj.IsConst,
		Data:      FieldData{Object: obj, Field: field},
	})
}

// Deref dereferences a pointer; the result is an lvalue, const when the
// pointer is.
func (b *Builder) Deref(inner *Expr) *Expr {
	tt := b.ctx.Types.MustLookup(inner.Type)
	if tt.Kind != types.KindPointer {
		panic(fmt.Sprintf("ir: deref of non-pointer type %s", b.ctx.Types.String(inner.Type)))
	}
	return b.lvalue(ExprDeref, tt.Elem, tt.Const, UnaryData{Inner: inner})
}

// Ref takes the address of an lvalue.
func (b *Builder) Ref(inner *Expr) *Expr {
	if inner.ValueType != LValue {
		panic(fmt.Sprintf("ir: reference to %s %s", inner.ValueType, inner.Kind))
	}
	return b.rvalue(ExprRef, b.ctx.Types.Pointer(inner.Type, inner.IsConst), UnaryData{Inner: inner})
}

// Index indexes a pointer or an array. For pointers constness comes from the
// pointer type; for arrays it comes from the array expression itself, since
// array mutability belongs to the binding.
func (b *Builder) Index(inner, index *Expr) *Expr {
	tt := b.ctx.Types.MustLookup(inner.Type)
	data := IndexData{Inner: inner, Index: index}
	switch tt.Kind {
	case types.KindPointer:
		return b.lvalue(ExprIndex, tt.Elem, tt.Const, data)
	case types.KindArray:
		return b.lvalue(ExprIndex, tt.Elem, inner.IsConst, data)
	default:
		panic(fmt.Sprintf("ir: cannot index type %s", b.ctx.Types.String(inner.Type)))
	}
}

// Call applies callee to args. The callee must have a function type.
func (b *Builder) Call(callee *Expr, args ...*Expr) *Expr {
	info, ok := b.ctx.Types.FnInfo(callee.Type)
	if !ok {
		panic(fmt.Sprintf("ir: call of non-function type %s", b.ctx.Types.String(callee.Type)))
	}
	if len(info.Params) != len(args) {
		panic(fmt.Sprintf("ir: call with %d arguments, want %d", len(args), len(info.Params)))
	}
	return b.rvalue(ExprCall, info.Result, CallData{Callee: callee, Args: append([]*Expr(nil), args...)})
}

// Return leaves the function with value (nil means void).
func (b *Builder) Return(value *Expr) *Expr {
	if value == nil {
		value = b.Void()
	}
	return b.rvalue(ExprReturn, b.ctx.Types.Builtins().Never, ReturnData{Value: value})
}
