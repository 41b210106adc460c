package ir

import "corund/internal/types"

// ExprKind enumerates IR expression kinds.
type ExprKind uint8

const (
	// ExprVoid is the unit value.
	ExprVoid ExprKind = iota
	// ExprLit is a boolean or integer literal.
	ExprLit
	// ExprLocal references a binding.
	ExprLocal
	// ExprFn references a function item.
	ExprFn
	// ExprAssign stores rhs into lhs.
	ExprAssign
	// ExprUnreachable marks a program point assumed never reached.
	ExprUnreachable
	// ExprTupleIndex projects a tuple element.
	ExprTupleIndex
	// ExprField projects a struct field.
	ExprField
	// ExprDeref dereferences a pointer.
	ExprDeref
	// ExprRef takes the address of an lvalue.
	ExprRef
	// ExprIndex indexes a pointer or an array.
	ExprIndex
	// ExprCall calls a function value.
	ExprCall
	// ExprReturn leaves the current function.
	ExprReturn
	// ExprBlock is a canonical block: statements followed by a result.
	ExprBlock
)

// String returns a human-readable name for the expression kind.
func (k ExprKind) String() string {
	switch k {
	case ExprVoid:
		return "Void"
	case ExprLit:
		return "Lit"
	case ExprLocal:
		return "Local"
	case ExprFn:
		return "Fn"
	case ExprAssign:
		return "Assign"
	case ExprUnreachable:
		return "Unreachable"
	case ExprTupleIndex:
		return "TupleIndex"
	case ExprField:
		return "Field"
	case ExprDeref:
		return "Deref"
	case ExprRef:
		return "Ref"
	case ExprIndex:
		return "Index"
	case ExprCall:
		return "Call"
	case ExprReturn:
		return "Return"
	case ExprBlock:
		return "Block"
	default:
		return "Unknown"
	}
}

// ValueType is the value category of an expression.
type ValueType uint8

const (
	// RValue is a transient, non-addressable value.
	RValue ValueType = iota
	// LValue denotes an addressable storage location.
	LValue
)

func (v ValueType) String() string {
	if v == LValue {
		return "lvalue"
	}
	return "rvalue"
}

// Expr is an immutable typed IR node.
type Expr struct {
	Kind      ExprKind
	Type      types.TypeID
	ValueType ValueType
	IsConst   bool
	Data      ExprData // Kind-specific payload, nil for Void and Unreachable
}

// ExprData is the interface for expression-specific data.
type ExprData interface {
	exprData()
}

// LitKind enumerates literal kinds.
type LitKind uint8

const (
	LitBool LitKind = iota
	LitInt
)

// LitData holds data for ExprLit.
type LitData struct {
	Kind  LitKind
	Bool  bool
	Int   uint64
	Minus bool // знак для отрицательных целых
}

func (LitData) exprData() {}

// LocalData holds data for ExprLocal.
type LocalData struct {
	ID IrID
}

func (LocalData) exprData() {}

// FnData holds data for ExprFn.
type FnData struct {
	Item ItemID
}

func (FnData) exprData() {}

// AssignData holds data for ExprAssign.
type AssignData struct {
	Lhs *Expr
	Rhs *Expr
}

func (AssignData) exprData() {}

// TupleIndexData holds data for ExprTupleIndex.
type TupleIndexData struct {
	Tuple *Expr
	Index int
}

func (TupleIndexData) exprData() {}

// FieldData holds data for ExprField.
type FieldData struct {
	Object *Expr
	Field  IrID
}

func (FieldData) exprData() {}

// UnaryData holds the operand of ExprDeref and ExprRef.
type UnaryData struct {
	Inner *Expr
}

func (UnaryData) exprData() {}

// IndexData holds data for ExprIndex.
type IndexData struct {
	Inner *Expr
	Index *Expr
}

func (IndexData) exprData() {}

// CallData holds data for ExprCall.
type CallData struct {
	Callee *Expr
	Args   []*Expr
}

func (CallData) exprData() {}

// ReturnData holds data for ExprReturn.
type ReturnData struct {
	Value *Expr
}

func (ReturnData) exprData() {}

// BlockData holds data for ExprBlock. Result has the block's type.
type BlockData struct {
	Stmts  []Statement
	Result *Expr
}

func (BlockData) exprData() {}

// StmtKind enumerates statement kinds.
type StmtKind uint8

const (
	// StmtExpr evaluates an expression for its side effects.
	StmtExpr StmtKind = iota
)

// Statement is a unit inside a block. Order is significant.
type Statement struct {
	Kind StmtKind
	Expr *Expr
}

// ExprStmt wraps e into an expression statement.
func ExprStmt(e *Expr) Statement {
	return Statement{Kind: StmtExpr, Expr: e}
}
