package ir

// Diverges reports whether e never returns control (its type is `!`).
func (c *Ctx) Diverges(e *Expr) bool {
	return e != nil && c.Types.IsNever(e.Type)
}

// Pure reports whether evaluating e has no observable side effect, so an
// expression statement of e can be dropped.
func Pure(e *Expr) bool {
	if e == nil {
		return true
	}
	switch e.Kind {
	case ExprVoid, ExprLit, ExprLocal, ExprFn:
		return true
	case ExprRef, ExprDeref:
		return Pure(e.Data.(UnaryData).Inner)
	case ExprField:
		return Pure(e.Data.(FieldData).Object)
	case ExprTupleIndex:
		return Pure(e.Data.(TupleIndexData).Tuple)
	case ExprIndex:
		data := e.Data.(IndexData)
		return Pure(data.Inner) && Pure(data.Index)
	default:
		return false
	}
}
