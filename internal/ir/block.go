package ir

// fillBlock appends canonical statements to target. When a divergent
// statement is met it is returned and the rest of stmts is dropped.
func (b *Builder) fillBlock(target *[]Statement, stmts []Statement) *Expr {
	for _, stmt := range stmts {
		e := stmt.Expr
		switch {
		case b.ctx.Diverges(e):
			return e
		case e.Kind == ExprBlock:
			data := e.Data.(BlockData)
			if div := b.fillBlock(target, data.Stmts); div != nil {
				return div
			}
			// результат вложенного блока становится обычным statement
			if div := b.fillBlock(target, []Statement{ExprStmt(data.Result)}); div != nil {
				return div
			}
		case Pure(e):
			// no-op
		default:
			*target = append(*target, stmt)
		}
	}
	return nil
}

// Block builds a canonical block. When nothing but ret survives, ret itself
// is returned and no block node is allocated.
func (b *Builder) Block(stmts []Statement, ret *Expr) *Expr {
	var merged []Statement
	if div := b.fillBlock(&merged, stmts); div != nil {
		ret = div
	}
	if len(merged) == 0 {
		return ret
	}
	return b.rvalue(ExprBlock, ret.Type, BlockData{Stmts: merged, Result: ret})
}

// Diverges builds a void-result block from exprs and asserts it diverges.
// Callers use it for branches known to diverge; extra trailing expressions
// are allowed and discarded.
func (b *Builder) Diverges(exprs ...*Expr) *Expr {
	stmts := make([]Statement, 0, len(exprs))
	for _, e := range exprs {
		stmts = append(stmts, ExprStmt(e))
	}
	block := b.Block(stmts, b.Void())
	if !b.ctx.Diverges(block) {
		panic("ir: diverges: block does not diverge")
	}
	return block
}
