//nolint:errcheck // Type assertions are checked by construction
package ir

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes e as a single-line s-expression:
//
//	(block (assign %1:i32 1:i32) => void)
func Dump(w io.Writer, ctx *Ctx, e *Expr) error {
	p := printer{ctx: ctx}
	p.expr(e)
	_, err := io.WriteString(w, p.sb.String())
	return err
}

// Format returns the Dump rendering of e.
func Format(ctx *Ctx, e *Expr) string {
	p := printer{ctx: ctx}
	p.expr(e)
	return p.sb.String()
}

type printer struct {
	ctx *Ctx
	sb  strings.Builder
}

func (p *printer) printf(format string, args ...any) {
	fmt.Fprintf(&p.sb, format, args...)
}

func (p *printer) typ(e *Expr) string {
	return p.ctx.Types.String(e.Type)
}

func (p *printer) expr(e *Expr) {
	if e == nil {
		p.sb.WriteString("<nil>")
		return
	}
	switch e.Kind {
	case ExprVoid:
		p.sb.WriteString("void")
	case ExprUnreachable:
		p.sb.WriteString("unreachable")
	case ExprLit:
		data := e.Data.(LitData)
		if data.Kind == LitBool {
			p.printf("%t", data.Bool)
			return
		}
		sign := ""
		if data.Minus {
			sign = "-"
		}
		p.printf("%s%d:%s", sign, data.Int, p.typ(e))
	case ExprLocal:
		p.printf("%%%d:%s", e.Data.(LocalData).ID, p.typ(e))
	case ExprFn:
		p.printf("fn %s", p.ctx.Function(e.Data.(FnData).Item).Name)
	case ExprAssign:
		data := e.Data.(AssignData)
		p.open("assign", data.Lhs, data.Rhs)
	case ExprTupleIndex:
		data := e.Data.(TupleIndexData)
		p.sb.WriteString("(tuple_index ")
		p.expr(data.Tuple)
		p.printf(" %d)", data.Index)
	case ExprField:
		data := e.Data.(FieldData)
		p.sb.WriteString("(field ")
		p.expr(data.Object)
		p.printf(" #%d)", data.Field)
	case ExprDeref:
		p.open("deref", e.Data.(UnaryData).Inner)
	case ExprRef:
		p.open("ref", e.Data.(UnaryData).Inner)
	case ExprIndex:
		data := e.Data.(IndexData)
		p.open("index", data.Inner, data.Index)
	case ExprCall:
		data := e.Data.(CallData)
		p.open("call", append([]*Expr{data.Callee}, data.Args...)...)
	case ExprReturn:
		p.open("return", e.Data.(ReturnData).Value)
	case ExprBlock:
		data := e.Data.(BlockData)
		p.sb.WriteString("(block")
		for _, s := range data.Stmts {
			p.sb.WriteByte(' ')
			p.expr(s.Expr)
		}
		p.sb.WriteString(" => ")
		p.expr(data.Result)
		p.sb.WriteByte(')')
	default:
		p.printf("<%s>", e.Kind)
	}
}

func (p *printer) open(head string, args ...*Expr) {
	p.sb.WriteByte('(')
	p.sb.WriteString(head)
	for _, a := range args {
		p.sb.WriteByte(' ')
		p.expr(a)
	}
	p.sb.WriteByte(')')
}
