package parser

import (
	"corund/internal/diag"
	"corund/internal/source"
	"corund/internal/syntax"
	"corund/internal/token"
)

// advance съедает следующий токен и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF {
		p.lastSpan = tok.Span
	}
	return tok
}

// diagnosticSpan: на EOF указываем на позицию сразу после последнего токена.
func (p *Parser) diagnosticSpan() source.Span {
	peek := p.lx.Peek()
	if peek.Kind == token.EOF {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return peek.Span
}

// expect ожидает конкретный токен. Если его нет, репортим и возвращаем (invalid,false).
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	sp := p.diagnosticSpan()
	p.report(code, sp, msg)
	return token.Token{Kind: token.Invalid, Span: sp}, false
}

// репортует ошибку и передает текущий спан
func (p *Parser) err(code diag.Code, msg string) {
	p.report(code, p.diagnosticSpan(), msg)
}

func (p *Parser) report(code diag.Code, sp source.Span, msg string) {
	if p.opts.Reporter == nil {
		return
	}
	p.opts.CurrentErrors++
	if p.opts.MaxErrors == 0 || p.opts.CurrentErrors <= p.opts.MaxErrors {
		diag.ReportError(p.opts.Reporter, code, sp, msg).Emit()
	}
}

// parseIdentNode ожидает Ident и создаёт лист указанного вида.
func (p *Parser) parseIdentNode(kind syntax.Kind) (syntax.NodeID, bool) {
	if !p.at(token.Ident) {
		p.err(diag.SynExpectIdentifier, "expected identifier, got '"+p.lx.Peek().Text+"'")
		return syntax.NoNodeID, false
	}
	tok := p.advance()
	return p.tree.New(kind, tok.Span), true
}

func (p *Parser) node(kind syntax.Kind, span source.Span, children ...syntax.Child) syntax.NodeID {
	return p.tree.New(kind, span, children...)
}

func field(f syntax.Field, id syntax.NodeID) syntax.Child {
	return syntax.Child{Field: f, Node: id}
}
