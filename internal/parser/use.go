package parser

import (
	"corund/internal/diag"
	"corund/internal/syntax"
	"corund/internal/token"
)

// parseUseDeclaration распознаёт формы:
//
//	use a::b;                 // scoped_identifier
//	use a::b as c;            // use_as_clause
//	use a::{b, c::{d}};       // scoped_use_list
//	use {a, b};               // use_list
//	use ::{a};                // scoped_use_list без пути (от корня)
func (p *Parser) parseUseDeclaration() (syntax.NodeID, bool) {
	useTok := p.advance()
	clause, ok := p.parseUseClause()
	if !ok {
		return syntax.NoNodeID, false
	}
	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after use declaration")
	if !ok {
		return syntax.NoNodeID, false
	}
	return p.node(syntax.KindUseDeclaration, useTok.Span.Cover(semi.Span), field(syntax.FieldArgument, clause)), true
}

func (p *Parser) parseUseClause() (syntax.NodeID, bool) {
	if p.at(token.LBrace) {
		return p.parseUseList()
	}
	if !p.lx.Peek().IsPathStart() {
		p.err(diag.SynExpectPath, "expected path or '{' in use clause, got '"+p.lx.Peek().Text+"'")
		return syntax.NoNodeID, false
	}
	start := p.lx.Peek().Span
	path, braced, ok := p.parsePath(true)
	if !ok {
		return syntax.NoNodeID, false
	}
	if braced {
		list, ok := p.parseUseList()
		if !ok {
			return syntax.NoNodeID, false
		}
		children := make([]syntax.Child, 0, 2)
		if path.IsValid() {
			children = append(children, field(syntax.FieldPath, path))
		}
		children = append(children, field(syntax.FieldList, list))
		return p.node(syntax.KindScopedUseList, start.Cover(p.tree.Span(list)), children...), true
	}
	if p.at(token.KwAs) {
		p.advance()
		alias, ok := p.parseIdentNode(syntax.KindIdentifier)
		if !ok {
			return syntax.NoNodeID, false
		}
		span := p.tree.Span(path).Cover(p.tree.Span(alias))
		return p.node(syntax.KindUseAsClause, span, field(syntax.FieldPath, path), field(syntax.FieldAlias, alias)), true
	}
	return path, true
}

func (p *Parser) parseUseList() (syntax.NodeID, bool) {
	open := p.advance() // '{'
	var items []syntax.Child
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		item, ok := p.parseUseClause()
		if !ok {
			return syntax.NoNodeID, false
		}
		items = append(items, field(syntax.FieldItem, item))
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close use list")
	if !ok {
		return syntax.NoNodeID, false
	}
	span := open.Span.Cover(closeTok.Span)
	if len(items) == 0 {
		diag.ReportWarning(p.opts.Reporter, diag.SynEmptyUseList, span, "use list imports nothing").Emit()
	}
	return p.node(syntax.KindUseList, span, items...), true
}
