package parser

import (
	"corund/internal/diag"
	"corund/internal/syntax"
	"corund/internal/token"
)

func (p *Parser) parseMod() (syntax.NodeID, bool) {
	modTok := p.advance()
	name, ok := p.parseIdentNode(syntax.KindIdentifier)
	if !ok {
		return syntax.NoNodeID, false
	}
	children := []syntax.Child{field(syntax.FieldName, name)}
	if p.at(token.Lt) {
		args, ok := p.parseGenericArgumentList()
		if !ok {
			return syntax.NoNodeID, false
		}
		children = append(children, field(syntax.FieldNone, args))
	}
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' after module name"); !ok {
		return syntax.NoNodeID, false
	}
	body := p.parseItems(token.RBrace)
	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close module")
	if !ok {
		return syntax.NoNodeID, false
	}
	children = append(children, body...)
	return p.node(syntax.KindModDefinition, modTok.Span.Cover(closeTok.Span), children...), true
}

func (p *Parser) parseImpl() (syntax.NodeID, bool) {
	implTok := p.advance()
	name, ok := p.parseIdentNode(syntax.KindIdentifier)
	if !ok {
		return syntax.NoNodeID, false
	}
	children := []syntax.Child{field(syntax.FieldName, name)}
	if p.at(token.Lt) {
		args, ok := p.parseGenericArgumentList()
		if !ok {
			return syntax.NoNodeID, false
		}
		children = append(children, field(syntax.FieldTypeArguments, args))
	}
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' after impl name"); !ok {
		return syntax.NoNodeID, false
	}
	body := p.parseItems(token.RBrace)
	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close impl block")
	if !ok {
		return syntax.NoNodeID, false
	}
	children = append(children, body...)
	return p.node(syntax.KindImplBlock, implTok.Span.Cover(closeTok.Span), children...), true
}

// parseSignature разбирает `name [<T, ...>] (params) [-> type]`.
func (p *Parser) parseSignature() ([]syntax.Child, bool) {
	name, ok := p.parseIdentNode(syntax.KindIdentifier)
	if !ok {
		return nil, false
	}
	children := []syntax.Child{field(syntax.FieldName, name)}
	if p.at(token.Lt) {
		args, ok := p.parseGenericArgumentList()
		if !ok {
			return nil, false
		}
		children = append(children, field(syntax.FieldTypeArguments, args))
	}
	params, ok := p.parseParameterList()
	if !ok {
		return nil, false
	}
	children = append(children, field(syntax.FieldParameters, params))
	if p.at(token.Arrow) {
		p.advance()
		ret, ok := p.parseType()
		if !ok {
			return nil, false
		}
		children = append(children, field(syntax.FieldReturnType, ret))
	}
	return children, true
}

// parseGenericArgumentList разбирает `<T, U,>`: только имена параметров.
func (p *Parser) parseGenericArgumentList() (syntax.NodeID, bool) {
	open := p.advance()
	var args []syntax.Child
	for !p.at(token.Gt) && !p.at(token.EOF) {
		arg, ok := p.parseIdentNode(syntax.KindIdentifier)
		if !ok {
			return syntax.NoNodeID, false
		}
		args = append(args, field(syntax.FieldArgument, arg))
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	closeTok, ok := p.expect(token.Gt, diag.SynUnexpectedToken, "expected '>' to close generic arguments")
	if !ok {
		return syntax.NoNodeID, false
	}
	return p.node(syntax.KindGenericArgumentList, open.Span.Cover(closeTok.Span), args...), true
}

func (p *Parser) parseParameterList() (syntax.NodeID, bool) {
	open, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' to start parameter list")
	if !ok {
		return syntax.NoNodeID, false
	}
	var params []syntax.Child
	for !p.at(token.RParen) && !p.at(token.EOF) {
		name, ok := p.parseIdentNode(syntax.KindIdentifier)
		if !ok {
			return syntax.NoNodeID, false
		}
		if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after parameter name"); !ok {
			return syntax.NoNodeID, false
		}
		typ, ok := p.parseType()
		if !ok {
			return syntax.NoNodeID, false
		}
		span := p.tree.Span(name).Cover(p.tree.Span(typ))
		param := p.node(syntax.KindParameter, span, field(syntax.FieldName, name), field(syntax.FieldType, typ))
		params = append(params, field(syntax.FieldParameter, param))
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	closeTok, ok := p.expect(token.RParen, diag.SynUnexpectedToken, "expected ')' to close parameter list")
	if !ok {
		return syntax.NoNodeID, false
	}
	return p.node(syntax.KindParameterList, open.Span.Cover(closeTok.Span), params...), true
}

func (p *Parser) parseFn() (syntax.NodeID, bool) {
	fnTok := p.advance()
	children, ok := p.parseSignature()
	if !ok {
		return syntax.NoNodeID, false
	}
	body, ok := p.parseOpaqueBlock()
	if !ok {
		return syntax.NoNodeID, false
	}
	children = append(children, field(syntax.FieldBody, body))
	return p.node(syntax.KindFunctionDefinition, fnTok.Span.Cover(p.tree.Span(body)), children...), true
}

func (p *Parser) parseExternFn() (syntax.NodeID, bool) {
	externTok := p.advance()
	if _, ok := p.expect(token.KwFn, diag.SynUnexpectedToken, "expected 'fn' after 'extern'"); !ok {
		return syntax.NoNodeID, false
	}
	children, ok := p.parseSignature()
	if !ok {
		return syntax.NoNodeID, false
	}
	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after extern function")
	if !ok {
		return syntax.NoNodeID, false
	}
	return p.node(syntax.KindExternFunctionDeclaration, externTok.Span.Cover(semi.Span), children...), true
}

// parseOpaqueBlock съедает сбалансированный `{ ... }`. Тела функций не нужны
// фазе разрешения имён, поэтому сохраняется только span.
func (p *Parser) parseOpaqueBlock() (syntax.NodeID, bool) {
	open, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' to start function body")
	if !ok {
		return syntax.NoNodeID, false
	}
	depth := 1
	for depth > 0 {
		tok := p.advance()
		switch tok.Kind {
		case token.LBrace:
			depth++
		case token.RBrace:
			depth--
		case token.EOF:
			p.report(diag.SynUnclosedBrace, open.Span, "unclosed function body")
			return syntax.NoNodeID, false
		}
	}
	return p.node(syntax.KindBlock, open.Span.Cover(p.lastSpan)), true
}

func (p *Parser) parseStruct() (syntax.NodeID, bool) {
	structTok := p.advance()
	name, ok := p.parseIdentNode(syntax.KindIdentifier)
	if !ok {
		return syntax.NoNodeID, false
	}
	children := []syntax.Child{field(syntax.FieldName, name)}
	if p.at(token.Lt) {
		args, ok := p.parseGenericArgumentList()
		if !ok {
			return syntax.NoNodeID, false
		}
		children = append(children, field(syntax.FieldTypeArguments, args))
	}
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' after struct name"); !ok {
		return syntax.NoNodeID, false
	}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		fieldName, ok := p.parseIdentNode(syntax.KindIdentifier)
		if !ok {
			return syntax.NoNodeID, false
		}
		if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after field name"); !ok {
			return syntax.NoNodeID, false
		}
		typ, ok := p.parseType()
		if !ok {
			return syntax.NoNodeID, false
		}
		span := p.tree.Span(fieldName).Cover(p.tree.Span(typ))
		children = append(children, field(syntax.FieldBody,
			p.node(syntax.KindStructField, span, field(syntax.FieldName, fieldName), field(syntax.FieldType, typ))))
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close struct")
	if !ok {
		return syntax.NoNodeID, false
	}
	return p.node(syntax.KindStructDefinition, structTok.Span.Cover(closeTok.Span), children...), true
}

func (p *Parser) parseEnum() (syntax.NodeID, bool) {
	enumTok := p.advance()
	name, ok := p.parseIdentNode(syntax.KindIdentifier)
	if !ok {
		return syntax.NoNodeID, false
	}
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' after enum name"); !ok {
		return syntax.NoNodeID, false
	}
	children := []syntax.Child{field(syntax.FieldName, name)}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		item, ok := p.parseIdentNode(syntax.KindIdentifier)
		if !ok {
			return syntax.NoNodeID, false
		}
		children = append(children, field(syntax.FieldBody,
			p.node(syntax.KindEnumItem, p.tree.Span(item), field(syntax.FieldName, item))))
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close enum")
	if !ok {
		return syntax.NoNodeID, false
	}
	return p.node(syntax.KindEnumDefinition, enumTok.Span.Cover(closeTok.Span), children...), true
}
