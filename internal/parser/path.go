package parser

import (
	"corund/internal/diag"
	"corund/internal/syntax"
	"corund/internal/token"
)

var primitiveTypes = map[string]struct{}{
	"u8": {}, "u16": {}, "u32": {}, "u64": {}, "u128": {}, "usize": {},
	"i8": {}, "i16": {}, "i32": {}, "i64": {}, "i128": {}, "isize": {},
	"f32": {}, "f64": {}, "bool": {},
}

// parsePathHead разбирает первый сегмент пути: ident, crate, super.
// Ведущий '::' даёт отсутствующий head (NoNodeID), то есть корень.
func (p *Parser) parsePathHead() (syntax.NodeID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Ident:
		p.advance()
		return p.node(syntax.KindIdentifier, tok.Span), true
	case token.KwCrate:
		p.advance()
		return p.node(syntax.KindCrate, tok.Span), true
	case token.KwSuper:
		p.advance()
		return p.node(syntax.KindSuper, tok.Span), true
	case token.ColonColon:
		return syntax.NoNodeID, true
	default:
		p.err(diag.SynExpectPath, "expected path, got '"+tok.Text+"'")
		return syntax.NoNodeID, false
	}
}

// extendPath строит scoped_identifier поверх left (left может отсутствовать).
func (p *Parser) extendPath(left, name syntax.NodeID, kind syntax.Kind) syntax.NodeID {
	span := p.tree.Span(name)
	children := make([]syntax.Child, 0, 2)
	if left.IsValid() {
		span = p.tree.Span(left).Cover(span)
		children = append(children, field(syntax.FieldPath, left))
	}
	children = append(children, field(syntax.FieldName, name))
	return p.node(kind, span, children...)
}

// parsePath разбирает `head (:: ident)*`. Если stopAtBrace, то `::{` не
// поглощается и остаётся для scoped_use_list; флаг braced сообщает об этом.
func (p *Parser) parsePath(stopAtBrace bool) (path syntax.NodeID, braced, ok bool) {
	head, ok := p.parsePathHead()
	if !ok {
		return syntax.NoNodeID, false, false
	}
	path = head
	for p.at(token.ColonColon) {
		colons := p.advance()
		if p.at(token.LBrace) && stopAtBrace {
			return path, true, true
		}
		name, ok := p.parseIdentNode(syntax.KindIdentifier)
		if !ok {
			return syntax.NoNodeID, false, false
		}
		if !path.IsValid() {
			// `::name` это путь от корня; span включает ведущий '::'
			path = p.extendPath(syntax.NoNodeID, name, syntax.KindScopedIdentifier)
			n := p.tree.Get(path)
			n.Span = colons.Span.Cover(n.Span)
			continue
		}
		path = p.extendPath(path, name, syntax.KindScopedIdentifier)
	}
	if !path.IsValid() {
		p.err(diag.SynExpectPath, "expected path after '::'")
		return syntax.NoNodeID, false, false
	}
	return path, false, true
}

// parseType разбирает тип сигнатуры.
func (p *Parser) parseType() (syntax.NodeID, bool) {
	tok := p.lx.Peek()
	switch {
	case tok.Kind == token.Punct && tok.Text == "!":
		p.advance()
		return p.node(syntax.KindNeverType, tok.Span), true
	case tok.Kind == token.Amp:
		p.advance()
		inner, ok := p.parseType()
		if !ok {
			return syntax.NoNodeID, false
		}
		return p.node(syntax.KindPointerOf, tok.Span.Cover(p.tree.Span(inner)), field(syntax.FieldInner, inner)), true
	case tok.Kind == token.LBracket:
		return p.parseArrayType()
	case tok.Kind == token.LParen:
		return p.parseTupleType()
	case tok.Kind == token.KwFn:
		return p.parseFunctionPointer()
	case tok.Kind == token.Ident:
		if _, prim := primitiveTypes[tok.Text]; prim {
			p.advance()
			return p.node(syntax.KindPrimitiveType, tok.Span), true
		}
		fallthrough
	case tok.IsPathStart():
		path, _, ok := p.parsePath(false)
		if !ok {
			return syntax.NoNodeID, false
		}
		path = p.asTypePath(path)
		if !p.at(token.Lt) {
			return path, true
		}
		args, ok := p.parseTypeArguments()
		if !ok {
			return syntax.NoNodeID, false
		}
		span := p.tree.Span(path).Cover(p.tree.Span(args))
		return p.node(syntax.KindGenericType, span, field(syntax.FieldType, path), field(syntax.FieldTypeArguments, args)), true
	default:
		p.err(diag.SynExpectType, "expected type, got '"+tok.Text+"'")
		return syntax.NoNodeID, false
	}
}

// asTypePath переписывает внешний узел пути в type_identifier / scoped_type_identifier.
func (p *Parser) asTypePath(path syntax.NodeID) syntax.NodeID {
	n := p.tree.Get(path)
	switch n.Kind {
	case syntax.KindIdentifier:
		n.Kind = syntax.KindTypeIdentifier
	case syntax.KindScopedIdentifier:
		n.Kind = syntax.KindScopedTypeIdentifier
		if name, ok := p.tree.ChildByField(path, syntax.FieldName); ok {
			p.tree.Get(name).Kind = syntax.KindTypeIdentifier
		}
	}
	return path
}

func (p *Parser) parseArrayType() (syntax.NodeID, bool) {
	open := p.advance()
	inner, ok := p.parseType()
	if !ok {
		return syntax.NoNodeID, false
	}
	kind := syntax.KindSliceOf
	children := []syntax.Child{field(syntax.FieldInner, inner)}
	if p.at(token.Semicolon) {
		p.advance()
		size, ok := p.expect(token.IntLit, diag.SynUnexpectedToken, "expected array length")
		if !ok {
			return syntax.NoNodeID, false
		}
		kind = syntax.KindArrayOf
		children = append(children, field(syntax.FieldSize, p.node(syntax.KindIntegerLiteral, size.Span)))
	}
	closeTok, ok := p.expect(token.RBracket, diag.SynUnexpectedToken, "expected ']'")
	if !ok {
		return syntax.NoNodeID, false
	}
	return p.node(kind, open.Span.Cover(closeTok.Span), children...), true
}

func (p *Parser) parseTupleType() (syntax.NodeID, bool) {
	open := p.advance()
	var elems []syntax.Child
	for !p.at(token.RParen) && !p.at(token.EOF) {
		elem, ok := p.parseType()
		if !ok {
			return syntax.NoNodeID, false
		}
		elems = append(elems, field(syntax.FieldElement, elem))
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	closeTok, ok := p.expect(token.RParen, diag.SynUnexpectedToken, "expected ')'")
	if !ok {
		return syntax.NoNodeID, false
	}
	return p.node(syntax.KindTupleType, open.Span.Cover(closeTok.Span), elems...), true
}

// parseTypeArguments разбирает `<i32, &T>` после имени типа. Хотя бы один тип обязателен.
func (p *Parser) parseTypeArguments() (syntax.NodeID, bool) {
	open := p.advance()
	var args []syntax.Child
	for {
		arg, ok := p.parseType()
		if !ok {
			return syntax.NoNodeID, false
		}
		args = append(args, field(syntax.FieldNone, arg))
		if !p.at(token.Comma) {
			break
		}
		p.advance()
		if p.at(token.Gt) {
			break
		}
	}
	closeTok, ok := p.expect(token.Gt, diag.SynUnexpectedToken, "expected '>' to close type arguments")
	if !ok {
		return syntax.NoNodeID, false
	}
	return p.node(syntax.KindTypeArguments, open.Span.Cover(closeTok.Span), args...), true
}

// parseFunctionPointer разбирает `fn(T, U) [-> R]`.
func (p *Parser) parseFunctionPointer() (syntax.NodeID, bool) {
	fnTok := p.advance()
	open, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'fn'")
	if !ok {
		return syntax.NoNodeID, false
	}
	var params []syntax.Child
	for !p.at(token.RParen) && !p.at(token.EOF) {
		typ, ok := p.parseType()
		if !ok {
			return syntax.NoNodeID, false
		}
		params = append(params, field(syntax.FieldParameter, typ))
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	closeTok, ok := p.expect(token.RParen, diag.SynUnexpectedToken, "expected ')' to close parameter types")
	if !ok {
		return syntax.NoNodeID, false
	}
	list := p.node(syntax.KindParameterTypeList, open.Span.Cover(closeTok.Span), params...)
	children := []syntax.Child{field(syntax.FieldParameters, list)}
	span := fnTok.Span.Cover(closeTok.Span)
	if p.at(token.Arrow) {
		p.advance()
		ret, ok := p.parseType()
		if !ok {
			return syntax.NoNodeID, false
		}
		children = append(children, field(syntax.FieldReturnType, ret))
		span = span.Cover(p.tree.Span(ret))
	}
	return p.node(syntax.KindFunctionPointer, span, children...), true
}
