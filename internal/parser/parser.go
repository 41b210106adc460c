package parser

import (
	"slices"

	"corund/internal/diag"
	"corund/internal/lexer"
	"corund/internal/source"
	"corund/internal/syntax"
	"corund/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Parser хранит состояние парсера на один файл
type Parser struct {
	lx       *lexer.Lexer
	tree     *syntax.Tree
	opts     Options
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
}

// ParseFile: входная точка для разбора одного файла.
func ParseFile(file *source.File, opts Options) *syntax.Tree {
	lx := lexer.New(file, lexer.Options{Reporter: opts.Reporter})
	p := Parser{
		lx:       lx,
		tree:     syntax.NewTree(file),
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}
	p.tree.Root = p.parseSourceFile()
	return p.tree
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

func (p *Parser) parseSourceFile() syntax.NodeID {
	start := p.lx.Peek().Span
	items := p.parseItems(token.EOF)
	return p.tree.New(syntax.KindSourceFile, start.Cover(p.lx.Peek().Span), items...)
}

// parseItems разбирает элементы до закрывающего токена (EOF или '}').
func (p *Parser) parseItems(closing token.Kind) []syntax.Child {
	var items []syntax.Child
	for !p.at(closing) && !p.at(token.EOF) {
		if p.opts.Enough() {
			p.skipToEOF()
			break
		}
		before := p.lx.Peek().Span.Start
		id, ok := p.parseItem()
		if !ok {
			p.resyncTop()
			if p.lx.Peek().Span.Start == before && !p.at(closing) {
				p.advance() // гарантируем прогресс
			}
			continue
		}
		items = append(items, syntax.Child{Field: syntax.FieldBody, Node: id})
	}
	return items
}

// parseItem выбирает по первому токену нужный распознаватель top-level конструкции.
func (p *Parser) parseItem() (syntax.NodeID, bool) {
	var attr syntax.NodeID
	if p.at(token.Hash) {
		var ok bool
		if attr, ok = p.parseAttribute(); !ok {
			return syntax.NoNodeID, false
		}
	}

	var (
		id syntax.NodeID
		ok bool
	)
	switch p.lx.Peek().Kind {
	case token.KwUse:
		id, ok = p.parseUseDeclaration()
	case token.KwMod:
		id, ok = p.parseMod()
	case token.KwFn:
		id, ok = p.parseFn()
	case token.KwExtern:
		id, ok = p.parseExternFn()
	case token.KwStruct:
		id, ok = p.parseStruct()
	case token.KwEnum:
		id, ok = p.parseEnum()
	case token.KwImpl:
		id, ok = p.parseImpl()
	default:
		p.err(diag.SynUnexpectedTopLevel, "expected item, got '"+p.lx.Peek().Text+"'")
		return syntax.NoNodeID, false
	}
	if ok && attr.IsValid() {
		n := p.tree.Get(id)
		n.Children = append([]syntax.Child{{Node: attr}}, n.Children...)
		n.Span = n.Span.Cover(p.tree.Span(attr))
	}
	return id, ok
}

func (p *Parser) parseAttribute() (syntax.NodeID, bool) {
	hash := p.advance()
	if _, ok := p.expect(token.LBracket, diag.SynUnexpectedToken, "expected '[' after '#'"); !ok {
		return syntax.NoNodeID, false
	}
	var names []syntax.Child
	for {
		name, ok := p.parseIdentNode(syntax.KindIdentifier)
		if !ok {
			return syntax.NoNodeID, false
		}
		names = append(names, syntax.Child{Node: name})
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	closeTok, ok := p.expect(token.RBracket, diag.SynUnexpectedToken, "expected ']' to close attribute")
	if !ok {
		return syntax.NoNodeID, false
	}
	return p.tree.New(syntax.KindAttribute, hash.Span.Cover(closeTok.Span), names...), true
}

// resyncTop пропускает токены до конца текущего элемента: ';' или '}' на нулевой
// глубине, либо начало следующего элемента.
func (p *Parser) resyncTop() {
	depth := 0
	for !p.at(token.EOF) {
		tok := p.lx.Peek()
		switch tok.Kind {
		case token.LBrace:
			depth++
		case token.RBrace:
			if depth == 0 {
				return
			}
			depth--
			if depth == 0 {
				p.advance()
				return
			}
		case token.Semicolon:
			if depth == 0 {
				p.advance()
				return
			}
		case token.KwUse, token.KwMod, token.KwFn, token.KwExtern, token.KwStruct, token.KwEnum, token.KwImpl:
			if depth == 0 {
				return
			}
		}
		p.advance()
	}
}

func (p *Parser) skipToEOF() {
	for !p.at(token.EOF) {
		p.advance()
	}
}
