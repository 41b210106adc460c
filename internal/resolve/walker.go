package resolve

import (
	"context"
	"errors"
	"fmt"

	"corund/internal/diag"
	"corund/internal/names"
	"corund/internal/source"
	"corund/internal/syntax"
	"corund/internal/trace"
)

// Options configures DeclareCrate.
type Options struct {
	Reporter diag.Reporter
	// WarnShadowing reports aliases hiding a name bound in an outer scope.
	WarnShadowing bool
}

// walker builds scopes for one crate.
type walker struct {
	ctx    context.Context
	scopes *names.Tree
	code   *syntax.Tree
	opts   Options
	tracer trace.Tracer
	span   uint64
	errs   int
}

// DeclareCrate creates a crate called name from code inside scopes,
// declares every item and registers every alias. A failing use declaration
// is reported and skipped; the walk continues with the next item.
// It returns the crate scope and the number of errors reported.
func DeclareCrate(ctx context.Context, scopes *names.Tree, name string, code *syntax.Tree, opts Options) (names.ScopeID, int) {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeCrate, "crate:"+name, trace.CurrentSpan(ctx))

	w := &walker{ctx: ctx, scopes: scopes, code: code, opts: opts, tracer: tracer, span: span.ID()}
	crate, err := scopes.NewCrate(name, code, code.Span(code.Root))
	if err != nil {
		w.report(fromNames(err, code.Span(code.Root), name))
		span.End("duplicate crate")
		return names.NoScopeID, w.errs
	}
	w.walkItems(crate, code.Root)
	span.WithExtra("errors", fmt.Sprint(w.errs)).End("")
	return crate, w.errs
}

func (w *walker) report(err *Error) {
	w.errs++
	err.Report(w.opts.Reporter)
}

func (w *walker) walkItems(scope names.ScopeID, parent syntax.NodeID) {
	for _, item := range w.code.ChildrenByField(parent, syntax.FieldBody) {
		if w.ctx.Err() != nil {
			return
		}
		w.walkItem(scope, item)
	}
}

func (w *walker) walkItem(scope names.ScopeID, node syntax.NodeID) {
	switch w.code.Kind(node) {
	case syntax.KindUseDeclaration:
		w.walkUse(scope, node)
	case syntax.KindModDefinition:
		nameNode := mustChild(w.code, node, syntax.FieldName)
		name := nodeText(w.code, nameNode)
		mod, err := w.scopes.NewModule(scope, name, w.code.Span(nameNode))
		if err != nil {
			w.report(fromNames(err, w.code.Span(nameNode), name))
			return
		}
		w.walkItems(mod, node)
	case syntax.KindImplBlock:
		w.walkItems(w.scopes.NewBlock(scope), node)
	case syntax.KindFunctionDefinition, syntax.KindExternFunctionDeclaration:
		w.declare(scope, node, names.ItemFunction)
	case syntax.KindStructDefinition:
		w.declare(scope, node, names.ItemStruct)
	case syntax.KindEnumDefinition:
		w.declare(scope, node, names.ItemEnum)
	default:
		w.report(&Error{Kind: UnexpectedNode, Span: w.code.Span(node), Name: w.code.Kind(node).String()})
	}
}

func (w *walker) declare(scope names.ScopeID, node syntax.NodeID, kind names.ItemKind) {
	nameNode := mustChild(w.code, node, syntax.FieldName)
	name := nodeText(w.code, nameNode)
	span := w.code.Span(nameNode)
	if err := w.scopes.AddItem(scope, name, names.NamedItem{Kind: kind, Span: span}); err != nil {
		w.report(fromNames(err, span, name))
	}
}

func (w *walker) walkUse(scope names.ScopeID, node syntax.NodeID) {
	v := NewUseClauseVisitor(w.scopes, scope).OnAlias(func(s names.ScopeID, name string, target names.Path, span source.Span) {
		trace.Point(w.tracer, trace.ScopeNode, "alias", name, w.span, "target", target.String())
		if w.opts.WarnShadowing {
			w.checkShadowing(s, name, span)
		}
	})
	if err := v.Visit(node); err != nil {
		var rerr *Error
		if errors.As(err, &rerr) {
			w.report(rerr)
			return
		}
		w.report(&Error{Kind: UnexpectedNode, Span: w.code.Span(node), Err: err})
	}
}

func (w *walker) checkShadowing(scope names.ScopeID, name string, span source.Span) {
	parent := w.scopes.Get(scope).Parent
	if !parent.IsValid() || parent == w.scopes.Root() {
		return
	}
	if prev, _, ok := w.scopes.Lookup(parent, name); ok {
		diag.ReportWarning(w.opts.Reporter, diag.ResShadowedAliasUse, span,
			fmt.Sprintf("alias %q shadows an outer %s", name, prev.Kind)).
			WithNote(prev.Span, "previous binding is here").
			Emit()
	}
}
