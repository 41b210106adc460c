package driver

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"

	"corund/internal/diag"
	"corund/internal/lexer"
	"corund/internal/names"
	"corund/internal/observ"
	"corund/internal/resolve"
	"corund/internal/source"
	"corund/internal/syntax"
	"corund/internal/trace"
)

// ErrNoInput is returned when Resolve gets no paths.
var ErrNoInput = errors.New("no input files")

// Options configures Resolve.
type Options struct {
	MaxDiagnostics int
	Jobs           int // parse parallelism, <= 0 means GOMAXPROCS
	CheckAliases   bool
	WarnShadowing  bool
	CrateName      string       // overrides the crate name of the first file
	Cache          *DiskCache   // nil disables caching
	Progress       ProgressSink // may be nil
}

// FileResult holds the outcome for one input file. Every input file is a crate.
type FileResult struct {
	Path  string
	Crate string
	File  *source.File // nil when the file could not be loaded
	Tree  *syntax.Tree // nil when not loaded or restored from cache
	Bag   *diag.Bag
}

// Result is the outcome of a resolve run.
type Result struct {
	FileSet *source.FileSet
	Files   []FileResult
	Scopes  *names.Tree // nil when restored from cache
	Aliases []AliasEntry
	Cached  bool
	Timing  observ.Report
}

// HasErrors reports whether any file has an error diagnostic.
func (r *Result) HasErrors() bool {
	for i := range r.Files {
		if r.Files[i].Bag.HasErrors() {
			return true
		}
	}
	return false
}

// Diagnostics merges the per-file bags in file order.
func (r *Result) Diagnostics() []diag.Diagnostic {
	var out []diag.Diagnostic
	for i := range r.Files {
		out = append(out, r.Files[i].Bag.Items()...)
	}
	return out
}

// CrateName derives a crate name from a file path: the base name without
// its extension, in NFC like identifiers read from source.
func CrateName(path string) string {
	base := filepath.Base(path)
	return norm.NFC.String(strings.TrimSuffix(base, filepath.Ext(base)))
}

// Resolve loads every path, parses the files in parallel and then declares
// each of them as a crate of one shared scope tree, sequentially and in
// input order. Source problems end up in the per-file bags; the returned
// error is reserved for cancellation and internal failures.
func Resolve(ctx context.Context, paths []string, opts Options) (*Result, error) {
	if len(paths) == 0 {
		return nil, ErrNoInput
	}
	tracer := trace.FromContext(ctx)
	root := trace.Begin(tracer, trace.ScopeDriver, "resolve", trace.CurrentSpan(ctx))
	defer root.End("")
	ctx = trace.WithSpan(ctx, root)

	timer := observ.NewTimer()
	res := &Result{FileSet: source.NewFileSet(), Files: make([]FileResult, len(paths))}

	loadFailed := loadFiles(res, paths, opts, timer)

	var key Digest
	if opts.Cache != nil && !loadFailed {
		key = cacheKey(res.Files, opts)
		if restoreFromCache(ctx, res, key, opts.Cache, timer) {
			emitFinal(opts.Progress, res.Files)
			res.Timing = timer.Report()
			root.WithExtra("cache", "hit")
			return res, nil
		}
	}

	if err := timer.Measure("parse", func() error { return parseAll(ctx, res, opts) }); err != nil {
		return nil, err
	}

	scopes := names.NewTree()
	if err := timer.Measure("resolve", func() error { return declareAll(ctx, res, scopes, opts) }); err != nil {
		return nil, err
	}
	res.Scopes = scopes
	res.Aliases = CollectAliases(scopes)
	for i := range res.Files {
		res.Files[i].Bag.Sort()
	}

	if opts.Cache != nil && !loadFailed {
		storeInCache(ctx, res, key, opts.Cache, timer)
	}
	emitFinal(opts.Progress, res.Files)
	res.Timing = timer.Report()
	return res, nil
}

// loadFiles reads every input into res.FileSet and reports whether any load failed.
func loadFiles(res *Result, paths []string, opts Options, timer *observ.Timer) bool {
	failed := false
	idx := timer.Begin("load")
	for i, path := range paths {
		fr := &res.Files[i]
		fr.Path = path
		fr.Crate = CrateName(path)
		fr.Bag = diag.NewBag(opts.MaxDiagnostics)
		emit(opts.Progress, path, StageLoad, StatusQueued)
		id, err := res.FileSet.Load(path)
		if err != nil {
			failed = true
			fr.Bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{File: source.NoFileID}, err.Error()))
			emit(opts.Progress, path, StageLoad, StatusError)
			continue
		}
		fr.File = res.FileSet.Get(id)
	}
	if opts.CrateName != "" {
		res.Files[0].Crate = opts.CrateName
	}
	for i := range res.Files {
		fr := &res.Files[i]
		if fr.File == nil || lexer.IsIdent(fr.Crate) {
			continue
		}
		// крейт всё равно объявляется, но `use` до него не дотянется
		msg := fmt.Sprintf("crate name %q of %s is not an identifier", fr.Crate, fr.Path)
		fr.Bag.Add(diag.NewError(diag.ResInvalidCrateName, source.Span{File: fr.File.ID}, msg))
	}
	note := ""
	if failed {
		note = "failed"
	}
	timer.End(idx, note)
	return failed
}

func parseAll(ctx context.Context, res *Result, opts Options) error {
	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "parse", trace.CurrentSpan(ctx))
	defer span.End("")

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	// индексы уникальны для каждой горутины, мьютекс не нужен
	for i := range res.Files {
		fr := &res.Files[i]
		if fr.File == nil {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			emit(opts.Progress, fr.Path, StageParse, StatusWorking)
			tree, err := parseFile(fr.File, fr.Bag, opts.MaxDiagnostics)
			if err != nil {
				return fmt.Errorf("parse %s: %w", fr.Path, err)
			}
			fr.Tree = tree
			return nil
		})
	}
	return g.Wait()
}

func declareAll(ctx context.Context, res *Result, scopes *names.Tree, opts Options) error {
	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "resolve", trace.CurrentSpan(ctx))
	defer span.End("")
	ctx = trace.WithSpan(ctx, span)

	bags := make(map[names.ScopeID]*diag.Bag, len(res.Files))
	for i := range res.Files {
		if err := ctx.Err(); err != nil {
			return err
		}
		fr := &res.Files[i]
		if fr.Tree == nil {
			continue
		}
		emit(opts.Progress, fr.Path, StageResolve, StatusWorking)
		crate, _ := resolve.DeclareCrate(ctx, scopes, fr.Crate, fr.Tree, resolve.Options{
			Reporter:      &diag.BagReporter{Bag: fr.Bag},
			WarnShadowing: opts.WarnShadowing,
		})
		if crate.IsValid() {
			bags[crate] = fr.Bag
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if opts.CheckAliases {
		resolve.CheckAliases(ctx, scopes, func(crate names.ScopeID) diag.Reporter {
			if bag, ok := bags[crate]; ok {
				return &diag.BagReporter{Bag: bag}
			}
			return nil
		})
	}
	return nil
}

func restoreFromCache(ctx context.Context, res *Result, key Digest, cache *DiskCache, timer *observ.Timer) bool {
	var payload Payload
	var hit bool
	_ = timer.Measure("cache", func() error {
		var err error
		hit, err = cache.Get(key, &payload)
		if err != nil {
			trace.Point(trace.FromContext(ctx), trace.ScopePass, "cache", "read failed", trace.CurrentSpan(ctx), "error", err.Error())
			hit = false
		}
		return err
	})
	if !hit || len(payload.Diagnostics) != len(res.Files) {
		return false
	}
	for i := range res.Files {
		for _, d := range payload.Diagnostics[i] {
			res.Files[i].Bag.Add(d)
		}
	}
	res.Aliases = payload.Aliases
	res.Cached = true
	return true
}

func storeInCache(ctx context.Context, res *Result, key Digest, cache *DiskCache, timer *observ.Timer) {
	payload := &Payload{
		Crates:      make([]string, len(res.Files)),
		Aliases:     res.Aliases,
		Diagnostics: make([][]diag.Diagnostic, len(res.Files)),
	}
	for i := range res.Files {
		payload.Crates[i] = res.Files[i].Crate
		payload.Diagnostics[i] = res.Files[i].Bag.Items()
	}
	// ошибка записи кэша не портит результат
	if err := timer.Measure("cache", func() error { return cache.Put(key, payload) }); err != nil {
		trace.Point(trace.FromContext(ctx), trace.ScopePass, "cache", "write failed", trace.CurrentSpan(ctx), "error", err.Error())
	}
}
