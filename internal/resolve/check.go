package resolve

import (
	"context"

	"corund/internal/diag"
	"corund/internal/names"
	"corund/internal/trace"
)

// CheckAliases resolves the target of every alias through the scope tree.
// Failures are reported to the reporter returned by reporterFor for the
// crate owning the alias. It returns the number of failures.
func CheckAliases(ctx context.Context, scopes *names.Tree, reporterFor func(crate names.ScopeID) diag.Reporter) int {
	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "check-aliases", trace.CurrentSpan(ctx))
	failed := 0
	scopes.Walk(func(id names.ScopeID, s *names.Scope) {
		crate, _ := scopes.FindCrate(id)
		for _, name := range s.Order {
			item := s.Items[name]
			if item.Kind != names.ItemAlias {
				continue
			}
			if _, _, err := scopes.ResolvePath(item.Target); err != nil {
				failed++
				var r diag.Reporter
				if reporterFor != nil {
					r = reporterFor(crate)
				}
				fromNames(err, item.Span, name).Report(r)
			}
		}
	})
	span.End("")
	return failed
}
