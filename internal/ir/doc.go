// Package ir provides the typed intermediate representation consumed by
// lowering.
//
// Every node is allocated from a Ctx and never changes after construction.
// Nodes are built only through Builder, whose smart constructors enforce type
// and value-category rules and canonicalize blocks on the fly: nested blocks
// are flattened, pure statements are dropped and everything after a divergent
// statement is discarded. Invariant violations are compiler bugs and panic
// with an "ir:" prefix instead of producing diagnostics.
package ir
