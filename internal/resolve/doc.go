// Package resolve turns syntactic paths and `use` declarations into
// qualified names.Path values and binds aliases into the scope tree.
//
// ScopedPathVisitor resolves a single path node (`crate::a::b`, `super::x`,
// `::c`). UseClauseVisitor walks one use tree and registers an alias for
// every leaf; the import prefix is passed down by value so sibling branches
// never see each other's extensions. DeclareCrate walks a whole file,
// building module scopes and running the use visitor for each declaration.
//
// All user-facing failures are *Error values and abort the current use
// declaration only.
package resolve
