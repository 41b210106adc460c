// Package token defines lexical token kinds for the corund front end.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly.
//   - Comments are skipped by the lexer and never appear in the token stream.
//   - Primitive type names (i32, usize, bool, ...) are identifiers.
package token
