// Package diag defines the diagnostic model shared by all front-end phases.
//
// Diagnostic is the central record: Severity, a compact numeric Code with a
// stable string form, a short Message, the Primary span and optional Notes.
//
// Phases emit through a Reporter so that emission is decoupled from storage.
// BagReporter collects into a Bag, which supports sorting and deduplication.
// Rendering lives in format.go (short single-line form and a pretty form with
// a source excerpt); it performs no IO beyond writing to the supplied writer.
package diag
