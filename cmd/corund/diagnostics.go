package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"corund/internal/diag"
	"corund/internal/diagfmt"
	"corund/internal/source"
)

// printDiagnostics writes diags to stderr in the --diagnostics-format.
// auto is pretty when stderr is a terminal, short otherwise.
func printDiagnostics(cmd *cobra.Command, diags []diag.Diagnostic, fs *source.FileSet) error {
	if len(diags) == 0 {
		return nil
	}
	format, err := cmd.Flags().GetString("diagnostics-format")
	if err != nil {
		return err
	}
	if format == "auto" {
		format = "short"
		if isTerminal(os.Stderr) {
			format = "pretty"
		}
	}
	return writeDiagnostics(cmd.ErrOrStderr(), diags, fs, format)
}

func writeDiagnostics(w io.Writer, diags []diag.Diagnostic, fs *source.FileSet, format string) error {
	switch format {
	case "pretty":
		return diag.WritePretty(w, diags, fs, diag.PrettyOptions{Color: true, IncludeNotes: true})
	case "short":
		_, err := io.WriteString(w, diag.FormatShort(diags, fs))
		return err
	case "json":
		return diagfmt.JSON(w, diags, fs, diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true})
	default:
		return fmt.Errorf("unknown diagnostics format: %s", format)
	}
}

func hasErrors(diags []diag.Diagnostic) bool {
	for i := range diags {
		if diags[i].Severity >= diag.SevError {
			return true
		}
	}
	return false
}
