package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"corund/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] FILE",
	Short: "Parse a source file and dump its syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	maxDiagnostics, err := cmd.Flags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	result, err := driver.Parse(args[0], maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	if err := printDiagnostics(cmd, result.Bag.Items(), result.FileSet); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), result.Tree.SExpr(result.Tree.Root)); err != nil {
		return err
	}
	if result.Bag.HasErrors() {
		return errReported
	}
	return nil
}
