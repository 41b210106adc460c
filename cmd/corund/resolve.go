package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"corund/internal/config"
	"corund/internal/diag"
	"corund/internal/driver"
	"corund/internal/observ"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [flags] FILE...",
	Short: "Resolve crates and print the alias table",
	Long: `Resolve treats every FILE as a crate, declares their items into one scope tree
and prints every alias registered by use declarations`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().String("format", "text", "output format (text|yaml)")
	resolveCmd.Flags().Bool("check-aliases", false, "resolve every alias target through the scope tree")
	resolveCmd.Flags().Bool("warn-shadowing", false, "warn when an alias hides an outer name")
	resolveCmd.Flags().Bool("cache", false, "reuse results from the on-disk cache")
	resolveCmd.Flags().Int("jobs", 0, "max parallel parse workers (0=auto)")
	resolveCmd.Flags().String("crate-name", "", "crate name of the first file (default: file name)")
	resolveCmd.Flags().String("ui", "off", "progress view (auto|on|off)")
}

// resolveReport is the yaml form of a resolve run.
type resolveReport struct {
	Aliases  []driver.AliasEntry `yaml:"aliases"`
	Errors   int                 `yaml:"errors"`
	Warnings int                 `yaml:"warnings"`
	Cached   bool                `yaml:"cached,omitempty"`
	Timings  *observ.Report      `yaml:"timings,omitempty"`
}

func runResolve(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "text" && format != "yaml" {
		return fmt.Errorf("unknown format: %s", format)
	}
	timings, err := cmd.Flags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	cfg, err := config.Discover(".")
	if err != nil {
		return err
	}
	opts, err := resolveSettings(cmd, cfg)
	if err != nil {
		return err
	}

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	var res *driver.Result
	if shouldUseTUI(mode, len(args)) {
		res, err = resolveWithUI(cmd.Context(), args, opts)
	} else {
		res, err = driver.Resolve(cmd.Context(), args, opts)
	}
	if err != nil {
		return fmt.Errorf("resolve failed: %w", err)
	}

	diags := res.Diagnostics()
	if err := printDiagnostics(cmd, diags, res.FileSet); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "yaml":
		report := resolveReport{Aliases: res.Aliases, Cached: res.Cached}
		for i := range diags {
			if diags[i].Severity >= diag.SevError {
				report.Errors++
			} else {
				report.Warnings++
			}
		}
		if timings {
			report.Timings = &res.Timing
		}
		if err := writeYAML(out, report); err != nil {
			return err
		}
	default:
		if err := writeAliasTable(out, res.Aliases); err != nil {
			return err
		}
		if timings {
			fmt.Fprint(cmd.ErrOrStderr(), res.Timing.Summary())
		}
	}

	if hasErrors(diags) {
		return errReported
	}
	return nil
}

// writeAliasTable prints one alias per line, grouped by scope:
//
//	app::inner: s -> app::swap
func writeAliasTable(w io.Writer, aliases []driver.AliasEntry) error {
	width := 0
	for _, a := range aliases {
		width = max(width, len(scopeLabel(a)))
	}
	for _, a := range aliases {
		label := scopeLabel(a)
		if _, err := fmt.Fprintf(w, "%s:%s %s -> %s\n", label, strings.Repeat(" ", width-len(label)), a.Name, a.Target); err != nil {
			return err
		}
	}
	return nil
}

func scopeLabel(a driver.AliasEntry) string {
	if a.Block {
		return a.Scope + "::{block}"
	}
	return a.Scope
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
