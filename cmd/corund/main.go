package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"corund/internal/prof"
	"corund/internal/version"
)

// errReported means diagnostics with errors were already printed; the
// process exits with 1 without another message.
var errReported = errors.New("errors reported")

// profiling is started by the root pre-run hook and stopped in main.
var profiling *prof.Session

var rootCmd = &cobra.Command{
	Use:           "corund",
	Short:         "Front end for crate name resolution",
	Long:          `corund parses source files and resolves their modules, items and use declarations`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		colorFlag, err := cmd.Flags().GetString("color")
		if err != nil {
			return err
		}
		switch colorFlag {
		case "auto":
			color.NoColor = !isTerminal(os.Stdout)
		case "on":
			color.NoColor = false
		case "off":
			color.NoColor = true
		default:
			return fmt.Errorf("invalid --color value %q (expected auto|on|off)", colorFlag)
		}
		return startProfiling(cmd)
	},
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().String("diagnostics-format", "auto", "diagnostics format (auto|short|pretty|json)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics per file")
	rootCmd.PersistentFlags().String("trace", "", "trace output file (- for stderr, *.ndjson for NDJSON)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace level (off|phase|detail|debug)")
	rootCmd.PersistentFlags().String("trace-format", "auto", "trace format (auto|text|ndjson)")
	rootCmd.PersistentFlags().String("trace-mode", "stream", "trace storage (stream|ring: keep the last events, write them on exit)")
	rootCmd.PersistentFlags().Int("trace-ring-size", 4096, "events kept by --trace-mode=ring")
	rootCmd.PersistentFlags().String("cpuprofile", "", "write a CPU profile to file")
	rootCmd.PersistentFlags().String("memprofile", "", "write a heap profile to file on exit")
	rootCmd.PersistentFlags().String("exectrace", "", "write a runtime execution trace to file")

	err := rootCmd.Execute()
	if stopErr := profiling.Stop(); stopErr != nil {
		fmt.Fprintf(os.Stderr, "profile: %v\n", stopErr)
	}
	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func startProfiling(cmd *cobra.Command) error {
	var opts prof.Options
	var err error
	if opts.CPU, err = cmd.Flags().GetString("cpuprofile"); err != nil {
		return err
	}
	if opts.Mem, err = cmd.Flags().GetString("memprofile"); err != nil {
		return err
	}
	if opts.Trace, err = cmd.Flags().GetString("exectrace"); err != nil {
		return err
	}
	if opts == (prof.Options{}) {
		return nil
	}
	profiling, err = prof.Start(opts)
	return err
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits int
}
