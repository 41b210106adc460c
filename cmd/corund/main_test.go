package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"corund/internal/config"
	"corund/internal/diag"
	"corund/internal/driver"
	"corund/internal/source"
	"corund/internal/trace"
)

func newResolveFlags(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "resolve"}
	cmd.Flags().Int("max-diagnostics", 100, "")
	cmd.Flags().Int("jobs", 0, "")
	cmd.Flags().Bool("check-aliases", false, "")
	cmd.Flags().Bool("warn-shadowing", false, "")
	cmd.Flags().Bool("cache", false, "")
	cmd.Flags().String("crate-name", "", "")
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	return cmd
}

func TestResolveSettingsPrecedence(t *testing.T) {
	cfg := config.Default()
	cfg.Package.Name = "app"
	cfg.Resolve.CheckAliases = true
	cfg.Resolve.Jobs = 3

	opts, err := resolveSettings(newResolveFlags(t), cfg)
	if err != nil {
		t.Fatalf("resolveSettings: %v", err)
	}
	if opts.CrateName != "app" || !opts.CheckAliases || opts.Jobs != 3 || opts.MaxDiagnostics != 100 {
		t.Fatalf("config values lost: %+v", opts)
	}

	opts, err = resolveSettings(newResolveFlags(t, "--check-aliases=false", "--jobs=1", "--crate-name=main", "--max-diagnostics=5"), cfg)
	if err != nil {
		t.Fatalf("resolveSettings: %v", err)
	}
	if opts.CrateName != "main" || opts.CheckAliases || opts.Jobs != 1 || opts.MaxDiagnostics != 5 {
		t.Fatalf("flags must win: %+v", opts)
	}
	if opts.Cache != nil {
		t.Fatalf("cache enabled without request")
	}
}

func TestResolveSettingsCacheDirRelativeToManifest(t *testing.T) {
	root := t.TempDir()
	cfg := config.Default()
	cfg.Path = filepath.Join(root, config.FileName)
	cfg.Cache = config.CacheSection{Enabled: true, Dir: "build/cache"}

	opts, err := resolveSettings(newResolveFlags(t), cfg)
	if err != nil {
		t.Fatalf("resolveSettings: %v", err)
	}
	if opts.Cache == nil || opts.Cache.Dir() != filepath.Join(root, "build", "cache") {
		t.Fatalf("cache dir = %q", opts.Cache.Dir())
	}
}

func TestWriteAliasTable(t *testing.T) {
	var buf bytes.Buffer
	err := writeAliasTable(&buf, []driver.AliasEntry{
		{Crate: "app", Scope: "app", Name: "swap", Target: "lib::mem::swap"},
		{Crate: "app", Scope: "app::inner", Name: "s", Target: "app::swap"},
		{Crate: "app", Scope: "app", Block: true, Name: "t", Target: "app::T"},
	})
	if err != nil {
		t.Fatalf("writeAliasTable: %v", err)
	}
	want := "" +
		"app:          swap -> lib::mem::swap\n" +
		"app::inner:   s -> app::swap\n" +
		"app::{block}: t -> app::T\n"
	if buf.String() != want {
		t.Fatalf("table:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWriteYAMLReport(t *testing.T) {
	var buf bytes.Buffer
	report := resolveReport{
		Aliases: []driver.AliasEntry{{Crate: "app", Scope: "app", Name: "b", Target: "a::b"}},
		Errors:  1,
	}
	if err := writeYAML(&buf, report); err != nil {
		t.Fatalf("writeYAML: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"aliases:", "target: a::b", "errors: 1", "warnings: 0"} {
		if !strings.Contains(out, want) {
			t.Fatalf("yaml missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "cached") || strings.Contains(out, "timings") {
		t.Fatalf("empty optional fields rendered:\n%s", out)
	}
}

func TestWriteDiagnosticsShort(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("app.cor", []byte("use crate::x;\n"))
	diags := []diag.Diagnostic{diag.NewError(diag.ResDuplicateName, source.Span{File: id, Start: 11, End: 12}, `"x" is already defined in this scope`)}

	var buf bytes.Buffer
	if err := writeDiagnostics(&buf, diags, fs, "short"); err != nil {
		t.Fatalf("writeDiagnostics: %v", err)
	}
	if !strings.Contains(buf.String(), "app.cor:1:12") || !strings.Contains(buf.String(), "is already defined") {
		t.Fatalf("output = %q", buf.String())
	}
	if !hasErrors(diags) || hasErrors(nil) {
		t.Fatalf("hasErrors mismatch")
	}

	buf.Reset()
	if err := writeDiagnostics(&buf, diags, fs, "json"); err != nil {
		t.Fatalf("json: %v", err)
	}
	if !strings.Contains(buf.String(), `"code": "RES3003"`) {
		t.Fatalf("json output = %s", buf.String())
	}
	if err := writeDiagnostics(&buf, diags, fs, "xml"); err == nil {
		t.Fatalf("expected unknown format error")
	}
}

func TestReadUIMode(t *testing.T) {
	for in, want := range map[string]uiMode{"": uiModeAuto, "AUTO": uiModeAuto, " on ": uiModeOn, "off": uiModeOff} {
		got, err := readUIMode(in)
		if err != nil || got != want {
			t.Errorf("readUIMode(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := readUIMode("sometimes"); err == nil {
		t.Fatalf("expected error")
	}
	if !shouldUseTUI(uiModeOn, 1) || shouldUseTUI(uiModeOff, 5) {
		t.Fatalf("explicit modes ignored")
	}
}

func TestSetupTracingRingModeWritesOnCleanup(t *testing.T) {
	out := filepath.Join(t.TempDir(), "trace.txt")
	cmd := &cobra.Command{Use: "resolve"}
	cmd.Flags().String("trace", "", "")
	cmd.Flags().String("trace-level", "off", "")
	cmd.Flags().String("trace-format", "auto", "")
	cmd.Flags().String("trace-mode", "stream", "")
	cmd.Flags().Int("trace-ring-size", 4096, "")
	if err := cmd.ParseFlags([]string{"--trace=" + out, "--trace-mode=ring", "--trace-ring-size=1"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}

	cleanup, err := setupTracing(cmd)
	if err != nil {
		t.Fatalf("setupTracing: %v", err)
	}
	tracer := trace.FromContext(cmd.Context())
	trace.Point(tracer, trace.ScopePass, "parse", "", 0)
	trace.Point(tracer, trace.ScopePass, "resolve", "", 0)
	if data, _ := os.ReadFile(out); len(data) != 0 {
		t.Fatalf("ring mode wrote before cleanup: %q", data)
	}
	cleanup()

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read trace: %v", err)
	}
	if got := string(data); strings.Contains(got, "parse") || !strings.Contains(got, "resolve") {
		t.Fatalf("trace = %q, want only the last event", got)
	}
}
