package diag

import (
	"bytes"
	"strings"
	"testing"

	"corund/internal/source"
)

func TestBagLimitSortAndDedup(t *testing.T) {
	bag := NewBag(3)
	r := &BagReporter{Bag: bag}
	ReportError(r, ResDuplicateName, source.Span{Start: 10, End: 12}, "dup").Emit()
	ReportWarning(r, ResShadowedAliasUse, source.Span{Start: 2, End: 4}, "shadow").Emit()
	ReportError(r, ResDuplicateName, source.Span{Start: 10, End: 12}, "dup again").Emit()
	if bag.Add(NewError(ResUnresolvedPath, source.Span{}, "over limit")) {
		t.Fatalf("bag must refuse items past its limit")
	}

	bag.Sort()
	if bag.Items()[0].Code != ResShadowedAliasUse {
		t.Fatalf("sort: first = %v", bag.Items()[0].Code)
	}
	bag.Dedup()
	if bag.Len() != 2 {
		t.Fatalf("dedup: len = %d", bag.Len())
	}
	if !bag.HasErrors() {
		t.Fatalf("expected errors")
	}
}

func TestEmitOnce(t *testing.T) {
	bag := NewBag(10)
	b := ReportError(&BagReporter{Bag: bag}, ResCrateNotAllowed, source.Span{}, "crate")
	b.Emit()
	b.Emit()
	if bag.Len() != 1 {
		t.Fatalf("builder emitted %d times", bag.Len())
	}
}

func TestCodeID(t *testing.T) {
	tests := map[Code]string{
		LexUnknownChar:     "LEX1001",
		SynExpectPath:      "SYN2005",
		ResSuperNotAllowed: "RES3002",
		IOLoadFileError:    "IO4001",
		UnknownCode:        "E0000",
	}
	for code, want := range tests {
		if got := code.ID(); got != want {
			t.Errorf("%d.ID() = %q, want %q", code, got, want)
		}
	}
}

func TestFormatShortAndPretty(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("main.al", []byte("use a;\nuse x::a;\n"))
	diags := []Diagnostic{
		NewError(ResDuplicateName, source.Span{File: id, Start: 14, End: 15}, "`a` is already defined in this scope").
			WithNote(source.Span{File: id, Start: 4, End: 5}, "previous definition"),
	}

	short := FormatShort(diags, fs)
	if short != "main.al:2:8: error RES3003: `a` is already defined in this scope\n" {
		t.Fatalf("short = %q", short)
	}

	var buf bytes.Buffer
	if err := WritePretty(&buf, diags, fs, PrettyOptions{IncludeNotes: true}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"error[RES3003]", "use x::a;", "       ^", "note: previous definition (main.al:1:5)"} {
		if !strings.Contains(out, want) {
			t.Errorf("pretty output missing %q:\n%s", want, out)
		}
	}
}
