package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"corund/internal/diag"
	"corund/internal/lexer"
	"corund/internal/source"
)

func TestBuildDiagnosticsOutput(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("dir/app.cor", []byte("use a;\nuse x::a;\n"))
	diags := []diag.Diagnostic{
		diag.NewError(diag.ResDuplicateName, source.Span{File: id, Start: 14, End: 15}, "`a` is already defined in this scope").
			WithNote(source.Span{File: id, Start: 4, End: 5}, "previous definition"),
		diag.NewError(diag.IOLoadFileError, source.Span{File: source.NoFileID}, "load missing.cor: no such file"),
	}

	out := BuildDiagnosticsOutput(diags, fs, JSONOpts{IncludePositions: true, IncludeNotes: true, PathMode: PathModeBasename})
	if out.Count != 2 {
		t.Fatalf("count = %d", out.Count)
	}
	first := out.Diagnostics[0]
	if first.Code != "RES3003" || first.Severity != "ERROR" {
		t.Fatalf("first = %+v", first)
	}
	if first.Location.File != "app.cor" || first.Location.StartLine != 2 || first.Location.StartCol != 8 {
		t.Fatalf("location = %+v", first.Location)
	}
	if len(first.Notes) != 1 || first.Notes[0].Location.StartLine != 1 {
		t.Fatalf("notes = %+v", first.Notes)
	}
	if out.Diagnostics[1].Location.File != "" {
		t.Fatalf("file-less diagnostic got a path: %+v", out.Diagnostics[1].Location)
	}

	limited := BuildDiagnosticsOutput(diags, fs, JSONOpts{Max: 1})
	if limited.Count != 1 || limited.Diagnostics[0].Notes != nil {
		t.Fatalf("limited = %+v", limited)
	}
}

func TestJSONIsValid(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, nil, nil, JSONOpts{}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var decoded DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if decoded.Count != 0 || decoded.Diagnostics == nil {
		t.Fatalf("decoded = %+v", decoded)
	}
}

func TestFormatTokens(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("t.cor", []byte("use a::b;")))
	tokens := lexer.New(file, lexer.Options{}).All()

	var pretty bytes.Buffer
	if err := FormatTokensPretty(&pretty, tokens, fs); err != nil {
		t.Fatalf("pretty: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(pretty.String()), "\n")
	if len(lines) != len(tokens) || !strings.Contains(lines[0], `"use"`) || !strings.Contains(lines[0], "at 1:1-1:4") {
		t.Fatalf("pretty output:\n%s", pretty.String())
	}

	var js bytes.Buffer
	if err := FormatTokensJSON(&js, tokens); err != nil {
		t.Fatalf("json: %v", err)
	}
	var decoded []TokenOutput
	if err := json.Unmarshal(js.Bytes(), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != len(tokens) || decoded[2].Text != "::" {
		t.Fatalf("decoded = %+v", decoded)
	}
}
