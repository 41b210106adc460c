package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.al", []byte("hello world"), 0)
	id2 := fs.Add("test.al", []byte("hello universe"), 0)
	if id1 == id2 {
		t.Fatalf("expected a fresh FileID on re-add")
	}
	latest, ok := fs.GetLatest("test.al")
	if !ok || latest != id2 {
		t.Fatalf("expected latest id %d, got %d (ok=%v)", id2, latest, ok)
	}
	if got := string(fs.Get(id1).Content); got != "hello world" {
		t.Errorf("old version lost: %q", got)
	}
}

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("mem.al", []byte("use a;\nuse b::c;\n\nmod m {}"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{5, LineCol{1, 6}},
		{6, LineCol{1, 7}}, // the newline itself
		{7, LineCol{2, 1}},
		{11, LineCol{2, 5}},
		{17, LineCol{3, 1}},
		{18, LineCol{4, 1}},
		{22, LineCol{4, 5}},
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start != tt.want {
			t.Errorf("offset %d: got %+v, want %+v", tt.off, start, tt.want)
		}
	}
}

func TestTextAndGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("mem.al", []byte("use a::b;\nmod m {}\n"))

	if got := fs.Text(Span{File: id, Start: 4, End: 8}); got != "a::b" {
		t.Errorf("Text = %q", got)
	}
	f := fs.Get(id)
	if got := f.GetLine(2); got != "mod m {}" {
		t.Errorf("GetLine(2) = %q", got)
	}
	if got := f.GetLine(9); got != "" {
		t.Errorf("GetLine(9) = %q, want empty", got)
	}
}

func TestLoadNormalizesCRLFAndBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.al")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFuse a;\r\nuse b;\r\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "use a;\nuse b;\n" {
		t.Fatalf("content not normalized: %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("flags = %b", f.Flags)
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	b := Span{File: 1, Start: 2, End: 6}
	if got := a.Cover(b); got != (Span{File: 1, Start: 2, End: 8}) {
		t.Errorf("Cover = %v", got)
	}
	if got := a.Cover(Span{File: 2, Start: 0, End: 100}); got != a {
		t.Errorf("cross-file cover should be a no-op, got %v", got)
	}
	if !a.Cover(b).Contains(a) {
		t.Errorf("cover must contain its inputs")
	}
}
