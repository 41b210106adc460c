package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"corund/internal/source"
)

// PrettyOptions configures WritePretty.
type PrettyOptions struct {
	Color        bool
	IncludeNotes bool
}

// FormatShort renders one line per diagnostic:
//
//	path:line:col: error RES3003: message
func FormatShort(diags []Diagnostic, fs *source.FileSet) string {
	var b strings.Builder
	for i := range diags {
		d := &diags[i]
		fmt.Fprintf(&b, "%s: %s %s: %s\n", location(fs, d.Primary), severityLabel(d.Severity), d.Code.ID(), sanitizeMessage(d.Message))
	}
	return b.String()
}

// WritePretty renders diagnostics with the offending source line and a caret
// underline. Column alignment accounts for wide runes.
func WritePretty(w io.Writer, diags []Diagnostic, fs *source.FileSet, opts PrettyOptions) error {
	sevColor := map[Severity]*color.Color{
		SevError:   color.New(color.FgRed, color.Bold),
		SevWarning: color.New(color.FgYellow, color.Bold),
		SevInfo:    color.New(color.FgCyan),
	}
	gutter := color.New(color.FgBlue)
	for _, c := range sevColor {
		if !opts.Color {
			c.DisableColor()
		}
	}
	if !opts.Color {
		gutter.DisableColor()
	}

	for i := range diags {
		d := &diags[i]
		header := sevColor[d.Severity].Sprintf("%s[%s]", severityLabel(d.Severity), d.Code.ID())
		if _, err := fmt.Fprintf(w, "%s: %s\n", header, sanitizeMessage(d.Message)); err != nil {
			return err
		}
		if err := writeExcerpt(w, fs, d.Primary, gutter, sevColor[d.Severity]); err != nil {
			return err
		}
		if opts.IncludeNotes {
			for _, note := range d.Notes {
				if _, err := fmt.Fprintf(w, "  note: %s (%s)\n", sanitizeMessage(note.Msg), location(fs, note.Span)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func writeExcerpt(w io.Writer, fs *source.FileSet, sp source.Span, gutter, mark *color.Color) error {
	if fs == nil || int(sp.File) >= fs.Len() {
		return nil
	}
	f := fs.Get(sp.File)
	start, end := fs.Resolve(sp)
	line := f.GetLine(start.Line)
	lineNo := fmt.Sprintf("%d", start.Line)
	pad := strings.Repeat(" ", len(lineNo))

	prefix := line[:min(int(start.Col-1), len(line))]
	underlineEnd := len(line)
	if end.Line == start.Line {
		underlineEnd = min(int(end.Col-1), len(line))
	}
	marked := ""
	if underlineEnd > len(prefix) {
		marked = line[len(prefix):underlineEnd]
	}
	carets := max(runewidth.StringWidth(marked), 1)

	_, err := fmt.Fprintf(w, "%s %s:%d:%d\n%s %s\n%s %s %s\n%s %s %s%s\n",
		gutter.Sprint(pad+"-->"), f.Path, start.Line, start.Col,
		pad, gutter.Sprint("|"),
		gutter.Sprint(lineNo), gutter.Sprint("|"), line,
		pad, gutter.Sprint("|"), strings.Repeat(" ", runewidth.StringWidth(prefix)), mark.Sprint(strings.Repeat("^", carets)),
	)
	return err
}

func location(fs *source.FileSet, sp source.Span) string {
	if sp.File == source.NoFileID {
		return "<input>"
	}
	if fs == nil || int(sp.File) >= fs.Len() {
		return sp.String()
	}
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d", fs.Get(sp.File).Path, start.Line, start.Col)
}

func severityLabel(sev Severity) string {
	switch sev {
	case SevError:
		return "error"
	case SevWarning:
		return "warning"
	default:
		return "info"
	}
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
