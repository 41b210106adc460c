// Package diagfmt renders diagnostics and tokens in machine-readable forms.
package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAsIs prints the path the file was loaded with.
	PathModeAsIs PathMode = iota
	PathModeAbsolute
	PathModeBasename
)

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // добавить line/col
	PathMode         PathMode
	Max              int // обрезка вывода, не Bag
	IncludeNotes     bool
}
