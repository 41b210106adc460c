package driver

import (
	"fortio.org/safecast"

	"corund/internal/diag"
	"corund/internal/parser"
	"corund/internal/source"
	"corund/internal/syntax"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tree    *syntax.Tree
	Bag     *diag.Bag
}

// Parse загружает и разбирает один файл.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)

	tree, err := parseFile(file, bag, maxDiagnostics)
	if err != nil {
		return nil, err
	}
	return &ParseResult{FileSet: fs, File: file, Tree: tree, Bag: bag}, nil
}

func parseFile(file *source.File, bag *diag.Bag, maxDiagnostics int) (*syntax.Tree, error) {
	maxErrors, err := safecast.Conv[uint](max(maxDiagnostics, 0))
	if err != nil {
		return nil, err
	}
	return parser.ParseFile(file, parser.Options{
		Reporter:  &diag.BagReporter{Bag: bag},
		MaxErrors: maxErrors,
	}), nil
}
