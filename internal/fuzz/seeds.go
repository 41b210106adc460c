package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB
	maxFuzzInput = 1 << 16
)

var languageSeeds = []string{
	"",
	"use a::b;",
	"use ::a::{b, c as d, e::{f}};",
	"use crate::x; use super::y;",
	"use a::{};",
	"mod m { use super::a; mod n { use super::super::b; } }",
	"#[inline, cold] fn f<T>(x: &T, y: [u8; 3]) -> (i32,) { { } }",
	"extern fn exit(code: i32) -> !;",
	"struct S { a: u8, b: &[bool] } enum E { A, B, }",
	"impl S { use crate::S as Me; fn new() -> S { S } }",
	"mod m<T,> { struct Box<U> { v: Vec<Box<U>> } fn map(f: fn(&T) -> u8) {} }",
	"fn bad(x: Box<>) {} struct P<",
	"use a::é; use b::é;",
	"} } use a; {",
	"/* unterminated",
	"\"unterminated",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range languageSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.cor файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".cor" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clamp(src, maxSeedBytes))
		return nil
	})
}

// clamp copies src, cutting it to limit bytes.
func clamp(src []byte, limit int) []byte {
	if len(src) > limit {
		src = src[:limit]
	}
	return append([]byte(nil), src...)
}
