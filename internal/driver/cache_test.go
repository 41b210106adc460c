package driver

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestResolveUsesCache(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"app.cor": "use crate::a::{b, c};\nuse d::{};\n",
	})
	path := filepath.Join(dir, "app.cor")
	cache, err := NewDiskCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("NewDiskCache: %v", err)
	}
	opts := Options{Cache: cache}

	first, err := Resolve(context.Background(), []string{path}, opts)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if first.Cached {
		t.Fatalf("first run must not be cached")
	}
	second, err := Resolve(context.Background(), []string{path}, opts)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !second.Cached || second.Scopes != nil {
		t.Fatalf("second run must come from cache")
	}
	if !reflect.DeepEqual(first.Aliases, second.Aliases) {
		t.Fatalf("aliases differ: %+v vs %+v", first.Aliases, second.Aliases)
	}
	if len(second.Diagnostics()) != len(first.Diagnostics()) || len(first.Diagnostics()) != 1 {
		t.Fatalf("diagnostics differ: %+v vs %+v", first.Diagnostics(), second.Diagnostics())
	}

	// изменённый файл даёт другой ключ
	if err := os.WriteFile(path, []byte("use crate::a;\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	third, err := Resolve(context.Background(), []string{path}, opts)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if third.Cached || len(third.Aliases) != 1 {
		t.Fatalf("stale cache hit: %+v", third)
	}
}

func TestDiskCacheMissAndDrop(t *testing.T) {
	cache, err := NewDiskCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("NewDiskCache: %v", err)
	}
	var key Digest
	key[0] = 1
	var out Payload
	if ok, err := cache.Get(key, &out); ok || err != nil {
		t.Fatalf("Get on empty cache = %v, %v", ok, err)
	}
	if err := cache.Put(key, &Payload{Crates: []string{"app"}}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if ok, err := cache.Get(key, &out); !ok || err != nil || out.Crates[0] != "app" {
		t.Fatalf("Get = %v, %v, %+v", ok, err, out)
	}
	if err := cache.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}
	if ok, _ := cache.Get(key, &Payload{}); ok {
		t.Fatalf("entry survived DropAll")
	}

	var nilCache *DiskCache
	if err := nilCache.Put(key, &Payload{}); err != nil {
		t.Fatalf("nil Put: %v", err)
	}
}

func TestCacheKeyDependsOnOptions(t *testing.T) {
	files := []FileResult{{Path: "a.cor", Crate: "a"}}
	if cacheKey(files, Options{}) == cacheKey(files, Options{CheckAliases: true}) {
		t.Fatalf("check_aliases must change the key")
	}
	renamed := []FileResult{{Path: "a.cor", Crate: "b"}}
	if cacheKey(files, Options{}) == cacheKey(renamed, Options{}) {
		t.Fatalf("crate name must change the key")
	}
}
