package driver_test

import (
	"context"
	"crypto/sha256"
	"path/filepath"
	"testing"

	"adacase/internal/driver"
)

func TestDiskCacheRoundTrip(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	cache, err := driver.OpenDiskCache("adacase-test")
	if err != nil {
		t.Fatal(err)
	}

	key := sha256.Sum256([]byte("Index : Integer;\n"))
	payload := &driver.CachePayload{
		Schema: 1,
		Path:   "a.ada",
		Output: []byte("INDEX : INTEGER;\n"),
	}
	if err := cache.Put(key, payload); err != nil {
		t.Fatal(err)
	}

	var got driver.CachePayload
	ok, err := cache.Get(key, &got)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected a cache hit")
	}
	if string(got.Output) != string(payload.Output) {
		t.Errorf("cached output mismatch: %q", got.Output)
	}

	var miss driver.CachePayload
	otherKey := sha256.Sum256([]byte("different"))
	ok, err = cache.Get(otherKey, &miss)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("expected a cache miss for an unknown key")
	}
}

func TestNormalizeDirUsesCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.ada"), "Index : Integer;\n")

	cache, err := driver.OpenDiskCache("adacase-test")
	if err != nil {
		t.Fatal(err)
	}
	opts := driver.DirOptions{Cache: cache}

	_, first, err := driver.NormalizeDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first[0].CacheHit {
		t.Error("first run should not hit the cache")
	}

	_, second, err := driver.NormalizeDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second[0].CacheHit {
		t.Error("second run should hit the cache")
	}
	if string(second[0].Output) != "INDEX : INTEGER;\n" {
		t.Errorf("cached output mismatch: %q", second[0].Output)
	}
}
