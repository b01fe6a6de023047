package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"adacase/internal/diag"
	"adacase/internal/source"
)

// Current schema version - increment when CachePayload format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache stores normalized output keyed by the input content hash.
// A hit skips the whole pipeline for that file. Thread-safe for
// concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachePayload is the on-disk record for one normalized file.
type CachePayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	// Path the file was normalized from, kept for cache inspection only.
	Path string

	// Normalized output bytes.
	Output []byte
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key [32]byte) string {
	hexKey := hex.EncodeToString(key[:])
	// Subdirectory keeps the cache root scannable by hand.
	return filepath.Join(c.dir, "files", hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key [32]byte, payload *CachePayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err = os.Remove(f.Name()); err != nil && !errors.Is(err, os.ErrNotExist) {
			fmt.Printf("failed to remove temp file: %v", err)
		}
	}()

	enc := msgpack.NewEncoder(f)
	err = enc.Encode(payload)
	if err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Atomic replace.
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache.
func (c *DiskCache) Get(key [32]byte, out *CachePayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(key)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			panic(closeErr)
		}
	}()
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// cacheLookup checks the cache for the file's content hash. Cache failures
// degrade to a miss with a warning; the pipeline result is always available.
func cacheLookup(cache *DiskCache, file *source.File, bag *diag.Bag) ([]byte, bool) {
	if cache == nil {
		return nil, false
	}
	var payload CachePayload
	ok, err := cache.Get(file.Hash, &payload)
	if err != nil {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevWarning,
			Code:     diag.IOCacheError,
			Message:  "cache read failed: " + err.Error(),
		})
		return nil, false
	}
	if !ok || payload.Schema != diskCacheSchemaVersion {
		return nil, false
	}
	return payload.Output, true
}

func cacheStore(cache *DiskCache, file *source.File, output []byte, bag *diag.Bag) {
	if cache == nil {
		return
	}
	payload := &CachePayload{
		Schema: diskCacheSchemaVersion,
		Path:   file.Path,
		Output: output,
	}
	if err := cache.Put(file.Hash, payload); err != nil {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevWarning,
			Code:     diag.IOCacheError,
			Message:  "cache write failed: " + err.Error(),
		})
	}
}
