package dict

import (
	"crypto/sha1"
	"encoding/gob"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jamen-go/jamen/internal/logging"
)

// gobDictionary is the on-disk shape of a cached Dictionary.
type gobDictionary struct {
	Entries map[string]Entry
	Total   uint64
}

// cacheKey hashes the sorted, comma-joined source path list, matching
// the layout described for the cache directory: one file per logical
// dictionary, named by the hex SHA-1 of its source paths.
func cacheKey(paths []string) string {
	sorted := append([]string(nil), paths...)
	sort.Strings(sorted)
	sum := sha1.Sum([]byte(strings.Join(sorted, ",")))
	return hex.EncodeToString(sum[:])
}

func cachePath(cacheDir string, paths []string) string {
	return filepath.Join(cacheDir, cacheKey(paths)+".gob")
}

// loadOrBuildDictionary returns a cached dictionary if its cache file
// is newer than every source file; otherwise it rebuilds from source
// and rewrites the cache.
func loadOrBuildDictionary(paths []string, cacheDir string) (*Dictionary, error) {
	cp := cachePath(cacheDir, paths)

	if fresh, err := isCacheFresh(cp, paths); err != nil {
		logging.L.Debug().Str("cache", cp).Err(err).Msg("cache freshness check failed, rebuilding")
	} else if fresh {
		if d, err := readCache(cp); err == nil {
			logging.L.Debug().Str("cache", cp).Msg("loaded dictionary from cache")
			return d, nil
		} else {
			logging.L.Debug().Str("cache", cp).Err(err).Msg("cache read failed, rebuilding")
		}
	}

	d, err := loadDictionary(paths)
	if err != nil {
		return nil, err
	}
	if err := writeCache(cp, d); err != nil {
		logging.L.Debug().Str("cache", cp).Err(err).Msg("failed to write cache")
	}
	return d, nil
}

func isCacheFresh(cachePath string, sources []string) (bool, error) {
	cacheInfo, err := os.Stat(cachePath)
	if err != nil {
		return false, err
	}
	for _, src := range sources {
		srcInfo, err := os.Stat(src)
		if err != nil {
			return false, err
		}
		if srcInfo.ModTime().After(cacheInfo.ModTime()) {
			return false, nil
		}
	}
	return true, nil
}

func readCache(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var g gobDictionary
	if err := gob.NewDecoder(f).Decode(&g); err != nil {
		return nil, err
	}
	if g.Entries == nil {
		g.Entries = make(map[string]Entry)
	}
	return &Dictionary{entries: g.Entries, total: g.Total}, nil
}

// writeCache serialises d to path via a temp file followed by an atomic
// rename, so a process that races another writer never observes a
// half-written cache file (last writer wins, which is acceptable per
// the resource model: cache regeneration is idempotent).
func writeCache(path string, d *Dictionary) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("dict: mkdir cache dir %q: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".dict-*.gob.tmp")
	if err != nil {
		return fmt.Errorf("dict: create temp cache file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op once renamed

	g := gobDictionary{Entries: d.entries, Total: d.total}
	if err := gob.NewEncoder(tmp).Encode(&g); err != nil {
		tmp.Close()
		return fmt.Errorf("dict: encode cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("dict: close temp cache file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("dict: rename cache into place: %w", err)
	}
	// Bump the cache's mtime to "now" so a stale source clock never
	// makes a just-written cache look older than the files it was
	// built from.
	now := time.Now()
	_ = os.Chtimes(path, now, now)
	return nil
}
