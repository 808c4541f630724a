package image

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultCacheDir returns the directory downloaded images are kept in,
// normally ~/.cache/iroha/images.
func DefaultCacheDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return "", fmt.Errorf("failed to determine cache directory: %w", err)
		}
		cacheDir = filepath.Join(home, ".cache")
	}
	return filepath.Join(cacheDir, "iroha", "images"), nil
}

// cacheFilename derives a stable file name from url: a hash of the URL plus
// the original extension, so the cached copy decodes the same way.
func cacheFilename(url string) string {
	sum := sha256.Sum256([]byte(url))
	name := hex.EncodeToString(sum[:16])

	p := url
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	base := strings.ToLower(filepath.Base(p))
	if strings.HasSuffix(base, ".xz") {
		base = strings.TrimSuffix(base, ".xz")
		return name + filepath.Ext(base) + ".xz"
	}
	ext := filepath.Ext(base)
	if ext == "" || len(ext) > 5 {
		ext = ".img"
	}
	return name + ext
}

// CachedFetcher wraps fetch so every URL is downloaded at most once into dir.
// A cache that cannot be written does not fail the fetch.
func CachedFetcher(dir string, fetch FetchFunc) FetchFunc {
	return func(ctx context.Context, url string) ([]byte, error) {
		path := filepath.Join(dir, cacheFilename(url))
		if data, err := os.ReadFile(path); err == nil { // #nosec G304 - path is derived from a hash
			return data, nil
		}

		data, err := fetch(ctx, url)
		if err != nil {
			return nil, err
		}

		if err := os.MkdirAll(dir, 0o755); err == nil { // #nosec G301 - cache directory
			_ = writeFileAtomic(path, data)
		}
		return data, nil
	}
}

// writeFileAtomic writes data to a temporary file next to path and renames it
// into place, so readers never see a partially written cache entry.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".download-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil { // #nosec G302 - cached images are not secret
		os.Remove(tmpName)
		return fmt.Errorf("failed to chmod %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to move %s into place: %w", path, err)
	}
	return nil
}
