package image

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestCacheFilename(t *testing.T) {
	tests := []struct {
		url string
		ext string
	}{
		{"https://example.com/wall.png", ".png"},
		{"https://example.com/wall.JPG?size=large", ".jpg"},
		{"https://example.com/wall.png.xz", ".png.xz"},
		{"https://example.com/image", ".img"},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got := cacheFilename(tt.url)
			if !strings.HasSuffix(got, tt.ext) {
				t.Errorf("cacheFilename(%q) = %q, want suffix %q", tt.url, got, tt.ext)
			}
			if got != cacheFilename(tt.url) {
				t.Error("cacheFilename is not stable")
			}
		})
	}

	if cacheFilename("https://a.example/x.png") == cacheFilename("https://b.example/x.png") {
		t.Error("different URLs share a cache file")
	}
}

func TestCachedFetcher(t *testing.T) {
	calls := 0
	fetch := CachedFetcher(t.TempDir(), func(context.Context, string) ([]byte, error) {
		calls++
		return []byte("image bytes"), nil
	})

	for range 3 {
		data, err := fetch(context.Background(), "https://example.com/a.png")
		if err != nil {
			t.Fatalf("fetch() error = %v", err)
		}
		if string(data) != "image bytes" {
			t.Errorf("fetch() = %q", data)
		}
	}
	if calls != 1 {
		t.Errorf("underlying fetch called %d times, want 1", calls)
	}
}

func TestCachedFetcherDoesNotCacheErrors(t *testing.T) {
	calls := 0
	fetch := CachedFetcher(t.TempDir(), func(context.Context, string) ([]byte, error) {
		calls++
		return nil, errors.New("offline")
	})

	for range 2 {
		if _, err := fetch(context.Background(), "https://example.com/a.png"); err == nil {
			t.Fatal("fetch() error = nil, want error")
		}
	}
	if calls != 2 {
		t.Errorf("underlying fetch called %d times, want 2", calls)
	}
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "entry.png")

	if err := writeFileAtomic(path, []byte("first")); err != nil {
		t.Fatalf("writeFileAtomic() error = %v", err)
	}
	if err := writeFileAtomic(path, []byte("second")); err != nil {
		t.Fatalf("writeFileAtomic() overwrite error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second" {
		t.Errorf("content = %q, want second", data)
	}
	assertOnlyEntries(t, dir, "entry.png")
}

func TestWriteFileAtomicFailureLeavesNoTemp(t *testing.T) {
	dir := t.TempDir()
	// A directory in the way makes the final rename fail.
	target := filepath.Join(dir, "busy")
	if err := os.MkdirAll(filepath.Join(target, "child"), 0o755); err != nil {
		t.Fatal(err)
	}

	if err := writeFileAtomic(target, []byte("data")); err == nil {
		t.Fatal("writeFileAtomic() error = nil, want rename failure")
	}
	assertOnlyEntries(t, dir, "busy")
}

func TestCachedFetcherLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	fetch := CachedFetcher(dir, func(context.Context, string) ([]byte, error) {
		return []byte("image bytes"), nil
	})
	if _, err := fetch(context.Background(), "https://example.com/a.png"); err != nil {
		t.Fatalf("fetch() error = %v", err)
	}
	assertOnlyEntries(t, dir, cacheFilename("https://example.com/a.png"))
}

func assertOnlyEntries(t *testing.T, dir string, want ...string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, e := range entries {
		got = append(got, e.Name())
	}
	if !slices.Equal(got, want) {
		t.Errorf("directory entries = %v, want %v", got, want)
	}
}
