// Package image loads source images from disk or HTTPS and samples their
// pixels for quantization.
package image

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ulikunitz/xz"
	_ "golang.org/x/image/bmp"  // Register BMP format
	_ "golang.org/x/image/tiff" // Register TIFF format
	_ "golang.org/x/image/webp" // Register WebP format

	"github.com/jmylchreest/iroha/internal/security"
	httputil "github.com/jmylchreest/iroha/internal/util/http"
)

// MaxDecompressedBytes caps the size of an .xz compressed image once inflated.
const MaxDecompressedBytes = 256 << 20

// ErrNoImages is returned when a directory holds no supported image.
var ErrNoImages = errors.New("no supported image files found")

// Loader loads an image from a path or URL.
type Loader interface {
	Load(ctx context.Context, path string) (image.Image, error)
}

// FileLoader loads images from the local filesystem.
type FileLoader struct{}

// NewFileLoader creates a new FileLoader instance.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load decodes the image at path. Files ending in .xz are decompressed first.
func (l *FileLoader) Load(_ context.Context, path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("image path cannot be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("image file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to stat image file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	return decode(file, path)
}

// FetchFunc retrieves the bytes behind a URL.
type FetchFunc func(ctx context.Context, url string) ([]byte, error)

// SmartLoader loads images from local files and HTTPS URLs.
type SmartLoader struct {
	fileLoader *FileLoader
	fetch      FetchFunc
}

// NewSmartLoader creates a SmartLoader that fetches URLs over HTTPS and keeps
// downloads in DefaultCacheDir when it can be determined.
func NewSmartLoader() *SmartLoader {
	l := &SmartLoader{
		fileLoader: NewFileLoader(),
		fetch: func(ctx context.Context, url string) ([]byte, error) {
			return httputil.Fetch(ctx, url, httputil.FetchOptions{})
		},
	}
	if dir, err := DefaultCacheDir(); err == nil {
		l.fetch = CachedFetcher(dir, l.fetch)
	}
	return l
}

// WithFetcher replaces the URL fetcher, cache included.
func (l *SmartLoader) WithFetcher(fetch FetchFunc) *SmartLoader {
	l.fetch = fetch
	return l
}

// Load loads an image from either a local file path or an HTTPS URL.
func (l *SmartLoader) Load(ctx context.Context, path string) (image.Image, error) {
	if IsURL(path) {
		return l.loadFromURL(ctx, path)
	}
	return l.fileLoader.Load(ctx, path)
}

func (l *SmartLoader) loadFromURL(ctx context.Context, url string) (image.Image, error) {
	if err := security.ValidateHTTPURL(url); err != nil {
		return nil, err
	}

	data, err := l.fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image from URL: %w", err)
	}

	name := url
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}
	return decode(bytes.NewReader(data), name)
}

// IsURL reports whether path names a remote image.
func IsURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

func decode(r io.Reader, name string) (image.Image, error) {
	if strings.EqualFold(filepath.Ext(name), ".xz") {
		xzr, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		r = security.NewLimitedReader(xzr, MaxDecompressedBytes)
	}

	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}
	return img, nil
}

// SupportedImageExtensions returns the extensions picked up from directories.
func SupportedImageExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp", ".tif", ".tiff"}
}

func isImageFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".xz" {
		ext = strings.ToLower(filepath.Ext(strings.TrimSuffix(path, filepath.Ext(path))))
	}
	return slices.Contains(SupportedImageExtensions(), ext)
}

// ScanDirectoryForImages lists the supported images directly inside dirPath,
// sorted by name. Symlinks are followed; subdirectories are not.
func ScanDirectoryForImages(dirPath string) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var imageFiles []string
	for _, entry := range entries {
		fullPath := filepath.Join(dirPath, entry.Name())

		info, err := os.Stat(fullPath)
		if err != nil || info.IsDir() {
			continue
		}
		if isImageFile(entry.Name()) {
			imageFiles = append(imageFiles, fullPath)
		}
	}

	if len(imageFiles) == 0 {
		return nil, fmt.Errorf("%w in directory: %s", ErrNoImages, dirPath)
	}
	return imageFiles, nil
}

// ResolveImagePath returns path unchanged for files and URLs. For a
// directory it picks one of the images inside at random.
func ResolveImagePath(path string) (string, error) {
	if IsURL(path) {
		return path, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to access path: %w", err)
	}
	if !info.IsDir() {
		return path, nil
	}

	imageFiles, err := ScanDirectoryForImages(path)
	if err != nil {
		return "", err
	}
	return imageFiles[rand.IntN(len(imageFiles))], nil // #nosec G404 - wallpaper choice, not security sensitive
}

// Sample returns every stride-th pixel of img in row-major order.
// A stride below 1 samples every pixel.
func Sample(img image.Image, stride int) []color.NRGBA {
	if stride < 1 {
		stride = 1
	}

	b := img.Bounds()
	total := b.Dx() * b.Dy()
	if total <= 0 {
		return nil
	}

	pixels := make([]color.NRGBA, 0, (total+stride-1)/stride)
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if i%stride == 0 {
				pixels = append(pixels, color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA))
			}
			i++
		}
	}
	return pixels
}
