// Package backend defines the scheme derivation backends and the registry
// that resolves them by name.
package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmylchreest/iroha/internal/colour"
)

var (
	// ErrUnknownBackend is returned when no backend is registered under a name.
	ErrUnknownBackend = errors.New("backend not found")

	// ErrImageDecode is returned when an image cannot be read or decoded.
	ErrImageDecode = errors.New("cannot decode image")

	// ErrImageEmpty is returned when sampling an image yields no pixels.
	ErrImageEmpty = errors.New("image has no usable pixels")
)

const (
	// DefaultStride samples every pixel.
	DefaultStride = 1

	// DefaultNumColors is the quantizer's target palette size.
	DefaultNumColors = 128
)

// Config holds the recognised backend options. A zero field means "unset"
// and leaves the backend's current value alone.
type Config struct {
	// Stride takes every Nth pixel of the image in row-major order.
	Stride int

	// NumColors is the maximum number of colours the quantizer produces.
	NumColors int
}

// DefaultConfig returns the defaults every backend starts from.
func DefaultConfig() Config {
	return Config{
		Stride:    DefaultStride,
		NumColors: DefaultNumColors,
	}
}

// Merge returns c with every set field of o applied. Negative values are
// treated as unset.
func (c Config) Merge(o Config) Config {
	if o.Stride > 0 {
		c.Stride = o.Stride
	}
	if o.NumColors > 0 {
		c.NumColors = o.NumColors
	}
	return c
}

// StrideFromQuality converts a 1-100 quality, where 100 reads every pixel,
// into a sampling stride.
func StrideFromQuality(quality int) (int, error) {
	if quality < 1 || quality > 100 {
		return 0, fmt.Errorf("quality must be between 1 and 100, got %d", quality)
	}
	return 101 - quality, nil
}

// Backend derives colour schemes from an image or a seed colour.
type Backend interface {
	// Name returns the identifier the backend is registered under.
	Name() string

	// Configure applies the set fields of cfg.
	Configure(cfg Config)

	// FromImage derives schemes from the dominant colour of an image.
	FromImage(ctx context.Context, theme colour.Theme, imagePath string) (*colour.Schemes, error)

	// FromColor derives schemes from a packed 0xAARRGGBB seed.
	FromColor(ctx context.Context, theme colour.Theme, argb uint32) (*colour.Schemes, error)

	// Serialize renders one scheme as indented JSON in canonical role order.
	Serialize(scheme colour.Scheme) (string, error)
}

// SerializeScheme is the shared Serialize implementation.
func SerializeScheme(scheme colour.Scheme) (string, error) {
	data, err := json.MarshalIndent(scheme, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize scheme: %w", err)
	}
	return string(data), nil
}
