package backend

import (
	"context"
	"fmt"
	"image/color"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/iroha/internal/colour"
	imgpkg "github.com/jmylchreest/iroha/internal/image"
	"github.com/jmylchreest/iroha/internal/material"
	"github.com/jmylchreest/iroha/internal/quantize"
	"github.com/jmylchreest/iroha/internal/score"
)

// MaterialName is the registry name of the Material tonal backend.
const MaterialName = "material"

// Material derives schemes with the Material Design tonal palette
// algorithm: quantize, score, then build light and dark tone tables from the
// winning seed.
type Material struct {
	cfg    Config
	loader imgpkg.Loader
	logger hclog.Logger
}

// MaterialOption configures a Material backend.
type MaterialOption func(*Material)

// WithMaterialLogger sets the backend logger.
func WithMaterialLogger(logger hclog.Logger) MaterialOption {
	return func(m *Material) {
		m.logger = logger
	}
}

// WithLoader replaces the image loader.
func WithLoader(loader imgpkg.Loader) MaterialOption {
	return func(m *Material) {
		m.loader = loader
	}
}

// NewMaterial returns a Material backend with the default configuration.
func NewMaterial(opts ...MaterialOption) *Material {
	m := &Material{
		cfg:    DefaultConfig(),
		loader: imgpkg.NewSmartLoader(),
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Name implements Backend.
func (m *Material) Name() string { return MaterialName }

// Configure implements Backend.
func (m *Material) Configure(cfg Config) {
	m.cfg = m.cfg.Merge(cfg)
}

// Config returns the active configuration.
func (m *Material) Config() Config { return m.cfg }

// FromImage implements Backend.
func (m *Material) FromImage(ctx context.Context, theme colour.Theme, imagePath string) (*colour.Schemes, error) {
	if !theme.Valid() {
		return nil, fmt.Errorf("%w: %q (valid: light, dark)", colour.ErrInvalidTheme, theme)
	}

	img, err := m.loader.Load(ctx, imagePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrImageDecode, imagePath, err)
	}

	pixels := imgpkg.Sample(img, m.cfg.Stride)
	if len(pixels) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrImageEmpty, imagePath)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	population := quantize.Celebi(pixels, m.cfg.NumColors)
	seeds := score.Score(population, score.DefaultOptions())
	seed := seeds[0]

	m.logger.Debug("selected seed colour",
		"image", imagePath,
		"sampled", len(pixels),
		"stride", m.cfg.Stride,
		"clusters", len(population),
		"seed", colour.FromColor(seed).Hex,
	)

	return m.derive(theme, seed)
}

// FromColor implements Backend.
func (m *Material) FromColor(_ context.Context, theme colour.Theme, argb uint32) (*colour.Schemes, error) {
	if !theme.Valid() {
		return nil, fmt.Errorf("%w: %q (valid: light, dark)", colour.ErrInvalidTheme, theme)
	}

	// Tonal palettes only use hue and chroma, so the seed alpha is dropped.
	obj := colour.FromARGB(argb)
	seed := obj.Color()
	seed.A = 0xFF

	m.logger.Debug("deriving from seed colour", "seed", obj.Hex)
	return m.derive(theme, seed)
}

// Serialize implements Backend.
func (m *Material) Serialize(scheme colour.Scheme) (string, error) {
	return SerializeScheme(scheme)
}

func (m *Material) derive(theme colour.Theme, seed color.NRGBA) (*colour.Schemes, error) {
	light, dark := material.Schemes(seed)
	return colour.BuildSchemes(theme, light, dark)
}
