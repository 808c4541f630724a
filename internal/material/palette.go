// Package material derives Material Design tonal palettes and light/dark
// colour schemes from a single seed colour.
//
// Tones are computed in the HCT colour space (hue, chroma, tone), where tone
// is perceptual lightness: tone 0 is black, tone 100 is white.
package material

import (
	"image/color"
	"math"

	"cogentcore.org/core/colors/cam/hct"
	lru "github.com/hashicorp/golang-lru"
)

// toneCacheSize bounds the cached tones per palette; schemes use fewer than
// twenty distinct tones.
const toneCacheSize = 32

// TonalPalette produces every tone of a fixed hue and chroma.
type TonalPalette struct {
	Hue    float32
	Chroma float32

	base  hct.HCT
	cache *lru.Cache
}

// NewTonalPalette returns a palette of the given hue and chroma. key is any
// colour; it only anchors the starting point of the tone solver.
func NewTonalPalette(key color.Color, hue, chroma float32) *TonalPalette {
	hue = sanitiseHue(hue)
	base := hct.FromColor(key).WithHue(hue)

	// lru.New only fails for a non-positive size.
	cache, _ := lru.New(toneCacheSize)

	return &TonalPalette{
		Hue:    hue,
		Chroma: chroma,
		base:   base,
		cache:  cache,
	}
}

// Tone returns the palette colour at tone t in [0,100].
func (p *TonalPalette) Tone(t int) color.RGBA {
	if v, ok := p.cache.Get(t); ok {
		return v.(color.RGBA)
	}

	h := p.base
	h.SetTone(float32(t))
	c := h.WithHue(p.Hue).WithChroma(p.Chroma).AsRGBA()

	p.cache.Add(t, c)
	return c
}

// CorePalette holds the six tonal palettes a scheme is built from.
type CorePalette struct {
	A1 *TonalPalette // primary
	A2 *TonalPalette // secondary
	A3 *TonalPalette // tertiary
	N1 *TonalPalette // neutral
	N2 *TonalPalette // neutral variant

	Error *TonalPalette
}

// NewCorePalette derives the core palettes from seed following the Material
// 2021 key colour rules.
func NewCorePalette(seed color.Color) *CorePalette {
	s := hct.FromColor(seed)
	hue := s.Hue

	return &CorePalette{
		A1:    NewTonalPalette(seed, hue, max(s.Chroma, 48)),
		A2:    NewTonalPalette(seed, hue, 16),
		A3:    NewTonalPalette(seed, hue+60, 24),
		N1:    NewTonalPalette(seed, hue, 4),
		N2:    NewTonalPalette(seed, hue, 8),
		Error: NewTonalPalette(seed, 25, 84),
	}
}

// sanitiseHue wraps a hue into [0,360).
func sanitiseHue(h float32) float32 {
	v := math.Mod(float64(h), 360)
	if v < 0 {
		v += 360
	}
	return float32(v)
}
