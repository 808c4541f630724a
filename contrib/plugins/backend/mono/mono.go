package main

import (
	"context"
	"math"

	"github.com/jmylchreest/iroha/internal/backend"
	"github.com/jmylchreest/iroha/internal/colour"
	pluginapi "github.com/jmylchreest/iroha/pkg/plugin"
)

// Mono implements pluginapi.BackendPlugin on top of the material backend.
type Mono struct {
	material *backend.Material
}

// NewMono returns the greyscale plugin.
func NewMono() *Mono {
	return &Mono{material: backend.NewMaterial()}
}

// FromImage implements pluginapi.BackendPlugin.
func (m *Mono) FromImage(ctx context.Context, req pluginapi.ImageRequest) (pluginapi.SchemePair, error) {
	m.material.Configure(backend.Config{Stride: req.Options.Stride, NumColors: req.Options.NumColors})
	schemes, err := m.material.FromImage(ctx, colour.ThemeLight, req.ImagePath)
	if err != nil {
		return pluginapi.SchemePair{}, err
	}
	return greyscalePair(schemes), nil
}

// FromColor implements pluginapi.BackendPlugin.
func (m *Mono) FromColor(ctx context.Context, req pluginapi.ColorRequest) (pluginapi.SchemePair, error) {
	schemes, err := m.material.FromColor(ctx, colour.ThemeLight, req.ARGB)
	if err != nil {
		return pluginapi.SchemePair{}, err
	}
	return greyscalePair(schemes), nil
}

// GetMetadata implements pluginapi.BackendPlugin.
func (m *Mono) GetMetadata() pluginapi.PluginInfo {
	return pluginapi.PluginInfo{
		Name:            "mono",
		Version:         "0.1.0",
		ProtocolVersion: pluginapi.ProtocolVersion,
		Description:     "Greyscale Material schemes",
	}
}

func greyscalePair(s *colour.Schemes) pluginapi.SchemePair {
	return pluginapi.SchemePair{
		Light: greyscale(s.Light),
		Dark:  greyscale(s.Dark),
	}
}

// greyscale maps every role to the Rec. 709 luma of its colour.
func greyscale(s *colour.Scheme) pluginapi.RawScheme {
	raw := make(pluginapi.RawScheme, len(colour.Roles()))
	for _, role := range colour.Roles() {
		o, _ := s.Get(role)
		y := int(math.Round(0.2126*float64(o.R) + 0.7152*float64(o.G) + 0.0722*float64(o.B)))
		raw[string(role)] = [4]int{y, y, y, 255}
	}
	return raw
}
