package backend

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/iroha/internal/colour"
	imgpkg "github.com/jmylchreest/iroha/internal/image"
	pluginapi "github.com/jmylchreest/iroha/pkg/plugin"
)

// PluginSource hands out a connected backend plugin.
type PluginSource interface {
	Backend() (pluginapi.BackendPlugin, error)
}

// Plugin adapts an external backend plugin to Backend. Raw schemes coming
// back from the plugin go through the same assembly and validation as the
// built-in backend.
type Plugin struct {
	name   string
	cfg    Config
	source PluginSource
	logger hclog.Logger
}

// NewPlugin returns a Backend named name backed by source.
func NewPlugin(name string, source PluginSource, logger hclog.Logger) *Plugin {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Plugin{
		name:   name,
		cfg:    DefaultConfig(),
		source: source,
		logger: logger,
	}
}

// PluginFactory returns a registry Factory for a plugin source.
func PluginFactory(name string, source PluginSource) Factory {
	return func(logger hclog.Logger) (Backend, error) {
		return NewPlugin(name, source, logger), nil
	}
}

// Name implements Backend.
func (p *Plugin) Name() string { return p.name }

// Configure implements Backend.
func (p *Plugin) Configure(cfg Config) {
	p.cfg = p.cfg.Merge(cfg)
}

// FromImage implements Backend.
func (p *Plugin) FromImage(ctx context.Context, theme colour.Theme, imagePath string) (*colour.Schemes, error) {
	if !theme.Valid() {
		return nil, fmt.Errorf("%w: %q (valid: light, dark)", colour.ErrInvalidTheme, theme)
	}

	// The plugin runs with its own working directory.
	if !imgpkg.IsURL(imagePath) {
		abs, err := filepath.Abs(imagePath)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrImageDecode, imagePath, err)
		}
		imagePath = abs
	}

	remote, err := p.source.Backend()
	if err != nil {
		return nil, fmt.Errorf("plugin %q: %w", p.name, err)
	}

	p.logger.Debug("requesting schemes from plugin", "image", imagePath)
	pair, err := remote.FromImage(ctx, pluginapi.ImageRequest{
		ImagePath: imagePath,
		Options:   p.options(),
	})
	if err != nil {
		return nil, fmt.Errorf("plugin %q: %w", p.name, err)
	}
	return buildFromPair(theme, pair)
}

// FromColor implements Backend.
func (p *Plugin) FromColor(ctx context.Context, theme colour.Theme, argb uint32) (*colour.Schemes, error) {
	if !theme.Valid() {
		return nil, fmt.Errorf("%w: %q (valid: light, dark)", colour.ErrInvalidTheme, theme)
	}

	remote, err := p.source.Backend()
	if err != nil {
		return nil, fmt.Errorf("plugin %q: %w", p.name, err)
	}

	pair, err := remote.FromColor(ctx, pluginapi.ColorRequest{
		ARGB:    argb,
		Options: p.options(),
	})
	if err != nil {
		return nil, fmt.Errorf("plugin %q: %w", p.name, err)
	}
	return buildFromPair(theme, pair)
}

// Serialize implements Backend.
func (p *Plugin) Serialize(scheme colour.Scheme) (string, error) {
	return SerializeScheme(scheme)
}

func (p *Plugin) options() pluginapi.Options {
	return pluginapi.Options{
		Stride:    p.cfg.Stride,
		NumColors: p.cfg.NumColors,
	}
}

func buildFromPair(theme colour.Theme, pair pluginapi.SchemePair) (*colour.Schemes, error) {
	return colour.BuildSchemes(theme, toRawScheme(pair.Light), toRawScheme(pair.Dark))
}

func toRawScheme(in pluginapi.RawScheme) colour.RawScheme {
	raw := make(colour.RawScheme, len(in))
	for role, c := range in {
		raw[colour.Role(role)] = colour.RGBA(c)
	}
	return raw
}
