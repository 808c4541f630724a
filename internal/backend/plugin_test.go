package backend

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/jmylchreest/iroha/internal/colour"
	pluginapi "github.com/jmylchreest/iroha/pkg/plugin"
)

type fakeRemote struct {
	pair      pluginapi.SchemePair
	err       error
	lastImage pluginapi.ImageRequest
	lastColor pluginapi.ColorRequest
}

func (f *fakeRemote) FromImage(_ context.Context, req pluginapi.ImageRequest) (pluginapi.SchemePair, error) {
	f.lastImage = req
	return f.pair, f.err
}

func (f *fakeRemote) FromColor(_ context.Context, req pluginapi.ColorRequest) (pluginapi.SchemePair, error) {
	f.lastColor = req
	return f.pair, f.err
}

func (f *fakeRemote) GetMetadata() pluginapi.PluginInfo {
	return pluginapi.PluginInfo{Name: "fake"}
}

type fakeSource struct {
	remote pluginapi.BackendPlugin
	err    error
}

func (s fakeSource) Backend() (pluginapi.BackendPlugin, error) {
	return s.remote, s.err
}

func fullPluginScheme(v int) pluginapi.RawScheme {
	raw := make(pluginapi.RawScheme)
	for _, role := range colour.Roles() {
		raw[string(role)] = [4]int{v, v, v, 255}
	}
	return raw
}

func TestPluginFromColor(t *testing.T) {
	remote := &fakeRemote{pair: pluginapi.SchemePair{Light: fullPluginScheme(250), Dark: fullPluginScheme(20)}}
	p := NewPlugin("fake", fakeSource{remote: remote}, nil)
	p.Configure(Config{NumColors: 16})

	schemes, err := p.FromColor(context.Background(), colour.ThemeDark, 0xFF112233)
	if err != nil {
		t.Fatalf("FromColor() error = %v", err)
	}
	if schemes.Default != schemes.Dark {
		t.Error("default should be the dark scheme")
	}
	if schemes.Dark.Primary.Hex != "#141414" {
		t.Errorf("dark primary = %s, want #141414", schemes.Dark.Primary.Hex)
	}
	if remote.lastColor.ARGB != 0xFF112233 {
		t.Errorf("plugin saw ARGB %#x", remote.lastColor.ARGB)
	}
	if remote.lastColor.Options != (pluginapi.Options{Stride: 1, NumColors: 16}) {
		t.Errorf("plugin saw options %+v", remote.lastColor.Options)
	}
}

func TestPluginFromImageAbsolutePath(t *testing.T) {
	remote := &fakeRemote{pair: pluginapi.SchemePair{Light: fullPluginScheme(250), Dark: fullPluginScheme(20)}}
	p := NewPlugin("fake", fakeSource{remote: remote}, nil)

	if _, err := p.FromImage(context.Background(), colour.ThemeLight, "wall.png"); err != nil {
		t.Fatalf("FromImage() error = %v", err)
	}
	if !filepath.IsAbs(remote.lastImage.ImagePath) {
		t.Errorf("plugin saw relative path %q", remote.lastImage.ImagePath)
	}

	if _, err := p.FromImage(context.Background(), colour.ThemeLight, "https://example.com/a.png"); err != nil {
		t.Fatalf("FromImage(url) error = %v", err)
	}
	if remote.lastImage.ImagePath != "https://example.com/a.png" {
		t.Errorf("plugin saw %q, want URL unchanged", remote.lastImage.ImagePath)
	}
}

func TestPluginMissingRole(t *testing.T) {
	light := fullPluginScheme(250)
	delete(light, "outline")
	remote := &fakeRemote{pair: pluginapi.SchemePair{Light: light, Dark: fullPluginScheme(20)}}

	_, err := NewPlugin("fake", fakeSource{remote: remote}, nil).FromColor(context.Background(), colour.ThemeLight, 1)
	if !errors.Is(err, colour.ErrConfiguration) {
		t.Errorf("FromColor() error = %v, want ErrConfiguration", err)
	}
}

func TestPluginErrors(t *testing.T) {
	ctx := context.Background()

	startErr := errors.New("handshake failed")
	p := NewPlugin("broken", fakeSource{err: startErr}, nil)
	if _, err := p.FromColor(ctx, colour.ThemeLight, 1); !errors.Is(err, startErr) {
		t.Errorf("FromColor() error = %v, want start error", err)
	}

	remoteErr := errors.New("cannot read image")
	p = NewPlugin("failing", fakeSource{remote: &fakeRemote{err: remoteErr}}, nil)
	if _, err := p.FromImage(ctx, colour.ThemeLight, "x.png"); !errors.Is(err, remoteErr) {
		t.Errorf("FromImage() error = %v, want remote error", err)
	}

	if _, err := p.FromColor(ctx, "auto", 1); !errors.Is(err, colour.ErrInvalidTheme) {
		t.Errorf("FromColor() error = %v, want ErrInvalidTheme", err)
	}
}

func TestPluginFactoryRegistered(t *testing.T) {
	remote := &fakeRemote{pair: pluginapi.SchemePair{Light: fullPluginScheme(1), Dark: fullPluginScheme(2)}}
	r := NewRegistry()
	r.Register("fake", PluginFactory("fake", fakeSource{remote: remote}))

	b, err := r.Resolve("fake")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if b.Name() != "fake" {
		t.Errorf("Name() = %q, want fake", b.Name())
	}
}
