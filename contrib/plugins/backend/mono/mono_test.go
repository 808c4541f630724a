package main

import (
	"context"
	"testing"

	"github.com/hashicorp/go-plugin"

	"github.com/jmylchreest/iroha/internal/colour"
	pluginapi "github.com/jmylchreest/iroha/pkg/plugin"
)

func TestMonoFromColorIsGrey(t *testing.T) {
	pair, err := NewMono().FromColor(context.Background(), pluginapi.ColorRequest{ARGB: 0xFF4285F4})
	if err != nil {
		t.Fatalf("FromColor() error = %v", err)
	}

	for name, raw := range map[string]pluginapi.RawScheme{"light": pair.Light, "dark": pair.Dark} {
		if len(raw) != len(colour.Roles()) {
			t.Errorf("%s scheme has %d roles, want %d", name, len(raw), len(colour.Roles()))
		}
		for role, c := range raw {
			if c[0] != c[1] || c[1] != c[2] || c[3] != 255 {
				t.Errorf("%s %s = %v, want opaque grey", name, role, c)
			}
		}
	}
}

func TestMonoOverRPC(t *testing.T) {
	client, _ := plugin.TestPluginRPCConn(t, pluginapi.PluginMap(NewMono()), nil)
	defer client.Close()

	raw, err := client.Dispense(pluginapi.BackendPluginName)
	if err != nil {
		t.Fatalf("Dispense() error = %v", err)
	}
	remote := raw.(pluginapi.BackendPlugin)

	if info := remote.GetMetadata(); info.Name != "mono" {
		t.Errorf("GetMetadata().Name = %q, want mono", info.Name)
	}

	pair, err := remote.FromColor(context.Background(), pluginapi.ColorRequest{ARGB: 0xFFFF0000})
	if err != nil {
		t.Fatalf("FromColor() error = %v", err)
	}
	if _, err := colour.BuildSchemes(colour.ThemeDark, toRaw(pair.Light), toRaw(pair.Dark)); err != nil {
		t.Errorf("BuildSchemes() error = %v", err)
	}
}

func toRaw(in pluginapi.RawScheme) colour.RawScheme {
	out := make(colour.RawScheme, len(in))
	for role, c := range in {
		out[colour.Role(role)] = colour.RGBA(c)
	}
	return out
}
