package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func lookupMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromLookupDefaults(t *testing.T) {
	cfg, err := FromLookup(lookupMap(nil))
	if err != nil {
		t.Fatalf("FromLookup() error = %v", err)
	}
	if cfg.Backend != DefaultBackend || cfg.NumColors != DefaultNumColors || cfg.Quality != DefaultQuality {
		t.Errorf("FromLookup() = %+v, want defaults", cfg)
	}
	if len(cfg.Plugins) != 0 {
		t.Errorf("Plugins = %v, want empty", cfg.Plugins)
	}
}

func TestFromLookup(t *testing.T) {
	cfg, err := FromLookup(lookupMap(map[string]string{
		EnvBackend:     "vibrant",
		EnvNumColors:   "64",
		EnvQuality:     "50",
		EnvPlugins:     "vibrant=/usr/lib/iroha/vibrant, mono=./mono",
		EnvTemplateDir: "/tmp/templates",
	}))
	if err != nil {
		t.Fatalf("FromLookup() error = %v", err)
	}
	if cfg.Backend != "vibrant" {
		t.Errorf("Backend = %q, want vibrant", cfg.Backend)
	}
	if cfg.NumColors != 64 || cfg.Quality != 50 {
		t.Errorf("NumColors, Quality = %d, %d, want 64, 50", cfg.NumColors, cfg.Quality)
	}
	if cfg.Plugins["mono"] != "./mono" || cfg.Plugins["vibrant"] != "/usr/lib/iroha/vibrant" {
		t.Errorf("Plugins = %v", cfg.Plugins)
	}
	if got := cfg.PluginNames(); !slices.Equal(got, []string{"mono", "vibrant"}) {
		t.Errorf("PluginNames() = %v", got)
	}
	if cfg.TemplateDir != "/tmp/templates" {
		t.Errorf("TemplateDir = %q", cfg.TemplateDir)
	}
}

func TestFromLookupInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"num colors not a number", map[string]string{EnvNumColors: "many"}},
		{"num colors zero", map[string]string{EnvNumColors: "0"}},
		{"quality too high", map[string]string{EnvQuality: "101"}},
		{"quality too low", map[string]string{EnvQuality: "0"}},
		{"plugin without path", map[string]string{EnvPlugins: "vibrant"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromLookup(lookupMap(tt.env)); err == nil {
				t.Error("FromLookup() error = nil, want error")
			}
		})
	}
}

func TestParsePlugins(t *testing.T) {
	got, err := ParsePlugins([]string{"a=/x", "", " b = /y ", "a=/z"})
	if err != nil {
		t.Fatalf("ParsePlugins() error = %v", err)
	}
	if len(got) != 2 || got["a"] != "/z" || got["b"] != "/y" {
		t.Errorf("ParsePlugins() = %v", got)
	}

	for _, bad := range []string{"=path", "name=", "noequals"} {
		if _, err := ParsePlugins([]string{bad}); err == nil {
			t.Errorf("ParsePlugins(%q) error = nil, want error", bad)
		}
	}
}

func TestLoadEnvFiles(t *testing.T) {
	for _, k := range []string{EnvBackend, EnvNumColors, EnvQuality, EnvPlugins, EnvTemplateDir} {
		t.Setenv(k, "")
	}

	dir := t.TempDir()
	first := filepath.Join(dir, "first.env")
	second := filepath.Join(dir, "second.env")
	if err := os.WriteFile(first, []byte("IROHA_BACKEND=fromfile\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(second, []byte("IROHA_BACKEND=ignored\nIROHA_NUM_COLORS=32\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(first, filepath.Join(dir, "missing.env"), second)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Backend != "fromfile" {
		t.Errorf("Backend = %q, want fromfile", cfg.Backend)
	}
	if cfg.NumColors != 32 {
		t.Errorf("NumColors = %d, want 32", cfg.NumColors)
	}

	t.Setenv(EnvBackend, "fromenv")
	cfg, err = Load(first)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Backend != "fromenv" {
		t.Errorf("Backend = %q, want process environment to win", cfg.Backend)
	}
}
