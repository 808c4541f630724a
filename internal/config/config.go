// Package config reads iroha defaults from the environment and optional
// dotenv files. Command-line flags take precedence over everything here.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvBackend     = "IROHA_BACKEND"
	EnvNumColors   = "IROHA_NUM_COLORS"
	EnvQuality     = "IROHA_QUALITY"
	EnvPlugins     = "IROHA_PLUGINS"
	EnvTemplateDir = "IROHA_TEMPLATE_DIR"
)

// Defaults used when neither flags nor environment set a value.
const (
	DefaultBackend   = "material"
	DefaultNumColors = 128
	DefaultQuality   = 100
)

// Config holds environment-level defaults.
type Config struct {
	Backend     string
	NumColors   int
	Quality     int
	Plugins     map[string]string
	TemplateDir string
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Backend:   DefaultBackend,
		NumColors: DefaultNumColors,
		Quality:   DefaultQuality,
		Plugins:   map[string]string{},
	}
}

// DefaultEnvFiles returns the dotenv files Load reads when called without
// arguments: ./.env, then ~/.config/iroha/iroha.env.
func DefaultEnvFiles() []string {
	files := []string{".env"}
	if home, err := os.UserHomeDir(); err == nil {
		files = append(files, filepath.Join(home, ".config", "iroha", "iroha.env"))
	}
	return files
}

// Load builds a Config from the process environment and the given dotenv
// files. Missing files are skipped. The process environment wins over file
// values, and earlier files win over later ones.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = DefaultEnvFiles()
	}

	fileVals := map[string]string{}
	for _, f := range files {
		vals, err := godotenv.Read(f)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("failed to read %s: %w", f, err)
		}
		for k, v := range vals {
			if _, ok := fileVals[k]; !ok {
				fileVals[k] = v
			}
		}
	}

	return FromLookup(func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fileVals[key]
	})
}

// FromLookup builds a Config from a key lookup. Empty values keep the default.
func FromLookup(lookup func(string) string) (Config, error) {
	cfg := Default()

	if v := strings.TrimSpace(lookup(EnvBackend)); v != "" {
		cfg.Backend = v
	}

	if v := strings.TrimSpace(lookup(EnvNumColors)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("%s must be a positive integer, got %q", EnvNumColors, v)
		}
		cfg.NumColors = n
	}

	if v := strings.TrimSpace(lookup(EnvQuality)); v != "" {
		q, err := strconv.Atoi(v)
		if err != nil || q < 1 || q > 100 {
			return Config{}, fmt.Errorf("%s must be between 1 and 100, got %q", EnvQuality, v)
		}
		cfg.Quality = q
	}

	if v := strings.TrimSpace(lookup(EnvPlugins)); v != "" {
		plugins, err := ParsePlugins(strings.Split(v, ","))
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvPlugins, err)
		}
		cfg.Plugins = plugins
	}

	cfg.TemplateDir = strings.TrimSpace(lookup(EnvTemplateDir))

	return cfg, nil
}

// ParsePlugins parses name=path pairs. Blank entries are ignored; a repeated
// name keeps the last path.
func ParsePlugins(specs []string) (map[string]string, error) {
	plugins := make(map[string]string, len(specs))
	for _, spec := range specs {
		spec = strings.TrimSpace(spec)
		if spec == "" {
			continue
		}
		name, path, ok := strings.Cut(spec, "=")
		name, path = strings.TrimSpace(name), strings.TrimSpace(path)
		if !ok || name == "" || path == "" {
			return nil, fmt.Errorf("invalid plugin %q, expected name=path", spec)
		}
		plugins[name] = path
	}
	return plugins, nil
}

// PluginNames returns the configured plugin names in sorted order.
func (c Config) PluginNames() []string {
	names := make([]string, 0, len(c.Plugins))
	for name := range c.Plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
