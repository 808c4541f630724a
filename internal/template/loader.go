// Package template renders colour schemes through Go text/template files,
// either from disk or from the built-in set, and drives template maps.
package template

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hashicorp/go-hclog"
)

//go:embed builtin/*.tmpl
var builtinFS embed.FS

// BuiltinPrefix marks a template reference as one of the built-in templates.
const BuiltinPrefix = "builtin:"

// Loader reads built-in templates, preferring a user override in the custom
// directory (~/.config/iroha/templates by default) over the embedded copy.
type Loader struct {
	embedFS    fs.FS
	customBase string
	logger     hclog.Logger
}

// DefaultCustomBase returns ~/.config/iroha/templates.
func DefaultCustomBase() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return filepath.Join(home, ".config", "iroha", "templates")
}

// NewLoader returns a loader over the embedded built-in templates.
func NewLoader() *Loader {
	sub, _ := fs.Sub(builtinFS, "builtin")
	return &Loader{
		embedFS:    sub,
		customBase: DefaultCustomBase(),
		logger:     hclog.NewNullLogger(),
	}
}

// WithCustomBase sets the directory searched for overrides.
func (l *Loader) WithCustomBase(customBase string) *Loader {
	if customBase != "" {
		l.customBase = customBase
	}
	return l
}

// WithLogger sets the logger used to report which copy was loaded.
func (l *Loader) WithLogger(logger hclog.Logger) *Loader {
	l.logger = logger
	return l
}

// CustomDir returns the override directory.
func (l *Loader) CustomDir() string {
	return l.customBase
}

// CustomPath returns where an override for name would live.
func (l *Loader) CustomPath(name string) string {
	return filepath.Join(l.customBase, fileName(name))
}

// Load returns the template called name (css, kitty, ...) and whether it
// came from an override.
func (l *Loader) Load(name string) (content []byte, fromCustom bool, err error) {
	customPath := l.CustomPath(name)
	if content, err := os.ReadFile(customPath); err == nil { // #nosec G304 - user template directory
		l.logger.Debug("using custom template", "path", customPath)
		return content, true, nil
	}

	l.logger.Debug("using built-in template", "name", name)
	content, err = fs.ReadFile(l.embedFS, fileName(name))
	if err != nil {
		return nil, false, fmt.Errorf("unknown built-in template %q (available: %s)",
			name, strings.Join(l.mustList(), ", "))
	}
	return content, false, nil
}

// List returns the built-in template names, sorted.
func (l *Loader) List() ([]string, error) {
	var names []string
	err := fs.WalkDir(l.embedFS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && path.Ext(p) == ".tmpl" {
			names = append(names, strings.TrimSuffix(path.Base(p), ".tmpl"))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list built-in templates: %w", err)
	}
	slices.Sort(names)
	return names, nil
}

func (l *Loader) mustList() []string {
	names, _ := l.List()
	return names
}

// HasCustom reports whether an override exists for name.
func (l *Loader) HasCustom(name string) bool {
	_, err := os.Stat(l.CustomPath(name))
	return err == nil
}

// Dump copies the built-in template name into the override directory so it
// can be edited. Existing overrides are kept unless force is set.
func (l *Loader) Dump(name string, force bool) (string, error) {
	content, err := fs.ReadFile(l.embedFS, fileName(name))
	if err != nil {
		return "", fmt.Errorf("unknown built-in template %q", name)
	}

	outputPath := l.CustomPath(name)
	if !force && l.HasCustom(name) {
		return "", fmt.Errorf("custom template already exists: %s (use --force to overwrite)", outputPath)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil { // #nosec G301 - user config directory
		return "", fmt.Errorf("failed to create directory %q: %w", filepath.Dir(outputPath), err)
	}
	if err := os.WriteFile(outputPath, content, 0o644); err != nil { // #nosec G306 - user editable template
		return "", fmt.Errorf("failed to write template to %q: %w", outputPath, err)
	}
	return outputPath, nil
}

func fileName(name string) string {
	return name + ".tmpl"
}
