package template

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/jmylchreest/iroha/internal/colour"
)

// Renderer executes templates against a scheme. Roles are top-level keys
// ({{ .primary.hex }}) and referencing an unknown key is an error.
type Renderer struct {
	loader *Loader
}

// NewRenderer returns a renderer that resolves builtin: references through loader.
func NewRenderer(loader *Loader) *Renderer {
	if loader == nil {
		loader = NewLoader()
	}
	return &Renderer{loader: loader}
}

// Source returns the template text and display name for ref, which is either
// a file path or builtin:<name>.
func (r *Renderer) Source(ref string) (name string, content []byte, err error) {
	if builtin, ok := strings.CutPrefix(ref, BuiltinPrefix); ok {
		content, _, err := r.loader.Load(builtin)
		if err != nil {
			return "", nil, err
		}
		return builtin, content, nil
	}

	path := ExpandPath(ref)
	content, err = os.ReadFile(path) // #nosec G304 - user supplied template
	if err != nil {
		return "", nil, fmt.Errorf("failed to read template: %w", err)
	}
	return filepath.Base(path), content, nil
}

// Render executes the template ref against scheme.
func (r *Renderer) Render(ref string, scheme *colour.Scheme) ([]byte, error) {
	name, content, err := r.Source(ref)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(name).
		Option("missingkey=error").
		Funcs(Funcs()).
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, scheme.TemplateData()); err != nil {
		return nil, fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// RenderToFile renders ref and writes the result to output, creating parent
// directories as needed.
func (r *Renderer) RenderToFile(ref string, scheme *colour.Scheme, output string) error {
	data, err := r.Render(ref, scheme)
	if err != nil {
		return err
	}
	return WriteFile(output, data)
}

// WriteFile writes data to path, creating parent directories.
func WriteFile(path string, data []byte) error {
	path = ExpandPath(path)
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil { // #nosec G301 - user output directory
			return fmt.Errorf("failed to create directory %q: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 - generated theme files are user readable
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
