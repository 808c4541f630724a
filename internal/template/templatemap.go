package template

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/iroha/internal/colour"
)

// MaxConcurrentRenders bounds how many map outputs render at once.
const MaxConcurrentRenders = 4

// Map is a declarative list of templates and where to write them.
type Map struct {
	Templates []MapEntry `yaml:"templates" json:"templates"`
}

// MapEntry renders one template to up to three outputs: the default scheme,
// the light scheme and the dark scheme.
type MapEntry struct {
	Template    string `yaml:"template" json:"template"`
	Output      string `yaml:"output,omitempty" json:"output,omitempty"`
	OutputLight string `yaml:"output_light,omitempty" json:"output_light,omitempty"`
	OutputDark  string `yaml:"output_dark,omitempty" json:"output_dark,omitempty"`
}

// job is one template rendered for one variant.
type job struct {
	template string
	variant  string
	output   string
}

// jobs flattens the map in file order: default, light, dark per entry.
func (m *Map) jobs() []job {
	var out []job
	for _, e := range m.Templates {
		for _, v := range []struct{ variant, output string }{
			{"default", e.Output},
			{string(colour.ThemeLight), e.OutputLight},
			{string(colour.ThemeDark), e.OutputDark},
		} {
			if v.output != "" {
				out = append(out, job{template: e.Template, variant: v.variant, output: v.output})
			}
		}
	}
	return out
}

// LoadMap reads a YAML or JSON template map. Paths are ~-expanded and
// relative paths are resolved against the map's directory.
func LoadMap(path string) (*Map, error) {
	path = ExpandPath(path)

	data, err := os.ReadFile(path) // #nosec G304 - user supplied template map
	if err != nil {
		return nil, fmt.Errorf("failed to read template map: %w", err)
	}

	var m Map
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to parse JSON template map: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to parse YAML template map: %w", err)
		}
	}

	base := filepath.Dir(path)
	for i := range m.Templates {
		e := &m.Templates[i]
		if !strings.HasPrefix(e.Template, BuiltinPrefix) {
			e.Template = resolvePath(base, e.Template)
		}
		e.Output = resolvePath(base, e.Output)
		e.OutputLight = resolvePath(base, e.OutputLight)
		e.OutputDark = resolvePath(base, e.OutputDark)
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid template map %s: %w", path, err)
	}
	return &m, nil
}

// Validate checks that every entry names a template and at least one output,
// and that no two outputs write the same file.
func (m *Map) Validate() error {
	if len(m.Templates) == 0 {
		return fmt.Errorf("no templates defined")
	}
	owner := make(map[string]int)
	for i, e := range m.Templates {
		if e.Template == "" {
			return fmt.Errorf("entry %d: template is required", i)
		}
		if e.Output == "" && e.OutputLight == "" && e.OutputDark == "" {
			return fmt.Errorf("entry %d (%s): at least one of output, output_light, output_dark is required", i, e.Template)
		}
		for _, out := range []string{e.Output, e.OutputLight, e.OutputDark} {
			if out == "" {
				continue
			}
			key := filepath.Clean(out)
			if prev, ok := owner[key]; ok {
				if prev == i {
					return fmt.Errorf("entry %d (%s): output %q is listed more than once", i, e.Template, out)
				}
				return fmt.Errorf("entry %d (%s): output %q is also written by entry %d", i, e.Template, out, prev)
			}
			owner[key] = i
		}
	}
	return nil
}

func resolvePath(base, p string) string {
	if p == "" {
		return ""
	}
	p = ExpandPath(p)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// RenderMap renders every output of m and returns the written paths in map
// order. Outputs render concurrently; the first failure cancels the rest.
func RenderMap(ctx context.Context, r *Renderer, m *Map, schemes *colour.Schemes) ([]string, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	jobs := m.jobs()
	written := make([]string, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(MaxConcurrentRenders)

	for i, j := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			scheme, err := schemes.Variant(j.variant)
			if err != nil {
				return err
			}
			if err := r.RenderToFile(j.template, scheme, j.output); err != nil {
				return fmt.Errorf("%s (%s): %w", j.output, j.variant, err)
			}
			written[i] = j.output
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return written, nil
}
