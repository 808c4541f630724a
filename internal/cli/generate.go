package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/iroha/internal/backend"
	"github.com/jmylchreest/iroha/internal/colour"
	"github.com/jmylchreest/iroha/internal/template"
)

// outputOptions are the output flags shared by from-image and from-color.
type outputOptions struct {
	json           string
	template       string
	templateOutput string
	templateMap    string
	dark           bool
	backend        string
}

// register adds the output flags to flags. templateShort is the shorthand
// for --template, which differs between commands.
func (o *outputOptions) register(flags *pflag.FlagSet, templateShort string) {
	flags.StringVarP(&o.json, "json", "j", "", "save the JSON scheme to this path instead of printing it")
	flags.StringVarP(&o.template, "template", templateShort, "", "render this template (a path or builtin:<name>) with the default scheme")
	flags.StringVarP(&o.templateOutput, "template-output", "o", "", "save the rendered template to this path (default: stdout)")
	flags.StringVarP(&o.templateMap, "template-map", "m", "", "YAML or JSON file mapping templates to output paths")
	flags.BoolVarP(&o.dark, "dark", "d", false, "use the dark scheme as the default")
	flags.StringVarP(&o.backend, "backend", "b", "", "colour generation backend (default: material or $IROHA_BACKEND)")
}

// theme returns the requested default theme.
func (o *outputOptions) theme() colour.Theme {
	if o.dark {
		return colour.ThemeDark
	}
	return colour.ThemeLight
}

// resolveBackend returns the backend named by --backend, falling back to the
// configured default.
func (a *app) resolveBackend(name string) (backend.Backend, error) {
	if name == "" {
		name = a.cfg.Backend
	}
	b, err := a.registry.Resolve(name)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("using backend", "name", b.Name())
	return b, nil
}

// writeSchemes emits schemes in order of precedence: a template map renders
// every mapped output, otherwise a single template, otherwise JSON.
func (a *app) writeSchemes(cmd *cobra.Command, b backend.Backend, schemes *colour.Schemes, o *outputOptions) error {
	renderer := template.NewRenderer(a.loader)
	stdout := cmd.OutOrStdout()

	switch {
	case o.templateMap != "":
		m, err := template.LoadMap(o.templateMap)
		if err != nil {
			return err
		}
		written, err := template.RenderMap(cmd.Context(), renderer, m, schemes)
		if err != nil {
			return err
		}
		for _, path := range written {
			a.printf(stdout, "Template rendered to %s\n", path)
		}
		return nil

	case o.template != "":
		if o.templateOutput == "" {
			data, err := renderer.Render(o.template, schemes.Default)
			if err != nil {
				return err
			}
			_, err = stdout.Write(data)
			return err
		}
		if err := renderer.RenderToFile(o.template, schemes.Default, o.templateOutput); err != nil {
			return err
		}
		a.printf(stdout, "Template rendered to %s\n", o.templateOutput)
		return nil
	}

	out, err := b.Serialize(*schemes.Default)
	if err != nil {
		return err
	}
	if o.json == "" {
		fmt.Fprintln(stdout, out)
		return nil
	}
	if err := template.WriteFile(o.json, []byte(out)); err != nil {
		return err
	}
	a.printf(stdout, "Saved to %s\n", o.json)
	return nil
}
