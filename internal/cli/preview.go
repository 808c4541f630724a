package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/iroha/internal/backend"
	"github.com/jmylchreest/iroha/internal/colour"
	"github.com/jmylchreest/iroha/internal/image"
)

// contrastPairs are the foreground/background roles reported by preview.
var contrastPairs = [][2]colour.Role{
	{colour.RoleOnPrimary, colour.RolePrimary},
	{colour.RoleOnSecondary, colour.RoleSecondary},
	{colour.RoleOnTertiary, colour.RoleTertiary},
	{colour.RoleOnBackground, colour.RoleBackground},
	{colour.RoleOnSurfaceVariant, colour.RoleSurfaceVariant},
}

func newPreviewCmd(a *app) *cobra.Command {
	var (
		dark        bool
		both        bool
		backendName string
		width       int
	)

	cmd := &cobra.Command{
		Use:   "preview <color|image>",
		Short: "Show a scheme in the terminal",
		Long: `Show every role of a scheme as a colour swatch with its hex code.

The argument is parsed as a colour first and otherwise treated as an image
path, URL or directory. Swatches are only drawn when stdout is a terminal
and NO_COLOR is unset.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.resolveBackend(backendName)
			if err != nil {
				return err
			}

			theme := colour.ThemeLight
			if dark {
				theme = colour.ThemeDark
			}

			var schemes *colour.Schemes
			if argb, perr := colour.ParseARGB(args[0]); perr == nil {
				schemes, err = b.FromColor(cmd.Context(), theme, argb)
			} else {
				path := args[0]
				if !image.IsURL(path) {
					if path, err = image.ResolveImagePath(path); err != nil {
						return err
					}
				}
				b.Configure(backendConfigFrom(a))
				schemes, err = b.FromImage(cmd.Context(), theme, path)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colours := false
			if f, ok := out.(*os.File); ok {
				colours = colour.SupportsANSIColours(f)
			}

			if !both {
				writePreview(out, string(theme), schemes.Default, width, colours)
				return nil
			}
			writePreview(out, string(colour.ThemeLight), schemes.Light, width, colours)
			fmt.Fprintln(out)
			writePreview(out, string(colour.ThemeDark), schemes.Dark, width, colours)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dark, "dark", "d", false, "preview the dark scheme")
	cmd.Flags().BoolVar(&both, "both", false, "preview the light and dark schemes")
	cmd.Flags().StringVarP(&backendName, "backend", "b", "", "colour generation backend (default: material or $IROHA_BACKEND)")
	cmd.Flags().IntVarP(&width, "width", "w", 8, "swatch width in cells")

	return cmd
}

// backendConfigFrom returns sampling options taken from configuration only.
func backendConfigFrom(a *app) backend.Config {
	cfg := backend.Config{NumColors: a.cfg.NumColors}
	if stride, err := backend.StrideFromQuality(a.cfg.Quality); err == nil {
		cfg.Stride = stride
	}
	return cfg
}

// writePreview prints every role of scheme followed by WCAG contrast ratios
// of the main foreground/background pairs.
func writePreview(w io.Writer, title string, scheme *colour.Scheme, width int, colours bool) {
	fmt.Fprintf(w, "%s scheme\n", title)
	for _, role := range colour.Roles() {
		obj, _ := scheme.Get(role)
		fmt.Fprintln(w, colour.FormatRole(role, obj, width, colours))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "contrast")
	for _, pair := range contrastPairs {
		fg, _ := scheme.Get(pair[0])
		bg, _ := scheme.Get(pair[1])
		if colours {
			fmt.Fprint(w, colour.ColourPreview(fg, 2), colour.ColourPreview(bg, 2), "  ")
		}
		fmt.Fprintf(w, "%-32s %5.2f:1\n", pair[0]+"/"+pair[1], colour.ContrastRatio(fg, bg))
	}
}
