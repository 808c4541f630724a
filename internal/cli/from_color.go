package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/iroha/internal/colour"
)

func newFromColorCmd(a *app) *cobra.Command {
	opts := &outputOptions{}

	cmd := &cobra.Command{
		Use:   "from-color <color>",
		Short: "Generate a colour scheme from a single colour",
		Long: `Generate a colour scheme from a seed colour.

Accepted formats: #RGB, #RRGGBB, #AARRGGBB, rgb(r, g, b) and rgba(r, g, b, a)
with components from 0 to 255.

Examples:
  iroha from-color '#4285F4'
  iroha from-color 'rgb(66, 133, 244)' --dark
  iroha from-color '#FF4285F4' -t builtin:css -o ~/.config/theme.css`,
		Aliases: []string{"from-colour"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			argb, err := colour.ParseARGB(args[0])
			if err != nil {
				return err
			}

			b, err := a.resolveBackend(opts.backend)
			if err != nil {
				return err
			}

			schemes, err := b.FromColor(cmd.Context(), opts.theme(), argb)
			if err != nil {
				return err
			}
			return a.writeSchemes(cmd, b, schemes, opts)
		},
	}

	opts.register(cmd.Flags(), "t")
	return cmd
}
