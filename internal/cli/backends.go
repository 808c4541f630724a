package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/iroha/internal/backend"
	"github.com/jmylchreest/iroha/internal/version"
	pluginapi "github.com/jmylchreest/iroha/pkg/plugin"
)

const materialDescription = "Material Design tonal palettes from the dominant image colour"

func newBackendsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List available colour generation backends",
		Long: `List the built-in backend and every external backend plugin registered
with --plugin or $IROHA_PLUGINS. Plugin metadata is read by running each
plugin with --plugin-info.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table := NewTable("NAME", "TYPE", "VERSION", "DESCRIPTION")
			table.SetColumnMaxWidth(3, 60)

			for _, name := range a.registry.Names() {
				if name == backend.MaterialName {
					table.AddRow(name, "built-in", version.Short(), materialDescription)
					continue
				}

				exec, ok := a.plugins[name]
				if !ok {
					table.AddRow(name, "built-in")
					continue
				}
				info, err := exec.Info(cmd.Context())
				if errors.Is(err, pluginapi.ErrIncompatible) {
					table.AddRow(name, "plugin", info.Version, err.Error())
					continue
				}
				if err != nil {
					a.logger.Warn("failed to query plugin", "name", name, "error", err)
					table.AddRow(name, "plugin", "-", fmt.Sprintf("unavailable (%s)", exec.Path()))
					continue
				}
				table.AddRow(name, "plugin", info.Version, info.Description)
			}

			fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return nil
		},
	}
}
