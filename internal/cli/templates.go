package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/iroha/internal/template"
)

func newTemplatesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Manage built-in templates",
		Long: `List the built-in templates or copy them into the override directory
(~/.config/iroha/templates or $IROHA_TEMPLATE_DIR) for editing. An override
replaces the built-in copy whenever builtin:<name> is rendered.`,
	}

	cmd.AddCommand(newTemplatesListCmd(a))
	cmd.AddCommand(newTemplatesDumpCmd(a))
	return cmd
}

func newTemplatesListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := a.loader.List()
			if err != nil {
				return err
			}

			table := NewTable("NAME", "REFERENCE", "SOURCE")
			for _, name := range names {
				source := "embedded"
				if a.loader.HasCustom(name) {
					source = a.loader.CustomPath(name)
				}
				table.AddRow(name, template.BuiltinPrefix+name, source)
			}
			fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return nil
		},
	}
}

func newTemplatesDumpCmd(a *app) *cobra.Command {
	var (
		force bool
		all   bool
	)

	cmd := &cobra.Command{
		Use:   "dump [name...]",
		Short: "Copy built-in templates into the override directory",
		Example: `  iroha templates dump kitty
  iroha templates dump --all --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if all {
				list, err := a.loader.List()
				if err != nil {
					return err
				}
				names = list
			}
			if len(names) == 0 {
				return fmt.Errorf("no templates named (pass names or --all)")
			}

			for _, name := range names {
				path, err := a.loader.Dump(name, force)
				if err != nil {
					return err
				}
				a.printf(cmd.OutOrStdout(), "Saved to %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite existing overrides")
	cmd.Flags().BoolVar(&all, "all", false, "dump every built-in template")
	return cmd
}
