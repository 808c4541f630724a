// Package cli provides the command-line interface for iroha.
package cli

import (
	"fmt"
	"io"
	"maps"
	"os"

	"github.com/hashicorp/go-hclog"
	goplugin "github.com/hashicorp/go-plugin"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/iroha/internal/backend"
	"github.com/jmylchreest/iroha/internal/config"
	"github.com/jmylchreest/iroha/internal/plugin/executor"
	"github.com/jmylchreest/iroha/internal/template"
	"github.com/jmylchreest/iroha/internal/version"
)

// app carries state shared by every command for one invocation.
type app struct {
	verbose     bool
	quiet       bool
	pluginSpecs []string
	envFiles    []string

	logger   hclog.Logger
	cfg      config.Config
	registry *backend.Registry
	plugins  map[string]*executor.PluginExecutor
	loader   *template.Loader
}

// NewRootCmd builds the iroha command tree.
func NewRootCmd() *cobra.Command {
	cmd, _ := newRootCmd()
	return cmd
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{plugins: make(map[string]*executor.PluginExecutor)}

	rootCmd := &cobra.Command{
		Use:   "iroha",
		Short: "Generate colour schemes from images or colours",
		Long: `Iroha derives Material Design colour schemes from an image or a single
seed colour and renders them as JSON or through templates.

Every run produces a light and a dark scheme; --dark selects which one is
the default used for plain JSON output and the "output" template target.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&a.quiet, "quiet", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringArrayVar(&a.pluginSpecs, "plugin", nil, "register an external backend plugin as name=path (repeatable)")
	rootCmd.PersistentFlags().StringArrayVar(&a.envFiles, "env-file", nil, "read defaults from this dotenv file instead of .env and ~/.config/iroha/iroha.env (repeatable)")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newFromImageCmd(a))
	rootCmd.AddCommand(newFromColorCmd(a))
	rootCmd.AddCommand(newBackendsCmd(a))
	rootCmd.AddCommand(newPreviewCmd(a))
	rootCmd.AddCommand(newTemplatesCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd, a
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	rootCmd, a := newRootCmd()
	err := rootCmd.Execute()
	a.close()
	goplugin.CleanupClients()
	if err != nil {
		os.Exit(1)
	}
}

// setup loads configuration and builds the logger and backend registry.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	level := hclog.Info
	switch {
	case a.quiet:
		level = hclog.Error
	case a.verbose:
		level = hclog.Debug
	}
	a.logger = hclog.New(&hclog.LoggerOptions{
		Name:   "iroha",
		Level:  level,
		Output: cmd.ErrOrStderr(),
	})

	cfg, err := config.Load(a.envFiles...)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	flagPlugins, err := config.ParsePlugins(a.pluginSpecs)
	if err != nil {
		return err
	}
	maps.Copy(cfg.Plugins, flagPlugins)
	a.cfg = cfg

	a.loader = template.NewLoader().
		WithCustomBase(cfg.TemplateDir).
		WithLogger(a.logger.Named("template"))

	a.registry = backend.NewRegistry(backend.WithLogger(a.logger))
	for _, name := range cfg.PluginNames() {
		if name == backend.MaterialName {
			return fmt.Errorf("plugin name %q is reserved for the built-in backend", name)
		}
		exec, err := executor.New(cfg.Plugins[name], a.logger.Named("plugin").Named(name))
		if err != nil {
			return fmt.Errorf("plugin %q: %w", name, err)
		}
		a.plugins[name] = exec
		a.registry.Register(name, backend.PluginFactory(name, exec))
		a.logger.Debug("registered plugin backend", "name", name, "path", exec.Path())
	}
	return nil
}

// close stops any plugin processes started during the run.
func (a *app) close() {
	for _, exec := range a.plugins {
		exec.Close()
	}
}

// printf writes an informational message to w unless --quiet is set.
func (a *app) printf(w io.Writer, format string, args ...any) {
	if a.quiet {
		return
	}
	fmt.Fprintf(w, format, args...)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
