// Package cli holds the paneflare commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/llehouerou/paneflare/internal/config"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// configFile overrides the default config search paths.
var configFile string

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paneflare",
		Short: "Visual notifications for terminal panes",
		Long: `paneflare shows notifications from background commands on the pane
or tab that raised them: a colored border, a badge and a status bar entry
that fade out once the pane is focused.

Run without a subcommand to start the terminal front end. Other programs
deliver events with "paneflare send".`,
		Version:            version,
		RunE:               runTUI,
		Args:               cobra.NoArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{},
	}
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default: XDG config home, then ./config.toml)")

	cmd.AddCommand(newRunCmd(), newSendCmd(), newThemesCmd(), newCheckCmd())
	return cmd
}

// Execute runs the root command.
func Execute() error {
	// errors are printed by the printer package
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd.Execute()
}

// SetVersionInfo sets the version shown by --version.
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

func configPaths() []string {
	if configFile != "" {
		return []string{configFile}
	}
	return config.Paths()
}

// loadConfig loads and validates the config from configPaths.
func loadConfig() (*config.Config, []string, error) {
	paths := configPaths()
	cfg, err := config.LoadFrom(paths...)
	if err != nil {
		return nil, paths, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, paths, err
	}
	return cfg, paths, nil
}
