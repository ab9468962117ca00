package cli

import (
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llehouerou/paneflare/internal/errmsg"
	"github.com/llehouerou/paneflare/internal/printer"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration",
		Args:  cobra.NoArgs,
		RunE:  runCheck,
	}
}

func runCheck(cmd *cobra.Command, _ []string) error {
	p := printer.New(cmd.OutOrStdout(), cmd.ErrOrStderr())

	cfg, paths, err := loadConfig()
	if err != nil {
		return p.Error(errmsg.Format(errmsg.OpConfigValidate, err), "", []string{
			"Check the files: " + strings.Join(paths, ", "),
		})
	}

	found := false
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		found = true
		p.Step("%s (%s, modified %s)\n", path, humanize.Bytes(uint64(info.Size())), humanize.Time(info.ModTime())) //nolint:gosec // sizes are never negative
	}
	if !found {
		p.Warning("no config file found, using defaults\n")
	}

	anim := cfg.AnimationSettings()
	p.Detail("theme      %s (%s)\n", cfg.ColorTheme().Name, cfg.Capability())
	p.Detail("animation  %s, enabled=%t\n", anim.Style, anim.Enabled)
	p.Detail("queue      %d per level, ttl %s\n", cfg.QueueMaxSize, humanize.Comma(int64(cfg.NotificationTimeoutMs))+"ms") //nolint:gosec // bounded by validation
	p.Detail("spool      %s\n", cfg.SpoolDir)
	p.Success("configuration is valid\n")
	return nil
}
