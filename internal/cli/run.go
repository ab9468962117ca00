package cli

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/llehouerou/paneflare/internal/app"
	"github.com/llehouerou/paneflare/internal/config"
	"github.com/llehouerou/paneflare/internal/coordinator"
	"github.com/llehouerou/paneflare/internal/errmsg"
	"github.com/llehouerou/paneflare/internal/history"
	"github.com/llehouerou/paneflare/internal/logx"
	"github.com/llehouerou/paneflare/internal/notify"
	"github.com/llehouerou/paneflare/internal/printer"
	"github.com/llehouerou/paneflare/internal/spool"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the terminal front end (the default)",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
}

func runTUI(cmd *cobra.Command, _ []string) error {
	p := printer.New(cmd.OutOrStdout(), cmd.ErrOrStderr())

	cfg, paths, err := loadConfig()
	if err != nil {
		return p.Error(errmsg.Format(errmsg.OpConfigLoad, err), "", []string{
			"Check the files: " + strings.Join(paths, ", "),
		})
	}

	log, closer, err := logx.Open(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return p.Error(errmsg.FormatWith(errmsg.OpLogOpen, cfg.Log.File, err), "", nil)
	}
	defer closer.Close()

	archive, err := history.Open()
	if err != nil {
		return p.Error(errmsg.Format(errmsg.OpArchiveOpen, err), "", nil)
	}
	defer archive.Close()

	options := []coordinator.Option{
		coordinator.WithArchive(archive),
		coordinator.WithLogger(log.With(logx.String("component", "coordinator"))),
	}
	if fwd := desktopForwarder(cfg, log); fwd != nil {
		options = append(options, coordinator.WithForwarder(fwd))
	}
	coord := coordinator.New(cfg.CoordinatorOptions(), options...)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	watcher, err := spool.NewWatcher(cfg.SpoolDir, log.With(logx.String("component", "spool")))
	if err != nil {
		return p.Error(errmsg.FormatWith(errmsg.OpSpoolWatch, cfg.SpoolDir, err), "", nil)
	}
	go func() {
		if err := watcher.Run(ctx); err != nil {
			log.Error("spool watcher stopped", logx.Err(err))
		}
	}()

	reloads, err := config.Watch(ctx, log.With(logx.String("component", "config")), paths...)
	if err != nil && !errors.Is(err, config.ErrNoConfigFile) {
		log.Warn("config watch unavailable", logx.Err(err))
	}

	log.Info("starting",
		logx.String("version", version),
		logx.String("spool", cfg.SpoolDir),
		logx.Int("panes", cfg.Panes),
	)

	m := app.New(app.Deps{
		Config:      cfg,
		Coordinator: coord,
		Archive:     archive,
		Log:         log.With(logx.String("component", "app")),
		Spool:       watcher.Events(),
		Reloads:     reloads,
		ConfigPaths: paths,
	})

	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := prog.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return p.Error(errmsg.Format(errmsg.OpInitialize, err), "", nil)
	}
	return nil
}

// desktopForwarder returns nil when desktop notifications are off or unavailable.
func desktopForwarder(cfg *config.Config, log logx.Logger) *notify.Forwarder {
	if !cfg.Desktop.Enabled {
		return nil
	}
	n, err := notify.New()
	if err != nil {
		log.Warn(errmsg.Format(errmsg.OpDesktopConnect, err))
		return nil
	}
	return notify.NewForwarder(n, cfg.DesktopMinPriority(), cfg.Desktop.PerMinute)
}
