package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/llehouerou/paneflare/internal/bridge"
	"github.com/llehouerou/paneflare/internal/errmsg"
	"github.com/llehouerou/paneflare/internal/notification"
	"github.com/llehouerou/paneflare/internal/printer"
	"github.com/llehouerou/paneflare/internal/spool"
)

type sendOptions struct {
	kind     string
	message  string
	title    string
	source   string
	pane     uint32
	tab      int
	priority string
	ttlMs    uint64
	command  string
	exitCode int
	duration uint64
	spoolDir string
	dryRun   bool
}

func newSendCmd() *cobra.Command {
	opts := &sendOptions{}
	cmd := &cobra.Command{
		Use:   "send [message]",
		Short: "Queue a notification for a running paneflare",
		Long: `Write a notification event into the spool directory, where a running
paneflare picks it up.

Examples:
  paneflare send --type success --pane 2 "Build finished"
  make test; paneflare send --type error --exit-code $? --command "make test"
  paneflare send --tab 1 --priority critical "Deploy needs approval"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.message = args[0]
			}
			return runSend(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.kind, "type", "t", "attention", "success, error, warning, info, progress or attention")
	f.StringVarP(&opts.message, "message", "m", "", "notification text")
	f.StringVar(&opts.title, "title", "", "short title")
	f.StringVar(&opts.source, "source", "", "producer name")
	f.Uint32VarP(&opts.pane, "pane", "p", 0, "target pane id")
	f.IntVar(&opts.tab, "tab", 0, "target tab index")
	f.StringVar(&opts.priority, "priority", "", "low, normal, high or critical (default: by type)")
	f.Uint64Var(&opts.ttlMs, "ttl", 0, "queue lifetime in milliseconds (default: config)")
	f.StringVar(&opts.command, "command", "", "command that produced the event")
	f.IntVar(&opts.exitCode, "exit-code", 0, "exit code of the command")
	f.Uint64Var(&opts.duration, "duration", 0, "command duration in milliseconds")
	f.StringVar(&opts.spoolDir, "spool-dir", "", "spool directory (default: config)")
	f.BoolVar(&opts.dryRun, "dry-run", false, "print the event instead of writing it")
	return cmd
}

// wire builds the wire message, setting only the flags the user gave.
func (o *sendOptions) wire(cmd *cobra.Command) (bridge.Message, error) {
	f := cmd.Flags()
	m := bridge.Message{
		Type:    strings.ToLower(strings.TrimSpace(o.kind)),
		Title:   o.title,
		Source:  o.source,
		Command: o.command,
	}
	if m.Type != "" && notification.ParseKind(m.Type) == notification.KindInfo && !isInfoName(m.Type) {
		return m, fmt.Errorf("unknown type %q", o.kind)
	}
	if o.message != "" {
		msg := o.message
		m.Message = &msg
	}
	if o.priority != "" {
		if _, ok := notification.ParsePriority(o.priority); !ok {
			return m, fmt.Errorf("unknown priority %q", o.priority)
		}
		m.Priority = strings.ToLower(o.priority)
	}
	if f.Changed("pane") {
		pane := o.pane
		m.PaneID = &pane
	}
	if f.Changed("tab") {
		if o.tab < 0 {
			return m, fmt.Errorf("tab index must not be negative, got %d", o.tab)
		}
		tab := o.tab
		m.TabIndex = &tab
	}
	if f.Changed("ttl") {
		ttl := o.ttlMs
		m.TTLMs = &ttl
	}
	if f.Changed("exit-code") {
		code := o.exitCode
		m.ExitCode = &code
	}
	if f.Changed("duration") {
		d := o.duration
		m.DurationMs = &d
	}
	return m, nil
}

func isInfoName(s string) bool {
	return s == "info" || s == "information"
}

func runSend(cmd *cobra.Command, opts *sendOptions) error {
	p := printer.New(cmd.OutOrStdout(), cmd.ErrOrStderr())

	m, err := opts.wire(cmd)
	if err != nil {
		return p.Error(errmsg.Format(errmsg.OpSpoolWrite, err), "", []string{
			"Run 'paneflare send --help' for the accepted values.",
		})
	}
	payload, err := bridge.Encode(m)
	if err != nil {
		return p.Error(errmsg.Format(errmsg.OpSpoolWrite, err), "", nil)
	}

	if opts.dryRun {
		p.Raw(string(payload) + "\n")
		return nil
	}

	dir := opts.spoolDir
	if dir == "" {
		cfg, paths, err := loadConfig()
		if err != nil {
			return p.Error(errmsg.Format(errmsg.OpConfigLoad, err), "", []string{
				"Check the files: " + strings.Join(paths, ", "),
				"Pass --spool-dir to bypass the config.",
			})
		}
		dir = cfg.SpoolDir
	}

	path, err := spool.Write(dir, payload)
	if err != nil {
		return p.Error(errmsg.FormatWith(errmsg.OpSpoolWrite, dir, err), "", nil)
	}
	p.Detail("%s\n", path)
	return nil
}
