package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/paneflare/internal/config"
	"github.com/llehouerou/paneflare/internal/errmsg"
	"github.com/llehouerou/paneflare/internal/logx"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.coord.Tick(m.nowMs())
		if m.ShowHistory {
			m.refreshHistory()
		}
		return m, TickCmd(m.cfg.TickInterval())

	case SpoolMsg:
		m.handleSpool(msg)
		return m, WaitSpool(m.spoolCh)

	case SpoolClosedMsg:
		m.log.Debug("spool closed")
		return m, nil

	case ConfigReloadMsg:
		if msg.Err != nil {
			m.ErrorMsg = errmsg.Format(errmsg.OpConfigReload, msg.Err)
		} else {
			m.applyConfig(msg.Config)
		}
		return m, WaitConfig(m.reloads)

	case ConfigWatchClosedMsg:
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

func (m *Model) handleSpool(msg SpoolMsg) {
	n, err := m.bridge.Decode(msg.Payload)
	if err != nil {
		m.ErrorMsg = errmsg.FormatWith(errmsg.OpEventDecode, msg.Name, err)
		m.log.Warn("bad event", logx.String("file", msg.Name), logx.Err(err))
		return
	}
	if !m.cfg.IsEnabled() {
		return
	}
	m.coord.Submit(n)
}

// applyConfig swaps in a validated config.
func (m *Model) applyConfig(cfg *config.Config) {
	m.cfg = cfg
	m.coord.Reconfigure(cfg.CoordinatorOptions())
	m.applyTheme()

	m.Panes = resizePanes(m.Panes, cfg.Panes)
	if m.Focused >= len(m.Panes) {
		m.Focused = len(m.Panes) - 1
	}
	m.ErrorMsg = ""
}

func (m *Model) reloadConfig() {
	cfg, err := config.LoadFrom(m.configPaths...)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpConfigReload, err)
		return
	}
	m.applyConfig(cfg)
}

func (m *Model) refreshHistory() {
	if m.archive == nil {
		return
	}
	rows, err := m.archive.Recent(HistoryLimit)
	if err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpArchiveRead, err)
		return
	}
	m.HistoryRows = rows
	if m.HistoryOffset >= len(rows) {
		m.HistoryOffset = max(len(rows)-1, 0)
	}
}
