package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/paneflare/internal/app/handler"
	"github.com/llehouerou/paneflare/internal/errmsg"
	"github.com/llehouerou/paneflare/internal/keymap"
	"github.com/llehouerou/paneflare/internal/notification"
)

// handleKeyMsg runs the handlers in order until one takes the key.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	_, cmd := handler.Chain(m.resolver.Resolve(key), key,
		m.handleGlobalKeys,
		m.handleHistoryKeys,
		m.handlePaneKeys,
	)
	return m, cmd
}

func (m *Model) handleGlobalKeys(action keymap.Action, _ string) handler.Result {
	switch action {
	case keymap.ActionQuit:
		return handler.Handled(tea.Quit)
	case keymap.ActionToggleHistory:
		m.ShowHistory = !m.ShowHistory
		m.HistoryOffset = 0
		if m.ShowHistory {
			m.refreshHistory()
		}
		return handler.HandledNoCmd
	case keymap.ActionClearAll:
		m.coord.ClearAll()
		m.ErrorMsg = ""
		return handler.HandledNoCmd
	case keymap.ActionReloadConfig:
		m.reloadConfig()
		return handler.HandledNoCmd
	}
	return handler.NotHandled
}

func (m *Model) handleHistoryKeys(action keymap.Action, _ string) handler.Result {
	if !m.ShowHistory {
		return handler.NotHandled
	}
	switch action {
	case keymap.ActionHistoryUp:
		if m.HistoryOffset > 0 {
			m.HistoryOffset--
		}
		return handler.HandledNoCmd
	case keymap.ActionHistoryDown:
		if m.HistoryOffset < len(m.HistoryRows)-1 {
			m.HistoryOffset++
		}
		return handler.HandledNoCmd
	}
	return handler.NotHandled
}

func (m *Model) handlePaneKeys(action keymap.Action, key string) handler.Result {
	switch action {
	case keymap.ActionFocusPane:
		m.focusPane(int(key[0] - '1'))
	case keymap.ActionNextPane:
		m.focusNext()
	case keymap.ActionClosePane:
		m.closeFocused()
	case keymap.ActionReopen:
		for i := range m.Panes {
			m.Panes[i].Open = true
		}
	case keymap.ActionInject:
		if p, ok := m.FocusedPane(); ok && p.Open {
			m.inject(notification.ForPane(p.ID))
		}
	case keymap.ActionInjectOther:
		if p, ok := m.otherPane(); ok {
			m.inject(notification.ForPane(p.ID))
		}
	case keymap.ActionInjectBroadcast:
		m.inject(nil)
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

// focusPane focuses the i-th pane, reopening it if closed, and acknowledges
// whatever it shows.
func (m *Model) focusPane(i int) {
	if i < 0 || i >= len(m.Panes) {
		return
	}
	m.Focused = i
	m.Panes[i].Open = true
	key := m.Panes[i].Key()
	if err := m.coord.Focus(key); err != nil {
		m.ErrorMsg = errmsg.FormatWith(errmsg.OpFocus, key.String(), err)
	}
}

func (m *Model) focusNext() {
	for step := 1; step <= len(m.Panes); step++ {
		i := (m.Focused + step) % len(m.Panes)
		if m.Panes[i].Open {
			m.focusPane(i)
			return
		}
	}
}

func (m *Model) closeFocused() {
	p, ok := m.FocusedPane()
	if !ok || !p.Open {
		return
	}
	m.coord.Close(p.Key())
	m.Panes[m.Focused].Open = false
	m.focusNext()
}

// otherPane picks open unfocused panes round-robin.
func (m *Model) otherPane() (Pane, bool) {
	n := len(m.Panes)
	for step := 0; step < n; step++ {
		i := (m.otherNext + step) % n
		if i != m.Focused && m.Panes[i].Open {
			m.otherNext = i + 1
			return m.Panes[i], true
		}
	}
	return Pane{}, false
}

func (m *Model) inject(target notification.Option) {
	if !m.cfg.IsEnabled() {
		return
	}
	m.coord.Submit(sampleFor(m.samples, target))
	m.samples++
}
