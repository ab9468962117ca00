package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/paneflare/internal/config"
	"github.com/llehouerou/paneflare/internal/spool"
)

// TickMsg drives the coordinator clock.
type TickMsg time.Time

// SpoolMsg carries one event file consumed from the spool directory.
type SpoolMsg spool.Event

// SpoolClosedMsg is sent once the spool watcher stops.
type SpoolClosedMsg struct{}

// ConfigReloadMsg carries the result of a config file change.
type ConfigReloadMsg config.Reload

// ConfigWatchClosedMsg is sent once the config watcher stops.
type ConfigWatchClosedMsg struct{}

// TickCmd returns a command that sends TickMsg after interval.
func TickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// WaitSpool returns a command that waits for the next spool event.
func WaitSpool(ch <-chan spool.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return SpoolClosedMsg{}
		}
		return SpoolMsg(ev)
	}
}

// WaitConfig returns a command that waits for the next config reload.
func WaitConfig(ch <-chan config.Reload) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return ConfigWatchClosedMsg{}
		}
		return ConfigReloadMsg(r)
	}
}
