// Package handler chains key handlers over a resolved action.
package handler

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/paneflare/internal/keymap"
)

// Result is the outcome of a key handler.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled is returned when a handler leaves the key to the next one.
var NotHandled = Result{}

// HandledNoCmd is for handlers that take the key without a command.
var HandledNoCmd = Result{Handled: true}

// Handled takes the key and returns cmd.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// Handler attempts to handle an action. key is the raw key string, for
// actions bound to several keys such as pane digits.
type Handler func(action keymap.Action, key string) Result

// Chain runs handlers in order until one handles the action.
// An empty action is never handled.
func Chain(action keymap.Action, key string, handlers ...Handler) (bool, tea.Cmd) {
	if action == "" {
		return false, nil
	}
	for _, h := range handlers {
		if r := h(action, key); r.Handled {
			return true, r.Cmd
		}
	}
	return false, nil
}
