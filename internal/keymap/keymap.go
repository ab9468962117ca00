package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "panes", "history"
}

// All contains every key binding.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionToggleHistory, []string{"h"}, "Toggle history", "global"},
	{ActionClearAll, []string{"ctrl+n"}, "Clear all", "global"},
	{ActionReloadConfig, []string{"ctrl+r"}, "Reload config", "global"},

	// Panes
	{ActionFocusPane, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}, "Focus pane", "panes"},
	{ActionNextPane, []string{"tab"}, "Next pane", "panes"},
	{ActionClosePane, []string{"x"}, "Close pane", "panes"},
	{ActionReopen, []string{"o"}, "Reopen panes", "panes"},
	{ActionInject, []string{"n"}, "Notify focused", "panes"},
	{ActionInjectOther, []string{"m"}, "Notify other", "panes"},
	{ActionInjectBroadcast, []string{"b"}, "Broadcast", "panes"},

	// History panel
	{ActionHistoryUp, []string{"k", "up"}, "Scroll up", "history"},
	{ActionHistoryDown, []string{"j", "down"}, "Scroll down", "history"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// HelpKey is the short form of a binding's keys shown in help: "1-9" for the
// digit range, otherwise the keys joined by "/".
func (b Binding) HelpKey() string {
	if b.Action == ActionFocusPane && len(b.Keys) > 1 {
		return b.Keys[0] + "-" + b.Keys[len(b.Keys)-1]
	}
	return strings.Join(b.Keys, "/")
}

// KeyBindings converts bindings for the bubbles help component.
func KeyBindings(bindings []Binding) []key.Binding {
	out := make([]key.Binding, 0, len(bindings))
	for _, b := range bindings {
		out = append(out, key.NewBinding(
			key.WithKeys(b.Keys...),
			key.WithHelp(b.HelpKey(), strings.ToLower(b.Description)),
		))
	}
	return out
}
