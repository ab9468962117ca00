// Package keymap defines key bindings and action dispatch for the terminal front end.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit          Action = "quit"
	ActionToggleHistory Action = "toggle_history"
	ActionClearAll      Action = "clear_all"
	ActionReloadConfig  Action = "reload_config"

	// Pane actions
	ActionFocusPane Action = "focus_pane" // 1-9, the digit selects the pane
	ActionNextPane  Action = "next_pane"
	ActionClosePane Action = "close_pane"
	ActionReopen    Action = "reopen_panes"

	// Sample notifications
	ActionInject          Action = "inject"           // focused pane, cycles kinds
	ActionInjectOther     Action = "inject_other"     // a random unfocused pane
	ActionInjectBroadcast Action = "inject_broadcast" // untargeted

	// History panel
	ActionHistoryUp   Action = "history_up"
	ActionHistoryDown Action = "history_down"
)
