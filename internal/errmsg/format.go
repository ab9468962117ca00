// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Configuration
	OpConfigLoad     Op = "load config"
	OpConfigValidate Op = "validate config"
	OpConfigReload   Op = "reload config"

	// Event intake
	OpEventDecode Op = "decode notification"
	OpSpoolWatch  Op = "watch spool directory"
	OpSpoolWrite  Op = "write notification"

	// Notification lifecycle
	OpFocus  Op = "focus target"
	OpCancel Op = "cancel notification"

	// Desktop forwarding
	OpDesktopConnect Op = "connect to desktop notifications"
	OpDesktopSend    Op = "send desktop notification"

	// Archive
	OpArchiveOpen Op = "open notification archive"
	OpArchiveRead Op = "read notification archive"

	// Initialization
	OpInitialize Op = "initialize application"
	OpLogOpen    Op = "open log file"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
