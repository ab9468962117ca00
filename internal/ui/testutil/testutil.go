// Package testutil provides helpers for testing rendered terminal output.
package testutil

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes escape sequences so rendered output can be compared as text.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// MeasureWidth returns the visual width of s, ignoring escape sequences.
func MeasureWidth(s string) int {
	return lipgloss.Width(StripANSI(s))
}

// MaxLineWidth returns the width of the widest line of output.
func MaxLineWidth(output string) int {
	widest := 0
	for line := range strings.SplitSeq(output, "\n") {
		widest = max(widest, MeasureWidth(line))
	}
	return widest
}

// FindLine returns the first line containing substr, stripped of escapes, or "".
func FindLine(output, substr string) string {
	for line := range strings.SplitSeq(StripANSI(output), "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// ContainsLine reports whether any line of output contains substr.
func ContainsLine(output, substr string) bool {
	return FindLine(output, substr) != ""
}

// Keys returns the key message for typing s.
func Keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// Key returns the key message for a special key such as tea.KeyCtrlN.
func Key(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}
