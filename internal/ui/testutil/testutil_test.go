package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no ansi codes",
			input: "hello world",
			want:  "hello world",
		},
		{
			name:  "with color codes",
			input: "\x1b[31mred\x1b[0m text",
			want:  "red text",
		},
		{
			name:  "true color",
			input: "\x1b[38;2;255;128;0morange\x1b[0m",
			want:  "orange",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripANSI(tt.input)
			if got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMaxLineWidth(t *testing.T) {
	output := "ab\n\x1b[1mabcdef\x1b[0m\n🔔 x"
	if got := MaxLineWidth(output); got != 6 {
		t.Errorf("MaxLineWidth = %d, want 6", got)
	}
	if got := MaxLineWidth(""); got != 0 {
		t.Errorf("MaxLineWidth(\"\") = %d, want 0", got)
	}
}

func TestFindLine(t *testing.T) {
	output := "first\n\x1b[32msecond line\x1b[0m\nthird"

	if got := FindLine(output, "second"); got != "second line" {
		t.Errorf("FindLine = %q, want %q", got, "second line")
	}
	if got := FindLine(output, "missing"); got != "" {
		t.Errorf("FindLine(missing) = %q, want empty", got)
	}
	if !ContainsLine(output, "third") {
		t.Error("ContainsLine(third) should be true")
	}
}

func TestKeys(t *testing.T) {
	if got := Keys("n").String(); got != "n" {
		t.Errorf("Keys(n) = %q", got)
	}
	if got := Key(tea.KeyCtrlN).String(); got != "ctrl+n" {
		t.Errorf("Key(ctrl+n) = %q", got)
	}
}
