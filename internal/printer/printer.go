// Package printer writes colored command-line output.
package printer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
	faint  = color.New(color.Faint)
)

// Printer writes to an output and an error stream.
type Printer struct {
	out io.Writer
	err io.Writer
}

// New returns a printer. Nil writers default to stdout and stderr.
func New(out, errOut io.Writer) *Printer {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &Printer{out: out, err: errOut}
}

// Success prints a message in green with a checkmark prefix.
func (p *Printer) Success(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "✓") {
		msg = "✓ " + msg
	}
	_, _ = green.Fprint(p.out, msg)
}

// Info prints a plain message.
func (p *Printer) Info(format string, a ...any) {
	_, _ = fmt.Fprintf(p.out, format, a...)
}

// Warning prints a message in yellow with a warning prefix.
func (p *Printer) Warning(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "⚠") {
		msg = "⚠  " + msg
	}
	_, _ = yellow.Fprint(p.out, msg)
}

// Step prints a step of a multi-step operation.
func (p *Printer) Step(format string, a ...any) {
	_, _ = cyan.Fprintf(p.out, "→ %s", fmt.Sprintf(format, a...))
}

// Detail prints secondary information, dimmed.
func (p *Printer) Detail(format string, a ...any) {
	_, _ = faint.Fprintf(p.out, format, a...)
}

// Raw writes s without formatting. Used for pre-rendered escape sequences.
func (p *Printer) Raw(s string) {
	_, _ = io.WriteString(p.out, s)
}

// Error prints a title, an explanation and suggestions to the error stream,
// and returns an error carrying only the title for cobra.
func (p *Printer) Error(title, explanation string, suggestions []string) error {
	_, _ = red.Fprintf(p.err, "%s\n\n", title)

	if explanation != "" {
		_, _ = fmt.Fprintf(p.err, "%s\n", explanation)
	}

	if len(suggestions) > 0 {
		_, _ = fmt.Fprintln(p.err)
		if len(suggestions) == 1 {
			_, _ = fmt.Fprintf(p.err, "%s\n", suggestions[0])
		} else {
			_, _ = fmt.Fprintf(p.err, "Either:\n")
			for i, s := range suggestions {
				_, _ = fmt.Fprintf(p.err, "  %d. %s\n", i+1, s)
			}
		}
	}

	return fmt.Errorf("%s", title)
}
