package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/llehouerou/paneflare/internal/color"
	"github.com/llehouerou/paneflare/internal/printer"
)

func newThemesCmd() *cobra.Command {
	var colors string
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List the built-in color themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			capability := color.DetectCapability()
			if colors != "" && colors != "auto" {
				c, ok := color.ParseCapability(colors)
				if !ok {
					return fmt.Errorf("unknown color mode %q", colors)
				}
				capability = c
			}
			printThemes(printer.New(cmd.OutOrStdout(), cmd.ErrOrStderr()), capability)
			return nil
		},
	}
	cmd.Flags().StringVar(&colors, "colors", "auto", "auto, truecolor, 256 or 16")
	return cmd
}

func printThemes(p *printer.Printer, capability color.Capability) {
	p.Detail("color mode: %s\n\n", capability)
	for _, name := range color.PresetNames() {
		theme, _ := color.Preset(name)
		a := color.NewAdapter(theme, capability, false)

		var b strings.Builder
		fmt.Fprintf(&b, "%-18s", name)
		for _, role := range theme.Roles() {
			b.WriteString(a.Swatch(role.Hex, "██"))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
		p.Raw(b.String())
	}
}
