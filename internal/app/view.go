package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/paneflare/internal/coordinator"
	"github.com/llehouerou/paneflare/internal/keymap"
	"github.com/llehouerou/paneflare/internal/render"
	"github.com/llehouerou/paneflare/internal/ui/layout"
	"github.com/llehouerou/paneflare/internal/ui/styles"
)

const defaultWidth = 80

// View renders the application UI.
func (m Model) View() string {
	width := m.Width
	if width <= 0 {
		width = defaultWidth
	}

	sections := []string{
		m.renderHeader(width),
		m.renderPanes(width),
	}
	if m.ShowHistory {
		sections = append(sections, m.renderHistory(width))
	}
	if bar := m.renderer.StatusBar(m.coord.Snapshot(), m.coord.Stats().Total, width); bar != "" {
		sections = append(sections, bar)
	}
	sections = append(sections, m.renderFooter(width))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader(width int) string {
	t := styles.T()
	ct := t.Adapter().Theme()
	title := styles.ApplyBoldGradient("paneflare", ct.Highlight, ct.Info)

	right := m.renderer.Summary(m.coord.Snapshot())
	if h := m.bridge.Health(); h.ErrorCount > 0 {
		right = t.S().Warning.Render(fmt.Sprintf("bridge %s (%d errors)", h.State, h.ErrorCount)) + "  " + right
	}
	return render.Row(title, right, width)
}

func (m Model) renderPanes(width int) string {
	if len(m.Panes) == 0 {
		return styles.T().S().Muted.Render("no panes")
	}

	cols := layout.Columns(width, len(m.Panes))
	boxWidth := layout.BoxWidth(width, cols)

	var rows []string
	for start := 0; start < len(m.Panes); start += cols {
		end := min(start+cols, len(m.Panes))
		boxes := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			boxes = append(boxes, m.renderPane(i, boxWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderPane(i, width int) string {
	p := m.Panes[i]
	s := styles.T().S()
	focused := i == m.Focused

	if !p.Open {
		body := s.Subtle.Render(render.Pad(p.Title+" (closed)", width))
		return styles.PanelStyle(false).Width(width).Height(layout.PaneContentHeight).Render(body)
	}

	v := m.coord.View(p.Key())

	title := p.Title
	if focused {
		title = s.Focused.Render(title)
	}
	if badge, ok := m.renderer.Badge(v); ok {
		title += " " + badge
	}

	lines := []string{
		title,
		m.renderer.Tooltip(v, width),
		s.Subtle.Render(paneStatus(v)),
	}
	body := strings.Join(lines, "\n")

	style := styles.PanelStyle(focused)
	if b, ok := m.renderer.Border(v); ok {
		style = styles.NotifyPanelStyle(b.Line.Border(), lipgloss.Color(b.Color))
	}
	return style.Width(width).Height(layout.PaneContentHeight).Render(body)
}

func paneStatus(v coordinator.TargetView) string {
	if v.Animating {
		return fmt.Sprintf("%s · %d%%", v.Phase, int(v.Progress*100))
	}
	return v.Phase.String()
}

func (m Model) renderHistory(width int) string {
	s := styles.T().S()
	var b strings.Builder
	b.WriteString(s.Title.Render("History"))
	b.WriteByte('\n')

	if len(m.HistoryRows) == 0 {
		b.WriteString(s.Muted.Render("nothing retired yet"))
		return styles.PanelStyle(false).Width(width - layout.BorderSize).Render(b.String())
	}

	cols := layout.Columns(width, len(m.Panes))
	shown := layout.HistoryRows(m.Height, layout.GridHeight(len(m.Panes), cols))
	now := m.nowMs()
	end := min(m.HistoryOffset+shown, len(m.HistoryRows))
	for i, e := range m.HistoryRows[m.HistoryOffset:end] {
		if i > 0 {
			b.WriteByte('\n')
		}
		ref := m.start.Add(time.Duration(now) * time.Millisecond)
		age := humanize.RelTime(ref.Add(-e.Age(now)), ref, "ago", "from now")
		target := e.Target
		if target == "" {
			target = "-"
		}
		row := fmt.Sprintf("%-14s %-12s %-9s %-7s %s", age, e.Outcome, e.Kind, target, e.Message)
		b.WriteString(render.Truncate(row, width-4))
	}
	return styles.PanelStyle(false).Width(width - layout.BorderSize).Render(b.String())
}

func (m Model) renderFooter(width int) string {
	if m.ErrorMsg != "" {
		return styles.T().S().Error.Render(render.Truncate(m.ErrorMsg, width))
	}
	bindings := keymap.ByContext("global")
	bindings = append(bindings, keymap.ByContext("panes")...)
	if m.ShowHistory {
		bindings = append(bindings, keymap.ByContext("history")...)
	}
	h := m.help
	h.Width = width
	return h.ShortHelpView(keymap.KeyBindings(bindings))
}
