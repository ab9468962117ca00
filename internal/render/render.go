// Package render formats coordinator snapshots for display: status bar,
// badges, borders, tooltips and summaries.
package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/paneflare/internal/color"
	"github.com/llehouerou/paneflare/internal/coordinator"
	"github.com/llehouerou/paneflare/internal/notification"
	"github.com/llehouerou/paneflare/internal/visual"
)

// MinStatusWidth is the narrowest status bar that is drawn at all.
const MinStatusWidth = 10

// Options selects which elements are drawn and how.
type Options struct {
	StatusBar bool
	Borders   bool
	Badges    bool
	Unicode   bool
	Patterns  bool
}

// DefaultOptions draws everything with unicode icons and accessibility patterns.
func DefaultOptions() Options {
	return Options{StatusBar: true, Borders: true, Badges: true, Unicode: true, Patterns: true}
}

// Renderer formats views. It holds no notification state.
type Renderer struct {
	opts    Options
	adapter *color.Adapter
}

// New creates a renderer drawing with the adapter's colors.
func New(opts Options, adapter *color.Adapter) *Renderer {
	return &Renderer{opts: opts, adapter: adapter}
}

// Options returns the renderer options.
func (r *Renderer) Options() Options { return r.opts }

// Icon returns the badge icon for kind, unicode or ASCII.
func (r *Renderer) Icon(kind notification.Kind) string {
	if r.opts.Unicode {
		return kind.Icon()
	}
	return asciiIcon(kind)
}

func asciiIcon(kind notification.Kind) string {
	switch kind {
	case notification.KindSuccess:
		return "+"
	case notification.KindError:
		return "X"
	case notification.KindWarning, notification.KindAttention:
		return "!"
	case notification.KindInfo:
		return "i"
	case notification.KindProgress:
		return "~"
	default:
		return ""
	}
}

// Pattern returns a shape suffix so kinds stay distinguishable without color.
func Pattern(kind notification.Kind) string {
	switch kind {
	case notification.KindSuccess:
		return "="
	case notification.KindError:
		return "##"
	case notification.KindWarning:
		return "~~"
	case notification.KindInfo:
		return ".."
	case notification.KindProgress:
		return "->"
	case notification.KindAttention:
		return "!!"
	default:
		return ""
	}
}

func (r *Renderer) bell() string {
	if r.opts.Unicode {
		return "🔔"
	}
	return "[N]"
}

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

// TargetLabel is the short label of a target: "3" for pane 3, "t2" for tab 2.
func TargetLabel(key notification.TargetKey) string {
	if key.Kind == notification.TargetTab {
		return "t" + strconv.FormatInt(key.ID, 10)
	}
	return strconv.FormatInt(key.ID, 10)
}

// StatusBar renders a single line no wider than width. It is empty when the
// status bar is disabled or width is below MinStatusWidth.
func (r *Renderer) StatusBar(views []coordinator.TargetView, queued, width int) string {
	if !r.opts.StatusBar || width < MinStatusWidth {
		return ""
	}

	var b strings.Builder
	b.WriteString(r.bell())
	b.WriteByte(' ')

	var chips []string
	for _, v := range views {
		if v.HasNotification() {
			chips = append(chips, r.chip(v))
		}
	}

	if len(chips) == 0 && queued == 0 {
		b.WriteString(fg(r.adapter.Dimmed()).Render("No notifications"))
		return Fit(b.String(), width)
	}

	for _, c := range chips {
		b.WriteString(c)
		b.WriteByte(' ')
	}
	if queued > 0 {
		b.WriteString("(+" + strconv.Itoa(queued) + " queued)")
	}
	return Fit(strings.TrimRight(b.String(), " "), width)
}

func (r *Renderer) chip(v coordinator.TargetView) string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(r.Icon(v.Kind))
	if r.opts.Patterns {
		b.WriteString(Pattern(v.Kind))
	}
	b.WriteByte(':')
	b.WriteString(TargetLabel(v.Key))
	if v.Animating {
		b.WriteByte('*')
	}
	b.WriteByte(']')
	return fg(r.chipColor(v)).Render(b.String())
}

func (r *Renderer) chipColor(v coordinator.TargetView) string {
	if v.Color != "" {
		return v.Color
	}
	return r.adapter.Foreground()
}

// Badge renders the colored icon shown next to a tab or pane title.
func (r *Renderer) Badge(v coordinator.TargetView) (string, bool) {
	if !r.opts.Badges || !v.HasNotification() {
		return "", false
	}
	c, ok := r.adapter.KindColor(v.Kind)
	if !ok {
		return "", false
	}
	return fg(c).Render(r.Icon(v.Kind)), true
}

// LineStyle is the stroke of a notification border.
type LineStyle uint8

const (
	LineSingle LineStyle = iota
	LineDouble
	LineDashed
	LineDotted
	LineBold
)

func (l LineStyle) String() string {
	switch l {
	case LineDouble:
		return "double"
	case LineDashed:
		return "dashed"
	case LineDotted:
		return "dotted"
	case LineBold:
		return "bold"
	default:
		return "single"
	}
}

// Border returns the lipgloss border drawing this line style.
func (l LineStyle) Border() lipgloss.Border {
	switch l {
	case LineDouble:
		return lipgloss.DoubleBorder()
	case LineBold:
		return lipgloss.ThickBorder()
	case LineDashed:
		b := lipgloss.NormalBorder()
		b.Top, b.Bottom, b.Left, b.Right = "┄", "┄", "┆", "┆"
		return b
	case LineDotted:
		b := lipgloss.NormalBorder()
		b.Top, b.Bottom, b.Left, b.Right = "┈", "┈", "┊", "┊"
		return b
	default:
		return lipgloss.NormalBorder()
	}
}

// BorderStyle is how a target's border is drawn.
type BorderStyle struct {
	Color string
	Line  LineStyle
}

// Border returns the border for v: double while a notification animates,
// single once it settles, dashed while it fades out. ok is false when no
// border should be drawn.
func (r *Renderer) Border(v coordinator.TargetView) (BorderStyle, bool) {
	if !r.opts.Borders || v.Color == "" {
		return BorderStyle{}, false
	}
	switch {
	case v.Phase == visual.Fading && v.Animating:
		return BorderStyle{Color: v.Color, Line: LineDashed}, true
	case !v.HasNotification():
		return BorderStyle{}, false
	case v.Animating:
		return BorderStyle{Color: v.Color, Line: LineDouble}, true
	default:
		return BorderStyle{Color: v.Color, Line: LineSingle}, true
	}
}

// Tooltip returns "icon message" cut to width cells, or "" without a message.
func (r *Renderer) Tooltip(v coordinator.TargetView, width int) string {
	if v.Message == "" {
		return ""
	}
	text := v.Message
	if icon := r.Icon(v.Kind); icon != "" {
		text = icon + " " + text
	}
	return Truncate(text, width)
}

var summaryOrder = []notification.Kind{
	notification.KindSuccess,
	notification.KindError,
	notification.KindWarning,
	notification.KindAttention,
	notification.KindInfo,
}

// Counts tallies unacknowledged notifications per kind.
func Counts(views []coordinator.TargetView) map[notification.Kind]int {
	counts := make(map[notification.Kind]int)
	for _, v := range views {
		if v.HasNotification() {
			counts[v.Kind]++
		}
	}
	return counts
}

// Summary renders per-kind counts such as "✔2 ✘1". Progress is not counted.
func (r *Renderer) Summary(views []coordinator.TargetView) string {
	counts := Counts(views)
	parts := make([]string, 0, len(summaryOrder))
	for _, kind := range summaryOrder {
		n := counts[kind]
		if n == 0 {
			continue
		}
		c, _ := r.adapter.KindColor(kind)
		parts = append(parts, fg(c).Render(r.Icon(kind)+strconv.Itoa(n)))
	}
	if len(parts) == 0 {
		return "No notifications"
	}
	return strings.Join(parts, " ")
}
