package app

import (
	"strconv"

	"github.com/llehouerou/paneflare/internal/notification"
)

// Pane is a simulated terminal pane.
type Pane struct {
	ID    uint32
	Title string
	Open  bool
}

// Key returns the coordinator target of the pane.
func (p Pane) Key() notification.TargetKey {
	return notification.PaneKey(p.ID)
}

func newPanes(n int) []Pane {
	panes := make([]Pane, n)
	for i := range panes {
		panes[i] = newPane(i)
	}
	return panes
}

func newPane(i int) Pane {
	id := uint32(i + 1) //nolint:gosec // pane counts are tiny
	return Pane{ID: id, Title: "pane " + strconv.Itoa(i+1), Open: true}
}

// resizePanes keeps existing panes and adds or drops panes at the end.
func resizePanes(panes []Pane, n int) []Pane {
	if n <= len(panes) {
		return panes[:n]
	}
	for i := len(panes); i < n; i++ {
		panes = append(panes, newPane(i))
	}
	return panes
}

type sample struct {
	kind    notification.Kind
	title   string
	message string
	command string
	exit    int
}

var samples = []sample{
	{notification.KindSuccess, "make", "Build finished", "make build", 0},
	{notification.KindError, "go test", "3 tests failed", "go test ./...", 1},
	{notification.KindAttention, "", "Waiting for input", "", 0},
	{notification.KindWarning, "df", "Disk 91% full", "", 0},
	{notification.KindInfo, "deploy", "Deploy queued", "", 0},
	{notification.KindProgress, "indexer", "Indexing workspace", "", 0},
}

// sampleFor builds the i-th sample notification for target.
func sampleFor(i int, target notification.Option) notification.Notification {
	s := samples[i%len(samples)]
	opts := []notification.Option{
		notification.WithTitle(s.title),
		notification.FromSource("paneflare"),
	}
	if target != nil {
		opts = append(opts, target)
	}
	if s.command != "" {
		opts = append(opts, notification.WithCommand(s.command), notification.WithExitCode(s.exit))
	}
	return notification.New(s.kind, s.message, opts...)
}
