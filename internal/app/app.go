// Package app is the terminal front end: a set of simulated panes driven by the coordinator.
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/paneflare/internal/bridge"
	"github.com/llehouerou/paneflare/internal/config"
	"github.com/llehouerou/paneflare/internal/coordinator"
	"github.com/llehouerou/paneflare/internal/history"
	"github.com/llehouerou/paneflare/internal/keymap"
	"github.com/llehouerou/paneflare/internal/logx"
	"github.com/llehouerou/paneflare/internal/render"
	"github.com/llehouerou/paneflare/internal/spool"
	"github.com/llehouerou/paneflare/internal/ui/styles"
)

// HistoryLimit is the number of archive rows shown in the history panel.
const HistoryLimit = 50

// Deps are the collaborators the model drives. Only Config and Coordinator are required.
type Deps struct {
	Config      *config.Config
	Coordinator *coordinator.Coordinator
	Archive     *history.Archive
	Log         logx.Logger

	Spool       <-chan spool.Event
	Reloads     <-chan config.Reload
	ConfigPaths []string // re-read on manual reload

	// Now defaults to time.Now.
	Now func() time.Time
}

// Model is the root application model.
type Model struct {
	cfg      *config.Config
	coord    *coordinator.Coordinator
	renderer *render.Renderer
	bridge   *bridge.Bridge
	archive  *history.Archive
	resolver *keymap.Resolver
	help     help.Model
	log      logx.Logger

	spoolCh     <-chan spool.Event
	reloads     <-chan config.Reload
	configPaths []string

	now   func() time.Time
	start time.Time

	Panes   []Pane
	Focused int // index into Panes

	ShowHistory   bool
	HistoryRows   []history.Entry
	HistoryOffset int

	samples   int
	otherNext int

	ErrorMsg string
	Width    int
	Height   int
}

// New creates the model and applies the config's theme.
func New(d Deps) Model {
	now := d.Now
	if now == nil {
		now = time.Now
	}
	m := Model{
		cfg:         d.Config,
		coord:       d.Coordinator,
		bridge:      bridge.New(),
		archive:     d.Archive,
		resolver:    keymap.NewResolver(keymap.All),
		help:        help.New(),
		log:         d.Log,
		spoolCh:     d.Spool,
		reloads:     d.Reloads,
		configPaths: d.ConfigPaths,
		now:         now,
		start:       now(),
		Panes:       newPanes(d.Config.Panes),
	}
	m.applyTheme()
	return m
}

func (m *Model) applyTheme() {
	styles.Set(styles.FromAdapter(m.coord.Adapter()))
	m.renderer = render.New(m.cfg.RenderOptions(), m.coord.Adapter())
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("paneflare"),
		TickCmd(m.cfg.TickInterval()),
		WaitSpool(m.spoolCh),
		WaitConfig(m.reloads),
	)
}

// nowMs is the coordinator clock: milliseconds since the model started.
func (m Model) nowMs() uint64 {
	d := m.now().Sub(m.start)
	if d < 0 {
		return 0
	}
	return uint64(d.Milliseconds())
}

// Bridge returns the event decoder, for health reporting.
func (m Model) Bridge() *bridge.Bridge { return m.bridge }

// Coordinator returns the coordinator the model drives.
func (m Model) Coordinator() *coordinator.Coordinator { return m.coord }

// FocusedPane returns the focused pane, if any pane exists.
func (m Model) FocusedPane() (Pane, bool) {
	if m.Focused < 0 || m.Focused >= len(m.Panes) {
		return Pane{}, false
	}
	return m.Panes[m.Focused], true
}
