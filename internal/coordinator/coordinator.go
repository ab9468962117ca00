// Package coordinator drives notifications from the queue onto per-target visual states.
package coordinator

import (
	"fmt"
	"sort"

	"github.com/llehouerou/paneflare/internal/animation"
	"github.com/llehouerou/paneflare/internal/color"
	"github.com/llehouerou/paneflare/internal/history"
	"github.com/llehouerou/paneflare/internal/logx"
	"github.com/llehouerou/paneflare/internal/notification"
	"github.com/llehouerou/paneflare/internal/queue"
	"github.com/llehouerou/paneflare/internal/visual"
)

// DefaultRecentLimit bounds the list of untargeted notifications.
const DefaultRecentLimit = 20

// Options configures the engine parts the coordinator owns.
type Options struct {
	Animation    animation.Config
	Theme        color.Theme
	Capability   color.Capability
	HighContrast bool

	QueueMaxPerLevel int
	DefaultTTL       uint64 // ms
	RecentLimit      int
	HistorySize      int
}

// DefaultOptions returns the defaults used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Animation:        animation.DefaultConfig(),
		Theme:            color.DefaultTheme,
		Capability:       color.TrueColor,
		QueueMaxPerLevel: queue.DefaultMaxPerLevel,
		DefaultTTL:       queue.DefaultTTL,
		RecentLimit:      DefaultRecentLimit,
		HistorySize:      visual.DefaultHistorySize,
	}
}

// Archive receives retired notifications.
type Archive interface {
	Record(e history.Entry) error
}

// Forwarder relays applied notifications elsewhere, typically the desktop.
type Forwarder interface {
	Forward(n notification.Notification) (bool, error)
}

// Option customizes a coordinator.
type Option func(*Coordinator)

// WithArchive records retired notifications in a.
func WithArchive(a Archive) Option {
	return func(c *Coordinator) { c.archive = a }
}

// WithForwarder forwards applied notifications through f.
func WithForwarder(f Forwarder) Option {
	return func(c *Coordinator) { c.forwarder = f }
}

// WithLogger sets the logger.
func WithLogger(l logx.Logger) Option {
	return func(c *Coordinator) { c.log = l }
}

// Coordinator owns the queue and the visual states. Not safe for concurrent use:
// callers serialize every method on one goroutine.
type Coordinator struct {
	opts    Options
	queue   *queue.Queue
	states  map[notification.TargetKey]*visual.State
	engine  *animation.Engine
	adapter *color.Adapter
	history *visual.History

	archive   Archive
	forwarder Forwarder
	log       logx.Logger

	tick   uint64
	now    uint64
	recent []notification.Notification
}

// New creates a coordinator with an empty queue and no states.
func New(opts Options, options ...Option) *Coordinator {
	opts = withDefaults(opts)
	c := &Coordinator{
		opts:    opts,
		queue:   queue.New(opts.QueueMaxPerLevel, opts.DefaultTTL),
		states:  make(map[notification.TargetKey]*visual.State),
		engine:  animation.NewEngine(opts.Animation),
		adapter: color.NewAdapter(opts.Theme, opts.Capability, opts.HighContrast),
		history: visual.NewHistory(opts.HistorySize),
		log:     logx.Nop(),
	}
	for _, o := range options {
		o(c)
	}
	return c
}

func withDefaults(opts Options) Options {
	if opts.QueueMaxPerLevel < 1 {
		opts.QueueMaxPerLevel = queue.DefaultMaxPerLevel
	}
	if opts.RecentLimit < 1 {
		opts.RecentLimit = DefaultRecentLimit
	}
	if opts.HistorySize < 1 {
		opts.HistorySize = visual.DefaultHistorySize
	}
	if opts.Theme.Name == "" {
		opts.Theme = color.DefaultTheme
	}
	return opts
}

// Reconfigure swaps the animation engine and color adapter. States and the queue are kept.
func (c *Coordinator) Reconfigure(opts Options) {
	opts = withDefaults(opts)
	c.opts = opts
	c.engine = animation.NewEngine(opts.Animation)
	c.adapter = color.NewAdapter(opts.Theme, opts.Capability, opts.HighContrast)
	if !opts.Animation.Enabled {
		for _, key := range c.keys() {
			s := c.states[key]
			c.engine.Stop(&s.Track)
			if s.Phase == visual.Fading {
				c.clear(key, s, "animation disabled")
			}
		}
	}
	c.log.Info("reconfigured",
		logx.String("theme", opts.Theme.Name),
		logx.String("capability", opts.Capability.String()),
		logx.Bool("animation", opts.Animation.Enabled),
	)
}

// Options returns the active options.
func (c *Coordinator) Options() Options { return c.opts }

// Adapter returns the active color adapter.
func (c *Coordinator) Adapter() *color.Adapter { return c.adapter }

// Engine returns the active animation engine.
func (c *Coordinator) Engine() *animation.Engine { return c.engine }

// Submit queues a notification. It becomes visible on the next Tick.
func (c *Coordinator) Submit(n notification.Notification) {
	evicted, ok := c.queue.Enqueue(n)
	if ok {
		c.retire(evicted, history.OutcomeDropped)
		c.log.Debug("queue level full, dropped oldest",
			logx.String("id", evicted.ID),
			logx.String("priority", evicted.Priority.String()),
		)
	}
}

// Tick advances logical time to nowMs and processes everything that is due.
// It returns whether anything visible changed.
func (c *Coordinator) Tick(nowMs uint64) bool {
	c.tick++
	c.now = nowMs
	c.queue.SetTime(nowMs)

	changed := c.updateAnimations()

	for _, n := range c.queue.CleanupExpired(nowMs) {
		c.retire(n, history.OutcomeExpired)
	}

	for {
		n, ok := c.queue.DequeueReady()
		if !ok {
			break
		}
		if c.apply(n) {
			changed = true
		}
	}
	return changed
}

func (c *Coordinator) updateAnimations() bool {
	changed := false
	for _, key := range c.keys() {
		s := c.states[key]
		if !s.Animating {
			continue
		}
		c.engine.Update(&s.Track, c.tick)
		changed = true
		if !s.Animating && s.Phase == visual.Fading {
			c.clear(key, s, "fade complete")
		}
	}
	return changed
}

func (c *Coordinator) apply(n notification.Notification) bool {
	key, ok := n.Target.Key()
	if !ok {
		c.recent = append(c.recent, n)
		if over := len(c.recent) - c.opts.RecentLimit; over > 0 {
			c.recent = append(c.recent[:0], c.recent[over:]...)
		}
		c.retire(n, history.OutcomeDisplayOnly)
		return true
	}

	s := c.state(key)
	if s.HasNotification() && s.Priority > n.Priority {
		c.retire(n, history.OutcomeSuperseded)
		return false
	}

	hex, _ := c.adapter.KindHex(n.Kind)
	from := s.Phase
	if err := s.SetNotification(n.Kind, n.Priority, n.Message, hex, n.Icon(), c.now); err != nil {
		c.log.Warn("rejected transition", logx.String("target", key.String()), logx.Err(err))
		return false
	}
	c.record(key, from, s.Phase, "notification "+n.Kind.String())
	c.engine.Start(&s.Track, c.tick, c.opts.Animation.Style)
	c.retire(n, history.OutcomeShown)
	c.forward(n)
	return true
}

func (c *Coordinator) forward(n notification.Notification) {
	if c.forwarder == nil {
		return
	}
	if _, err := c.forwarder.Forward(n); err != nil {
		c.log.Warn("desktop forward failed", logx.String("id", n.ID), logx.Err(err))
	}
}

// Focus handles a target gaining focus: queued entries for it are withdrawn and
// the shown notification is acknowledged and faded out.
func (c *Coordinator) Focus(key notification.TargetKey) error {
	for _, n := range c.queue.TakeForTarget(key) {
		c.retire(n, history.OutcomeRemoved)
	}

	s, ok := c.states[key]
	if !ok {
		return nil
	}
	from := s.Phase
	if err := s.Acknowledge(); err != nil {
		c.log.Warn("rejected transition", logx.String("target", key.String()), logx.Err(err))
		return fmt.Errorf("focus %s: %w", key, err)
	}
	if s.Phase == from {
		return nil
	}
	c.record(key, from, s.Phase, "focus")

	c.engine.Start(&s.Track, c.tick, animation.StyleFade)
	if !s.Animating {
		c.clear(key, s, "focus")
	}
	return nil
}

// Close handles a target going away: queued entries are withdrawn and the state cleared.
func (c *Coordinator) Close(key notification.TargetKey) {
	for _, n := range c.queue.TakeForTarget(key) {
		c.retire(n, history.OutcomeRemoved)
	}
	if s, ok := c.states[key]; ok {
		c.clear(key, s, "close")
	}
}

// ClearAll clears every state and empties the queue.
func (c *Coordinator) ClearAll() {
	for _, n := range c.queue.All() {
		c.retire(n, history.OutcomeRemoved)
	}
	c.queue.Clear()
	for _, key := range c.keys() {
		c.clear(key, c.states[key], "clear all")
	}
	c.recent = nil
}

func (c *Coordinator) clear(key notification.TargetKey, s *visual.State, reason string) {
	from := s.Phase
	s.Clear()
	if from != visual.Idle {
		c.record(key, from, visual.Idle, reason)
	}
}

func (c *Coordinator) state(key notification.TargetKey) *visual.State {
	s, ok := c.states[key]
	if !ok {
		s = visual.NewState()
		c.states[key] = s
	}
	return s
}

// State returns the state for key, if one was ever created.
func (c *Coordinator) State(key notification.TargetKey) (visual.State, bool) {
	s, ok := c.states[key]
	if !ok {
		return visual.State{}, false
	}
	return *s, true
}

func (c *Coordinator) keys() []notification.TargetKey {
	keys := make([]notification.TargetKey, 0, len(c.states))
	for k := range c.states {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}

func (c *Coordinator) record(key notification.TargetKey, from, to visual.Phase, reason string) {
	c.history.Record(visual.Transition{Target: key, From: from, To: to, Tick: c.tick, Reason: reason})
}

func (c *Coordinator) retire(n notification.Notification, outcome history.Outcome) {
	if c.archive == nil {
		return
	}
	if err := c.archive.Record(history.NewEntry(n, outcome, int64(c.now))); err != nil {
		c.log.Warn("archive failed", logx.String("id", n.ID), logx.Err(err))
	}
}

// Recent returns untargeted notifications, oldest first.
func (c *Coordinator) Recent() []notification.Notification {
	return append([]notification.Notification(nil), c.recent...)
}

// Stats returns the queue statistics.
func (c *Coordinator) Stats() queue.Stats { return c.queue.Stats() }

// History returns up to n recent transitions, newest first.
func (c *Coordinator) History(n int) []visual.Transition { return c.history.Recent(n) }

// CurrentTick returns the number of ticks processed.
func (c *Coordinator) CurrentTick() uint64 { return c.tick }

// Now returns the last logical time passed to Tick.
func (c *Coordinator) Now() uint64 { return c.now }
