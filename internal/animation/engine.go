package animation

import "math"

const (
	// MinTicksPerCycle keeps very fast speeds visible.
	MinTicksPerCycle = 10

	DefaultSpeed  = 50
	DefaultCycles = 3
)

// Config controls the engine.
type Config struct {
	Enabled bool
	Style   Style
	Speed   int // 1-100, higher is faster
	Cycles  int
}

// DefaultConfig returns an enabled pulse at medium speed.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Style:   StylePulse,
		Speed:   DefaultSpeed,
		Cycles:  DefaultCycles,
	}
}

// Track is the animation part of a visual state.
type Track struct {
	Animating  bool
	StartTick  uint64
	Progress   float64 // 0..1 over the whole animation
	Style      Style
	Brightness float64
}

// Engine turns ticks into brightness. It holds no clock: the tick is always an input.
type Engine struct {
	cfg           Config
	ticksPerCycle uint64
	totalTicks    uint64
}

// NewEngine derives timing from cfg.
func NewEngine(cfg Config) *Engine {
	tpc := (101 - cfg.Speed) * 2
	if tpc < MinTicksPerCycle {
		tpc = MinTicksPerCycle
	}
	cycles := cfg.Cycles
	if cycles < 0 {
		cycles = 0
	}
	return &Engine{
		cfg:           cfg,
		ticksPerCycle: uint64(tpc),
		totalTicks:    uint64(tpc) * uint64(cycles),
	}
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Enabled reports whether animations run at all.
func (e *Engine) Enabled() bool { return e.cfg.Enabled }

// TicksPerCycle returns the length of one cycle.
func (e *Engine) TicksPerCycle() uint64 { return e.ticksPerCycle }

// TotalTicks returns the length of a whole animation.
func (e *Engine) TotalTicks() uint64 { return e.totalTicks }

// Start begins an animation at tick at full brightness. No-op when disabled.
// The style's curve applies from the first Update.
func (e *Engine) Start(t *Track, tick uint64, style Style) {
	if !e.cfg.Enabled {
		return
	}
	t.Animating = true
	t.StartTick = tick
	t.Progress = 0
	t.Style = style
	t.Brightness = 1
}

// Update advances t to tick. The animation ends once its total length elapsed.
func (e *Engine) Update(t *Track, tick uint64) {
	if !e.cfg.Enabled || !t.Animating {
		return
	}
	elapsed := elapsedSince(t.StartTick, tick)
	if elapsed >= e.totalTicks {
		t.Animating = false
		t.Progress = 0
		t.Brightness = 1
		return
	}
	t.Progress = clamp01(float64(elapsed) / float64(e.totalTicks))
	t.Brightness = e.brightness(elapsed, t.Style)
}

// BrightnessAt returns the brightness t would have at tick without changing it.
func (e *Engine) BrightnessAt(t Track, tick uint64) float64 {
	if !e.cfg.Enabled || !t.Animating {
		return 1
	}
	return e.brightness(elapsedSince(t.StartTick, tick), t.Style)
}

// ShouldContinue reports whether t is still running at tick.
func (e *Engine) ShouldContinue(t Track, tick uint64) bool {
	if !e.cfg.Enabled || !t.Animating {
		return false
	}
	return elapsedSince(t.StartTick, tick) < e.totalTicks
}

// Progress returns the completion of t at tick as a percentage.
// A track that is not animating is complete.
func (e *Engine) Progress(t Track, tick uint64) float64 {
	if !t.Animating || e.totalTicks == 0 {
		return 100
	}
	return clamp01(float64(elapsedSince(t.StartTick, tick))/float64(e.totalTicks)) * 100
}

// Reset rewinds t to tick at full brightness. Animating and Style are kept.
func (e *Engine) Reset(t *Track, tick uint64) {
	t.StartTick = tick
	t.Progress = 0
	t.Brightness = 1
}

// Stop halts t. Always legal.
func (e *Engine) Stop(t *Track) {
	t.Animating = false
	t.Progress = 0
	t.Brightness = 1
}

func (e *Engine) brightness(elapsed uint64, style Style) float64 {
	p := float64(elapsed%e.ticksPerCycle) / float64(e.ticksPerCycle)

	switch style {
	case StylePulse:
		return 0.5 + 0.5*math.Sin(2*math.Pi*p)
	case StyleFlash:
		if p >= 0.3 && p < 0.5 {
			return 0.3
		}
		return 1
	case StyleFade:
		if e.totalTicks == 0 {
			return 0
		}
		return clamp01(1 - float64(elapsed)/float64(e.totalTicks))
	case StyleBreathe:
		return 0.4 + 0.6*math.Sin(math.Pi*p)
	default:
		return 1
	}
}

func elapsedSince(start, tick uint64) uint64 {
	if tick < start {
		return 0
	}
	return tick - start
}
