package coordinator

import (
	"github.com/llehouerou/paneflare/internal/animation"
	"github.com/llehouerou/paneflare/internal/color"
	"github.com/llehouerou/paneflare/internal/notification"
	"github.com/llehouerou/paneflare/internal/visual"
)

// TargetView is what a renderer needs to draw one target.
type TargetView struct {
	Key          notification.TargetKey
	Phase        visual.Phase
	Kind         notification.Kind
	Priority     notification.Priority
	Message      string
	Icon         string
	BaseColor    string // theme hex before brightness and adaptation
	Color        string // renderable color after brightness and adaptation
	Dimmed       string // renderable dimmed theme color
	Brightness   float64
	Progress     float64 // 0..1
	Animating    bool
	Acknowledged bool
	ReceivedAt   uint64
}

// HasNotification reports whether the view shows an unacknowledged notification.
func (v TargetView) HasNotification() bool {
	return v.Kind != notification.KindNone && !v.Acknowledged
}

// Snapshot returns every known target ordered by key.
func (c *Coordinator) Snapshot() []TargetView {
	keys := c.keys()
	views := make([]TargetView, 0, len(keys))
	for _, key := range keys {
		views = append(views, c.view(key, c.states[key]))
	}
	return views
}

// View returns the view of a single target. Unknown targets are idle.
func (c *Coordinator) View(key notification.TargetKey) TargetView {
	s, ok := c.states[key]
	if !ok {
		s = visual.NewState()
	}
	return c.view(key, s)
}

func (c *Coordinator) view(key notification.TargetKey, s *visual.State) TargetView {
	v := TargetView{
		Key:          key,
		Phase:        s.Phase,
		Kind:         s.Kind,
		Priority:     s.Priority,
		Message:      s.Message,
		Icon:         s.BadgeIcon,
		BaseColor:    s.BorderColor,
		Dimmed:       c.adapter.Dimmed(),
		Brightness:   s.Brightness,
		Progress:     s.Progress,
		Animating:    s.Animating,
		Acknowledged: s.Acknowledged,
		ReceivedAt:   s.ReceivedAt,
	}
	if s.BorderColor == "" {
		return v
	}

	base := color.FromHex(s.BorderColor)
	if s.Phase == visual.Fading && s.Animating {
		base = base.Interpolate(color.FromHex(c.opts.Theme.Dimmed), animation.EaseIn(s.Progress))
	}
	v.Color = c.adapter.Adapt(base.ApplyBrightness(s.Brightness).Hex())
	return v
}
