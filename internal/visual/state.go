package visual

import (
	"errors"

	"github.com/llehouerou/paneflare/internal/animation"
	"github.com/llehouerou/paneflare/internal/notification"
)

// State is the presentation of one target. It is reset in place and never deleted.
type State struct {
	Phase        Phase
	Kind         notification.Kind
	Priority     notification.Priority
	Message      string
	BorderColor  string // hex, "" when idle
	BadgeIcon    string
	Acknowledged bool
	ReceivedAt   uint64

	animation.Track
}

// NewState returns an idle state.
func NewState() *State {
	return &State{Track: animation.Track{Brightness: 1}}
}

// Transition moves to phase to when the move is legal.
func (s *State) Transition(to Phase) error {
	if !CanTransition(s.Phase, to) {
		return &TransitionError{From: s.Phase, To: to}
	}
	s.Phase = to
	return nil
}

// ErrNoKind is returned by SetNotification for KindNone, which only marks an empty state.
var ErrNoKind = errors.New("notification has no kind")

// SetNotification shows a notification. The state becomes Active and unacknowledged.
func (s *State) SetNotification(
	kind notification.Kind,
	priority notification.Priority,
	message, color, icon string,
	at uint64,
) error {
	if kind == notification.KindNone {
		return ErrNoKind
	}
	if err := s.Transition(Active); err != nil {
		return err
	}
	s.Kind = kind
	s.Priority = priority
	s.Message = message
	s.BorderColor = color
	s.BadgeIcon = icon
	s.ReceivedAt = at
	s.Acknowledged = false
	s.Brightness = 1
	return nil
}

// Acknowledge marks the notification as seen and starts fading it.
// It does nothing on an idle state or one that is already fading.
func (s *State) Acknowledge() error {
	switch {
	case s.Phase == Idle:
		return nil
	case s.Phase == Fading && s.Acknowledged:
		return nil
	}
	if s.Phase != Active {
		return &TransitionError{From: s.Phase, To: Fading}
	}
	if err := s.Transition(Fading); err != nil {
		return err
	}
	s.Acknowledged = true
	return nil
}

// Clear returns the state to Idle. Always legal.
func (s *State) Clear() {
	s.Phase = Idle
	s.Kind = notification.KindNone
	s.Priority = notification.PriorityLow
	s.Message = ""
	s.BorderColor = ""
	s.BadgeIcon = ""
	s.Acknowledged = false
	s.ReceivedAt = 0
	s.Track = animation.Track{Brightness: 1}
}

// HasNotification reports whether an unacknowledged notification is shown.
func (s *State) HasNotification() bool {
	return s.Kind != notification.KindNone && !s.Acknowledged
}

// IsIdle reports whether nothing is shown.
func (s *State) IsIdle() bool {
	return s.Phase == Idle
}
