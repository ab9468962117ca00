// Package visual holds the per-target presentation state machine.
package visual

import (
	"errors"
	"fmt"
)

// Phase is the presentation phase of a target.
type Phase uint8

const (
	Idle Phase = iota
	Pending
	Active
	Fading
	Error
)

// Phases lists every phase.
var Phases = []Phase{Idle, Pending, Active, Fading, Error}

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Active:
		return "active"
	case Fading:
		return "fading"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// CanTransition reports whether from may move to to. Staying in place is always legal.
func CanTransition(from, to Phase) bool {
	if from == to {
		return true
	}
	switch from {
	case Idle:
		return to == Pending || to == Active
	case Pending:
		return to == Active || to == Idle
	case Active:
		return to == Fading || to == Idle
	case Fading:
		return to == Idle || to == Active
	case Error:
		return to == Idle || to == Active
	default:
		return false
	}
}

// TransitionError is returned when a transition is refused.
type TransitionError struct {
	From Phase
	To   Phase
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %s to %s", e.From, e.To)
}

// IsTransitionError reports whether err is or wraps a *TransitionError.
func IsTransitionError(err error) bool {
	var e *TransitionError
	return errors.As(err, &e)
}
