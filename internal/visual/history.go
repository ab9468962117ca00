package visual

import "github.com/llehouerou/paneflare/internal/notification"

// DefaultHistorySize is the number of transitions kept by default.
const DefaultHistorySize = 100

// Transition is one recorded phase change.
type Transition struct {
	Target notification.TargetKey
	From   Phase
	To     Phase
	Tick   uint64
	Reason string
}

// History keeps the most recent transitions, oldest first.
type History struct {
	entries []Transition
	maxSize int
}

// NewHistory creates a history holding at most maxSize entries.
func NewHistory(maxSize int) *History {
	if maxSize < 1 {
		maxSize = DefaultHistorySize
	}
	return &History{
		entries: make([]Transition, 0, maxSize),
		maxSize: maxSize,
	}
}

// Record appends a transition, trimming the oldest when over limit.
func (h *History) Record(t Transition) {
	h.entries = append(h.entries, t)
	if len(h.entries) > h.maxSize {
		excess := len(h.entries) - h.maxSize
		h.entries = append(h.entries[:0], h.entries[excess:]...)
	}
}

// Recent returns up to n of the latest transitions, newest first.
func (h *History) Recent(n int) []Transition {
	if n > len(h.entries) || n < 0 {
		n = len(h.entries)
	}
	out := make([]Transition, 0, n)
	for i := len(h.entries) - 1; i >= len(h.entries)-n; i-- {
		out = append(out, h.entries[i])
	}
	return out
}

// Len returns the number of recorded transitions.
func (h *History) Len() int {
	return len(h.entries)
}

// Clear forgets every transition.
func (h *History) Clear() {
	h.entries = h.entries[:0]
}
