// Package queue holds pending notifications in four bounded FIFO levels, one per priority.
package queue

import (
	"github.com/llehouerou/paneflare/internal/notification"
)

// DefaultMaxPerLevel is the per-level capacity used when none is configured.
const DefaultMaxPerLevel = 100

// DefaultTTL is applied to notifications that carry no TTL of their own (5 minutes).
const DefaultTTL uint64 = 300_000

// Queue is a priority queue of notifications. Not safe for concurrent use.
type Queue struct {
	levels      [notification.LevelCount][]notification.Notification
	maxPerLevel int
	defaultTTL  uint64
	now         uint64

	processed uint64
	expired   uint64
	dropped   uint64
}

// New creates a queue. A maxPerLevel below 1 is raised to 1.
func New(maxPerLevel int, defaultTTL uint64) *Queue {
	if maxPerLevel < 1 {
		maxPerLevel = 1
	}
	return &Queue{
		maxPerLevel: maxPerLevel,
		defaultTTL:  defaultTTL,
	}
}

// SetTime sets the clock used to stamp notifications that arrive without a timestamp.
func (q *Queue) SetTime(now uint64) {
	q.now = now
}

// Now returns the queue clock.
func (q *Queue) Now() uint64 {
	return q.now
}

// MaxPerLevel returns the capacity of a single level.
func (q *Queue) MaxPerLevel() int {
	return q.maxPerLevel
}

// Enqueue adds a notification to the level for its priority.
// When the level is full its oldest entry is dropped and returned with ok true.
func (q *Queue) Enqueue(n notification.Notification) (evicted notification.Notification, ok bool) {
	if !n.TTLSet {
		n.TTL = q.defaultTTL
		n.TTLSet = true
	}
	if !n.Stamped {
		n.CreatedAt = q.now
		n.Stamped = true
	}

	lvl := level(n.Priority)
	if len(q.levels[lvl]) >= q.maxPerLevel {
		evicted = q.levels[lvl][0]
		q.levels[lvl] = q.levels[lvl][1:]
		q.dropped++
		ok = true
	}
	q.levels[lvl] = append(q.levels[lvl], n)
	return evicted, ok
}

// DequeueReady removes and returns the oldest entry of the highest non-empty level.
func (q *Queue) DequeueReady() (notification.Notification, bool) {
	for _, p := range notification.Priorities {
		lvl := level(p)
		if len(q.levels[lvl]) == 0 {
			continue
		}
		n := q.levels[lvl][0]
		q.levels[lvl][0] = notification.Notification{}
		q.levels[lvl] = q.levels[lvl][1:]
		q.processed++
		return n, true
	}
	return notification.Notification{}, false
}

// Peek returns the entry DequeueReady would return, without removing it.
func (q *Queue) Peek() (notification.Notification, bool) {
	for _, p := range notification.Priorities {
		if l := q.levels[level(p)]; len(l) > 0 {
			return l[0], true
		}
	}
	return notification.Notification{}, false
}

// RemoveForTarget removes every entry addressed to key and returns how many were removed.
func (q *Queue) RemoveForTarget(key notification.TargetKey) int {
	return len(q.removeWhere(func(n notification.Notification) bool {
		return n.Target.Matches(key)
	}))
}

// RemoveForPane removes every entry addressed to a pane.
func (q *Queue) RemoveForPane(id uint32) int {
	return q.RemoveForTarget(notification.PaneKey(id))
}

// RemoveForTab removes every entry addressed to a tab.
func (q *Queue) RemoveForTab(index int) int {
	return q.RemoveForTarget(notification.TabKey(index))
}

// TakeForTarget is RemoveForTarget returning the removed entries.
func (q *Queue) TakeForTarget(key notification.TargetKey) []notification.Notification {
	return q.removeWhere(func(n notification.Notification) bool {
		return n.Target.Matches(key)
	})
}

// CleanupExpired removes entries whose TTL elapsed at now and returns them.
// Calling it twice with the same now removes nothing the second time.
func (q *Queue) CleanupExpired(now uint64) []notification.Notification {
	removed := q.removeWhere(func(n notification.Notification) bool {
		return n.IsExpired(now)
	})
	q.expired += uint64(len(removed))
	return removed
}

func (q *Queue) removeWhere(match func(notification.Notification) bool) []notification.Notification {
	var removed []notification.Notification
	for i := range q.levels {
		kept := q.levels[i][:0]
		for _, n := range q.levels[i] {
			if match(n) {
				removed = append(removed, n)
				continue
			}
			kept = append(kept, n)
		}
		clear(q.levels[i][len(kept):])
		q.levels[i] = kept
	}
	return removed
}

// Len returns the number of queued entries.
func (q *Queue) Len() int {
	total := 0
	for i := range q.levels {
		total += len(q.levels[i])
	}
	return total
}

// IsEmpty reports whether nothing is queued.
func (q *Queue) IsEmpty() bool {
	return q.Len() == 0
}

// CountByPriority returns the number of entries at one level.
func (q *Queue) CountByPriority(p notification.Priority) int {
	return len(q.levels[level(p)])
}

// Clear drops every entry. Lifetime counters are kept.
func (q *Queue) Clear() {
	for i := range q.levels {
		q.levels[i] = nil
	}
}

// ForTarget returns the entries addressed to key in service order.
func (q *Queue) ForTarget(key notification.TargetKey) []notification.Notification {
	var out []notification.Notification
	for _, n := range q.All() {
		if n.Target.Matches(key) {
			out = append(out, n)
		}
	}
	return out
}

// HasForTarget reports whether any entry is addressed to key.
func (q *Queue) HasForTarget(key notification.TargetKey) bool {
	for i := range q.levels {
		for _, n := range q.levels[i] {
			if n.Target.Matches(key) {
				return true
			}
		}
	}
	return false
}

// HighestForTarget returns the entry for key that would be served first.
func (q *Queue) HighestForTarget(key notification.TargetKey) (notification.Notification, bool) {
	for _, p := range notification.Priorities {
		for _, n := range q.levels[level(p)] {
			if n.Target.Matches(key) {
				return n, true
			}
		}
	}
	return notification.Notification{}, false
}

// All returns a copy of every entry in service order.
func (q *Queue) All() []notification.Notification {
	out := make([]notification.Notification, 0, q.Len())
	for _, p := range notification.Priorities {
		out = append(out, q.levels[level(p)]...)
	}
	return out
}

func level(p notification.Priority) int {
	if int(p) >= notification.LevelCount {
		return notification.LevelCount - 1
	}
	return int(p)
}
