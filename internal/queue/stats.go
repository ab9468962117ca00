package queue

import (
	"fmt"

	"github.com/llehouerou/paneflare/internal/notification"
)

// Stats is a point-in-time view of the queue.
type Stats struct {
	Critical int
	High     int
	Normal   int
	Low      int
	Total    int
	Max      int

	// Lifetime counters.
	Processed uint64
	Expired   uint64
	Dropped   uint64
}

// Stats returns the current counts. It does not modify the queue.
func (q *Queue) Stats() Stats {
	return Stats{
		Critical:  q.CountByPriority(notification.PriorityCritical),
		High:      q.CountByPriority(notification.PriorityHigh),
		Normal:    q.CountByPriority(notification.PriorityNormal),
		Low:       q.CountByPriority(notification.PriorityLow),
		Total:     q.Len(),
		Max:       q.maxPerLevel * notification.LevelCount,
		Processed: q.processed,
		Expired:   q.expired,
		Dropped:   q.dropped,
	}
}

func (s Stats) String() string {
	return fmt.Sprintf("%d queued (C:%d H:%d N:%d L:%d)", s.Total, s.Critical, s.High, s.Normal, s.Low)
}
