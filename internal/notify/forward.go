package notify

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/llehouerou/paneflare/internal/notification"
)

// Forwarder sends notifications at or above a minimum priority to a Notifier,
// at most perMinute times per minute.
type Forwarder struct {
	notifier    Notifier
	minPriority notification.Priority
	limiter     *rate.Limiter

	sent      int
	throttled int
}

// NewForwarder creates a forwarder. A perMinute below 1 is treated as 1.
func NewForwarder(n Notifier, minPriority notification.Priority, perMinute int) *Forwarder {
	if perMinute < 1 {
		perMinute = 1
	}
	return &Forwarder{
		notifier:    n,
		minPriority: minPriority,
		limiter:     rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute),
	}
}

// Forward sends n when its priority qualifies and the rate allows.
// It reports whether a message was sent.
func (f *Forwarder) Forward(n notification.Notification) (bool, error) {
	if n.Priority < f.minPriority {
		return false, nil
	}
	if !f.limiter.Allow() {
		f.throttled++
		return false, nil
	}
	if _, err := f.notifier.Notify(MessageFor(n)); err != nil {
		return false, err
	}
	f.sent++
	return true, nil
}

// Sent returns how many messages were delivered.
func (f *Forwarder) Sent() int { return f.sent }

// Throttled returns how many qualifying notifications the rate limit held back.
func (f *Forwarder) Throttled() int { return f.throttled }
