// Package notify forwards notifications to the desktop over D-Bus.
package notify

import "github.com/llehouerou/paneflare/internal/notification"

// Urgency represents notification priority levels per freedesktop spec.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// UrgencyFor maps a queue priority to a desktop urgency.
func UrgencyFor(p notification.Priority) Urgency {
	switch p {
	case notification.PriorityLow:
		return UrgencyLow
	case notification.PriorityCritical:
		return UrgencyCritical
	default:
		return UrgencyNormal
	}
}

// Message is one desktop notification.
type Message struct {
	Summary    string
	Body       string
	Icon       string // icon name or path, optional
	Timeout    int32  // ms, -1 = server default, 0 = never expire
	ReplacesID uint32 // 0 = new notification
	Urgency    Urgency
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a message and returns its ID.
	// Returns 0 and nil error if notifications are unavailable.
	Notify(m Message) (uint32, error)
	// Close withdraws a message by ID.
	Close(id uint32) error
}

// iconFor picks a freedesktop icon name for a kind.
func iconFor(k notification.Kind) string {
	switch k {
	case notification.KindSuccess:
		return "dialog-information"
	case notification.KindError:
		return "dialog-error"
	case notification.KindWarning, notification.KindAttention:
		return "dialog-warning"
	default:
		return "dialog-information"
	}
}

// MessageFor converts a notification into a desktop message.
func MessageFor(n notification.Notification) Message {
	summary := n.Title
	if summary == "" {
		summary = n.Kind.Icon() + " " + n.Kind.String()
	}
	return Message{
		Summary: summary,
		Body:    n.Message,
		Icon:    iconFor(n.Kind),
		Timeout: -1,
		Urgency: UrgencyFor(n.Priority),
	}
}
