// Package notification defines notification events and their kinds and priorities.
package notification

import (
	"strings"

	"github.com/google/uuid"
)

// Kind classifies what happened.
type Kind uint8

const (
	// KindNone means "no notification" and is only used by visual states.
	KindNone Kind = iota
	KindSuccess
	KindError
	KindWarning
	KindInfo
	KindProgress
	KindAttention
)

// Kinds lists every real notification kind.
var Kinds = []Kind{KindSuccess, KindError, KindWarning, KindInfo, KindProgress, KindAttention}

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	case KindWarning:
		return "warning"
	case KindInfo:
		return "info"
	case KindProgress:
		return "progress"
	case KindAttention:
		return "attention"
	default:
		return "none"
	}
}

// Icon returns the unicode badge for the kind, or "" for KindNone.
func (k Kind) Icon() string {
	switch k {
	case KindSuccess:
		return "✔"
	case KindError:
		return "✘"
	case KindWarning:
		return "⚠"
	case KindInfo:
		return "ℹ"
	case KindProgress:
		return "↻"
	case KindAttention:
		return "❗"
	default:
		return ""
	}
}

// IsUrgent reports whether the kind asks for the user's attention.
func (k Kind) IsUrgent() bool {
	return k == KindError || k == KindAttention
}

// ParseKind maps a kind name or one of its aliases to a Kind.
// Unknown names fall back to KindInfo.
func ParseKind(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "success", "ok", "done", "complete", "completed":
		return KindSuccess
	case "error", "fail", "failed", "failure":
		return KindError
	case "warning", "warn":
		return KindWarning
	case "info", "information":
		return KindInfo
	case "progress", "running", "working":
		return KindProgress
	case "attention", "waiting", "input", "input_needed":
		return KindAttention
	default:
		return KindInfo
	}
}

// Priority orders notifications in the queue. Higher values are served first.
type Priority uint8

const (
	PriorityLow Priority = iota
	PriorityNormal
	PriorityHigh
	PriorityCritical
)

// Priorities lists levels from highest to lowest, the order they are served in.
var Priorities = []Priority{PriorityCritical, PriorityHigh, PriorityNormal, PriorityLow}

// LevelCount is the number of priority levels.
const LevelCount = 4

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityNormal:
		return "normal"
	case PriorityHigh:
		return "high"
	case PriorityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ParsePriority parses a priority name. ok is false for unknown names.
func ParsePriority(s string) (Priority, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return PriorityLow, true
	case "normal":
		return PriorityNormal, true
	case "high":
		return PriorityHigh, true
	case "critical":
		return PriorityCritical, true
	default:
		return PriorityNormal, false
	}
}

// DefaultPriority returns the priority a kind gets unless overridden.
func DefaultPriority(k Kind) Priority {
	switch k {
	case KindInfo, KindProgress:
		return PriorityLow
	case KindSuccess:
		return PriorityNormal
	case KindWarning:
		return PriorityHigh
	case KindError, KindAttention:
		return PriorityCritical
	default:
		return PriorityNormal
	}
}

// Target addresses a pane and/or a tab. The zero value is untargeted.
type Target struct {
	Pane    uint32
	Tab     int
	HasPane bool
	HasTab  bool
}

// IsZero reports whether the target addresses nothing.
func (t Target) IsZero() bool {
	return !t.HasPane && !t.HasTab
}

// Metadata carries annotations about the triggering command. Opaque to the engine.
type Metadata struct {
	Command    string
	ExitCode   *int
	DurationMs uint64
}

// DefaultSource is used when no source is given.
const DefaultSource = "unknown"

// Notification is a single event. Treat it as a value: it is never modified after New.
type Notification struct {
	ID       string
	Kind     Kind
	Priority Priority
	Message  string
	Title    string
	Source   string
	Target   Target

	// CreatedAt is a caller-supplied logical timestamp in milliseconds.
	// Stamped is false when the caller left it to the queue.
	CreatedAt uint64
	Stamped   bool

	// TTL in milliseconds, 0 means never expires.
	// TTLSet is false when the caller left it to the queue default.
	TTL    uint64
	TTLSet bool

	Metadata Metadata
}

// Option customizes a notification at construction.
type Option func(*Notification)

// New creates a notification whose priority is derived from kind.
func New(kind Kind, message string, opts ...Option) Notification {
	n := Notification{
		ID:       "notif-" + uuid.NewString(),
		Kind:     kind,
		Priority: DefaultPriority(kind),
		Message:  message,
		Source:   DefaultSource,
	}
	for _, opt := range opts {
		opt(&n)
	}
	return n
}

// WithTitle sets the title.
func WithTitle(title string) Option {
	return func(n *Notification) { n.Title = title }
}

// ForPane targets a pane.
func ForPane(id uint32) Option {
	return func(n *Notification) {
		n.Target.Pane = id
		n.Target.HasPane = true
	}
}

// ForTab targets a tab.
func ForTab(index int) Option {
	return func(n *Notification) {
		n.Target.Tab = index
		n.Target.HasTab = true
	}
}

// FromSource sets the source.
func FromSource(source string) Option {
	return func(n *Notification) {
		if source != "" {
			n.Source = source
		}
	}
}

// WithTTL sets an explicit TTL in milliseconds. 0 means never expires.
func WithTTL(ms uint64) Option {
	return func(n *Notification) {
		n.TTL = ms
		n.TTLSet = true
	}
}

// At sets an explicit creation timestamp in milliseconds.
func At(ms uint64) Option {
	return func(n *Notification) {
		n.CreatedAt = ms
		n.Stamped = true
	}
}

// WithPriority overrides the kind's default priority.
func WithPriority(p Priority) Option {
	return func(n *Notification) { n.Priority = p }
}

// WithCommand records the command that triggered the notification.
func WithCommand(cmd string) Option {
	return func(n *Notification) { n.Metadata.Command = cmd }
}

// WithExitCode records the command's exit code.
func WithExitCode(code int) Option {
	return func(n *Notification) { n.Metadata.ExitCode = &code }
}

// WithDuration records how long the command ran, in milliseconds.
func WithDuration(ms uint64) Option {
	return func(n *Notification) { n.Metadata.DurationMs = ms }
}

// IsExpired reports whether the notification outlived its TTL at now.
func (n Notification) IsExpired(now uint64) bool {
	if n.TTL == 0 {
		return false
	}
	return now > n.CreatedAt+n.TTL
}

// Icon returns the badge icon for the notification's kind.
func (n Notification) Icon() string {
	return n.Kind.Icon()
}

// DisplayText returns "title: message", or just the message without a title.
func (n Notification) DisplayText() string {
	if n.Title != "" {
		return n.Title + ": " + n.Message
	}
	return n.Message
}

// Success, Error, Warning, Info, Progress and Attention are shorthands for New.

func Success(msg string, opts ...Option) Notification   { return New(KindSuccess, msg, opts...) }
func Error(msg string, opts ...Option) Notification     { return New(KindError, msg, opts...) }
func Warning(msg string, opts ...Option) Notification   { return New(KindWarning, msg, opts...) }
func Info(msg string, opts ...Option) Notification      { return New(KindInfo, msg, opts...) }
func Progress(msg string, opts ...Option) Notification  { return New(KindProgress, msg, opts...) }
func Attention(msg string, opts ...Option) Notification { return New(KindAttention, msg, opts...) }
