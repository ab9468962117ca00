// Package bridge decodes inbound notification events from their JSON wire format.
package bridge

import (
	"encoding/json"

	"github.com/llehouerou/paneflare/internal/notification"
)

// ProtocolVersion is the wire format version written by Encode.
const ProtocolVersion = "1.0"

const (
	defaultMessage = "Waiting for input"
	legacySource   = "legacy"
)

// Message is the wire form of a notification. Every field is optional.
type Message struct {
	Version    string  `json:"version,omitempty"`
	Type       string  `json:"type,omitempty"`
	Message    *string `json:"message,omitempty"`
	Title      string  `json:"title,omitempty"`
	Source     string  `json:"source,omitempty"`
	PaneID     *uint32 `json:"pane_id,omitempty"`
	TabIndex   *int    `json:"tab_index,omitempty"`
	Priority   string  `json:"priority,omitempty"`
	Timestamp  *uint64 `json:"timestamp,omitempty"` // producer epoch ms, informational
	TTLMs      *uint64 `json:"ttl_ms,omitempty"`
	Command    string  `json:"command,omitempty"`
	ExitCode   *int    `json:"exit_code,omitempty"`
	DurationMs *uint64 `json:"duration_ms,omitempty"`
}

// Notification converts the message. A missing type means attention, a missing
// message gets a placeholder, and an unknown priority falls back to the kind's default.
// Timestamp is left out; the queue stamps on arrival.
func (m Message) Notification() notification.Notification {
	kind := notification.KindAttention
	if m.Type != "" {
		kind = notification.ParseKind(m.Type)
	}

	msg := defaultMessage
	if m.Message != nil {
		msg = *m.Message
	}

	opts := []notification.Option{
		notification.WithTitle(m.Title),
		notification.FromSource(m.Source),
	}
	if p, ok := notification.ParsePriority(m.Priority); ok {
		opts = append(opts, notification.WithPriority(p))
	}
	if m.PaneID != nil {
		opts = append(opts, notification.ForPane(*m.PaneID))
	}
	if m.TabIndex != nil {
		opts = append(opts, notification.ForTab(*m.TabIndex))
	}
	if m.TTLMs != nil {
		opts = append(opts, notification.WithTTL(*m.TTLMs))
	}
	if m.Command != "" {
		opts = append(opts, notification.WithCommand(m.Command))
	}
	if m.ExitCode != nil {
		opts = append(opts, notification.WithExitCode(*m.ExitCode))
	}
	if m.DurationMs != nil {
		opts = append(opts, notification.WithDuration(*m.DurationMs))
	}

	return notification.New(kind, msg, opts...)
}

// Encode serializes m, filling in the protocol version when absent.
func Encode(m Message) ([]byte, error) {
	if m.Version == "" {
		m.Version = ProtocolVersion
	}
	return json.Marshal(m)
}

// FromNotification builds the wire form of n.
func FromNotification(n notification.Notification) Message {
	msg := n.Message
	m := Message{
		Version:  ProtocolVersion,
		Type:     n.Kind.String(),
		Message:  &msg,
		Title:    n.Title,
		Source:   n.Source,
		Priority: n.Priority.String(),
		Command:  n.Metadata.Command,
		ExitCode: n.Metadata.ExitCode,
	}
	if n.Target.HasPane {
		pane := n.Target.Pane
		m.PaneID = &pane
	}
	if n.Target.HasTab {
		tab := n.Target.Tab
		m.TabIndex = &tab
	}
	if n.Stamped {
		ts := n.CreatedAt
		m.Timestamp = &ts
	}
	if n.TTLSet {
		ttl := n.TTL
		m.TTLMs = &ttl
	}
	if n.Metadata.DurationMs > 0 {
		d := n.Metadata.DurationMs
		m.DurationMs = &d
	}
	return m
}
