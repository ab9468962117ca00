package bridge

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/llehouerou/paneflare/internal/notification"
)

// MaxErrors is the number of consecutive failures that puts the bridge in StateError.
const MaxErrors = 5

// ConnState is the bridge's view of its producer.
type ConnState uint8

const (
	Disconnected ConnState = iota
	Connected
	StateError
)

func (s ConnState) String() string {
	switch s {
	case Connected:
		return "connected"
	case StateError:
		return "error"
	default:
		return "disconnected"
	}
}

// ParseError is returned for payloads that are neither a message object nor a legacy string.
type ParseError struct {
	Payload string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse notification: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IsParseError reports whether err is or wraps a *ParseError.
func IsParseError(err error) bool {
	var e *ParseError
	return errors.As(err, &e)
}

// Health summarizes the bridge.
type Health struct {
	State           ConnState
	ErrorCount      int
	LastTimestamp   uint64
	ProtocolVersion string
	LastError       string
}

// Connected reports whether the bridge is receiving valid events.
func (h Health) Connected() bool { return h.State == Connected }

// Bridge decodes payloads and tracks producer health. Not safe for concurrent use.
type Bridge struct {
	state         ConnState
	errorCount    int
	lastTimestamp uint64
	lastError     string
}

// New returns a disconnected bridge.
func New() *Bridge {
	return &Bridge{}
}

// Decode parses one payload: a message object, or a bare JSON string (legacy form).
func (b *Bridge) Decode(payload []byte) (notification.Notification, error) {
	trimmed := bytes.TrimSpace(payload)

	if len(trimmed) > 0 && trimmed[0] == '"' {
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return notification.Notification{}, b.fail(trimmed, err)
		}
		b.ok()
		return notification.Attention(text, notification.FromSource(legacySource)), nil
	}

	var m Message
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	if err := dec.Decode(&m); err != nil {
		return notification.Notification{}, b.fail(trimmed, err)
	}
	b.ok()
	// The producer stamps on its own epoch clock, which the queue cannot
	// compare against. It is reported through Health only; 0 means unset.
	if m.Timestamp != nil && *m.Timestamp != 0 {
		b.lastTimestamp = *m.Timestamp
	}
	return m.Notification(), nil
}

// DecodeString is Decode for string payloads.
func (b *Bridge) DecodeString(payload string) (notification.Notification, error) {
	return b.Decode([]byte(payload))
}

func (b *Bridge) ok() {
	b.state = Connected
	b.errorCount = 0
}

func (b *Bridge) fail(payload []byte, err error) error {
	b.OnError(err.Error())
	return &ParseError{Payload: string(payload), Err: err}
}

// OnConnected marks the producer as reachable.
func (b *Bridge) OnConnected() {
	b.state = Connected
	b.errorCount = 0
}

// OnError counts a failure. After MaxErrors in a row the bridge enters StateError.
func (b *Bridge) OnError(msg string) {
	b.errorCount++
	b.lastError = msg
	if b.errorCount >= MaxErrors {
		b.state = StateError
	}
}

// OnDisconnected marks the producer as gone.
func (b *Bridge) OnDisconnected() {
	b.state = Disconnected
}

// State returns the connection state.
func (b *Bridge) State() ConnState { return b.state }

// Health returns a snapshot of the bridge's state.
func (b *Bridge) Health() Health {
	return Health{
		State:           b.state,
		ErrorCount:      b.errorCount,
		LastTimestamp:   b.lastTimestamp,
		ProtocolVersion: ProtocolVersion,
		LastError:       b.lastError,
	}
}

// Reset clears the error count and leaves StateError.
func (b *Bridge) Reset() {
	b.errorCount = 0
	b.lastError = ""
	if b.state == StateError {
		b.state = Disconnected
	}
}
