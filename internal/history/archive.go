// Package history archives retired notifications in an in-memory SQLite database.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/llehouerou/paneflare/internal/notification"
)

// Outcome says how a notification left the engine.
type Outcome string

const (
	OutcomeShown       Outcome = "shown"
	OutcomeDisplayOnly Outcome = "display-only"
	OutcomeExpired     Outcome = "expired"
	OutcomeDropped     Outcome = "dropped"
	OutcomeRemoved     Outcome = "removed"
	OutcomeSuperseded  Outcome = "superseded"
)

// Outcomes lists every outcome.
var Outcomes = []Outcome{
	OutcomeShown, OutcomeDisplayOnly, OutcomeExpired,
	OutcomeDropped, OutcomeRemoved, OutcomeSuperseded,
}

// Entry is one archived notification.
type Entry struct {
	ID             int64
	NotificationID string
	Kind           notification.Kind
	Priority       notification.Priority
	Message        string
	Title          string
	Source         string
	Target         string // "pane:3", "tab:1" or ""
	Outcome        Outcome
	CreatedAt      uint64 // ms, as stamped by the queue
	RetiredAt      int64  // ms, on the coordinator's clock
}

// Age returns how long before now (coordinator ms) the entry was retired.
func (e Entry) Age(now uint64) time.Duration {
	d := int64(now) - e.RetiredAt
	if d < 0 {
		d = 0
	}
	return time.Duration(d) * time.Millisecond
}

// NewEntry builds an entry from a notification.
func NewEntry(n notification.Notification, outcome Outcome, retiredAtMs int64) Entry {
	e := Entry{
		NotificationID: n.ID,
		Kind:           n.Kind,
		Priority:       n.Priority,
		Message:        n.Message,
		Title:          n.Title,
		Source:         n.Source,
		Outcome:        outcome,
		CreatedAt:      n.CreatedAt,
		RetiredAt:      retiredAtMs,
	}
	if key, ok := n.Target.Key(); ok {
		e.Target = key.String()
	}
	return e
}

// Archive stores entries. Safe for concurrent use through database/sql.
type Archive struct {
	db *sql.DB
}

// Open creates an empty in-memory archive.
func Open() (*Archive, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	// every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init archive schema: %w", err)
	}
	return &Archive{db: db}, nil
}

// Close releases the database. Its contents are lost.
func (a *Archive) Close() error {
	return a.db.Close()
}

// MaxEntries bounds the archive. Older rows are pruned on insert.
const MaxEntries = 1000

// Record stores an entry, pruning the oldest rows beyond MaxEntries.
func (a *Archive) Record(e Entry) error {
	return withTx(a.db, func(tx *sql.Tx) error {
		res, err := tx.Exec(`
			INSERT INTO retired_notifications
				(notification_id, kind, priority, message, title, source, target, outcome, created_at, retired_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, e.NotificationID, e.Kind.String(), e.Priority.String(), e.Message,
			nullString(e.Title), nullString(e.Source), nullString(e.Target),
			string(e.Outcome), int64(e.CreatedAt), e.RetiredAt) //nolint:gosec // ms timestamps fit
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		if id <= MaxEntries {
			return nil
		}
		_, err = tx.Exec(`DELETE FROM retired_notifications WHERE id <= ?`, id-MaxEntries)
		return err
	})
}

// withTx runs fn in a transaction, committing only if fn succeeds.
func withTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// Recent returns up to limit entries, newest first.
func (a *Archive) Recent(limit int) ([]Entry, error) {
	rows, err := a.db.Query(`
		SELECT id, notification_id, kind, priority, message, title, source, target, outcome, created_at, retired_at
		FROM retired_notifications
		ORDER BY retired_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var kind, priority, outcome string
		var title, source, target sql.NullString
		var createdAt int64

		err := rows.Scan(&e.ID, &e.NotificationID, &kind, &priority, &e.Message,
			&title, &source, &target, &outcome, &createdAt, &e.RetiredAt)
		if err != nil {
			return nil, err
		}

		e.Kind = notification.ParseKind(kind)
		e.Priority, _ = notification.ParsePriority(priority)
		e.Outcome = Outcome(outcome)
		e.Title = title.String
		e.Source = source.String
		e.Target = target.String
		e.CreatedAt = uint64(createdAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CountByOutcome returns how many entries were archived per outcome.
// Outcomes with no entries are absent.
func (a *Archive) CountByOutcome() (map[Outcome]int, error) {
	rows, err := a.db.Query(`
		SELECT outcome, COUNT(*) FROM retired_notifications GROUP BY outcome
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[Outcome]int)
	for rows.Next() {
		var outcome string
		var n int
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, err
		}
		counts[Outcome(outcome)] = n
	}
	return counts, rows.Err()
}

// Count returns the number of archived entries.
func (a *Archive) Count() (int, error) {
	var n int
	err := a.db.QueryRow(`SELECT COUNT(*) FROM retired_notifications`).Scan(&n)
	return n, err
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
