package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/paneflare/internal/notification"
)

func openTestArchive(t *testing.T) *Archive {
	t.Helper()
	a, err := Open()
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func TestRecordAndRecent(t *testing.T) {
	a := openTestArchive(t)

	n := notification.Error("Tests failed",
		notification.ForPane(3),
		notification.WithTitle("npm"),
		notification.FromSource("shell"),
		notification.At(1000),
	)
	require.NoError(t, a.Record(NewEntry(n, OutcomeShown, 5000)))
	require.NoError(t, a.Record(NewEntry(notification.Info("later"), OutcomeDisplayOnly, 6000)))

	entries, err := a.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "later", entries[0].Message)
	assert.Equal(t, OutcomeDisplayOnly, entries[0].Outcome)
	assert.Empty(t, entries[0].Target)

	got := entries[1]
	assert.Equal(t, n.ID, got.NotificationID)
	assert.Equal(t, notification.KindError, got.Kind)
	assert.Equal(t, notification.PriorityCritical, got.Priority)
	assert.Equal(t, "npm", got.Title)
	assert.Equal(t, "shell", got.Source)
	assert.Equal(t, "pane:3", got.Target)
	assert.Equal(t, uint64(1000), got.CreatedAt)
	assert.Equal(t, int64(5000), got.RetiredAt)
	assert.Equal(t, 2*time.Second, got.Age(7000))
	assert.Equal(t, time.Duration(0), got.Age(1000))
}

func TestRecent_Limit(t *testing.T) {
	a := openTestArchive(t)
	for i := range 5 {
		require.NoError(t, a.Record(NewEntry(notification.Info("m"), OutcomeExpired, int64(i))))
	}

	entries, err := a.Recent(3)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, int64(4), entries[0].RetiredAt)
	assert.Equal(t, int64(2), entries[2].RetiredAt)
}

func TestCountByOutcome(t *testing.T) {
	a := openTestArchive(t)
	outcomes := []Outcome{OutcomeShown, OutcomeShown, OutcomeDropped, OutcomeSuperseded}
	for _, o := range outcomes {
		require.NoError(t, a.Record(NewEntry(notification.Warning("w"), o, 1)))
	}

	counts, err := a.CountByOutcome()
	require.NoError(t, err)
	assert.Equal(t, map[Outcome]int{
		OutcomeShown:      2,
		OutcomeDropped:    1,
		OutcomeSuperseded: 1,
	}, counts)

	total, err := a.Count()
	require.NoError(t, err)
	assert.Equal(t, 4, total)
}

func TestOpen_IsEmpty(t *testing.T) {
	first := openTestArchive(t)
	require.NoError(t, first.Record(NewEntry(notification.Info("x"), OutcomeShown, 1)))

	second := openTestArchive(t)
	total, err := second.Count()
	require.NoError(t, err)
	assert.Zero(t, total, "archives must not share state")
}

func TestRecord_PrunesOldest(t *testing.T) {
	a := openTestArchive(t)
	for i := range MaxEntries + 5 {
		require.NoError(t, a.Record(NewEntry(notification.Info("x"), OutcomeShown, int64(i))))
	}

	total, err := a.Count()
	require.NoError(t, err)
	assert.Equal(t, MaxEntries, total)

	oldest, err := a.Recent(MaxEntries)
	require.NoError(t, err)
	require.Len(t, oldest, MaxEntries)
	assert.Equal(t, int64(5), oldest[len(oldest)-1].RetiredAt)
}
