package visual

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/paneflare/internal/animation"
	"github.com/llehouerou/paneflare/internal/notification"
)

func TestCanTransition_Table(t *testing.T) {
	allowed := map[Phase][]Phase{
		Idle:    {Pending, Active},
		Pending: {Active, Idle},
		Active:  {Fading, Idle},
		Fading:  {Idle, Active},
		Error:   {Idle, Active},
	}

	for _, from := range Phases {
		for _, to := range Phases {
			want := from == to
			for _, ok := range allowed[from] {
				if ok == to {
					want = true
				}
			}
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%v, %v) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestTransition_RefusedLeavesStateUnchanged(t *testing.T) {
	s := NewState()
	err := s.Transition(Fading)

	require.Error(t, err)
	assert.True(t, IsTransitionError(err))
	assert.True(t, IsTransitionError(fmt.Errorf("wrapped: %w", err)))
	assert.Equal(t, Idle, s.Phase)
	assert.Equal(t, "invalid transition from idle to fading", err.Error())
}

func TestSetNotification(t *testing.T) {
	s := NewState()
	err := s.SetNotification(notification.KindError, notification.PriorityCritical, "boom", "#ff0000", "✘", 42)

	require.NoError(t, err)
	assert.Equal(t, Active, s.Phase)
	assert.Equal(t, "boom", s.Message)
	assert.Equal(t, "#ff0000", s.BorderColor)
	assert.Equal(t, uint64(42), s.ReceivedAt)
	assert.False(t, s.Acknowledged)
	assert.Equal(t, 1.0, s.Brightness)
	assert.True(t, s.HasNotification())
}

func TestSetNotification_RefusesKindNone(t *testing.T) {
	s := NewState()
	err := s.SetNotification(notification.KindNone, notification.PriorityHigh, "nothing", "#ffffff", "", 5)

	require.ErrorIs(t, err, ErrNoKind)
	assert.Equal(t, Idle, s.Phase)
	assert.Empty(t, s.Message)
	assert.False(t, s.HasNotification())
	assert.Equal(t, notification.KindNone, s.Kind)
}

func TestSetNotification_ReplacesFading(t *testing.T) {
	s := NewState()
	require.NoError(t, s.SetNotification(notification.KindInfo, notification.PriorityLow, "a", "#000000", "ℹ", 1))
	require.NoError(t, s.Acknowledge())

	require.NoError(t, s.SetNotification(notification.KindWarning, notification.PriorityHigh, "b", "#ffff00", "⚠", 2))
	assert.Equal(t, Active, s.Phase)
	assert.False(t, s.Acknowledged)
}

func TestAcknowledgeThenClear(t *testing.T) {
	s := NewState()
	require.NoError(t, s.SetNotification(notification.KindSuccess, notification.PriorityNormal, "done", "#00ff00", "✔", 5))
	s.Animating = true
	s.Brightness = 0.4

	require.NoError(t, s.Acknowledge())
	assert.Equal(t, Fading, s.Phase)
	assert.True(t, s.Acknowledged)
	assert.False(t, s.HasNotification())

	s.Clear()
	assert.Equal(t, Idle, s.Phase)
	assert.Equal(t, notification.KindNone, s.Kind)
	assert.Empty(t, s.Message)
	assert.Empty(t, s.BorderColor)
	assert.Empty(t, s.BadgeIcon)
	assert.False(t, s.Acknowledged)
	assert.False(t, s.Animating)
	assert.Equal(t, 1.0, s.Brightness)
}

func TestAcknowledge_NoopCases(t *testing.T) {
	s := NewState()
	require.NoError(t, s.Acknowledge(), "idle")
	assert.Equal(t, Idle, s.Phase)

	require.NoError(t, s.SetNotification(notification.KindInfo, notification.PriorityLow, "x", "", "", 0))
	require.NoError(t, s.Acknowledge())
	require.NoError(t, s.Acknowledge(), "already fading")
	assert.Equal(t, Fading, s.Phase)
}

func TestAcknowledge_Refused(t *testing.T) {
	for _, phase := range []Phase{Pending, Error} {
		s := &State{Phase: phase, Kind: notification.KindError}
		err := s.Acknowledge()
		assert.True(t, IsTransitionError(err), "%v", phase)
		assert.Equal(t, phase, s.Phase)
	}
}

func TestErrorPhaseRecovers(t *testing.T) {
	s := &State{Phase: Error, Track: animation.Track{Brightness: 1}}
	require.NoError(t, s.SetNotification(notification.KindError, notification.PriorityCritical, "again", "", "", 0))
	assert.Equal(t, Active, s.Phase)

	s = &State{Phase: Error}
	require.NoError(t, s.Transition(Idle))
}

func TestInvariants_AfterOperations(t *testing.T) {
	s := NewState()
	check := func(step string) {
		if s.Acknowledged && s.Phase == Active {
			t.Errorf("%s: acknowledged while active", step)
		}
		if s.Kind == notification.KindNone && s.Phase != Idle {
			t.Errorf("%s: no kind but phase %v", step, s.Phase)
		}
	}

	check("new")
	_ = s.SetNotification(notification.KindAttention, notification.PriorityCritical, "?", "", "", 0)
	check("set")
	_ = s.Acknowledge()
	check("ack")
	_ = s.Transition(Pending)
	check("refused")
	s.Clear()
	check("clear")
}

func TestHistory_Bounded(t *testing.T) {
	h := NewHistory(3)
	for i := range 5 {
		h.Record(Transition{Target: notification.PaneKey(1), From: Idle, To: Active, Tick: uint64(i)})
	}

	assert.Equal(t, 3, h.Len())
	recent := h.Recent(2)
	require.Len(t, recent, 2)
	assert.Equal(t, uint64(4), recent[0].Tick)
	assert.Equal(t, uint64(3), recent[1].Tick)
	assert.Len(t, h.Recent(10), 3)
	assert.Equal(t, uint64(2), h.Recent(-1)[2].Tick)

	h.Clear()
	assert.Equal(t, 0, h.Len())
	assert.Empty(t, h.Recent(5))
}

func TestNewHistory_DefaultSize(t *testing.T) {
	h := NewHistory(0)
	for i := range DefaultHistorySize + 10 {
		h.Record(Transition{Tick: uint64(i)})
	}
	assert.Equal(t, DefaultHistorySize, h.Len())
}
