//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"court-booking/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func claim(t *testing.T, kind schedule.ClaimKind, day time.Time, start, end, label string) schedule.Claim {
	t.Helper()
	return schedule.Claim{
		Kind:   kind,
		ID:     uuid.New(),
		Window: mustWindow(t, day, start, end),
		Label:  label,
	}
}

func TestConflicts(t *testing.T) {
	day := date(2024, time.June, 1)
	existing := []schedule.Claim{
		claim(t, schedule.ClaimReservation, day, "10:00", "11:00", "BK1"),
		claim(t, schedule.ClaimBlocked, day, "12:00", "13:00", "private event"),
		claim(t, schedule.ClaimMaintenance, day, "15:00", "18:00", "repair"),
	}

	t.Run("free window has no conflicts", func(t *testing.T) {
		assert.Empty(t, schedule.Conflicts(mustWindow(t, day, "08:00", "09:00"), existing))
	})

	t.Run("touching boundary has no conflicts", func(t *testing.T) {
		assert.Empty(t, schedule.Conflicts(mustWindow(t, day, "11:00", "12:00"), existing))
		assert.Empty(t, schedule.Conflicts(mustWindow(t, day, "18:00", "19:00"), existing))
	})

	t.Run("the same predicate hits every claim kind", func(t *testing.T) {
		// One algorithm, three call sites: reservation, block and
		// maintenance claims must all be detected identically.
		for _, tc := range []struct {
			window string
			kind   schedule.ClaimKind
		}{
			{window: "10:00", kind: schedule.ClaimReservation},
			{window: "12:00", kind: schedule.ClaimBlocked},
			{window: "16:00", kind: schedule.ClaimMaintenance},
		} {
			start, _ := schedule.ParseTimeOfDay(tc.window)
			w, err := schedule.NewWindow(day, start, start+60)
			require.NoError(t, err)

			hits := schedule.Conflicts(w, existing)
			require.Len(t, hits, 1)
			assert.Equal(t, tc.kind, hits[0].Kind)
		}
	})

	t.Run("spanning window collects every overlapped claim", func(t *testing.T) {
		hits := schedule.Conflicts(mustWindow(t, day, "10:30", "16:00"), existing)
		require.Len(t, hits, 3)
	})
}

func TestConflictsAny(t *testing.T) {
	day := date(2024, time.June, 1)
	maintenance := claim(t, schedule.ClaimMaintenance, day, "14:00", "17:00", "resurfacing")
	existing := []schedule.Claim{maintenance}

	t.Run("claim overlapped by several candidates is reported once", func(t *testing.T) {
		candidates := []schedule.Window{
			mustWindow(t, day, "14:00", "15:00"),
			mustWindow(t, day, "15:00", "16:00"),
		}
		hits := schedule.ConflictsAny(candidates, existing)
		require.Len(t, hits, 1)
		assert.Equal(t, maintenance.ID, hits[0].ID)
	})

	t.Run("empty result for clear candidates", func(t *testing.T) {
		candidates := []schedule.Window{
			mustWindow(t, day, "10:00", "11:00"),
			mustWindow(t, day, "17:00", "18:00"),
		}
		assert.Empty(t, schedule.ConflictsAny(candidates, existing))
	})
}

func TestFilter(t *testing.T) {
	day := date(2024, time.June, 1)
	claims := []schedule.Claim{
		claim(t, schedule.ClaimReservation, day, "10:00", "11:00", "BK1"),
		claim(t, schedule.ClaimBlocked, day, "12:00", "13:00", "league"),
		claim(t, schedule.ClaimMaintenance, day, "15:00", "16:00", "cleaning"),
	}

	got := schedule.Filter(claims, schedule.ClaimReservation, schedule.ClaimMaintenance)
	require.Len(t, got, 2)
	assert.Equal(t, schedule.ClaimReservation, got[0].Kind)
	assert.Equal(t, schedule.ClaimMaintenance, got[1].Kind)
}
