package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SwapPortal/pkg/types"
)

func TestSlot_IsSelectable(t *testing.T) {
	now := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)
	today := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)

	started := Slot{StartTime: types.NewTimeString(now.Add(-time.Minute)), EndTime: "10:29", IsAvailable: true}
	upcoming := Slot{StartTime: "10:30", EndTime: "11:00", IsAvailable: true}
	full := Slot{StartTime: "11:00", EndTime: "11:30", IsAvailable: false}

	assert.False(t, started.IsSelectable(today, now), "slot that started a minute ago today")
	assert.True(t, started.IsSelectable(tomorrow, now), "same slot on a future date")
	assert.True(t, upcoming.IsSelectable(today, now))
	assert.False(t, full.IsSelectable(tomorrow, now))
}

func TestSlot_RemainingCapacity(t *testing.T) {
	s := Slot{TotalCapacity: 3, CurrentReservations: 5}
	assert.Equal(t, 0, s.RemainingCapacity())

	s.CurrentReservations = 1
	assert.Equal(t, 2, s.RemainingCapacity())
}

func TestIsDateInPast(t *testing.T) {
	now := time.Date(2026, 10, 15, 0, 30, 0, 0, time.FixedZone("ICT", 7*3600))

	assert.True(t, IsDateInPast(time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, IsDateInPast(time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC), now))
}
