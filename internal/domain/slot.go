package domain

import (
	"time"

	"github.com/m04kA/SMC-SwapPortal/pkg/types"
)

// Slot represents a bounded time window at a station with finite reservation capacity
type Slot struct {
	StartTime           types.TimeString
	EndTime             types.TimeString
	TotalCapacity       int
	CurrentReservations int
	IsAvailable         bool
}

// Key identifies the slot within one (station, date) listing
func (s *Slot) Key() string {
	return s.StartTime.String() + "-" + s.EndTime.String()
}

// RemainingCapacity returns the number of free reservations, never negative
func (s *Slot) RemainingCapacity() int {
	free := s.TotalCapacity - s.CurrentReservations
	if free < 0 {
		return 0
	}
	return free
}

// HasStarted returns true if bookingDate is today and the slot start is already in the past.
// Dates other than today never count as started.
func (s *Slot) HasStarted(bookingDate, now time.Time) bool {
	if !IsSameDay(bookingDate, now) {
		return false
	}
	return s.StartTime.On(now).Before(now)
}

// IsSelectable returns true if the slot can be picked: the server marked it available
// and, for today, it has not started yet
func (s *Slot) IsSelectable(bookingDate, now time.Time) bool {
	return s.IsAvailable && !s.HasStarted(bookingDate, now)
}

// IsSameDay returns true if both times carry the same calendar date
func IsSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsDateInPast returns true if the calendar date of date is earlier than today.
// Calendar dates are compared as written, without converting locations.
func IsDateInPast(date, now time.Time) bool {
	y, m, d := date.Date()
	dateOnly := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return dateOnly.Before(DateOnly(now))
}

// DateOnly truncates t to midnight in its own location
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
