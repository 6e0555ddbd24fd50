// Package availability provides slot lists for the booking wizards.
//
// Two variants share one interface: the server-authoritative list fetched from
// the backend and a locally generated list of fixed buckets. Both go through
// the same selectability rule of domain.Slot.
package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
)

// Query identifies one slot listing
type Query struct {
	StationID      string
	Date           time.Time
	BatteryModelID string
}

// Source returns the slots for a query
type Source interface {
	Slots(ctx context.Context, q Query) ([]domain.Slot, error)
}

// Option is a slot annotated with whether it can be picked right now
type Option struct {
	Slot       domain.Slot
	Selectable bool
}

// Annotate applies the past-time-today rule to every slot
func Annotate(slots []domain.Slot, date, now time.Time) []Option {
	options := make([]Option, 0, len(slots))
	for i := range slots {
		options = append(options, Option{
			Slot:       slots[i],
			Selectable: slots[i].IsSelectable(date, now),
		})
	}
	return options
}

// Find returns the slot with the given key or nil
func Find(slots []domain.Slot, key string) *domain.Slot {
	for i := range slots {
		if slots[i].Key() == key {
			return &slots[i]
		}
	}
	return nil
}

func validateQuery(q Query) error {
	if q.StationID == "" {
		return fmt.Errorf("%w: station is required", ErrInvalidQuery)
	}
	if q.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidQuery)
	}
	return nil
}
