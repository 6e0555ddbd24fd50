package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
)

// SlotsClient интерфейс для получения слотов с backend
type SlotsClient interface {
	GetAvailableSlots(ctx context.Context, stationID string, date time.Time, batteryModelID string) ([]domain.Slot, error)
}
