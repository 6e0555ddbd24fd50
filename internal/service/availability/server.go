package availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
)

// ServerSource слоты, которые считает backend
type ServerSource struct {
	client SlotsClient
}

// NewServerSource создает источник слотов с backend
func NewServerSource(client SlotsClient) *ServerSource {
	return &ServerSource{client: client}
}

// Slots получает слоты для (станция, дата, модель батареи)
func (s *ServerSource) Slots(ctx context.Context, q Query) ([]domain.Slot, error) {
	if err := validateQuery(q); err != nil {
		return nil, err
	}
	if q.BatteryModelID == "" {
		return nil, fmt.Errorf("%w: battery model is required", ErrInvalidQuery)
	}

	slots, err := s.client.GetAvailableSlots(ctx, q.StationID, q.Date, q.BatteryModelID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSlotsUnavailable, err)
	}
	return slots, nil
}
