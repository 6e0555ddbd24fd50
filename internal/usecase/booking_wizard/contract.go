package booking_wizard

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	"github.com/m04kA/SMC-SwapPortal/internal/integrations/swapapi"
	"github.com/m04kA/SMC-SwapPortal/internal/service/availability"
)

// BookingClient интерфейс клиента backend для бронирования замены
type BookingClient interface {
	ListStations(ctx context.Context) ([]domain.Station, error)
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
	ListMySubscriptions(ctx context.Context) ([]domain.SubscriptionInfo, error)
	GetSwapPrice(ctx context.Context, batteryModelID string) (float64, error)
	CreateReservation(ctx context.Context, req swapapi.ReservationRequest) (*domain.BookingResult, error)
	CreatePayPerSwapReservation(ctx context.Context, req swapapi.ReservationRequest) (*swapapi.PayPerSwapResult, error)
}

// SlotSource источник слотов (серверный для бронирования замены)
type SlotSource interface {
	Slots(ctx context.Context, q availability.Query) ([]domain.Slot, error)
}

// SessionManager хранилище состояний визарда
type SessionManager interface {
	Create(ctx context.Context, ownerID string, state *Session) (string, error)
	Load(ctx context.Context, ownerID, id string) (*Session, error)
	Mutate(ctx context.Context, ownerID, id string, fn func(state *Session) error) (*Session, error)
	Delete(ctx context.Context, ownerID, id string) error
}

// Metrics учёт переходов визарда
type Metrics interface {
	IncWizardTransition(wizard, transition, result string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production.
// "Сегодня" и уже начавшиеся слоты считаются в Location (часовой пояс станций).
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время в Location, если он задан
func (p *RealTimeProvider) Now() time.Time {
	if p.Location != nil {
		return time.Now().In(p.Location)
	}
	return time.Now()
}
