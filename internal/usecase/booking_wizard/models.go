package booking_wizard

import (
	"time"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	"github.com/m04kA/SMC-SwapPortal/internal/service/availability"
)

// OpenRequest открыть визард для станции
type OpenRequest struct {
	OwnerID   string
	StationID string
}

// Ref ссылка на сессию визарда владельца
type Ref struct {
	OwnerID  string
	WizardID string
}

// View снимок визарда для отображения
type View struct {
	ID          string
	StationID   string
	StationName string
	Step        Step

	Vehicles     []domain.Vehicle
	VehicleID    string
	Mode         domain.PaymentMode
	Subscription *domain.SubscriptionInfo
	Price        *float64
	PriceLoading bool

	Date         *time.Time
	Slots        []availability.Option
	SlotsLoading bool
	SlotKey      string

	PaymentMethod *domain.PaymentMethod

	CanNext    bool
	CanBack    bool
	CanConfirm bool

	Result      *domain.BookingResult
	RedirectURL string
	Error       string
}

func newView(id string, s *Session, now time.Time) *View {
	if s.Confirming && !now.Before(s.ConfirmDeadline) {
		released := *s
		released.ReleaseStaleConfirm(now)
		s = &released
	}
	v := &View{
		ID:            id,
		StationID:     s.StationID,
		StationName:   s.StationName,
		Step:          s.Step,
		Vehicles:      s.Vehicles,
		VehicleID:     s.VehicleID,
		Mode:          s.Mode,
		Price:         s.Price,
		PriceLoading:  s.PriceLoading,
		Date:          s.Date,
		SlotsLoading:  s.SlotsLoading,
		SlotKey:       s.SlotKey,
		PaymentMethod: s.PaymentMethod,
		CanNext:       s.CanNext(),
		CanBack:       s.CanBack(),
		CanConfirm:    s.CanConfirm(),
		Result:        s.Result,
		RedirectURL:   s.RedirectURL,
		Error:         s.Error,
	}
	if s.SubscriptionID != "" {
		for i := range s.Subscriptions {
			if s.Subscriptions[i].ID == s.SubscriptionID {
				sub := s.Subscriptions[i]
				v.Subscription = &sub
				break
			}
		}
	}
	if s.Date != nil && s.SlotsLoaded {
		v.Slots = availability.Annotate(s.Slots, *s.Date, now)
	}
	return v
}
