package inspection_wizard

import (
	"time"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	"github.com/m04kA/SMC-SwapPortal/internal/service/availability"
)

// OpenRequest открыть визард осмотра для жалобы
type OpenRequest struct {
	OwnerID     string
	ComplaintID string
}

// Ref ссылка на сессию визарда владельца
type Ref struct {
	OwnerID  string
	WizardID string
}

// View снимок визарда для отображения
type View struct {
	ID             string
	ComplaintID    string
	ComplaintTitle string
	Step           Step

	Stations  []domain.Station
	StationID string

	Date    *time.Time
	Slots   []availability.Option
	SlotKey string

	CanNext    bool
	CanBack    bool
	CanConfirm bool

	Scheduled bool
	Error     string
}

func newView(id string, s *Session, now time.Time) *View {
	if s.Confirming && !now.Before(s.ConfirmDeadline) {
		released := *s
		released.ReleaseStaleConfirm(now)
		s = &released
	}
	v := &View{
		ID:             id,
		ComplaintID:    s.ComplaintID,
		ComplaintTitle: s.ComplaintTitle,
		Step:           s.Step,
		Stations:       s.Stations,
		StationID:      s.StationID,
		Date:           s.Date,
		SlotKey:        s.SlotKey,
		CanNext:        s.CanNext(),
		CanBack:        s.CanBack(),
		CanConfirm:     s.CanConfirm(),
		Scheduled:      s.Scheduled,
		Error:          s.Error,
	}
	if s.Date != nil && s.SlotsLoaded {
		v.Slots = availability.Annotate(s.Slots, *s.Date, now)
	}
	return v
}
