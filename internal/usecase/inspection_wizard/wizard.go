package inspection_wizard

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	"github.com/m04kA/SMC-SwapPortal/internal/service/availability"
)

// Step of the inspection wizard
type Step int

const (
	StepSelectStation Step = 1
	StepSelectDate    Step = 2
	StepSelectSlot    Step = 3
	StepConfirm       Step = 4
)

// String implements fmt.Stringer
func (s Step) String() string {
	switch s {
	case StepSelectStation:
		return "select_station"
	case StepSelectDate:
		return "select_date"
	case StepSelectSlot:
		return "select_slot"
	case StepConfirm:
		return "confirm"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// SlotsFetch is a pending slot listing request
type SlotsFetch struct {
	Generation uint64
	Query      availability.Query
}

// ConfirmPlan is what a confirmation has to send upstream
type ConfirmPlan struct {
	ComplaintID string
	StationID   string
	Date        time.Time
	Slot        domain.Slot
}

// Session is the state of one inspection wizard bound to a complaint
type Session struct {
	ComplaintID    string
	ComplaintTitle string
	Step           Step

	Stations  []domain.Station
	StationID string

	Date            *time.Time
	Slots           []domain.Slot
	SlotsLoaded     bool
	SlotsGeneration uint64
	SlotKey         string

	Confirming      bool
	ConfirmDeadline time.Time
	Scheduled       bool
	Error           string
}

// NewSession opens the wizard for a complaint on step 1
func NewSession(complaint domain.Complaint, stations []domain.Station) *Session {
	return &Session{
		ComplaintID:     complaint.ID,
		ComplaintTitle:  complaint.Title,
		Step:            StepSelectStation,
		Stations:        stations,
		SlotsGeneration: 1,
	}
}

// Station returns the selected station or nil
func (s *Session) Station() *domain.Station {
	if s.StationID == "" {
		return nil
	}
	return domain.FindStation(s.Stations, s.StationID)
}

// SelectedSlot returns the selected slot or nil
func (s *Session) SelectedSlot() *domain.Slot {
	if s.SlotKey == "" {
		return nil
	}
	return availability.Find(s.Slots, s.SlotKey)
}

// SelectStation picks the inspection station
func (s *Session) SelectStation(stationID string) (*SlotsFetch, error) {
	if s.Step != StepSelectStation {
		return nil, fmt.Errorf("%w: station is chosen on step %d", ErrWrongStep, StepSelectStation)
	}
	if domain.FindStation(s.Stations, stationID) == nil {
		return nil, fmt.Errorf("%w: %s", ErrStationNotFound, stationID)
	}
	if s.StationID == stationID {
		return nil, nil
	}
	s.StationID = stationID
	s.Error = ""
	return s.invalidateSlots(), nil
}

// SelectDate picks the inspection date. Past dates are rejected.
func (s *Session) SelectDate(date, now time.Time) (*SlotsFetch, error) {
	if s.Step != StepSelectDate {
		return nil, fmt.Errorf("%w: date is chosen on step %d", ErrWrongStep, StepSelectDate)
	}
	if domain.IsDateInPast(date, now) {
		return nil, fmt.Errorf("%w: %s", ErrDateInPast, date.Format(domain.DateFormat))
	}
	day := domain.DateOnly(date)
	if s.Date != nil && s.Date.Equal(day) {
		return nil, nil
	}
	s.Date = &day
	s.Error = ""
	return s.invalidateSlots(), nil
}

// ApplySlots stores a slot listing. It returns false when the listing is stale.
func (s *Session) ApplySlots(generation uint64, slots []domain.Slot, errMessage string) bool {
	if generation != s.SlotsGeneration {
		return false
	}
	if errMessage != "" {
		s.Slots = nil
		s.SlotsLoaded = false
		s.Error = errMessage
		return true
	}
	s.Slots = slots
	s.SlotsLoaded = true
	return true
}

// SelectSlot picks a slot. Slots already started today cannot be picked.
func (s *Session) SelectSlot(key string, now time.Time) error {
	if s.Step != StepSelectSlot {
		return fmt.Errorf("%w: slot is chosen on step %d", ErrWrongStep, StepSelectSlot)
	}
	slot := availability.Find(s.Slots, key)
	if slot == nil {
		return fmt.Errorf("%w: %s", ErrSlotNotFound, key)
	}
	if !slot.IsSelectable(*s.Date, now) {
		return fmt.Errorf("%w: %s", ErrSlotNotSelectable, key)
	}
	s.SlotKey = key
	s.Error = ""
	return nil
}

// CanNext reports whether the current step's selection is made
func (s *Session) CanNext() bool {
	switch s.Step {
	case StepSelectStation:
		return s.Station() != nil
	case StepSelectDate:
		return s.Date != nil
	case StepSelectSlot:
		return s.SelectedSlot() != nil
	default:
		return false
	}
}

// Next advances by one step
func (s *Session) Next() error {
	if s.Step >= StepConfirm {
		return fmt.Errorf("%w: step %d has no next step", ErrWrongStep, s.Step)
	}
	if !s.CanNext() {
		return fmt.Errorf("%w: step %s", ErrSelectionRequired, s.Step)
	}
	s.Step++
	s.Error = ""
	return nil
}

// CanBack reports whether Back is allowed
func (s *Session) CanBack() bool {
	return s.Step > StepSelectStation && !s.Confirming && !s.Scheduled
}

// Back returns by one step. Selections are kept.
func (s *Session) Back() error {
	if !s.CanBack() {
		return fmt.Errorf("%w: cannot go back from step %d", ErrWrongStep, s.Step)
	}
	s.Step--
	s.Error = ""
	return nil
}

// CanConfirm reports whether Confirm can be started
func (s *Session) CanConfirm() bool {
	_, err := s.checkConfirm()
	return err == nil
}

// BeginConfirm validates the selections and marks the confirmation in flight until deadline
func (s *Session) BeginConfirm(deadline time.Time) (*ConfirmPlan, error) {
	plan, err := s.checkConfirm()
	if err != nil {
		return nil, err
	}
	s.Confirming = true
	s.ConfirmDeadline = deadline
	s.Error = ""
	return plan, nil
}

// ReleaseStaleConfirm clears a confirmation whose outcome was never stored.
// The wizard stays on step 4 for retry.
func (s *Session) ReleaseStaleConfirm(now time.Time) bool {
	if !s.Confirming || now.Before(s.ConfirmDeadline) {
		return false
	}
	s.Confirming = false
	s.ConfirmDeadline = time.Time{}
	s.Error = "The previous request did not finish. Please check your complaint before trying again."
	return true
}

// ApplyConfirm stores the upstream answer. A failure keeps step 4 and the selections.
func (s *Session) ApplyConfirm(errMessage string) {
	s.Confirming = false
	s.ConfirmDeadline = time.Time{}
	if errMessage != "" {
		s.Error = errMessage
		return
	}
	s.Scheduled = true
	s.Error = ""
}

func (s *Session) checkConfirm() (*ConfirmPlan, error) {
	if s.Step != StepConfirm {
		return nil, fmt.Errorf("%w: confirm is available on step %d", ErrWrongStep, StepConfirm)
	}
	if s.Scheduled {
		return nil, ErrAlreadyScheduled
	}
	if s.Confirming {
		return nil, ErrConfirmInProgress
	}
	slot := s.SelectedSlot()
	if s.Station() == nil || s.Date == nil || slot == nil {
		return nil, ErrSelectionRequired
	}
	return &ConfirmPlan{
		ComplaintID: s.ComplaintID,
		StationID:   s.StationID,
		Date:        *s.Date,
		Slot:        *slot,
	}, nil
}

func (s *Session) invalidateSlots() *SlotsFetch {
	s.Slots = nil
	s.SlotsLoaded = false
	s.SlotKey = ""
	s.SlotsGeneration++

	if s.StationID == "" || s.Date == nil {
		return nil
	}
	return &SlotsFetch{
		Generation: s.SlotsGeneration,
		Query: availability.Query{
			StationID: s.StationID,
			Date:      *s.Date,
		},
	}
}
