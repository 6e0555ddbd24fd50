package booking_wizard

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	"github.com/m04kA/SMC-SwapPortal/internal/service/availability"
)

// Step of the booking wizard
type Step int

const (
	StepSelectVehicle Step = 1
	StepSelectDate    Step = 2
	StepSelectSlot    Step = 3
	StepConfirm       Step = 4
	StepResult        Step = 5
)

// String implements fmt.Stringer
func (s Step) String() string {
	switch s {
	case StepSelectVehicle:
		return "select_vehicle"
	case StepSelectDate:
		return "select_date"
	case StepSelectSlot:
		return "select_slot"
	case StepConfirm:
		return "confirm"
	case StepResult:
		return "result"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// PriceFetch is a pending price request. Generation identifies it.
type PriceFetch struct {
	Generation     uint64
	BatteryModelID string
}

// SlotsFetch is a pending slot listing request. Generation identifies it.
type SlotsFetch struct {
	Generation uint64
	Query      availability.Query
}

// ConfirmPlan is what a confirmation has to send upstream
type ConfirmPlan struct {
	Mode           domain.PaymentMode
	Method         *domain.PaymentMethod
	SubscriptionID string
	StationID      string
	VehicleID      string
	Date           time.Time
	Slot           domain.Slot
}

// ConfirmOutcome is the upstream answer to a confirmation
type ConfirmOutcome struct {
	Result      *domain.BookingResult
	RedirectURL string
	PaymentID   string
	Err         error
	Message     string
}

// Session is the complete state of one booking wizard.
// It holds no I/O; the use case performs fetches and feeds results back through Apply*.
type Session struct {
	StationID   string
	StationName string
	Step        Step

	Vehicles      []domain.Vehicle
	Subscriptions []domain.SubscriptionInfo

	VehicleID      string
	Mode           domain.PaymentMode
	SubscriptionID string

	Price           *float64
	PriceLoading    bool
	PriceGeneration uint64

	Date            *time.Time
	Slots           []domain.Slot
	SlotsLoaded     bool
	SlotsLoading    bool
	SlotsGeneration uint64

	SlotKey       string
	PaymentMethod *domain.PaymentMethod

	Confirming      bool
	ConfirmDeadline time.Time
	Result          *domain.BookingResult
	RedirectURL     string
	Error           string
}

// NewSession opens the wizard for a station. Everything downstream starts empty.
func NewSession(station domain.Station, vehicles []domain.Vehicle, subs []domain.SubscriptionInfo) *Session {
	s := &Session{}
	s.Open(station, vehicles, subs)
	return s
}

// Open resets the wizard to step 1 for station. Generations keep growing so
// responses to requests issued before the reset are discarded.
func (s *Session) Open(station domain.Station, vehicles []domain.Vehicle, subs []domain.SubscriptionInfo) {
	priceGen, slotsGen := s.PriceGeneration, s.SlotsGeneration

	*s = Session{
		StationID:       station.ID,
		StationName:     station.Name,
		Step:            StepSelectVehicle,
		Vehicles:        vehicles,
		Subscriptions:   subs,
		PriceGeneration: priceGen + 1,
		SlotsGeneration: slotsGen + 1,
	}
}

// Vehicle returns the selected vehicle or nil
func (s *Session) Vehicle() *domain.Vehicle {
	if s.VehicleID == "" {
		return nil
	}
	return domain.FindVehicle(s.Vehicles, s.VehicleID)
}

// SelectedSlot returns the selected slot or nil
func (s *Session) SelectedSlot() *domain.Slot {
	if s.SlotKey == "" {
		return nil
	}
	return availability.Find(s.Slots, s.SlotKey)
}

// SelectVehicle picks the vehicle and decides how the swap is paid for.
// A change of vehicle issues exactly one price fetch when no subscription covers it.
func (s *Session) SelectVehicle(vehicleID string) (*PriceFetch, *SlotsFetch, error) {
	if s.Step != StepSelectVehicle {
		return nil, nil, fmt.Errorf("%w: vehicle is chosen on step %d", ErrWrongStep, StepSelectVehicle)
	}
	vehicle := domain.FindVehicle(s.Vehicles, vehicleID)
	if vehicle == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrVehicleNotFound, vehicleID)
	}
	if s.VehicleID == vehicleID {
		return nil, nil, nil
	}

	s.VehicleID = vehicleID
	s.Error = ""
	s.PaymentMethod = nil
	s.Price = nil
	s.PriceGeneration++

	var priceFetch *PriceFetch
	if sub := domain.FindUsableSubscription(s.Subscriptions, vehicleID); sub != nil {
		s.Mode = domain.PaymentModeSubscriptionCovered
		s.SubscriptionID = sub.ID
		s.PriceLoading = false
	} else {
		s.Mode = domain.PaymentModePayPerSwap
		s.SubscriptionID = ""
		s.PriceLoading = true
		priceFetch = &PriceFetch{
			Generation:     s.PriceGeneration,
			BatteryModelID: vehicle.BatteryModelID,
		}
	}

	return priceFetch, s.invalidateSlots(), nil
}

// ApplyPrice stores a price response. It returns false when the response is stale.
func (s *Session) ApplyPrice(generation uint64, price float64, errMessage string) bool {
	if generation != s.PriceGeneration {
		return false
	}
	s.PriceLoading = false
	if errMessage != "" {
		s.Price = nil
		s.Error = errMessage
		return true
	}
	s.Price = &price
	return true
}

// SelectDate picks the booking date. Past dates are rejected.
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

// ApplySlots stores a slot listing. It returns false when the response is stale.
func (s *Session) ApplySlots(generation uint64, slots []domain.Slot, errMessage string) bool {
	if generation != s.SlotsGeneration {
		return false
	}
	s.SlotsLoading = false
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

// SelectSlot picks a slot from the current listing. Slots that are full or
// already started today cannot be picked.
func (s *Session) SelectSlot(key string, now time.Time) error {
	if s.Step != StepSelectSlot {
		return fmt.Errorf("%w: slot is chosen on step %d", ErrWrongStep, StepSelectSlot)
	}
	if !s.SlotsLoaded {
		return ErrSlotsNotLoaded
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

// SelectPaymentMethod picks VNPay or Cash for a pay-per-swap booking
func (s *Session) SelectPaymentMethod(method domain.PaymentMethod) error {
	if s.Step != StepConfirm {
		return fmt.Errorf("%w: payment method is chosen on step %d", ErrWrongStep, StepConfirm)
	}
	if s.Mode != domain.PaymentModePayPerSwap {
		return ErrPaymentMethodNotApplicable
	}
	if !method.IsValid() {
		return fmt.Errorf("%w: unknown payment method %d", ErrInvalidInput, int(method))
	}
	s.PaymentMethod = &method
	s.Error = ""
	return nil
}

// CanNext reports whether the current step's selection is made
func (s *Session) CanNext() bool {
	switch s.Step {
	case StepSelectVehicle:
		return s.Vehicle() != nil
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
	return s.Step > StepSelectVehicle && s.Step < StepResult && !s.Confirming && s.RedirectURL == ""
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

// BeginConfirm validates the selections and marks the confirmation in flight
// until deadline. After the deadline ReleaseStaleConfirm may hand control back.
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

// ReleaseStaleConfirm clears a confirmation whose outcome was never stored
// and keeps the wizard on step 4 for retry. It reports whether it did.
func (s *Session) ReleaseStaleConfirm(now time.Time) bool {
	if !s.Confirming || now.Before(s.ConfirmDeadline) {
		return false
	}
	s.Confirming = false
	s.ConfirmDeadline = time.Time{}
	s.fail("The previous confirmation did not finish. Please check your bookings before trying again.")
	return true
}

// ApplyConfirm stores the upstream answer. Any failure keeps the wizard on
// step 4 with its selections and sets a non-empty Error.
func (s *Session) ApplyConfirm(out ConfirmOutcome) {
	s.Confirming = false
	s.ConfirmDeadline = time.Time{}

	if out.Err != nil {
		s.fail(out.Message)
		return
	}

	switch {
	case s.Mode == domain.PaymentModeSubscriptionCovered:
		if out.Result == nil {
			s.fail("")
			return
		}
		s.complete(out.Result)

	case s.PaymentMethod != nil && *s.PaymentMethod == domain.PaymentMethodVNPay:
		// Дальше процесс ведёт платёжный шлюз: шага 5 нет
		if out.RedirectURL == "" {
			s.fail("Payment link was not received. Please try again or pay in cash.")
			return
		}
		s.RedirectURL = out.RedirectURL

	default:
		result := out.Result
		if result == nil {
			result = s.resultFromSelections(out.PaymentID)
		}
		s.complete(result)
	}
}

func (s *Session) checkConfirm() (*ConfirmPlan, error) {
	if s.Step != StepConfirm {
		return nil, fmt.Errorf("%w: confirm is available on step %d", ErrWrongStep, StepConfirm)
	}
	if s.Confirming {
		return nil, ErrConfirmInProgress
	}
	if s.RedirectURL != "" {
		return nil, fmt.Errorf("%w: payment is already redirected", ErrWrongStep)
	}
	vehicle := s.Vehicle()
	slot := s.SelectedSlot()
	if vehicle == nil || s.Date == nil || slot == nil {
		return nil, ErrSelectionRequired
	}

	plan := &ConfirmPlan{
		Mode:      s.Mode,
		StationID: s.StationID,
		VehicleID: vehicle.ID,
		Date:      *s.Date,
		Slot:      *slot,
	}

	switch s.Mode {
	case domain.PaymentModeSubscriptionCovered:
		plan.SubscriptionID = s.SubscriptionID
	case domain.PaymentModePayPerSwap:
		if s.PaymentMethod == nil {
			return nil, ErrPaymentMethodRequired
		}
		method := *s.PaymentMethod
		plan.Method = &method
	default:
		return nil, fmt.Errorf("%w: payment mode is not decided", ErrSelectionRequired)
	}
	return plan, nil
}

func (s *Session) invalidateSlots() *SlotsFetch {
	s.Slots = nil
	s.SlotsLoaded = false
	s.SlotKey = ""
	s.SlotsGeneration++

	vehicle := s.Vehicle()
	if vehicle == nil || s.Date == nil || s.StationID == "" {
		s.SlotsLoading = false
		return nil
	}
	s.SlotsLoading = true
	return &SlotsFetch{
		Generation: s.SlotsGeneration,
		Query: availability.Query{
			StationID:      s.StationID,
			Date:           *s.Date,
			BatteryModelID: vehicle.BatteryModelID,
		},
	}
}

func (s *Session) complete(result *domain.BookingResult) {
	s.Result = result
	s.Step = StepResult
	s.Error = ""
}

func (s *Session) fail(message string) {
	if message == "" {
		message = "Booking failed. Please try again."
	}
	s.Error = message
	s.Step = StepConfirm
}

func (s *Session) resultFromSelections(paymentID string) *domain.BookingResult {
	result := &domain.BookingResult{
		StationID:   s.StationID,
		StationName: s.StationName,
		PaymentID:   paymentID,
		Amount:      s.Price,
	}
	if s.Date != nil {
		result.SlotDate = *s.Date
	}
	if slot := s.SelectedSlot(); slot != nil {
		result.StartTime = slot.StartTime
		result.EndTime = slot.EndTime
	}
	return result
}
