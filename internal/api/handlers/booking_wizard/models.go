package booking_wizard

import (
	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	"github.com/m04kA/SMC-SwapPortal/internal/service/availability"
	bookingWizard "github.com/m04kA/SMC-SwapPortal/internal/usecase/booking_wizard"
)

// OpenRequest HTTP request model
type OpenRequest struct {
	StationID string `json:"stationId"`
}

// SelectVehicleRequest HTTP request model
type SelectVehicleRequest struct {
	VehicleID string `json:"vehicleId"`
}

// SelectDateRequest HTTP request model
type SelectDateRequest struct {
	Date string `json:"date"` // "2026-10-15"
}

// SelectSlotRequest HTTP request model
type SelectSlotRequest struct {
	SlotKey string `json:"slotKey"` // "09:00-09:30"
}

// SelectPaymentMethodRequest HTTP request model
type SelectPaymentMethodRequest struct {
	Method string `json:"method"` // "VNPay" | "Cash"
}

// WizardResponse HTTP response model
type WizardResponse struct {
	ID            string                `json:"id"`
	StationID     string                `json:"stationId"`
	StationName   string                `json:"stationName"`
	Step          int                   `json:"step"`
	Vehicles      []VehicleResponse     `json:"vehicles"`
	VehicleID     string                `json:"vehicleId,omitempty"`
	Mode          string                `json:"mode,omitempty"`
	Subscription  *SubscriptionResponse `json:"subscription,omitempty"`
	Price         *float64              `json:"price,omitempty"`
	PriceLoading  bool                  `json:"priceLoading"`
	Date          *string               `json:"date,omitempty"`
	Slots         []SlotResponse        `json:"slots"`
	SlotsLoading  bool                  `json:"slotsLoading"`
	SlotKey       string                `json:"slotKey,omitempty"`
	PaymentMethod *string               `json:"paymentMethod,omitempty"`
	CanNext       bool                  `json:"canNext"`
	CanBack       bool                  `json:"canBack"`
	CanConfirm    bool                  `json:"canConfirm"`
	Result        *ResultResponse       `json:"result,omitempty"`
	RedirectURL   string                `json:"redirectUrl,omitempty"`
	Error         string                `json:"error,omitempty"`
}

// VehicleResponse автомобиль водителя
type VehicleResponse struct {
	ID             string `json:"id"`
	BatteryModelID string `json:"batteryModelId"`
	LicensePlate   string `json:"licensePlate"`
	Brand          string `json:"brand"`
	ModelName      string `json:"modelName"`
	PhotoURL       string `json:"photoUrl,omitempty"`
}

// SubscriptionResponse подписка, покрывающая замену
type SubscriptionResponse struct {
	ID             string `json:"id"`
	PlanName       string `json:"planName"`
	RemainingSwaps *int   `json:"remainingSwaps,omitempty"`
}

// SlotResponse слот с признаком доступности
type SlotResponse struct {
	Key                 string `json:"key"`
	StartTime           string `json:"startTime"`
	EndTime             string `json:"endTime"`
	TotalCapacity       int    `json:"totalCapacity"`
	CurrentReservations int    `json:"currentReservations"`
	RemainingCapacity   int    `json:"remainingCapacity"`
	Selectable          bool   `json:"selectable"`
}

// ResultResponse подтверждённое бронирование
type ResultResponse struct {
	ReservationID   string   `json:"reservationId"`
	ReservationCode string   `json:"reservationCode,omitempty"`
	StationName     string   `json:"stationName"`
	SlotDate        string   `json:"slotDate"`
	StartTime       string   `json:"startTime"`
	EndTime         string   `json:"endTime"`
	Amount          *float64 `json:"amount,omitempty"`
	HasQR           bool     `json:"hasQr"`
}

// FromView конвертирует снимок визарда в HTTP response
func FromView(v *bookingWizard.View) *WizardResponse {
	resp := &WizardResponse{
		ID:           v.ID,
		StationID:    v.StationID,
		StationName:  v.StationName,
		Step:         int(v.Step),
		Vehicles:     make([]VehicleResponse, 0, len(v.Vehicles)),
		VehicleID:    v.VehicleID,
		Mode:         string(v.Mode),
		Price:        v.Price,
		PriceLoading: v.PriceLoading,
		Slots:        FromOptions(v.Slots),
		SlotsLoading: v.SlotsLoading,
		SlotKey:      v.SlotKey,
		CanNext:      v.CanNext,
		CanBack:      v.CanBack,
		CanConfirm:   v.CanConfirm,
		RedirectURL:  v.RedirectURL,
		Error:        v.Error,
	}
	for _, vehicle := range v.Vehicles {
		resp.Vehicles = append(resp.Vehicles, VehicleResponse{
			ID:             vehicle.ID,
			BatteryModelID: vehicle.BatteryModelID,
			LicensePlate:   vehicle.LicensePlate,
			Brand:          vehicle.Brand,
			ModelName:      vehicle.ModelName,
			PhotoURL:       vehicle.PhotoURL,
		})
	}
	if v.Subscription != nil {
		resp.Subscription = &SubscriptionResponse{
			ID:             v.Subscription.ID,
			PlanName:       v.Subscription.PlanName,
			RemainingSwaps: v.Subscription.RemainingSwaps(),
		}
	}
	if v.Date != nil {
		date := v.Date.Format(domain.DateFormat)
		resp.Date = &date
	}
	if v.PaymentMethod != nil {
		method := v.PaymentMethod.String()
		resp.PaymentMethod = &method
	}
	if v.Result != nil {
		resp.Result = FromResult(v.Result)
	}
	return resp
}

// FromOptions конвертирует слоты в HTTP response
func FromOptions(options []availability.Option) []SlotResponse {
	slots := make([]SlotResponse, 0, len(options))
	for _, o := range options {
		slots = append(slots, SlotResponse{
			Key:                 o.Slot.Key(),
			StartTime:           o.Slot.StartTime.String(),
			EndTime:             o.Slot.EndTime.String(),
			TotalCapacity:       o.Slot.TotalCapacity,
			CurrentReservations: o.Slot.CurrentReservations,
			RemainingCapacity:   o.Slot.RemainingCapacity(),
			Selectable:          o.Selectable,
		})
	}
	return slots
}

// FromResult конвертирует результат бронирования в HTTP response
func FromResult(r *domain.BookingResult) *ResultResponse {
	return &ResultResponse{
		ReservationID:   r.ReservationID,
		ReservationCode: r.ReservationCode,
		StationName:     r.StationName,
		SlotDate:        r.SlotDate.Format(domain.DateFormat),
		StartTime:       r.StartTime.String(),
		EndTime:         r.EndTime.String(),
		Amount:          r.Amount,
		HasQR:           r.HasQR(),
	}
}
