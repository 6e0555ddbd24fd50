package domain

import (
	"time"

	"github.com/m04kA/SMC-SwapPortal/pkg/types"
)

// PaymentMode is the way a battery-swap reservation is paid for
type PaymentMode string

const (
	PaymentModeSubscriptionCovered PaymentMode = "subscription_covered"
	PaymentModePayPerSwap          PaymentMode = "pay_per_swap"
)

// BookingResult is the server-issued reservation confirmation.
// It is the terminal artifact of a successful booking and feeds the QR dialog.
type BookingResult struct {
	ReservationID   string
	ReservationCode string
	QRPayload       string
	StationID       string
	StationName     string
	SlotDate        time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	PaymentID       string
	Amount          *float64
}

// HasQR returns true if the result carries something to encode in a QR code
func (r *BookingResult) HasQR() bool {
	return r.QRPayload != "" || r.ReservationCode != ""
}

// QRContent returns the payload to encode, falling back to the reservation code
func (r *BookingResult) QRContent() string {
	if r.QRPayload != "" {
		return r.QRPayload
	}
	return r.ReservationCode
}

// SwapRecord is one completed battery swap from the driver's history
type SwapRecord struct {
	ID           string
	StationName  string
	VehiclePlate string
	OldBatteryID string
	NewBatteryID string
	PaymentType  PaymentType
	Amount       float64
	SwappedAt    time.Time
}
