package domain

import (
	"fmt"
	"strings"
	"time"
)

// PaymentMethod values match the backend's numeric encoding
type PaymentMethod int

const (
	PaymentMethodVNPay PaymentMethod = 0
	PaymentMethodCash  PaymentMethod = 1
)

// String implements fmt.Stringer
func (m PaymentMethod) String() string {
	switch m {
	case PaymentMethodVNPay:
		return "VNPay"
	case PaymentMethodCash:
		return "Cash"
	default:
		return fmt.Sprintf("PaymentMethod(%d)", int(m))
	}
}

// IsValid returns true for known payment methods
func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodVNPay || m == PaymentMethodCash
}

// ParsePaymentMethod accepts "VNPay"/"Cash" in any case, or "0"/"1"
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vnpay", "0":
		return PaymentMethodVNPay, nil
	case "cash", "1":
		return PaymentMethodCash, nil
	default:
		return 0, fmt.Errorf("unknown payment method %q", s)
	}
}

// PaymentType is what the payment settles
type PaymentType string

const (
	PaymentTypeSubscription PaymentType = "Subscription"
	PaymentTypePayPerSwap   PaymentType = "PayPerSwap"
)

// PaymentStatus is the settlement state of a payment
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusPaid      PaymentStatus = "Paid"
	PaymentStatusCompleted PaymentStatus = "Completed"
)

// Payment represents a payment record
type Payment struct {
	ID            string
	Method        PaymentMethod
	Type          PaymentType
	Amount        float64
	Status        PaymentStatus
	PaymentURL    *string
	CustomerName  string
	CustomerEmail string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsSettled returns true if the payment no longer needs user action
func (p *Payment) IsSettled() bool {
	return p.Status == PaymentStatusPaid || p.Status == PaymentStatusCompleted
}

// CanSwitchMethod returns true if the payment is still pending and can be moved to another method
func (p *Payment) CanSwitchMethod() bool {
	return p.Status == PaymentStatusPending
}
