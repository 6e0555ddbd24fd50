package domain

import (
	"fmt"
	"time"
)

// RequestStatus values match the backend's numeric encoding
type RequestStatus int

const (
	RequestStatusPending   RequestStatus = 0
	RequestStatusApproved  RequestStatus = 1
	RequestStatusRejected  RequestStatus = 2
	RequestStatusCompleted RequestStatus = 3
)

// String implements fmt.Stringer
func (s RequestStatus) String() string {
	switch s {
	case RequestStatusPending:
		return "Pending"
	case RequestStatusApproved:
		return "Approved"
	case RequestStatusRejected:
		return "Rejected"
	case RequestStatusCompleted:
		return "Completed"
	default:
		return fmt.Sprintf("RequestStatus(%d)", int(s))
	}
}

// BatteryRequest is one admin -> staff line item (one battery model + quantity).
// The backend stores no batch identity.
type BatteryRequest struct {
	ID               string
	StationID        string
	StationName      string
	BatteryModelID   string
	BatteryModelName string
	Quantity         int
	Status           RequestStatus
	RequestedBy      string
	Note             string
	CreatedAt        time.Time
}

// StockRequest is one staff -> admin line item (one battery model + quantity)
type StockRequest struct {
	ID               string
	StationID        string
	StationName      string
	BatteryModelID   string
	BatteryModelName string
	Quantity         int
	Status           RequestStatus
	RequestedBy      string
	Reason           string
	CreatedAt        time.Time
}

// RestockLine is one model + quantity of a batch being submitted
type RestockLine struct {
	BatteryModelID string
	Quantity       int
}
