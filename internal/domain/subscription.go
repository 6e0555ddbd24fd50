package domain

import "time"

// SubscriptionPlan is a plan descriptor managed by admins
type SubscriptionPlan struct {
	ID           string
	Name         string
	Description  string
	Price        float64
	DurationDays int
	SwapsLimit   *int // nil = unlimited
	IsActive     bool
	CreatedAt    time.Time
}

// SubscriptionInfo is a driver's subscription as reported by the backend
type SubscriptionInfo struct {
	ID                    string
	StartDate             time.Time
	EndDate               time.Time
	IsActive              bool
	IsBlocked             bool
	VehicleID             string
	CurrentMonthSwapCount int
	SwapsLimit            *int // nil = unlimited
	PlanID                string
	PlanName              string
}

// IsUsable returns true if the subscription is active, not blocked and has quota left
func (s *SubscriptionInfo) IsUsable() bool {
	if !s.IsActive || s.IsBlocked {
		return false
	}
	return s.SwapsLimit == nil || s.CurrentMonthSwapCount < *s.SwapsLimit
}

// IsUsableFor returns true if the subscription is usable and linked to the vehicle
func (s *SubscriptionInfo) IsUsableFor(vehicleID string) bool {
	return s.VehicleID == vehicleID && s.IsUsable()
}

// RemainingSwaps returns the swaps left this month, nil when unlimited
func (s *SubscriptionInfo) RemainingSwaps() *int {
	if s.SwapsLimit == nil {
		return nil
	}
	left := *s.SwapsLimit - s.CurrentMonthSwapCount
	if left < 0 {
		left = 0
	}
	return &left
}

// FindUsableSubscription returns the first subscription usable for the vehicle or nil
func FindUsableSubscription(subs []SubscriptionInfo, vehicleID string) *SubscriptionInfo {
	for i := range subs {
		if subs[i].IsUsableFor(vehicleID) {
			return &subs[i]
		}
	}
	return nil
}
