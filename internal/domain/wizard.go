package domain

import "time"

// WizardKind distinguishes the wizard sessions held by the portal
type WizardKind string

const (
	WizardKindBooking    WizardKind = "booking"
	WizardKindInspection WizardKind = "inspection"
)

// WizardRecord is the persisted envelope of one wizard session.
// State is the wizard's own JSON snapshot.
type WizardRecord struct {
	ID        string
	Kind      WizardKind
	OwnerID   string
	State     []byte
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
	ExpiresAt time.Time
}

// IsExpired returns true if the session outlived its TTL
func (r *WizardRecord) IsExpired(now time.Time) bool {
	return !r.ExpiresAt.IsZero() && !now.Before(r.ExpiresAt)
}
