package domain

import "time"

// DateFormat is the calendar date layout used on the wire and in query strings
const DateFormat = "2006-01-02" // YYYY-MM-DD

// Grouping windows for reconstructing restock batches from flat request rows
const (
	BatteryRequestGroupingWindow = 3000 * time.Millisecond // admin -> staff
	StockRequestGroupingWindow   = 5000 * time.Millisecond // staff -> admin
)

// Inspection slots are generated locally, not fetched
const (
	InspectionDayStart            = "08:00"
	InspectionDayEnd              = "18:00"
	InspectionSlotDurationMinutes = 30
)

// Validation limits
const (
	MinPasswordLength       = 8
	OTPLength               = 6
	MaxComplaintTitleLength = 200
	MaxComplaintBodyLength  = 2000
	MaxRequestNoteLength    = 500
)
