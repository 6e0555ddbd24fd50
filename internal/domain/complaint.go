package domain

import "time"

// ComplaintStatus is the lifecycle state of a complaint
type ComplaintStatus string

const (
	ComplaintStatusPending             ComplaintStatus = "Pending"
	ComplaintStatusInspectionScheduled ComplaintStatus = "InspectionScheduled"
	ComplaintStatusInProgress          ComplaintStatus = "InProgress"
	ComplaintStatusResolved            ComplaintStatus = "Resolved"
	ComplaintStatusRejected            ComplaintStatus = "Rejected"
)

// Complaint is a driver's complaint about a swap or a battery
type Complaint struct {
	ID                    string
	ReservationID         string
	Title                 string
	Description           string
	Status                ComplaintStatus
	CustomerName          string
	CustomerEmail         string
	StationName           string
	InspectionStationID   string
	InspectionScheduledAt *time.Time
	CreatedAt             time.Time
}

// CanScheduleInspection returns true while the complaint is open and no inspection is booked
func (c *Complaint) CanScheduleInspection() bool {
	if c.InspectionScheduledAt != nil {
		return false
	}
	return c.Status == ComplaintStatusPending || c.Status == ComplaintStatusInProgress
}
