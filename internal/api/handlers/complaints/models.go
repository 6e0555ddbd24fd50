package complaints

import (
	"time"

	complaintsUC "github.com/m04kA/SMC-SwapPortal/internal/usecase/complaints"
)

// CreateComplaintRequest HTTP request model
type CreateComplaintRequest struct {
	ReservationID string `json:"reservationId"`
	Title         string `json:"title"`
	Description   string `json:"description"`
}

// ToUseCaseRequest конвертирует HTTP request в use case request
func (r *CreateComplaintRequest) ToUseCaseRequest() *complaintsUC.CreateRequest {
	return &complaintsUC.CreateRequest{
		ReservationID: r.ReservationID,
		Title:         r.Title,
		Description:   r.Description,
	}
}

// ComplaintResponse HTTP response model
type ComplaintResponse struct {
	ID                    string  `json:"id"`
	ReservationID         string  `json:"reservationId,omitempty"`
	Title                 string  `json:"title"`
	Description           string  `json:"description"`
	Status                string  `json:"status"`
	StationName           string  `json:"stationName,omitempty"`
	InspectionStationID   string  `json:"inspectionStationId,omitempty"`
	InspectionScheduledAt *string `json:"inspectionScheduledAt,omitempty"`
	CanScheduleInspection bool    `json:"canScheduleInspection"`
	CreatedAt             string  `json:"createdAt"`
}

// FromDetails конвертирует ответ use case в HTTP response
func FromDetails(d *complaintsUC.Details) *ComplaintResponse {
	resp := &ComplaintResponse{
		ID:                    d.ID,
		ReservationID:         d.ReservationID,
		Title:                 d.Title,
		Description:           d.Description,
		Status:                string(d.Status),
		StationName:           d.StationName,
		InspectionStationID:   d.InspectionStationID,
		CanScheduleInspection: d.CanScheduleInspection,
		CreatedAt:             d.CreatedAt.Format(time.RFC3339),
	}
	if d.InspectionScheduledAt != nil {
		at := d.InspectionScheduledAt.Format(time.RFC3339)
		resp.InspectionScheduledAt = &at
	}
	return resp
}
