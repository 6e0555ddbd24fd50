package inspection_wizard

import (
	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	inspectionWizard "github.com/m04kA/SMC-SwapPortal/internal/usecase/inspection_wizard"
)

// OpenRequest HTTP request model
type OpenRequest struct {
	ComplaintID string `json:"complaintId"`
}

// SelectStationRequest HTTP request model
type SelectStationRequest struct {
	StationID string `json:"stationId"`
}

// SelectDateRequest HTTP request model
type SelectDateRequest struct {
	Date string `json:"date"` // "2026-10-15"
}

// SelectSlotRequest HTTP request model
type SelectSlotRequest struct {
	SlotKey string `json:"slotKey"`
}

// WizardResponse HTTP response model
type WizardResponse struct {
	ID             string            `json:"id"`
	ComplaintID    string            `json:"complaintId"`
	ComplaintTitle string            `json:"complaintTitle"`
	Step           int               `json:"step"`
	Stations       []StationResponse `json:"stations"`
	StationID      string            `json:"stationId,omitempty"`
	Date           *string           `json:"date,omitempty"`
	Slots          []SlotResponse    `json:"slots"`
	SlotKey        string            `json:"slotKey,omitempty"`
	CanNext        bool              `json:"canNext"`
	CanBack        bool              `json:"canBack"`
	CanConfirm     bool              `json:"canConfirm"`
	Scheduled      bool              `json:"scheduled"`
	Error          string            `json:"error,omitempty"`
}

// StationResponse станция для осмотра
type StationResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
}

// SlotResponse слот осмотра
type SlotResponse struct {
	Key        string `json:"key"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Selectable bool   `json:"selectable"`
}

// FromView конвертирует снимок визарда в HTTP response
func FromView(v *inspectionWizard.View) *WizardResponse {
	resp := &WizardResponse{
		ID:             v.ID,
		ComplaintID:    v.ComplaintID,
		ComplaintTitle: v.ComplaintTitle,
		Step:           int(v.Step),
		Stations:       make([]StationResponse, 0, len(v.Stations)),
		StationID:      v.StationID,
		Slots:          make([]SlotResponse, 0, len(v.Slots)),
		SlotKey:        v.SlotKey,
		CanNext:        v.CanNext,
		CanBack:        v.CanBack,
		CanConfirm:     v.CanConfirm,
		Scheduled:      v.Scheduled,
		Error:          v.Error,
	}
	for _, st := range v.Stations {
		resp.Stations = append(resp.Stations, StationResponse{
			ID:      st.ID,
			Name:    st.Name,
			Address: st.Address,
			City:    st.City,
		})
	}
	if v.Date != nil {
		date := v.Date.Format(domain.DateFormat)
		resp.Date = &date
	}
	for _, o := range v.Slots {
		resp.Slots = append(resp.Slots, SlotResponse{
			Key:        o.Slot.Key(),
			StartTime:  o.Slot.StartTime.String(),
			EndTime:    o.Slot.EndTime.String(),
			Selectable: o.Selectable,
		})
	}
	return resp
}
