package restock

import (
	"time"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	groupRequests "github.com/m04kA/SMC-SwapPortal/internal/usecase/group_requests"
)

// SubmitBatchRequest HTTP request model
type SubmitBatchRequest struct {
	StationID string        `json:"stationId"`
	Lines     []LineRequest `json:"lines"`
	Comment   string        `json:"comment,omitempty"`
}

// LineRequest модель батареи и количество
type LineRequest struct {
	BatteryModelID string `json:"batteryModelId"`
	Quantity       int    `json:"quantity"`
}

// BatchResponse восстановленная партия
type BatchResponse struct {
	Key           string         `json:"key"`
	RequestedBy   string         `json:"requestedBy"`
	StationName   string         `json:"stationName"`
	TotalQuantity int            `json:"totalQuantity"`
	Status        string         `json:"status"`
	Items         []ItemResponse `json:"items"`
}

// ItemResponse строка партии
type ItemResponse struct {
	ID               string `json:"id"`
	BatteryModelID   string `json:"batteryModelId"`
	BatteryModelName string `json:"batteryModelName"`
	Quantity         int    `json:"quantity"`
	Status           string `json:"status"`
	Comment          string `json:"comment,omitempty"`
	CreatedAt        string `json:"createdAt"`
}

// SubmitResponse HTTP response model
type SubmitResponse struct {
	Created int `json:"created"`
	Total   int `json:"total"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SubmitBatchRequest) ToUseCaseRequest() *groupRequests.SubmitRequest {
	lines := make([]domain.RestockLine, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, domain.RestockLine{BatteryModelID: l.BatteryModelID, Quantity: l.Quantity})
	}
	return &groupRequests.SubmitRequest{
		StationID: r.StationID,
		Lines:     lines,
		Comment:   r.Comment,
	}
}

// FromBatteryBatches конвертирует партии admin -> staff
func FromBatteryBatches(batches []groupRequests.Batch[domain.BatteryRequest]) []BatchResponse {
	out := make([]BatchResponse, 0, len(batches))
	for _, b := range batches {
		resp := newBatchResponse(b.Key, b.RequestedBy, b.StationName, b.TotalQuantity, b.Status)
		for _, item := range b.Items {
			resp.Items = append(resp.Items, ItemResponse{
				ID:               item.ID,
				BatteryModelID:   item.BatteryModelID,
				BatteryModelName: item.BatteryModelName,
				Quantity:         item.Quantity,
				Status:           item.Status.String(),
				Comment:          item.Note,
				CreatedAt:        item.CreatedAt.Format(time.RFC3339),
			})
		}
		out = append(out, resp)
	}
	return out
}

// FromStockBatches конвертирует партии staff -> admin
func FromStockBatches(batches []groupRequests.Batch[domain.StockRequest]) []BatchResponse {
	out := make([]BatchResponse, 0, len(batches))
	for _, b := range batches {
		resp := newBatchResponse(b.Key, b.RequestedBy, b.StationName, b.TotalQuantity, b.Status)
		for _, item := range b.Items {
			resp.Items = append(resp.Items, ItemResponse{
				ID:               item.ID,
				BatteryModelID:   item.BatteryModelID,
				BatteryModelName: item.BatteryModelName,
				Quantity:         item.Quantity,
				Status:           item.Status.String(),
				Comment:          item.Reason,
				CreatedAt:        item.CreatedAt.Format(time.RFC3339),
			})
		}
		out = append(out, resp)
	}
	return out
}

func newBatchResponse(key time.Time, requestedBy, station string, total int, status domain.RequestStatus) BatchResponse {
	return BatchResponse{
		Key:           key.Format(time.RFC3339),
		RequestedBy:   requestedBy,
		StationName:   station,
		TotalQuantity: total,
		Status:        status.String(),
		Items:         []ItemResponse{},
	}
}
