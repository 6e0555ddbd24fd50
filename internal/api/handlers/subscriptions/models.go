package subscriptions

import (
	"time"

	"github.com/m04kA/SMC-SwapPortal/internal/integrations/swapapi"
	subscriptionsUC "github.com/m04kA/SMC-SwapPortal/internal/usecase/subscriptions"
)

// SubscriptionResponse подписка водителя
type SubscriptionResponse struct {
	ID                    string `json:"id"`
	PlanID                string `json:"planId"`
	PlanName              string `json:"planName"`
	VehicleID             string `json:"vehicleId"`
	StartDate             string `json:"startDate"`
	EndDate               string `json:"endDate"`
	IsActive              bool   `json:"isActive"`
	IsBlocked             bool   `json:"isBlocked"`
	CurrentMonthSwapCount int    `json:"currentMonthSwapCount"`
	SwapsLimit            *int   `json:"swapsLimit"`
	RemainingSwaps        *int   `json:"remainingSwaps"`
	Usable                bool   `json:"usable"`
}

// MineResponse список подписок; notice заполнен, если backend недоступен
type MineResponse struct {
	Subscriptions []SubscriptionResponse `json:"subscriptions"`
	Notice        string                 `json:"notice,omitempty"`
}

// SwapRecordResponse одна замена батареи
type SwapRecordResponse struct {
	ID           string  `json:"id"`
	StationName  string  `json:"stationName"`
	VehiclePlate string  `json:"vehiclePlate"`
	OldBatteryID string  `json:"oldBatteryId"`
	NewBatteryID string  `json:"newBatteryId"`
	PaymentType  string  `json:"paymentType"`
	Amount       float64 `json:"amount"`
	SwappedAt    string  `json:"swappedAt"`
}

// HistoryResponse страница истории замен
type HistoryResponse struct {
	Items      []SwapRecordResponse `json:"items"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"pageSize"`
	TotalItems int                  `json:"totalItems"`
	TotalPages int                  `json:"totalPages"`
}

// FromMineResponse конвертирует ответ use case в HTTP response
func FromMineResponse(resp *subscriptionsUC.MineResponse) *MineResponse {
	out := &MineResponse{
		Subscriptions: make([]SubscriptionResponse, 0, len(resp.Subscriptions)),
		Notice:        resp.Notice,
	}
	for _, s := range resp.Subscriptions {
		out.Subscriptions = append(out.Subscriptions, SubscriptionResponse{
			ID:                    s.ID,
			PlanID:                s.PlanID,
			PlanName:              s.PlanName,
			VehicleID:             s.VehicleID,
			StartDate:             s.StartDate.Format(time.RFC3339),
			EndDate:               s.EndDate.Format(time.RFC3339),
			IsActive:              s.IsActive,
			IsBlocked:             s.IsBlocked,
			CurrentMonthSwapCount: s.CurrentMonthSwapCount,
			SwapsLimit:            s.SwapsLimit,
			RemainingSwaps:        s.RemainingSwaps,
			Usable:                s.Usable,
		})
	}
	return out
}

// FromHistoryPage конвертирует страницу истории в HTTP response
func FromHistoryPage(page *swapapi.SwapHistoryPage) *HistoryResponse {
	out := &HistoryResponse{
		Items:      make([]SwapRecordResponse, 0, len(page.Items)),
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
	}
	for _, rec := range page.Items {
		out.Items = append(out.Items, SwapRecordResponse{
			ID:           rec.ID,
			StationName:  rec.StationName,
			VehiclePlate: rec.VehiclePlate,
			OldBatteryID: rec.OldBatteryID,
			NewBatteryID: rec.NewBatteryID,
			PaymentType:  string(rec.PaymentType),
			Amount:       rec.Amount,
			SwappedAt:    rec.SwappedAt.Format(time.RFC3339),
		})
	}
	return out
}
