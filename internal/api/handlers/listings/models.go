package listings

import (
	"time"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	listingsUC "github.com/m04kA/SMC-SwapPortal/internal/usecase/listings"
)

// PageResponse страница списка
type PageResponse[T any] struct {
	Items      []T    `json:"items"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	TotalItems int    `json:"totalItems"`
	TotalPages int    `json:"totalPages"`
	Notice     string `json:"notice,omitempty"`
}

// StationResponse станция
type StationResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	IsActive  bool    `json:"isActive"`
	IsOpenNow bool    `json:"isOpenNow"`
	OpenTime  string  `json:"openTime"`
	CloseTime string  `json:"closeTime"`
	Phone     string  `json:"phone,omitempty"`
}

// PaymentResponse платёж
type PaymentResponse struct {
	ID              string  `json:"id"`
	Method          string  `json:"method"`
	Type            string  `json:"type"`
	Amount          float64 `json:"amount"`
	Status          string  `json:"status"`
	PaymentURL      *string `json:"paymentUrl,omitempty"`
	CustomerName    string  `json:"customerName"`
	CustomerEmail   string  `json:"customerEmail"`
	CanSwitchMethod bool    `json:"canSwitchMethod"`
	CreatedAt       string  `json:"createdAt"`
}

// ComplaintResponse жалоба
type ComplaintResponse struct {
	ID                    string  `json:"id"`
	ReservationID         string  `json:"reservationId,omitempty"`
	Title                 string  `json:"title"`
	Description           string  `json:"description"`
	Status                string  `json:"status"`
	CustomerName          string  `json:"customerName"`
	CustomerEmail         string  `json:"customerEmail"`
	StationName           string  `json:"stationName"`
	InspectionScheduledAt *string `json:"inspectionScheduledAt,omitempty"`
	CanScheduleInspection bool    `json:"canScheduleInspection"`
	CreatedAt             string  `json:"createdAt"`
}

// AccountResponse клиент или сотрудник
type AccountResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"fullName"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	StationID string `json:"stationId,omitempty"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt"`
}

// PlanResponse тариф подписки
type PlanResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	DurationDays int     `json:"durationDays"`
	SwapsLimit   *int    `json:"swapsLimit"`
	IsActive     bool    `json:"isActive"`
}

// FromResult конвертирует страницу use case в HTTP response
func FromResult[S, T any](res *listingsUC.Result[S], convert func(S) T) *PageResponse[T] {
	items := make([]T, 0, len(res.Page.Items))
	for _, item := range res.Page.Items {
		items = append(items, convert(item))
	}
	return &PageResponse[T]{
		Items:      items,
		Page:       res.Page.Page,
		PageSize:   res.Page.PageSize,
		TotalItems: res.Page.TotalItems,
		TotalPages: res.Page.TotalPages,
		Notice:     res.Notice,
	}
}

func fromStation(s domain.Station) StationResponse {
	return StationResponse{
		ID:        s.ID,
		Name:      s.Name,
		Address:   s.Address,
		City:      s.City,
		Latitude:  s.Latitude,
		Longitude: s.Longitude,
		IsActive:  s.IsActive,
		IsOpenNow: s.IsOpenNow,
		OpenTime:  s.OpenTime.String(),
		CloseTime: s.CloseTime.String(),
		Phone:     s.Phone,
	}
}

func fromPayment(p domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:              p.ID,
		Method:          p.Method.String(),
		Type:            string(p.Type),
		Amount:          p.Amount,
		Status:          string(p.Status),
		PaymentURL:      p.PaymentURL,
		CustomerName:    p.CustomerName,
		CustomerEmail:   p.CustomerEmail,
		CanSwitchMethod: p.CanSwitchMethod(),
		CreatedAt:       p.CreatedAt.Format(time.RFC3339),
	}
}

func fromComplaint(c domain.Complaint) ComplaintResponse {
	resp := ComplaintResponse{
		ID:                    c.ID,
		ReservationID:         c.ReservationID,
		Title:                 c.Title,
		Description:           c.Description,
		Status:                string(c.Status),
		CustomerName:          c.CustomerName,
		CustomerEmail:         c.CustomerEmail,
		StationName:           c.StationName,
		CanScheduleInspection: c.CanScheduleInspection(),
		CreatedAt:             c.CreatedAt.Format(time.RFC3339),
	}
	if c.InspectionScheduledAt != nil {
		at := c.InspectionScheduledAt.Format(time.RFC3339)
		resp.InspectionScheduledAt = &at
	}
	return resp
}

func fromAccount(u domain.User) AccountResponse {
	return AccountResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Phone:     u.Phone,
		Role:      string(u.Role),
		StationID: u.StationID,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func fromPlan(p domain.SubscriptionPlan) PlanResponse {
	return PlanResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		DurationDays: p.DurationDays,
		SwapsLimit:   p.SwapsLimit,
		IsActive:     p.IsActive,
	}
}
