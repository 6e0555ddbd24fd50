package plans

import (
	"time"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	managePlans "github.com/m04kA/SMC-SwapPortal/internal/usecase/manage_plans"
)

// PlanRequest HTTP request model
type PlanRequest struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	DurationDays int     `json:"durationDays"`
	SwapsLimit   *int    `json:"swapsLimit"`
	IsActive     bool    `json:"isActive"`
}

// ToUseCaseRequest конвертирует HTTP request в use case request
func (r *PlanRequest) ToUseCaseRequest() *managePlans.PlanRequest {
	return &managePlans.PlanRequest{
		Name:         r.Name,
		Description:  r.Description,
		Price:        r.Price,
		DurationDays: r.DurationDays,
		SwapsLimit:   r.SwapsLimit,
		IsActive:     r.IsActive,
	}
}

// PlanResponse HTTP response model
type PlanResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	DurationDays int     `json:"durationDays"`
	SwapsLimit   *int    `json:"swapsLimit"`
	IsActive     bool    `json:"isActive"`
	CreatedAt    string  `json:"createdAt,omitempty"`
}

// FromDomain конвертирует тариф в HTTP response
func FromDomain(p *domain.SubscriptionPlan) *PlanResponse {
	resp := &PlanResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		DurationDays: p.DurationDays,
		SwapsLimit:   p.SwapsLimit,
		IsActive:     p.IsActive,
	}
	if !p.CreatedAt.IsZero() {
		resp.CreatedAt = p.CreatedAt.Format(time.RFC3339)
	}
	return resp
}
