package plans

import (
	"context"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	managePlans "github.com/m04kA/SMC-SwapPortal/internal/usecase/manage_plans"
)

type PlansUseCase interface {
	Get(ctx context.Context, id string) (*domain.SubscriptionPlan, error)
	Create(ctx context.Context, req *managePlans.PlanRequest) (*domain.SubscriptionPlan, error)
	Update(ctx context.Context, id string, req *managePlans.PlanRequest) (*domain.SubscriptionPlan, error)
	Delete(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
