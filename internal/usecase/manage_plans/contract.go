package manage_plans

import (
	"context"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	"github.com/m04kA/SMC-SwapPortal/internal/integrations/swapapi"
)

// PlanClient интерфейс клиента backend для тарифов подписки
type PlanClient interface {
	GetPlan(ctx context.Context, id string) (*domain.SubscriptionPlan, error)
	CreatePlan(ctx context.Context, req swapapi.PlanRequest) (*domain.SubscriptionPlan, error)
	UpdatePlan(ctx context.Context, id string, req swapapi.PlanRequest) (*domain.SubscriptionPlan, error)
	DeletePlan(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
