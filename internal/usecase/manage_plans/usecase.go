package manage_plans

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	"github.com/m04kA/SMC-SwapPortal/internal/integrations/swapapi"
)

// UseCase управление тарифами подписки (admin)
type UseCase struct {
	client PlanClient
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client PlanClient, logger Logger) *UseCase {
	return &UseCase{
		client: client,
		logger: logger,
	}
}

// Get тариф по id
func (uc *UseCase) Get(ctx context.Context, id string) (*domain.SubscriptionPlan, error) {
	if id == "" {
		return nil, &ValidationError{Fields: map[string]string{"id": "Plan id is required"}}
	}
	plan, err := uc.client.GetPlan(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return plan, nil
}

// Create создаёт тариф
func (uc *UseCase) Create(ctx context.Context, req *PlanRequest) (*domain.SubscriptionPlan, error) {
	// 1. Валидация входных данных
	if err := validatePlan(req); err != nil {
		return nil, err
	}

	// 2. Запрос в backend
	plan, err := uc.client.CreatePlan(ctx, toClientRequest(req))
	if err != nil {
		uc.logger.Warn("ManagePlans.Create: name=%s: %v", req.Name, err)
		return nil, mapError(err)
	}

	uc.logger.Info("ManagePlans.Create: plan=%s created", plan.ID)
	return plan, nil
}

// Update изменяет тариф
func (uc *UseCase) Update(ctx context.Context, id string, req *PlanRequest) (*domain.SubscriptionPlan, error) {
	// 1. Валидация входных данных
	if id == "" {
		return nil, &ValidationError{Fields: map[string]string{"id": "Plan id is required"}}
	}
	if err := validatePlan(req); err != nil {
		return nil, err
	}

	// 2. Запрос в backend
	plan, err := uc.client.UpdatePlan(ctx, id, toClientRequest(req))
	if err != nil {
		uc.logger.Warn("ManagePlans.Update: plan=%s: %v", id, err)
		return nil, mapError(err)
	}

	uc.logger.Info("ManagePlans.Update: plan=%s updated", id)
	return plan, nil
}

// Delete удаляет тариф
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return &ValidationError{Fields: map[string]string{"id": "Plan id is required"}}
	}
	if err := uc.client.DeletePlan(ctx, id); err != nil {
		uc.logger.Warn("ManagePlans.Delete: plan=%s: %v", id, err)
		return mapError(err)
	}
	uc.logger.Info("ManagePlans.Delete: plan=%s deleted", id)
	return nil
}

func toClientRequest(req *PlanRequest) swapapi.PlanRequest {
	return swapapi.PlanRequest{
		Name:         strings.TrimSpace(req.Name),
		Description:  strings.TrimSpace(req.Description),
		Price:        req.Price,
		DurationDays: req.DurationDays,
		SwapsLimit:   req.SwapsLimit,
		IsActive:     req.IsActive,
	}
}

func mapError(err error) error {
	switch {
	case errors.Is(err, swapapi.ErrUnauthorized), errors.Is(err, swapapi.ErrForbidden):
		return err
	case errors.Is(err, swapapi.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrPlanNotFound, err)
	case errors.Is(err, swapapi.ErrConflict):
		return fmt.Errorf("%w: %w", ErrPlanInUse, err)
	}
	if apiErr, ok := swapapi.AsAPIError(err); ok && len(apiErr.FieldErrors) > 0 {
		fields := make(map[string]string, len(apiErr.FieldErrors))
		for k, v := range apiErr.FieldErrors {
			fields[k] = v
		}
		return &ValidationError{Fields: fields}
	}
	return fmt.Errorf("%w: %w", ErrSaveFailed, err)
}
