package wizards

import (
	"context"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
)

// Store хранилище сессий визардов
type Store interface {
	Create(ctx context.Context, rec *domain.WizardRecord) error
	Get(ctx context.Context, id string) (*domain.WizardRecord, error)
	Update(ctx context.Context, id string, fn func(rec *domain.WizardRecord) error) (*domain.WizardRecord, error)
	Delete(ctx context.Context, id string) error
}
