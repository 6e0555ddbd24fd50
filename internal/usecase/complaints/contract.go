package complaints

import (
	"context"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	"github.com/m04kA/SMC-SwapPortal/internal/integrations/swapapi"
)

// ComplaintClient интерфейс клиента backend для жалоб
type ComplaintClient interface {
	GetComplaint(ctx context.Context, id string) (*domain.Complaint, error)
	CreateComplaint(ctx context.Context, req swapapi.ComplaintRequest) (*domain.Complaint, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
