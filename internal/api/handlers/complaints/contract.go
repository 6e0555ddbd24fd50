package complaints

import (
	"context"

	complaintsUC "github.com/m04kA/SMC-SwapPortal/internal/usecase/complaints"
)

type ComplaintsUseCase interface {
	Create(ctx context.Context, req *complaintsUC.CreateRequest) (*complaintsUC.Details, error)
	Get(ctx context.Context, id string) (*complaintsUC.Details, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
