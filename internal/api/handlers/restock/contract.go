package restock

import (
	"context"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	groupRequests "github.com/m04kA/SMC-SwapPortal/internal/usecase/group_requests"
)

type RestockUseCase interface {
	BatteryBatches(ctx context.Context) ([]groupRequests.Batch[domain.BatteryRequest], error)
	StockBatches(ctx context.Context) ([]groupRequests.Batch[domain.StockRequest], error)
	SubmitBatteryBatch(ctx context.Context, req *groupRequests.SubmitRequest) (*groupRequests.SubmitResult, error)
	SubmitStockBatch(ctx context.Context, req *groupRequests.SubmitRequest) (*groupRequests.SubmitResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
