package group_requests

import (
	"context"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	"github.com/m04kA/SMC-SwapPortal/internal/integrations/swapapi"
)

// RestockClient интерфейс для работы с заявками на пополнение в backend
type RestockClient interface {
	ListBatteryRequests(ctx context.Context) ([]domain.BatteryRequest, error)
	CreateBatteryRequest(ctx context.Context, req swapapi.RestockLineRequest) (*domain.BatteryRequest, error)
	ListStockRequests(ctx context.Context) ([]domain.StockRequest, error)
	CreateStockRequest(ctx context.Context, req swapapi.RestockLineRequest) (*domain.StockRequest, error)
}

// Metrics учёт размеров партий
type Metrics interface {
	ObserveBatch(source string, size int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
