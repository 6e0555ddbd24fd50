package subscriptions

import (
	"context"

	"github.com/m04kA/SMC-SwapPortal/internal/integrations/swapapi"
	subscriptionsUC "github.com/m04kA/SMC-SwapPortal/internal/usecase/subscriptions"
)

type SubscriptionsUseCase interface {
	Mine(ctx context.Context) (*subscriptionsUC.MineResponse, error)
	Cancel(ctx context.Context) error
	History(ctx context.Context, req *subscriptionsUC.HistoryRequest) (*swapapi.SwapHistoryPage, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
