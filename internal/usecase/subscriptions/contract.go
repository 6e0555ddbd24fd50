package subscriptions

import (
	"context"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	"github.com/m04kA/SMC-SwapPortal/internal/integrations/swapapi"
)

// SubscriptionClient интерфейс клиента backend для подписок водителя
type SubscriptionClient interface {
	ListMySubscriptions(ctx context.Context) ([]domain.SubscriptionInfo, error)
	CancelMySubscription(ctx context.Context) error
	SwapHistory(ctx context.Context, page, pageSize int) (*swapapi.SwapHistoryPage, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
