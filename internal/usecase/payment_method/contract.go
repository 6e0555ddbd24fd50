package payment_method

import (
	"context"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
)

// PaymentClient интерфейс клиента backend для платежей
type PaymentClient interface {
	ListPayments(ctx context.Context) ([]domain.Payment, error)
	SelectCash(ctx context.Context, paymentID string) error
	RegenerateVNPayURL(ctx context.Context, paymentID string) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
