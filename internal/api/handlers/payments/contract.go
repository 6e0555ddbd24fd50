package payments

import (
	"context"

	paymentMethod "github.com/m04kA/SMC-SwapPortal/internal/usecase/payment_method"
)

type PaymentMethodUseCase interface {
	SelectCash(ctx context.Context, paymentID string) (*paymentMethod.Response, error)
	RegenerateVNPayURL(ctx context.Context, paymentID string) (*paymentMethod.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
