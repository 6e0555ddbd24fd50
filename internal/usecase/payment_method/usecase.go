package payment_method

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	"github.com/m04kA/SMC-SwapPortal/internal/integrations/swapapi"
)

// UseCase смена способа оплаты неоплаченного платежа
type UseCase struct {
	client PaymentClient
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client PaymentClient, logger Logger) *UseCase {
	return &UseCase{
		client: client,
		logger: logger,
	}
}

// SelectCash переводит платёж на оплату наличными на станции
func (uc *UseCase) SelectCash(ctx context.Context, paymentID string) (*Response, error) {
	// 1. Проверяем, что платёж ещё можно переключить
	payment, err := uc.pending(ctx, "SelectCash", paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Method == domain.PaymentMethodCash {
		return &Response{Payment: *payment}, nil
	}

	// 2. Запрос в backend
	if err := uc.client.SelectCash(ctx, paymentID); err != nil {
		uc.logger.Warn("PaymentMethod.SelectCash: payment=%s: %v", paymentID, err)
		return nil, wrapUpstream(err)
	}

	payment.Method = domain.PaymentMethodCash
	payment.PaymentURL = nil
	uc.logger.Info("PaymentMethod.SelectCash: payment=%s switched to cash", paymentID)
	return &Response{Payment: *payment}, nil
}

// RegenerateVNPayURL выдаёт новую ссылку VNPay для повторной оплаты
func (uc *UseCase) RegenerateVNPayURL(ctx context.Context, paymentID string) (*Response, error) {
	// 1. Проверяем, что платёж ещё не оплачен
	payment, err := uc.pending(ctx, "RegenerateVNPayURL", paymentID)
	if err != nil {
		return nil, err
	}

	// 2. Запрос в backend
	link, err := uc.client.RegenerateVNPayURL(ctx, paymentID)
	if err != nil {
		uc.logger.Warn("PaymentMethod.RegenerateVNPayURL: payment=%s: %v", paymentID, err)
		return nil, wrapUpstream(err)
	}
	if link == "" {
		return nil, ErrNoPaymentURL
	}

	payment.Method = domain.PaymentMethodVNPay
	payment.PaymentURL = &link
	uc.logger.Info("PaymentMethod.RegenerateVNPayURL: payment=%s has a new link", paymentID)
	return &Response{Payment: *payment, PaymentURL: link}, nil
}

func (uc *UseCase) pending(ctx context.Context, op, paymentID string) (*domain.Payment, error) {
	if paymentID == "" {
		return nil, fmt.Errorf("%w: payment id is required", ErrInvalidInput)
	}

	payments, err := uc.client.ListPayments(ctx)
	if err != nil {
		uc.logger.Error("PaymentMethod.%s: failed to list payments: %v", op, err)
		return nil, wrapUpstream(err)
	}

	var payment *domain.Payment
	for i := range payments {
		if payments[i].ID == paymentID {
			payment = &payments[i]
			break
		}
	}
	if payment == nil {
		return nil, fmt.Errorf("%w: %s", ErrPaymentNotFound, paymentID)
	}
	if !payment.CanSwitchMethod() {
		return nil, fmt.Errorf("%w: status=%s", ErrPaymentSettled, payment.Status)
	}
	return payment, nil
}

func wrapUpstream(err error) error {
	if errors.Is(err, swapapi.ErrUnauthorized) || errors.Is(err, swapapi.ErrForbidden) {
		return err
	}
	if errors.Is(err, swapapi.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrPaymentNotFound, err)
	}
	return fmt.Errorf("%w: %w", ErrSwitchFailed, err)
}
