package payment_method

import "errors"

var (
	// ErrInvalidInput неверные входные данные
	ErrInvalidInput = errors.New("invalid input")

	// ErrPaymentNotFound платёж не найден среди платежей пользователя
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrPaymentSettled платёж уже оплачен, способ менять нельзя
	ErrPaymentSettled = errors.New("payment is already settled")

	// ErrNoPaymentURL backend не вернул ссылку на оплату
	ErrNoPaymentURL = errors.New("payment link was not returned")

	// ErrSwitchFailed backend отказал в смене способа оплаты
	ErrSwitchFailed = errors.New("failed to switch payment method")
)
