package subscriptions

import "errors"

var (
	// ErrInvalidInput неверные входные данные
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoActiveSubscription нечего отменять
	ErrNoActiveSubscription = errors.New("no active subscription")

	// ErrLoadFailed не удалось получить данные из backend
	ErrLoadFailed = errors.New("failed to load subscriptions")

	// ErrCancelFailed backend отказал в отмене
	ErrCancelFailed = errors.New("failed to cancel subscription")
)
