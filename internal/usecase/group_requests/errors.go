package group_requests

import "errors"

var (
	// ErrInvalidRequest некорректные строки партии
	ErrInvalidRequest = errors.New("invalid restock batch")

	// ErrListFailed не удалось получить заявки
	ErrListFailed = errors.New("failed to list restock requests")

	// ErrPartiallySubmitted часть строк партии не создана
	ErrPartiallySubmitted = errors.New("restock batch partially submitted")
)
