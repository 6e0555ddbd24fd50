package listings

import "errors"

var (
	// ErrInvalidFilter неверные параметры фильтра
	ErrInvalidFilter = errors.New("invalid filter")

	// ErrListFailed не удалось получить список из backend
	ErrListFailed = errors.New("failed to load list")
)
