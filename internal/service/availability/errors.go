package availability

import "errors"

var (
	// ErrInvalidQuery не заданы станция или дата
	ErrInvalidQuery = errors.New("invalid availability query")

	// ErrSlotsUnavailable не удалось получить слоты
	ErrSlotsUnavailable = errors.New("slots unavailable")

	// ErrInvalidSchedule неверные границы рабочего дня
	ErrInvalidSchedule = errors.New("invalid slot schedule")
)
