package manage_plans

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput ошибки по полям формы тарифа
	ErrInvalidInput = errors.New("invalid input")

	// ErrPlanNotFound тариф не найден
	ErrPlanNotFound = errors.New("plan not found")

	// ErrPlanInUse тариф нельзя удалить, есть подписки
	ErrPlanInUse = errors.New("plan is in use")

	// ErrSaveFailed прочие ошибки backend
	ErrSaveFailed = errors.New("failed to save plan")
)

// ValidationError ошибка формы с сообщениями по полям
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %d field(s)", ErrInvalidInput, len(e.Fields))
}

// Is сопоставляет с ErrInvalidInput
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
