package complaints

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput ошибки по полям формы
	ErrInvalidInput = errors.New("invalid input")

	// ErrComplaintNotFound жалоба не найдена
	ErrComplaintNotFound = errors.New("complaint not found")

	// ErrSubmitFailed backend не принял жалобу
	ErrSubmitFailed = errors.New("failed to submit complaint")
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
