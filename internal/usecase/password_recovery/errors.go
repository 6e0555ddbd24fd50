package password_recovery

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidInput ошибки по полям формы
	ErrInvalidInput = errors.New("invalid input")

	// ErrResendCooldown код уже отправлен, повторная отправка позже
	ErrResendCooldown = errors.New("resend cooldown is active")

	// ErrRateLimited backend ограничил частоту запросов
	ErrRateLimited = errors.New("too many requests")

	// ErrInvalidOTP код не принят backend
	ErrInvalidOTP = errors.New("invalid or expired code")

	// ErrRecoveryFailed прочие ошибки backend
	ErrRecoveryFailed = errors.New("password recovery failed")
)

// FieldErrors сообщения по полям формы
type FieldErrors map[string]string

// ValidationError ошибка формы с сообщениями по полям
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %d field(s)", ErrInvalidInput, len(e.Fields))
}

// Is сопоставляет с ErrInvalidInput
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// WaitError отказ, который можно повторить через RetryAfter
type WaitError struct {
	Reason     error
	RetryAfter time.Duration
	Message    string
}

func (e *WaitError) Error() string {
	return fmt.Sprintf("%v: retry in %s", e.Reason, e.RetryAfter)
}

// Unwrap возвращает причину (ErrResendCooldown или ErrRateLimited)
func (e *WaitError) Unwrap() error {
	return e.Reason
}

// RetryAfterSeconds секунды для обратного отсчёта, округление вверх
func (e *WaitError) RetryAfterSeconds() int {
	secs := int(e.RetryAfter / time.Second)
	if e.RetryAfter%time.Second != 0 {
		secs++
	}
	return secs
}
