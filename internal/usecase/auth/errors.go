package auth

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput ошибки по полям формы
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCredentials неверный email или пароль
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken аккаунт с таким email уже есть
	ErrEmailTaken = errors.New("email is already registered")

	// ErrNoToken backend не вернул токен
	ErrNoToken = errors.New("login response has no token")

	// ErrTokenRejected токен backend не прошёл проверку подписи портала
	ErrTokenRejected = errors.New("login token failed verification")

	// ErrAuthFailed прочие ошибки backend
	ErrAuthFailed = errors.New("authentication failed")
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
