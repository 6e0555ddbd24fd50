package swapapi

import (
	"errors"
	"fmt"
	"time"
)

// Kind каноническая категория ошибки upstream
type Kind string

const (
	KindValidation   Kind = "validation"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindRateLimited  Kind = "rate_limited"
	KindBusiness     Kind = "business"
	KindServer       Kind = "server"
	KindNetwork      Kind = "network"
)

var (
	// ErrValidation 400/422 с ошибками по полям
	ErrValidation = errors.New("swapapi: validation failed")

	// ErrUnauthorized 401, пользователь не залогинен
	ErrUnauthorized = errors.New("swapapi: unauthorized")

	// ErrForbidden 403
	ErrForbidden = errors.New("swapapi: forbidden")

	// ErrNotFound 404
	ErrNotFound = errors.New("swapapi: not found")

	// ErrConflict 409, например слот уже занят
	ErrConflict = errors.New("swapapi: conflict")

	// ErrRateLimited 429, в APIError.RetryAfter время до сброса
	ErrRateLimited = errors.New("swapapi: rate limited")

	// ErrBusiness прочие 4xx отказы бизнес-правил
	ErrBusiness = errors.New("swapapi: business rule rejected")

	// ErrServer 5xx
	ErrServer = errors.New("swapapi: server error")

	// ErrNetwork сервис недоступен, таймаут или нечитаемый ответ
	ErrNetwork = errors.New("swapapi: network error")
)

var kindSentinels = map[Kind]error{
	KindValidation:   ErrValidation,
	KindUnauthorized: ErrUnauthorized,
	KindForbidden:    ErrForbidden,
	KindNotFound:     ErrNotFound,
	KindConflict:     ErrConflict,
	KindRateLimited:  ErrRateLimited,
	KindBusiness:     ErrBusiness,
	KindServer:       ErrServer,
	KindNetwork:      ErrNetwork,
}

// Fallback messages when the backend gives no readable text
const (
	fallbackNetworkMessage = "Unable to reach the server. Please try again."
	fallbackServerMessage  = "Something went wrong on our side. Please try again later."
	fallbackMessage        = "Request failed. Please try again."
)

// APIError is the single normalized shape of every upstream failure.
// It matches the kind sentinels with errors.Is.
type APIError struct {
	Op          string
	Kind        Kind
	Status      int
	Code        string
	Message     string
	FieldErrors map[string]string
	RetryAfter  time.Duration
	cause       error
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s (status %d): %s", e.Op, e.Kind, e.Status, e.Message)
}

// Is matches the sentinel of the error's kind
func (e *APIError) Is(target error) bool {
	return kindSentinels[e.Kind] == target
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// AsAPIError extracts the normalized error from err's chain
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// UserMessage returns the user-facing text for err: the normalized upstream message
// when there is one, fallback otherwise
func UserMessage(err error, fallback string) string {
	if apiErr, ok := AsAPIError(err); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	if fallback == "" {
		return fallbackMessage
	}
	return fallback
}

func kindForStatus(status int) Kind {
	switch {
	case status == 400 || status == 422:
		return KindValidation
	case status == 401:
		return KindUnauthorized
	case status == 403:
		return KindForbidden
	case status == 404:
		return KindNotFound
	case status == 409:
		return KindConflict
	case status == 429:
		return KindRateLimited
	case status >= 500:
		return KindServer
	default:
		return KindBusiness
	}
}
