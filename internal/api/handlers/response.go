package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

const (
	maxBodySize = 1 << 20

	msgUnauthorized  = "authentication required"
	msgInternalError = "internal server error"
	msgTooMany       = "too many requests, please try again later"
)

// Коды ошибок в теле ответа
const (
	CodeBadRequest   = "bad_request"
	CodeValidation   = "validation_failed"
	CodeUnauthorized = "unauthorized"
	CodeForbidden    = "forbidden"
	CodeNotFound     = "not_found"
	CodeConflict     = "conflict"
	CodeUnavailable  = "unavailable"
	CodeRateLimited  = "rate_limited"
	CodeInternal     = "internal_error"
	CodeBadGateway   = "upstream_error"
)

// ErrorBody тело ответа с ошибкой
type ErrorBody struct {
	Error ErrorPayload `json:"error"`
}

// ErrorPayload код, сообщение и детали (например, ошибки по полям)
type ErrorPayload struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// RespondJSON пишет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondNoContent 204 без тела
func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// RespondError ошибка с кодом по статусу
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondErrorDetails(w, status, codeForStatus(status), message, nil)
}

// RespondErrorDetails ошибка с явным кодом и деталями
func RespondErrorDetails(w http.ResponseWriter, status int, code, message string, details interface{}) {
	RespondJSON(w, status, ErrorBody{Error: ErrorPayload{
		Code:    code,
		Message: message,
		Details: details,
	}})
}

// RespondValidation 422 с сообщениями по полям
func RespondValidation(w http.ResponseWriter, message string, fields map[string]string) {
	RespondErrorDetails(w, http.StatusUnprocessableEntity, CodeValidation, message, fields)
}

// RespondBadRequest 400
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondUnauthorized 401
func RespondUnauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = msgUnauthorized
	}
	RespondError(w, http.StatusUnauthorized, message)
}

// RespondForbidden 403
func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

// RespondNotFound 404
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondConflict 409
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondTooManyRequests 429 с заголовком Retry-After
func RespondTooManyRequests(w http.ResponseWriter, message string, retryAfter time.Duration) {
	if message == "" {
		message = msgTooMany
	}
	secs := int((retryAfter + time.Second - 1) / time.Second)
	if secs > 0 {
		w.Header().Set("Retry-After", strconv.Itoa(secs))
	}
	RespondErrorDetails(w, http.StatusTooManyRequests, CodeRateLimited, message,
		map[string]int{"retryAfterSeconds": secs})
}

// RespondBadGateway 502, backend не ответил или ответил ошибкой
func RespondBadGateway(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadGateway, message)
}

// RespondInternalError 500
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// DecodeJSON читает тело запроса; неизвестные поля и лишние данные запрещены
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	if dec.More() {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return CodeBadRequest
	case http.StatusUnprocessableEntity:
		return CodeValidation
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusForbidden:
		return CodeForbidden
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusConflict:
		return CodeConflict
	case http.StatusTooManyRequests:
		return CodeRateLimited
	case http.StatusBadGateway:
		return CodeBadGateway
	case http.StatusServiceUnavailable:
		return CodeUnavailable
	default:
		return CodeInternal
	}
}
