package swapapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// errorBody покрывает оба формата ошибок бэкенда:
// { "error": { "code", "message", "details" } } и { "message", "errors": {...} }
type errorBody struct {
	Error   *errorPayload   `json:"error"`
	Message string          `json:"message"`
	Title   string          `json:"title"`
	Errors  json.RawMessage `json:"errors"`
}

type errorPayload struct {
	Code    json.RawMessage `json:"code"`
	Message string          `json:"message"`
	Details json.RawMessage `json:"details"`
}

// normalizeResponse превращает не-2xx ответ в APIError
func (c *Client) normalizeResponse(op string, resp *http.Response, body []byte) *APIError {
	apiErr := &APIError{
		Op:     op,
		Kind:   kindForStatus(resp.StatusCode),
		Status: resp.StatusCode,
	}

	var parsed errorBody
	if len(bytes.TrimSpace(body)) > 0 {
		// Тело может быть не JSON (прокси, html-страница ошибки): тогда остаётся fallback
		_ = json.Unmarshal(body, &parsed)
	}

	var resetAt *time.Time
	detailsText := ""
	if parsed.Error != nil {
		apiErr.Code = rawToString(parsed.Error.Code)
		detailsText, resetAt = c.parseDetails(parsed.Error.Details, apiErr)
	}
	mergeFieldErrors(parsed.Errors, apiErr)

	// Цепочка сообщений: details (строка) -> error.message -> message -> title -> fallback
	apiErr.Message = firstNonEmpty(
		detailsText,
		messageOf(parsed.Error),
		parsed.Message,
		parsed.Title,
		fallbackFor(apiErr.Kind),
	)

	if apiErr.Kind == KindRateLimited {
		apiErr.RetryAfter = c.retryAfter(resp.Header, resetAt)
	}
	return apiErr
}

// networkError оборачивает ошибку транспорта или декодирования
func networkError(op string, cause error) *APIError {
	return &APIError{
		Op:      op,
		Kind:    KindNetwork,
		Message: fallbackNetworkMessage,
		cause:   cause,
	}
}

// parseDetails разбирает error.details: строка, объект полей или объект с resetAt
func (c *Client) parseDetails(raw json.RawMessage, apiErr *APIError) (string, *time.Time) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return strings.TrimSpace(text), nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return "", nil
	}

	var resetAt *time.Time
	for key, value := range fields {
		if strings.EqualFold(key, "resetAt") {
			var s string
			if err := json.Unmarshal(value, &s); err == nil {
				if t, err := time.Parse(time.RFC3339, s); err == nil {
					resetAt = &t
				}
			}
			continue
		}
		if msg := fieldMessage(value); msg != "" {
			addFieldError(apiErr, key, msg)
		}
	}
	return "", resetAt
}

// mergeFieldErrors разбирает top-level errors: { "Email": ["..."] }
func mergeFieldErrors(raw json.RawMessage, apiErr *APIError) {
	if len(raw) == 0 {
		return
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return
	}
	for key, value := range fields {
		if msg := fieldMessage(value); msg != "" {
			addFieldError(apiErr, key, msg)
		}
	}
}

func fieldMessage(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
		return list[0]
	}
	return ""
}

func addFieldError(apiErr *APIError, key, msg string) {
	if apiErr.FieldErrors == nil {
		apiErr.FieldErrors = make(map[string]string)
	}
	apiErr.FieldErrors[lowerFirst(key)] = msg
}

// retryAfter: Retry-After (секунды или HTTP-дата) -> X-RateLimit-Reset (unix) -> details.resetAt -> fallback
func (c *Client) retryAfter(h http.Header, resetAt *time.Time) time.Duration {
	now := c.now()

	if v := strings.TrimSpace(h.Get("Retry-After")); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
		if t, err := http.ParseTime(v); err == nil && t.After(now) {
			return t.Sub(now)
		}
	}

	if v := strings.TrimSpace(h.Get("X-RateLimit-Reset")); v != "" {
		if unix, err := strconv.ParseInt(v, 10, 64); err == nil {
			if t := time.Unix(unix, 0); t.After(now) {
				return t.Sub(now)
			}
		}
	}

	if resetAt != nil && resetAt.After(now) {
		return resetAt.Sub(now)
	}
	return c.rateLimitFallback
}

func messageOf(p *errorPayload) string {
	if p == nil {
		return ""
	}
	return p.Message
}

func fallbackFor(kind Kind) string {
	switch kind {
	case KindNetwork:
		return fallbackNetworkMessage
	case KindServer:
		return fallbackServerMessage
	default:
		return fallbackMessage
	}
}

func rawToString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
