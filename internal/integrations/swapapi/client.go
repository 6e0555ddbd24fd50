package swapapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultRateLimitFallback = 60 * time.Second
	maxErrorBodySize         = 64 << 10
)

// Client клиент для работы с backend станций замены батарей
type Client struct {
	baseURL           string
	httpClient        *http.Client
	log               Logger
	metrics           Metrics
	rateLimitFallback time.Duration
	now               func() time.Time
}

// Option настраивает клиент
type Option func(*Client)

// WithMetrics включает учёт вызовов
func WithMetrics(m Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithRateLimitFallback задаёт окно ожидания для 429 без времени сброса
func WithRateLimitFallback(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.rateLimitFallback = d
		}
	}
}

// WithClock подменяет источник текущего времени
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// NewClient создает новый экземпляр клиента backend
func NewClient(baseURL string, timeout time.Duration, log Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:               log,
		rateLimitFallback: defaultRateLimitFallback,
		now:               time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// call выполняет запрос и декодирует ответ в out.
// Любая ошибка возвращается как *APIError.
func (c *Client) call(ctx context.Context, op, method, path string, query url.Values, in, out interface{}) error {
	started := time.Now()
	err := c.do(ctx, op, method, path, query, in, out)

	outcome := "ok"
	if apiErr, ok := AsAPIError(err); ok {
		outcome = string(apiErr.Kind)
	}
	if c.metrics != nil {
		c.metrics.ObserveUpstream(op, outcome, time.Since(started))
	}
	return err
}

func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, in, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return networkError(op, fmt.Errorf("failed to encode request: %w", err))
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return networkError(op, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	applyCredentials(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("%s: %s %s failed: %v", op, method, path, err)
		return networkError(op, fmt.Errorf("failed to execute request: %w", err))
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		apiErr := c.normalizeResponse(op, resp, raw)
		if apiErr.Kind == KindServer {
			c.log.Error("%s: %s %s returned %d: %s", op, method, path, resp.StatusCode, apiErr.Message)
		} else {
			c.log.Info("%s: %s %s returned %d (%s)", op, method, path, resp.StatusCode, apiErr.Kind)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return networkError(op, fmt.Errorf("failed to read response: %w", err))
	}
	if err := decodeData(raw, out); err != nil {
		c.log.Error("%s: failed to decode response: %v", op, err)
		return networkError(op, fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}

// decodeData понимает оба формата успешного ответа: голый объект и { "data": ... }
func decodeData(raw []byte, out interface{}) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}
	if raw[0] == '{' {
		var envelope struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Data) > 0 && string(envelope.Data) != "null" {
			return json.Unmarshal(envelope.Data, out)
		}
	}
	return json.Unmarshal(raw, out)
}
