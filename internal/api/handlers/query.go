package handlers

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// QueryInt целое из query; пустое значение даёт def
func QueryInt(q url.Values, name string, def int) (int, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

// QueryString строка из query или nil
func QueryString(q url.Values, name string) *string {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return nil
	}
	return &raw
}

// QueryFloat число из query или nil
func QueryFloat(q url.Values, name string) (*float64, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &v, nil
}

// QueryBool флаг из query или nil
func QueryBool(q url.Values, name string) (*bool, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &v, nil
}

// QueryDate дата в формате layout или nil
func QueryDate(q url.Values, name, layout string) (*time.Time, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := time.Parse(layout, raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &v, nil
}
