package middleware

import (
	"time"

	"github.com/m04kA/SMC-SwapPortal/internal/service/session"
)

// SessionResolver строит состояние сессии по bearer-токену
type SessionResolver interface {
	FromToken(token string, now time.Time) session.State
}

// HTTPMetrics учёт обслуженных запросов
type HTTPMetrics interface {
	ObserveHTTP(method, route string, status int, d time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
