package session

import (
	"context"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
)

// UserFetcher источник текущего пользователя (GET /Auth/me)
type UserFetcher interface {
	Me(ctx context.Context) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
