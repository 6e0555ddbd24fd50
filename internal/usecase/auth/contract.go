package auth

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SwapPortal/internal/integrations/swapapi"
	"github.com/m04kA/SMC-SwapPortal/internal/service/session"
)

// AuthClient интерфейс клиента backend для входа и регистрации
type AuthClient interface {
	Login(ctx context.Context, req swapapi.LoginRequest) (*swapapi.LoginResult, error)
	Register(ctx context.Context, req swapapi.RegisterRequest) error
}

// SessionResolver строит состояние сессии по токену
type SessionResolver interface {
	FromToken(token string, now time.Time) session.State
	Claims(token string, now time.Time) (*session.Claims, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
