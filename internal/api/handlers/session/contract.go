package session

import (
	"context"

	sessionService "github.com/m04kA/SMC-SwapPortal/internal/service/session"
)

type SessionService interface {
	Bootstrap(ctx context.Context) sessionService.State
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
