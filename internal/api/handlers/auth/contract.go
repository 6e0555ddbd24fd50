package auth

import (
	"context"

	authUC "github.com/m04kA/SMC-SwapPortal/internal/usecase/auth"
)

type AuthUseCase interface {
	Login(ctx context.Context, req *authUC.LoginRequest) (*authUC.LoginResponse, error)
	Register(ctx context.Context, req *authUC.RegisterRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
