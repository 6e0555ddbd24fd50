package password

import (
	"context"

	recovery "github.com/m04kA/SMC-SwapPortal/internal/usecase/password_recovery"
)

type RecoveryUseCase interface {
	RequestCode(ctx context.Context, req *recovery.ForgotRequest) (*recovery.SentResponse, error)
	VerifyCode(ctx context.Context, req *recovery.VerifyRequest) error
	ResetPassword(ctx context.Context, req *recovery.ResetRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
