package auth

import (
	"time"

	"github.com/m04kA/SMC-SwapPortal/internal/service/session"
)

// LoginRequest вход по email и паролю
type LoginRequest struct {
	Email    string
	Password string
}

// LoginResponse токен и сессия после входа
type LoginResponse struct {
	Token     string
	ExpiresAt *time.Time
	Session   session.State
}

// RegisterRequest регистрация водителя
type RegisterRequest struct {
	FullName        string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}
