package auth

import (
	"time"

	sessionHandler "github.com/m04kA/SMC-SwapPortal/internal/api/handlers/session"
	authUC "github.com/m04kA/SMC-SwapPortal/internal/usecase/auth"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest HTTP request model
type RegisterRequest struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Token     string                          `json:"token"`
	ExpiresAt *string                         `json:"expiresAt,omitempty"`
	Session   *sessionHandler.SessionResponse `json:"session"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *LoginRequest) ToUseCaseRequest() *authUC.LoginRequest {
	return &authUC.LoginRequest{
		Email:    r.Email,
		Password: r.Password,
	}
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RegisterRequest) ToUseCaseRequest() *authUC.RegisterRequest {
	return &authUC.RegisterRequest{
		FullName:        r.FullName,
		Email:           r.Email,
		Phone:           r.Phone,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *authUC.LoginResponse) *LoginResponse {
	out := &LoginResponse{
		Token:   resp.Token,
		Session: sessionHandler.FromState(resp.Session),
	}
	if resp.ExpiresAt != nil {
		expires := resp.ExpiresAt.Format(time.RFC3339)
		out.ExpiresAt = &expires
	}
	return out
}
