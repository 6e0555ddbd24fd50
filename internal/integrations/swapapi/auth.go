package swapapi

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
)

// Me возвращает текущего пользователя по учётным данным из контекста
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var resp userResponse
	if err := c.call(ctx, "Me", http.MethodGet, "/api/v1/Auth/me", nil, nil, &resp); err != nil {
		return nil, err
	}
	user := resp.toDomain()
	return &user, nil
}

// Login вход по email и паролю
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	var resp loginResponse
	if err := c.call(ctx, "Login", http.MethodPost, "/api/v1/Auth/login", nil, req, &resp); err != nil {
		return nil, err
	}

	result := &LoginResult{
		Token: resp.Token,
		Role:  domain.Role(resp.Role),
	}
	if result.Token == "" {
		result.Token = resp.AccessToken
	}
	if resp.User != nil {
		user := resp.User.toDomain()
		result.User = &user
		if result.Role == "" {
			result.Role = user.Role
		}
	}
	return result, nil
}

// Register создание аккаунта водителя
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.call(ctx, "Register", http.MethodPost, "/api/v1/Auth/register", nil, req, nil)
}

// ForgotPassword запрашивает отправку OTP на email
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.call(ctx, "ForgotPassword", http.MethodPost, "/api/v1/Auth/forgot-password", nil,
		forgotPasswordRequest{Email: email}, nil)
}

// VerifyOTP проверяет код из письма
func (c *Client) VerifyOTP(ctx context.Context, email, otp string) error {
	return c.call(ctx, "VerifyOTP", http.MethodPost, "/api/v1/Auth/verify-otp", nil,
		verifyOTPRequest{Email: email, OTP: otp}, nil)
}

// ResetPassword устанавливает новый пароль
func (c *Client) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	return c.call(ctx, "ResetPassword", http.MethodPost, "/api/v1/Auth/reset-password", nil, req, nil)
}
