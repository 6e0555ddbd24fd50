package password

import (
	recovery "github.com/m04kA/SMC-SwapPortal/internal/usecase/password_recovery"
)

// ForgotRequest HTTP request model
type ForgotRequest struct {
	Email string `json:"email"`
}

// VerifyRequest HTTP request model
type VerifyRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// ResetRequest HTTP request model
type ResetRequest struct {
	Email           string `json:"email"`
	OTP             string `json:"otp"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// SentResponse HTTP response model
type SentResponse struct {
	Email              string `json:"email"`
	ResendAfterSeconds int    `json:"resendAfterSeconds"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *recovery.SentResponse) *SentResponse {
	return &SentResponse{
		Email:              resp.Email,
		ResendAfterSeconds: int(resp.ResendAfter.Seconds()),
	}
}
