package password_recovery

import "time"

// DefaultResendCooldown пауза между отправками кода на один email
const DefaultResendCooldown = 60 * time.Second

// ForgotRequest запрос кода на email
type ForgotRequest struct {
	Email string
}

// VerifyRequest проверка кода
type VerifyRequest struct {
	Email string
	OTP   string
}

// ResetRequest установка нового пароля
type ResetRequest struct {
	Email           string
	OTP             string
	NewPassword     string
	ConfirmPassword string
}

// SentResponse код отправлен
type SentResponse struct {
	Email       string
	ResendAfter time.Duration
}
