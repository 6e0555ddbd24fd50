package password_recovery

import (
	"net/mail"
	"strings"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
)

const (
	fieldEmail           = "email"
	fieldOTP             = "otp"
	fieldNewPassword     = "newPassword"
	fieldConfirmPassword = "confirmPassword"
)

// normalizeEmail приводит email к виду ключа cooldown
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string, fields FieldErrors) {
	if email == "" {
		fields[fieldEmail] = "Email is required"
		return
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		fields[fieldEmail] = "Email is not valid"
	}
}

func validateOTP(otp string, fields FieldErrors) {
	if len(otp) != domain.OTPLength {
		fields[fieldOTP] = "Code must be 6 digits"
		return
	}
	for _, r := range otp {
		if r < '0' || r > '9' {
			fields[fieldOTP] = "Code must be 6 digits"
			return
		}
	}
}

// validateForgot проверяет запрос кода
func validateForgot(req *ForgotRequest) error {
	fields := FieldErrors{}
	validateEmail(req.Email, fields)
	return asError(fields)
}

// validateVerify проверяет запрос проверки кода
func validateVerify(req *VerifyRequest) error {
	fields := FieldErrors{}
	validateEmail(req.Email, fields)
	validateOTP(req.OTP, fields)
	return asError(fields)
}

// validateReset проверяет запрос смены пароля
func validateReset(req *ResetRequest) error {
	fields := FieldErrors{}
	validateEmail(req.Email, fields)
	validateOTP(req.OTP, fields)
	if len(req.NewPassword) < domain.MinPasswordLength {
		fields[fieldNewPassword] = "Password must be at least 8 characters"
	}
	if req.ConfirmPassword != req.NewPassword {
		fields[fieldConfirmPassword] = "Passwords do not match"
	}
	return asError(fields)
}

func asError(fields FieldErrors) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
