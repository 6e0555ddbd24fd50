package auth

import (
	"net/mail"
	"strings"
	"unicode"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
)

func validateEmail(email string, fields map[string]string) {
	if email == "" {
		fields["email"] = "Email is required"
		return
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		fields["email"] = "Email is not valid"
	}
}

// validateLogin проверяет форму входа
func validateLogin(req *LoginRequest) error {
	fields := map[string]string{}
	validateEmail(req.Email, fields)
	if req.Password == "" {
		fields["password"] = "Password is required"
	}
	return asError(fields)
}

// validateRegister проверяет форму регистрации
func validateRegister(req *RegisterRequest) error {
	fields := map[string]string{}
	if strings.TrimSpace(req.FullName) == "" {
		fields["fullName"] = "Full name is required"
	}
	validateEmail(req.Email, fields)
	if req.Phone != "" && !isPhone(req.Phone) {
		fields["phone"] = "Phone number is not valid"
	}
	if len(req.Password) < domain.MinPasswordLength {
		fields["password"] = "Password must be at least 8 characters"
	}
	if req.ConfirmPassword != req.Password {
		fields["confirmPassword"] = "Passwords do not match"
	}
	return asError(fields)
}

func isPhone(phone string) bool {
	digits := 0
	for i, r := range phone {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '+' && i == 0, r == ' ', r == '-':
		default:
			return false
		}
	}
	return digits >= 9 && digits <= 15
}

func asError(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
