package password

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SwapPortal/internal/api/handlers"
	recovery "github.com/m04kA/SMC-SwapPortal/internal/usecase/password_recovery"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgValidationFailed   = "please correct the highlighted fields"
	msgResendCooldown     = "please wait before requesting another code"
	msgInvalidOTP         = "the code is invalid or has expired"
	msgRecoveryFailed     = "password recovery failed, please try again"
)

type Handler struct {
	useCase RecoveryUseCase
	logger  Logger
}

func NewHandler(useCase RecoveryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Forgot POST /api/v1/portal/auth/password/forgot
func (h *Handler) Forgot(w http.ResponseWriter, r *http.Request) {
	var req ForgotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/password/forgot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.RequestCode(r.Context(), &recovery.ForgotRequest{Email: req.Email})
	if err != nil {
		h.respondError(w, "forgot", err)
		return
	}

	h.logger.Info("POST /auth/password/forgot - Code sent")
	handlers.RespondJSON(w, http.StatusAccepted, FromUseCaseResponse(result))
}

// Verify POST /api/v1/portal/auth/password/verify
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/password/verify - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.useCase.VerifyCode(r.Context(), &recovery.VerifyRequest{Email: req.Email, OTP: req.OTP}); err != nil {
		h.respondError(w, "verify", err)
		return
	}
	handlers.RespondNoContent(w)
}

// Reset POST /api/v1/portal/auth/password/reset
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	var req ResetRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/password/reset - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.useCase.ResetPassword(r.Context(), &recovery.ResetRequest{
		Email:           req.Email,
		OTP:             req.OTP,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		h.respondError(w, "reset", err)
		return
	}

	h.logger.Info("POST /auth/password/reset - Password changed")
	handlers.RespondNoContent(w)
}

func (h *Handler) respondError(w http.ResponseWriter, step string, err error) {
	var (
		vErr    *recovery.ValidationError
		waitErr *recovery.WaitError
	)
	switch {
	case errors.As(err, &vErr):
		handlers.RespondValidation(w, msgValidationFailed, vErr.Fields)

	case errors.As(err, &waitErr):
		message := waitErr.Message
		if message == "" && errors.Is(err, recovery.ErrResendCooldown) {
			message = msgResendCooldown
		}
		h.logger.Info("POST /auth/password/%s - Must wait %ds", step, waitErr.RetryAfterSeconds())
		handlers.RespondTooManyRequests(w, message, waitErr.RetryAfter)

	case errors.Is(err, recovery.ErrInvalidOTP):
		handlers.RespondBadRequest(w, msgInvalidOTP)

	default:
		h.logger.Error("POST /auth/password/%s - Failed: %v", step, err)
		handlers.RespondBadGateway(w, msgRecoveryFailed)
	}
}
