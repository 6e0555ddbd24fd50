package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SwapPortal/internal/api/handlers"
	"github.com/m04kA/SMC-SwapPortal/internal/api/middleware"
	authUC "github.com/m04kA/SMC-SwapPortal/internal/usecase/auth"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgValidationFailed    = "please correct the highlighted fields"
	msgInvalidCredentials  = "incorrect email or password"
	msgEmailTaken          = "this email is already registered"
	msgAuthUnavailable     = "sign-in is unavailable right now, please try again"
	msgRegistrationFailure = "registration failed, please try again"
)

type Handler struct {
	useCase      AuthUseCase
	secureCookie bool
	logger       Logger
}

func NewHandler(useCase AuthUseCase, secureCookie bool, logger Logger) *Handler {
	return &Handler{
		useCase:      useCase,
		secureCookie: secureCookie,
		logger:       logger,
	}
}

// Login POST /api/v1/portal/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Login(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var vErr *authUC.ValidationError
		switch {
		case errors.As(err, &vErr):
			handlers.RespondValidation(w, msgValidationFailed, vErr.Fields)

		case errors.Is(err, authUC.ErrInvalidCredentials):
			h.logger.Info("POST /auth/login - Invalid credentials")
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			if handlers.RespondUpstreamError(w, err, msgAuthUnavailable) {
				return
			}
			h.logger.Error("POST /auth/login - Failed to sign in: %v", err)
			handlers.RespondBadGateway(w, msgAuthUnavailable)
		}
		return
	}

	cookie := &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    result.Token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
	if result.ExpiresAt != nil {
		cookie.Expires = *result.ExpiresAt
	}
	http.SetCookie(w, cookie)

	h.logger.Info("POST /auth/login - Signed in: status=%s", result.Session.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// Register POST /api/v1/portal/auth/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.useCase.Register(r.Context(), req.ToUseCaseRequest()); err != nil {
		var vErr *authUC.ValidationError
		switch {
		case errors.As(err, &vErr):
			handlers.RespondValidation(w, msgValidationFailed, vErr.Fields)

		case errors.Is(err, authUC.ErrEmailTaken):
			handlers.RespondConflict(w, msgEmailTaken)

		default:
			if handlers.RespondUpstreamError(w, err, msgRegistrationFailure) {
				return
			}
			h.logger.Error("POST /auth/register - Failed to register: %v", err)
			handlers.RespondBadGateway(w, msgRegistrationFailure)
		}
		return
	}

	h.logger.Info("POST /auth/register - Account registered")
	handlers.RespondNoContent(w)
}

// Logout POST /api/v1/portal/auth/logout
// Токен выдаёт backend, поэтому выход только удаляет cookie портала
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
	handlers.RespondNoContent(w)
}
