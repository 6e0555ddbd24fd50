package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SwapPortal/internal/integrations/swapapi"
	"github.com/m04kA/SMC-SwapPortal/internal/service/session"
)

// UseCase вход и регистрация через backend
type UseCase struct {
	client       AuthClient
	sessions     SessionResolver
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client AuthClient, sessions SessionResolver, logger Logger) *UseCase {
	return &UseCase{
		client:       client,
		sessions:     sessions,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет часы (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Login проверяет форму, получает токен и строит сессию из его claims
func (uc *UseCase) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	req.Email = strings.TrimSpace(req.Email)

	// 1. Валидация входных данных
	if err := validateLogin(req); err != nil {
		return nil, err
	}

	// 2. Запрос в backend
	result, err := uc.client.Login(ctx, swapapi.LoginRequest{Email: req.Email, Password: req.Password})
	if err != nil {
		uc.logger.Warn("Auth.Login: email=%s: %v", req.Email, err)
		if errors.Is(err, swapapi.ErrUnauthorized) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		}
		return nil, mapError(err)
	}
	if result.Token == "" {
		uc.logger.Error("Auth.Login: email=%s: backend returned no token", req.Email)
		return nil, ErrNoToken
	}

	// 3. Сессия из токена; пользователь из ответа точнее claims
	now := uc.timeProvider.Now()
	state := uc.sessions.FromToken(result.Token, now)
	if result.User != nil {
		if result.User.Role == "" {
			result.User.Role = result.Role
		}
		state = session.Authenticated(result.User)
	}

	resp := &LoginResponse{Token: result.Token, Session: state}
	claims, err := uc.sessions.Claims(result.Token, now)
	if err != nil {
		// Токен не проходит проверку портала: последующие запросы будут анонимными
		uc.logger.Error("Auth.Login: email=%s: token rejected by portal: %v", req.Email, err)
		return nil, fmt.Errorf("%w: %w", ErrTokenRejected, err)
	}
	resp.ExpiresAt = claims.ExpiresAt

	uc.logger.Info("Auth.Login: email=%s, role=%s", req.Email, result.Role)
	return resp, nil
}

// Register создаёт аккаунт водителя
func (uc *UseCase) Register(ctx context.Context, req *RegisterRequest) error {
	req.Email = strings.TrimSpace(req.Email)
	req.FullName = strings.TrimSpace(req.FullName)
	req.Phone = strings.TrimSpace(req.Phone)

	// 1. Валидация входных данных
	if err := validateRegister(req); err != nil {
		return err
	}

	// 2. Запрос в backend
	err := uc.client.Register(ctx, swapapi.RegisterRequest{
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           req.Phone,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		uc.logger.Warn("Auth.Register: email=%s: %v", req.Email, err)
		if errors.Is(err, swapapi.ErrConflict) {
			return fmt.Errorf("%w: %w", ErrEmailTaken, err)
		}
		return mapError(err)
	}

	uc.logger.Info("Auth.Register: account created for %s", req.Email)
	return nil
}

// mapError ошибки по полям из backend отдаются как ошибки формы
func mapError(err error) error {
	if apiErr, ok := swapapi.AsAPIError(err); ok && len(apiErr.FieldErrors) > 0 {
		fields := make(map[string]string, len(apiErr.FieldErrors))
		for k, v := range apiErr.FieldErrors {
			fields[k] = v
		}
		return &ValidationError{Fields: fields}
	}
	return fmt.Errorf("%w: %w", ErrAuthFailed, err)
}
