package password_recovery

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/m04kA/SMC-SwapPortal/internal/integrations/swapapi"
)

const (
	msgCooldown    = "Please wait before requesting another code."
	msgRateLimited = "Too many attempts. Please wait before trying again."
)

// UseCase восстановление пароля по коду из письма: forgot -> verify -> reset
type UseCase struct {
	client       RecoveryClient
	cooldown     time.Duration
	timeProvider TimeProvider
	logger       Logger

	mu        sync.Mutex
	nextSend  map[string]time.Time
	lastSweep time.Time
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client RecoveryClient, cooldown time.Duration, logger Logger) *UseCase {
	if cooldown <= 0 {
		cooldown = DefaultResendCooldown
	}
	return &UseCase{
		client:       client,
		cooldown:     cooldown,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		nextSend:     make(map[string]time.Time),
	}
}

// WithTimeProvider подменяет часы (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// RequestCode отправляет код на email, не чаще одного раза за cooldown
func (uc *UseCase) RequestCode(ctx context.Context, req *ForgotRequest) (*SentResponse, error) {
	req.Email = strings.TrimSpace(req.Email)

	// 1. Валидация входных данных
	if err := validateForgot(req); err != nil {
		return nil, err
	}
	key := normalizeEmail(req.Email)

	// 2. Занимаем окно отправки до запроса в backend, чтобы параллельные запросы его не прошли
	now := uc.timeProvider.Now()
	until, wait := uc.reserve(key, now)
	if wait > 0 {
		return nil, &WaitError{Reason: ErrResendCooldown, RetryAfter: wait, Message: msgCooldown}
	}

	// 3. Запрос в backend; при ошибке окно освобождается
	if err := uc.client.ForgotPassword(ctx, req.Email); err != nil {
		uc.logger.Warn("PasswordRecovery.RequestCode: email=%s: %v", key, err)
		uc.rollback(key, until)
		return nil, uc.mapError(key, now, err)
	}

	uc.logger.Info("PasswordRecovery.RequestCode: code sent to %s", key)

	return &SentResponse{Email: req.Email, ResendAfter: uc.cooldown}, nil
}

// VerifyCode проверяет код
func (uc *UseCase) VerifyCode(ctx context.Context, req *VerifyRequest) error {
	req.Email = strings.TrimSpace(req.Email)
	req.OTP = strings.TrimSpace(req.OTP)

	// 1. Валидация входных данных
	if err := validateVerify(req); err != nil {
		return err
	}
	key := normalizeEmail(req.Email)

	// 2. Запрос в backend
	if err := uc.client.VerifyOTP(ctx, req.Email, req.OTP); err != nil {
		uc.logger.Warn("PasswordRecovery.VerifyCode: email=%s: %v", key, err)
		return uc.mapError(key, uc.timeProvider.Now(), err)
	}
	return nil
}

// ResetPassword устанавливает новый пароль
func (uc *UseCase) ResetPassword(ctx context.Context, req *ResetRequest) error {
	req.Email = strings.TrimSpace(req.Email)
	req.OTP = strings.TrimSpace(req.OTP)

	// 1. Валидация входных данных
	if err := validateReset(req); err != nil {
		return err
	}
	key := normalizeEmail(req.Email)

	// 2. Запрос в backend
	err := uc.client.ResetPassword(ctx, swapapi.ResetPasswordRequest{
		Email:           req.Email,
		OTP:             req.OTP,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		uc.logger.Warn("PasswordRecovery.ResetPassword: email=%s: %v", key, err)
		return uc.mapError(key, uc.timeProvider.Now(), err)
	}

	// 3. Пароль сменён, пауза на повторную отправку больше не нужна
	uc.release(key)
	uc.logger.Info("PasswordRecovery.ResetPassword: password changed for %s", key)
	return nil
}

// mapError переводит ошибку backend в ошибку формы
func (uc *UseCase) mapError(key string, now time.Time, err error) error {
	apiErr, ok := swapapi.AsAPIError(err)
	if !ok {
		return fmt.Errorf("%w: %v", ErrRecoveryFailed, err)
	}

	switch {
	case errors.Is(err, swapapi.ErrRateLimited):
		uc.hold(key, now.Add(apiErr.RetryAfter))
		return &WaitError{Reason: ErrRateLimited, RetryAfter: apiErr.RetryAfter, Message: swapapi.UserMessage(err, msgRateLimited)}
	case errors.Is(err, swapapi.ErrValidation) && len(apiErr.FieldErrors) > 0:
		fields := make(FieldErrors, len(apiErr.FieldErrors))
		for k, v := range apiErr.FieldErrors {
			fields[k] = v
		}
		return &ValidationError{Fields: fields}
	case errors.Is(err, swapapi.ErrValidation), errors.Is(err, swapapi.ErrBusiness):
		return fmt.Errorf("%w: %w", ErrInvalidOTP, err)
	default:
		return fmt.Errorf("%w: %w", ErrRecoveryFailed, err)
	}
}

// reserve атомарно проверяет паузу и занимает окно до now+cooldown.
// Возвращает конец окна или оставшееся ожидание, если окно уже занято.
func (uc *UseCase) reserve(key string, now time.Time) (time.Time, time.Duration) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.sweepLocked(now)

	if until, ok := uc.nextSend[key]; ok && now.Before(until) {
		return time.Time{}, until.Sub(now)
	}
	until := now.Add(uc.cooldown)
	uc.nextSend[key] = until
	return until, 0
}

// rollback снимает резерв, если его не перезаписали
func (uc *UseCase) rollback(key string, until time.Time) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if current, ok := uc.nextSend[key]; ok && current.Equal(until) {
		delete(uc.nextSend, key)
	}
}

// sweepLocked раз в cooldown удаляет истёкшие записи
func (uc *UseCase) sweepLocked(now time.Time) {
	if now.Sub(uc.lastSweep) < uc.cooldown {
		return
	}
	for key, until := range uc.nextSend {
		if !now.Before(until) {
			delete(uc.nextSend, key)
		}
	}
	uc.lastSweep = now
}

func (uc *UseCase) hold(key string, until time.Time) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if current, ok := uc.nextSend[key]; ok && current.After(until) {
		return
	}
	uc.nextSend[key] = until
}

func (uc *UseCase) release(key string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.nextSend, key)
}
