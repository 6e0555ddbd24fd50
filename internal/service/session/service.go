package session

import (
	"context"
	"time"
)

// DefaultCheckTimeout ограничение на проверку сессии при старте
const DefaultCheckTimeout = 5 * time.Second

// Service определяет состояние сессии пользователя
type Service struct {
	users    UserFetcher
	verifier *Verifier
	timeout  time.Duration
	log      Logger
}

// NewService создает сервис сессий
func NewService(users UserFetcher, verifier *Verifier, timeout time.Duration, log Logger) *Service {
	if timeout <= 0 {
		timeout = DefaultCheckTimeout
	}
	return &Service{
		users:    users,
		verifier: verifier,
		timeout:  timeout,
		log:      log,
	}
}

// Bootstrap спрашивает backend, кто текущий пользователь.
// Таймаут, 401 и любая другая ошибка дают anonymous без ошибки наружу.
func (s *Service) Bootstrap(ctx context.Context) State {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	user, err := s.users.Me(ctx)
	if err != nil {
		s.log.Info("Session.Bootstrap: treating user as anonymous: %v", err)
		return Anonymous()
	}
	if user == nil || user.ID == "" {
		s.log.Warn("Session.Bootstrap: backend returned empty user, treating as anonymous")
		return Anonymous()
	}
	return Authenticated(user)
}

// FromToken строит состояние по bearer-токену без обращения к backend.
// Непроверенный токен даёт anonymous.
func (s *Service) FromToken(token string, now time.Time) State {
	if token == "" {
		return Anonymous()
	}
	claims, err := s.verifier.ParseClaims(token, now)
	if err != nil {
		s.log.Info("Session.FromToken: %v", err)
		return Anonymous()
	}
	return Authenticated(claims.User())
}

// Claims проверяет токен и возвращает его claim'ы
func (s *Service) Claims(token string, now time.Time) (*Claims, error) {
	return s.verifier.ParseClaims(token, now)
}
