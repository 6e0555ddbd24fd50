package session

import "errors"

var (
	// ErrInvalidToken токен не разбирается как JWT или не прошёл проверку подписи
	ErrInvalidToken = errors.New("invalid bearer token")

	// ErrNoSigningKey ключ подписи не настроен, токенам нельзя доверять
	ErrNoSigningKey = errors.New("token signing key is not configured")

	// ErrTokenExpired срок действия токена истёк
	ErrTokenExpired = errors.New("bearer token expired")

	// ErrNotAuthenticated в контексте нет аутентифицированной сессии
	ErrNotAuthenticated = errors.New("not authenticated")
)
