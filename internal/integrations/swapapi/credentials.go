package swapapi

import (
	"context"
	"net/http"
)

// Credentials данные аутентификации пользователя, которые пробрасываются в upstream
type Credentials struct {
	Token   string
	Cookies []*http.Cookie
}

type credentialsKey struct{}

// WithCredentials кладёт учётные данные запроса в контекст
func WithCredentials(ctx context.Context, creds Credentials) context.Context {
	return context.WithValue(ctx, credentialsKey{}, creds)
}

// CredentialsFrom достаёт учётные данные из контекста
func CredentialsFrom(ctx context.Context) (Credentials, bool) {
	creds, ok := ctx.Value(credentialsKey{}).(Credentials)
	return creds, ok
}

func applyCredentials(ctx context.Context, req *http.Request) {
	creds, ok := CredentialsFrom(ctx)
	if !ok {
		return
	}
	if creds.Token != "" {
		req.Header.Set("Authorization", "Bearer "+creds.Token)
	}
	for _, cookie := range creds.Cookies {
		req.AddCookie(cookie)
	}
}
