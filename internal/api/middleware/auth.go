package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SwapPortal/internal/api/handlers"
	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	"github.com/m04kA/SMC-SwapPortal/internal/integrations/swapapi"
	"github.com/m04kA/SMC-SwapPortal/internal/service/session"
)

// SessionCookieName cookie с токеном, который портал выставляет при входе
const SessionCookieName = "smc_portal_token"

const msgForbidden = "you do not have access to this page"

type tokenKey struct{}

// Auth достаёт токен из Authorization или cookie, пробрасывает учётные данные
// в клиент backend и кладёт в контекст состояние сессии
func Auth(resolver SessionResolver) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)

			var forwarded []*http.Cookie
			for _, c := range r.Cookies() {
				if c.Name != SessionCookieName {
					forwarded = append(forwarded, c)
				}
			}

			ctx := swapapi.WithCredentials(r.Context(), swapapi.Credentials{
				Token:   token,
				Cookies: forwarded,
			})
			ctx = context.WithValue(ctx, tokenKey{}, token)
			ctx = session.WithState(ctx, resolver.FromToken(token, time.Now()))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth пропускает только аутентифицированных пользователей
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !session.FromContext(r.Context()).IsAuthenticated() {
			handlers.RespondUnauthorized(w, "")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole пропускает пользователей с одной из ролей
func RequireRole(roles ...domain.Role) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			state := session.FromContext(r.Context())
			if !state.IsAuthenticated() {
				handlers.RespondUnauthorized(w, "")
				return
			}
			if !state.HasRole(roles...) {
				handlers.RespondForbidden(w, msgForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetUser пользователь текущего запроса
func GetUser(ctx context.Context) (*domain.User, bool) {
	state := session.FromContext(ctx)
	if !state.IsAuthenticated() {
		return nil, false
	}
	return state.User, true
}

// GetToken bearer-токен текущего запроса
func GetToken(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

func extractToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}
	if c, err := r.Cookie(SessionCookieName); err == nil {
		return c.Value
	}
	return ""
}
