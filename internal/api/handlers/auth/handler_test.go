package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SwapPortal/internal/api/middleware"
	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	"github.com/m04kA/SMC-SwapPortal/internal/integrations/swapapi"
	"github.com/m04kA/SMC-SwapPortal/internal/service/session"
	authUC "github.com/m04kA/SMC-SwapPortal/internal/usecase/auth"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	loginResp   *authUC.LoginResponse
	loginErr    error
	registerErr error
}

func (f *fakeUseCase) Login(context.Context, *authUC.LoginRequest) (*authUC.LoginResponse, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeUseCase) Register(context.Context, *authUC.RegisterRequest) error {
	return f.registerErr
}

func post(h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/auth", strings.NewReader(body)))
	return rec
}

func TestLogin_SetsCookie(t *testing.T) {
	expires := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{loginResp: &authUC.LoginResponse{
		Token:     "jwt-token",
		ExpiresAt: &expires,
		Session:   session.Authenticated(&domain.User{ID: "u-1", Email: "driver@example.com", Role: domain.RoleDriver}),
	}}
	h := NewHandler(uc, true, nopLogger{})

	rec := post(h.Login, `{"email":"driver@example.com","password":"secret123"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.SessionCookieName, cookies[0].Name)
	assert.Equal(t, "jwt-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.ExpiresAt)
	assert.Equal(t, "2026-10-16T12:00:00Z", *resp.ExpiresAt)
	assert.Equal(t, "authenticated", resp.Session.Status)
	assert.Equal(t, "Driver", resp.Session.User.Role)
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &authUC.ValidationError{Fields: map[string]string{"email": "Email is required"}}, http.StatusUnprocessableEntity},
		{"wrong password", authUC.ErrInvalidCredentials, http.StatusUnauthorized},
		{"rate limited", &swapapi.APIError{Kind: swapapi.KindRateLimited, Status: 429, RetryAfter: time.Minute}, http.StatusTooManyRequests},
		{"no token", authUC.ErrNoToken, http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{loginErr: tt.err}, false, nopLogger{})

			rec := post(h.Login, `{"email":"a@b.c","password":"x"}`)

			assert.Equal(t, tt.want, rec.Code)
			assert.Empty(t, rec.Result().Cookies())
		})
	}
}

func TestRegister(t *testing.T) {
	body := `{"fullName":"Driver","email":"d@example.com","phone":"0900000000","password":"secret123","confirmPassword":"secret123"}`

	assert.Equal(t, http.StatusNoContent, post(NewHandler(&fakeUseCase{}, false, nopLogger{}).Register, body).Code)
	assert.Equal(t, http.StatusConflict, post(NewHandler(&fakeUseCase{registerErr: authUC.ErrEmailTaken}, false, nopLogger{}).Register, body).Code)
	assert.Equal(t, http.StatusBadRequest, post(NewHandler(&fakeUseCase{}, false, nopLogger{}).Register, `[]`).Code)
}

func TestLogout_ClearsCookie(t *testing.T) {
	rec := post(NewHandler(&fakeUseCase{}, false, nopLogger{}).Logout, "")

	require.Equal(t, http.StatusNoContent, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.SessionCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
