package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	"github.com/m04kA/SMC-SwapPortal/internal/integrations/swapapi"
	"github.com/m04kA/SMC-SwapPortal/internal/service/session"
)

var now = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

type fixedTime struct{}

func (fixedTime) Now() time.Time { return now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeAuthClient struct {
	result    *swapapi.LoginResult
	loginErr  error
	regErr    error
	registers []swapapi.RegisterRequest
}

func (f *fakeAuthClient) Login(context.Context, swapapi.LoginRequest) (*swapapi.LoginResult, error) {
	return f.result, f.loginErr
}

func (f *fakeAuthClient) Register(_ context.Context, req swapapi.RegisterRequest) error {
	f.registers = append(f.registers, req)
	return f.regErr
}

func token(t *testing.T, role string) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "u-7",
		"email": "staff@example.com",
		"role":  role,
		"exp":   now.Add(time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func newUseCase(client *fakeAuthClient) *UseCase {
	sessions := session.NewService(nil, session.NewVerifier([]byte("test-secret"), "", ""), time.Second, nopLogger{})
	return NewUseCase(client, sessions, nopLogger{}).WithTimeProvider(fixedTime{})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("session from token claims", func(t *testing.T) {
		client := &fakeAuthClient{result: &swapapi.LoginResult{Token: token(t, "Staff"), Role: domain.RoleStaff}}

		resp, err := newUseCase(client).Login(ctx, &LoginRequest{Email: "staff@example.com", Password: "secret"})
		require.NoError(t, err)

		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, session.StatusAuthenticated, resp.Session.Status)
		assert.True(t, resp.Session.HasRole(domain.RoleStaff))
		require.NotNil(t, resp.ExpiresAt)
		assert.Equal(t, now.Add(time.Hour).Unix(), resp.ExpiresAt.Unix())
	})

	t.Run("user from response wins", func(t *testing.T) {
		client := &fakeAuthClient{result: &swapapi.LoginResult{
			Token: token(t, "Driver"),
			Role:  domain.RoleDriver,
			User:  &domain.User{ID: "u-7", FullName: "Nguyen Van A"},
		}}

		resp, err := newUseCase(client).Login(ctx, &LoginRequest{Email: "staff@example.com", Password: "secret"})
		require.NoError(t, err)

		require.NotNil(t, resp.Session.User)
		assert.Equal(t, "Nguyen Van A", resp.Session.User.FullName)
		assert.Equal(t, domain.RoleDriver, resp.Session.User.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		client := &fakeAuthClient{loginErr: &swapapi.APIError{Kind: swapapi.KindUnauthorized, Status: 401, Message: "Invalid credentials"}}

		_, err := newUseCase(client).Login(ctx, &LoginRequest{Email: "staff@example.com", Password: "bad"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Equal(t, "Invalid credentials", swapapi.UserMessage(err, ""))
	})

	t.Run("no token", func(t *testing.T) {
		client := &fakeAuthClient{result: &swapapi.LoginResult{}}

		_, err := newUseCase(client).Login(ctx, &LoginRequest{Email: "staff@example.com", Password: "secret"})
		assert.ErrorIs(t, err, ErrNoToken)
	})

	t.Run("token signed with another key", func(t *testing.T) {
		foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub":  "u-7",
			"role": "Admin",
			"exp":  now.Add(time.Hour).Unix(),
		}).SignedString([]byte("another-key"))
		require.NoError(t, err)
		client := &fakeAuthClient{result: &swapapi.LoginResult{Token: foreign, Role: domain.RoleAdmin}}

		_, err = newUseCase(client).Login(ctx, &LoginRequest{Email: "staff@example.com", Password: "secret"})
		assert.ErrorIs(t, err, ErrTokenRejected)
	})

	t.Run("form errors", func(t *testing.T) {
		_, err := newUseCase(&fakeAuthClient{}).Login(ctx, &LoginRequest{Email: "nope"})

		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Contains(t, vErr.Fields, "email")
		assert.Contains(t, vErr.Fields, "password")
	})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	valid := func() *RegisterRequest {
		return &RegisterRequest{
			FullName:        "Tran Thi B",
			Email:           "driver@example.com",
			Phone:           "+84 901-234-567",
			Password:        "longenough",
			ConfirmPassword: "longenough",
		}
	}

	t.Run("ok", func(t *testing.T) {
		client := &fakeAuthClient{}
		require.NoError(t, newUseCase(client).Register(ctx, valid()))
		require.Len(t, client.registers, 1)
		assert.Equal(t, "+84 901-234-567", client.registers[0].Phone)
	})

	t.Run("field errors", func(t *testing.T) {
		req := valid()
		req.FullName = " "
		req.Phone = "abc"
		req.ConfirmPassword = "different"

		err := newUseCase(&fakeAuthClient{}).Register(ctx, req)

		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Len(t, vErr.Fields, 3)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("email taken", func(t *testing.T) {
		client := &fakeAuthClient{regErr: &swapapi.APIError{Kind: swapapi.KindConflict, Status: 409}}

		err := newUseCase(client).Register(ctx, valid())
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("upstream field errors", func(t *testing.T) {
		client := &fakeAuthClient{regErr: &swapapi.APIError{
			Kind:        swapapi.KindValidation,
			Status:      400,
			FieldErrors: map[string]string{"phone": "Phone already in use"},
		}}

		err := newUseCase(client).Register(ctx, valid())

		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "Phone already in use", vErr.Fields["phone"])
	})
}
