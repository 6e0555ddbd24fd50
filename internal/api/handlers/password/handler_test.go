package password

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

	recovery "github.com/m04kA/SMC-SwapPortal/internal/usecase/password_recovery"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	requestErr error
	verifyErr  error
	resetErr   error
}

func (f *fakeUseCase) RequestCode(_ context.Context, req *recovery.ForgotRequest) (*recovery.SentResponse, error) {
	if f.requestErr != nil {
		return nil, f.requestErr
	}
	return &recovery.SentResponse{Email: req.Email, ResendAfter: time.Minute}, nil
}

func (f *fakeUseCase) VerifyCode(context.Context, *recovery.VerifyRequest) error {
	return f.verifyErr
}

func (f *fakeUseCase) ResetPassword(context.Context, *recovery.ResetRequest) error {
	return f.resetErr
}

func post(h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/auth/password", strings.NewReader(body)))
	return rec
}

func TestForgot(t *testing.T) {
	rec := post(NewHandler(&fakeUseCase{}, nopLogger{}).Forgot, `{"email":"d@example.com"}`)

	require.Equal(t, http.StatusAccepted, rec.Code)
	var resp SentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "d@example.com", resp.Email)
	assert.Equal(t, 60, resp.ResendAfterSeconds)
}

func TestForgot_Cooldown(t *testing.T) {
	uc := &fakeUseCase{requestErr: &recovery.WaitError{Reason: recovery.ErrResendCooldown, RetryAfter: 1500 * time.Millisecond}}

	rec := post(NewHandler(uc, nopLogger{}).Forgot, `{"email":"d@example.com"}`)

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), msgResendCooldown)
}

func TestVerifyAndReset(t *testing.T) {
	assert.Equal(t, http.StatusNoContent, post(NewHandler(&fakeUseCase{}, nopLogger{}).Verify, `{"email":"d@example.com","otp":"123456"}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(NewHandler(&fakeUseCase{verifyErr: recovery.ErrInvalidOTP}, nopLogger{}).Verify, `{"email":"d@example.com","otp":"000000"}`).Code)

	invalid := &fakeUseCase{resetErr: &recovery.ValidationError{Fields: recovery.FieldErrors{"confirmPassword": "Passwords do not match"}}}
	assert.Equal(t, http.StatusUnprocessableEntity, post(NewHandler(invalid, nopLogger{}).Reset, `{"email":"d@example.com","otp":"123456","newPassword":"a","confirmPassword":"b"}`).Code)

	failed := &fakeUseCase{resetErr: recovery.ErrRecoveryFailed}
	assert.Equal(t, http.StatusBadGateway, post(NewHandler(failed, nopLogger{}).Reset, `{"email":"d@example.com","otp":"123456","newPassword":"secret123","confirmPassword":"secret123"}`).Code)
}
