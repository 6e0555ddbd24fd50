package swapapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type recordedCall struct {
	operation string
	outcome   string
}

type fakeMetrics struct {
	calls []recordedCall
}

func (m *fakeMetrics) ObserveUpstream(operation, outcome string, _ time.Duration) {
	m.calls = append(m.calls, recordedCall{operation: operation, outcome: outcome})
}

var fixedNow = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	return NewClient(srv.URL, 2*time.Second, nopLogger{}, opts...)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestClient_ForwardsCredentials(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/Auth/me", r.URL.Path)
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
		cookie, err := r.Cookie("session")
		require.NoError(t, err)
		assert.Equal(t, "abc", cookie.Value)
		writeJSON(w, http.StatusOK, `{"data":{"id":42,"email":"d@x.io","fullName":"Driver","role":"Driver"}}`)
	})

	ctx := WithCredentials(context.Background(), Credentials{
		Token:   "token-1",
		Cookies: []*http.Cookie{{Name: "session", Value: "abc"}},
	})
	user, err := client.Me(ctx)

	require.NoError(t, err)
	assert.Equal(t, "42", user.ID)
	assert.Equal(t, domain.RoleDriver, user.Role)
	assert.True(t, user.IsActive)
}

func TestClient_DecodesBareAndWrappedBodies(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/stations":
			writeJSON(w, http.StatusOK, `[{"id":"st-1","name":"Central","openTime":"07:00:00","closeTime":"22:00:00","isActive":true}]`)
		case "/api/v1/vehicles":
			writeJSON(w, http.StatusOK, `{"success":true,"data":[{"id":"v-1","batteryModelId":7,"licensePlate":"51A-123"}]}`)
		}
	})

	stations, err := client.ListStations(context.Background())
	require.NoError(t, err)
	require.Len(t, stations, 1)
	assert.Equal(t, "07:00", stations[0].OpenTime.String())

	vehicles, err := client.ListVehicles(context.Background())
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.Equal(t, "7", vehicles[0].BatteryModelID)
}

func TestClient_GetAvailableSlotsQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "st-1", r.URL.Query().Get("stationId"))
		assert.Equal(t, "2026-10-16", r.URL.Query().Get("date"))
		assert.Equal(t, "bm-1", r.URL.Query().Get("batteryModelId"))
		writeJSON(w, http.StatusOK, `[{"startTime":"09:00:00","endTime":"09:30:00","totalCapacity":4,"currentReservations":1,"isAvailable":true}]`)
	})

	slots, err := client.GetAvailableSlots(context.Background(), "st-1", time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), "bm-1")

	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "09:00", slots[0].StartTime.String())
	assert.Equal(t, 3, slots[0].RemainingCapacity())
}

func TestClient_MessageChain(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		kind    Kind
		message string
	}{
		{
			name:    "details string wins",
			status:  http.StatusConflict,
			body:    `{"error":{"code":"SLOT_FULL","message":"Conflict","details":"Slot is fully booked"},"message":"top"}`,
			kind:    KindConflict,
			message: "Slot is fully booked",
		},
		{
			name:    "error message when details is an object",
			status:  http.StatusBadRequest,
			body:    `{"error":{"code":"VALIDATION","message":"Invalid input","details":{"Email":"Email is required"}}}`,
			kind:    KindValidation,
			message: "Invalid input",
		},
		{
			name:    "top-level message",
			status:  http.StatusForbidden,
			body:    `{"message":"Subscription limit reached"}`,
			kind:    KindForbidden,
			message: "Subscription limit reached",
		},
		{
			name:    "fallback for empty server error",
			status:  http.StatusBadGateway,
			body:    ``,
			kind:    KindServer,
			message: fallbackServerMessage,
		},
		{
			name:    "non-json body",
			status:  http.StatusUnprocessableEntity,
			body:    `<html>oops</html>`,
			kind:    KindValidation,
			message: fallbackMessage,
		},
		{
			name:    "other 4xx is business",
			status:  http.StatusPaymentRequired,
			body:    `{"message":"Payment required"}`,
			kind:    KindBusiness,
			message: "Payment required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, tt.body)
			})

			err := client.CancelMySubscription(context.Background())

			apiErr, ok := AsAPIError(err)
			require.True(t, ok)
			assert.Equal(t, tt.kind, apiErr.Kind)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.message, apiErr.Message)
		})
	}
}

func TestClient_FieldErrors(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"title":"One or more validation errors occurred.","errors":{"Email":["Email is already taken"],"Password":["Too short"]}}`)
	})

	err := client.Register(context.Background(), RegisterRequest{Email: "a@b.c"})

	assert.ErrorIs(t, err, ErrValidation)
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "One or more validation errors occurred.", apiErr.Message)
	assert.Equal(t, map[string]string{
		"email":    "Email is already taken",
		"password": "Too short",
	}, apiErr.FieldErrors)
}

func TestClient_RateLimitRetryAfter(t *testing.T) {
	tests := []struct {
		name   string
		header map[string]string
		body   string
		want   time.Duration
	}{
		{
			name:   "retry-after seconds",
			header: map[string]string{"Retry-After": "42"},
			body:   `{"message":"Too many requests"}`,
			want:   42 * time.Second,
		},
		{
			name:   "x-ratelimit-reset unix",
			header: map[string]string{"X-RateLimit-Reset": strconv.FormatInt(fixedNow.Add(90*time.Second).Unix(), 10)},
			body:   `{"message":"Too many requests"}`,
			want:   90 * time.Second,
		},
		{
			name: "details resetAt",
			body: `{"error":{"message":"Too many OTP requests","details":{"resetAt":"` + fixedNow.Add(5*time.Minute).Format(time.RFC3339) + `"}}}`,
			want: 5 * time.Minute,
		},
		{
			name: "fallback window",
			body: `{"message":"Too many requests"}`,
			want: 30 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				for k, v := range tt.header {
					w.Header().Set(k, v)
				}
				writeJSON(w, http.StatusTooManyRequests, tt.body)
			}, WithRateLimitFallback(30*time.Second))

			err := client.ForgotPassword(context.Background(), "a@b.c")

			assert.ErrorIs(t, err, ErrRateLimited)
			apiErr, ok := AsAPIError(err)
			require.True(t, ok)
			assert.Equal(t, tt.want, apiErr.RetryAfter)
		})
	}
}

func TestClient_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := srv.URL
	srv.Close()

	metrics := &fakeMetrics{}
	client := NewClient(baseURL, time.Second, nopLogger{}, WithMetrics(metrics))

	_, err := client.ListStations(context.Background())

	assert.ErrorIs(t, err, ErrNetwork)
	assert.Equal(t, fallbackNetworkMessage, UserMessage(err, ""))
	require.Len(t, metrics.calls, 1)
	assert.Equal(t, recordedCall{operation: "ListStations", outcome: "network"}, metrics.calls[0])
}

func TestClient_UndecodableBodyIsNetworkError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"id": [`)
	})

	_, err := client.GetPlan(context.Background(), "p-1")

	assert.ErrorIs(t, err, ErrNetwork)
}

func TestClient_CreatePayPerSwapReservation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/payments/create-pay-per-swap-reservation", r.URL.Path)

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, float64(1), req["paymentMethod"])
		assert.Equal(t, "2026-10-16", req["slotDate"])

		writeJSON(w, http.StatusOK, `{"paymentId":"pay-9","amount":15000,"reservation":{"id":"r-1","reservationCode":"RSV-001","qrCode":"QR-DATA","slotDate":"2026-10-16T00:00:00","startTime":"10:00:00","endTime":"10:30:00"}}`)
	})

	cash := domain.PaymentMethodCash
	result, err := client.CreatePayPerSwapReservation(context.Background(), ReservationRequest{
		VehicleID:     "v-1",
		StationID:     "st-1",
		SlotDate:      "2026-10-16",
		StartTime:     "10:00",
		EndTime:       "10:30",
		PaymentMethod: &cash,
	})

	require.NoError(t, err)
	require.NotNil(t, result.Reservation)
	assert.Equal(t, "pay-9", result.Reservation.PaymentID)
	assert.Equal(t, "QR-DATA", result.Reservation.QRContent())
	assert.Equal(t, "10:00", result.Reservation.StartTime.String())
	assert.Equal(t, 16, result.Reservation.SlotDate.Day())
}

func TestUserMessage_NonAPIError(t *testing.T) {
	assert.Equal(t, "custom", UserMessage(context.DeadlineExceeded, "custom"))
}
