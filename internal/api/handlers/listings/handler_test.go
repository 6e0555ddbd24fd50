package listings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	"github.com/m04kA/SMC-SwapPortal/internal/integrations/swapapi"
	listingsUC "github.com/m04kA/SMC-SwapPortal/internal/usecase/listings"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeClient struct {
	payments []domain.Payment
	err      error
}

func (f *fakeClient) ListStations(context.Context) ([]domain.Station, error) { return nil, f.err }
func (f *fakeClient) ListPayments(context.Context) ([]domain.Payment, error) {
	return f.payments, f.err
}
func (f *fakeClient) ListComplaints(context.Context) ([]domain.Complaint, error) { return nil, f.err }
func (f *fakeClient) ListCustomers(context.Context) ([]domain.User, error)        { return nil, f.err }
func (f *fakeClient) ListStaff(context.Context) ([]domain.User, error)            { return nil, f.err }
func (f *fakeClient) ListPlans(context.Context) ([]domain.SubscriptionPlan, error) {
	return nil, f.err
}

func samplePayments() []domain.Payment {
	day := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	payments := make([]domain.Payment, 0, 12)
	for i := 0; i < 12; i++ {
		status := domain.PaymentStatusPaid
		if i%3 == 0 {
			status = domain.PaymentStatusPending
		}
		payments = append(payments, domain.Payment{
			ID:        "p-" + string(rune('a'+i)),
			Method:    domain.PaymentMethodVNPay,
			Type:      domain.PaymentTypePayPerSwap,
			Amount:    float64(10 * (i + 1)),
			Status:    status,
			CreatedAt: day,
		})
	}
	return payments
}

func get(h http.HandlerFunc, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestPayments_FiltersAndPaginates(t *testing.T) {
	uc := listingsUC.NewUseCase(&fakeClient{payments: samplePayments()}, listingsUC.PageSizes{Payments: 2}, nopLogger{})
	h := NewHandler(uc, nopLogger{})

	rec := get(h.Payments, "/payments?status=Pending&page=2")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp PageResponse[PaymentResponse]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.TotalItems)
	assert.Equal(t, 2, resp.TotalPages)
	assert.Equal(t, 2, resp.Page)
	require.Len(t, resp.Items, 2)
	assert.True(t, resp.Items[0].CanSwitchMethod)
}

func TestPayments_BadParams(t *testing.T) {
	h := NewHandler(listingsUC.NewUseCase(&fakeClient{}, listingsUC.PageSizes{}, nopLogger{}), nopLogger{})

	assert.Equal(t, http.StatusBadRequest, get(h.Payments, "/payments?minAmount=abc").Code)
	assert.Equal(t, http.StatusBadRequest, get(h.Payments, "/payments?method=bitcoin").Code)
	assert.Equal(t, http.StatusBadRequest, get(h.Payments, "/payments?minAmount=50&maxAmount=10").Code)
}

func TestPayments_BackendDownGivesNotice(t *testing.T) {
	client := &fakeClient{err: &swapapi.APIError{Kind: swapapi.KindServer, Status: 500}}
	h := NewHandler(listingsUC.NewUseCase(client, listingsUC.PageSizes{}, nopLogger{}), nopLogger{})

	rec := get(h.Payments, "/payments")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp PageResponse[PaymentResponse]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Items)
	assert.NotEmpty(t, resp.Notice)
}

func TestPayments_Unauthorized(t *testing.T) {
	client := &fakeClient{err: &swapapi.APIError{Kind: swapapi.KindUnauthorized, Status: 401}}
	h := NewHandler(listingsUC.NewUseCase(client, listingsUC.PageSizes{}, nopLogger{}), nopLogger{})

	assert.Equal(t, http.StatusUnauthorized, get(h.Payments, "/payments").Code)
}
