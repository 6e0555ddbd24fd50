package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	"github.com/m04kA/SMC-SwapPortal/internal/integrations/swapapi"
	paymentMethod "github.com/m04kA/SMC-SwapPortal/internal/usecase/payment_method"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakePaymentClient struct {
	payments []domain.Payment
	link     string
	err      error
}

func (f *fakePaymentClient) ListPayments(context.Context) ([]domain.Payment, error) {
	return f.payments, nil
}

func (f *fakePaymentClient) SelectCash(context.Context, string) error {
	return f.err
}

func (f *fakePaymentClient) RegenerateVNPayURL(context.Context, string) (string, error) {
	return f.link, f.err
}

func serve(client *fakePaymentClient, path string) *httptest.ResponseRecorder {
	h := NewHandler(paymentMethod.NewUseCase(client, nopLogger{}), nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/payments/{id}/select-cash", h.SelectCash).Methods(http.MethodPost)
	r.HandleFunc("/payments/{id}/regenerate-vnpay-url", h.RegenerateVNPayURL).Methods(http.MethodPost)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, nil))
	return rec
}

func pendingPayments() []domain.Payment {
	return []domain.Payment{
		{ID: "p-1", Method: domain.PaymentMethodVNPay, Status: domain.PaymentStatusPending, Amount: 25},
		{ID: "p-2", Method: domain.PaymentMethodVNPay, Status: domain.PaymentStatusPaid, Amount: 25},
	}
}

func TestSelectCash(t *testing.T) {
	rec := serve(&fakePaymentClient{payments: pendingPayments()}, "/payments/p-1/select-cash")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp PaymentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Cash", resp.Method)
	assert.Nil(t, resp.PaymentURL)
}

func TestSelectCash_Errors(t *testing.T) {
	assert.Equal(t, http.StatusConflict, serve(&fakePaymentClient{payments: pendingPayments()}, "/payments/p-2/select-cash").Code)
	assert.Equal(t, http.StatusNotFound, serve(&fakePaymentClient{payments: pendingPayments()}, "/payments/p-9/select-cash").Code)

	upstream := &fakePaymentClient{
		payments: pendingPayments(),
		err:      &swapapi.APIError{Kind: swapapi.KindServer, Status: 503, Message: "Payment service is down"},
	}
	assert.Equal(t, http.StatusBadGateway, serve(upstream, "/payments/p-1/select-cash").Code)
}

func TestRegenerateVNPayURL(t *testing.T) {
	rec := serve(&fakePaymentClient{payments: pendingPayments(), link: "https://pay.example/vnpay?tx=1"}, "/payments/p-1/regenerate-vnpay-url")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp PaymentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.PaymentURL)
	assert.Equal(t, "https://pay.example/vnpay?tx=1", *resp.PaymentURL)

	rec = serve(&fakePaymentClient{payments: pendingPayments()}, "/payments/p-1/regenerate-vnpay-url")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
