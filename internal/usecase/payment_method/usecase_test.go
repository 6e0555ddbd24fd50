package payment_method

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	"github.com/m04kA/SMC-SwapPortal/internal/integrations/swapapi"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakePaymentClient struct {
	payments   []domain.Payment
	link       string
	err        error
	cashCalls  []string
	vnpayCalls []string
}

func (f *fakePaymentClient) ListPayments(context.Context) ([]domain.Payment, error) {
	return f.payments, nil
}

func (f *fakePaymentClient) SelectCash(_ context.Context, id string) error {
	f.cashCalls = append(f.cashCalls, id)
	return f.err
}

func (f *fakePaymentClient) RegenerateVNPayURL(_ context.Context, id string) (string, error) {
	f.vnpayCalls = append(f.vnpayCalls, id)
	return f.link, f.err
}

func newClient() *fakePaymentClient {
	return &fakePaymentClient{
		payments: []domain.Payment{
			{ID: "p-1", Method: domain.PaymentMethodVNPay, Status: domain.PaymentStatusPending},
			{ID: "p-2", Method: domain.PaymentMethodVNPay, Status: domain.PaymentStatusPaid},
			{ID: "p-3", Method: domain.PaymentMethodCash, Status: domain.PaymentStatusPending},
		},
		link: "https://pay.example/vnpay?id=p-1&v=2",
	}
}

func TestSelectCash(t *testing.T) {
	ctx := context.Background()

	t.Run("pending vnpay payment", func(t *testing.T) {
		client := newClient()
		resp, err := NewUseCase(client, nopLogger{}).SelectCash(ctx, "p-1")
		require.NoError(t, err)

		assert.Equal(t, domain.PaymentMethodCash, resp.Payment.Method)
		assert.Equal(t, []string{"p-1"}, client.cashCalls)
	})

	t.Run("already cash", func(t *testing.T) {
		client := newClient()
		resp, err := NewUseCase(client, nopLogger{}).SelectCash(ctx, "p-3")
		require.NoError(t, err)

		assert.Equal(t, domain.PaymentMethodCash, resp.Payment.Method)
		assert.Empty(t, client.cashCalls)
	})

	t.Run("settled", func(t *testing.T) {
		client := newClient()
		_, err := NewUseCase(client, nopLogger{}).SelectCash(ctx, "p-2")

		assert.ErrorIs(t, err, ErrPaymentSettled)
		assert.Empty(t, client.cashCalls)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := NewUseCase(newClient(), nopLogger{}).SelectCash(ctx, "p-9")
		assert.ErrorIs(t, err, ErrPaymentNotFound)
	})

	t.Run("backend rejects", func(t *testing.T) {
		client := newClient()
		client.err = &swapapi.APIError{Kind: swapapi.KindBusiness, Status: 400, Message: "Reservation expired"}

		_, err := NewUseCase(client, nopLogger{}).SelectCash(ctx, "p-1")

		assert.ErrorIs(t, err, ErrSwitchFailed)
		assert.Equal(t, "Reservation expired", swapapi.UserMessage(err, ""))
	})
}

func TestRegenerateVNPayURL(t *testing.T) {
	ctx := context.Background()

	t.Run("new link", func(t *testing.T) {
		client := newClient()
		resp, err := NewUseCase(client, nopLogger{}).RegenerateVNPayURL(ctx, "p-3")
		require.NoError(t, err)

		assert.Equal(t, "https://pay.example/vnpay?id=p-1&v=2", resp.PaymentURL)
		assert.Equal(t, domain.PaymentMethodVNPay, resp.Payment.Method)
		require.NotNil(t, resp.Payment.PaymentURL)
	})

	t.Run("empty link", func(t *testing.T) {
		client := newClient()
		client.link = ""

		_, err := NewUseCase(client, nopLogger{}).RegenerateVNPayURL(ctx, "p-1")
		assert.ErrorIs(t, err, ErrNoPaymentURL)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := NewUseCase(newClient(), nopLogger{}).RegenerateVNPayURL(ctx, "")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
