package swapapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
)

// ListPayments платежи текущего пользователя (для админа все)
func (c *Client) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	var resp []paymentResponse
	if err := c.call(ctx, "ListPayments", http.MethodGet, "/api/v1/payments", nil, nil, &resp); err != nil {
		return nil, err
	}
	payments := make([]domain.Payment, 0, len(resp))
	for _, p := range resp {
		payments = append(payments, p.toDomain())
	}
	return payments, nil
}

// SelectCash переключает ожидающий платёж на оплату наличными
func (c *Client) SelectCash(ctx context.Context, paymentID string) error {
	path := "/api/v1/payments/" + url.PathEscape(paymentID) + "/select-cash"
	return c.call(ctx, "SelectCash", http.MethodPost, path, nil, nil, nil)
}

// RegenerateVNPayURL выдаёт новую ссылку на оплату VNPay
func (c *Client) RegenerateVNPayURL(ctx context.Context, paymentID string) (string, error) {
	path := "/api/v1/payments/" + url.PathEscape(paymentID) + "/regenerate-vnpay-url"

	var resp paymentURLResponse
	if err := c.call(ctx, "RegenerateVNPayURL", http.MethodPost, path, nil, nil, &resp); err != nil {
		return "", err
	}
	return resp.PaymentURL, nil
}
