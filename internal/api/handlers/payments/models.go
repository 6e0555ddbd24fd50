package payments

import (
	paymentMethod "github.com/m04kA/SMC-SwapPortal/internal/usecase/payment_method"
)

// PaymentResponse HTTP response model
type PaymentResponse struct {
	ID         string  `json:"id"`
	Method     string  `json:"method"`
	Type       string  `json:"type"`
	Amount     float64 `json:"amount"`
	Status     string  `json:"status"`
	PaymentURL *string `json:"paymentUrl,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *paymentMethod.Response) *PaymentResponse {
	out := &PaymentResponse{
		ID:         resp.Payment.ID,
		Method:     resp.Payment.Method.String(),
		Type:       string(resp.Payment.Type),
		Amount:     resp.Payment.Amount,
		Status:     string(resp.Payment.Status),
		PaymentURL: resp.Payment.PaymentURL,
	}
	if resp.PaymentURL != "" {
		link := resp.PaymentURL
		out.PaymentURL = &link
	}
	return out
}
