package payment_method

import "github.com/m04kA/SMC-SwapPortal/internal/domain"

// Response платёж после смены способа оплаты
type Response struct {
	Payment    domain.Payment
	PaymentURL string
}
