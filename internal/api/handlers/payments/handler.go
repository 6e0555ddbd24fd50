package payments

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SwapPortal/internal/api/handlers"
	paymentMethod "github.com/m04kA/SMC-SwapPortal/internal/usecase/payment_method"
)

const (
	msgInvalidPaymentID = "invalid payment id"
	msgPaymentNotFound  = "payment not found"
	msgPaymentSettled   = "this payment is already completed"
	msgNoPaymentURL     = "the payment gateway did not return a link, please try again"
	msgSwitchFailed     = "could not update the payment, please try again"
)

type Handler struct {
	useCase PaymentMethodUseCase
	logger  Logger
}

func NewHandler(useCase PaymentMethodUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// SelectCash POST /api/v1/portal/payments/{id}/select-cash
func (h *Handler) SelectCash(w http.ResponseWriter, r *http.Request) {
	paymentID := mux.Vars(r)["id"]
	result, err := h.useCase.SelectCash(r.Context(), paymentID)
	if err != nil {
		h.respondError(w, "POST /payments/{id}/select-cash", paymentID, err)
		return
	}

	h.logger.Info("POST /payments/{id}/select-cash - Switched to cash: payment_id=%s", paymentID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// RegenerateVNPayURL POST /api/v1/portal/payments/{id}/regenerate-vnpay-url
func (h *Handler) RegenerateVNPayURL(w http.ResponseWriter, r *http.Request) {
	paymentID := mux.Vars(r)["id"]
	result, err := h.useCase.RegenerateVNPayURL(r.Context(), paymentID)
	if err != nil {
		h.respondError(w, "POST /payments/{id}/regenerate-vnpay-url", paymentID, err)
		return
	}

	h.logger.Info("POST /payments/{id}/regenerate-vnpay-url - New link issued: payment_id=%s", paymentID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func (h *Handler) respondError(w http.ResponseWriter, route, paymentID string, err error) {
	switch {
	case errors.Is(err, paymentMethod.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidPaymentID)

	case errors.Is(err, paymentMethod.ErrPaymentNotFound):
		h.logger.Warn("%s - Payment not found: payment_id=%s", route, paymentID)
		handlers.RespondNotFound(w, msgPaymentNotFound)

	case errors.Is(err, paymentMethod.ErrPaymentSettled):
		handlers.RespondConflict(w, msgPaymentSettled)

	case errors.Is(err, paymentMethod.ErrNoPaymentURL):
		h.logger.Error("%s - Empty payment link: payment_id=%s", route, paymentID)
		handlers.RespondBadGateway(w, msgNoPaymentURL)

	default:
		if handlers.RespondUpstreamError(w, err, msgSwitchFailed) {
			return
		}
		h.logger.Error("%s - Failed: payment_id=%s, error=%v", route, paymentID, err)
		handlers.RespondInternalError(w)
	}
}
