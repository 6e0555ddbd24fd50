package subscriptions

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SwapPortal/internal/api/handlers"
	subscriptionsUC "github.com/m04kA/SMC-SwapPortal/internal/usecase/subscriptions"
)

const (
	msgInvalidPage          = "invalid page parameters"
	msgNoActiveSubscription = "you have no active subscription to cancel"
	msgCancelFailed         = "could not cancel the subscription, please try again"
	msgHistoryFailed        = "could not load swap history, please try again"
)

type Handler struct {
	useCase SubscriptionsUseCase
	logger  Logger
}

func NewHandler(useCase SubscriptionsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Mine GET /api/v1/portal/subscriptions
func (h *Handler) Mine(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Mine(r.Context())
	if err != nil {
		if handlers.RespondUpstreamError(w, err, "") {
			return
		}
		h.logger.Error("GET /subscriptions - Failed to load subscriptions: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromMineResponse(result))
}

// Cancel PUT /api/v1/portal/subscriptions/cancel
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	err := h.useCase.Cancel(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, subscriptionsUC.ErrNoActiveSubscription):
			handlers.RespondConflict(w, msgNoActiveSubscription)

		default:
			if handlers.RespondUpstreamError(w, err, msgCancelFailed) {
				return
			}
			h.logger.Error("PUT /subscriptions/cancel - Failed to cancel subscription: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /subscriptions/cancel - Subscription cancelled")
	handlers.RespondNoContent(w)
}

// History GET /api/v1/portal/swaps/history
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := handlers.QueryInt(q, "page", 1)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidPage)
		return
	}
	pageSize, err := handlers.QueryInt(q, "pageSize", subscriptionsUC.DefaultHistoryPageSize)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidPage)
		return
	}

	result, err := h.useCase.History(r.Context(), &subscriptionsUC.HistoryRequest{Page: page, PageSize: pageSize})
	if err != nil {
		switch {
		case errors.Is(err, subscriptionsUC.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidPage)

		default:
			if handlers.RespondUpstreamError(w, err, msgHistoryFailed) {
				return
			}
			h.logger.Error("GET /swaps/history - Failed to load history: page=%d, error=%v", page, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromHistoryPage(result))
}
