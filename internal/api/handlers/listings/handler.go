package listings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SwapPortal/internal/api/handlers"
	listingsUC "github.com/m04kA/SMC-SwapPortal/internal/usecase/listings"
)

const (
	msgInvalidParams = "invalid query parameters"
	msgListFailed    = "could not load the list, please try again"
)

type Handler struct {
	useCase ListingsUseCase
	logger  Logger
}

func NewHandler(useCase ListingsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Stations GET /api/v1/portal/stations
// Query params: search, city, activeOnly, page
func (h *Handler) Stations(w http.ResponseWriter, r *http.Request) {
	f, err := stationFilter(r.URL.Query())
	if err != nil {
		h.badParams(w, "GET /stations", err)
		return
	}
	res, err := h.useCase.Stations(r.Context(), f)
	if err != nil {
		h.respondError(w, "GET /stations", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromResult(res, fromStation))
}

// Payments GET /api/v1/portal/payments
// Query params: search, status, method, type, date, minAmount, maxAmount, page
func (h *Handler) Payments(w http.ResponseWriter, r *http.Request) {
	f, err := paymentFilter(r.URL.Query())
	if err != nil {
		h.badParams(w, "GET /payments", err)
		return
	}
	res, err := h.useCase.Payments(r.Context(), f)
	if err != nil {
		h.respondError(w, "GET /payments", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromResult(res, fromPayment))
}

// Complaints GET /api/v1/portal/complaints
// Query params: search, status, date, page
func (h *Handler) Complaints(w http.ResponseWriter, r *http.Request) {
	f, err := complaintFilter(r.URL.Query())
	if err != nil {
		h.badParams(w, "GET /complaints", err)
		return
	}
	res, err := h.useCase.Complaints(r.Context(), f)
	if err != nil {
		h.respondError(w, "GET /complaints", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromResult(res, fromComplaint))
}

// Customers GET /api/v1/portal/admin/customers
// Query params: search, active, page
func (h *Handler) Customers(w http.ResponseWriter, r *http.Request) {
	f, err := accountFilter(r.URL.Query())
	if err != nil {
		h.badParams(w, "GET /admin/customers", err)
		return
	}
	res, err := h.useCase.Customers(r.Context(), f)
	if err != nil {
		h.respondError(w, "GET /admin/customers", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromResult(res, fromAccount))
}

// Staff GET /api/v1/portal/admin/staff
// Query params: search, active, page
func (h *Handler) Staff(w http.ResponseWriter, r *http.Request) {
	f, err := accountFilter(r.URL.Query())
	if err != nil {
		h.badParams(w, "GET /admin/staff", err)
		return
	}
	res, err := h.useCase.Staff(r.Context(), f)
	if err != nil {
		h.respondError(w, "GET /admin/staff", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromResult(res, fromAccount))
}

// Plans GET /api/v1/portal/plans
// Query params: search, active, minPrice, maxPrice, page, pageSize
func (h *Handler) Plans(w http.ResponseWriter, r *http.Request) {
	f, err := planFilter(r.URL.Query())
	if err != nil {
		h.badParams(w, "GET /plans", err)
		return
	}
	res, err := h.useCase.Plans(r.Context(), f)
	if err != nil {
		h.respondError(w, "GET /plans", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromResult(res, fromPlan))
}

func (h *Handler) badParams(w http.ResponseWriter, route string, err error) {
	h.logger.Warn("%s - Invalid parameters: %v", route, err)
	handlers.RespondBadRequest(w, msgInvalidParams)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	if errors.Is(err, listingsUC.ErrInvalidFilter) {
		h.logger.Warn("%s - Invalid filter: %v", route, err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}
	if handlers.RespondUpstreamError(w, err, msgListFailed) {
		return
	}
	h.logger.Error("%s - Failed to load list: %v", route, err)
	handlers.RespondInternalError(w)
}
