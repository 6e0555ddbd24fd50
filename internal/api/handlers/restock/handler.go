package restock

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SwapPortal/internal/api/handlers"
	"github.com/m04kA/SMC-SwapPortal/internal/api/middleware"
	groupRequests "github.com/m04kA/SMC-SwapPortal/internal/usecase/group_requests"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgListFailed         = "could not load requests, please try again"
	msgSubmitFailed       = "could not submit the request, please try again"
	msgPartiallySubmitted = "only part of the request was submitted, check the list before retrying"
)

type Handler struct {
	useCase RestockUseCase
	logger  Logger
}

func NewHandler(useCase RestockUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// BatteryBatches GET /api/v1/portal/admin/battery-requests/batches
func (h *Handler) BatteryBatches(w http.ResponseWriter, r *http.Request) {
	batches, err := h.useCase.BatteryBatches(r.Context())
	if err != nil {
		h.respondListError(w, "GET /admin/battery-requests/batches", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromBatteryBatches(batches))
}

// StockBatches GET /api/v1/portal/staff/stock-requests/batches
func (h *Handler) StockBatches(w http.ResponseWriter, r *http.Request) {
	batches, err := h.useCase.StockBatches(r.Context())
	if err != nil {
		h.respondListError(w, "GET /staff/stock-requests/batches", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromStockBatches(batches))
}

// SubmitBatteryBatch POST /api/v1/portal/admin/battery-requests/batches
func (h *Handler) SubmitBatteryBatch(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, "POST /admin/battery-requests/batches", h.useCase.SubmitBatteryBatch)
}

// SubmitStockBatch POST /api/v1/portal/staff/stock-requests/batches
func (h *Handler) SubmitStockBatch(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, "POST /staff/stock-requests/batches", func(ctx context.Context, req *groupRequests.SubmitRequest) (*groupRequests.SubmitResult, error) {
		// Сотрудник по умолчанию заказывает для своей станции
		if user, ok := middleware.GetUser(ctx); ok && req.StationID == "" {
			req.StationID = user.StationID
		}
		return h.useCase.SubmitStockBatch(ctx, req)
	})
}

type submitFunc func(ctx context.Context, req *groupRequests.SubmitRequest) (*groupRequests.SubmitResult, error)

func (h *Handler) submit(w http.ResponseWriter, r *http.Request, route string, fn submitFunc) {
	var req SubmitBatchRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := fn(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, groupRequests.ErrInvalidRequest):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, groupRequests.ErrPartiallySubmitted):
			h.logger.Error("%s - Partially submitted: %v", route, err)
			handlers.RespondErrorDetails(w, http.StatusBadGateway, handlers.CodeBadGateway, msgPartiallySubmitted,
				SubmitResponse{Created: result.Created, Total: result.Total})

		default:
			if handlers.RespondUpstreamError(w, err, msgSubmitFailed) {
				return
			}
			h.logger.Error("%s - Failed to submit: %v", route, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Batch submitted: station_id=%s, lines=%d", route, req.StationID, result.Created)
	handlers.RespondJSON(w, http.StatusCreated, SubmitResponse{Created: result.Created, Total: result.Total})
}

func (h *Handler) respondListError(w http.ResponseWriter, route string, err error) {
	h.logger.Error("%s - Failed to list: %v", route, err)
	if !handlers.RespondUpstreamError(w, err, msgListFailed) {
		handlers.RespondInternalError(w)
	}
}
