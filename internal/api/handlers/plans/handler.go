package plans

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SwapPortal/internal/api/handlers"
	managePlans "github.com/m04kA/SMC-SwapPortal/internal/usecase/manage_plans"
)

const (
	msgInvalidRequest = "invalid request body"
	msgInvalidPlan    = "please correct the highlighted fields"
	msgPlanNotFound   = "plan not found"
	msgPlanInUse      = "this plan has subscribers and cannot be removed"
	msgSaveFailed     = "could not save the plan, please try again"
)

type Handler struct {
	useCase PlansUseCase
	logger  Logger
}

func NewHandler(useCase PlansUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Get GET /api/v1/portal/admin/plans/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	planID := mux.Vars(r)["id"]
	plan, err := h.useCase.Get(r.Context(), planID)
	if err != nil {
		h.respondError(w, "GET /admin/plans/{id}", planID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(plan))
}

// Create POST /api/v1/portal/admin/plans
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req PlanRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/plans - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	plan, err := h.useCase.Create(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		h.respondError(w, "POST /admin/plans", "", err)
		return
	}

	h.logger.Info("POST /admin/plans - Plan created: plan_id=%s", plan.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(plan))
}

// Update PUT /api/v1/portal/admin/plans/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	planID := mux.Vars(r)["id"]

	var req PlanRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/plans/{id} - Invalid request body: plan_id=%s, error=%v", planID, err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	plan, err := h.useCase.Update(r.Context(), planID, req.ToUseCaseRequest())
	if err != nil {
		h.respondError(w, "PUT /admin/plans/{id}", planID, err)
		return
	}

	h.logger.Info("PUT /admin/plans/{id} - Plan updated: plan_id=%s", planID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(plan))
}

// Delete DELETE /api/v1/portal/admin/plans/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	planID := mux.Vars(r)["id"]
	if err := h.useCase.Delete(r.Context(), planID); err != nil {
		h.respondError(w, "DELETE /admin/plans/{id}", planID, err)
		return
	}

	h.logger.Info("DELETE /admin/plans/{id} - Plan deleted: plan_id=%s", planID)
	handlers.RespondNoContent(w)
}

func (h *Handler) respondError(w http.ResponseWriter, route, planID string, err error) {
	var validationErr *managePlans.ValidationError

	switch {
	case errors.As(err, &validationErr):
		handlers.RespondValidation(w, msgInvalidPlan, validationErr.Fields)

	case errors.Is(err, managePlans.ErrPlanNotFound):
		h.logger.Warn("%s - Plan not found: plan_id=%s", route, planID)
		handlers.RespondNotFound(w, msgPlanNotFound)

	case errors.Is(err, managePlans.ErrPlanInUse):
		handlers.RespondConflict(w, msgPlanInUse)

	default:
		if handlers.RespondUpstreamError(w, err, msgSaveFailed) {
			return
		}
		h.logger.Error("%s - Failed: plan_id=%s, error=%v", route, planID, err)
		handlers.RespondInternalError(w)
	}
}
