package inspection_wizard

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SwapPortal/internal/api/handlers"
	"github.com/m04kA/SMC-SwapPortal/internal/api/middleware"
	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	"github.com/m04kA/SMC-SwapPortal/internal/service/wizards"
	inspectionWizard "github.com/m04kA/SMC-SwapPortal/internal/usecase/inspection_wizard"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date, expected YYYY-MM-DD"
	msgWizardNotFound     = "inspection session not found or expired, please start again"
	msgForbidden          = "this inspection session belongs to another user"
	msgComplaintNotFound  = "complaint not found"
	msgNotAllowed         = "an inspection cannot be scheduled for this complaint"
	msgNoStations         = "no stations are available for inspection"
	msgLoadFailed         = "could not load inspection data, please try again"
	msgWrongStep          = "this action is not available on the current step"
	msgSelectionRequired  = "please make a selection before continuing"
	msgStationNotFound    = "station not found"
	msgDateInPast         = "the inspection date cannot be in the past"
	msgSlotNotFound       = "time slot not found"
	msgSlotNotSelectable  = "this time slot has already started"
	msgConfirmInProgress  = "the inspection is already being scheduled"
	msgAlreadyScheduled   = "the inspection is already scheduled"
)

type Handler struct {
	useCase InspectionWizardUseCase
	logger  Logger
}

func NewHandler(useCase InspectionWizardUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Open POST /api/v1/portal/inspection-wizards
func (h *Handler) Open(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "")
		return
	}

	var req OpenRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /inspection-wizards - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	view, err := h.useCase.Open(r.Context(), &inspectionWizard.OpenRequest{
		OwnerID:     user.ID,
		ComplaintID: req.ComplaintID,
	})
	if err != nil {
		h.respondError(w, "POST /inspection-wizards", err)
		return
	}

	h.logger.Info("POST /inspection-wizards - Wizard opened: wizard_id=%s, complaint_id=%s", view.ID, req.ComplaintID)
	handlers.RespondJSON(w, http.StatusCreated, FromView(view))
}

// Get GET /api/v1/portal/inspection-wizards/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ref, ok := h.ref(w, r)
	if !ok {
		return
	}
	view, err := h.useCase.Get(r.Context(), ref)
	h.respondView(w, "GET /inspection-wizards/{id}", view, err)
}

// SelectStation PUT /api/v1/portal/inspection-wizards/{id}/station
func (h *Handler) SelectStation(w http.ResponseWriter, r *http.Request) {
	ref, ok := h.ref(w, r)
	if !ok {
		return
	}
	var req SelectStationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	view, err := h.useCase.SelectStation(r.Context(), ref, req.StationID)
	h.respondView(w, "PUT /inspection-wizards/{id}/station", view, err)
}

// SelectDate PUT /api/v1/portal/inspection-wizards/{id}/date
func (h *Handler) SelectDate(w http.ResponseWriter, r *http.Request) {
	ref, ok := h.ref(w, r)
	if !ok {
		return
	}
	var req SelectDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	view, err := h.useCase.SelectDate(r.Context(), ref, date)
	h.respondView(w, "PUT /inspection-wizards/{id}/date", view, err)
}

// SelectSlot PUT /api/v1/portal/inspection-wizards/{id}/slot
func (h *Handler) SelectSlot(w http.ResponseWriter, r *http.Request) {
	ref, ok := h.ref(w, r)
	if !ok {
		return
	}
	var req SelectSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	view, err := h.useCase.SelectSlot(r.Context(), ref, req.SlotKey)
	h.respondView(w, "PUT /inspection-wizards/{id}/slot", view, err)
}

// Next POST /api/v1/portal/inspection-wizards/{id}/next
func (h *Handler) Next(w http.ResponseWriter, r *http.Request) {
	ref, ok := h.ref(w, r)
	if !ok {
		return
	}
	view, err := h.useCase.Next(r.Context(), ref)
	h.respondView(w, "POST /inspection-wizards/{id}/next", view, err)
}

// Back POST /api/v1/portal/inspection-wizards/{id}/back
func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	ref, ok := h.ref(w, r)
	if !ok {
		return
	}
	view, err := h.useCase.Back(r.Context(), ref)
	h.respondView(w, "POST /inspection-wizards/{id}/back", view, err)
}

// Confirm POST /api/v1/portal/inspection-wizards/{id}/confirm
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	ref, ok := h.ref(w, r)
	if !ok {
		return
	}
	view, err := h.useCase.Confirm(r.Context(), ref)
	h.respondView(w, "POST /inspection-wizards/{id}/confirm", view, err)
}

// Close DELETE /api/v1/portal/inspection-wizards/{id}
func (h *Handler) Close(w http.ResponseWriter, r *http.Request) {
	ref, ok := h.ref(w, r)
	if !ok {
		return
	}
	if err := h.useCase.Close(r.Context(), ref); err != nil {
		h.respondError(w, "DELETE /inspection-wizards/{id}", err)
		return
	}
	handlers.RespondNoContent(w)
}

func (h *Handler) ref(w http.ResponseWriter, r *http.Request) (inspectionWizard.Ref, bool) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "")
		return inspectionWizard.Ref{}, false
	}
	return inspectionWizard.Ref{OwnerID: user.ID, WizardID: mux.Vars(r)["id"]}, true
}

func (h *Handler) respondView(w http.ResponseWriter, route string, view *inspectionWizard.View, err error) {
	if err != nil {
		h.respondError(w, route, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromView(view))
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, wizards.ErrNotFound):
		handlers.RespondNotFound(w, msgWizardNotFound)
	case errors.Is(err, wizards.ErrForbidden):
		h.logger.Warn("%s - Access denied: %v", route, err)
		handlers.RespondForbidden(w, msgForbidden)
	case errors.Is(err, inspectionWizard.ErrComplaintNotFound):
		handlers.RespondNotFound(w, msgComplaintNotFound)
	case errors.Is(err, inspectionWizard.ErrInspectionNotAllowed):
		handlers.RespondConflict(w, msgNotAllowed)
	case errors.Is(err, inspectionWizard.ErrNoStations):
		handlers.RespondConflict(w, msgNoStations)
	case errors.Is(err, inspectionWizard.ErrWrongStep):
		handlers.RespondConflict(w, msgWrongStep)
	case errors.Is(err, inspectionWizard.ErrSelectionRequired):
		handlers.RespondConflict(w, msgSelectionRequired)
	case errors.Is(err, inspectionWizard.ErrStationNotFound):
		handlers.RespondNotFound(w, msgStationNotFound)
	case errors.Is(err, inspectionWizard.ErrSlotNotFound):
		handlers.RespondNotFound(w, msgSlotNotFound)
	case errors.Is(err, inspectionWizard.ErrDateInPast):
		handlers.RespondBadRequest(w, msgDateInPast)
	case errors.Is(err, inspectionWizard.ErrSlotNotSelectable):
		handlers.RespondConflict(w, msgSlotNotSelectable)
	case errors.Is(err, inspectionWizard.ErrConfirmInProgress):
		handlers.RespondConflict(w, msgConfirmInProgress)
	case errors.Is(err, inspectionWizard.ErrAlreadyScheduled):
		handlers.RespondConflict(w, msgAlreadyScheduled)
	case errors.Is(err, inspectionWizard.ErrInvalidInput):
		handlers.RespondBadRequest(w, err.Error())
	case errors.Is(err, inspectionWizard.ErrLoadFailed):
		h.logger.Error("%s - Failed to load wizard data: %v", route, err)
		if !handlers.RespondUpstreamError(w, err, msgLoadFailed) {
			handlers.RespondBadGateway(w, msgLoadFailed)
		}
	default:
		h.logger.Error("%s - Unexpected error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
