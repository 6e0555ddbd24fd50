package complaints

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SwapPortal/internal/api/handlers"
	complaintsUC "github.com/m04kA/SMC-SwapPortal/internal/usecase/complaints"
)

const (
	msgInvalidRequest    = "invalid request body"
	msgInvalidComplaint  = "please correct the highlighted fields"
	msgComplaintNotFound = "complaint not found"
	msgSubmitFailed      = "could not submit the complaint, please try again"
	msgLoadFailed        = "could not load the complaint, please try again"
)

type Handler struct {
	useCase ComplaintsUseCase
	logger  Logger
}

func NewHandler(useCase ComplaintsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Create POST /api/v1/portal/complaints
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateComplaintRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /complaints - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	result, err := h.useCase.Create(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var validationErr *complaintsUC.ValidationError

		switch {
		case errors.As(err, &validationErr):
			handlers.RespondValidation(w, msgInvalidComplaint, validationErr.Fields)

		default:
			if handlers.RespondUpstreamError(w, err, msgSubmitFailed) {
				return
			}
			h.logger.Error("POST /complaints - Failed to submit complaint: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /complaints - Complaint submitted: complaint_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDetails(result))
}

// Get GET /api/v1/portal/complaints/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	complaintID := mux.Vars(r)["id"]

	result, err := h.useCase.Get(r.Context(), complaintID)
	if err != nil {
		switch {
		case errors.Is(err, complaintsUC.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgComplaintNotFound)

		case errors.Is(err, complaintsUC.ErrComplaintNotFound):
			h.logger.Warn("GET /complaints/{id} - Complaint not found: complaint_id=%s", complaintID)
			handlers.RespondNotFound(w, msgComplaintNotFound)

		default:
			if handlers.RespondUpstreamError(w, err, msgLoadFailed) {
				return
			}
			h.logger.Error("GET /complaints/{id} - Failed to get complaint: complaint_id=%s, error=%v", complaintID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDetails(result))
}
