package booking_wizard

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/skip2/go-qrcode"

	"github.com/m04kA/SMC-SwapPortal/internal/api/handlers"
	"github.com/m04kA/SMC-SwapPortal/internal/api/middleware"
	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	"github.com/m04kA/SMC-SwapPortal/internal/service/wizards"
	bookingWizard "github.com/m04kA/SMC-SwapPortal/internal/usecase/booking_wizard"
)

const qrSize = 256

const (
	msgInvalidRequestBody    = "invalid request body"
	msgInvalidDate           = "invalid date, expected YYYY-MM-DD"
	msgInvalidPaymentMethod  = "unknown payment method, expected VNPay or Cash"
	msgWizardNotFound        = "booking session not found or expired, please start again"
	msgForbidden             = "this booking session belongs to another user"
	msgStationNotFound       = "station not found"
	msgStationInactive       = "this station is not accepting bookings"
	msgNoVehicles            = "add a vehicle to your account before booking a swap"
	msgLoadFailed            = "could not load booking data, please try again"
	msgWrongStep             = "this action is not available on the current step"
	msgSelectionRequired     = "please make a selection before continuing"
	msgVehicleNotFound       = "vehicle not found"
	msgDateInPast            = "the booking date cannot be in the past"
	msgSlotsNotLoaded        = "time slots are not loaded yet"
	msgSlotNotFound          = "time slot not found"
	msgSlotNotSelectable     = "this time slot is full or has already started"
	msgPaymentNotApplicable  = "payment method is only chosen for pay-per-swap bookings"
	msgPaymentMethodRequired = "please choose a payment method"
	msgConfirmInProgress     = "the booking is already being confirmed"
	msgNoResult              = "this booking has no QR code"
	msgQRFailed              = "failed to render the QR code"
)

type Handler struct {
	useCase BookingWizardUseCase
	logger  Logger
}

func NewHandler(useCase BookingWizardUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Open POST /api/v1/portal/booking-wizards
func (h *Handler) Open(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "")
		return
	}

	var req OpenRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-wizards - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	view, err := h.useCase.Open(r.Context(), &bookingWizard.OpenRequest{
		OwnerID:   user.ID,
		StationID: req.StationID,
	})
	if err != nil {
		h.respondError(w, "POST /booking-wizards", err)
		return
	}

	h.logger.Info("POST /booking-wizards - Wizard opened: wizard_id=%s, station_id=%s", view.ID, req.StationID)
	handlers.RespondJSON(w, http.StatusCreated, FromView(view))
}

// Get GET /api/v1/portal/booking-wizards/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ref, ok := h.ref(w, r)
	if !ok {
		return
	}
	view, err := h.useCase.Get(r.Context(), ref)
	h.respondView(w, "GET /booking-wizards/{id}", view, err)
}

// SelectVehicle PUT /api/v1/portal/booking-wizards/{id}/vehicle
func (h *Handler) SelectVehicle(w http.ResponseWriter, r *http.Request) {
	ref, ok := h.ref(w, r)
	if !ok {
		return
	}
	var req SelectVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	view, err := h.useCase.SelectVehicle(r.Context(), ref, req.VehicleID)
	h.respondView(w, "PUT /booking-wizards/{id}/vehicle", view, err)
}

// SelectDate PUT /api/v1/portal/booking-wizards/{id}/date
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
	h.respondView(w, "PUT /booking-wizards/{id}/date", view, err)
}

// SelectSlot PUT /api/v1/portal/booking-wizards/{id}/slot
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
	h.respondView(w, "PUT /booking-wizards/{id}/slot", view, err)
}

// SelectPaymentMethod PUT /api/v1/portal/booking-wizards/{id}/payment-method
func (h *Handler) SelectPaymentMethod(w http.ResponseWriter, r *http.Request) {
	ref, ok := h.ref(w, r)
	if !ok {
		return
	}
	var req SelectPaymentMethodRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	method, err := domain.ParsePaymentMethod(req.Method)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidPaymentMethod)
		return
	}
	view, err := h.useCase.SelectPaymentMethod(r.Context(), ref, method)
	h.respondView(w, "PUT /booking-wizards/{id}/payment-method", view, err)
}

// Next POST /api/v1/portal/booking-wizards/{id}/next
func (h *Handler) Next(w http.ResponseWriter, r *http.Request) {
	ref, ok := h.ref(w, r)
	if !ok {
		return
	}
	view, err := h.useCase.Next(r.Context(), ref)
	h.respondView(w, "POST /booking-wizards/{id}/next", view, err)
}

// Back POST /api/v1/portal/booking-wizards/{id}/back
func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	ref, ok := h.ref(w, r)
	if !ok {
		return
	}
	view, err := h.useCase.Back(r.Context(), ref)
	h.respondView(w, "POST /booking-wizards/{id}/back", view, err)
}

// Confirm POST /api/v1/portal/booking-wizards/{id}/confirm
// Отказ backend возвращается как 200 с шагом 4 и полем error
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	ref, ok := h.ref(w, r)
	if !ok {
		return
	}
	view, err := h.useCase.Confirm(r.Context(), ref)
	h.respondView(w, "POST /booking-wizards/{id}/confirm", view, err)
}

// Close DELETE /api/v1/portal/booking-wizards/{id}
func (h *Handler) Close(w http.ResponseWriter, r *http.Request) {
	ref, ok := h.ref(w, r)
	if !ok {
		return
	}
	if err := h.useCase.Close(r.Context(), ref); err != nil {
		h.respondError(w, "DELETE /booking-wizards/{id}", err)
		return
	}
	handlers.RespondNoContent(w)
}

// QR GET /api/v1/portal/booking-wizards/{id}/qr
func (h *Handler) QR(w http.ResponseWriter, r *http.Request) {
	ref, ok := h.ref(w, r)
	if !ok {
		return
	}
	result, err := h.useCase.Result(r.Context(), ref)
	if err != nil {
		h.respondError(w, "GET /booking-wizards/{id}/qr", err)
		return
	}

	png, err := qrcode.Encode(result.QRContent(), qrcode.Medium, qrSize)
	if err != nil {
		h.logger.Error("GET /booking-wizards/{id}/qr - Failed to encode QR: wizard_id=%s, error=%v", ref.WizardID, err)
		handlers.RespondError(w, http.StatusInternalServerError, msgQRFailed)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

func (h *Handler) ref(w http.ResponseWriter, r *http.Request) (bookingWizard.Ref, bool) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "")
		return bookingWizard.Ref{}, false
	}
	return bookingWizard.Ref{OwnerID: user.ID, WizardID: mux.Vars(r)["id"]}, true
}

func (h *Handler) respondView(w http.ResponseWriter, route string, view *bookingWizard.View, err error) {
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
	case errors.Is(err, bookingWizard.ErrStationNotFound):
		handlers.RespondNotFound(w, msgStationNotFound)
	case errors.Is(err, bookingWizard.ErrStationInactive):
		handlers.RespondConflict(w, msgStationInactive)
	case errors.Is(err, bookingWizard.ErrNoVehicles):
		handlers.RespondConflict(w, msgNoVehicles)
	case errors.Is(err, bookingWizard.ErrWrongStep):
		handlers.RespondConflict(w, msgWrongStep)
	case errors.Is(err, bookingWizard.ErrSelectionRequired):
		handlers.RespondConflict(w, msgSelectionRequired)
	case errors.Is(err, bookingWizard.ErrConfirmInProgress):
		handlers.RespondConflict(w, msgConfirmInProgress)
	case errors.Is(err, bookingWizard.ErrVehicleNotFound):
		handlers.RespondNotFound(w, msgVehicleNotFound)
	case errors.Is(err, bookingWizard.ErrSlotNotFound):
		handlers.RespondNotFound(w, msgSlotNotFound)
	case errors.Is(err, bookingWizard.ErrNoResult):
		handlers.RespondNotFound(w, msgNoResult)
	case errors.Is(err, bookingWizard.ErrDateInPast):
		handlers.RespondBadRequest(w, msgDateInPast)
	case errors.Is(err, bookingWizard.ErrSlotsNotLoaded):
		handlers.RespondConflict(w, msgSlotsNotLoaded)
	case errors.Is(err, bookingWizard.ErrSlotNotSelectable):
		handlers.RespondConflict(w, msgSlotNotSelectable)
	case errors.Is(err, bookingWizard.ErrPaymentMethodNotApplicable):
		handlers.RespondBadRequest(w, msgPaymentNotApplicable)
	case errors.Is(err, bookingWizard.ErrPaymentMethodRequired):
		handlers.RespondConflict(w, msgPaymentMethodRequired)
	case errors.Is(err, bookingWizard.ErrInvalidInput):
		handlers.RespondBadRequest(w, err.Error())
	case errors.Is(err, bookingWizard.ErrLoadFailed):
		h.logger.Error("%s - Failed to load wizard data: %v", route, err)
		if !handlers.RespondUpstreamError(w, err, msgLoadFailed) {
			handlers.RespondBadGateway(w, msgLoadFailed)
		}
	default:
		h.logger.Error("%s - Unexpected error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
