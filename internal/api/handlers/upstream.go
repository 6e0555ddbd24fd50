package handlers

import (
	"net/http"

	"github.com/m04kA/SMC-SwapPortal/internal/integrations/swapapi"
)

// RespondUpstreamError отвечает по виду ошибки backend.
// Возвращает false, если err не пришёл из backend.
func RespondUpstreamError(w http.ResponseWriter, err error, fallback string) bool {
	apiErr, ok := swapapi.AsAPIError(err)
	if !ok {
		return false
	}
	message := swapapi.UserMessage(apiErr, fallback)

	switch apiErr.Kind {
	case swapapi.KindValidation:
		if len(apiErr.FieldErrors) > 0 {
			RespondValidation(w, message, apiErr.FieldErrors)
		} else {
			RespondBadRequest(w, message)
		}
	case swapapi.KindUnauthorized:
		RespondUnauthorized(w, message)
	case swapapi.KindForbidden:
		RespondForbidden(w, message)
	case swapapi.KindNotFound:
		RespondNotFound(w, message)
	case swapapi.KindConflict:
		RespondConflict(w, message)
	case swapapi.KindRateLimited:
		RespondTooManyRequests(w, message, apiErr.RetryAfter)
	case swapapi.KindBusiness:
		RespondError(w, http.StatusUnprocessableEntity, message)
	default:
		RespondBadGateway(w, message)
	}
	return true
}
