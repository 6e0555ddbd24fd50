package group_requests

import (
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
)

// validateSubmit проверяет партию перед отправкой
func validateSubmit(req *SubmitRequest) error {
	if req.StationID == "" {
		return fmt.Errorf("%w: station is required", ErrInvalidRequest)
	}
	if len(req.Lines) == 0 {
		return fmt.Errorf("%w: at least one battery model is required", ErrInvalidRequest)
	}
	if utf8.RuneCountInString(req.Comment) > domain.MaxRequestNoteLength {
		return fmt.Errorf("%w: comment is longer than %d characters", ErrInvalidRequest, domain.MaxRequestNoteLength)
	}

	seen := make(map[string]struct{}, len(req.Lines))
	for i, line := range req.Lines {
		if line.BatteryModelID == "" {
			return fmt.Errorf("%w: line %d: battery model is required", ErrInvalidRequest, i+1)
		}
		if line.Quantity <= 0 {
			return fmt.Errorf("%w: line %d: quantity must be positive", ErrInvalidRequest, i+1)
		}
		if _, dup := seen[line.BatteryModelID]; dup {
			return fmt.Errorf("%w: battery model %s is listed twice", ErrInvalidRequest, line.BatteryModelID)
		}
		seen[line.BatteryModelID] = struct{}{}
	}
	return nil
}
