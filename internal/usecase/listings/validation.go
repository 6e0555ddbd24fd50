package listings

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SwapPortal/internal/integrations/swapapi"
)

const maxPageSize = 100

// validateRange проверяет, что минимум не больше максимума
func validateRange(min, max *float64) error {
	if min != nil && *min < 0 {
		return fmt.Errorf("%w: minimum must not be negative", ErrInvalidFilter)
	}
	if min != nil && max != nil && *min > *max {
		return fmt.Errorf("%w: minimum %.2f is greater than maximum %.2f", ErrInvalidFilter, *min, *max)
	}
	return nil
}

func isAccessError(err error) bool {
	return errors.Is(err, swapapi.ErrUnauthorized) || errors.Is(err, swapapi.ErrForbidden)
}
