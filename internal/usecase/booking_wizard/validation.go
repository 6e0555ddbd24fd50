package booking_wizard

import "fmt"

// validateRef проверяет ссылку на сессию
func validateRef(ref Ref) error {
	if ref.OwnerID == "" {
		return fmt.Errorf("%w: owner is required", ErrInvalidInput)
	}
	if ref.WizardID == "" {
		return fmt.Errorf("%w: wizard id is required", ErrInvalidInput)
	}
	return nil
}

// validateOpen проверяет запрос на открытие визарда
func validateOpen(req *OpenRequest) error {
	if req.OwnerID == "" {
		return fmt.Errorf("%w: owner is required", ErrInvalidInput)
	}
	if req.StationID == "" {
		return fmt.Errorf("%w: station is required", ErrInvalidInput)
	}
	return nil
}
