package subscriptions

import "fmt"

// validateHistory проверяет параметры страницы и подставляет значения по умолчанию
func validateHistory(req *HistoryRequest) error {
	if req.Page < 0 {
		return fmt.Errorf("%w: page must be positive", ErrInvalidInput)
	}
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize < 0 || req.PageSize > MaxHistoryPageSize {
		return fmt.Errorf("%w: page size must be between 1 and %d", ErrInvalidInput, MaxHistoryPageSize)
	}
	if req.PageSize == 0 {
		req.PageSize = DefaultHistoryPageSize
	}
	return nil
}
