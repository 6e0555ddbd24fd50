package complaints

import "github.com/m04kA/SMC-SwapPortal/internal/domain"

// CreateRequest новая жалоба водителя
type CreateRequest struct {
	ReservationID string
	Title         string
	Description   string
}

// Details жалоба и признак доступности записи на осмотр
type Details struct {
	domain.Complaint
	CanScheduleInspection bool
}
