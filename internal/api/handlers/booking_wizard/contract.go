package booking_wizard

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	bookingWizard "github.com/m04kA/SMC-SwapPortal/internal/usecase/booking_wizard"
)

type BookingWizardUseCase interface {
	Open(ctx context.Context, req *bookingWizard.OpenRequest) (*bookingWizard.View, error)
	Get(ctx context.Context, ref bookingWizard.Ref) (*bookingWizard.View, error)
	SelectVehicle(ctx context.Context, ref bookingWizard.Ref, vehicleID string) (*bookingWizard.View, error)
	SelectDate(ctx context.Context, ref bookingWizard.Ref, date time.Time) (*bookingWizard.View, error)
	SelectSlot(ctx context.Context, ref bookingWizard.Ref, slotKey string) (*bookingWizard.View, error)
	SelectPaymentMethod(ctx context.Context, ref bookingWizard.Ref, method domain.PaymentMethod) (*bookingWizard.View, error)
	Next(ctx context.Context, ref bookingWizard.Ref) (*bookingWizard.View, error)
	Back(ctx context.Context, ref bookingWizard.Ref) (*bookingWizard.View, error)
	Confirm(ctx context.Context, ref bookingWizard.Ref) (*bookingWizard.View, error)
	Result(ctx context.Context, ref bookingWizard.Ref) (*domain.BookingResult, error)
	Close(ctx context.Context, ref bookingWizard.Ref) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
