package listings

import (
	"context"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
)

// ListClient интерфейс клиента backend для справочных списков
type ListClient interface {
	ListStations(ctx context.Context) ([]domain.Station, error)
	ListPayments(ctx context.Context) ([]domain.Payment, error)
	ListComplaints(ctx context.Context) ([]domain.Complaint, error)
	ListCustomers(ctx context.Context) ([]domain.User, error)
	ListStaff(ctx context.Context) ([]domain.User, error)
	ListPlans(ctx context.Context) ([]domain.SubscriptionPlan, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
