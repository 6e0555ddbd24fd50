package listings

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	"github.com/m04kA/SMC-SwapPortal/internal/integrations/swapapi"
	"github.com/m04kA/SMC-SwapPortal/pkg/listquery"
)

const msgListUnavailable = "Could not load the list. Please try again."

// UseCase фильтрация и постраничный вывод списков, полученных целиком из backend
type UseCase struct {
	client ListClient
	sizes  PageSizes
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client ListClient, sizes PageSizes, logger Logger) *UseCase {
	defaults := DefaultPageSizes()
	fill := func(v *int, d int) {
		if *v <= 0 {
			*v = d
		}
	}
	fill(&sizes.Stations, defaults.Stations)
	fill(&sizes.Payments, defaults.Payments)
	fill(&sizes.Complaints, defaults.Complaints)
	fill(&sizes.Customers, defaults.Customers)
	fill(&sizes.Staff, defaults.Staff)
	fill(&sizes.Plans, defaults.Plans)

	return &UseCase{
		client: client,
		sizes:  sizes,
		logger: logger,
	}
}

// Stations список станций
func (uc *UseCase) Stations(ctx context.Context, f StationFilter) (*Result[domain.Station], error) {
	q := listquery.New[domain.Station](uc.sizes.Stations).
		Filter("search", listquery.Contains(f.Search,
			func(s domain.Station) string { return s.Name },
			func(s domain.Station) string { return s.Address },
			func(s domain.Station) string { return s.City },
		)).
		Filter("city", listquery.Equals(f.City, func(s domain.Station) string { return s.City }))
	if f.ActiveOnly {
		q.Filter("active", func(s domain.Station) bool { return s.IsActive })
	}
	q.SetPage(f.Page)

	return load(ctx, uc, "Stations", uc.client.ListStations, q)
}

// Payments список платежей
func (uc *UseCase) Payments(ctx context.Context, f PaymentFilter) (*Result[domain.Payment], error) {
	if err := validateRange(f.MinAmount, f.MaxAmount); err != nil {
		return nil, err
	}

	q := listquery.New[domain.Payment](uc.sizes.Payments).
		Filter("search", listquery.Contains(f.Search,
			func(p domain.Payment) string { return p.CustomerName },
			func(p domain.Payment) string { return p.CustomerEmail },
			func(p domain.Payment) string { return p.ID },
		)).
		Filter("status", listquery.Equals(f.Status, func(p domain.Payment) domain.PaymentStatus { return p.Status })).
		Filter("method", listquery.Equals(f.Method, func(p domain.Payment) domain.PaymentMethod { return p.Method })).
		Filter("type", listquery.Equals(f.Type, func(p domain.Payment) domain.PaymentType { return p.Type })).
		Filter("date", listquery.SameDay(f.Date, func(p domain.Payment) time.Time { return p.CreatedAt })).
		Filter("amount", listquery.InRange(f.MinAmount, f.MaxAmount, func(p domain.Payment) float64 { return p.Amount })).
		SetPage(f.Page)

	return load(ctx, uc, "Payments", uc.client.ListPayments, q)
}

// Complaints список жалоб
func (uc *UseCase) Complaints(ctx context.Context, f ComplaintFilter) (*Result[domain.Complaint], error) {
	q := listquery.New[domain.Complaint](uc.sizes.Complaints).
		Filter("search", listquery.Contains(f.Search,
			func(c domain.Complaint) string { return c.Title },
			func(c domain.Complaint) string { return c.CustomerName },
			func(c domain.Complaint) string { return c.CustomerEmail },
			func(c domain.Complaint) string { return c.StationName },
		)).
		Filter("status", listquery.Equals(f.Status, func(c domain.Complaint) domain.ComplaintStatus { return c.Status })).
		Filter("date", listquery.SameDay(f.Date, func(c domain.Complaint) time.Time { return c.CreatedAt })).
		SetPage(f.Page)

	return load(ctx, uc, "Complaints", uc.client.ListComplaints, q)
}

// Customers список клиентов (admin)
func (uc *UseCase) Customers(ctx context.Context, f AccountFilter) (*Result[domain.User], error) {
	return load(ctx, uc, "Customers", uc.client.ListCustomers, accountQuery(uc.sizes.Customers, f))
}

// Staff список сотрудников (admin)
func (uc *UseCase) Staff(ctx context.Context, f AccountFilter) (*Result[domain.User], error) {
	return load(ctx, uc, "Staff", uc.client.ListStaff, accountQuery(uc.sizes.Staff, f))
}

// Plans список тарифов подписки
func (uc *UseCase) Plans(ctx context.Context, f PlanFilter) (*Result[domain.SubscriptionPlan], error) {
	if err := validateRange(f.MinPrice, f.MaxPrice); err != nil {
		return nil, err
	}
	if f.PageSize < 0 || f.PageSize > maxPageSize {
		return nil, fmt.Errorf("%w: page size must be between 1 and %d", ErrInvalidFilter, maxPageSize)
	}

	size := uc.sizes.Plans
	if f.PageSize > 0 {
		size = f.PageSize
	}
	q := listquery.New[domain.SubscriptionPlan](size).
		Filter("search", listquery.Contains(f.Search,
			func(p domain.SubscriptionPlan) string { return p.Name },
			func(p domain.SubscriptionPlan) string { return p.Description },
		)).
		Filter("active", listquery.Equals(f.Active, func(p domain.SubscriptionPlan) bool { return p.IsActive })).
		Filter("price", listquery.InRange(f.MinPrice, f.MaxPrice, func(p domain.SubscriptionPlan) float64 { return p.Price })).
		SetPage(f.Page)

	return load(ctx, uc, "Plans", uc.client.ListPlans, q)
}

func accountQuery(size int, f AccountFilter) *listquery.Query[domain.User] {
	return listquery.New[domain.User](size).
		Filter("search", listquery.Contains(f.Search,
			func(u domain.User) string { return u.FullName },
			func(u domain.User) string { return u.Email },
			func(u domain.User) string { return u.Phone },
		)).
		Filter("active", listquery.Equals(f.Active, func(u domain.User) bool { return u.IsActive })).
		SetPage(f.Page)
}

// load получает список и применяет фильтры. Ошибка backend даёт пустую страницу с сообщением,
// кроме 401/403: их решает вызывающий.
func load[T any](ctx context.Context, uc *UseCase, op string, fetch func(context.Context) ([]T, error), q *listquery.Query[T]) (*Result[T], error) {
	items, err := fetch(ctx)
	if err != nil {
		if isAccessError(err) {
			return nil, err
		}
		uc.logger.Error("Listings.%s: failed to load: %v", op, err)
		return &Result[T]{
			Page:   q.Apply(nil),
			Notice: swapapi.UserMessage(err, msgListUnavailable),
		}, nil
	}

	page := q.Apply(items)
	uc.logger.Info("Listings.%s: %d of %d items, page %d/%d", op, len(page.Items), page.TotalItems, page.Page, page.TotalPages)
	return &Result[T]{Page: page}, nil
}
