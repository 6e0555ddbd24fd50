package listings

import (
	"time"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	"github.com/m04kA/SMC-SwapPortal/pkg/listquery"
)

// PageSizes размер страницы для каждого экрана
type PageSizes struct {
	Stations   int
	Payments   int
	Complaints int
	Customers  int
	Staff      int
	Plans      int
}

// DefaultPageSizes размеры страниц по умолчанию
func DefaultPageSizes() PageSizes {
	return PageSizes{
		Stations:   9,
		Payments:   10,
		Complaints: 10,
		Customers:  10,
		Staff:      10,
		Plans:      6,
	}
}

// StationFilter фильтр списка станций
type StationFilter struct {
	Search     string
	City       *string
	ActiveOnly bool
	Page       int
}

// PaymentFilter фильтр списка платежей
type PaymentFilter struct {
	Search    string
	Status    *domain.PaymentStatus
	Method    *domain.PaymentMethod
	Type      *domain.PaymentType
	Date      *time.Time
	MinAmount *float64
	MaxAmount *float64
	Page      int
}

// ComplaintFilter фильтр списка жалоб
type ComplaintFilter struct {
	Search string
	Status *domain.ComplaintStatus
	Date   *time.Time
	Page   int
}

// AccountFilter фильтр списков клиентов и сотрудников
type AccountFilter struct {
	Search string
	Active *bool
	Page   int
}

// PlanFilter фильтр списка тарифов; размер страницы можно менять только здесь
type PlanFilter struct {
	Search   string
	Active   *bool
	MinPrice *float64
	MaxPrice *float64
	Page     int
	PageSize int
}

// Result страница списка; Notice не пустой, если backend не ответил
type Result[T any] struct {
	Page   listquery.Page[T]
	Notice string
}
