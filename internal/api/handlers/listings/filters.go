package listings

import (
	"fmt"
	"net/url"

	"github.com/m04kA/SMC-SwapPortal/internal/api/handlers"
	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	listingsUC "github.com/m04kA/SMC-SwapPortal/internal/usecase/listings"
)

// Фильтры разбираются из query: search, page и поля конкретного экрана

func stationFilter(q url.Values) (listingsUC.StationFilter, error) {
	page, err := handlers.QueryInt(q, "page", 1)
	if err != nil {
		return listingsUC.StationFilter{}, err
	}
	active, err := handlers.QueryBool(q, "activeOnly")
	if err != nil {
		return listingsUC.StationFilter{}, err
	}
	return listingsUC.StationFilter{
		Search:     q.Get("search"),
		City:       handlers.QueryString(q, "city"),
		ActiveOnly: active != nil && *active,
		Page:       page,
	}, nil
}

func paymentFilter(q url.Values) (listingsUC.PaymentFilter, error) {
	var (
		f   listingsUC.PaymentFilter
		err error
	)
	f.Search = q.Get("search")
	if f.Page, err = handlers.QueryInt(q, "page", 1); err != nil {
		return f, err
	}
	if s := handlers.QueryString(q, "status"); s != nil {
		status := domain.PaymentStatus(*s)
		f.Status = &status
	}
	if s := handlers.QueryString(q, "type"); s != nil {
		paymentType := domain.PaymentType(*s)
		f.Type = &paymentType
	}
	if s := handlers.QueryString(q, "method"); s != nil {
		method, err := domain.ParsePaymentMethod(*s)
		if err != nil {
			return f, fmt.Errorf("method: %w", err)
		}
		f.Method = &method
	}
	if f.Date, err = handlers.QueryDate(q, "date", domain.DateFormat); err != nil {
		return f, err
	}
	if f.MinAmount, err = handlers.QueryFloat(q, "minAmount"); err != nil {
		return f, err
	}
	if f.MaxAmount, err = handlers.QueryFloat(q, "maxAmount"); err != nil {
		return f, err
	}
	return f, nil
}

func complaintFilter(q url.Values) (listingsUC.ComplaintFilter, error) {
	var (
		f   listingsUC.ComplaintFilter
		err error
	)
	f.Search = q.Get("search")
	if f.Page, err = handlers.QueryInt(q, "page", 1); err != nil {
		return f, err
	}
	if s := handlers.QueryString(q, "status"); s != nil {
		status := domain.ComplaintStatus(*s)
		f.Status = &status
	}
	if f.Date, err = handlers.QueryDate(q, "date", domain.DateFormat); err != nil {
		return f, err
	}
	return f, nil
}

func accountFilter(q url.Values) (listingsUC.AccountFilter, error) {
	var (
		f   listingsUC.AccountFilter
		err error
	)
	f.Search = q.Get("search")
	if f.Page, err = handlers.QueryInt(q, "page", 1); err != nil {
		return f, err
	}
	if f.Active, err = handlers.QueryBool(q, "active"); err != nil {
		return f, err
	}
	return f, nil
}

func planFilter(q url.Values) (listingsUC.PlanFilter, error) {
	var (
		f   listingsUC.PlanFilter
		err error
	)
	f.Search = q.Get("search")
	if f.Page, err = handlers.QueryInt(q, "page", 1); err != nil {
		return f, err
	}
	if f.PageSize, err = handlers.QueryInt(q, "pageSize", 0); err != nil {
		return f, err
	}
	if f.Active, err = handlers.QueryBool(q, "active"); err != nil {
		return f, err
	}
	if f.MinPrice, err = handlers.QueryFloat(q, "minPrice"); err != nil {
		return f, err
	}
	if f.MaxPrice, err = handlers.QueryFloat(q, "maxPrice"); err != nil {
		return f, err
	}
	return f, nil
}
