package swapapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
)

// ListMySubscriptions все подписки текущего водителя
func (c *Client) ListMySubscriptions(ctx context.Context) ([]domain.SubscriptionInfo, error) {
	var resp []subscriptionResponse
	if err := c.call(ctx, "ListMySubscriptions", http.MethodGet, "/api/v1/subscriptions/mine/all", nil, nil, &resp); err != nil {
		return nil, err
	}
	subs := make([]domain.SubscriptionInfo, 0, len(resp))
	for _, s := range resp {
		subs = append(subs, s.toDomain())
	}
	return subs, nil
}

// CancelMySubscription отменяет активную подписку
func (c *Client) CancelMySubscription(ctx context.Context) error {
	return c.call(ctx, "CancelMySubscription", http.MethodPut, "/api/v1/subscriptions/mine/cancel", nil, nil, nil)
}

// ListPlans тарифы подписок
func (c *Client) ListPlans(ctx context.Context) ([]domain.SubscriptionPlan, error) {
	var resp []planResponse
	if err := c.call(ctx, "ListPlans", http.MethodGet, "/api/v1/subscription-plans", nil, nil, &resp); err != nil {
		return nil, err
	}
	plans := make([]domain.SubscriptionPlan, 0, len(resp))
	for _, p := range resp {
		plans = append(plans, p.toDomain())
	}
	return plans, nil
}

// GetPlan тариф по id
func (c *Client) GetPlan(ctx context.Context, id string) (*domain.SubscriptionPlan, error) {
	var resp planResponse
	if err := c.call(ctx, "GetPlan", http.MethodGet, planPath(id), nil, nil, &resp); err != nil {
		return nil, err
	}
	plan := resp.toDomain()
	return &plan, nil
}

// CreatePlan создание тарифа (админ)
func (c *Client) CreatePlan(ctx context.Context, req PlanRequest) (*domain.SubscriptionPlan, error) {
	var resp planResponse
	if err := c.call(ctx, "CreatePlan", http.MethodPost, "/api/v1/subscription-plans", nil, req, &resp); err != nil {
		return nil, err
	}
	plan := resp.toDomain()
	return &plan, nil
}

// UpdatePlan изменение тарифа (админ)
func (c *Client) UpdatePlan(ctx context.Context, id string, req PlanRequest) (*domain.SubscriptionPlan, error) {
	var resp planResponse
	if err := c.call(ctx, "UpdatePlan", http.MethodPut, planPath(id), nil, req, &resp); err != nil {
		return nil, err
	}
	plan := resp.toDomain()
	if plan.ID == "" {
		plan.ID = id
	}
	return &plan, nil
}

// DeletePlan удаление тарифа (админ)
func (c *Client) DeletePlan(ctx context.Context, id string) error {
	return c.call(ctx, "DeletePlan", http.MethodDelete, planPath(id), nil, nil, nil)
}

// SwapHistory история замен, страницы считает backend
func (c *Client) SwapHistory(ctx context.Context, page, pageSize int) (*SwapHistoryPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("pageSize", strconv.Itoa(pageSize))

	var resp swapHistoryResponse
	if err := c.call(ctx, "SwapHistory", http.MethodGet, "/api/v1/swaps/history", query, nil, &resp); err != nil {
		return nil, err
	}

	result := &SwapHistoryPage{
		Items:      make([]domain.SwapRecord, 0, len(resp.Items)),
		Page:       resp.Page,
		PageSize:   resp.PageSize,
		TotalItems: resp.TotalItems,
		TotalPages: resp.TotalPages,
	}
	for _, item := range resp.Items {
		result.Items = append(result.Items, item.toDomain())
	}
	return result, nil
}

func planPath(id string) string {
	return "/api/v1/subscription-plans/" + url.PathEscape(id)
}
