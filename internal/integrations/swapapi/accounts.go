package swapapi

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
)

// ListCustomers аккаунты водителей (админ)
func (c *Client) ListCustomers(ctx context.Context) ([]domain.User, error) {
	return c.listUsers(ctx, "ListCustomers", "/api/v1/accounts/customers")
}

// ListStaff аккаунты персонала станций (админ)
func (c *Client) ListStaff(ctx context.Context) ([]domain.User, error) {
	return c.listUsers(ctx, "ListStaff", "/api/v1/accounts/staff")
}

func (c *Client) listUsers(ctx context.Context, op, path string) ([]domain.User, error) {
	var resp []userResponse
	if err := c.call(ctx, op, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(resp))
	for _, u := range resp {
		users = append(users, u.toDomain())
	}
	return users, nil
}
