package api

import (
	"context"
	"net/http"

	"github.com/salonova/booking-client/internal/core/domain"
	"github.com/salonova/booking-client/internal/core/ports"
)

var _ ports.UserGateway = (*Client)(nil)

func (c *Client) ListUsers(ctx context.Context) ([]domain.Identity, error) {
	var users []domain.Identity
	if err := c.request(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (*domain.Identity, error) {
	var user domain.Identity
	if err := c.request(ctx, http.MethodGet, "/users/"+id, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CurrentUser returns the account belonging to the active credential.
func (c *Client) CurrentUser(ctx context.Context) (*domain.Identity, error) {
	var user domain.Identity
	if err := c.request(ctx, http.MethodGet, "/users/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
