package api

import (
	"context"
	"net/http"

	"github.com/salonova/booking-client/internal/core/domain"
	"github.com/salonova/booking-client/internal/core/ports"
)

var _ ports.ServiceGateway = (*Client)(nil)

func (c *Client) ListServices(ctx context.Context) ([]domain.Service, error) {
	var services []domain.Service
	if err := c.request(ctx, http.MethodGet, "/services", nil, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (c *Client) CreateService(ctx context.Context, in ports.ServiceInput) error {
	return c.request(ctx, http.MethodPost, "/services", in, nil)
}

// serviceUpdateBody is the update payload: the id alongside the patch.
type serviceUpdateBody struct {
	ID string `json:"id"`
	ports.ServiceInput
}

func (c *Client) UpdateService(ctx context.Context, id string, in ports.ServiceInput) error {
	body := serviceUpdateBody{ID: id, ServiceInput: in}
	return c.request(ctx, http.MethodPut, "/services/"+id, body, nil)
}

func (c *Client) DeleteService(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, "/services/"+id, nil, nil)
}
