package api

import (
	"context"
	"net/http"

	"github.com/salonova/booking-client/internal/core/domain"
	"github.com/salonova/booking-client/internal/core/ports"
)

var _ ports.BusinessGateway = (*Client)(nil)

func (c *Client) ListBusinesses(ctx context.Context) ([]domain.Business, error) {
	var businesses []domain.Business
	if err := c.request(ctx, http.MethodGet, "/businesses", nil, &businesses); err != nil {
		return nil, err
	}
	return businesses, nil
}

func (c *Client) ListMyBusinesses(ctx context.Context) ([]domain.Business, error) {
	var businesses []domain.Business
	if err := c.request(ctx, http.MethodGet, "/businesses/my", nil, &businesses); err != nil {
		return nil, err
	}
	return businesses, nil
}

func (c *Client) CreateBusiness(ctx context.Context, in ports.BusinessInput) error {
	return c.request(ctx, http.MethodPost, "/businesses", in, nil)
}

type businessUpdateBody struct {
	ID string `json:"id"`
	ports.BusinessInput
}

func (c *Client) UpdateBusiness(ctx context.Context, id string, in ports.BusinessInput) error {
	body := businessUpdateBody{ID: id, BusinessInput: in}
	return c.request(ctx, http.MethodPut, "/businesses/"+id, body, nil)
}

func (c *Client) DeleteBusiness(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, "/businesses/"+id, nil, nil)
}
