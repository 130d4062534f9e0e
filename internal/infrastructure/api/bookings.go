package api

import (
	"context"
	"net/http"

	"github.com/salonova/booking-client/internal/core/domain"
	"github.com/salonova/booking-client/internal/core/ports"
)

var _ ports.BookingGateway = (*Client)(nil)

func (c *Client) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if err := c.request(ctx, http.MethodGet, "/bookings", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) CreateBooking(ctx context.Context, in ports.BookingInput) error {
	return c.request(ctx, http.MethodPost, "/bookings", in, nil)
}

func (c *Client) AcceptBooking(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodPut, "/bookings/"+id+"/accept", nil, nil)
}

func (c *Client) CancelBooking(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodPut, "/bookings/"+id+"/cancel", nil, nil)
}

func (c *Client) DeleteBooking(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, "/bookings/"+id, nil, nil)
}
