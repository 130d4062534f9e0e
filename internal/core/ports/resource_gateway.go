package ports

import (
	"context"
	"time"

	"github.com/salonova/booking-client/internal/core/domain"
)

// ServiceInput carries the fields an operator may set on a service. The
// same shape is sent on create and on update (the update body additionally
// carries the id).
type ServiceInput struct {
	ServiceName     string  `json:"service_name"     validate:"required"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,gt=0"`
	PriceEUR        float64 `json:"price_eur"        validate:"gte=0"`
}

// BookingInput carries the data needed to request a booking.
type BookingInput struct {
	UserID    string    `json:"user_id"    validate:"required"`
	ServiceID string    `json:"service_id" validate:"required"`
	DateTime  time.Time `json:"date_time"  validate:"required"`
}

// BusinessInput carries the fields an operator may set on a business.
type BusinessInput struct {
	BusinessName string `json:"business_name" validate:"required"`
	Description  string `json:"description"`
}

// ServiceGateway covers the service resource endpoints.
type ServiceGateway interface {
	ListServices(ctx context.Context) ([]domain.Service, error)
	CreateService(ctx context.Context, in ServiceInput) error
	UpdateService(ctx context.Context, id string, in ServiceInput) error
	DeleteService(ctx context.Context, id string) error
}

// BookingGateway covers the booking resource endpoints. Accept and Cancel
// map to the server-side status transitions; Delete removes the record.
type BookingGateway interface {
	ListBookings(ctx context.Context) ([]domain.Booking, error)
	CreateBooking(ctx context.Context, in BookingInput) error
	AcceptBooking(ctx context.Context, id string) error
	CancelBooking(ctx context.Context, id string) error
	DeleteBooking(ctx context.Context, id string) error
}

// BusinessGateway covers the business resource endpoints.
type BusinessGateway interface {
	ListBusinesses(ctx context.Context) ([]domain.Business, error)
	ListMyBusinesses(ctx context.Context) ([]domain.Business, error)
	CreateBusiness(ctx context.Context, in BusinessInput) error
	UpdateBusiness(ctx context.Context, id string, in BusinessInput) error
	DeleteBusiness(ctx context.Context, id string) error
}
