package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/salonova/booking-client/internal/core/domain"
	"github.com/salonova/booking-client/internal/core/ports"
)

// BookingController synchronizes bookings and mirrors the server's status
// state machine: an action is offered only when the booking's last-known
// status allows it, and a direct invocation against an illegal status is
// rejected locally before any request is sent. The server stays the final
// authority: a transition that became illegal between refetches is simply
// rejected remotely and surfaced like any other API failure.
type BookingController struct {
	controller[domain.Booking]
	gw        ports.BookingGateway
	session   *SessionManager
	confirmer ports.Confirmer
	validate  *payloadValidator
}

func NewBookingController(
	gw ports.BookingGateway,
	session *SessionManager,
	guard MutationGuard,
	notifier ports.Notifier,
	confirmer ports.Confirmer,
	log zerolog.Logger,
) *BookingController {
	return &BookingController{
		controller: newController("bookings", gw.ListBookings, guard, notifier, log),
		gw:         gw,
		session:    session,
		confirmer:  confirmer,
		validate:   newPayloadValidator(),
	}
}

// Create requests a new booking for a service at a point in time.
func (c *BookingController) Create(ctx context.Context, in ports.BookingInput) bool {
	if !c.session.IsAuthenticated() {
		c.notifier.Error(domain.ErrNotAuthenticated.Error())
		return false
	}
	if err := c.validate.Struct(in); err != nil {
		c.notifier.Error(err.Error())
		return false
	}
	return c.mutate(ctx, "create", "", "Booking created successfully", "Failed to create booking",
		func(ctx context.Context) error { return c.gw.CreateBooking(ctx, in) })
}

// Accept confirms a booking. Legal only from PENDING.
func (c *BookingController) Accept(ctx context.Context, id string) bool {
	status, ok := c.statusOf(id)
	if !ok {
		c.notifier.Error(domain.ErrUnknownBooking.Error())
		return false
	}
	if !status.CanAccept() {
		c.notifier.Error(domain.ErrInvalidTransition.Error() + ": cannot accept a " + string(status) + " booking")
		return false
	}
	return c.mutate(ctx, "accept", id, "Booking accepted successfully", "Failed to accept booking",
		func(ctx context.Context) error { return c.gw.AcceptBooking(ctx, id) })
}

// Cancel cancels a booking. Legal from PENDING or CONFIRMED.
func (c *BookingController) Cancel(ctx context.Context, id string) bool {
	status, ok := c.statusOf(id)
	if !ok {
		c.notifier.Error(domain.ErrUnknownBooking.Error())
		return false
	}
	if !status.CanCancel() {
		c.notifier.Error(domain.ErrInvalidTransition.Error() + ": cannot cancel a " + string(status) + " booking")
		return false
	}
	return c.mutate(ctx, "cancel", id, "Booking cancelled successfully", "Failed to cancel booking",
		func(ctx context.Context) error { return c.gw.CancelBooking(ctx, id) })
}

// Delete removes a cancelled booking entirely. This is a cleanup action,
// not a status transition, and requires explicit confirmation.
func (c *BookingController) Delete(ctx context.Context, id string) bool {
	status, ok := c.statusOf(id)
	if !ok {
		c.notifier.Error(domain.ErrUnknownBooking.Error())
		return false
	}
	if !status.CanDelete() {
		c.notifier.Error(domain.ErrInvalidTransition.Error() + ": only cancelled bookings can be deleted")
		return false
	}
	if !c.confirmer.Confirm("Delete booking " + id + "? This cannot be undone.") {
		c.log.Debug().Str("id", id).Msg("deletion declined")
		return false
	}
	return c.mutate(ctx, "delete", id, "Booking deleted successfully", "Failed to delete booking",
		func(ctx context.Context) error { return c.gw.DeleteBooking(ctx, id) })
}

// Actions reports which operations may be offered for a booking, based on
// its last-known status.
func (c *BookingController) Actions(id string) (accept, cancel, del bool) {
	status, ok := c.statusOf(id)
	if !ok {
		return false, false, false
	}
	return status.CanAccept(), status.CanCancel(), status.CanDelete()
}

// statusOf looks up a booking's status in the last fetched collection.
func (c *BookingController) statusOf(id string) (domain.BookingStatus, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, b := range c.items {
		if b.ID == id {
			return b.Status, true
		}
	}
	return "", false
}
