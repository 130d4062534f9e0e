package domain

import (
	"errors"
	"time"
)

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// validTransitions defines the allowed state machine transitions.
// CANCELLED is terminal: the only action left is deletion, which removes
// the record entirely and is not a status transition.
var validTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCancelled},
	BookingCancelled: {},
}

var ErrInvalidTransition = errors.New("invalid status transition")
var ErrUnknownBooking = errors.New("booking not found in last fetched collection")
var ErrUnknownStatus = errors.New("unknown booking status")
var ErrNotAuthenticated = errors.New("not authenticated")
var ErrForbidden = errors.New("operation requires an admin session")

// ParseBookingStatus converts a wire string into a BookingStatus,
// rejecting values outside the closed set.
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return BookingStatus(s), nil
	}
	return "", ErrUnknownStatus
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// CanAccept reports whether the accept action may be offered.
func (s BookingStatus) CanAccept() bool {
	switch s {
	case BookingPending:
		return true
	case BookingConfirmed, BookingCancelled:
		return false
	}
	return false
}

// CanCancel reports whether the cancel action may be offered.
func (s BookingStatus) CanCancel() bool {
	switch s {
	case BookingPending, BookingConfirmed:
		return true
	case BookingCancelled:
		return false
	}
	return false
}

// CanDelete reports whether the delete cleanup action may be offered.
// Deletion is only available once a booking has reached its terminal status.
func (s BookingStatus) CanDelete() bool {
	switch s {
	case BookingCancelled:
		return true
	case BookingPending, BookingConfirmed:
		return false
	}
	return false
}

// Booking is a reservation of a service at a point in time. UserID and
// ServiceID are weak references: the booking relates to those records but
// never owns them.
type Booking struct {
	ID        string        `json:"id"`
	UserID    string        `json:"user_id"`
	ServiceID string        `json:"service_id"`
	DateTime  time.Time     `json:"date_time"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
