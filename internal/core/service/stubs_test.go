package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/salonova/booking-client/internal/core/domain"
	"github.com/salonova/booking-client/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Shared stubs for the session manager and controller tests
// ---------------------------------------------------------------------------

type stubNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *stubNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, msg)
}

func (n *stubNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, msg)
}

func (n *stubNotifier) errorCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.errors)
}

type stubRedirector struct {
	surfaces []ports.Surface
}

func (r *stubRedirector) Redirect(target ports.Surface) {
	r.surfaces = append(r.surfaces, target)
}

type stubStore struct {
	token    string
	loadErr  error
	saveErr  error
	clearErr error
	saves    int
	clears   int
}

func (s *stubStore) Load() (string, error) {
	return s.token, s.loadErr
}

func (s *stubStore) Save(token string) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.token = token
	return nil
}

func (s *stubStore) Clear() error {
	if s.clearErr != nil {
		return s.clearErr
	}
	s.clears++
	s.token = ""
	return nil
}

type stubAuthGateway struct {
	loginToken  string
	loginErr    error
	loginCalls  int
	lastCreds   ports.Credentials
	signUpToken string
	signUpErr   error
	signUpCalls int
}

func (g *stubAuthGateway) Login(_ context.Context, creds ports.Credentials) (string, error) {
	g.loginCalls++
	g.lastCreds = creds
	if g.loginErr != nil {
		return "", g.loginErr
	}
	return g.loginToken, nil
}

func (g *stubAuthGateway) SignUp(_ context.Context, _ ports.SignUpInput) (string, error) {
	g.signUpCalls++
	if g.signUpErr != nil {
		return "", g.signUpErr
	}
	return g.signUpToken, nil
}

func (g *stubAuthGateway) ChangePassword(_ context.Context, _, _ string) error    { return nil }
func (g *stubAuthGateway) RequestPasswordReset(_ context.Context, _ string) error { return nil }

// permitGuard lets every mutation through; dedup behaviour is covered by the
// tests that use the real guard.
type permitGuard struct{}

func (permitGuard) Begin(string) bool { return true }
func (permitGuard) End(string)        {}

// stubBookingGateway behaves like a tiny remote server: mutations edit the
// held collection, and List returns a fresh copy the way a refetch would.
type stubBookingGateway struct {
	mu       sync.Mutex
	bookings []domain.Booking

	listErr   error
	createErr error
	acceptErr error
	cancelErr error
	deleteErr error

	listCalls   int
	createCalls int
	acceptCalls int
	cancelCalls int
	deleteCalls int

	// When set, AcceptBooking signals acceptStarted and then blocks until
	// acceptRelease is closed. Used to hold a mutation in flight.
	acceptStarted chan struct{}
	acceptRelease chan struct{}
}

func (g *stubBookingGateway) ListBookings(_ context.Context) ([]domain.Booking, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listCalls++
	if g.listErr != nil {
		return nil, g.listErr
	}
	out := make([]domain.Booking, len(g.bookings))
	copy(out, g.bookings)
	return out, nil
}

func (g *stubBookingGateway) CreateBooking(_ context.Context, in ports.BookingInput) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.createCalls++
	if g.createErr != nil {
		return g.createErr
	}
	g.bookings = append(g.bookings, domain.Booking{
		ID:        strconv.Itoa(len(g.bookings) + 1),
		UserID:    in.UserID,
		ServiceID: in.ServiceID,
		DateTime:  in.DateTime,
		Status:    domain.BookingPending,
	})
	return nil
}

func (g *stubBookingGateway) AcceptBooking(_ context.Context, id string) error {
	if g.acceptStarted != nil {
		g.acceptStarted <- struct{}{}
		<-g.acceptRelease
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.acceptCalls++
	if g.acceptErr != nil {
		return g.acceptErr
	}
	g.setStatus(id, domain.BookingConfirmed)
	return nil
}

func (g *stubBookingGateway) CancelBooking(_ context.Context, id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cancelCalls++
	if g.cancelErr != nil {
		return g.cancelErr
	}
	g.setStatus(id, domain.BookingCancelled)
	return nil
}

func (g *stubBookingGateway) DeleteBooking(_ context.Context, id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.deleteCalls++
	if g.deleteErr != nil {
		return g.deleteErr
	}
	for i, b := range g.bookings {
		if b.ID == id {
			g.bookings = append(g.bookings[:i], g.bookings[i+1:]...)
			return nil
		}
	}
	return nil
}

func (g *stubBookingGateway) setStatus(id string, status domain.BookingStatus) {
	for i := range g.bookings {
		if g.bookings[i].ID == id {
			g.bookings[i].Status = status
		}
	}
}

type stubServiceGateway struct {
	services []domain.Service

	listErr   error
	createErr error
	updateErr error
	deleteErr error

	createCalls int
	updateCalls int
	deleteCalls int
}

func (g *stubServiceGateway) ListServices(_ context.Context) ([]domain.Service, error) {
	if g.listErr != nil {
		return nil, g.listErr
	}
	out := make([]domain.Service, len(g.services))
	copy(out, g.services)
	return out, nil
}

func (g *stubServiceGateway) CreateService(_ context.Context, in ports.ServiceInput) error {
	g.createCalls++
	if g.createErr != nil {
		return g.createErr
	}
	g.services = append(g.services, domain.Service{
		ID:              strconv.Itoa(len(g.services) + 1),
		ServiceName:     in.ServiceName,
		Description:     in.Description,
		DurationMinutes: in.DurationMinutes,
		PriceEUR:        in.PriceEUR,
		CreatedAt:       time.Now().UTC(),
	})
	return nil
}

func (g *stubServiceGateway) UpdateService(_ context.Context, id string, in ports.ServiceInput) error {
	g.updateCalls++
	if g.updateErr != nil {
		return g.updateErr
	}
	for i := range g.services {
		if g.services[i].ID == id {
			g.services[i].ServiceName = in.ServiceName
			g.services[i].Description = in.Description
			g.services[i].DurationMinutes = in.DurationMinutes
			g.services[i].PriceEUR = in.PriceEUR
		}
	}
	return nil
}

func (g *stubServiceGateway) DeleteService(_ context.Context, id string) error {
	g.deleteCalls++
	if g.deleteErr != nil {
		return g.deleteErr
	}
	for i, s := range g.services {
		if s.ID == id {
			g.services = append(g.services[:i], g.services[i+1:]...)
			return nil
		}
	}
	return nil
}

// yesConfirmer and noConfirmer stand in for the confirmation dialog.
type yesConfirmer struct{ calls int }

func (c *yesConfirmer) Confirm(string) bool {
	c.calls++
	return true
}

type noConfirmer struct{ calls int }

func (c *noConfirmer) Confirm(string) bool {
	c.calls++
	return false
}
