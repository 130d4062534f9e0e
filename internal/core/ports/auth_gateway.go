package ports

import (
	"context"

	"github.com/salonova/booking-client/internal/core/domain"
)

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignUpInput is the full registration payload. Email uniqueness is
// validated by the server only.
type SignUpInput struct {
	FirstName   string          `json:"first_name"   validate:"required"`
	LastName    string          `json:"last_name"    validate:"required"`
	Email       string          `json:"email"        validate:"required,email"`
	PhoneNumber string          `json:"phone_number" validate:"required"`
	Password    string          `json:"password"     validate:"required,min=8"`
	Type        domain.UserType `json:"type"         validate:"required,oneof=ADMIN USER"`
}

// AuthGateway covers the authentication endpoints of the remote API.
type AuthGateway interface {
	// Login exchanges credentials for an opaque bearer token.
	Login(ctx context.Context, creds Credentials) (string, error)
	// SignUp registers a new account and returns a bearer token.
	SignUp(ctx context.Context, in SignUpInput) (string, error)
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error
	RequestPasswordReset(ctx context.Context, email string) error
}

// UserGateway covers the account read endpoints.
type UserGateway interface {
	ListUsers(ctx context.Context) ([]domain.Identity, error)
	GetUser(ctx context.Context, id string) (*domain.Identity, error)
	// CurrentUser returns the account belonging to the active credential.
	CurrentUser(ctx context.Context) (*domain.Identity, error)
}
