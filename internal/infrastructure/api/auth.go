package api

import (
	"context"
	"net/http"

	"github.com/salonova/booking-client/internal/core/ports"
)

var _ ports.AuthGateway = (*Client)(nil)

type tokenResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, creds ports.Credentials) (string, error) {
	var resp tokenResponse
	if err := c.request(ctx, http.MethodPost, "/users/login", creds, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// SignUp registers a new account and returns a bearer token.
func (c *Client) SignUp(ctx context.Context, in ports.SignUpInput) (string, error) {
	var resp tokenResponse
	if err := c.request(ctx, http.MethodPost, "/users/sign-up", in, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

type changePasswordBody struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	body := changePasswordBody{OldPassword: oldPassword, NewPassword: newPassword}
	return c.request(ctx, http.MethodPut, "/users/passwords", body, nil)
}

type passwordResetBody struct {
	Email string `json:"email"`
}

func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	return c.request(ctx, http.MethodPut, "/users/passwords/reset", passwordResetBody{Email: email}, nil)
}
