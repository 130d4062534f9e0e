package domain

import "time"

// Service is a bookable offering managed by operators. Created, updated and
// deleted only by ADMIN identities; the server enforces this, the client
// additionally refuses to send such mutations for non-admin sessions.
type Service struct {
	ID              string    `json:"id"`
	ServiceName     string    `json:"service_name"`
	Description     string    `json:"description"`
	DurationMinutes int       `json:"duration_minutes"`
	PriceEUR        float64   `json:"price_eur"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
