package domain

import "time"

// Business is an operator-owned establishment offering services.
type Business struct {
	ID           string    `json:"id"`
	BusinessName string    `json:"business_name"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
