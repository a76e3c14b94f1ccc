package domain

import "time"

// Service is a catalog entry. BasePrice is the price the jovem charges;
// the client-facing price adds the platform margin at finalize time.
type Service struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	BasePrice   float64   `json:"base_price" validate:"required,gte=0"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProfitConfig is the process-wide margin setting, a single row mutated
// only by the administrator.
type ProfitConfig struct {
	ID                  int64     `json:"id"`
	ProfitMarginPercent float64   `json:"profit_margin_percent"`
	UpdatedAt           time.Time `json:"updated_at"`
}
