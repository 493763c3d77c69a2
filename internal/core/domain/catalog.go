package domain

import (
	"errors"
	"time"
)

// ErrAlreadyExists marks a schema-creation call that failed only because the
// target object is already in place. Treated as an advisory outcome, never
// fatal, so re-running setup stays safe.
var ErrAlreadyExists = errors.New("object already exists")

// Category is reference data seeded by the provisioner. Name is the natural
// key used for idempotent upserts.
type Category struct {
	ID          string    `json:"id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	SortOrder   int       `json:"sort_order"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

// MenuItem belongs to a Category (by id). Like Category it is upserted by
// name so reseeding never duplicates rows.
type MenuItem struct {
	ID              string    `json:"id,omitempty"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	CategoryID      string    `json:"category"`
	ImageURL        string    `json:"image_url,omitempty"`
	IsAvailable     bool      `json:"is_available"`
	Ingredients     []string  `json:"ingredients,omitempty"`
	Allergens       []string  `json:"allergens,omitempty"`
	PreparationTime int       `json:"preparation_time,omitempty"`
	CreatedAt       time.Time `json:"created_at,omitempty"`
	UpdatedAt       time.Time `json:"updated_at,omitempty"`
}
