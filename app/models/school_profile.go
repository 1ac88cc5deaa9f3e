package models

import "time"

// SchoolProfile is a singleton record; at most one row ever exists and the
// store upserts against a fixed key.
type SchoolProfile struct {
	ID          string    `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Address     string    `json:"address" validate:"required"`
	City        string    `json:"city" validate:"required"`
	State       string    `json:"state" validate:"required"`
	ZipCode     string    `json:"zipCode" validate:"required"`
	Phone       string    `json:"phone" validate:"required"`
	Email       string    `json:"email" validate:"required,email"`
	Website     *string   `json:"website,omitempty"`
	Logo        *string   `json:"logo,omitempty"`
	Established *string   `json:"established,omitempty"`
	Description *string   `json:"description,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
