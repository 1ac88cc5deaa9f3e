package models

import "time"

// FeeHead is a named fee category with a fixed amount. Recurring heads
// (IsOneTime = false) require a month value at payment time. ClassIDs limits
// the head to specific classes; empty means it applies to all classes.
type FeeHead struct {
	ID          string    `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Description *string   `json:"description,omitempty"`
	Amount      float64   `json:"amount" validate:"required,gt=0"`
	IsOneTime   bool      `json:"isOneTime"`
	IsActive    bool      `json:"isActive"`
	ClassIDs    []string  `json:"classIds"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
