package models

import "time"

// Accountant represents a staff member who collects fee payments. Only
// active accountants may be assigned to new payments.
type Accountant struct {
	ID        string     `json:"id"`
	Name      string     `json:"name" validate:"required"`
	Email     string     `json:"email" validate:"required,email"`
	Phone     string     `json:"phone" validate:"required"`
	Address   *string    `json:"address,omitempty"`
	JoinDate  CustomDate `json:"joinDate"`
	IsActive  bool       `json:"isActive"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
