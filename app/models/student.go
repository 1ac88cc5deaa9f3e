package models

import "time"

// Student represents an enrolled student. StudentID is the human-facing
// admission code (unique), distinct from the row id.
type Student struct {
	ID            string      `json:"id"`
	StudentID     string      `json:"studentId" validate:"required"`
	Name          string      `json:"name" validate:"required"`
	Class         string      `json:"class" validate:"required"`
	Section       string      `json:"section" validate:"required"`
	RollNumber    string      `json:"rollNumber" validate:"required"`
	ParentName    string      `json:"parentName" validate:"required"`
	ContactNumber string      `json:"contactNumber" validate:"required"`
	Email         *string     `json:"email,omitempty" validate:"omitempty,email"`
	Address       *string     `json:"address,omitempty"`
	DateOfBirth   *CustomDate `json:"dateOfBirth,omitempty"`
	JoinDate      *CustomDate `json:"joinDate,omitempty"`
	Image         *string     `json:"image,omitempty"`
	IsActive      bool        `json:"isActive"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}
