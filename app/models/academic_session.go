package models

import "time"

// AcademicSession represents a school year record. At most one session is
// active system-wide at any time.
type AcademicSession struct {
	ID        string     `json:"id"`
	Name      string     `json:"name" validate:"required"`
	StartDate CustomDate `json:"startDate" validate:"required"`
	EndDate   CustomDate `json:"endDate" validate:"required"`
	IsActive  bool       `json:"isActive"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// HasEnded reports whether the session's end date is in the past.
func (s *AcademicSession) HasEnded() bool {
	return time.Now().After(s.EndDate.Time)
}
