package domain

import (
	"time"

	"github.com/google/uuid"
)

// Service represents a service offered by the salon
type Service struct {
	ID              uuid.UUID
	Name            string
	DurationMinutes int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
