package review

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID           uuid.UUID
	ReviewerID   uuid.UUID
	FreelancerID uuid.UUID
	ProjectID    *uuid.UUID
	Rating       int
	Comment      *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Summary struct {
	Average float64
	Count   int
}
