package bookmark

import (
	"time"

	"github.com/google/uuid"
)

// Bookmark marks a viewer's interest in a freelancer profile. Unique per pair.
type Bookmark struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	FreelancerID uuid.UUID
	CreatedAt    time.Time
}
