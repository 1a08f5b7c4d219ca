package profile

import (
	"time"

	"github.com/google/uuid"
)

type AvailabilityStatus string

const (
	Available  AvailabilityStatus = "available"
	Busy       AvailabilityStatus = "busy"
	NotLooking AvailabilityStatus = "not_looking"
)

func (s AvailabilityStatus) Valid() bool {
	switch s {
	case Available, Busy, NotLooking:
		return true
	default:
		return false
	}
}

// Profile is a freelancer's public-facing record. One per account.
type Profile struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	FullName           string
	Title              *string
	Bio                *string
	Location           *string
	HourlyRate         *int
	YearsExperience    int
	AvatarURL          *string
	ResumeURL          *string
	PortfolioURL       *string
	AvailabilityStatus AvailabilityStatus
	ProfileViews       int
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// Skills holds the names of linked skills when the query joined them.
	Skills []string
}

// Fields are the self-editable columns written by a dashboard save.
type Fields struct {
	FullName           string
	Title              *string
	Bio                *string
	Location           *string
	HourlyRate         *int
	YearsExperience    int
	PortfolioURL       *string
	AvailabilityStatus AvailabilityStatus
}

// Sender is the slice of a profile shown next to a message.
type Sender struct {
	UserID    uuid.UUID
	FullName  string
	AvatarURL *string
}

type Stats struct {
	ProfileViews      int
	BookmarksReceived int
	ReviewCount       int
	AverageRating     float64
	ProjectCount      int
}
