package project

import (
	"time"

	"github.com/google/uuid"
)

// Project is a portfolio item owned by exactly one profile.
type Project struct {
	ID             uuid.UUID
	ProfileID      uuid.UUID
	CategoryID     *uuid.UUID
	Title          string
	Description    *string
	ThumbnailURL   *string
	Images         []string
	ProjectURL     *string
	Technologies   []string
	ClientName     *string
	CompletionDate *time.Time
	Featured       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
