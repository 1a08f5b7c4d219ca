package dto

import (
	"time"

	"gigboard/internal/domain/project"

	"github.com/google/uuid"
)

type ProjectResponse struct {
	ID             uuid.UUID  `json:"id"`
	ProfileID      uuid.UUID  `json:"profile_id"`
	CategoryID     *uuid.UUID `json:"category_id"`
	Title          string     `json:"title"`
	Description    *string    `json:"description"`
	ThumbnailURL   *string    `json:"thumbnail_url"`
	Images         []string   `json:"images"`
	ProjectURL     *string    `json:"project_url"`
	Technologies   []string   `json:"technologies"`
	ClientName     *string    `json:"client_name"`
	CompletionDate *time.Time `json:"completion_date"`
	Featured       bool       `json:"featured"`
	CreatedAt      time.Time  `json:"created_at"`
}

func NewProjectResponse(p project.Project) ProjectResponse {
	return ProjectResponse{
		ID:             p.ID,
		ProfileID:      p.ProfileID,
		CategoryID:     p.CategoryID,
		Title:          p.Title,
		Description:    p.Description,
		ThumbnailURL:   p.ThumbnailURL,
		Images:         nonNil(p.Images),
		ProjectURL:     p.ProjectURL,
		Technologies:   nonNil(p.Technologies),
		ClientName:     p.ClientName,
		CompletionDate: p.CompletionDate,
		Featured:       p.Featured,
		CreatedAt:      p.CreatedAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
