package dto

import (
	"time"

	"gigboard/internal/domain/review"

	"github.com/google/uuid"
)

type ReviewResponse struct {
	ID           uuid.UUID  `json:"id"`
	ReviewerID   uuid.UUID  `json:"reviewer_id"`
	FreelancerID uuid.UUID  `json:"freelancer_id"`
	ProjectID    *uuid.UUID `json:"project_id"`
	Rating       int        `json:"rating"`
	Comment      *string    `json:"comment"`
	CreatedAt    time.Time  `json:"created_at"`
}

type ReviewListResponse struct {
	Items         []ReviewResponse `json:"items"`
	AverageRating float64          `json:"average_rating"`
	Count         int              `json:"count"`
}

func NewReviewResponse(r review.Review) ReviewResponse {
	return ReviewResponse{
		ID:           r.ID,
		ReviewerID:   r.ReviewerID,
		FreelancerID: r.FreelancerID,
		ProjectID:    r.ProjectID,
		Rating:       r.Rating,
		Comment:      r.Comment,
		CreatedAt:    r.CreatedAt,
	}
}
