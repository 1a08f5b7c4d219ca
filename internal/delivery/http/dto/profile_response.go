package dto

import (
	"time"

	"gigboard/internal/domain/profile"

	"github.com/google/uuid"
)

type ProfileResponse struct {
	ID                 uuid.UUID `json:"id"`
	UserID             uuid.UUID `json:"user_id"`
	FullName           string    `json:"full_name"`
	Title              *string   `json:"title"`
	Bio                *string   `json:"bio"`
	Location           *string   `json:"location"`
	HourlyRate         *int      `json:"hourly_rate"`
	YearsExperience    int       `json:"years_experience"`
	AvatarURL          *string   `json:"avatar_url"`
	ResumeURL          *string   `json:"resume_url"`
	PortfolioURL       *string   `json:"portfolio_url"`
	AvailabilityStatus string    `json:"availability_status"`
	ProfileViews       int       `json:"profile_views"`
	Skills             []string  `json:"skills"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func NewProfileResponse(p profile.Profile) ProfileResponse {
	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}
	return ProfileResponse{
		ID:                 p.ID,
		UserID:             p.UserID,
		FullName:           p.FullName,
		Title:              p.Title,
		Bio:                p.Bio,
		Location:           p.Location,
		HourlyRate:         p.HourlyRate,
		YearsExperience:    p.YearsExperience,
		AvatarURL:          p.AvatarURL,
		ResumeURL:          p.ResumeURL,
		PortfolioURL:       p.PortfolioURL,
		AvailabilityStatus: string(p.AvailabilityStatus),
		ProfileViews:       p.ProfileViews,
		Skills:             skills,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func NewProfileListResponse(items []profile.Profile) []ProfileResponse {
	out := make([]ProfileResponse, 0, len(items))
	for _, p := range items {
		out = append(out, NewProfileResponse(p))
	}
	return out
}

type StatsResponse struct {
	ProfileViews      int     `json:"profile_views"`
	BookmarksReceived int     `json:"bookmarks_received"`
	ReviewCount       int     `json:"review_count"`
	AverageRating     float64 `json:"average_rating"`
	ProjectCount      int     `json:"project_count"`
}

func NewStatsResponse(s profile.Stats) StatsResponse {
	return StatsResponse{
		ProfileViews:      s.ProfileViews,
		BookmarksReceived: s.BookmarksReceived,
		ReviewCount:       s.ReviewCount,
		AverageRating:     s.AverageRating,
		ProjectCount:      s.ProjectCount,
	}
}
