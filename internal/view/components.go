package view

import (
	"time"
	"unicode"
	"unicode/utf8"

	"gigboard/internal/domain/message"
	"gigboard/internal/domain/profile"
	"gigboard/internal/domain/review"

	"github.com/google/uuid"
)

const (
	DefaultTitle      = "Freelancer"
	DefaultLocation   = "Remote"
	DefaultHourlyRate = 50
	DefaultBio        = "No bio available"
	UnknownSender     = "Unknown User"

	cardSkillLimit = 3

	placeholderPhoto = "https://images.unsplash.com/photo-1494790108377-be9c29b29330"
	cardImage        = placeholderPhoto + "?w=400&h=400&fit=crop"
	headerImage      = placeholderPhoto + "?w=600&h=600&fit=crop"
)

type FreelancerCard struct {
	ID         uuid.UUID `json:"id"`
	Href       string    `json:"href"`
	Name       string    `json:"name"`
	Title      string    `json:"title"`
	Location   string    `json:"location"`
	Rating     float64   `json:"rating"`
	Reviews    int       `json:"reviews"`
	HourlyRate int       `json:"hourly_rate"`
	Skills     []string  `json:"skills"`
	Image      string    `json:"image"`
}

func NewFreelancerCard(p profile.Profile, rs review.Summary) FreelancerCard {
	skills := p.Skills
	if len(skills) > cardSkillLimit {
		skills = skills[:cardSkillLimit]
	}
	return FreelancerCard{
		ID:         p.ID,
		Href:       "/freelancer/" + p.ID.String(),
		Name:       p.FullName,
		Title:      textOr(p.Title, DefaultTitle),
		Location:   textOr(p.Location, DefaultLocation),
		Rating:     roundRating(rs.Average),
		Reviews:    rs.Count,
		HourlyRate: rateOr(p.HourlyRate),
		Skills:     append([]string{}, skills...),
		Image:      textOr(p.AvatarURL, cardImage),
	}
}

type ProfileHeader struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	Name            string    `json:"name"`
	Title           string    `json:"title"`
	Location        string    `json:"location,omitempty"`
	Bio             string    `json:"bio"`
	Image           string    `json:"image"`
	HourlyRate      int       `json:"hourly_rate"`
	Availability    string    `json:"availability"`
	Skills          []string  `json:"skills"`
	YearsExperience int       `json:"years_experience"`
	MemberSince     int       `json:"member_since"`
	PortfolioURL    string    `json:"portfolio_url,omitempty"`
	Rating          float64   `json:"rating"`
	Reviews         int       `json:"reviews"`
}

func NewProfileHeader(p profile.Profile, rs review.Summary) ProfileHeader {
	return ProfileHeader{
		ID:              p.ID,
		UserID:          p.UserID,
		Name:            p.FullName,
		Title:           textOr(p.Title, DefaultTitle),
		Location:        textOr(p.Location, ""),
		Bio:             textOr(p.Bio, DefaultBio),
		Image:           textOr(p.AvatarURL, headerImage),
		HourlyRate:      rateOr(p.HourlyRate),
		Availability:    string(p.AvailabilityStatus),
		Skills:          append([]string{}, p.Skills...),
		YearsExperience: p.YearsExperience,
		MemberSince:     p.CreatedAt.Year(),
		PortfolioURL:    textOr(p.PortfolioURL, ""),
		Rating:          roundRating(rs.Average),
		Reviews:         rs.Count,
	}
}

type MessageBubble struct {
	ID         uuid.UUID `json:"id"`
	Mine       bool      `json:"mine"`
	SenderID   uuid.UUID `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	Initial    string    `json:"initial"`
	Avatar     string    `json:"avatar,omitempty"`
	Content    string    `json:"content"`
	Read       bool      `json:"read"`
	SentAt     time.Time `json:"sent_at"`
}

// NewMessageBubble renders m as seen by viewerID.
func NewMessageBubble(m message.Message, viewerID uuid.UUID) MessageBubble {
	name := textOr(m.SenderName, UnknownSender)
	initial := "U"
	if m.SenderName != nil && *m.SenderName != "" {
		r, _ := utf8.DecodeRuneInString(*m.SenderName)
		initial = string(unicode.ToUpper(r))
	}
	return MessageBubble{
		ID:         m.ID,
		Mine:       m.SenderID == viewerID,
		SenderID:   m.SenderID,
		SenderName: name,
		Initial:    initial,
		Avatar:     textOr(m.SenderAvatarURL, ""),
		Content:    m.Content,
		Read:       m.ReadStatus,
		SentAt:     m.CreatedAt,
	}
}

func textOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

// rateOr treats a missing or zero rate as unset.
func rateOr(rate *int) int {
	if rate == nil || *rate == 0 {
		return DefaultHourlyRate
	}
	return *rate
}

func roundRating(avg float64) float64 {
	return float64(int(avg*10+0.5)) / 10
}
