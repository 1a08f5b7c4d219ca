package view

import (
	"time"

	"gigboard/internal/domain/message"
	"gigboard/internal/domain/profile"
	"gigboard/internal/domain/project"
	"gigboard/internal/domain/review"
	"gigboard/internal/domain/skill"

	"github.com/google/uuid"
)

const AllCategories = "all"

type CategoryOption struct {
	Value string `json:"value"`
	Name  string `json:"name"`
}

type BrowsePage struct {
	Categories       []CategoryOption `json:"categories"`
	SelectedCategory string           `json:"selected_category"`
	Search           string           `json:"search"`
	Cards            []FreelancerCard `json:"cards"`
	Count            int              `json:"count"`
}

// NewBrowsePage builds the browse grid. The category list always starts with
// the "all" option; an empty selection selects it.
func NewBrowsePage(categories []skill.Category, selected, search string, profiles []profile.Profile, summaries map[uuid.UUID]review.Summary) BrowsePage {
	if selected == "" {
		selected = AllCategories
	}

	options := make([]CategoryOption, 0, len(categories)+1)
	options = append(options, CategoryOption{Value: AllCategories, Name: "All Categories"})
	for _, c := range categories {
		options = append(options, CategoryOption{Value: c.ID.String(), Name: c.Name})
	}

	cards := make([]FreelancerCard, 0, len(profiles))
	for _, p := range profiles {
		cards = append(cards, NewFreelancerCard(p, summaries[p.ID]))
	}

	return BrowsePage{
		Categories:       options,
		SelectedCategory: selected,
		Search:           search,
		Cards:            cards,
		Count:            len(cards),
	}
}

type ProjectItem struct {
	ID             uuid.UUID  `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	ThumbnailURL   string     `json:"thumbnail_url,omitempty"`
	ProjectURL     string     `json:"project_url,omitempty"`
	Technologies   []string   `json:"technologies"`
	ClientName     string     `json:"client_name,omitempty"`
	CompletionDate *time.Time `json:"completion_date,omitempty"`
	Featured       bool       `json:"featured"`
}

type ProfilePage struct {
	Header   ProfileHeader `json:"header"`
	Projects []ProjectItem `json:"projects"`
	// Bookmarked is nil for anonymous visitors.
	Bookmarked *bool `json:"bookmarked,omitempty"`
}

func NewProfilePage(p profile.Profile, rs review.Summary, projects []project.Project, bookmarked *bool) ProfilePage {
	items := make([]ProjectItem, 0, len(projects))
	for _, pr := range projects {
		items = append(items, ProjectItem{
			ID:             pr.ID,
			Title:          pr.Title,
			Description:    textOr(pr.Description, ""),
			ThumbnailURL:   textOr(pr.ThumbnailURL, ""),
			ProjectURL:     textOr(pr.ProjectURL, ""),
			Technologies:   append([]string{}, pr.Technologies...),
			ClientName:     textOr(pr.ClientName, ""),
			CompletionDate: pr.CompletionDate,
			Featured:       pr.Featured,
		})
	}
	return ProfilePage{Header: NewProfileHeader(p, rs), Projects: items, Bookmarked: bookmarked}
}

type ProfileForm struct {
	FullName           string `json:"full_name"`
	Title              string `json:"title"`
	Bio                string `json:"bio"`
	Location           string `json:"location"`
	HourlyRate         *int   `json:"hourly_rate"`
	YearsExperience    int    `json:"years_experience"`
	PortfolioURL       string `json:"portfolio_url"`
	AvailabilityStatus string `json:"availability_status"`
	AvatarURL          string `json:"avatar_url"`
}

type StatsView struct {
	ProfileViews      int     `json:"profile_views"`
	BookmarksReceived int     `json:"bookmarks_received"`
	ReviewCount       int     `json:"review_count"`
	AverageRating     float64 `json:"average_rating"`
	ProjectCount      int     `json:"project_count"`
}

type DashboardPage struct {
	Form  ProfileForm `json:"form"`
	Stats StatsView   `json:"stats"`
}

func NewDashboardPage(p profile.Profile, st profile.Stats) DashboardPage {
	return DashboardPage{
		Form: ProfileForm{
			FullName:           p.FullName,
			Title:              textOr(p.Title, ""),
			Bio:                textOr(p.Bio, ""),
			Location:           textOr(p.Location, ""),
			HourlyRate:         p.HourlyRate,
			YearsExperience:    p.YearsExperience,
			PortfolioURL:       textOr(p.PortfolioURL, ""),
			AvailabilityStatus: string(p.AvailabilityStatus),
			AvatarURL:          textOr(p.AvatarURL, ""),
		},
		Stats: StatsView{
			ProfileViews:      st.ProfileViews,
			BookmarksReceived: st.BookmarksReceived,
			ReviewCount:       st.ReviewCount,
			AverageRating:     roundRating(st.AverageRating),
			ProjectCount:      st.ProjectCount,
		},
	}
}

type MessagesPage struct {
	Bubbles []MessageBubble `json:"bubbles"`
	Count   int             `json:"count"`
}

func NewMessagesPage(items []message.Message, viewerID uuid.UUID) MessagesPage {
	bubbles := make([]MessageBubble, 0, len(items))
	for _, m := range items {
		bubbles = append(bubbles, NewMessageBubble(m, viewerID))
	}
	return MessagesPage{Bubbles: bubbles, Count: len(bubbles)}
}
