package view

import (
	"testing"
	"time"

	"gigboard/internal/domain/message"
	"gigboard/internal/domain/profile"
	"gigboard/internal/domain/review"
	"gigboard/internal/domain/skill"

	"github.com/google/uuid"
)

func strPtr(s string) *string { return &s }

func TestNewFreelancerCard_Defaults(t *testing.T) {
	zero := 0
	p := profile.Profile{
		ID:         uuid.New(),
		FullName:   "Ana Souza",
		HourlyRate: &zero,
		Skills:     []string{"Figma", "Illustrator", "Webflow", "Branding"},
	}

	card := NewFreelancerCard(p, review.Summary{})
	if card.Title != DefaultTitle || card.Location != DefaultLocation {
		t.Fatalf("unexpected defaults %q %q", card.Title, card.Location)
	}
	if card.HourlyRate != DefaultHourlyRate {
		t.Fatalf("expected default rate, got %d", card.HourlyRate)
	}
	if card.Image != cardImage {
		t.Fatalf("expected placeholder image, got %q", card.Image)
	}
	if len(card.Skills) != 3 || card.Skills[2] != "Webflow" {
		t.Fatalf("expected first three skills, got %v", card.Skills)
	}
	if card.Rating != 0 || card.Reviews != 0 {
		t.Fatalf("expected no rating, got %v (%d)", card.Rating, card.Reviews)
	}
}

func TestNewFreelancerCard_UsesProfileAndReviews(t *testing.T) {
	rate := 85
	p := profile.Profile{
		ID:         uuid.New(),
		FullName:   "Ben",
		Title:      strPtr("Go Engineer"),
		Location:   strPtr("Lisbon"),
		HourlyRate: &rate,
		AvatarURL:  strPtr("https://cdn.test/avatars/ben.png"),
	}

	card := NewFreelancerCard(p, review.Summary{Average: 4.666, Count: 3})
	if card.Title != "Go Engineer" || card.Location != "Lisbon" || card.HourlyRate != 85 {
		t.Fatalf("unexpected card %+v", card)
	}
	if card.Rating != 4.7 || card.Reviews != 3 {
		t.Fatalf("unexpected rating %v (%d)", card.Rating, card.Reviews)
	}
	if card.Skills == nil {
		t.Fatalf("expected non-nil skills")
	}
}

func TestNewProfileHeader(t *testing.T) {
	p := profile.Profile{
		ID:                 uuid.New(),
		FullName:           "Cy",
		AvailabilityStatus: profile.Busy,
		CreatedAt:          time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}

	h := NewProfileHeader(p, review.Summary{})
	if h.Bio != DefaultBio || h.Location != "" || h.Image != headerImage {
		t.Fatalf("unexpected header %+v", h)
	}
	if h.MemberSince != 2024 || h.Availability != "busy" {
		t.Fatalf("unexpected header %+v", h)
	}
}

func TestNewMessageBubble(t *testing.T) {
	me := uuid.New()
	other := uuid.New()

	mine := NewMessageBubble(message.Message{ID: uuid.New(), SenderID: me, ReceiverID: other, SenderName: strPtr("émile")}, me)
	if !mine.Mine || mine.SenderName != "émile" || mine.Initial != "É" {
		t.Fatalf("unexpected bubble %+v", mine)
	}

	theirs := NewMessageBubble(message.Message{ID: uuid.New(), SenderID: other, ReceiverID: me}, me)
	if theirs.Mine || theirs.SenderName != UnknownSender || theirs.Initial != "U" {
		t.Fatalf("unexpected bubble %+v", theirs)
	}
}

func TestNewBrowsePage(t *testing.T) {
	design := skill.Category{ID: uuid.New(), Name: "Design"}
	p := profile.Profile{ID: uuid.New(), FullName: "Ana", Title: strPtr("Designer")}

	page := NewBrowsePage([]skill.Category{design}, "", "ana", []profile.Profile{p}, map[uuid.UUID]review.Summary{
		p.ID: {Average: 5, Count: 1},
	})
	if page.SelectedCategory != AllCategories {
		t.Fatalf("expected all selected, got %q", page.SelectedCategory)
	}
	if len(page.Categories) != 2 || page.Categories[0].Value != AllCategories || page.Categories[1].Value != design.ID.String() {
		t.Fatalf("unexpected categories %+v", page.Categories)
	}
	if page.Count != 1 || page.Cards[0].Reviews != 1 {
		t.Fatalf("unexpected cards %+v", page.Cards)
	}
}
