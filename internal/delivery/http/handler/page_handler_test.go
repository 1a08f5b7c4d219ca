package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gigboard/internal/domain/profile"
	"gigboard/internal/domain/project"
	"gigboard/internal/domain/review"
	"gigboard/internal/usecase"
	"gigboard/internal/view"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type stubProfiles struct {
	usecase.ProfileUsecase
	items map[uuid.UUID]profile.Profile
}

func (s stubProfiles) GetProfile(_ context.Context, id uuid.UUID) (profile.Profile, error) {
	p, ok := s.items[id]
	if !ok {
		return profile.Profile{}, usecase.ErrProfileNotFound
	}
	return p, nil
}

type stubProjects struct {
	usecase.ProjectUsecase
}

func (stubProjects) ListProjects(context.Context, uuid.UUID) ([]project.Project, error) {
	return nil, nil
}

type stubReviews struct {
	usecase.ReviewUsecase
	summary review.Summary
	err     error
}

func (s stubReviews) Summary(context.Context, uuid.UUID) (review.Summary, error) {
	return s.summary, s.err
}

type profilePageBody struct {
	Data struct {
		State        string             `json:"state"`
		Notification *view.Notification `json:"notification"`
	} `json:"data"`
}

func getFreelancerPage(t *testing.T, h *PageHandler, id string) profilePageBody {
	t.Helper()

	app := fiber.New()
	h.RegisterRoutes(app)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/pages/freelancers/"+id, nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body profilePageBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func TestPageHandler_FreelancerNotifiesWhenRatingUnavailable(t *testing.T) {
	p := profile.Profile{ID: uuid.New(), UserID: uuid.New(), FullName: "Ada Lovelace"}
	profiles := stubProfiles{items: map[uuid.UUID]profile.Profile{p.ID: p}}
	reviews := stubReviews{err: &usecase.StoreError{Message: "connection refused", Err: errors.New("dial tcp")}}

	h := NewPageHandler(nil, profiles, stubProjects{}, reviews, nil, nil, nil)
	body := getFreelancerPage(t, h, p.ID.String())

	if body.Data.State != string(view.Loaded) {
		t.Fatalf("expected loaded page, got %q", body.Data.State)
	}
	n := body.Data.Notification
	if n == nil || n.Variant != view.VariantDefault || n.Title != "Reviews unavailable" || n.Description != "connection refused" {
		t.Fatalf("unexpected notification %+v", n)
	}
}

func TestPageHandler_FreelancerWithoutNotice(t *testing.T) {
	p := profile.Profile{ID: uuid.New(), UserID: uuid.New(), FullName: "Grace Hopper"}
	profiles := stubProfiles{items: map[uuid.UUID]profile.Profile{p.ID: p}}
	reviews := stubReviews{summary: review.Summary{Average: 4.5, Count: 2}}

	h := NewPageHandler(nil, profiles, stubProjects{}, reviews, nil, nil, nil)
	body := getFreelancerPage(t, h, p.ID.String())

	if body.Data.State != string(view.Loaded) || body.Data.Notification != nil {
		t.Fatalf("expected loaded page without notice, got %q %+v", body.Data.State, body.Data.Notification)
	}
}

func TestPageHandler_FreelancerNotFound(t *testing.T) {
	h := NewPageHandler(nil, stubProfiles{}, stubProjects{}, stubReviews{}, nil, nil, nil)

	for _, id := range []string{"not-a-uuid", uuid.NewString()} {
		body := getFreelancerPage(t, h, id)
		if body.Data.State != string(view.NotFound) {
			t.Fatalf("id %q: expected not_found, got %q", id, body.Data.State)
		}
	}
}
