package usecase

import (
	"context"
	"errors"
	"strings"

	"gigboard/internal/domain/review"
	"gigboard/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrInvalidRating = errors.New("invalid rating")
	ErrSelfReview    = errors.New("cannot review own profile")
	// ErrProjectMismatch rejects a review that cites another freelancer's project.
	ErrProjectMismatch = errors.New("project does not belong to freelancer")
)

type CreateReviewInput struct {
	Rating    int
	Comment   *string
	ProjectID *uuid.UUID
}

type ReviewUsecase interface {
	ListReviews(ctx context.Context, freelancerID uuid.UUID) ([]review.Review, review.Summary, error)
	Summary(ctx context.Context, freelancerID uuid.UUID) (review.Summary, error)
	Summaries(ctx context.Context, freelancerIDs []uuid.UUID) (map[uuid.UUID]review.Summary, error)
	CreateReview(ctx context.Context, reviewerID uuid.UUID, freelancerID uuid.UUID, in CreateReviewInput) (review.Review, error)
}

type Review struct {
	reviews  repository.ReviewRepository
	profiles repository.ProfileRepository
	projects repository.ProjectRepository
}

func NewReviewUsecase(reviews repository.ReviewRepository, profiles repository.ProfileRepository, projects repository.ProjectRepository) *Review {
	return &Review{reviews: reviews, profiles: profiles, projects: projects}
}

func (u *Review) ListReviews(ctx context.Context, freelancerID uuid.UUID) ([]review.Review, review.Summary, error) {
	if freelancerID == uuid.Nil {
		return nil, review.Summary{}, ErrInvalidInput
	}
	items, err := u.reviews.ListByFreelancerID(ctx, freelancerID)
	if err != nil {
		return nil, review.Summary{}, storeError(err)
	}
	return items, summarize(items), nil
}

func (u *Review) Summary(ctx context.Context, freelancerID uuid.UUID) (review.Summary, error) {
	s, err := u.reviews.Summary(ctx, freelancerID)
	if err != nil {
		return review.Summary{}, storeError(err)
	}
	return s, nil
}

func (u *Review) Summaries(ctx context.Context, freelancerIDs []uuid.UUID) (map[uuid.UUID]review.Summary, error) {
	out, err := u.reviews.Summaries(ctx, freelancerIDs)
	if err != nil {
		return nil, storeError(err)
	}
	return out, nil
}

func (u *Review) CreateReview(ctx context.Context, reviewerID uuid.UUID, freelancerID uuid.UUID, in CreateReviewInput) (review.Review, error) {
	if reviewerID == uuid.Nil {
		return review.Review{}, ErrUnauthorized
	}
	if freelancerID == uuid.Nil {
		return review.Review{}, ErrInvalidInput
	}
	if in.Rating < review.MinRating || in.Rating > review.MaxRating {
		return review.Review{}, ErrInvalidRating
	}

	target, err := u.profiles.GetByID(ctx, freelancerID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return review.Review{}, ErrProfileNotFound
		}
		return review.Review{}, storeError(err)
	}
	if target.UserID == reviewerID {
		return review.Review{}, ErrSelfReview
	}

	if in.ProjectID != nil {
		if err := u.checkProject(ctx, *in.ProjectID, freelancerID); err != nil {
			return review.Review{}, err
		}
	}

	comment := in.Comment
	if comment != nil {
		trimmed := strings.TrimSpace(*comment)
		if trimmed == "" {
			comment = nil
		} else {
			comment = &trimmed
		}
	}

	created, err := u.reviews.Create(ctx, review.Review{
		ID:           uuid.New(),
		ReviewerID:   reviewerID,
		FreelancerID: freelancerID,
		ProjectID:    in.ProjectID,
		Rating:       in.Rating,
		Comment:      comment,
	})
	if err != nil {
		return review.Review{}, storeError(err)
	}
	return created, nil
}

func (u *Review) checkProject(ctx context.Context, projectID uuid.UUID, freelancerID uuid.UUID) error {
	p, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return ErrProjectNotFound
		}
		return storeError(err)
	}
	if p.ProfileID != freelancerID {
		return ErrProjectMismatch
	}
	return nil
}

func summarize(items []review.Review) review.Summary {
	if len(items) == 0 {
		return review.Summary{}
	}
	total := 0
	for _, it := range items {
		total += it.Rating
	}
	return review.Summary{Average: float64(total) / float64(len(items)), Count: len(items)}
}
