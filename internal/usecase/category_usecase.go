package usecase

import (
	"context"
	"errors"

	"gigboard/internal/domain/skill"
	"gigboard/internal/repository"

	"github.com/google/uuid"
)

type ProfileCategoryUsecase interface {
	ListProfileCategories(ctx context.Context, userID uuid.UUID) ([]skill.Category, error)
	// SetProfileCategories makes categoryIDs the exact set of categories the
	// caller's profile is listed under.
	SetProfileCategories(ctx context.Context, userID uuid.UUID, categoryIDs []uuid.UUID) ([]skill.Category, error)
}

type ProfileCategory struct {
	categories repository.CategoryRepository
	profiles   repository.ProfileRepository
	listings   listingInvalidator
}

func NewProfileCategoryUsecase(categories repository.CategoryRepository, profiles repository.ProfileRepository, listings listingInvalidator) *ProfileCategory {
	return &ProfileCategory{categories: categories, profiles: profiles, listings: listings}
}

func (u *ProfileCategory) ListProfileCategories(ctx context.Context, userID uuid.UUID) ([]skill.Category, error) {
	owner, err := ownProfile(ctx, u.profiles, userID)
	if err != nil {
		return nil, err
	}
	items, err := u.categories.ListByProfileID(ctx, owner.ID)
	if err != nil {
		return nil, storeError(err)
	}
	return items, nil
}

func (u *ProfileCategory) SetProfileCategories(ctx context.Context, userID uuid.UUID, categoryIDs []uuid.UUID) ([]skill.Category, error) {
	seen := make(map[uuid.UUID]struct{}, len(categoryIDs))
	ids := make([]uuid.UUID, 0, len(categoryIDs))
	for _, id := range categoryIDs {
		if id == uuid.Nil {
			return nil, ErrInvalidInput
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	owner, err := ownProfile(ctx, u.profiles, userID)
	if err != nil {
		return nil, err
	}

	if err := u.categories.ReplaceForProfile(ctx, owner.ID, ids); err != nil {
		serr := storeError(err)
		if errors.Is(serr, ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, serr
	}

	invalidate(ctx, u.listings)

	items, err := u.categories.ListByProfileID(ctx, owner.ID)
	if err != nil {
		return nil, storeError(err)
	}
	return items, nil
}
