package usecase

import (
	"context"
	"errors"

	"gigboard/internal/domain/profile"
	"gigboard/internal/repository"

	"github.com/google/uuid"
)

// ownProfile loads the profile belonging to the signed-in account.
func ownProfile(ctx context.Context, profiles repository.ProfileRepository, userID uuid.UUID) (profile.Profile, error) {
	if userID == uuid.Nil {
		return profile.Profile{}, ErrUnauthorized
	}
	p, err := profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return profile.Profile{}, ErrProfileNotFound
		}
		return profile.Profile{}, storeError(err)
	}
	return p, nil
}

type listingInvalidator interface {
	InvalidateListings(ctx context.Context)
}

func invalidate(ctx context.Context, inv listingInvalidator) {
	if inv != nil {
		inv.InvalidateListings(ctx)
	}
}
