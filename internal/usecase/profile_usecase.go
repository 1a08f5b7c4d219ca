package usecase

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"gigboard/internal/domain/profile"
	"gigboard/internal/repository"

	"github.com/google/uuid"
)

const viewIncrementTimeout = 5 * time.Second

type ProfileUsecase interface {
	// GetProfile returns the profile with its skills. A missing id yields
	// ErrProfileNotFound. Each successful read counts as one view.
	GetProfile(ctx context.Context, id uuid.UUID) (profile.Profile, error)
}

type Profile struct {
	profiles repository.ProfileRepository
	logger   *log.Logger

	views sync.WaitGroup
}

func NewProfileUsecase(profiles repository.ProfileRepository, logger *log.Logger) *Profile {
	return &Profile{profiles: profiles, logger: logger}
}

func (u *Profile) GetProfile(ctx context.Context, id uuid.UUID) (profile.Profile, error) {
	if id == uuid.Nil {
		return profile.Profile{}, ErrProfileNotFound
	}

	p, err := u.profiles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return profile.Profile{}, ErrProfileNotFound
		}
		return profile.Profile{}, storeError(err)
	}

	u.recordView(ctx, id)
	return p, nil
}

// recordView bumps the view counter off the request path. It outlives the
// request, is never retried, and only logs failures.
func (u *Profile) recordView(ctx context.Context, id uuid.UUID) {
	detached := context.WithoutCancel(ctx)

	u.views.Add(1)
	go func() {
		defer u.views.Done()

		vctx, cancel := context.WithTimeout(detached, viewIncrementTimeout)
		defer cancel()
		if err := u.profiles.IncrementViews(vctx, id); err != nil && u.logger != nil {
			u.logger.Printf("Profile view increment failed | profile_id=%s err=%v", id, err)
		}
	}()
}

// WaitForViews blocks until pending view increments finish.
func (u *Profile) WaitForViews() {
	u.views.Wait()
}
