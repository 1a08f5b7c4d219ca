package usecase

import (
	"context"
	"errors"
	"testing"

	"gigboard/internal/domain/profile"

	"github.com/google/uuid"
)

func TestProfile_GetProfile_NotFoundIsNotEmpty(t *testing.T) {
	bare := profile.Profile{ID: uuid.New(), UserID: uuid.New(), FullName: "New Freelancer", Skills: []string{}}
	repo := newFakeProfileRepo(bare)
	uc := NewProfileUsecase(repo, nil)
	ctx := context.Background()

	got, err := uc.GetProfile(ctx, bare.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Skills == nil || len(got.Skills) != 0 {
		t.Fatalf("expected an empty skill list, got %v", got.Skills)
	}

	if _, err := uc.GetProfile(ctx, uuid.New()); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
	if _, err := uc.GetProfile(ctx, uuid.Nil); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound for nil id, got %v", err)
	}

	uc.WaitForViews()
	if n := repo.viewCount(bare.ID); n != 1 {
		t.Fatalf("expected 1 view, got %d", n)
	}
}

func TestProfile_GetProfile_ViewSurvivesCancelledRequest(t *testing.T) {
	p := profile.Profile{ID: uuid.New(), UserID: uuid.New(), FullName: "Ana"}
	repo := newFakeProfileRepo(p)
	uc := NewProfileUsecase(repo, nil)

	ctx, cancel := context.WithCancel(context.Background())
	if _, err := uc.GetProfile(ctx, p.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	cancel()

	uc.WaitForViews()
	if n := repo.viewCount(p.ID); n != 1 {
		t.Fatalf("expected 1 view, got %d", n)
	}
}

func TestProfile_GetProfile_ViewFailureIgnored(t *testing.T) {
	p := profile.Profile{ID: uuid.New(), UserID: uuid.New(), FullName: "Ana"}
	repo := newFakeProfileRepo(p)
	repo.viewErr = errStoreDown
	uc := NewProfileUsecase(repo, nil)

	if _, err := uc.GetProfile(context.Background(), p.ID); err != nil {
		t.Fatalf("expected view failure to be swallowed, got %v", err)
	}
	uc.WaitForViews()
}
