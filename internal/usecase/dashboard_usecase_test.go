package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gigboard/internal/domain/profile"

	"github.com/google/uuid"
)

func TestDashboard_SaveProfile_ReplacesAvatarURL(t *testing.T) {
	userID := uuid.New()
	repo := newFakeProfileRepo(profile.Profile{
		ID:        uuid.New(),
		UserID:    userID,
		FullName:  "Ana",
		AvatarURL: strPtr("https://cdn.test/avatars/old.png"),
	})
	files := newFakeStorage()
	cache := newFakeCache()
	listings := NewBrowseUsecase(repo, nil, cache, nil)
	uc := NewDashboardUsecase(repo, files, listings, nil)
	ctx := context.Background()

	in := SaveProfileInput{FullName: "Ana Souza", Title: strPtr("Designer")}
	saved, err := uc.SaveProfile(ctx, userID, in, &AvatarUpload{
		Filename:    "me.png",
		ContentType: "image/png",
		Body:        strings.NewReader("png-bytes"),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	wantURL := "https://cdn.test/avatars/" + userID.String() + "/me.png"
	if saved.AvatarURL == nil || *saved.AvatarURL != wantURL {
		t.Fatalf("expected avatar %q, got %v", wantURL, saved.AvatarURL)
	}
	if !files.has(AvatarBucket, userID.String()+"/me.png") {
		t.Fatalf("expected uploaded object")
	}
	if saved.AvailabilityStatus != profile.Available {
		t.Fatalf("expected default availability, got %q", saved.AvailabilityStatus)
	}
	if len(cache.deletes) != 1 {
		t.Fatalf("expected listings invalidated once, got %d", len(cache.deletes))
	}

	saved, err = uc.SaveProfile(ctx, userID, in, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if saved.AvatarURL == nil || *saved.AvatarURL != wantURL {
		t.Fatalf("expected avatar kept without upload, got %v", saved.AvatarURL)
	}
}

func TestDashboard_SaveProfile_UploadFailureLeavesProfile(t *testing.T) {
	userID := uuid.New()
	repo := newFakeProfileRepo(profile.Profile{ID: uuid.New(), UserID: userID, FullName: "Ana"})
	files := newFakeStorage()
	files.err = errors.New("bucket not found")
	uc := NewDashboardUsecase(repo, files, nil, nil)

	_, err := uc.SaveProfile(context.Background(), userID, SaveProfileInput{FullName: "Changed"}, &AvatarUpload{
		Filename: "me.png",
		Body:     strings.NewReader("x"),
	})
	if !errors.Is(err, ErrInternal) || StoreMessage(err) != "bucket not found" {
		t.Fatalf("expected storage error, got %v", err)
	}

	p, _ := repo.GetByUserID(context.Background(), userID)
	if p.FullName != "Ana" {
		t.Fatalf("expected profile untouched, got %q", p.FullName)
	}
}

func TestDashboard_SaveProfile_Validation(t *testing.T) {
	userID := uuid.New()
	repo := newFakeProfileRepo(profile.Profile{ID: uuid.New(), UserID: userID, FullName: "Ana"})
	uc := NewDashboardUsecase(repo, nil, nil, nil)
	ctx := context.Background()
	negative := -1

	cases := []SaveProfileInput{
		{FullName: "  "},
		{FullName: "Ana", HourlyRate: &negative},
		{FullName: "Ana", YearsExperience: -2},
		{FullName: "Ana", AvailabilityStatus: "on_holiday"},
	}
	for i, in := range cases {
		if _, err := uc.SaveProfile(ctx, userID, in, nil); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}

	if _, err := uc.SaveProfile(ctx, uuid.New(), SaveProfileInput{FullName: "Ghost"}, nil); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestDashboard_SaveProfile_BlankTextBecomesNull(t *testing.T) {
	userID := uuid.New()
	repo := newFakeProfileRepo(profile.Profile{ID: uuid.New(), UserID: userID, FullName: "Ana", Bio: strPtr("old")})
	uc := NewDashboardUsecase(repo, nil, nil, nil)

	saved, err := uc.SaveProfile(context.Background(), userID, SaveProfileInput{FullName: "Ana", Bio: strPtr("   ")}, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if saved.Bio != nil {
		t.Fatalf("expected bio cleared, got %q", *saved.Bio)
	}
}

func TestAvatarPath(t *testing.T) {
	userID := uuid.MustParse("0d9f6a52-5b8e-4c1e-a3a4-2f7d6c3b9e10")

	got, err := AvatarPath(userID, `C:\Users\ana\photo.jpg`)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != "0d9f6a52-5b8e-4c1e-a3a4-2f7d6c3b9e10/photo.jpg" {
		t.Fatalf("unexpected path %q", got)
	}

	renamed := map[string]string{
		"cv#1.png":      "cv-1.png",
		"my photo?.png": "my-photo-.png",
		"résumé.jpg":    "r-sum-.jpg",
	}
	for in, want := range renamed {
		got, err := AvatarPath(userID, in)
		if err != nil {
			t.Fatalf("name %q: unexpected err: %v", in, err)
		}
		if got != userID.String()+"/"+want {
			t.Fatalf("name %q: got %q, want %q", in, got, userID.String()+"/"+want)
		}
	}

	for _, name := range []string{"", "  ", ".."} {
		if _, err := AvatarPath(userID, name); !errors.Is(err, ErrInvalidAvatar) {
			t.Fatalf("name %q: expected ErrInvalidAvatar, got %v", name, err)
		}
	}
}

func TestDashboard_SaveProfile_RowFailureRemovesUpload(t *testing.T) {
	userID := uuid.New()
	repo := newFakeProfileRepo()
	files := newFakeStorage()
	uc := NewDashboardUsecase(repo, files, nil, nil)

	_, err := uc.SaveProfile(context.Background(), userID, SaveProfileInput{FullName: "Ana"}, &AvatarUpload{
		Filename:    "me.png",
		ContentType: "image/png",
		Body:        strings.NewReader("png-bytes"),
	})
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
	if files.has(AvatarBucket, userID.String()+"/me.png") {
		t.Fatalf("expected orphaned upload removed")
	}
}
