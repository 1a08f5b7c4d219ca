package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"path"
	"strings"

	"gigboard/internal/domain/profile"
	"gigboard/internal/infrastructure/storage"
	"gigboard/internal/repository"

	"github.com/google/uuid"
)

const AvatarBucket = "avatars"

var ErrInvalidAvatar = errors.New("invalid avatar")

type SaveProfileInput struct {
	FullName           string
	Title              *string
	Bio                *string
	Location           *string
	HourlyRate         *int
	YearsExperience    int
	PortfolioURL       *string
	AvailabilityStatus profile.AvailabilityStatus
}

// AvatarUpload is a new avatar file sent with a profile save.
type AvatarUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

type DashboardUsecase interface {
	GetOwnProfile(ctx context.Context, userID uuid.UUID) (profile.Profile, error)
	// SaveProfile uploads avatar when given, then writes the profile row with
	// the avatar's public URL. A failed row write removes the upload unless the
	// stored profile still points at it.
	SaveProfile(ctx context.Context, userID uuid.UUID, in SaveProfileInput, avatar *AvatarUpload) (profile.Profile, error)
	Stats(ctx context.Context, userID uuid.UUID) (profile.Stats, error)
}

type Dashboard struct {
	profiles repository.ProfileRepository
	files    storage.Storage
	listings listingInvalidator
	logger   *log.Logger
}

func NewDashboardUsecase(profiles repository.ProfileRepository, files storage.Storage, listings listingInvalidator, logger *log.Logger) *Dashboard {
	return &Dashboard{profiles: profiles, files: files, listings: listings, logger: logger}
}

func (u *Dashboard) GetOwnProfile(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	return ownProfile(ctx, u.profiles, userID)
}

func (u *Dashboard) SaveProfile(ctx context.Context, userID uuid.UUID, in SaveProfileInput, avatar *AvatarUpload) (profile.Profile, error) {
	if userID == uuid.Nil {
		return profile.Profile{}, ErrUnauthorized
	}

	fields, err := normalizeProfileFields(in)
	if err != nil {
		return profile.Profile{}, err
	}

	var avatarURL *string
	var objectPath string
	if avatar != nil {
		objectPath, err = AvatarPath(userID, avatar.Filename)
		if err != nil {
			return profile.Profile{}, err
		}
		if u.files == nil {
			return profile.Profile{}, ErrInternal
		}
		if err := u.files.Save(ctx, AvatarBucket, objectPath, avatar.Body, avatar.ContentType); err != nil {
			return profile.Profile{}, &StoreError{Kind: ErrInternal, Message: err.Error(), Err: err}
		}
		url := u.files.PublicURL(AvatarBucket, objectPath)
		avatarURL = &url
	}

	updated, err := u.profiles.Update(ctx, userID, fields, avatarURL)
	if err != nil {
		if avatarURL != nil {
			u.discardAvatar(ctx, userID, objectPath, *avatarURL)
		}
		if errors.Is(err, repository.ErrProfileNotFound) {
			return profile.Profile{}, ErrProfileNotFound
		}
		return profile.Profile{}, storeError(err)
	}

	invalidate(ctx, u.listings)
	return updated, nil
}

func (u *Dashboard) discardAvatar(ctx context.Context, userID uuid.UUID, objectPath, url string) {
	current, err := u.profiles.GetByUserID(ctx, userID)
	switch {
	case err == nil && current.AvatarURL != nil && *current.AvatarURL == url:
		return
	case err != nil && !errors.Is(err, repository.ErrProfileNotFound):
		if u.logger != nil {
			u.logger.Printf("Avatar kept after failed save | user_id=%s avatar=%s err=%v", userID, url, err)
		}
		return
	}

	if err := u.files.Delete(ctx, AvatarBucket, objectPath); err != nil && u.logger != nil {
		u.logger.Printf("Avatar cleanup failed | user_id=%s avatar=%s err=%v", userID, url, err)
	}
}

func (u *Dashboard) Stats(ctx context.Context, userID uuid.UUID) (profile.Stats, error) {
	if userID == uuid.Nil {
		return profile.Stats{}, ErrUnauthorized
	}
	st, err := u.profiles.Stats(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return profile.Stats{}, ErrProfileNotFound
		}
		return profile.Stats{}, storeError(err)
	}
	return st, nil
}

// AvatarPath is the object path of an avatar inside AvatarBucket. Characters
// outside [A-Za-z0-9._-] become '-'. Uploading the same file name again
// overwrites the previous object.
func AvatarPath(userID uuid.UUID, filename string) (string, error) {
	name := path.Base(strings.ReplaceAll(strings.TrimSpace(filename), "\\", "/"))
	if name == "" || name == "." || name == ".." || name == "/" {
		return "", ErrInvalidAvatar
	}
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, name)
	if strings.Trim(name, ".") == "" {
		return "", ErrInvalidAvatar
	}
	return userID.String() + "/" + name, nil
}

func normalizeProfileFields(in SaveProfileInput) (profile.Fields, error) {
	name := strings.TrimSpace(in.FullName)
	if name == "" {
		return profile.Fields{}, ErrInvalidInput
	}
	if in.HourlyRate != nil && *in.HourlyRate < 0 {
		return profile.Fields{}, ErrInvalidInput
	}
	if in.YearsExperience < 0 {
		return profile.Fields{}, ErrInvalidInput
	}

	status := in.AvailabilityStatus
	if status == "" {
		status = profile.Available
	}
	if !status.Valid() {
		return profile.Fields{}, ErrInvalidInput
	}

	return profile.Fields{
		FullName:           name,
		Title:              optionalText(in.Title),
		Bio:                optionalText(in.Bio),
		Location:           optionalText(in.Location),
		HourlyRate:         in.HourlyRate,
		YearsExperience:    in.YearsExperience,
		PortfolioURL:       optionalText(in.PortfolioURL),
		AvailabilityStatus: status,
	}, nil
}

// optionalText maps blank input to NULL.
func optionalText(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
