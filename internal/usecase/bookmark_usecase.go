package usecase

import (
	"context"
	"errors"

	"gigboard/internal/domain/profile"
	"gigboard/internal/repository"

	"github.com/google/uuid"
)

type BookmarkUsecase interface {
	// ToggleBookmark flips the (userID, freelancerID) bookmark in one store
	// operation and reports whether it exists afterwards.
	ToggleBookmark(ctx context.Context, userID uuid.UUID, freelancerID uuid.UUID) (bool, error)
	IsBookmarked(ctx context.Context, userID uuid.UUID, freelancerID uuid.UUID) (bool, error)
	ListBookmarks(ctx context.Context, userID uuid.UUID) ([]profile.Profile, error)
}

type Bookmark struct {
	bookmarks repository.BookmarkRepository
}

func NewBookmarkUsecase(bookmarks repository.BookmarkRepository) *Bookmark {
	return &Bookmark{bookmarks: bookmarks}
}

func (u *Bookmark) ToggleBookmark(ctx context.Context, userID uuid.UUID, freelancerID uuid.UUID) (bool, error) {
	if userID == uuid.Nil {
		return false, ErrUnauthorized
	}
	if freelancerID == uuid.Nil {
		return false, ErrInvalidInput
	}

	bookmarked, err := u.bookmarks.Toggle(ctx, userID, freelancerID)
	if err != nil {
		serr := storeError(err)
		if errors.Is(serr, ErrNotFound) {
			return false, ErrProfileNotFound
		}
		return false, serr
	}
	return bookmarked, nil
}

func (u *Bookmark) IsBookmarked(ctx context.Context, userID uuid.UUID, freelancerID uuid.UUID) (bool, error) {
	if userID == uuid.Nil || freelancerID == uuid.Nil {
		return false, nil
	}
	ok, err := u.bookmarks.Exists(ctx, userID, freelancerID)
	if err != nil {
		return false, storeError(err)
	}
	return ok, nil
}

func (u *Bookmark) ListBookmarks(ctx context.Context, userID uuid.UUID) ([]profile.Profile, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	items, err := u.bookmarks.ListProfiles(ctx, userID)
	if err != nil {
		return nil, storeError(err)
	}
	return items, nil
}
