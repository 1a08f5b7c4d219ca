package usecase

import (
	"context"
	"log"
	"strings"

	"gigboard/internal/domain/profile"
	"gigboard/internal/domain/skill"
	"gigboard/internal/repository"

	"github.com/google/uuid"
)

// AllCategories is the category selector value that disables the category filter.
const AllCategories = "all"

type ProfileFilter struct {
	CategoryID *uuid.UUID
	SearchTerm string
}

// ParseCategory turns the selector value into a filter. Empty and "all" mean no filter.
func ParseCategory(raw string) (*uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, AllCategories) {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, ErrInvalidInput
	}
	return &id, nil
}

type BrowseUsecase interface {
	ListProfiles(ctx context.Context, f ProfileFilter) ([]profile.Profile, error)
	ListCategories(ctx context.Context) ([]skill.Category, error)
	InvalidateListings(ctx context.Context)
}

type Browse struct {
	profiles   repository.ProfileRepository
	categories repository.CategoryRepository
	cache      ListingCache
	logger     *log.Logger
}

func NewBrowseUsecase(profiles repository.ProfileRepository, categories repository.CategoryRepository, cache ListingCache, logger *log.Logger) *Browse {
	return &Browse{profiles: profiles, categories: categories, cache: cache, logger: logger}
}

// ListProfiles returns listed profiles, restricted to f.CategoryID when set
// and then narrowed by f.SearchTerm. Order is the store's order.
func (u *Browse) ListProfiles(ctx context.Context, f ProfileFilter) ([]profile.Profile, error) {
	key := ListingCacheKey(f.CategoryID)

	var rows []profile.Profile
	hit := false
	if u.cache != nil {
		ok, err := u.cache.GetJSON(ctx, key, &rows)
		if err != nil {
			u.logf("Browse cache read error | key=%s err=%v", key, err)
		}
		hit = ok && err == nil
	}

	if !hit {
		var err error
		rows, err = u.profiles.ListListed(ctx, f.CategoryID)
		if err != nil {
			return nil, storeError(err)
		}
		if u.cache != nil {
			if err := u.cache.SetJSON(ctx, key, rows, 0); err != nil {
				u.logf("Browse cache write error | key=%s err=%v", key, err)
			}
		}
	}

	return FilterProfiles(rows, f.SearchTerm), nil
}

func (u *Browse) ListCategories(ctx context.Context) ([]skill.Category, error) {
	items, err := u.categories.ListAll(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	return items, nil
}

// InvalidateListings drops every cached listing. Failures are logged only.
func (u *Browse) InvalidateListings(ctx context.Context) {
	if u == nil || u.cache == nil {
		return
	}
	if err := u.cache.DeleteByPattern(ctx, listingKeyPattern); err != nil {
		u.logf("Browse cache invalidate error | err=%v", err)
	}
}

func (u *Browse) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf(format, args...)
	}
}

// FilterProfiles keeps the profiles whose full name, title or any skill name
// contains term, ignoring case. An empty term keeps everything.
func FilterProfiles(profiles []profile.Profile, term string) []profile.Profile {
	out := make([]profile.Profile, 0, len(profiles))
	if term == "" {
		return append(out, profiles...)
	}

	needle := strings.ToLower(term)
	for _, p := range profiles {
		if matchesSearch(p, needle) {
			out = append(out, p)
		}
	}
	return out
}

func matchesSearch(p profile.Profile, needle string) bool {
	if strings.Contains(strings.ToLower(p.FullName), needle) {
		return true
	}
	if p.Title != nil && strings.Contains(strings.ToLower(*p.Title), needle) {
		return true
	}
	for _, s := range p.Skills {
		if strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}
