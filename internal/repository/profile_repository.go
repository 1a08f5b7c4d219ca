package repository

import (
	"context"
	"errors"

	"gigboard/internal/database"
	"gigboard/internal/domain/profile"

	"github.com/google/uuid"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	// ListListed returns profiles with a title set. A non-nil categoryID keeps
	// only profiles linked to that category.
	ListListed(ctx context.Context, categoryID *uuid.UUID) ([]profile.Profile, error)
	GetByID(ctx context.Context, id uuid.UUID) (profile.Profile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (profile.Profile, error)
	// Update writes f to the caller's profile. A nil avatarURL keeps the stored one.
	Update(ctx context.Context, userID uuid.UUID, f profile.Fields, avatarURL *string) (profile.Profile, error)
	IncrementViews(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context, userID uuid.UUID) (profile.Stats, error)
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

const profileSelect = `SELECT p.id, p.user_id, p.full_name, p.title, p.bio, p.location, p.hourly_rate,
		p.years_experience, p.avatar_url, p.resume_url, p.portfolio_url, p.availability_status::text,
		p.profile_views, p.created_at, p.updated_at,
		COALESCE(array_agg(s.name ORDER BY s.name) FILTER (WHERE s.id IS NOT NULL), '{}')
	 FROM profiles p
	 LEFT JOIN profile_skills ps ON ps.profile_id = p.id
	 LEFT JOIN skills s ON s.id = ps.skill_id`

func (r *PostgresProfileRepository) ListListed(ctx context.Context, categoryID *uuid.UUID) ([]profile.Profile, error) {
	rows, err := r.db.Query(ctx,
		profileSelect+`
		 WHERE p.title IS NOT NULL
		   AND ($1::uuid IS NULL OR EXISTS (
			SELECT 1 FROM profile_categories pc WHERE pc.profile_id = p.id AND pc.category_id = $1
		   ))
		 GROUP BY p.id
		 ORDER BY p.created_at DESC`,
		categoryID,
	)
	if err != nil {
		return nil, err
	}
	return collectProfiles(rows)
}

func (r *PostgresProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (profile.Profile, error) {
	row := r.db.QueryRow(ctx, profileSelect+` WHERE p.id = $1 GROUP BY p.id`, id)
	return scanProfile(row)
}

func (r *PostgresProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	row := r.db.QueryRow(ctx, profileSelect+` WHERE p.user_id = $1 GROUP BY p.id`, userID)
	return scanProfile(row)
}

func (r *PostgresProfileRepository) Update(ctx context.Context, userID uuid.UUID, f profile.Fields, avatarURL *string) (profile.Profile, error) {
	rowsAffected, err := r.db.Exec(ctx,
		`UPDATE profiles
		 SET full_name = $2, title = $3, bio = $4, location = $5, hourly_rate = $6,
		     years_experience = $7, portfolio_url = $8, availability_status = $9::availability_status,
		     avatar_url = COALESCE($10, avatar_url), updated_at = now()
		 WHERE user_id = $1`,
		userID, f.FullName, f.Title, f.Bio, f.Location, f.HourlyRate,
		f.YearsExperience, f.PortfolioURL, string(f.AvailabilityStatus), avatarURL,
	)
	if err != nil {
		return profile.Profile{}, err
	}
	if rowsAffected == 0 {
		return profile.Profile{}, ErrProfileNotFound
	}
	return r.GetByUserID(ctx, userID)
}

func (r *PostgresProfileRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `SELECT increment_profile_views($1)`, id)
	return err
}

func (r *PostgresProfileRepository) Stats(ctx context.Context, userID uuid.UUID) (profile.Stats, error) {
	row := r.db.QueryRow(ctx,
		`SELECT p.profile_views,
		        (SELECT count(*) FROM bookmarks b WHERE b.freelancer_id = p.id),
		        (SELECT count(*) FROM reviews rv WHERE rv.freelancer_id = p.id),
		        (SELECT COALESCE(avg(rv.rating), 0)::float8 FROM reviews rv WHERE rv.freelancer_id = p.id),
		        (SELECT count(*) FROM projects pr WHERE pr.profile_id = p.id)
		 FROM profiles p
		 WHERE p.user_id = $1`,
		userID,
	)

	var st profile.Stats
	if err := row.Scan(&st.ProfileViews, &st.BookmarksReceived, &st.ReviewCount, &st.AverageRating, &st.ProjectCount); err != nil {
		if database.IsNoRows(err) {
			return profile.Stats{}, ErrProfileNotFound
		}
		return profile.Stats{}, err
	}
	return st, nil
}

func collectProfiles(rows database.Rows) ([]profile.Profile, error) {
	defer rows.Close()

	out := make([]profile.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanProfile(row database.Row) (profile.Profile, error) {
	var (
		p      profile.Profile
		status string
	)
	err := row.Scan(
		&p.ID, &p.UserID, &p.FullName, &p.Title, &p.Bio, &p.Location, &p.HourlyRate,
		&p.YearsExperience, &p.AvatarURL, &p.ResumeURL, &p.PortfolioURL, &status,
		&p.ProfileViews, &p.CreatedAt, &p.UpdatedAt, &p.Skills,
	)
	if err != nil {
		if database.IsNoRows(err) {
			return profile.Profile{}, ErrProfileNotFound
		}
		return profile.Profile{}, err
	}
	p.AvailabilityStatus = profile.AvailabilityStatus(status)
	return p, nil
}
