package repository

import (
	"context"

	"gigboard/internal/database"
	"gigboard/internal/domain/profile"

	"github.com/google/uuid"
)

type BookmarkRepository interface {
	// Toggle removes the (userID, freelancerID) bookmark if it exists and
	// creates it otherwise, returning whether the pair is bookmarked afterwards.
	Toggle(ctx context.Context, userID uuid.UUID, freelancerID uuid.UUID) (bool, error)
	Exists(ctx context.Context, userID uuid.UUID, freelancerID uuid.UUID) (bool, error)
	ListProfiles(ctx context.Context, userID uuid.UUID) ([]profile.Profile, error)
}

type PostgresBookmarkRepository struct {
	db database.DB
}

func NewPostgresBookmarkRepository(db database.DB) *PostgresBookmarkRepository {
	return &PostgresBookmarkRepository{db: db}
}

func (r *PostgresBookmarkRepository) Toggle(ctx context.Context, userID uuid.UUID, freelancerID uuid.UUID) (bool, error) {
	var bookmarked bool
	err := database.RunInTx(ctx, r.db, func(tx database.Tx) error {
		// Serializes toggles of the same pair, including the first insert where
		// no row exists yet to lock.
		if _, err := tx.Exec(ctx,
			`SELECT pg_advisory_xact_lock(hashtextextended($1::text || ':' || $2::text, 0))`,
			userID.String(), freelancerID.String(),
		); err != nil {
			return err
		}

		deleted, err := tx.Exec(ctx,
			`DELETE FROM bookmarks WHERE user_id = $1 AND freelancer_id = $2`,
			userID, freelancerID,
		)
		if err != nil {
			return err
		}
		if deleted > 0 {
			bookmarked = false
			return nil
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO bookmarks (user_id, freelancer_id) VALUES ($1, $2)
			 ON CONFLICT (user_id, freelancer_id) DO NOTHING`,
			userID, freelancerID,
		); err != nil {
			return err
		}
		bookmarked = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return bookmarked, nil
}

func (r *PostgresBookmarkRepository) Exists(ctx context.Context, userID uuid.UUID, freelancerID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM bookmarks WHERE user_id = $1 AND freelancer_id = $2)`,
		userID, freelancerID,
	)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresBookmarkRepository) ListProfiles(ctx context.Context, userID uuid.UUID) ([]profile.Profile, error) {
	rows, err := r.db.Query(ctx,
		`SELECT p.id, p.user_id, p.full_name, p.title, p.bio, p.location, p.hourly_rate,
		        p.years_experience, p.avatar_url, p.resume_url, p.portfolio_url, p.availability_status::text,
		        p.profile_views, p.created_at, p.updated_at,
		        COALESCE(array_agg(s.name ORDER BY s.name) FILTER (WHERE s.id IS NOT NULL), '{}')
		 FROM bookmarks b
		 JOIN profiles p ON p.id = b.freelancer_id
		 LEFT JOIN profile_skills ps ON ps.profile_id = p.id
		 LEFT JOIN skills s ON s.id = ps.skill_id
		 WHERE b.user_id = $1
		 GROUP BY p.id, b.created_at
		 ORDER BY b.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	return collectProfiles(rows)
}
