package repository

import (
	"context"

	"gigboard/internal/database"
	"gigboard/internal/domain/review"

	"github.com/google/uuid"
)

type ReviewRepository interface {
	ListByFreelancerID(ctx context.Context, freelancerID uuid.UUID) ([]review.Review, error)
	Summary(ctx context.Context, freelancerID uuid.UUID) (review.Summary, error)
	// Summaries returns one summary per freelancer that has reviews. Missing
	// ids have none.
	Summaries(ctx context.Context, freelancerIDs []uuid.UUID) (map[uuid.UUID]review.Summary, error)
	Create(ctx context.Context, rv review.Review) (review.Review, error)
}

type PostgresReviewRepository struct {
	db database.DB
}

func NewPostgresReviewRepository(db database.DB) *PostgresReviewRepository {
	return &PostgresReviewRepository{db: db}
}

func (r *PostgresReviewRepository) ListByFreelancerID(ctx context.Context, freelancerID uuid.UUID) ([]review.Review, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, reviewer_id, freelancer_id, project_id, rating, comment, created_at, updated_at
		 FROM reviews
		 WHERE freelancer_id = $1
		 ORDER BY created_at DESC`,
		freelancerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]review.Review, 0)
	for rows.Next() {
		var rv review.Review
		if err := rows.Scan(&rv.ID, &rv.ReviewerID, &rv.FreelancerID, &rv.ProjectID, &rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresReviewRepository) Summary(ctx context.Context, freelancerID uuid.UUID) (review.Summary, error) {
	var s review.Summary
	row := r.db.QueryRow(ctx,
		`SELECT COALESCE(avg(rating), 0)::float8, count(*) FROM reviews WHERE freelancer_id = $1`,
		freelancerID,
	)
	if err := row.Scan(&s.Average, &s.Count); err != nil {
		return review.Summary{}, err
	}
	return s, nil
}

func (r *PostgresReviewRepository) Summaries(ctx context.Context, freelancerIDs []uuid.UUID) (map[uuid.UUID]review.Summary, error) {
	out := make(map[uuid.UUID]review.Summary, len(freelancerIDs))
	if len(freelancerIDs) == 0 {
		return out, nil
	}

	ids := make([]string, 0, len(freelancerIDs))
	for _, id := range freelancerIDs {
		ids = append(ids, id.String())
	}

	rows, err := r.db.Query(ctx,
		`SELECT freelancer_id, avg(rating)::float8, count(*)
		 FROM reviews
		 WHERE freelancer_id = ANY($1::uuid[])
		 GROUP BY freelancer_id`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var s review.Summary
		if err := rows.Scan(&id, &s.Average, &s.Count); err != nil {
			return nil, err
		}
		out[id] = s
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresReviewRepository) Create(ctx context.Context, rv review.Review) (review.Review, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO reviews (id, reviewer_id, freelancer_id, project_id, rating, comment)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, reviewer_id, freelancer_id, project_id, rating, comment, created_at, updated_at`,
		rv.ID, rv.ReviewerID, rv.FreelancerID, rv.ProjectID, rv.Rating, rv.Comment,
	)

	var out review.Review
	if err := row.Scan(&out.ID, &out.ReviewerID, &out.FreelancerID, &out.ProjectID, &out.Rating, &out.Comment, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return review.Review{}, err
	}
	return out, nil
}
