package repository

import (
	"context"

	"gigboard/internal/database"
	"gigboard/internal/domain/skill"

	"github.com/google/uuid"
)

type CategoryRepository interface {
	ListAll(ctx context.Context) ([]skill.Category, error)
	ListByProfileID(ctx context.Context, profileID uuid.UUID) ([]skill.Category, error)
	// ReplaceForProfile makes categoryIDs the exact set linked to the profile.
	ReplaceForProfile(ctx context.Context, profileID uuid.UUID, categoryIDs []uuid.UUID) error
}

type PostgresCategoryRepository struct {
	db database.DB
}

func NewPostgresCategoryRepository(db database.DB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

func (r *PostgresCategoryRepository) ListAll(ctx context.Context) ([]skill.Category, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, slug, description, created_at FROM categories ORDER BY name ASC`,
	)
	if err != nil {
		return nil, err
	}
	return collectCategories(rows)
}

func (r *PostgresCategoryRepository) ListByProfileID(ctx context.Context, profileID uuid.UUID) ([]skill.Category, error) {
	rows, err := r.db.Query(ctx,
		`SELECT c.id, c.name, c.slug, c.description, c.created_at
		 FROM profile_categories pc
		 JOIN categories c ON c.id = pc.category_id
		 WHERE pc.profile_id = $1
		 ORDER BY c.name ASC`,
		profileID,
	)
	if err != nil {
		return nil, err
	}
	return collectCategories(rows)
}

func (r *PostgresCategoryRepository) ReplaceForProfile(ctx context.Context, profileID uuid.UUID, categoryIDs []uuid.UUID) error {
	ids := make([]string, 0, len(categoryIDs))
	for _, id := range categoryIDs {
		ids = append(ids, id.String())
	}

	return database.RunInTx(ctx, r.db, func(tx database.Tx) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM profile_categories WHERE profile_id = $1 AND NOT (category_id = ANY($2::uuid[]))`,
			profileID, ids,
		); err != nil {
			return err
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO profile_categories (profile_id, category_id)
			 SELECT $1, unnest($2::uuid[])
			 ON CONFLICT (profile_id, category_id) DO NOTHING`,
			profileID, ids,
		)
		return err
	})
}

func collectCategories(rows database.Rows) ([]skill.Category, error) {
	defer rows.Close()

	out := make([]skill.Category, 0)
	for rows.Next() {
		var c skill.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
