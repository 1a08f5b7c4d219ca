package repository

import (
	"context"
	"errors"

	"gigboard/internal/database"
	"gigboard/internal/domain/project"

	"github.com/google/uuid"
)

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrProjectForbidden = errors.New("forbidden")
)

type ProjectRepository interface {
	// ListByProfileID returns the profile's portfolio, newest first.
	ListByProfileID(ctx context.Context, profileID uuid.UUID) ([]project.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (project.Project, error)
	Create(ctx context.Context, p project.Project) (project.Project, error)
	Delete(ctx context.Context, id uuid.UUID, profileID uuid.UUID) error
}

type PostgresProjectRepository struct {
	db database.DB
}

func NewPostgresProjectRepository(db database.DB) *PostgresProjectRepository {
	return &PostgresProjectRepository{db: db}
}

const projectColumns = `id, profile_id, category_id, title, description, thumbnail_url, images, project_url,
		technologies, client_name, completion_date, featured, created_at, updated_at`

func (r *PostgresProjectRepository) ListByProfileID(ctx context.Context, profileID uuid.UUID) ([]project.Project, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+projectColumns+`
		 FROM projects
		 WHERE profile_id = $1
		 ORDER BY created_at DESC`,
		profileID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]project.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
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

func (r *PostgresProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (project.Project, error) {
	row := r.db.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
	return scanProject(row)
}

func (r *PostgresProjectRepository) Create(ctx context.Context, p project.Project) (project.Project, error) {
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Technologies == nil {
		p.Technologies = []string{}
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO projects (id, profile_id, category_id, title, description, thumbnail_url, images,
		                       project_url, technologies, client_name, completion_date, featured)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING `+projectColumns,
		p.ID, p.ProfileID, p.CategoryID, p.Title, p.Description, p.ThumbnailURL, p.Images,
		p.ProjectURL, p.Technologies, p.ClientName, p.CompletionDate, p.Featured,
	)
	return scanProject(row)
}

func (r *PostgresProjectRepository) Delete(ctx context.Context, id uuid.UUID, profileID uuid.UUID) error {
	var owner uuid.UUID
	row := r.db.QueryRow(ctx, `SELECT profile_id FROM projects WHERE id = $1`, id)
	if err := row.Scan(&owner); err != nil {
		if database.IsNoRows(err) {
			return ErrProjectNotFound
		}
		return err
	}
	if owner != profileID {
		return ErrProjectForbidden
	}

	_, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1 AND profile_id = $2`, id, profileID)
	return err
}

func scanProject(row database.Row) (project.Project, error) {
	var p project.Project
	err := row.Scan(
		&p.ID, &p.ProfileID, &p.CategoryID, &p.Title, &p.Description, &p.ThumbnailURL, &p.Images,
		&p.ProjectURL, &p.Technologies, &p.ClientName, &p.CompletionDate, &p.Featured,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if database.IsNoRows(err) {
			return project.Project{}, ErrProjectNotFound
		}
		return project.Project{}, err
	}
	return p, nil
}
