package repository

import (
	"context"
	"errors"

	"gigboard/internal/database"
	"gigboard/internal/domain/skill"

	"github.com/google/uuid"
)

var ErrProfileSkillNotFound = errors.New("profile skill not found")

type ProfileSkillRepository interface {
	FindByProfileID(ctx context.Context, profileID uuid.UUID) ([]skill.ProfileSkill, error)
	Create(ctx context.Context, profileID uuid.UUID, skillID uuid.UUID) (skill.ProfileSkill, error)
	Delete(ctx context.Context, profileID uuid.UUID, skillID uuid.UUID) error
}

type PostgresProfileSkillRepository struct {
	db database.DB
}

func NewPostgresProfileSkillRepository(db database.DB) *PostgresProfileSkillRepository {
	return &PostgresProfileSkillRepository{db: db}
}

func (r *PostgresProfileSkillRepository) FindByProfileID(ctx context.Context, profileID uuid.UUID) ([]skill.ProfileSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT ps.id, ps.profile_id, ps.skill_id, s.name, ps.created_at
		 FROM profile_skills ps
		 JOIN skills s ON s.id = ps.skill_id
		 WHERE ps.profile_id = $1
		 ORDER BY s.name ASC`,
		profileID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.ProfileSkill, 0)
	for rows.Next() {
		var ps skill.ProfileSkill
		if err := rows.Scan(&ps.ID, &ps.ProfileID, &ps.SkillID, &ps.SkillName, &ps.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, ps)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresProfileSkillRepository) Create(ctx context.Context, profileID uuid.UUID, skillID uuid.UUID) (skill.ProfileSkill, error) {
	row := r.db.QueryRow(ctx,
		`WITH ins AS (
			INSERT INTO profile_skills (id, profile_id, skill_id) VALUES ($1, $2, $3)
			RETURNING id, profile_id, skill_id, created_at
		 )
		 SELECT ins.id, ins.profile_id, ins.skill_id, s.name, ins.created_at
		 FROM ins JOIN skills s ON s.id = ins.skill_id`,
		uuid.New(), profileID, skillID,
	)

	var ps skill.ProfileSkill
	if err := row.Scan(&ps.ID, &ps.ProfileID, &ps.SkillID, &ps.SkillName, &ps.CreatedAt); err != nil {
		return skill.ProfileSkill{}, err
	}
	return ps, nil
}

func (r *PostgresProfileSkillRepository) Delete(ctx context.Context, profileID uuid.UUID, skillID uuid.UUID) error {
	rowsAffected, err := r.db.Exec(ctx,
		`DELETE FROM profile_skills WHERE profile_id = $1 AND skill_id = $2`,
		profileID, skillID,
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrProfileSkillNotFound
	}
	return nil
}
