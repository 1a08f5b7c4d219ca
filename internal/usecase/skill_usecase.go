package usecase

import (
	"context"
	"errors"
	"strings"

	"gigboard/internal/domain/skill"
	"gigboard/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrSkillAlreadyExists = errors.New("skill already exists")
	ErrSkillNotFound      = errors.New("skill not found")
	ErrCategoryNotFound   = errors.New("category not found")
)

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]skill.Skill, error)
	AddSkill(ctx context.Context, name string, categoryID *uuid.UUID) (skill.Skill, error)
}

type Skill struct {
	repo repository.SkillRepository
}

func NewSkillUsecase(repo repository.SkillRepository) *Skill {
	return &Skill{repo: repo}
}

func (u *Skill) ListSkills(ctx context.Context) ([]skill.Skill, error) {
	items, err := u.repo.GetAllSkills(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	return items, nil
}

func (u *Skill) AddSkill(ctx context.Context, name string, categoryID *uuid.UUID) (skill.Skill, error) {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return skill.Skill{}, ErrInvalidInput
	}

	created, err := u.repo.CreateSkill(ctx, name, categoryID)
	if err != nil {
		serr := storeError(err)
		switch {
		case errors.Is(serr, ErrConflict):
			return skill.Skill{}, ErrSkillAlreadyExists
		case errors.Is(serr, ErrNotFound):
			return skill.Skill{}, ErrCategoryNotFound
		default:
			return skill.Skill{}, serr
		}
	}
	return created, nil
}
