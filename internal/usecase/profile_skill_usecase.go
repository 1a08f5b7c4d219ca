package usecase

import (
	"context"
	"errors"

	"gigboard/internal/domain/skill"
	"gigboard/internal/repository"

	"github.com/google/uuid"
)

type ProfileSkillUsecase interface {
	ListProfileSkills(ctx context.Context, userID uuid.UUID) ([]skill.ProfileSkill, error)
	AddProfileSkill(ctx context.Context, userID uuid.UUID, skillID uuid.UUID) (skill.ProfileSkill, error)
	RemoveProfileSkill(ctx context.Context, userID uuid.UUID, skillID uuid.UUID) error
}

type ProfileSkill struct {
	links    repository.ProfileSkillRepository
	skills   repository.SkillRepository
	profiles repository.ProfileRepository
	listings listingInvalidator
}

func NewProfileSkillUsecase(links repository.ProfileSkillRepository, skills repository.SkillRepository, profiles repository.ProfileRepository, listings listingInvalidator) *ProfileSkill {
	return &ProfileSkill{links: links, skills: skills, profiles: profiles, listings: listings}
}

func (u *ProfileSkill) ListProfileSkills(ctx context.Context, userID uuid.UUID) ([]skill.ProfileSkill, error) {
	owner, err := ownProfile(ctx, u.profiles, userID)
	if err != nil {
		return nil, err
	}
	items, err := u.links.FindByProfileID(ctx, owner.ID)
	if err != nil {
		return nil, storeError(err)
	}
	return items, nil
}

func (u *ProfileSkill) AddProfileSkill(ctx context.Context, userID uuid.UUID, skillID uuid.UUID) (skill.ProfileSkill, error) {
	if skillID == uuid.Nil {
		return skill.ProfileSkill{}, ErrInvalidInput
	}

	owner, err := ownProfile(ctx, u.profiles, userID)
	if err != nil {
		return skill.ProfileSkill{}, err
	}

	exists, err := u.skills.SkillExistsByID(ctx, skillID)
	if err != nil {
		return skill.ProfileSkill{}, storeError(err)
	}
	if !exists {
		return skill.ProfileSkill{}, ErrSkillNotFound
	}

	created, err := u.links.Create(ctx, owner.ID, skillID)
	if err != nil {
		serr := storeError(err)
		switch {
		case errors.Is(serr, ErrConflict):
			return skill.ProfileSkill{}, ErrSkillAlreadyExists
		case errors.Is(serr, ErrNotFound):
			return skill.ProfileSkill{}, ErrSkillNotFound
		default:
			return skill.ProfileSkill{}, serr
		}
	}

	invalidate(ctx, u.listings)
	return created, nil
}

func (u *ProfileSkill) RemoveProfileSkill(ctx context.Context, userID uuid.UUID, skillID uuid.UUID) error {
	if skillID == uuid.Nil {
		return ErrInvalidInput
	}

	owner, err := ownProfile(ctx, u.profiles, userID)
	if err != nil {
		return err
	}

	if err := u.links.Delete(ctx, owner.ID, skillID); err != nil {
		if errors.Is(err, repository.ErrProfileSkillNotFound) {
			return ErrSkillNotFound
		}
		return storeError(err)
	}

	invalidate(ctx, u.listings)
	return nil
}
