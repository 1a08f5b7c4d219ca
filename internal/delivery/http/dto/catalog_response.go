package dto

import (
	"gigboard/internal/domain/skill"

	"github.com/google/uuid"
)

type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description"`
}

func NewCategoryListResponse(items []skill.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(items))
	for _, c := range items {
		out = append(out, CategoryResponse{ID: c.ID, Name: c.Name, Slug: c.Slug, Description: c.Description})
	}
	return out
}

type SkillResponse struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	CategoryID *uuid.UUID `json:"category_id"`
}

func NewSkillResponse(s skill.Skill) SkillResponse {
	return SkillResponse{ID: s.ID, Name: s.Name, CategoryID: s.CategoryID}
}

type ProfileSkillResponse struct {
	ID        uuid.UUID `json:"id"`
	SkillID   uuid.UUID `json:"skill_id"`
	SkillName string    `json:"skill_name"`
}

func NewProfileSkillResponse(ps skill.ProfileSkill) ProfileSkillResponse {
	return ProfileSkillResponse{ID: ps.ID, SkillID: ps.SkillID, SkillName: ps.SkillName}
}
