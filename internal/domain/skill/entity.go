package skill

import (
	"time"

	"github.com/google/uuid"
)

type Skill struct {
	ID         uuid.UUID
	Name       string
	CategoryID *uuid.UUID
	CreatedAt  time.Time
}

type Category struct {
	ID          uuid.UUID
	Name        string
	Slug        string
	Description *string
	CreatedAt   time.Time
}

// ProfileSkill is a join row linking a profile to a skill.
type ProfileSkill struct {
	ID        uuid.UUID
	ProfileID uuid.UUID
	SkillID   uuid.UUID
	SkillName string
	CreatedAt time.Time
}
