package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"gigboard/internal/domain/project"
	"gigboard/internal/repository"

	"github.com/google/uuid"
)

var ErrProjectNotFound = errors.New("project not found")

type CreateProjectInput struct {
	Title          string
	Description    *string
	CategoryID     *uuid.UUID
	ThumbnailURL   *string
	Images         []string
	ProjectURL     *string
	Technologies   []string
	ClientName     *string
	CompletionDate *time.Time
	Featured       bool
}

type ProjectUsecase interface {
	// ListProjects returns the profile's portfolio items, newest first.
	ListProjects(ctx context.Context, profileID uuid.UUID) ([]project.Project, error)
	CreateProject(ctx context.Context, userID uuid.UUID, in CreateProjectInput) (project.Project, error)
	DeleteProject(ctx context.Context, userID uuid.UUID, projectID uuid.UUID) error
}

type Project struct {
	projects repository.ProjectRepository
	profiles repository.ProfileRepository
}

func NewProjectUsecase(projects repository.ProjectRepository, profiles repository.ProfileRepository) *Project {
	return &Project{projects: projects, profiles: profiles}
}

func (u *Project) ListProjects(ctx context.Context, profileID uuid.UUID) ([]project.Project, error) {
	if profileID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	items, err := u.projects.ListByProfileID(ctx, profileID)
	if err != nil {
		return nil, storeError(err)
	}
	return items, nil
}

func (u *Project) CreateProject(ctx context.Context, userID uuid.UUID, in CreateProjectInput) (project.Project, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return project.Project{}, ErrInvalidInput
	}

	owner, err := ownProfile(ctx, u.profiles, userID)
	if err != nil {
		return project.Project{}, err
	}

	created, err := u.projects.Create(ctx, project.Project{
		ID:             uuid.New(),
		ProfileID:      owner.ID,
		CategoryID:     in.CategoryID,
		Title:          title,
		Description:    in.Description,
		ThumbnailURL:   in.ThumbnailURL,
		Images:         compactStrings(in.Images),
		ProjectURL:     in.ProjectURL,
		Technologies:   compactStrings(in.Technologies),
		ClientName:     in.ClientName,
		CompletionDate: in.CompletionDate,
		Featured:       in.Featured,
	})
	if err != nil {
		return project.Project{}, storeError(err)
	}
	return created, nil
}

func (u *Project) DeleteProject(ctx context.Context, userID uuid.UUID, projectID uuid.UUID) error {
	if projectID == uuid.Nil {
		return ErrInvalidInput
	}

	owner, err := ownProfile(ctx, u.profiles, userID)
	if err != nil {
		return err
	}

	if err := u.projects.Delete(ctx, projectID, owner.ID); err != nil {
		switch {
		case errors.Is(err, repository.ErrProjectNotFound):
			return ErrProjectNotFound
		case errors.Is(err, repository.ErrProjectForbidden):
			return ErrForbidden
		default:
			return storeError(err)
		}
	}
	return nil
}

func compactStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
