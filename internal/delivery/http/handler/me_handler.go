package handler

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"gigboard/internal/delivery/http/dto"
	"gigboard/internal/delivery/http/middleware"
	"gigboard/internal/domain/profile"
	"gigboard/internal/pkg/response"
	"gigboard/internal/pkg/validator"
	"gigboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const (
	avatarFormField = "avatar"
	maxAvatarBytes  = 5 << 20
)

type MeHandler struct {
	dashboard  usecase.DashboardUsecase
	skills     usecase.ProfileSkillUsecase
	categories usecase.ProfileCategoryUsecase
	projects   usecase.ProjectUsecase
	validate   *validator.Validator
}

type saveProfileRequest struct {
	FullName           string  `json:"full_name" validate:"notblank,max=120"`
	Title              *string `json:"title" validate:"omitempty,max=120"`
	Bio                *string `json:"bio" validate:"omitempty,max=5000"`
	Location           *string `json:"location" validate:"omitempty,max=120"`
	HourlyRate         *int    `json:"hourly_rate" validate:"omitempty,gte=0,lte=100000"`
	YearsExperience    int     `json:"years_experience" validate:"gte=0,lte=80"`
	PortfolioURL       *string `json:"portfolio_url" validate:"omitempty,url"`
	AvailabilityStatus string  `json:"availability_status" validate:"availability"`
}

type addProfileSkillRequest struct {
	SkillID uuid.UUID `json:"skill_id" validate:"required"`
}

type setCategoriesRequest struct {
	CategoryIDs []uuid.UUID `json:"category_ids" validate:"max=20"`
}

type createProjectRequest struct {
	Title          string     `json:"title" validate:"notblank,max=200"`
	Description    *string    `json:"description" validate:"omitempty,max=5000"`
	CategoryID     *uuid.UUID `json:"category_id"`
	ThumbnailURL   *string    `json:"thumbnail_url" validate:"omitempty,url"`
	Images         []string   `json:"images" validate:"max=20,dive,url"`
	ProjectURL     *string    `json:"project_url" validate:"omitempty,url"`
	Technologies   []string   `json:"technologies" validate:"max=30,dive,max=60"`
	ClientName     *string    `json:"client_name" validate:"omitempty,max=120"`
	CompletionDate *time.Time `json:"completion_date"`
	Featured       bool       `json:"featured"`
}

func NewMeHandler(
	dashboard usecase.DashboardUsecase,
	skills usecase.ProfileSkillUsecase,
	categories usecase.ProfileCategoryUsecase,
	projects usecase.ProjectUsecase,
	validate *validator.Validator,
) *MeHandler {
	return &MeHandler{
		dashboard:  dashboard,
		skills:     skills,
		categories: categories,
		projects:   projects,
		validate:   validate,
	}
}

// RegisterRoutes expects r to require authentication.
func (h *MeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/me")
	grp.Get("/profile", h.GetProfile)
	grp.Put("/profile", h.SaveProfile)
	grp.Get("/stats", h.Stats)

	grp.Get("/skills", h.ListSkills)
	grp.Post("/skills", h.AddSkill)
	grp.Delete("/skills/:skillId", h.RemoveSkill)

	grp.Get("/categories", h.ListCategories)
	grp.Put("/categories", h.SetCategories)

	grp.Get("/projects", h.ListProjects)
	grp.Post("/projects", h.CreateProject)
	grp.Delete("/projects/:id", h.DeleteProject)
}

func (h *MeHandler) GetProfile(c fiber.Ctx) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}

	p, err := h.dashboard.GetOwnProfile(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(p))
}

// SaveProfile accepts JSON, or multipart form fields with an optional
// "avatar" file.
func (h *MeHandler) SaveProfile(c fiber.Ctx) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}

	var (
		req    saveProfileRequest
		avatar *usecase.AvatarUpload
	)
	if isMultipart(c) {
		req, err = profileRequestFromForm(c)
		if err != nil {
			return err
		}

		upload, closeFile, err := avatarFromForm(c)
		if err != nil {
			return err
		}
		if closeFile != nil {
			defer closeFile()
		}
		avatar = upload
	} else if err := bindBody(c, &req); err != nil {
		return err
	}

	req.Title = blankToNil(req.Title)
	req.Bio = blankToNil(req.Bio)
	req.Location = blankToNil(req.Location)
	req.PortfolioURL = blankToNil(req.PortfolioURL)
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	saved, err := h.dashboard.SaveProfile(c.Context(), userID, usecase.SaveProfileInput{
		FullName:           req.FullName,
		Title:              req.Title,
		Bio:                req.Bio,
		Location:           req.Location,
		HourlyRate:         req.HourlyRate,
		YearsExperience:    req.YearsExperience,
		PortfolioURL:       req.PortfolioURL,
		AvailabilityStatus: profile.AvailabilityStatus(req.AvailabilityStatus),
	}, avatar)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidAvatar) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid avatar file", nil, err)
		}
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Profile updated", dto.NewProfileResponse(saved))
}

func (h *MeHandler) Stats(c fiber.Ctx) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}

	st, err := h.dashboard.Stats(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewStatsResponse(st))
}

func (h *MeHandler) ListSkills(c fiber.Ctx) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}

	items, err := h.skills.ListProfileSkills(c.Context(), userID)
	if err != nil {
		return mapSkillUsecaseError(err)
	}

	res := make([]dto.ProfileSkillResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.NewProfileSkillResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *MeHandler) AddSkill(c fiber.Ctx) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}

	var req addProfileSkillRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	created, err := h.skills.AddProfileSkill(c.Context(), userID, req.SkillID)
	if err != nil {
		return mapSkillUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewProfileSkillResponse(created))
}

func (h *MeHandler) RemoveSkill(c fiber.Ctx) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}
	skillID, err := uuidParam(c, "skillId")
	if err != nil {
		return err
	}

	if err := h.skills.RemoveProfileSkill(c.Context(), userID, skillID); err != nil {
		return mapSkillUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *MeHandler) ListCategories(c fiber.Ctx) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}

	items, err := h.categories.ListProfileCategories(c.Context(), userID)
	if err != nil {
		return mapSkillUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCategoryListResponse(items))
}

func (h *MeHandler) SetCategories(c fiber.Ctx) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}

	var req setCategoriesRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	items, err := h.categories.SetProfileCategories(c.Context(), userID, req.CategoryIDs)
	if err != nil {
		return mapSkillUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCategoryListResponse(items))
}

func (h *MeHandler) ListProjects(c fiber.Ctx) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}

	own, err := h.dashboard.GetOwnProfile(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	items, err := h.projects.ListProjects(c.Context(), own.ID)
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]dto.ProjectResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.NewProjectResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *MeHandler) CreateProject(c fiber.Ctx) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}

	var req createProjectRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	req.ThumbnailURL = blankToNil(req.ThumbnailURL)
	req.ProjectURL = blankToNil(req.ProjectURL)
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	created, err := h.projects.CreateProject(c.Context(), userID, usecase.CreateProjectInput{
		Title:          req.Title,
		Description:    blankToNil(req.Description),
		CategoryID:     req.CategoryID,
		ThumbnailURL:   req.ThumbnailURL,
		Images:         req.Images,
		ProjectURL:     req.ProjectURL,
		Technologies:   req.Technologies,
		ClientName:     blankToNil(req.ClientName),
		CompletionDate: req.CompletionDate,
		Featured:       req.Featured,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewProjectResponse(created))
}

func (h *MeHandler) DeleteProject(c fiber.Ctx) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.projects.DeleteProject(c.Context(), userID, id); err != nil {
		if errors.Is(err, usecase.ErrProjectNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Project not found", nil, err)
		}
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func isMultipart(c fiber.Ctx) bool {
	return strings.HasPrefix(strings.ToLower(c.Get(fiber.HeaderContentType)), fiber.MIMEMultipartForm)
}

// profileRequestFromForm reads the profile fields of a multipart save.
// Absent and blank text fields both mean "not set".
func profileRequestFromForm(c fiber.Ctx) (saveProfileRequest, error) {
	req := saveProfileRequest{
		FullName:           c.FormValue("full_name"),
		Title:              formText(c, "title"),
		Bio:                formText(c, "bio"),
		Location:           formText(c, "location"),
		PortfolioURL:       formText(c, "portfolio_url"),
		AvailabilityStatus: strings.TrimSpace(c.FormValue("availability_status")),
	}

	if raw := strings.TrimSpace(c.FormValue("hourly_rate")); raw != "" {
		rate, err := strconv.Atoi(raw)
		if err != nil {
			return saveProfileRequest{}, &validator.ValidationError{Fields: map[string]string{"hourly_rate": "must be a whole number"}}
		}
		req.HourlyRate = &rate
	}
	if raw := strings.TrimSpace(c.FormValue("years_experience")); raw != "" {
		years, err := strconv.Atoi(raw)
		if err != nil {
			return saveProfileRequest{}, &validator.ValidationError{Fields: map[string]string{"years_experience": "must be a whole number"}}
		}
		req.YearsExperience = years
	}
	return req, nil
}

// avatarFromForm returns nil when no avatar was sent. The returned func
// closes the uploaded file.
func avatarFromForm(c fiber.Ctx) (*usecase.AvatarUpload, func(), error) {
	fh, err := c.FormFile(avatarFormField)
	if err != nil || fh == nil {
		return nil, nil, nil
	}
	if fh.Size > maxAvatarBytes {
		return nil, nil, middleware.NewAppError(fiber.StatusRequestEntityTooLarge, "Avatar must be 5MB or smaller", nil, nil)
	}

	contentType := fh.Header.Get(fiber.HeaderContentType)
	if !strings.HasPrefix(contentType, "image/") {
		return nil, nil, middleware.NewAppError(fiber.StatusBadRequest, "Avatar must be an image", nil, nil)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid avatar file", nil, err)
	}
	return &usecase.AvatarUpload{
		Filename:    fh.Filename,
		ContentType: contentType,
		Body:        f,
	}, func() { _ = f.Close() }, nil
}

func formText(c fiber.Ctx, key string) *string {
	v := c.FormValue(key)
	return blankToNil(&v)
}

func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
