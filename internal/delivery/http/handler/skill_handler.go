package handler

import (
	"errors"

	"gigboard/internal/delivery/http/dto"
	"gigboard/internal/delivery/http/middleware"
	"gigboard/internal/pkg/response"
	"gigboard/internal/pkg/validator"
	"gigboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	skills   usecase.SkillUsecase
	browse   usecase.BrowseUsecase
	validate *validator.Validator
	auth     fiber.Handler
}

type createSkillRequest struct {
	Name       string     `json:"name" validate:"notblank,max=80"`
	CategoryID *uuid.UUID `json:"category_id"`
}

func NewCatalogHandler(skills usecase.SkillUsecase, browse usecase.BrowseUsecase, validate *validator.Validator, auth fiber.Handler) *CatalogHandler {
	return &CatalogHandler{skills: skills, browse: browse, validate: validate, auth: auth}
}

func (h *CatalogHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/categories", h.ListCategories)

	grp := r.Group("/skills")
	grp.Get("/", h.ListSkills)
	grp.Post("/", h.auth, h.CreateSkill)
}

func (h *CatalogHandler) ListCategories(c fiber.Ctx) error {
	items, err := h.browse.ListCategories(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCategoryListResponse(items))
}

func (h *CatalogHandler) ListSkills(c fiber.Ctx) error {
	items, err := h.skills.ListSkills(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]dto.SkillResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.NewSkillResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *CatalogHandler) CreateSkill(c fiber.Ctx) error {
	var req createSkillRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	created, err := h.skills.AddSkill(c.Context(), req.Name, req.CategoryID)
	if err != nil {
		return mapSkillUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Skill created successfully", dto.NewSkillResponse(created))
}

func mapSkillUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrSkillAlreadyExists):
		return middleware.NewAppError(fiber.StatusConflict, "Skill already exists", nil, err)
	case errors.Is(err, usecase.ErrSkillNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, err)
	case errors.Is(err, usecase.ErrCategoryNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Category not found", nil, err)
	default:
		return mapUsecaseError(err)
	}
}
