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

type ProfileHandler struct {
	browse   usecase.BrowseUsecase
	profiles usecase.ProfileUsecase
	projects usecase.ProjectUsecase
	reviews  usecase.ReviewUsecase
	validate *validator.Validator
	auth     fiber.Handler
}

type createReviewRequest struct {
	Rating    int        `json:"rating" validate:"gte=1,lte=5"`
	Comment   *string    `json:"comment" validate:"omitempty,max=2000"`
	ProjectID *uuid.UUID `json:"project_id"`
}

func NewProfileHandler(
	browse usecase.BrowseUsecase,
	profiles usecase.ProfileUsecase,
	projects usecase.ProjectUsecase,
	reviews usecase.ReviewUsecase,
	validate *validator.Validator,
	auth fiber.Handler,
) *ProfileHandler {
	return &ProfileHandler{
		browse:   browse,
		profiles: profiles,
		projects: projects,
		reviews:  reviews,
		validate: validate,
		auth:     auth,
	}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/profiles")
	grp.Get("/", h.List)
	grp.Get("/:id", h.Get)
	grp.Get("/:id/projects", h.ListProjects)
	grp.Get("/:id/reviews", h.ListReviews)
	grp.Post("/:id/reviews", h.auth, h.CreateReview)
}

// List returns listed profiles. ?category= takes a category id or "all";
// ?q= narrows by name, title or skill.
func (h *ProfileHandler) List(c fiber.Ctx) error {
	categoryID, err := usecase.ParseCategory(c.Query("category"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid category", nil, err)
	}

	items, err := h.browse.ListProfiles(c.Context(), usecase.ProfileFilter{
		CategoryID: categoryID,
		SearchTerm: c.Query("q"),
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileListResponse(items))
}

func (h *ProfileHandler) Get(c fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	p, err := h.profiles.GetProfile(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(p))
}

func (h *ProfileHandler) ListProjects(c fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	items, err := h.projects.ListProjects(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]dto.ProjectResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.NewProjectResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *ProfileHandler) ListReviews(c fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	items, sum, err := h.reviews.ListReviews(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}

	res := dto.ReviewListResponse{
		Items:         make([]dto.ReviewResponse, 0, len(items)),
		AverageRating: sum.Average,
		Count:         sum.Count,
	}
	for _, it := range items {
		res.Items = append(res.Items, dto.NewReviewResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *ProfileHandler) CreateReview(c fiber.Ctx) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req createReviewRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	created, err := h.reviews.CreateReview(c.Context(), userID, id, usecase.CreateReviewInput{
		Rating:    req.Rating,
		Comment:   req.Comment,
		ProjectID: req.ProjectID,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidRating):
			return middleware.NewAppError(fiber.StatusBadRequest, "Rating must be between 1 and 5", nil, err)
		case errors.Is(err, usecase.ErrSelfReview):
			return middleware.NewAppError(fiber.StatusForbidden, "You cannot review your own profile", nil, err)
		case errors.Is(err, usecase.ErrProjectMismatch):
			return middleware.NewAppError(fiber.StatusBadRequest, "Project does not belong to this freelancer", nil, err)
		case errors.Is(err, usecase.ErrProjectNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "Project not found", nil, err)
		default:
			return mapUsecaseError(err)
		}
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewReviewResponse(created))
}
