package handler

import (
	"gigboard/internal/delivery/http/dto"
	"gigboard/internal/pkg/response"
	"gigboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type BookmarkHandler struct {
	uc usecase.BookmarkUsecase
}

type bookmarkToggleResponse struct {
	Bookmarked bool `json:"bookmarked"`
}

func NewBookmarkHandler(uc usecase.BookmarkUsecase) *BookmarkHandler {
	return &BookmarkHandler{uc: uc}
}

// RegisterRoutes expects r to require authentication.
func (h *BookmarkHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/bookmarks")
	grp.Get("/", h.List)
	grp.Get("/:freelancerId", h.Status)
	grp.Post("/:freelancerId/toggle", h.Toggle)
}

func (h *BookmarkHandler) List(c fiber.Ctx) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListBookmarks(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileListResponse(items))
}

func (h *BookmarkHandler) Status(c fiber.Ctx) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}
	freelancerID, err := uuidParam(c, "freelancerId")
	if err != nil {
		return err
	}

	ok, err := h.uc.IsBookmarked(c.Context(), userID, freelancerID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, bookmarkToggleResponse{Bookmarked: ok})
}

func (h *BookmarkHandler) Toggle(c fiber.Ctx) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}
	freelancerID, err := uuidParam(c, "freelancerId")
	if err != nil {
		return err
	}

	on, err := h.uc.ToggleBookmark(c.Context(), userID, freelancerID)
	if err != nil {
		return mapUsecaseError(err)
	}

	msg := "Bookmark removed"
	if on {
		msg = "Freelancer bookmarked"
	}
	return response.Success(c, fiber.StatusOK, msg, bookmarkToggleResponse{Bookmarked: on})
}
