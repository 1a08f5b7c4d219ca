package handler

import (
	"errors"

	"gigboard/internal/delivery/http/middleware"
	"gigboard/internal/domain/review"
	"gigboard/internal/pkg/response"
	"gigboard/internal/usecase"
	"gigboard/internal/view"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// PageHandler serves page snapshots. Every snapshot is returned with 200; the
// outcome is carried by the container state.
type PageHandler struct {
	browse    usecase.BrowseUsecase
	profiles  usecase.ProfileUsecase
	projects  usecase.ProjectUsecase
	reviews   usecase.ReviewUsecase
	bookmarks usecase.BookmarkUsecase
	dashboard usecase.DashboardUsecase
	messages  usecase.MessageUsecase
}

func NewPageHandler(
	browse usecase.BrowseUsecase,
	profiles usecase.ProfileUsecase,
	projects usecase.ProjectUsecase,
	reviews usecase.ReviewUsecase,
	bookmarks usecase.BookmarkUsecase,
	dashboard usecase.DashboardUsecase,
	messages usecase.MessageUsecase,
) *PageHandler {
	return &PageHandler{
		browse:    browse,
		profiles:  profiles,
		projects:  projects,
		reviews:   reviews,
		bookmarks: bookmarks,
		dashboard: dashboard,
		messages:  messages,
	}
}

// RegisterRoutes expects r to attach the identity when present.
func (h *PageHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/pages")
	grp.Get("/browse", h.Browse)
	grp.Get("/freelancers/:id", h.Freelancer)
	grp.Get("/dashboard", h.Dashboard)
	grp.Get("/messages", h.Messages)
}

func (h *PageHandler) Browse(c fiber.Ctx) error {
	const failTitle = "Error loading freelancers"
	page := view.New[view.BrowsePage]()
	ctx := c.Context()

	selected := c.Query("category")
	search := c.Query("q")

	categoryID, err := usecase.ParseCategory(selected)
	if err != nil {
		_ = page.Fail(failTitle, "invalid category: "+selected, "")
		return render(c, page)
	}

	categories, err := h.browse.ListCategories(ctx)
	if err != nil {
		_ = page.Fail(failTitle, usecase.StoreMessage(err), "")
		return render(c, page)
	}

	items, err := h.browse.ListProfiles(ctx, usecase.ProfileFilter{CategoryID: categoryID, SearchTerm: search})
	if err != nil {
		_ = page.Fail(failTitle, usecase.StoreMessage(err), "")
		return render(c, page)
	}

	ids := make([]uuid.UUID, 0, len(items))
	for _, p := range items {
		ids = append(ids, p.ID)
	}
	summaries, err := h.reviews.Summaries(ctx, ids)
	if err != nil {
		_ = page.Fail(failTitle, usecase.StoreMessage(err), "")
		return render(c, page)
	}

	data := view.NewBrowsePage(categories, selected, search, items, summaries)
	_ = page.Resolve(data, data.Count)
	return render(c, page)
}

func (h *PageHandler) Freelancer(c fiber.Ctx) error {
	const failTitle = "Error loading profile"
	page := view.New[view.ProfilePage]()
	ctx := c.Context()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		_ = page.NotFound("Profile not found", view.BrowsePath)
		return render(c, page)
	}

	p, err := h.profiles.GetProfile(ctx, id)
	if err != nil {
		if errors.Is(err, usecase.ErrProfileNotFound) {
			_ = page.NotFound("Profile not found", view.BrowsePath)
		} else {
			_ = page.Fail(failTitle, usecase.StoreMessage(err), view.BrowsePath)
		}
		return render(c, page)
	}

	projects, err := h.projects.ListProjects(ctx, p.ID)
	if err != nil {
		_ = page.Fail(failTitle, usecase.StoreMessage(err), view.BrowsePath)
		return render(c, page)
	}

	// A failed rating summary degrades to zero with a notice.
	var notice *view.Notification
	sum, err := h.reviews.Summary(ctx, p.ID)
	if err != nil {
		sum = review.Summary{}
		notice = &view.Notification{Title: "Reviews unavailable", Description: usecase.StoreMessage(err)}
	}

	var bookmarked *bool
	if userID, ok := middleware.UserID(c); ok {
		on, err := h.bookmarks.IsBookmarked(ctx, userID, p.ID)
		if err == nil {
			bookmarked = &on
		}
	}

	_ = page.Resolve(view.NewProfilePage(p, sum, projects, bookmarked), 1)
	if notice != nil {
		page.Notify(*notice)
	}
	return render(c, page)
}

func (h *PageHandler) Dashboard(c fiber.Ctx) error {
	const failTitle = "Error loading profile"
	page := view.New[view.DashboardPage]()
	ctx := c.Context()

	userID, ok := middleware.UserID(c)
	if !ok {
		_ = page.RequireSession()
		return render(c, page)
	}

	p, err := h.dashboard.GetOwnProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, usecase.ErrProfileNotFound) {
			_ = page.NotFound("Profile not found", "")
		} else {
			_ = page.Fail(failTitle, usecase.StoreMessage(err), "")
		}
		return render(c, page)
	}

	st, err := h.dashboard.Stats(ctx, userID)
	if err != nil {
		_ = page.Fail(failTitle, usecase.StoreMessage(err), "")
		return render(c, page)
	}

	_ = page.Resolve(view.NewDashboardPage(p, st), 1)
	return render(c, page)
}

func (h *PageHandler) Messages(c fiber.Ctx) error {
	page := view.New[view.MessagesPage]()

	userID, ok := middleware.UserID(c)
	if !ok {
		_ = page.RequireSession()
		return render(c, page)
	}

	items, err := h.messages.ListMessages(c.Context(), userID)
	if err != nil {
		_ = page.Fail("Error loading messages", usecase.StoreMessage(err), "")
		return render(c, page)
	}

	data := view.NewMessagesPage(items, userID)
	_ = page.Resolve(data, data.Count)
	return render(c, page)
}

func render[T any](c fiber.Ctx, page *view.Container[T]) error {
	return response.Success(c, fiber.StatusOK, string(page.State), page)
}
