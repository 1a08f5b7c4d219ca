package v1

import (
	"gigboard/internal/delivery/http/handler"
	"gigboard/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Auth     *handler.AuthHandler
	Catalog  *handler.CatalogHandler
	Profile  *handler.ProfileHandler
	Bookmark *handler.BookmarkHandler
	Me       *handler.MeHandler
	Message  *handler.MessageHandler
	Page     *handler.PageHandler
}

// Register mounts the v1 API. Groups are registered public first, then
// identity-aware, then protected: the empty-prefix middleware of a group
// applies to every route registered after it.
func Register(r fiber.Router, h Handlers, authMw *middleware.AuthMiddleware) {
	if r == nil || authMw == nil {
		return
	}

	h.Auth.RegisterRoutes(r)
	h.Catalog.RegisterRoutes(r)
	h.Profile.RegisterRoutes(r)

	optional := r.Group("", authMw.Optional())
	h.Page.RegisterRoutes(optional)

	protected := r.Group("", authMw.Middleware())
	h.Bookmark.RegisterRoutes(protected)
	h.Me.RegisterRoutes(protected)
	h.Message.RegisterRoutes(protected)
}
