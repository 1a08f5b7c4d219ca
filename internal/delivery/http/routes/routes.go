package routes

import (
	"gigboard/internal/delivery/http/handler"
	"gigboard/internal/delivery/http/middleware"
	v1 "gigboard/internal/delivery/http/routes/v1"
	"gigboard/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/static"
)

const filesRoute = "/files"

type Registry struct {
	health *handler.HealthHandler
	v1     v1.Handlers
	auth   *middleware.AuthMiddleware
	ws     *ws.Handler

	// filesDir is served under /files when uploads are stored locally.
	filesDir string
}

func NewRegistry(health *handler.HealthHandler, handlers v1.Handlers, authMw *middleware.AuthMiddleware, wsHandler *ws.Handler, filesDir string) *Registry {
	return &Registry{
		health:   health,
		v1:       handlers,
		auth:     authMw,
		ws:       wsHandler,
		filesDir: filesDir,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerFiles(app)
	r.registerWS(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.health != nil {
		r.health.RegisterRoutes(app)
	}
}

func (r *Registry) registerFiles(app *fiber.App) {
	if r.filesDir == "" {
		return
	}
	app.Get(filesRoute+"*", static.New(r.filesDir))
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.ws == nil || r.auth == nil {
		return
	}
	app.Get("/ws/messages", r.auth.Middleware(), r.ws.HandleMessagesWS)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.v1, r.auth)
}
