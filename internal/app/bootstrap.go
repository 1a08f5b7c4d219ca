package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gigboard/internal/config"
	"gigboard/internal/database/migration"
	"gigboard/internal/delivery/http/handler"
	"gigboard/internal/delivery/http/middleware"
	"gigboard/internal/delivery/http/routes"
	v1 "gigboard/internal/delivery/http/routes/v1"
	"gigboard/internal/pkg/jwt"
	"gigboard/internal/pkg/validator"
	"gigboard/internal/ws"
	"gigboard/migrations"

	"github.com/gofiber/fiber/v3"
)

const (
	migrateTimeout  = 2 * time.Minute
	shutdownTimeout = 10 * time.Second
	bodyLimit       = 8 << 20
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func NewLogger(cfg config.Config) *log.Logger {
	return log.New(os.Stdout, "["+cfg.App.AppName+"] ", log.LstdFlags|log.Lmicroseconds)
}

// New builds the HTTP app around an already connected container.
func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName:   c.Config.App.AppName,
		BodyLimit: bodyLimit,
	})

	registerGlobalMiddleware(f, c.Logger)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

// Bootstrap connects dependencies, applies migrations when enabled and starts
// the websocket hub. The returned cleanup stops the hub and closes everything.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	logger := NewLogger(cfg)

	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	if cfg.App.AutoMigrate {
		ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
		err := migration.Runner{FS: migrations.FS, Logger: logger}.Run(ctx, c.DB.SQLDB())
		cancel()
		if err != nil {
			_ = c.Close()
			return nil, nil, fmt.Errorf("auto migrate: %w", err)
		}
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	hubDone := make(chan struct{})
	go func() {
		defer close(hubDone)
		c.Hub.Run(hubCtx)
	}()

	app := New(c)
	cleanup := func() error {
		stopHub()
		<-hubDone
		return c.Close()
	}

	logger.Printf("App ready | env=%s storage=%s cache=%t", cfg.App.Environment, cfg.Storage.Type, c.Cache.Client() != nil)
	return app, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	// Access log first so it records the status the error middleware wrote.
	accessMw := middleware.NewAccessLogMiddleware(logger)
	app.Use(accessMw.Middleware())

	errMw := middleware.NewErrorMiddleware(logger)
	app.Use(errMw.Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil || c == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(c.Config.JWT, c.Config.App.AppName)
	authMw := middleware.NewAuthMiddleware(jwtSvc)
	validate := validator.New()
	uc := c.Usecases

	handlers := v1.Handlers{
		Auth:     handler.NewAuthHandler(newAuthUsecase(c, jwtSvc), validate),
		Catalog:  handler.NewCatalogHandler(uc.Skill, uc.Browse, validate, authMw.Middleware()),
		Profile:  handler.NewProfileHandler(uc.Browse, uc.Profile, uc.Project, uc.Review, validate, authMw.Middleware()),
		Bookmark: handler.NewBookmarkHandler(uc.Bookmark),
		Me:       handler.NewMeHandler(uc.Dashboard, uc.ProfileSkill, uc.ProfileCategory, uc.Project, validate),
		Message:  handler.NewMessageHandler(uc.Message, validate),
		Page:     handler.NewPageHandler(uc.Browse, uc.Profile, uc.Project, uc.Review, uc.Bookmark, uc.Dashboard, uc.Message),
	}

	var cachePinger handler.Pinger
	if c.Cache.Client() != nil {
		cachePinger = c.Cache
	}

	registry := routes.NewRegistry(
		handler.NewHealthHandler(c.DB, cachePinger),
		handlers,
		authMw,
		ws.NewHandler(c.Hub, c.Config.WS, c.Logger),
		c.LocalFilesDir(),
	)
	registry.Register(app)
}

// Serve listens on addr until the listener fails or stop fires, then shuts
// the server down within shutdownTimeout. A listen failure is returned, not
// fatal, so callers still run their cleanup.
func (a *App) Serve(addr string, stop <-chan os.Signal) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- a.Fiber.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-stop:
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.Fiber.ShutdownWithContext(ctx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
