package app

import (
	"context"
	"errors"
	"log"
	"time"

	"gigboard/internal/config"
	"gigboard/internal/database"
	dbpostgres "gigboard/internal/database/postgres"
	"gigboard/internal/infrastructure/cache"
	"gigboard/internal/infrastructure/storage"
	"gigboard/internal/pkg/jwt"
	"gigboard/internal/realtime"
	"gigboard/internal/repository"
	"gigboard/internal/usecase"
	"gigboard/internal/ws"
)

const connectTimeout = 10 * time.Second

type Repositories struct {
	Users         *repository.PostgresUserRepository
	Profiles      *repository.PostgresProfileRepository
	Skills        *repository.PostgresSkillRepository
	ProfileSkills *repository.PostgresProfileSkillRepository
	Categories    *repository.PostgresCategoryRepository
	Projects      *repository.PostgresProjectRepository
	Reviews       *repository.PostgresReviewRepository
	Bookmarks     *repository.PostgresBookmarkRepository
	Messages      *repository.PostgresMessageRepository
}

type Usecases struct {
	Browse          *usecase.Browse
	Profile         *usecase.Profile
	Project         *usecase.Project
	Review          *usecase.Review
	Bookmark        *usecase.Bookmark
	Dashboard       *usecase.Dashboard
	Message         *usecase.Message
	Skill           *usecase.Skill
	ProfileSkill    *usecase.ProfileSkill
	ProfileCategory *usecase.ProfileCategory
}

// Container owns every long-lived dependency of the server.
type Container struct {
	Config  config.Config
	Logger  *log.Logger
	DB      database.DB
	Cache   *cache.Redis
	Storage storage.Storage
	Broker  realtime.Broker
	Hub     *ws.Hub

	Repos    Repositories
	Usecases Usecases
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	files, err := storage.New(cfg.Storage)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	rdb := cache.NewRedis(cfg.Redis, logger)
	broker, err := newBroker(rdb, logger)
	if err != nil {
		_ = rdb.Close()
		_ = db.Close()
		return nil, err
	}

	return Assemble(cfg, logger, db, rdb, files, broker), nil
}

// Assemble builds the repositories, usecases and hub on already opened
// backends. The container takes ownership of every backend passed in.
func Assemble(cfg config.Config, logger *log.Logger, db database.DB, rdb *cache.Redis, files storage.Storage, broker realtime.Broker) *Container {
	c := &Container{
		Config:  cfg,
		Logger:  logger,
		DB:      db,
		Cache:   rdb,
		Storage: files,
		Broker:  broker,
	}
	c.Repos = newRepositories(db)
	c.Usecases = newUsecases(c.Repos, rdb, files, broker, logger)
	c.Hub = ws.NewHub(c.Usecases.Message, logger)
	return c
}

// newBroker fans messages out through Redis when it is reachable, and
// in-process otherwise.
func newBroker(rdb *cache.Redis, logger *log.Logger) (realtime.Broker, error) {
	if client := rdb.Client(); client != nil {
		return realtime.NewRedisBroker(client, logger)
	}
	logger.Printf("Realtime broker | backend=local")
	return realtime.NewLocalBroker(), nil
}

func newRepositories(db database.DB) Repositories {
	return Repositories{
		Users:         repository.NewPostgresUserRepository(db),
		Profiles:      repository.NewPostgresProfileRepository(db),
		Skills:        repository.NewPostgresSkillRepository(db),
		ProfileSkills: repository.NewPostgresProfileSkillRepository(db),
		Categories:    repository.NewPostgresCategoryRepository(db),
		Projects:      repository.NewPostgresProjectRepository(db),
		Reviews:       repository.NewPostgresReviewRepository(db),
		Bookmarks:     repository.NewPostgresBookmarkRepository(db),
		Messages:      repository.NewPostgresMessageRepository(db),
	}
}

func newUsecases(r Repositories, listings usecase.ListingCache, files storage.Storage, broker realtime.Broker, logger *log.Logger) Usecases {
	browse := usecase.NewBrowseUsecase(r.Profiles, r.Categories, listings, logger)
	return Usecases{
		Browse:          browse,
		Profile:         usecase.NewProfileUsecase(r.Profiles, logger),
		Project:         usecase.NewProjectUsecase(r.Projects, r.Profiles),
		Review:          usecase.NewReviewUsecase(r.Reviews, r.Profiles, r.Projects),
		Bookmark:        usecase.NewBookmarkUsecase(r.Bookmarks),
		Dashboard:       usecase.NewDashboardUsecase(r.Profiles, files, browse, logger),
		Message:         usecase.NewMessageUsecase(r.Messages, broker, logger),
		Skill:           usecase.NewSkillUsecase(r.Skills),
		ProfileSkill:    usecase.NewProfileSkillUsecase(r.ProfileSkills, r.Skills, r.Profiles, browse),
		ProfileCategory: usecase.NewProfileCategoryUsecase(r.Categories, r.Profiles, browse),
	}
}

// LocalFilesDir is the directory to serve under /files, or "" when uploads
// live in object storage.
func (c *Container) LocalFilesDir() string {
	if ls, ok := c.Storage.(*storage.LocalStorage); ok {
		return ls.BasePath()
	}
	return ""
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}

	c.Usecases.Profile.WaitForViews()

	var errs []error
	if c.Broker != nil {
		errs = append(errs, c.Broker.Close())
	}
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}

func newAuthUsecase(c *Container, jwtSvc jwt.Service) *usecase.Auth {
	return usecase.NewAuthUsecase(c.Repos.Users, jwtSvc)
}
