package container

import (
	"context"
	"fmt"
	"time"

	"kunstkamera-backend/internal/config"
	"kunstkamera-backend/internal/infrastructure/cache"
	"kunstkamera-backend/internal/infrastructure/database"
	"kunstkamera-backend/internal/infrastructure/queue"
	"kunstkamera-backend/internal/infrastructure/storage"
	"kunstkamera-backend/pkg/jwt"
	"kunstkamera-backend/pkg/logger"

	"kunstkamera-backend/internal/domains/artifact"
	artifactRepo "kunstkamera-backend/internal/domains/artifact/repository"
	artifactSvc "kunstkamera-backend/internal/domains/artifact/service"
	"kunstkamera-backend/internal/domains/museum"
	museumRepo "kunstkamera-backend/internal/domains/museum/repository"
	museumSvc "kunstkamera-backend/internal/domains/museum/service"
	"kunstkamera-backend/internal/domains/profile"
	profileRepo "kunstkamera-backend/internal/domains/profile/repository"
	profileSvc "kunstkamera-backend/internal/domains/profile/service"
	"kunstkamera-backend/internal/domains/publication"
	publicationRepo "kunstkamera-backend/internal/domains/publication/repository"
	publicationSvc "kunstkamera-backend/internal/domains/publication/service"
	"kunstkamera-backend/internal/domains/upload"
	uploadSvc "kunstkamera-backend/internal/domains/upload/service"
	"kunstkamera-backend/internal/domains/user"
	userRepo "kunstkamera-backend/internal/domains/user/repository"
	userSvc "kunstkamera-backend/internal/domains/user/service"

	artifactHandler "kunstkamera-backend/internal/domains/artifact/handler"
	museumHandler "kunstkamera-backend/internal/domains/museum/handler"
	profileHandler "kunstkamera-backend/internal/domains/profile/handler"
	publicationHandler "kunstkamera-backend/internal/domains/publication/handler"
	uploadHandler "kunstkamera-backend/internal/domains/upload/handler"
	userHandler "kunstkamera-backend/internal/domains/user/handler"
)

// Container wires the whole application together in dependency order:
// config, infrastructure, repositories, services, handlers. Built once at
// process start, torn down by Cleanup at exit.
type Container struct {
	Config *config.Config

	DB      *database.PostgresDB
	Cache   *cache.RedisCache
	Storage *storage.MinIOStorage
	Queue   *queue.Client

	JWTManager *jwt.Manager

	UserService        user.Service
	ProfileService     profile.Service
	MuseumService      museum.Service
	ArtifactService    artifact.Service
	PublicationService publication.Service
	UploadService      upload.Service

	UserHandler        *userHandler.UserHandler
	ProfileHandler     *profileHandler.ProfileHandler
	MuseumHandler      *museumHandler.MuseumHandler
	ArtifactHandler    *artifactHandler.ArtifactHandler
	PublicationHandler *publicationHandler.PublicationHandler
	UploadHandler      *uploadHandler.UploadHandler
}

func New(ctx context.Context) (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.Config = cfg

	logger.Init(cfg.App.Environment)

	c.DB = database.NewPostgresDB(cfg.Database)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	c.Cache = cache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.Cache.Ping(ctx); err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	c.Storage, err = storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("connect storage: %w", err)
	}

	c.Queue = queue.NewClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)

	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Hour,
	)

	// repositories
	users := userRepo.NewPostgresRepository(c.DB.Pool)
	profiles := profileRepo.NewPostgresRepository(c.DB.Pool)
	museums := museumRepo.NewPostgresRepository(c.DB.Pool)
	artifacts := artifactRepo.NewPostgresRepository(c.DB.Pool)
	publications := publicationRepo.NewPostgresRepository(c.DB.Pool)

	// services
	c.UserService = userSvc.NewUserService(users, c.JWTManager)
	c.ProfileService = profileSvc.NewProfileService(profiles)
	c.MuseumService = museumSvc.NewMuseumService(museums, c.Cache, c.Queue)
	c.ArtifactService = artifactSvc.NewArtifactService(
		artifacts, museums, c.Queue,
		c.Storage.PublicURL(""),
		cfg.IsProduction(),
	)
	c.PublicationService = publicationSvc.NewPublicationService(publications, c.Cache, cfg.App.SiteURL)
	c.UploadService = uploadSvc.NewUploadService(c.Storage, cfg.Upload.MaxFileSize)

	// handlers
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.ProfileHandler = profileHandler.NewProfileHandler(c.ProfileService, c.UserService)
	c.MuseumHandler = museumHandler.NewMuseumHandler(c.MuseumService)
	c.ArtifactHandler = artifactHandler.NewArtifactHandler(c.ArtifactService)
	c.PublicationHandler = publicationHandler.NewPublicationHandler(c.PublicationService)
	c.UploadHandler = uploadHandler.NewUploadHandler(c.UploadService, cfg.Upload.MaxFileSize)

	return c, nil
}

// Cleanup releases the pooled handles in reverse construction order. Safe
// to call on a partially built container.
func (c *Container) Cleanup() {
	if c.Queue != nil {
		if err := c.Queue.Close(); err != nil {
			logger.Error("close queue client", err)
		}
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			logger.Error("close redis", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
