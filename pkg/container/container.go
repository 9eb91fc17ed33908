package container

import (
	"context"
	"fmt"

	"creator-portal-backend/internal/config"
	authhandler "creator-portal-backend/internal/domains/auth/handler"
	authservice "creator-portal-backend/internal/domains/auth/service"
	creatorhandler "creator-portal-backend/internal/domains/creator/handler"
	creatorrepo "creator-portal-backend/internal/domains/creator/repository"
	creatorservice "creator-portal-backend/internal/domains/creator/service"
	locationhandler "creator-portal-backend/internal/domains/location/handler"
	locationrepo "creator-portal-backend/internal/domains/location/repository"
	locationservice "creator-portal-backend/internal/domains/location/service"
	infracache "creator-portal-backend/internal/infrastructure/cache"
	"creator-portal-backend/internal/infrastructure/database"
	"creator-portal-backend/internal/infrastructure/queue"
	"creator-portal-backend/internal/infrastructure/storage"
	pkgcache "creator-portal-backend/pkg/cache"
	appjwt "creator-portal-backend/pkg/jwt"

	"github.com/rs/zerolog/log"
)

// Container giữ toàn bộ application dependencies
// Init theo thứ tự: infrastructure -> repositories -> services -> handlers
type Container struct {
	Config *config.Config

	// Infrastructure
	DB          *database.PostgresDB
	Cache       pkgcache.Cache
	Storage     *storage.MinIOStorage
	Images      *storage.ImageProcessor
	QueueClient *queue.Client
	JWTManager  *appjwt.Manager

	// Repositories
	CreatorRepo  creatorrepo.RepositoryInterface
	LocationRepo locationrepo.RepositoryInterface

	// Services
	CreatorService  creatorservice.ServiceInterface
	LocationService locationservice.ServiceInterface
	AuthService     authservice.ServiceInterface

	// Handlers
	CreatorHandler  *creatorhandler.CreatorHandler
	LocationHandler *locationhandler.LocationHandler
	AuthHandler     *authhandler.AuthHandler
}

// New khởi tạo container đầy đủ cho API process
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	// ========================================
	// INFRASTRUCTURE
	// ========================================

	c.DB = database.NewPostgresDB(cfg.Database)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}
	log.Info().Msg("✅ Database connected")

	redisCache := infracache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if rc, ok := redisCache.(*infracache.RedisCache); ok {
		if err := rc.Connect(ctx); err != nil {
			c.DB.Close()
			return nil, fmt.Errorf("redis init failed: %w", err)
		}
	}
	c.Cache = redisCache
	log.Info().Msg("✅ Redis connected")

	minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		c.DB.Close()
		return nil, fmt.Errorf("minio init failed: %w", err)
	}
	c.Storage = minioStorage
	log.Info().Str("bucket", cfg.MinIO.Bucket).Msg("✅ MinIO ready")

	c.Images = storage.NewImageProcessor()
	c.QueueClient = queue.NewClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	c.JWTManager = appjwt.NewManager(cfg.JWT.Secret)

	// ========================================
	// REPOSITORIES
	// ========================================

	c.CreatorRepo = creatorrepo.NewPostgresRepository(c.DB.Pool)
	c.LocationRepo = locationrepo.NewPostgresRepository(c.DB.Pool)

	// ========================================
	// SERVICES
	// ========================================

	c.LocationService = locationservice.NewLocationService(c.LocationRepo, c.CreatorRepo)
	c.CreatorService = creatorservice.NewCreatorService(
		c.CreatorRepo,
		c.LocationService,
		c.Cache,
		c.Storage,
		c.Images,
		c.QueueClient,
	)
	c.AuthService = authservice.NewAuthService(cfg, c.JWTManager)

	// ========================================
	// HANDLERS
	// ========================================

	c.CreatorHandler = creatorhandler.NewCreatorHandler(c.CreatorService)
	c.LocationHandler = locationhandler.NewLocationHandler(c.LocationService)
	c.AuthHandler = authhandler.NewAuthHandler(c.AuthService)

	return c, nil
}

// Cleanup đóng connections theo thứ tự ngược với init
func (c *Container) Cleanup() {
	if c.QueueClient != nil {
		if err := c.QueueClient.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close queue client")
		}
	}
	if closer, ok := c.Cache.(interface{ Close() error }); ok && closer != nil {
		if err := closer.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close cache")
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
	log.Info().Msg("Container cleaned up")
}
