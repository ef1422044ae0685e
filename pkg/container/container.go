package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"bookshelf-backend/internal/config"
	infraCache "bookshelf-backend/internal/infrastructure/cache"
	"bookshelf-backend/internal/infrastructure/database"
	"bookshelf-backend/pkg/cache"

	"bookshelf-backend/internal/domains/author"
	authorHandler "bookshelf-backend/internal/domains/author/handler"
	authorRepo "bookshelf-backend/internal/domains/author/repository"
	authorService "bookshelf-backend/internal/domains/author/service"

	"bookshelf-backend/internal/domains/book"
	bookHandler "bookshelf-backend/internal/domains/book/handler"
	bookRepo "bookshelf-backend/internal/domains/book/repository"
	bookService "bookshelf-backend/internal/domains/book/service"
)

// Container holds every dependency of the application, wired once at startup
// and passed down explicitly. Nothing in the request path reaches for a
// process-wide singleton.
type Container struct {
	// Infrastructure - shared across domains, singleton lifecycle.
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	// Repository layer (data access).
	AuthorRepo author.Repository
	BookRepo   book.Repository

	// Service layer (business logic).
	AuthorService author.Service
	BookService   book.Service

	// Handler layer (HTTP).
	AuthorHandler *authorHandler.AuthorHandler
	BookHandler   *bookHandler.BookHandler

	redis *infraCache.RedisCache
}

// NewContainer initializes the dependency graph in order:
// config -> infrastructure -> repositories -> services -> handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("Config loaded")

	// Database
	db := database.NewPostgresDB(&database.DBConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		Username: cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.Database,
		SSLMode:  cfg.Database.SSLMode,
		MaxConns: int32(cfg.Database.MaxConns),
		MinConns: int32(cfg.Database.MinConns),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to bootstrap schema: %w", err)
	}

	c.DB = db
	log.Info().Msg("Database connected, schema ensured")

	// Cache backend. Redis failure is non-critical: the service degrades to
	// the in-process backend rather than refusing to start.
	c.Cache = c.buildCache()

	// Repositories
	c.AuthorRepo = authorRepo.NewPostgresRepository(db.Pool)
	c.BookRepo = bookRepo.NewPostgresRepository(db.Pool)

	// Services
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.BookService = bookService.NewBookService(c.BookRepo)

	// Handlers
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)

	log.Info().Msg("Container initialized")
	return c, nil
}

func (c *Container) buildCache() cache.Cache {
	if c.Config.Cache.Backend == "redis" {
		redisCache := infraCache.NewRedisCache(
			c.Config.Redis.Host,
			c.Config.Redis.Password,
			c.Config.Redis.DB,
		)

		if err := redisCache.Ping(context.Background()); err != nil {
			log.Warn().Err(err).Msg("Redis unreachable, falling back to in-memory cache")
			if closeErr := redisCache.Close(); closeErr != nil {
				log.Warn().Err(closeErr).Msg("Failed to close Redis client")
			}
		} else {
			log.Info().Msg("Redis cache connected")
			c.redis = redisCache
			return redisCache
		}
	}

	log.Info().Dur("ttl", c.Config.Cache.TTL).Msg("Using in-memory cache")
	return infraCache.NewMemoryCache(c.Config.Cache.TTL)
}

// Cleanup releases infrastructure resources. Called on shutdown.
func (c *Container) Cleanup() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis client")
		}
	}

	if c.DB != nil {
		c.DB.Close()
	}

	log.Info().Msg("Container cleaned up")
}
