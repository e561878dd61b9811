package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"rentreview-backend/internal/config"
	"rentreview-backend/internal/infrastructure/database"

	propertyRepo "rentreview-backend/internal/domains/property/repository"
	reviewHandler "rentreview-backend/internal/domains/review/handler"
	reviewRepo "rentreview-backend/internal/domains/review/repository"
	reviewService "rentreview-backend/internal/domains/review/service"
	userRepo "rentreview-backend/internal/domains/user/repository"
)

// Container holds the application's dependency graph, initialized in
// order: config → database → repositories → services → handlers.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB

	ReviewRepo   reviewRepo.ReviewRepository
	PropertyRepo propertyRepo.PropertyRepository
	UserRepo     userRepo.UserRepository

	ReviewService reviewService.ServiceInterface

	ReviewHandler *reviewHandler.ReviewHandler
}

func NewContainer() (*Container, error) {
	log.Println("Initializing container...")

	c := &Container{}

	// Config first; nothing depends on anything before it.
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("Config loaded (environment: %s)", cfg.App.Environment)

	// Database
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	// Repositories
	c.ReviewRepo = reviewRepo.NewPostgresReviewRepository(db.Pool)
	c.PropertyRepo = propertyRepo.NewPostgresPropertyRepository(db.Pool)
	c.UserRepo = userRepo.NewPostgresUserRepository(db.Pool)

	// Services
	c.ReviewService = reviewService.NewReviewService(db.Pool, c.ReviewRepo, c.PropertyRepo, c.UserRepo)

	// Handlers
	c.ReviewHandler = reviewHandler.NewReviewHandler(c.ReviewService)

	log.Println("Container initialized")
	return c, nil
}

// Cleanup releases everything the container holds. Called on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		_ = c.DB.Close()
	}
}
