package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"ecoshare/internal/config"
	"ecoshare/internal/handlers"
	"ecoshare/internal/middleware"
	"ecoshare/internal/services"
	"ecoshare/internal/storage"
	"ecoshare/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg := config.Load()

	// --- Initialize Storage ---
	store, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// --- Initialize Notifier ---
	// With no broker configured the app degrades to log notifications;
	// notifications are transient either way.
	var notifier services.Notifier = services.LogNotifier{}
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Printf("Warning: RabbitMQ unavailable, falling back to log notifications: %v", err)
		} else {
			defer mqClient.Close()
			notifier = services.NewAMQPNotifier(mqClient)
		}
	}

	// --- Initialize Services ---
	sessionService := services.NewSessionService(store, cfg.JWTSecret)
	feedService := services.NewFeedService(store)
	emitter := services.NewStreakEmitter(sessionService, notifier)
	locator := services.NewStaticLocator()
	actionService := services.NewActionService(sessionService, services.NewMockAIValidator(), locator, emitter)
	reportService := services.NewReportService(sessionService, locator, notifier)
	restaurantService := services.NewRestaurantService(locator)

	// Seed the community feed with the example listings on first run.
	if _, err := feedService.Initialize(); err != nil {
		log.Fatalf("Failed to initialize community feed: %v", err)
	}

	// --- Initialize Handlers ---
	authHandler := handlers.NewAuthHandler(sessionService)
	feedHandler := handlers.NewFeedHandler(feedService, sessionService, emitter)
	actionHandler := handlers.NewActionHandler(actionService)
	reportHandler := handlers.NewReportHandler(reportService, restaurantService)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger

	// --- API Routes ---
	apiV1 := app.Group("/api/v1")

	authHandler.RegisterRoutes(apiV1)
	feedHandler.RegisterRoutes(apiV1)
	reportHandler.RegisterRoutes(apiV1)

	protected := apiV1.Group("", middleware.AuthRequired(sessionService))
	authHandler.RegisterProtectedRoutes(protected)
	feedHandler.RegisterProtectedRoutes(protected)
	actionHandler.RegisterProtectedRoutes(protected)
	reportHandler.RegisterProtectedRoutes(protected)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start RabbitMQ Consumer in a Goroutine ---
	// The consumer logs streak events; real deployments would plug mail or
	// push delivery in here.
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for streak events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received streak event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeStreakEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// openStore builds the key-value store from the configuration: a GORM-backed
// store over SQLite or PostgreSQL, or the in-memory store when no DSN is set.
func openStore(cfg config.Config) (storage.Store, error) {
	if cfg.DatabaseDSN == "" {
		log.Println("No DATABASE_DSN configured, using in-memory storage")
		return storage.NewMemoryStore(), nil
	}

	var dialector gorm.Dialector
	switch cfg.DatabaseDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DatabaseDSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.DatabaseDSN)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.DatabaseDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return storage.NewGormStore(db)
}
