package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Shradhesh0/sweet-shop-mgmt/internal/config"
	"github.com/Shradhesh0/sweet-shop-mgmt/internal/handlers"
	"github.com/Shradhesh0/sweet-shop-mgmt/internal/middleware"
	"github.com/Shradhesh0/sweet-shop-mgmt/internal/models"
	"github.com/Shradhesh0/sweet-shop-mgmt/internal/repositories"
	"github.com/Shradhesh0/sweet-shop-mgmt/internal/services"
	"github.com/Shradhesh0/sweet-shop-mgmt/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	// --- Relational store ---
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to access underlying sql.DB: %v", err)
	}
	// Bounded pool shared by all concurrent requests.
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	if err := db.AutoMigrate(&models.User{}, &models.Sweet{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ client ---
	// The API stays up without the broker; inventory events are then skipped.
	var mqClient *rabbitmq.Client
	mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
	if err != nil {
		log.Printf("Warning: RabbitMQ unavailable, inventory events disabled: %v", err)
		mqClient = nil
	} else {
		defer mqClient.Close()
	}

	app := buildApp(db, mqClient, cfg)

	// --- Inventory event consumer ---
	if mqClient != nil {
		if err := mqClient.ConsumeInventoryEvents(func(msg amqp.Delivery) error {
			log.Printf("Inventory event (tag %d): %s", msg.DeliveryTag, string(msg.Body))
			return nil
		}); err != nil {
			log.Printf("Failed to start inventory event consumer: %v", err)
		}
	}

	// --- Start HTTP server ---
	log.Printf("Starting server on %s", cfg.AppPort)

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
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// buildApp wires repositories, services, handlers and middleware into a Fiber
// app. mqClient may be nil.
func buildApp(db *gorm.DB, mqClient *rabbitmq.Client, cfg *config.Config) *fiber.App {
	// Repositories
	sweetRepo := repositories.NewGORMSweetRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	sweetService := services.NewSweetService(sweetRepo)
	var publisher services.EventPublisher
	if mqClient != nil {
		publisher = mqClient
	}
	inventoryService := services.NewInventoryService(sweetRepo, publisher)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	sweetHandler := handlers.NewSweetHandler(sweetService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)

	app := fiber.New()
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "OK",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	api := app.Group("/api")

	// Public authentication routes
	authHandler.RegisterRoutes(api)

	// Everything else requires a valid bearer token
	protected := api.Group("", middleware.AuthRequired(authService))
	requireAdmin := middleware.AdminRequired()
	sweetHandler.RegisterRoutes(protected, requireAdmin)
	inventoryHandler.RegisterRoutes(protected, requireAdmin)

	return app
}
