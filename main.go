package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fittrack/internal/apperrors"
	"fittrack/internal/handlers"
	"fittrack/internal/middleware"
	"fittrack/internal/models"
	"fittrack/internal/repositories"
	"fittrack/internal/services"
	"fittrack/pkg/rabbitmq"

	"github.com/spf13/viper"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":3001")
	viper.SetDefault("TOKEN_TTL_HOURS", 24)
	viper.SetDefault("PROGRESS_MODE", "static")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	databaseURL := viper.GetString("DATABASE_URL")
	jwtSecret := viper.GetString("JWT_SECRET")
	rabbitMQURL := viper.GetString("RABBITMQ_URL")
	tokenTTL := time.Duration(viper.GetInt("TOKEN_TTL_HOURS")) * time.Hour
	progressMode := viper.GetString("PROGRESS_MODE")

	// Missing signing key or connection string is a startup failure, never
	// a per-request one.
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	// --- Database ---
	db, err := openDatabase(databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Goal{}, &models.Workout{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	var mqClient *rabbitmq.Client
	if rabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		log.Println("RABBITMQ_URL not set, activity events disabled")
	}

	app := buildApp(db, mqClient, jwtSecret, tokenTTL, progressMode)

	// --- Activity event consumer ---
	if mqClient != nil {
		go func() {
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Activity event %s: %s", msg.Type, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeActivityEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start activity event consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP server with graceful shutdown ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
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

// openDatabase selects the GORM driver from the connection string: a
// postgres DSN goes to the postgres driver, anything else is treated as a
// SQLite path. TranslateError surfaces unique-index violations as
// gorm.ErrDuplicatedKey on both drivers.
func openDatabase(databaseURL string) (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}
	if strings.HasPrefix(databaseURL, "postgres://") || strings.Contains(databaseURL, "host=") {
		return gorm.Open(postgres.Open(databaseURL), cfg)
	}
	return gorm.Open(sqlite.Open(databaseURL), cfg)
}

// buildApp wires repositories, services, and handlers into a Fiber app.
// mqClient may be nil, which disables activity events.
func buildApp(db *gorm.DB, mqClient *rabbitmq.Client, jwtSecret string, tokenTTL time.Duration, progressMode string) *fiber.App {
	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	goalRepo := repositories.NewGORMGoalRepository(db)
	workoutRepo := repositories.NewGORMWorkoutRepository(db)

	// --- Services ---
	var publisher services.EventPublisher
	if mqClient != nil {
		publisher = mqClient
	}

	var calculator services.ProgressCalculator
	if progressMode == "history" {
		calculator = services.NewWorkoutProgressCalculator(workoutRepo)
	} else {
		calculator = services.StaticProgressCalculator{}
	}

	tokenService := services.NewTokenService(jwtSecret, tokenTTL)
	authService := services.NewAuthService(userRepo, tokenService)
	goalService := services.NewGoalService(goalRepo, calculator, publisher)
	workoutService := services.NewWorkoutService(workoutRepo, publisher)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	goalHandler := handlers.NewGoalHandler(goalService)
	workoutHandler := handlers.NewWorkoutHandler(workoutService)

	app := fiber.New(fiber.Config{
		ErrorHandler: apperrors.ErrorHandler,
	})
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Auth routes are public; everything else requires a bearer token.
	authHandler.RegisterRoutes(app)

	protected := app.Group("", middleware.AuthRequired(tokenService))
	goalHandler.RegisterRoutes(protected)
	workoutHandler.RegisterRoutes(protected)

	return app
}
