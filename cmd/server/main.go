package main

import (
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/i18n"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/logging"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/password"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/routes"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/token"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/validation"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	// Structured logging (JSON to stdout)
	stdout := logging.Setup(os.Getenv("APP_ENV"))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err.Error())
		os.Exit(1)
	}

	// Database
	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err.Error())
		os.Exit(1)
	}
	if err := database.Migrate(db); err != nil {
		slog.Error("migration failed", "error", err.Error())
		os.Exit(1)
	}

	// ERROR+ records are also persisted to system_logs
	dbLogHandler := logging.NewDBHandler(db)
	slog.SetDefault(slog.New(logging.NewMultiHandler(stdout, dbLogHandler)))

	cleanupDone := make(chan struct{})
	logging.StartCleanup(db, cfg.LogRetention, cleanupDone)

	translator, err := i18n.NewTranslator(cfg.DefaultLanguage)
	if err != nil {
		slog.Error("failed to load message catalogs", "error", err.Error())
		os.Exit(1)
	}

	// Services
	m := metrics.New()
	engine := validation.NewEngine(db)
	hasher := password.NewBcrypt(cfg.BcryptCost)
	tokens := token.NewJWTService(cfg.JWTSecret)

	customerService := services.NewCustomerService(db, engine, hasher, m)
	employeeService := services.NewEmployeeService(db, engine, hasher, m)
	jobService := services.NewJobService(db, engine, m)
	assignmentService := services.NewAssignmentService(db, m)
	authService := services.NewAuthService(db, cfg, engine, hasher, tokens, m)

	// Handlers
	responder := handlers.NewResponder(translator, cfg)
	h := routes.Handlers{
		Responder:  responder,
		Health:     handlers.NewHealthHandler(db),
		Auth:       handlers.NewAuthHandler(authService, responder),
		Customer:   handlers.NewCustomerHandler(customerService, responder),
		Employee:   handlers.NewEmployeeHandler(employeeService, responder),
		Job:        handlers.NewJobHandler(jobService, responder),
		Assignment: handlers.NewAssignmentHandler(assignmentService, engine, responder),
	}

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err.Error())
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${respHeader:X-Request-ID}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(middleware.SecurityHeaders())
	app.Use(m.Middleware())

	routes.Setup(app, cfg, m, h)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.AppEnv)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err.Error())
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("server shutdown error", "error", err.Error())
	}

	close(cleanupDone)
	dbLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := database.Close(db); err != nil {
		slog.Error("database close error", "error", err.Error())
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error",
			"request_id", c.GetRespHeader(fiber.HeaderXRequestID),
			"method", c.Method(),
			"path", c.Path(),
			"error", err.Error(),
		)
		if hub := sentryfiber.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		}
		message = "Internal server error"
	}

	return c.Status(code).JSON(dto.ErrorResponse{
		Status:  code,
		Message: message,
	})
}
