package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/coursehub/backend/docs"
	"github.com/coursehub/backend/internal/handlers"
	"github.com/coursehub/backend/internal/repositories"
	"github.com/coursehub/backend/internal/services"
	"github.com/coursehub/backend/internal/storage"
	authMiddleware "github.com/coursehub/backend/libs/auth/middleware"
	authService "github.com/coursehub/backend/libs/auth/service"
	"github.com/coursehub/backend/libs/config"
	"github.com/coursehub/backend/libs/logger"
	loggerMiddleware "github.com/coursehub/backend/libs/logger/middleware"
	sharedMiddleware "github.com/coursehub/backend/libs/middlewares"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title CourseHub API
// @version 1.0
// @description API for the course catalog, enrollments, chapter progress and uploads

// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Identity token issued by the identity provider, as "Bearer <token>"
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting CourseHub API")

	// Connect to database
	db, err := connectDB(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := runMigrations(db); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Identity tokens are issued by the identity provider and only validated here
	tokenGenerator := authService.NewTokenGenerator(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	adminPolicy := authMiddleware.NewAdminPolicy(cfg.AdminEmail)
	if len(cfg.AdminEmail) == 0 {
		logger.Logger.Warn("ADMIN_EMAILS is empty, only tokens with the admin role can manage courses")
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	courseRepo := repositories.NewCourseRepository(db)
	enrollmentRepo := repositories.NewEnrollmentRepository(db)
	progressRepo := repositories.NewProgressRepository(db)
	adminRepo := repositories.NewAdminRepository(db)

	// Initialize services
	userService := services.NewUserService(userRepo)
	courseService := services.NewCourseService(courseRepo)
	adminCourseService := services.NewAdminCourseService(courseRepo, logger.Logger)
	enrollmentService := services.NewEnrollmentService(userRepo, courseRepo, enrollmentRepo)
	progressService := services.NewProgressService(userRepo, courseRepo, enrollmentRepo, progressRepo)
	adminService := services.NewAdminService(adminRepo)
	uploadService := services.NewUploadService(
		storage.NewLocalStorage(cfg.Upload.Dir),
		storage.NewMillisClock(),
		cfg.Upload.BaseURL,
		logger.Logger,
	)

	// Initialize middleware
	authMw := authMiddleware.AuthMiddleware(tokenGenerator)
	adminMw := authMiddleware.AdminMiddleware(tokenGenerator, adminPolicy)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService, logger.Logger)
	courseHandler := handlers.NewCourseHandler(courseService, logger.Logger)
	enrollmentHandler := handlers.NewEnrollmentHandler(enrollmentService, logger.Logger)
	progressHandler := handlers.NewProgressHandler(progressService, logger.Logger)
	adminCourseHandler := handlers.NewAdminCourseHandler(adminCourseService, logger.Logger)
	adminHandler := handlers.NewAdminHandler(adminService, logger.Logger)
	uploadHandler := handlers.NewUploadHandler(uploadService, logger.Logger)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(sharedMiddleware.RequestIDMiddleware)
	r.Use(loggerMiddleware.LoggerMiddleware(logger.Logger))
	r.Use(sharedMiddleware.RecoveryMiddleware(logger.Logger))
	r.Use(sharedMiddleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(cfg.Server.RateLimitPerMinute, time.Minute))
	r.Use(sharedMiddleware.RequestSizeLimitMiddleware(cfg.Server.MaxRequestSize))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Uploaded files are public and read-only
	if strings.HasPrefix(cfg.Upload.BaseURL, "/") {
		uploadHandler.RegisterFileRoutes(r, cfg.Upload.BaseURL)
	}

	// Scope router to /api/v1
	r.Route("/api/v1", func(r chi.Router) {
		userHandler.RegisterRoutes(r, authMw)
		courseHandler.RegisterRoutes(r, authMw)
		enrollmentHandler.RegisterRoutes(r, authMw)
		progressHandler.RegisterRoutes(r, authMw)
		adminCourseHandler.RegisterRoutes(r, adminMw)
		adminHandler.RegisterRoutes(r, adminMw)
		uploadHandler.RegisterRoutes(r, adminMw)
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  30 * time.Second, // Longer timeout for file uploads
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{
		MigrationsTable: "coursehub_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	// Get the working directory or use migrations folder relative to the binary
	migrationPath := "file://migrations"
	if _, err := os.Stat("migrations"); os.IsNotExist(err) {
		// Try parent directories if running from cmd/api
		if _, err := os.Stat("../../migrations"); err == nil {
			migrationPath = "file://../../migrations"
		}
	}

	m, err := migrate.NewWithDatabaseInstance(
		migrationPath,
		"mysql",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
