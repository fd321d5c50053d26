package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/coursehub/backend/internal/models"
	"github.com/coursehub/backend/internal/repositories"
	"github.com/coursehub/backend/libs/apperrors"
	"github.com/coursehub/backend/libs/config"
	"github.com/coursehub/backend/libs/logger"
	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

// courseStore is the subset of the course repository the seeder needs
type courseStore interface {
	ExistsByCID(ctx context.Context, cid string) (bool, error)
	Create(ctx context.Context, course *models.Course) error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	owner := seedOwner(os.Getenv("SEED_OWNER_EMAIL"), cfg.AdminEmail)
	if owner == "" {
		logger.Logger.Fatal("SEED_OWNER_EMAIL or ADMIN_EMAILS is required")
	}

	db, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		logger.Logger.Fatal("Failed to ping database", zap.Error(err))
	}

	created, err := seedCourses(ctx, repositories.NewCourseRepository(db), owner, logger.Logger)
	if err != nil {
		logger.Logger.Fatal("Failed to seed courses", zap.Error(err))
	}

	logger.Logger.Info("Seeding finished", zap.Int("created", created), zap.Int("total", len(starterCatalog)))
}

// seedOwner picks the explicit owner, falling back to the first configured admin
func seedOwner(explicit string, adminEmails []string) string {
	if owner := strings.TrimSpace(explicit); owner != "" {
		return owner
	}
	if len(adminEmails) > 0 {
		return adminEmails[0]
	}
	return ""
}

// seedCourses inserts every starter course whose slug is not stored yet
func seedCourses(ctx context.Context, store courseStore, owner string, l *zap.Logger) (int, error) {
	created := 0
	for _, starter := range starterCatalog {
		exists, err := store.ExistsByCID(ctx, starter.cid)
		if err != nil {
			return created, err
		}
		if exists {
			l.Info("Course already exists, skipping", zap.String("cid", starter.cid))
			continue
		}

		course := starter.toCourse(owner)
		if err := store.Create(ctx, course); err != nil {
			if errors.Is(err, apperrors.ErrConflict) {
				l.Info("Course created concurrently, skipping", zap.String("cid", starter.cid))
				continue
			}
			return created, fmt.Errorf("failed to create course %s: %w", starter.cid, err)
		}

		l.Info("Created course", zap.String("cid", course.CID), zap.Int("id", course.ID))
		created++
	}
	return created, nil
}
