package db

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/rfatracker/internal/i18n"
	"github.com/2beens/rfatracker/internal/skills"
	"github.com/2beens/rfatracker/internal/workouts"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open opens (or creates) the sqlite database file at path.
func Open(path string) (*gorm.DB, error) {
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.New(
			log.StandardLogger(),
			gormlogger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite db at %s: %w", path, err)
	}
	return gdb, nil
}

// Bootstrap creates and seeds all tables. It is idempotent and runs on every
// start, existing rows are never touched.
func Bootstrap(ctx context.Context, gdb *gorm.DB) error {
	start := time.Now()

	if err := i18n.NewRepo(gdb).Migrate(ctx); err != nil {
		return fmt.Errorf("migrate translations: %w", err)
	}
	if err := skills.NewRepo(gdb).Migrate(ctx); err != nil {
		return fmt.Errorf("migrate skills: %w", err)
	}
	if err := workouts.NewRepo(gdb).Migrate(ctx); err != nil {
		return fmt.Errorf("migrate workouts: %w", err)
	}

	log.Tracef("db bootstrap done in %s", time.Since(start))
	return nil
}

// Close closes the underlying sqlite connection.
func Close(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	return sqlDB.Close()
}
