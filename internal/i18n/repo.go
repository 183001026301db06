package i18n

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/rfatracker/internal/settings"
	"github.com/2beens/rfatracker/internal/telemetry/tracing"
	"gorm.io/gorm"
)

var ErrTranslationNotFound = errors.New("translation not found")

type translationRow struct {
	Key string `gorm:"column:key"`
	En  string `gorm:"column:en"`
	De  string `gorm:"column:de"`
}

func (translationRow) TableName() string {
	return "translations"
}

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

// Migrate creates the translations table if needed and fills it from the
// bundled translation file. Rows already present win over the bundled values,
// so hand-edited translations survive restarts.
func (r *Repo) Migrate(ctx context.Context) error {
	createTable := `
		CREATE TABLE IF NOT EXISTS translations (
			key TEXT NOT NULL UNIQUE,
			en TEXT NOT NULL,
			de TEXT NOT NULL
		)`
	if err := r.db.WithContext(ctx).Exec(createTable).Error; err != nil {
		return fmt.Errorf("create translations table: %w", err)
	}

	all, err := AllTranslations()
	if err != nil {
		return err
	}
	for _, t := range all {
		if err := r.db.WithContext(ctx).Exec(
			"INSERT OR IGNORE INTO translations (key, en, de) VALUES (?, ?, ?)",
			t.Key, t.En, t.De,
		).Error; err != nil {
			return fmt.Errorf("seed translation %s: %w", t.Key, err)
		}
	}
	return nil
}

// Resolve returns the stored translation of key in the given language.
func (r *Repo) Resolve(ctx context.Context, key string, lang settings.Language) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "i18nRepo.resolve")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var row translationRow
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrTranslationNotFound
		}
		return "", fmt.Errorf("resolve translation %s: %w", key, err)
	}

	if lang == settings.LanguageGerman {
		return row.De, nil
	}
	return row.En, nil
}
