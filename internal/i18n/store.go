package i18n

import (
	"context"
	"fmt"
	"sync"

	"github.com/2beens/rfatracker/internal/settings"
	"github.com/2beens/rfatracker/internal/skills"
	"github.com/2beens/rfatracker/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

// InvalidString stands in for any lookup that cannot be resolved, so a hole
// in the translations table shows up on screen instead of crashing anything.
const InvalidString = "Invalid"

type translationsResolver interface {
	Resolve(ctx context.Context, key string, lang settings.Language) (string, error)
}

type skillsCatalog interface {
	ListAll(ctx context.Context) ([]skills.Skill, error)
}

// Caches holds every localized string for the active language, resolved
// once per language switch so lookups never hit the database.
type Caches struct {
	// SkillNames maps the canonical skill name to its localized name.
	SkillNames map[string]string `json:"skillNames"`
	// HashtagNames maps the hashtag to its localized display string.
	HashtagNames map[skills.Hashtag]string `json:"hashtagNames"`
	// MenuNames maps the translation key of a UI string to its localized value.
	MenuNames map[string]string `json:"menuNames"`
}

// Store holds the active language and its resolved string caches.
// It persists language changes to the settings file.
type Store struct {
	repo         translationsResolver
	catalog      skillsCatalog
	settingsPath string

	mu       sync.RWMutex
	language settings.Language
	caches   Caches
}

func NewStore(
	ctx context.Context,
	repo translationsResolver,
	catalog skillsCatalog,
	settingsPath string,
	language settings.Language,
) (*Store, error) {
	store := &Store{
		repo:         repo,
		catalog:      catalog,
		settingsPath: settingsPath,
		language:     language,
	}
	caches, err := store.buildCaches(ctx, language)
	if err != nil {
		return nil, fmt.Errorf("build localization caches: %w", err)
	}
	store.caches = caches
	return store, nil
}

func (s *Store) Language() settings.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language
}

func (s *Store) Caches() Caches {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.caches
}

// SwitchLanguage persists the new language to the settings file and rebuilds
// the string caches. The old caches stay active if anything fails.
func (s *Store) SwitchLanguage(ctx context.Context, language settings.Language) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "i18nStore.switchLanguage")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	caches, err := s.buildCaches(ctx, language)
	if err != nil {
		return fmt.Errorf("build localization caches: %w", err)
	}

	if err := settings.Save(s.settingsPath, settings.Settings{Language: language}); err != nil {
		return fmt.Errorf("persist language: %w", err)
	}

	s.mu.Lock()
	s.language = language
	s.caches = caches
	s.mu.Unlock()

	log.Debugf("language switched to %s", language)
	return nil
}

func (s *Store) buildCaches(ctx context.Context, language settings.Language) (Caches, error) {
	caches := Caches{
		SkillNames:   make(map[string]string),
		HashtagNames: make(map[skills.Hashtag]string),
		MenuNames:    make(map[string]string),
	}

	allSkills, err := s.catalog.ListAll(ctx)
	if err != nil {
		return Caches{}, fmt.Errorf("list skills: %w", err)
	}
	for _, skill := range allSkills {
		caches.SkillNames[skill.Name] = s.resolveOrInvalid(ctx, skill.TranslationKey(), language)
	}

	for _, hashtag := range skills.AllHashtags() {
		caches.HashtagNames[hashtag] = s.resolveOrInvalid(ctx, hashtag.TranslationKey(), language)
	}

	// menu strings come straight from the bundled table, they
	// are not user-editable like the database-backed ones
	allTranslations, err := AllTranslations()
	if err != nil {
		return Caches{}, err
	}
	for _, t := range allTranslations {
		if language == settings.LanguageGerman {
			caches.MenuNames[t.Key] = t.De
		} else {
			caches.MenuNames[t.Key] = t.En
		}
	}

	return caches, nil
}

func (s *Store) resolveOrInvalid(ctx context.Context, key string, language settings.Language) string {
	resolved, err := s.repo.Resolve(ctx, key, language)
	if err != nil {
		log.Warnf("resolve %s (%s) failed: %s", key, language, err)
		return InvalidString
	}
	return resolved
}
