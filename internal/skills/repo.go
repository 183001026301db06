package skills

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/rfatracker/internal/telemetry/tracing"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrSkillNotFound = errors.New("skill not found")

// skillRow is the stored shape of a skill. The array columns are kept as
// comma separated text so that databases written by older versions of this
// tracker stay readable.
type skillRow struct {
	ID            int    `gorm:"column:id;primaryKey"`
	Name          string `gorm:"column:name"`
	Type          string `gorm:"column:type"`
	Hits          string `gorm:"column:hits"`
	Damage        string `gorm:"column:damage"`
	Unlock        string `gorm:"column:unlock"`
	Hashtag       string `gorm:"column:hashtag"`
	Recharge      string `gorm:"column:recharge"`
	GoalReps      int    `gorm:"column:goal_reps"`
	CompletedReps int    `gorm:"column:completed_reps"`
}

func (skillRow) TableName() string {
	return "skills"
}

func (r skillRow) toSkill() Skill {
	skillType, err := ParseSkillType(r.Type)
	if err != nil {
		log.Warnf("skill %s: %s, falling back to %s", r.Name, err, TypeYoga)
		skillType = TypeYoga
	}
	hits, err := ParseSkillHits(r.Hits)
	if err != nil {
		log.Warnf("skill %s: %s, falling back to %s", r.Name, err, HitsHeal)
		hits = HitsHeal
	}
	return Skill{
		Name:          r.Name,
		Type:          skillType,
		Hits:          hits,
		Damage:        decodeInts(r.Damage),
		Unlocks:       decodeInts(r.Unlock),
		Hashtags:      decodeHashtags(r.Hashtag),
		Recharge:      decodeInts(r.Recharge),
		GoalReps:      r.GoalReps,
		CompletedReps: r.CompletedReps,
	}
}

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

// Migrate creates the skills table if needed and seeds it with the default
// catalog. Already present rows keep their reps, seeding never overwrites.
func (r *Repo) Migrate(ctx context.Context) error {
	createTable := `
		CREATE TABLE IF NOT EXISTS skills (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			type TEXT NOT NULL,
			hits TEXT NOT NULL,
			damage TEXT NOT NULL,
			unlock TEXT NOT NULL,
			hashtag TEXT NOT NULL,
			recharge TEXT NOT NULL,
			goal_reps INTEGER NOT NULL,
			completed_reps INTEGER NOT NULL DEFAULT 0
		)`
	if err := r.db.WithContext(ctx).Exec(createTable).Error; err != nil {
		return fmt.Errorf("create skills table: %w", err)
	}

	seed := `
		INSERT OR IGNORE INTO skills
			(name, type, hits, damage, unlock, hashtag, recharge, goal_reps, completed_reps)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, s := range DefaultCatalog() {
		if err := r.db.WithContext(ctx).Exec(
			seed,
			s.Name, s.Type.String(), s.Hits.String(),
			encodeInts(s.Damage), encodeInts(s.Unlocks),
			encodeHashtags(s.Hashtags), encodeInts(s.Recharge),
			s.GoalReps, s.CompletedReps,
		).Error; err != nil {
			return fmt.Errorf("seed skill %s: %w", s.Name, err)
		}
	}
	return nil
}

// ListAll returns every skill in catalog order.
func (r *Repo) ListAll(ctx context.Context) (_ []Skill, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "skillsRepo.listAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var rows []skillRow
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}

	skills := make([]Skill, 0, len(rows))
	for _, row := range rows {
		skills = append(skills, row.toSkill())
	}
	return skills, nil
}

// Get returns the skill with the given name, or ErrSkillNotFound.
func (r *Repo) Get(ctx context.Context, name string) (_ *Skill, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "skillsRepo.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var row skillRow
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, fmt.Errorf("get skill %s: %w", name, err)
	}

	skill := row.toSkill()
	return &skill, nil
}

// IncrementReps adds delta to the completed reps of the named skill.
// A name not present in the catalog is a silent no-op.
func (r *Repo) IncrementReps(ctx context.Context, name string, delta int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "skillsRepo.incrementReps")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	res := r.db.WithContext(ctx).
		Model(&skillRow{}).
		Where("name = ?", name).
		Update("completed_reps", gorm.Expr("completed_reps + ?", delta))
	if res.Error != nil {
		return fmt.Errorf("increment reps for %s: %w", name, res.Error)
	}
	if res.RowsAffected == 0 {
		log.Warnf("increment reps: skill %s not in catalog, skipping", name)
	}
	return nil
}

// SetReps overwrites the completed reps of the named skill.
func (r *Repo) SetReps(ctx context.Context, name string, totalReps int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "skillsRepo.setReps")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	res := r.db.WithContext(ctx).
		Model(&skillRow{}).
		Where("name = ?", name).
		Update("completed_reps", totalReps)
	if res.Error != nil {
		return fmt.Errorf("set reps for %s: %w", name, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrSkillNotFound
	}
	return nil
}
