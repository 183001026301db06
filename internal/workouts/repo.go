package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/rfatracker/internal/telemetry/tracing"
	"gorm.io/gorm"
)

// ErrWorkoutDecode marks a stored workout blob that can no longer be decoded.
// The log format has to stay backward compatible forever, so this error is
// fatal for the whole read rather than a skipped row.
var ErrWorkoutDecode = errors.New("workout decode failed")

// workoutRow stores a workout as an opaque blob: the entries are JSON
// encoded. The log is append only, rows are never updated or deleted.
type workoutRow struct {
	ID        int       `gorm:"column:id;primaryKey"`
	Timestamp time.Time `gorm:"column:timestamp"`
	Workout   []byte    `gorm:"column:workout"`
}

func (workoutRow) TableName() string {
	return "workouts"
}

type workoutBlob struct {
	Entries []Entry `json:"entries"`
}

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Migrate(ctx context.Context) error {
	createTable := `
		CREATE TABLE IF NOT EXISTS workouts (
			id INTEGER PRIMARY KEY,
			timestamp DATETIME NOT NULL,
			workout BLOB NOT NULL
		)`
	if err := r.db.WithContext(ctx).Exec(createTable).Error; err != nil {
		return fmt.Errorf("create workouts table: %w", err)
	}
	return nil
}

// Add appends the workout to the log and returns it with its new ID.
func (r *Repo) Add(ctx context.Context, workout Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutsRepo.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	blob, err := json.Marshal(workoutBlob{Entries: workout.Entries})
	if err != nil {
		return nil, fmt.Errorf("marshal workout: %w", err)
	}

	row := workoutRow{
		Timestamp: workout.Time,
		Workout:   blob,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("insert workout: %w", err)
	}

	workout.ID = row.ID
	return &workout, nil
}

// List returns all logged workouts, newest first. A row that fails to decode
// means the log cannot be trusted, so the whole read fails.
func (r *Repo) List(ctx context.Context) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutsRepo.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var rows []workoutRow
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	workouts := make([]Workout, 0, len(rows))
	for _, row := range rows {
		var blob workoutBlob
		if err := json.Unmarshal(row.Workout, &blob); err != nil {
			return nil, fmt.Errorf("%w: workout %d: %s", ErrWorkoutDecode, row.ID, err)
		}
		workouts = append(workouts, Workout{
			ID:      row.ID,
			Time:    row.Timestamp.Local(),
			Entries: blob.Entries,
		})
	}

	// newest first
	for i, j := 0, len(workouts)-1; i < j; i, j = i+1, j-1 {
		workouts[i], workouts[j] = workouts[j], workouts[i]
	}
	return workouts, nil
}
