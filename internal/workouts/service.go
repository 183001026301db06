package workouts

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/2beens/rfatracker/internal/skills"
	"github.com/2beens/rfatracker/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=workouts_test

type catalog interface {
	ListAll(ctx context.Context) ([]skills.Skill, error)
	IncrementReps(ctx context.Context, name string, delta int) error
}

type workoutsRepo interface {
	Add(ctx context.Context, workout Workout) (*Workout, error)
	List(ctx context.Context) ([]Workout, error)
}

// RepInput is one raw rep count as entered for a skill. Reps stays a string
// up to here: empty and garbage inputs are valid and count as zero.
type RepInput struct {
	SkillName string `json:"skillName"`
	Reps      string `json:"reps"`
}

// Service turns raw rep inputs into catalog updates and log entries.
type Service struct {
	catalog catalog
	repo    workoutsRepo
	now     func() time.Time
}

func NewService(catalog catalog, repo workoutsRepo) *Service {
	return &Service{
		catalog: catalog,
		repo:    repo,
		now:     time.Now,
	}
}

// LogWorkout applies the entered reps to every skill in the catalog and
// appends the session to the workout log. Inputs that do not parse as a
// positive number count as zero reps: the skill still gets its increment
// (a no-op) but is left out of the logged workout. A session where nothing
// parsed still produces a log row, an empty workout is a workout.
func (s *Service) LogWorkout(ctx context.Context, inputs []RepInput) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutsService.logWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	all, err := s.catalog.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}

	rawReps := make(map[string]string, len(inputs))
	for _, input := range inputs {
		rawReps[input.SkillName] = input.Reps
	}

	var entries []Entry
	for _, skill := range all {
		reps := parseReps(rawReps[skill.Name])
		if err := s.catalog.IncrementReps(ctx, skill.Name, reps); err != nil {
			return nil, fmt.Errorf("increment reps for %s: %w", skill.Name, err)
		}
		if reps > 0 {
			entries = append(entries, Entry{Skill: skill, Reps: reps})
		}
	}

	workout, err := s.repo.Add(ctx, Workout{
		Time:    s.now(),
		Entries: entries,
	})
	if err != nil {
		return nil, fmt.Errorf("add workout: %w", err)
	}

	log.Debugf("workout %d logged: %d skills, %d reps", workout.ID, len(workout.Entries), workout.TotalReps())
	return workout, nil
}

// History returns all logged workouts, newest first.
func (s *Service) History(ctx context.Context) ([]Workout, error) {
	return s.repo.List(ctx)
}

func parseReps(raw string) int {
	if raw == "" {
		return 0
	}
	reps, err := strconv.Atoi(raw)
	if err != nil || reps < 0 {
		return 0
	}
	return reps
}
