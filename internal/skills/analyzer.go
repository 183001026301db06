package skills

import (
	"context"
	"fmt"

	"github.com/2beens/rfatracker/internal/telemetry/tracing"
)

// ProgressBand buckets an uncapped completion percentage into the coarse
// ranges the progress screens color by.
type ProgressBand string

const (
	BandBelow25    ProgressBand = "below-25"
	Band25To50     ProgressBand = "25-50"
	Band50To75     ProgressBand = "50-75"
	Band75To100    ProgressBand = "75-100"
	Band100To150   ProgressBand = "100-150"
	Band150To200   ProgressBand = "150-200"
	Band200AndOver ProgressBand = "200-plus"
)

func BandFor(percentUncapped float64) ProgressBand {
	switch {
	case percentUncapped >= 200:
		return Band200AndOver
	case percentUncapped >= 150:
		return Band150To200
	case percentUncapped >= 100:
		return Band100To150
	case percentUncapped >= 75:
		return Band75To100
	case percentUncapped >= 50:
		return Band50To75
	case percentUncapped >= 25:
		return Band25To50
	default:
		return BandBelow25
	}
}

type SkillProgress struct {
	Name            string       `json:"name"`
	Type            SkillType    `json:"type"`
	CompletedReps   int          `json:"completedReps"`
	GoalReps        int          `json:"goalReps"`
	RepsUntilGoal   int          `json:"repsUntilGoal"`
	Percent         float64      `json:"percent"`
	PercentUncapped float64      `json:"percentUncapped"`
	Band            ProgressBand `json:"band"`
}

type TotalProgress struct {
	CompletedReps int `json:"completedReps"`
	RemainingReps int `json:"remainingReps"`
	GoalReps      int `json:"goalReps"`
	// TotalPercent weights every skill by its goal: 1 - sum(remaining)/sum(goals).
	TotalPercent float64 `json:"totalPercent"`
	// RelativePercent is the plain mean of the capped per-skill percentages,
	// so a small overachieved skill counts as much as a big unfinished one.
	RelativePercent float64 `json:"relativePercent"`
}

type catalogLister interface {
	ListAll(ctx context.Context) ([]Skill, error)
}

// Analyzer derives progress stats from the skill catalog.
type Analyzer struct {
	catalog catalogLister
}

func NewAnalyzer(catalog catalogLister) *Analyzer {
	return &Analyzer{catalog: catalog}
}

// Progress returns per-skill progress in catalog order.
func (a *Analyzer) Progress(ctx context.Context) (_ []SkillProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "skillsAnalyzer.progress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	all, err := a.catalog.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}

	progress := make([]SkillProgress, 0, len(all))
	for _, s := range all {
		uncapped := s.PercentUncapped()
		progress = append(progress, SkillProgress{
			Name:            s.Name,
			Type:            s.Type,
			CompletedReps:   s.CompletedReps,
			GoalReps:        s.GoalReps,
			RepsUntilGoal:   s.RepsUntilGoal(),
			Percent:         s.Percent(),
			PercentUncapped: uncapped,
			Band:            BandFor(uncapped),
		})
	}
	return progress, nil
}

// Total returns the aggregate progress over the whole catalog.
func (a *Analyzer) Total(ctx context.Context) (_ *TotalProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "skillsAnalyzer.total")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	all, err := a.catalog.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}

	total := &TotalProgress{}
	var percentSum float64
	for _, s := range all {
		total.CompletedReps += s.CompletedReps
		total.RemainingReps += s.RepsUntilGoal()
		total.GoalReps += s.GoalReps
		percentSum += s.Percent()
	}
	if total.GoalReps > 0 {
		total.TotalPercent = (1 - float64(total.RemainingReps)/float64(total.GoalReps)) * 100
	}
	if len(all) > 0 {
		total.RelativePercent = percentSum / float64(len(all))
	}
	return total, nil
}
