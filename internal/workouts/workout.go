package workouts

import (
	"time"

	"github.com/2beens/rfatracker/internal/skills"
)

// Entry is one exercised skill within a workout. It carries a full snapshot
// of the skill as it looked when the workout was logged, so old workouts stay
// readable even after goals or reps change.
type Entry struct {
	Skill skills.Skill `json:"skill"`
	Reps  int          `json:"reps"`
}

// Workout is one logged training session.
type Workout struct {
	ID      int       `json:"id"`
	Time    time.Time `json:"time"`
	Entries []Entry   `json:"entries"`
}

// TotalReps sums the reps over all entries.
func (w Workout) TotalReps() int {
	var total int
	for _, e := range w.Entries {
		total += e.Reps
	}
	return total
}
