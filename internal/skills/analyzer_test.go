package skills_test

import (
	"context"
	"errors"
	"testing"

	"github.com/2beens/rfatracker/internal/skills"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBandFor(t *testing.T) {
	assert.Equal(t, skills.BandBelow25, skills.BandFor(0))
	assert.Equal(t, skills.BandBelow25, skills.BandFor(24.9))
	assert.Equal(t, skills.Band25To50, skills.BandFor(25))
	assert.Equal(t, skills.Band50To75, skills.BandFor(50))
	assert.Equal(t, skills.Band75To100, skills.BandFor(99.9))
	assert.Equal(t, skills.Band100To150, skills.BandFor(100))
	assert.Equal(t, skills.Band150To200, skills.BandFor(150))
	assert.Equal(t, skills.Band200AndOver, skills.BandFor(200))
	assert.Equal(t, skills.Band200AndOver, skills.BandFor(512))
}

func TestAnalyzer_Progress(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalogMock := NewMockcatalogRepo(ctrl)
	analyzer := skills.NewAnalyzer(catalogMock)

	catalogMock.EXPECT().
		ListAll(gomock.Any()).
		Return([]skills.Skill{
			{Name: "Squat", Type: skills.TypeLegs, GoalReps: 3000, CompletedReps: 750},
			{Name: "Chair Pose", Type: skills.TypeYoga, GoalReps: 2000, CompletedReps: 5000},
		}, nil)

	progress, err := analyzer.Progress(context.Background())
	require.NoError(t, err)
	require.Len(t, progress, 2)

	assert.Equal(t, "Squat", progress[0].Name)
	assert.Equal(t, 2250, progress[0].RepsUntilGoal)
	assert.InDelta(t, 25, progress[0].Percent, 0.001)
	assert.Equal(t, skills.Band25To50, progress[0].Band)

	assert.Equal(t, "Chair Pose", progress[1].Name)
	assert.Equal(t, 0, progress[1].RepsUntilGoal)
	assert.InDelta(t, 100, progress[1].Percent, 0.001)
	assert.InDelta(t, 250, progress[1].PercentUncapped, 0.001)
	assert.Equal(t, skills.Band200AndOver, progress[1].Band)
}

func TestAnalyzer_Total(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalogMock := NewMockcatalogRepo(ctrl)
	analyzer := skills.NewAnalyzer(catalogMock)

	catalogMock.EXPECT().
		ListAll(gomock.Any()).
		Return([]skills.Skill{
			{Name: "Squat", GoalReps: 3000, CompletedReps: 1500},
			{Name: "Chair Pose", GoalReps: 2000, CompletedReps: 4000},
		}, nil)

	total, err := analyzer.Total(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5500, total.CompletedReps)
	assert.Equal(t, 1500, total.RemainingReps)
	assert.Equal(t, 5000, total.GoalReps)
	// overachieved reps on one skill make up for missing reps on another
	assert.InDelta(t, 70, total.TotalPercent, 0.001)
	// while the relative view caps each skill at 100%
	assert.InDelta(t, 75, total.RelativePercent, 0.001)
}

func TestAnalyzer_Total_EmptyCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalogMock := NewMockcatalogRepo(ctrl)
	analyzer := skills.NewAnalyzer(catalogMock)

	catalogMock.EXPECT().ListAll(gomock.Any()).Return(nil, nil)

	total, err := analyzer.Total(context.Background())
	require.NoError(t, err)
	assert.Zero(t, total.TotalPercent)
	assert.Zero(t, total.RelativePercent)
}

func TestAnalyzer_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalogMock := NewMockcatalogRepo(ctrl)
	analyzer := skills.NewAnalyzer(catalogMock)

	catalogMock.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("db gone")).Times(2)

	_, err := analyzer.Progress(context.Background())
	assert.Error(t, err)
	_, err = analyzer.Total(context.Background())
	assert.Error(t, err)
}
