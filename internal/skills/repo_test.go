package skills_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/2beens/rfatracker/internal/skills"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) *skills.Repo {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "rfa-test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)

	repo := skills.NewRepo(db)
	require.NoError(t, repo.Migrate(context.Background()))
	return repo
}

func TestRepo_MigrateSeedsCatalog(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 43)
	assert.Equal(t, "Front Press", all[0].Name)
	assert.Equal(t, skills.TypeArms, all[0].Type)
	assert.Equal(t, [4]int{25, 320, 390, 745}, all[0].Damage)

	// reseeding must not touch existing rows
	require.NoError(t, repo.IncrementReps(ctx, "Squat", 120))
	require.NoError(t, repo.Migrate(ctx))

	squat, err := repo.Get(ctx, "Squat")
	require.NoError(t, err)
	assert.Equal(t, 120, squat.CompletedReps)
}

func TestRepo_Get(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	skill, err := repo.Get(ctx, "Warrior II Pose")
	require.NoError(t, err)
	assert.Equal(t, skills.TypeYoga, skill.Type)
	assert.Equal(t, skills.HitsFive, skill.Hits)
	assert.Equal(t, 2000, skill.GoalReps)

	_, err = repo.Get(ctx, "Chin Up")
	assert.ErrorIs(t, err, skills.ErrSkillNotFound)
}

func TestRepo_IncrementReps(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	require.NoError(t, repo.IncrementReps(ctx, "Plank", 30))
	require.NoError(t, repo.IncrementReps(ctx, "Plank", 12))
	require.NoError(t, repo.IncrementReps(ctx, "Plank", 0))

	plank, err := repo.Get(ctx, "Plank")
	require.NoError(t, err)
	assert.Equal(t, 42, plank.CompletedReps)

	// unknown skills are skipped without an error
	require.NoError(t, repo.IncrementReps(ctx, "Chin Up", 10))
}

func TestRepo_SetReps(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	require.NoError(t, repo.IncrementReps(ctx, "Boat Pose", 55))
	require.NoError(t, repo.SetReps(ctx, "Boat Pose", 1500))

	boatPose, err := repo.Get(ctx, "Boat Pose")
	require.NoError(t, err)
	assert.Equal(t, 1500, boatPose.CompletedReps)

	assert.ErrorIs(t, repo.SetReps(ctx, "Chin Up", 10), skills.ErrSkillNotFound)
}
