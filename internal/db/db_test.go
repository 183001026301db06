package db_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/2beens/rfatracker/internal/db"
	"github.com/2beens/rfatracker/internal/i18n"
	"github.com/2beens/rfatracker/internal/settings"
	"github.com/2beens/rfatracker/internal/skills"
	"github.com/2beens/rfatracker/internal/workouts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAndBootstrap(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "rfa.db")

	gdb, err := db.Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, db.Bootstrap(ctx, gdb))

	// bootstrap must be idempotent
	require.NoError(t, db.Bootstrap(ctx, gdb))

	all, err := skills.NewRepo(gdb).ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 43)

	translated, err := i18n.NewRepo(gdb).Resolve(ctx, "skill_squat", settings.LanguageGerman)
	require.NoError(t, err)
	assert.Equal(t, "Kniebeuge", translated)

	emptyLog, err := workouts.NewRepo(gdb).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, emptyLog)

	require.NoError(t, db.Close(gdb))
}

func TestBootstrap_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "rfa.db")

	gdb, err := db.Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, db.Bootstrap(ctx, gdb))
	require.NoError(t, skills.NewRepo(gdb).IncrementReps(ctx, "Plank", 99))
	require.NoError(t, db.Close(gdb))

	gdb, err = db.Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, db.Bootstrap(ctx, gdb))

	plank, err := skills.NewRepo(gdb).Get(ctx, "Plank")
	require.NoError(t, err)
	assert.Equal(t, 99, plank.CompletedReps)
	require.NoError(t, db.Close(gdb))
}
