package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func saveRuns(t *testing.T, store *Store, runs ...Run) {
	t.Helper()
	for _, r := range runs {
		_, err := store.SaveRun(r)
		require.NoError(t, err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	assert.FileExists(t, dbPath)
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	saveRuns(t, store,
		Run{Seed: "alpha", Score: 12, Level: 0, Merges: 2},
		Run{Seed: "beta", Score: 31, Level: 1, Merges: 6},
		Run{Seed: "alpha", Score: 7, Level: 0, Merges: 1},
	)

	top, err := store.TopRuns(10)
	require.NoError(t, err)
	require.Len(t, top, 3)

	// Should be ordered by score descending
	assert.Equal(t, []int{31, 12, 7}, []int{top[0].Score, top[1].Score, top[2].Score})
	assert.Equal(t, "beta", top[0].Seed)
	assert.Equal(t, 1, top[0].Level)
	assert.Equal(t, 6, top[0].Merges)
	assert.False(t, top[0].CreatedAt.IsZero(), "CreatedAt should be parsed")
}

func TestStoreSaveRunRequiresSeed(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveRun(Run{Score: 3})
	assert.Error(t, err)
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		saveRuns(t, store, Run{Seed: "limit", Score: i * 10})
	}

	top, err := store.TopRuns(5)
	require.NoError(t, err)
	require.Len(t, top, 5)
	assert.Equal(t, 190, top[0].Score)

	// Zero limit falls back to 10
	top, err = store.TopRuns(0)
	require.NoError(t, err)
	assert.Len(t, top, 10)
}

func TestStoreTiesBrokenByLevel(t *testing.T) {
	store := openTestStore(t)

	saveRuns(t, store,
		Run{Seed: "low", Score: 30, Level: 0},
		Run{Seed: "high", Score: 30, Level: 1},
	)

	top, err := store.TopRuns(2)
	require.NoError(t, err)
	assert.Equal(t, "high", top[0].Seed, "equal scores should rank the higher level first")
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	score, err := store.HighScore()
	require.NoError(t, err)
	assert.Zero(t, score)

	saveRuns(t, store,
		Run{Seed: "a", Score: 100},
		Run{Seed: "b", Score: 250},
		Run{Seed: "c", Score: 75},
	)

	score, err = store.HighScore()
	require.NoError(t, err)
	assert.Equal(t, 250, score)
}

func TestStoreBestRunForSeed(t *testing.T) {
	store := openTestStore(t)

	run, err := store.BestRunForSeed("unplayed")
	require.NoError(t, err)
	assert.Nil(t, run, "an unplayed seed has no best run")

	saveRuns(t, store,
		Run{Seed: "pond", Score: 4},
		Run{Seed: "pond", Score: 9},
		Run{Seed: "lake", Score: 40},
	)

	run, err = store.BestRunForSeed("pond")
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, 9, run.Score)
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	saveRuns(t, store, Run{Seed: "a", Score: 100}, Run{Seed: "b", Score: 200})
	require.NoError(t, store.ClearRuns())

	runs, err := store.AllRuns()
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestStoreAllRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		saveRuns(t, store, Run{Seed: "all", Score: i})
	}

	runs, err := store.AllRuns()
	require.NoError(t, err)
	require.Len(t, runs, 20)
	assert.Equal(t, 19, runs[0].Score, "best run first")
	assert.Equal(t, 0, runs[19].Score)
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	require.NoError(t, err)
	assert.Zero(t, stats.Runs)
	assert.True(t, stats.LastPlayed.IsZero())

	saveRuns(t, store,
		Run{Seed: "x", Score: 10, Level: 0},
		Run{Seed: "x", Score: 30, Level: 1},
		Run{Seed: "y", Score: 20, Level: 0},
	)

	stats, err = store.Stats()
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Runs)
	assert.Equal(t, 30, stats.HighScore)
	assert.Equal(t, 1, stats.BestLevel)
	assert.Equal(t, 20.0, stats.AvgScore)
	assert.Equal(t, int64(60), stats.TotalScore)
	assert.Equal(t, 2, stats.Seeds)
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	// Verify nested directories were created
	assert.FileExists(t, dbPath)
}
