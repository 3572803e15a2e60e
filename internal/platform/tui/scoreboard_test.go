package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/duck-tower/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	view := m.View()
	assert.Contains(t, view, "No runs recorded yet")
	assert.Contains(t, view, "no runs yet", "stats line should report no runs")
}

func TestScoreboardListsRuns(t *testing.T) {
	store := openTestStore(t)
	_, err := store.SaveRun(storage.Run{Seed: "pond", Score: 12, Level: 1})
	require.NoError(t, err)
	_, err = store.SaveRun(storage.Run{Seed: "lake", Score: 40, Level: 2})
	require.NoError(t, err)

	m := NewScoreboardModel(store, 100, 30)
	require.Len(t, m.runs, 2)
	assert.Equal(t, "lake", m.runs[0].Seed, "best run should come first")
	assert.Contains(t, m.statsLine(), "2 runs")

	rows := runRows(m.runs)
	assert.Equal(t, "#1", rows[0][0])
	assert.Equal(t, "40", rows[0][1])
	assert.Equal(t, "2", rows[0][2])
	assert.Equal(t, "lake", rows[0][3])
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, next.(ScoreboardModel).IsGoingBack(), "esc should go back")
	assert.NotNil(t, cmd)

	next, _ = m.Update(runeKey("q"))
	assert.True(t, next.(ScoreboardModel).IsQuitting(), "q should quit")
}

func TestCenterText(t *testing.T) {
	assert.Equal(t, "  ab", centerText("ab", 6))
	assert.Equal(t, "abcdef", centerText("abcdef", 4), "wide text should be left alone")
}
