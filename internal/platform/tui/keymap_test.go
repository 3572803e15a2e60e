package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/duck-tower/internal/core"
	"github.com/vovakirdan/duck-tower/internal/games/ducks"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKeyPerMode(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		mode ducks.Mode
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, ducks.ModePlaying, core.ActionLeft},
		{"a moves left", runeKey("a"), ducks.ModePlaying, core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, ducks.ModePlaying, core.ActionRight},
		{"space drops", tea.KeyMsg{Type: tea.KeySpace}, ducks.ModePlaying, core.ActionDrop},
		{"down drops", tea.KeyMsg{Type: tea.KeyDown}, ducks.ModePlaying, core.ActionDrop},
		{"enter continues", tea.KeyMsg{Type: tea.KeyEnter}, ducks.ModeLevelUp, core.ActionContinue},
		{"r retries", runeKey("r"), ducks.ModeGameOver, core.ActionRetry},
		{"esc goes to menu", tea.KeyMsg{Type: tea.KeyEsc}, ducks.ModeGameOver, core.ActionMenu},
		{"r does nothing while playing", runeKey("r"), ducks.ModePlaying, core.ActionNone},
		{"left does nothing after game over", tea.KeyMsg{Type: tea.KeyLeft}, ducks.ModeGameOver, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := km.MapKey(tt.msg, tt.mode)
			assert.False(t, quit, "MapKey(%q) reported quit", tt.msg.String())
			assert.Equal(t, tt.want, got, "MapKey(%q, %s)", tt.msg.String(), tt.mode)
		})
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()

	for _, msg := range []tea.KeyMsg{runeKey("q"), {Type: tea.KeyCtrlC}} {
		action, quit := km.MapKey(msg, ducks.ModePlaying)
		assert.True(t, quit, "MapKey(%q)", msg.String())
		assert.Equal(t, core.ActionQuit, action, "MapKey(%q)", msg.String())
	}

	var frame core.InputFrame
	assert.True(t, km.MapKeyToFrame(runeKey("q"), ducks.ModePlaying, &frame), "MapKeyToFrame should report quit")
	assert.True(t, frame.Empty(), "quit should not reach the game")
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()

	p, ok := km.MapMouse(tea.MouseMsg{X: 2, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.True(t, ok, "left press should map")
	assert.Equal(t, core.PointerDown, p.Phase)
	assert.Equal(t, 2.5*ducks.CellWidth, p.X)
	assert.Equal(t, 3.5*ducks.CellHeight, p.Y)

	_, ok = km.MapMouse(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	assert.False(t, ok, "right press should be ignored")
	_, ok = km.MapMouse(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	assert.False(t, ok, "wheel should be ignored")

	var frame core.InputFrame
	km.MapMouseToFrame(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionMotion}, &frame)
	km.MapMouseToFrame(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionRelease}, &frame)
	require.Len(t, frame.Events, 2)
	assert.Equal(t, core.PointerMove, frame.Events[0].Pointer.Phase)
	assert.Equal(t, core.PointerUp, frame.Events[1].Pointer.Phase)
}
