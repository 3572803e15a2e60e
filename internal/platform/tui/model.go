package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/duck-tower/internal/core"
	"github.com/vovakirdan/duck-tower/internal/games/ducks"
	"github.com/vovakirdan/duck-tower/internal/storage"
)

// statusRows is the number of terminal rows kept below the playfield.
const statusRows = 1

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// RuntimeFor returns the runtime config of a cols x rows terminal,
// leaving room for the status line.
func RuntimeFor(cols, rows, tickRate int, seed string) core.RuntimeConfig {
	w, h := ducks.ScreenSize(cols, playfieldRows(rows))
	return core.RuntimeConfig{
		ViewportW: w,
		ViewportH: h,
		TickRate:  tickRate,
		Seed:      seed,
	}
}

func playfieldRows(rows int) int {
	return max(rows-statusRows, 1)
}

// Model is the Bubble Tea model for playing the duck tower.
type Model struct {
	game       *ducks.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	seedInput  textinput.Model
	inputFrame core.InputFrame
	best       *storage.Run // Best stored run for the seed that just ended
	newHigh    bool         // The run that just ended beat every stored run
	quitting   bool
	scoreSaved bool // Whether the run has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game and resets
// it to the menu. The screen size follows cfg's viewport.
func NewModel(game *ducks.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	cols := max(int(cfg.ViewportW)/ducks.CellWidth, 1)
	rows := max(int(cfg.ViewportH)/ducks.CellHeight, 1)

	ti := textinput.New()
	ti.Prompt = "Seed: "
	ti.Placeholder = "random"
	ti.CharLimit = 32
	ti.Focus()

	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cols, rows),
		store:      store,
		logger:     log.New(io.Discard),
		config:     cfg,
		keys:       NewKeyMapper(),
		seedInput:  ti,
		inputFrame: core.NewInputFrame(),
	}
}

// WithLogger returns a copy of the model that logs game events to l.
func (m Model) WithLogger(l *log.Logger) Model {
	if l != nil {
		m.logger = l
	}
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd(m.config.TickRate))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keys.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	// Cursor blink and friends
	var cmd tea.Cmd
	m.seedInput, cmd = m.seedInput.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	if m.game.Mode() == ducks.ModeMenu {
		return m.handleMenuKey(msg)
	}

	if m.keys.MapKeyToFrame(msg, m.game.Mode(), &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMenuKey feeds the seed input; Enter starts the run.
func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		m.startRun()
		return m, nil
	}

	var cmd tea.Cmd
	m.seedInput, cmd = m.seedInput.Update(msg)
	return m, cmd
}

// startRun starts a run with the typed seed, the configured seed, or a
// random one, in that order.
func (m *Model) startRun() {
	seed := strings.TrimSpace(m.seedInput.Value())
	if seed == "" {
		seed = m.config.Seed
	}
	if seed == "" {
		seed = randomSeed()
	}

	m.game.StartGame(seed)
	m.seedInput.Reset()
	m.inputFrame.Clear()
	m.scoreSaved = false
	m.best = nil
	m.newHigh = false
	m.logger.Info("run started", "seed", seed)
}

// randomSeed returns a short seed that is easy to type back in.
func randomSeed() string {
	return fmt.Sprintf("%06x", time.Now().UnixNano()&0xffffff)
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	rows := playfieldRows(msg.Height)
	m.screen.Resize(msg.Width, rows)
	m.game.Resize(ducks.ScreenSize(msg.Width, rows))
	m.seedInput.Width = max(msg.Width-len(m.seedInput.Prompt)-1, 1)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.logEvents(result.Events)

	if result.Mode == ducks.ModeGameOver {
		m.saveRun()
	} else {
		m.scoreSaved = false
		m.newHigh = false
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun stores the finished run once per game over.
func (m *Model) saveRun() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true
	if m.store == nil || m.game.Score() == 0 {
		return
	}

	run := storage.Run{
		Seed:  m.game.Seed(),
		Score: m.game.Score(),
		Level: m.game.Level(),
	}
	if stack := m.game.Stack(); stack != nil {
		run.Merges = stack.Base().MergeLevel
	}

	high, highErr := m.store.HighScore()
	if highErr != nil {
		m.logger.Warn("could not load high score", "error", highErr)
	}

	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	if highErr == nil && run.Score > high {
		m.newHigh = true
		m.logger.Info("new high score", "score", run.Score, "previous", high)
	}

	best, err := m.store.BestRunForSeed(run.Seed)
	if err != nil {
		m.logger.Warn("could not load best run", "seed", run.Seed, "error", err)
		return
	}
	m.best = best
}

func (m Model) logEvents(events []ducks.Event) {
	for _, e := range events {
		switch e.Kind {
		case ducks.EventLanded:
			m.logger.Debug("landed", "tick", e.Tick, "landing", e.Landing, "offset", e.Offset, "score", e.Score)
		case ducks.EventMerged:
			m.logger.Info("merged", "tick", e.Tick, "mergeLevel", e.MergeLevel, "baseWidth", e.BaseWidth)
		case ducks.EventLevelUp:
			m.logger.Info("level up", "tick", e.Tick, "level", e.Level, "score", e.Score)
		case ducks.EventGameOver:
			m.logger.Info("game over", "tick", e.Tick, "score", e.Score, "level", e.Level,
				"offset", e.Offset, "fallback", e.Fallback)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".ducks", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	seed := m.game.Seed()
	if seed == "" {
		seed = "menu"
	}
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", filepath.Base(seed), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.statusLine()
}

func (m Model) statusLine() string {
	switch m.game.Mode() {
	case ducks.ModeMenu:
		return m.seedInput.View()
	case ducks.ModeLevelUp:
		return statusStyle.Render("enter continue  esc menu  q quit")
	case ducks.ModeGameOver:
		line := "r retry  esc menu  q quit"
		if m.best != nil {
			line = fmt.Sprintf("best on %q: %d  |  %s", m.best.Seed, m.best.Score, line)
		}
		if m.newHigh {
			line = "new high score!  " + line
		}
		return statusStyle.Render(line)
	}
	return statusStyle.Render("←/→ move  space drop  mouse drag  esc menu  q quit")
}

// Game returns the model's game.
func (m Model) Game() *ducks.Game {
	return m.game
}

// Run starts the Bubble Tea program with the given game.
func Run(game *ducks.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg).WithLogger(logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Drag the duck with the mouse
	)

	_, err := p.Run()
	return err
}
