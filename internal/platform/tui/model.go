package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/caiigames/starshot/internal/core"
	"github.com/caiigames/starshot/internal/registry"
	"github.com/caiigames/starshot/internal/storage"
)

// maxFrameDelta caps the simulation step after a stall (suspended
// terminal, debugger, SSH hiccup) so entities don't tunnel through
// each other on the next frame.
const maxFrameDelta = 0.25

// Model is the Bubble Tea model that drives the game loop.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	keys       *KeyMapper
	config     core.RuntimeConfig
	difficulty string

	inputFrame core.InputFrame
	gameState  core.GameState

	// Frame timing: real elapsed time between ticks on a wall clock,
	// capped at maxFrameDelta.
	lastTick time.Time
	playTime float64 // Seconds of active (unpaused) play this run

	// Fullscreen toggles between a fixed windowed playfield and the
	// full terminal. Play starts fullscreen.
	fullscreen bool
	windowW    int
	windowH    int
	termW      int
	termH      int

	quitting bool
	runSaved bool // Whether the run has been saved for the current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, difficulty string) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	window := core.DefaultConfig()

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		keys:       NewKeyMapper(),
		config:     cfg,
		difficulty: difficulty,
		inputFrame: core.NewInputFrame(),
		fullscreen: true,
		windowW:    window.ScreenW,
		windowH:    window.ScreenH,
		termW:      cfg.ScreenW,
		termH:      cfg.ScreenH,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionRestart:
		// Restart only makes sense on the game over screen
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
	case core.ActionFullscreen:
		return m.toggleFullscreen()
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// toggleFullscreen switches between the fixed windowed playfield and
// the full terminal. Gameplay survives the switch: the game re-anchors
// and clamps its entities instead of resetting.
func (m Model) toggleFullscreen() (tea.Model, tea.Cmd) {
	m.fullscreen = !m.fullscreen
	m.applyViewport()
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.termW = msg.Width
	m.termH = msg.Height
	m.applyViewport()
	return m, nil
}

// viewportRuntime returns the runtime config for the current playfield:
// the fixed window or the full terminal, never exceeding the terminal.
func (m *Model) viewportRuntime() core.RuntimeConfig {
	w, h := m.windowW, m.windowH
	if m.fullscreen {
		w, h = m.termW, m.termH
	}
	w = core.Min(w, m.termW)
	h = core.Min(h, m.termH)

	runtime := m.config
	runtime.ScreenW = w
	runtime.ScreenH = h
	return runtime
}

// applyViewport recomputes the playfield size from the current mode and
// terminal size, then propagates it to the screen buffer and the game.
func (m *Model) applyViewport() {
	runtime := m.viewportRuntime()
	if runtime.ScreenW < 1 || runtime.ScreenH < 1 {
		return
	}

	m.screen.Resize(runtime.ScreenW, runtime.ScreenH)
	m.game.Resize(runtime)
}

// handleTick advances the simulation by the real time elapsed since
// the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
		if dt > maxFrameDelta {
			dt = maxFrameDelta
		}
		if dt < 0 {
			dt = 0
		}
	}
	m.lastTick = now

	// Restart re-seeds so every run plays out differently
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.viewportRuntime())
		m.gameState = m.game.State()
		m.runSaved = false
		m.playTime = 0
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(dt, m.inputFrame)
	m.gameState = result.State

	if !m.gameState.GameOver && !m.gameState.Paused {
		m.playTime += dt
	}

	// Save the run on game over (once)
	if m.gameState.GameOver && !m.runSaved && m.gameState.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveRun(m.gameState.Score, m.playTime, m.difficulty)
		}
		m.runSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".starshot", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, difficulty string) error {
	model := NewModel(game, store, cfg, difficulty)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
