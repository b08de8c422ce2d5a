package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/platformer/internal/core"
)

// helpStyle renders the key help line under the game.
var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options tune a terminal session.
type Options struct {
	// Hold is how long a movement key stays down after its last repeat.
	Hold time.Duration
	// Logger receives game events. Nil discards them.
	Logger *log.Logger
	// ScreenshotDir is where ctrl+s writes frames.
	// Empty means ~/.platformer/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       core.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       *KeyMapper
	hold       *HoldTracker
	help       help.Model
	logger     *log.Logger
	shotDir    string
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	now        func() time.Time
}

// NewModel creates a new Bubble Tea model for the given game.
// The last terminal row is kept for the key help line.
func NewModel(game core.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 1)),
		config:  cfg,
		keys:    NewKeyMapper(DefaultKeyMap()),
		hold:    NewHoldTracker(opts.Hold),
		help:    help.New(),
		logger:  logger,
		shotDir: opts.ScreenshotDir,
		now:     time.Now,
	}
}

// Init starts the tick loop. The game is expected to be reset already.
func (m Model) Init() tea.Cmd {
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
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsScreenshot(msg) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionMoveLeft, core.ActionMoveRight:
		for _, e := range m.hold.Press(action, m.now()) {
			m.inputFrame.Push(e)
		}
	case core.ActionJump, core.ActionPause, core.ActionRestart:
		m.inputFrame.Push(core.Down(action))
	}

	return m, nil
}

// handleResize processes window resize events.
// The world is resolution independent, so the game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	for _, e := range m.hold.Expire(m.now()) {
		m.inputFrame.Push(e)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logEvents(result.Events)

	// Clear input for next frame
	m.inputFrame = core.InputFrame{}

	return m, tickCmd(m.config.TickRate)
}

// logEvents reports noteworthy game events.
func (m Model) logEvents(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventLevelComplete:
			m.logger.Info(e.Kind.String(), "game", m.game.ID(), "tick", e.Tick)
		default:
			m.logger.Debug(e.Kind.String(), "game", m.game.ID(), "falls", m.gameState.Falls)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() (string, error) {
	m.screen.Clear()
	m.game.Render(m.screen)

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".platformer", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	// Generate filename with timestamp
	timestamp := m.now().Format("20060102_150405.000")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Run starts the Bubble Tea program with the given model.
func Run(game core.Game, cfg core.RuntimeConfig, opts Options) error {
	game.Reset(cfg)
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
