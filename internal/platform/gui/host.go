package gui

import (
	"fmt"
	"image/color"
	"io"
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/platformer/internal/config"
	"github.com/vovakirdan/platformer/internal/core"
	"github.com/vovakirdan/platformer/internal/games/platformer"
)

// clearColor is painted before every frame.
var clearColor = color.White

// Options configure the window host.
type Options struct {
	// Assets is where asset paths are resolved.
	Assets fs.FS
	// Scale multiplies the window size; the logical size stays the viewport.
	Scale float64
	// Logger receives asset and game events. Nil discards them.
	Logger *log.Logger
}

// Host implements ebiten.Game around a platformer game.
type Host struct {
	game     *platformer.Game
	cfg      config.PlatformerConfig
	res      *Resources
	pixel    *ebiten.Image
	logger   *log.Logger
	state    core.GameState
	quitting bool
}

// NewHost creates a window host.
func NewHost(game *platformer.Game, cfg config.PlatformerConfig, opts Options) *Host {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)

	return &Host{
		game:   game,
		cfg:    cfg,
		res:    NewResources(opts.Assets, logger),
		pixel:  pixel,
		logger: logger,
	}
}

// Update advances the simulation by one tick.
func (h *Host) Update() error {
	frame := keyEdges(inpututil.IsKeyJustPressed, inpututil.IsKeyJustReleased)
	if frame.Pressed(core.ActionQuit) {
		return ebiten.Termination
	}

	result := h.game.Step(frame)
	h.state = result.State
	for _, e := range result.Events {
		switch e.Kind {
		case core.EventLevelComplete:
			h.logger.Info(e.Kind.String(), "tick", e.Tick)
		default:
			h.logger.Debug(e.Kind.String(), "falls", h.state.Falls)
		}
	}
	return nil
}

// Draw renders the last captured frame and a status line.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(clearColor)
	h.game.DrawTo(NewSurface(screen, h.res, h.pixel))
	ebitenutil.DebugPrint(screen, statusLine(h.state))
}

// Layout returns the game's logical screen size, the world viewport.
// This size is independent of the actual window size.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(h.cfg.Viewport.Width), int(h.cfg.Viewport.Height)
}

// statusLine is the text drawn in the corner of the window.
func statusLine(s core.GameState) string {
	line := fmt.Sprintf("progress %3.0f%%  falls %d", s.Progress*100, s.Falls)
	if s.Won {
		line += "  YOU WIN!"
	}
	if s.Paused {
		line += "  PAUSED (p to resume)"
	}
	return line
}

// Run opens the window and blocks until it is closed.
func Run(game *platformer.Game, cfg config.PlatformerConfig, opts Options) error {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}

	host := NewHost(game, cfg, opts)
	if missing := host.res.Preload(cfg.Assets); missing > 0 {
		host.logger.Warn("some assets are missing, drawing placeholders", "missing", missing)
	}

	ebiten.SetWindowSize(int(cfg.Viewport.Width*opts.Scale), int(cfg.Viewport.Height*opts.Scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(cfg.Input.TickRate)

	if err := ebiten.RunGame(host); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
