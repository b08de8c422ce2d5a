package web

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/platformer/internal/config"
	"github.com/vovakirdan/platformer/internal/core"
	"github.com/vovakirdan/platformer/internal/games/platformer"
)

const (
	writeWait      = 5 * time.Second
	maxMessageSize = 512
)

// session is one browser playing one game.
// The reader goroutine only queues events; the tick loop owns the game and
// is the only writer on the socket.
type session struct {
	id       string
	conn     *websocket.Conn
	game     *platformer.Game
	cfg      config.PlatformerConfig
	queue    platformer.EventQueue
	logger   *log.Logger
	tickRate int
}

func newSession(conn *websocket.Conn, game *platformer.Game, cfg config.PlatformerConfig, logger *log.Logger) *session {
	id := uuid.NewString()
	tickRate := cfg.Input.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	return &session{
		id:       id,
		conn:     conn,
		game:     game,
		cfg:      cfg,
		logger:   logger.With("session", id),
		tickRate: tickRate,
	}
}

// run greets the client and ticks the game until the socket closes or ctx
// is cancelled.
func (s *session) run(ctx context.Context) error {
	defer s.conn.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := s.write(newHello(s.id, s.game.Title(), s.cfg)); err != nil {
		return err
	}

	readErr := make(chan error, 1)
	go func() {
		readErr <- s.readLoop()
		cancel()
	}()

	ticker := time.NewTicker(time.Second / time.Duration(s.tickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			select {
			case err := <-readErr:
				if isNormalClose(err) {
					return nil
				}
				return err
			default:
				return nil
			}
		case <-ticker.C:
			if err := s.tick(); err != nil {
				return err
			}
		}
	}
}

// tick steps the game once and sends its events and frame.
func (s *session) tick() error {
	result := s.game.Step(s.queue.Drain())

	for _, e := range result.Events {
		if e.Kind == core.EventLevelComplete {
			s.logger.Info(e.Kind.String(), "tick", e.Tick)
		} else {
			s.logger.Debug(e.Kind.String(), "falls", result.State.Falls)
		}
		if err := s.write(EventMessage{Type: TypeEvent, Event: e.Kind.String(), Tick: e.Tick}); err != nil {
			return err
		}
	}

	return s.write(s.frame(result.State))
}

// frame encodes the game's captured draw list.
func (s *session) frame(state core.GameState) FrameMessage {
	var surface frameSurface
	s.game.DrawTo(&surface)
	return FrameMessage{
		Type:     TypeFrame,
		Tick:     state.Ticks,
		Progress: state.Progress,
		Falls:    state.Falls,
		Won:      state.Won,
		Paused:   state.Paused,
		Draws:    surface.draws,
	}
}

func (s *session) write(msg any) error {
	if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("web: set deadline: %w", err)
	}
	if err := s.conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("web: write: %w", err)
	}
	return nil
}

// readLoop queues key events until the socket fails.
func (s *session) readLoop() error {
	s.conn.SetReadLimit(maxMessageSize)
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			return err
		}
		e, err := decodeKey(data)
		if err != nil {
			s.logger.Debug("dropping message", "error", err)
			continue
		}
		s.queue.Push(e)
	}
}

func isNormalClose(err error) bool {
	if err == nil {
		return true
	}
	var closeErr *websocket.CloseError
	if errors.As(err, &closeErr) {
		return closeErr.Code == websocket.CloseNormalClosure || closeErr.Code == websocket.CloseGoingAway
	}
	return false
}
