package web

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vovakirdan/platformer/internal/config"
	"github.com/vovakirdan/platformer/internal/core"
)

// Message types on the socket.
const (
	TypeHello = "hello"
	TypeFrame = "frame"
	TypeEvent = "event"
	TypeKey   = "key"
)

// ErrBadMessage is returned for client messages that cannot be decoded.
var ErrBadMessage = errors.New("web: bad message")

// HelloMessage is the first message a client receives.
type HelloMessage struct {
	Type     string         `json:"type"`
	Session  string         `json:"session"`
	Title    string         `json:"title"`
	Width    float64        `json:"width"`
	Height   float64        `json:"height"`
	Assets   []AssetMessage `json:"assets"`
	TickRate int            `json:"tick_rate"`
}

// AssetMessage tells the client where to fetch an image.
type AssetMessage struct {
	Name   string  `json:"name"`
	URL    string  `json:"url"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// FrameMessage carries one tick's draw list and HUD state.
type FrameMessage struct {
	Type     string     `json:"type"`
	Tick     int        `json:"tick"`
	Progress float64    `json:"progress"`
	Falls    int        `json:"falls"`
	Won      bool       `json:"won"`
	Paused   bool       `json:"paused"`
	Draws    []DrawCall `json:"draws"`
}

// DrawCall is a canvas drawImage call; rects are [x, y, w, h].
type DrawCall struct {
	Asset string     `json:"asset"`
	Src   [4]float64 `json:"src"`
	Dst   [4]float64 `json:"dst"`
}

// EventMessage announces a game event.
type EventMessage struct {
	Type  string `json:"type"`
	Event string `json:"event"`
	Tick  int    `json:"tick"`
}

// KeyMessage is sent by the client on key transitions.
type KeyMessage struct {
	Type   string `json:"type"`
	Kind   string `json:"kind"`
	Action string `json:"action"`
}

// frameSurface records draw calls as wire messages.
type frameSurface struct {
	draws []DrawCall
}

func (s *frameSurface) DrawImage(asset config.Asset, src, dst core.Rect) {
	s.draws = append(s.draws, DrawCall{
		Asset: asset.Name,
		Src:   rectArray(src),
		Dst:   rectArray(dst),
	})
}

func rectArray(r core.Rect) [4]float64 {
	return [4]float64{r.X, r.Y, r.W, r.H}
}

// newHello builds the greeting for a session.
func newHello(session, title string, cfg config.PlatformerConfig) HelloMessage {
	assets := make([]AssetMessage, 0, len(cfg.Assets))
	for _, a := range cfg.Assets {
		assets = append(assets, AssetMessage{
			Name:   a.Name,
			URL:    assetURL(a.Path),
			Width:  a.Width,
			Height: a.Height,
		})
	}
	return HelloMessage{
		Type:     TypeHello,
		Session:  session,
		Title:    title,
		Width:    cfg.Viewport.Width,
		Height:   cfg.Viewport.Height,
		Assets:   assets,
		TickRate: cfg.Input.TickRate,
	}
}

// assetURL maps an asset path to the route serving it.
// Assets without a path get no URL and are drawn as placeholders.
func assetURL(path string) string {
	if path == "" {
		return ""
	}
	return "/assets/" + path
}

// decodeKey parses a client key message.
func decodeKey(data []byte) (core.KeyEvent, error) {
	var msg KeyMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return core.KeyEvent{}, fmt.Errorf("%w: %v", ErrBadMessage, err)
	}
	if msg.Type != TypeKey {
		return core.KeyEvent{}, fmt.Errorf("%w: unexpected type %q", ErrBadMessage, msg.Type)
	}

	action, ok := core.ParseAction(msg.Action)
	if !ok || action == core.ActionQuit {
		return core.KeyEvent{}, fmt.Errorf("%w: unknown action %q", ErrBadMessage, msg.Action)
	}

	switch msg.Kind {
	case "down":
		return core.Down(action), nil
	case "up":
		return core.Up(action), nil
	default:
		return core.KeyEvent{}, fmt.Errorf("%w: unknown kind %q", ErrBadMessage, msg.Kind)
	}
}
