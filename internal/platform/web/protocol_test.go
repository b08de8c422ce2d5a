package web

import (
	"errors"
	"testing"

	"github.com/vovakirdan/platformer/internal/config"
	"github.com/vovakirdan/platformer/internal/core"
)

func TestDecodeKey(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    core.KeyEvent
		wantErr bool
	}{
		{"right down", `{"type":"key","kind":"down","action":"right"}`, core.Down(core.ActionMoveRight), false},
		{"left up", `{"type":"key","kind":"up","action":"left"}`, core.Up(core.ActionMoveLeft), false},
		{"jump", `{"type":"key","kind":"down","action":"jump"}`, core.Down(core.ActionJump), false},
		{"pause", `{"type":"key","kind":"down","action":"pause"}`, core.Down(core.ActionPause), false},
		{"quit refused", `{"type":"key","kind":"down","action":"quit"}`, core.KeyEvent{}, true},
		{"unknown action", `{"type":"key","kind":"down","action":"fly"}`, core.KeyEvent{}, true},
		{"unknown kind", `{"type":"key","kind":"hold","action":"left"}`, core.KeyEvent{}, true},
		{"wrong type", `{"type":"frame"}`, core.KeyEvent{}, true},
		{"not json", `left`, core.KeyEvent{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeKey([]byte(tt.data))
			if tt.wantErr {
				if !errors.Is(err, ErrBadMessage) {
					t.Fatalf("expected ErrBadMessage, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("decodeKey = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFrameSurfaceRecordsCalls(t *testing.T) {
	var s frameSurface
	asset := config.Asset{Name: config.AssetRunRight, Width: 10230, Height: 400}
	s.DrawImage(asset, core.NewRect(341, 0, 341, 400), core.NewRect(100, 300, 127.875, 150))

	if len(s.draws) != 1 {
		t.Fatalf("expected 1 draw, got %d", len(s.draws))
	}
	d := s.draws[0]
	if d.Asset != config.AssetRunRight {
		t.Errorf("asset = %q", d.Asset)
	}
	if d.Src != [4]float64{341, 0, 341, 400} {
		t.Errorf("src = %v", d.Src)
	}
	if d.Dst != [4]float64{100, 300, 127.875, 150} {
		t.Errorf("dst = %v", d.Dst)
	}
}

func TestNewHello(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	cfg.Assets = append(cfg.Assets, config.Asset{Name: "extra", Width: 1, Height: 1})

	hello := newHello("abc", "Platformer", cfg)
	if hello.Type != TypeHello || hello.Session != "abc" {
		t.Errorf("unexpected header %+v", hello)
	}
	if hello.Width != cfg.Viewport.Width || hello.Height != cfg.Viewport.Height {
		t.Errorf("viewport = %vx%v", hello.Width, hello.Height)
	}
	if len(hello.Assets) != len(cfg.Assets) {
		t.Fatalf("expected %d assets, got %d", len(cfg.Assets), len(hello.Assets))
	}
	for i, a := range hello.Assets {
		src := cfg.Assets[i]
		if src.Path == "" && a.URL != "" {
			t.Errorf("%s has no path but URL %q", a.Name, a.URL)
		}
		if src.Path != "" && a.URL != "/assets/"+src.Path {
			t.Errorf("%s URL = %q", a.Name, a.URL)
		}
	}
}
