package gui

import (
	"image"
	"io"
	"math"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/platformer/internal/config"
	"github.com/vovakirdan/platformer/internal/core"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBlitTransform(t *testing.T) {
	tests := []struct {
		name     string
		src, dst core.Rect
		// corners of src (in sub-image space) and where they should land
		inX, inY, wantX, wantY float64
	}{
		{"identity", core.NewRect(0, 0, 10, 10), core.NewRect(0, 0, 10, 10), 10, 10, 10, 10},
		{"translate", core.NewRect(0, 0, 10, 10), core.NewRect(5, -2, 10, 10), 0, 0, 5, -2},
		{"stand frame", core.NewRect(354, 0, 177, 400), core.NewRect(100, 300, 66, 150), 177, 400, 166, 450},
		{"run frame", core.NewRect(0, 0, 341, 400), core.NewRect(0, 0, 127.875, 150), 341, 400, 127.875, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := blitTransform(tt.src, tt.dst)
			x, y := m.Apply(tt.inX, tt.inY)
			if !near(x, tt.wantX) || !near(y, tt.wantY) {
				t.Errorf("Apply(%v, %v) = (%v, %v), want (%v, %v)", tt.inX, tt.inY, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestBlitTransformEmptySource(t *testing.T) {
	m := blitTransform(core.Rect{}, core.NewRect(3, 4, 10, 10))
	x, y := m.Apply(0, 0)
	if x != 3 || y != 4 {
		t.Errorf("empty source should only translate, got (%v, %v)", x, y)
	}
}

func TestPlaceholderTransform(t *testing.T) {
	m := placeholderTransform(core.NewRect(-1, 459, 578, 125))
	x, y := m.Apply(1, 1)
	if x != 577 || y != 584 {
		t.Errorf("pixel corner = (%v, %v), want (577, 584)", x, y)
	}
}

func TestSourceBounds(t *testing.T) {
	got := sourceBounds(core.NewRect(177, 0, 177, 400))
	want := image.Rect(177, 0, 354, 400)
	if got != want {
		t.Errorf("sourceBounds = %v, want %v", got, want)
	}
}

func TestKeyEdges(t *testing.T) {
	keySet := func(keys ...ebiten.Key) func(ebiten.Key) bool {
		set := make(map[ebiten.Key]bool)
		for _, k := range keys {
			set[k] = true
		}
		return func(k ebiten.Key) bool { return set[k] }
	}

	tests := []struct {
		name     string
		pressed  []ebiten.Key
		released []ebiten.Key
		want     []core.KeyEvent
	}{
		{"nothing", nil, nil, nil},
		{"press right", []ebiten.Key{ebiten.KeyD}, nil, []core.KeyEvent{core.Down(core.ActionMoveRight)}},
		{"release left arrow", nil, []ebiten.Key{ebiten.KeyArrowLeft}, []core.KeyEvent{core.Up(core.ActionMoveLeft)}},
		{"space jumps", []ebiten.Key{ebiten.KeySpace}, nil, []core.KeyEvent{core.Down(core.ActionJump)}},
		{"jump release ignored", nil, []ebiten.Key{ebiten.KeyW}, nil},
		{"pause and restart", []ebiten.Key{ebiten.KeyP, ebiten.KeyR}, nil, []core.KeyEvent{core.Down(core.ActionPause), core.Down(core.ActionRestart)}},
		{
			"switch direction",
			[]ebiten.Key{ebiten.KeyA},
			[]ebiten.Key{ebiten.KeyD},
			[]core.KeyEvent{core.Down(core.ActionMoveLeft), core.Up(core.ActionMoveRight)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := keyEdges(keySet(tt.pressed...), keySet(tt.released...))
			if len(frame.Events) != len(tt.want) {
				t.Fatalf("got %v, want %v", frame.Events, tt.want)
			}
			for i := range tt.want {
				if frame.Events[i] != tt.want[i] {
					t.Errorf("event %d = %v, want %v", i, frame.Events[i], tt.want[i])
				}
			}
		})
	}
}

func TestStatusLine(t *testing.T) {
	line := statusLine(core.GameState{Progress: 0.5, Falls: 2})
	if !strings.Contains(line, " 50%") || !strings.Contains(line, "falls 2") {
		t.Errorf("unexpected status line %q", line)
	}
	if strings.Contains(line, "WIN") || strings.Contains(line, "PAUSED") {
		t.Errorf("status line %q should not carry banners", line)
	}

	line = statusLine(core.GameState{Progress: 1, Won: true, Paused: true})
	if !strings.Contains(line, "YOU WIN!") || !strings.Contains(line, "PAUSED") {
		t.Errorf("status line %q misses banners", line)
	}
}

func TestPlaceholderColorsDiffer(t *testing.T) {
	seen := make(map[[4]uint8]string)
	for _, name := range []string{config.AssetBackground, config.AssetHills, config.AssetPlatform, config.AssetStandRight, "mystery"} {
		c := placeholderColor(name)
		key := [4]uint8{c.R, c.G, c.B, c.A}
		if other, ok := seen[key]; ok {
			t.Errorf("%s and %s share placeholder colour %v", name, other, c)
		}
		seen[key] = name
	}
	if placeholderColor(config.AssetPlatform) != placeholderColor(config.AssetPlatformSmallTall) {
		t.Error("platform variants should share a placeholder colour")
	}
}

func TestResourcesFallBackOnMissingAssets(t *testing.T) {
	files := fstest.MapFS{
		"img/garbage.png": &fstest.MapFile{Data: []byte("not an image")},
	}
	res := NewResources(files, log.New(io.Discard))

	assets := []config.Asset{
		{Name: "missing", Path: "img/missing.png", Width: 10, Height: 10},
		{Name: "garbage", Path: "img/garbage.png", Width: 10, Height: 10},
		{Name: "pathless", Width: 10, Height: 10},
	}
	if got := res.Preload(assets); got != 3 {
		t.Errorf("Preload missing = %d, want 3", got)
	}
	for _, a := range assets {
		if !res.failed[a.Name] {
			t.Errorf("%s should be remembered as failed", a.Name)
		}
		if res.Image(a) != nil {
			t.Errorf("%s should keep drawing a placeholder", a.Name)
		}
	}
}

func TestResourcesLoadErrors(t *testing.T) {
	res := NewResources(fstest.MapFS{}, log.New(io.Discard))
	_, err := res.load(config.Asset{Name: "x", Path: "nope.png"})
	if err == nil || !strings.Contains(err.Error(), "nope.png") {
		t.Errorf("load error %v should name the path", err)
	}
}
