package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vovakirdan/platformer/internal/config"
)

func newTestServer(t *testing.T) (*httptest.Server, config.PlatformerConfig) {
	t.Helper()
	cfg := config.DefaultPlatformerConfig()
	srv := NewServer(ServerConfig{
		Assets: fstest.MapFS{
			"img/platform.png": &fstest.MapFile{Data: []byte("png bytes")},
		},
	}, cfg, nil)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, cfg
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(body)
}

func TestServerRoutes(t *testing.T) {
	ts, _ := newTestServer(t)

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{"/", http.StatusOK, "<canvas"},
		{"/healthz", http.StatusOK, "ok"},
		{"/assets/img/platform.png", http.StatusOK, "png bytes"},
		{"/assets/img/missing.png", http.StatusNotFound, ""},
		{"/nope", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			status, body := get(t, ts.URL+tt.path)
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			if !strings.Contains(body, tt.wantBody) {
				t.Errorf("body %q does not contain %q", body, tt.wantBody)
			}
		})
	}
}

// envelope peeks at the message type.
type envelope struct {
	Type string `json:"type"`
}

func readMessage(t *testing.T, conn *websocket.Conn) (string, []byte) {
	t.Helper()
	if err := conn.SetReadDeadline(time.Now().Add(5 * time.Second)); err != nil {
		t.Fatalf("set deadline: %v", err)
	}
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		t.Fatalf("bad message %s: %v", data, err)
	}
	return env.Type, data
}

func readFrame(t *testing.T, conn *websocket.Conn) FrameMessage {
	t.Helper()
	for {
		typ, data := readMessage(t, conn)
		if typ != TypeFrame {
			continue
		}
		var f FrameMessage
		if err := json.Unmarshal(data, &f); err != nil {
			t.Fatalf("decode frame: %v", err)
		}
		return f
	}
}

func TestSocketRoundTrip(t *testing.T) {
	ts, cfg := newTestServer(t)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	typ, data := readMessage(t, conn)
	if typ != TypeHello {
		t.Fatalf("first message is %q, want hello", typ)
	}
	var hello HelloMessage
	if err := json.Unmarshal(data, &hello); err != nil {
		t.Fatalf("decode hello: %v", err)
	}
	if hello.Session == "" {
		t.Error("hello carries no session id")
	}
	if len(hello.Assets) != len(cfg.Assets) {
		t.Errorf("hello lists %d assets, want %d", len(hello.Assets), len(cfg.Assets))
	}

	first := readFrame(t, conn)
	wantDraws := len(cfg.Level.Backgrounds) + len(cfg.Level.Platforms) + 1
	if len(first.Draws) != wantDraws {
		t.Errorf("frame has %d draws, want %d", len(first.Draws), wantDraws)
	}
	actor := first.Draws[len(first.Draws)-1]
	if actor.Asset != config.AssetStandRight {
		t.Errorf("actor drawn with %q, want %q", actor.Asset, config.AssetStandRight)
	}

	// garbage is dropped without closing the session
	if err := conn.WriteMessage(websocket.TextMessage, []byte("garbage")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := conn.WriteJSON(KeyMessage{Type: TypeKey, Kind: "down", Action: "pause"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		f := readFrame(t, conn)
		if f.Tick < first.Tick {
			t.Fatalf("tick went backwards: %d after %d", f.Tick, first.Tick)
		}
		if f.Paused {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("pause never reached the game")
		}
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	ts, _ := newTestServer(t)
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"

	sessions := make(map[string]bool)
	for i := 0; i < 2; i++ {
		conn, _, err := websocket.DefaultDialer.Dial(url, nil)
		if err != nil {
			t.Fatalf("dial: %v", err)
		}
		_, data := readMessage(t, conn)
		var hello HelloMessage
		if err := json.Unmarshal(data, &hello); err != nil {
			t.Fatalf("decode hello: %v", err)
		}
		sessions[hello.Session] = true
		conn.Close()
	}
	if len(sessions) != 2 {
		t.Errorf("expected 2 distinct session ids, got %v", sessions)
	}
}
