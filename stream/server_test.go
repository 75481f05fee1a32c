package stream

import (
	"bytes"
	"context"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/smasonuk/raycast3d"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	scene, cfg := raycast3d.DemoScene()
	cfg.Scale = 10
	world, err := raycast3d.NewWorld(scene, cfg, raycast3d.NewRenderer(2))
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	srv := NewServer(world, true)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return srv, ts
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Failed to connect to WebSocket server: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestTickSendsPNGFrame(t *testing.T) {
	srv, ts := newTestServer(t)
	conn := dial(t, ts)
	waitFor(t, "viewer to register", func() bool { return srv.Clients() == 1 })

	if err := srv.Tick(context.Background()); err != nil {
		t.Fatalf("Tick: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	kind, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("Error reading message: %v", err)
	}
	if kind != websocket.BinaryMessage {
		t.Errorf("message type %d, want binary", kind)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("frame is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 18 {
		t.Errorf("frame is %v, want 32x18", b)
	}
}

func TestKeysMessageMovesCamera(t *testing.T) {
	srv, ts := newTestServer(t)
	conn := dial(t, ts)
	waitFor(t, "viewer to register", func() bool { return srv.Clients() == 1 })

	msg := Message{Type: MessageTypeKeys, Keys: map[string]bool{raycast3d.KeyForward: true}}
	if err := conn.WriteJSON(msg); err != nil {
		t.Fatalf("Error writing message: %v", err)
	}
	waitFor(t, "keys to arrive", func() bool { return srv.Keys().Pressed(raycast3d.KeyForward) })

	before := srv.world.Camera().Pos
	if err := srv.Tick(context.Background()); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	after := srv.world.Camera().Pos
	if after.Y <= before.Y {
		t.Errorf("camera did not move forward: %v -> %v", before, after)
	}
}

func TestHandleMessageRejectsUnknownType(t *testing.T) {
	srv := NewServer(nil, false)
	if err := srv.handleMessage([]byte(`{"type":"jump"}`)); err == nil {
		t.Error("unknown message type accepted")
	}
	if err := srv.handleMessage([]byte(`{`)); err == nil {
		t.Error("broken JSON accepted")
	}
	if err := srv.handleMessage([]byte(`{"type":"keys","keys":{"a":true}}`)); err != nil {
		t.Errorf("keys message: %v", err)
	}
	if !srv.Keys().Pressed(raycast3d.KeyLeft) {
		t.Error("keys message not applied")
	}
}

func TestTickWithoutViewersSkipsRendering(t *testing.T) {
	srv, _ := newTestServer(t)
	before := srv.world.Camera()
	srv.keys = raycast3d.KeyState{raycast3d.KeyForward: true}
	if err := srv.Tick(context.Background()); err != nil {
		t.Fatal(err)
	}
	if srv.world.Camera() != before {
		t.Error("world stepped with nobody watching")
	}
}

func TestViewerDisconnects(t *testing.T) {
	srv, ts := newTestServer(t)
	conn := dial(t, ts)
	waitFor(t, "viewer to register", func() bool { return srv.Clients() == 1 })

	conn.Close()
	waitFor(t, "viewer to be removed", func() bool { return srv.Clients() == 0 })
}

func TestViewerPage(t *testing.T) {
	_, ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type %q", ct)
	}

	resp, err = http.Get(ts.URL + "/nope")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown path status %d", resp.StatusCode)
	}
}
