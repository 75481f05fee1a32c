// Package stream serves a World to remote viewers over websockets. Viewers
// send their key state as JSON and receive every frame as a binary PNG.
package stream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/smasonuk/raycast3d"
)

const (
	MessageTypeKeys = "keys"
	writeTimeout    = 2 * time.Second
)

// Message is what a viewer sends.
type Message struct {
	Type string          `json:"type"`
	Keys map[string]bool `json:"keys,omitempty"`
}

// client serialises writes to one connection.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) writeFrame(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	return c.conn.WriteMessage(websocket.BinaryMessage, data)
}

func (c *client) close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.Close()
}

type Server struct {
	world    *raycast3d.World
	upgrader websocket.Upgrader
	overlay  bool

	mu      sync.RWMutex
	clients map[*client]struct{}
	keys    raycast3d.KeyState
}

// NewServer streams world. withOverlay draws the wireframe into each frame.
func NewServer(world *raycast3d.World, withOverlay bool) *Server {
	return &Server{
		world: world,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		overlay: withOverlay,
		clients: make(map[*client]struct{}),
		keys:    make(raycast3d.KeyState),
	}
}

// HandleWS upgrades the request and reads key messages until the viewer
// goes away.
func (s *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Websocket upgrade error: %v", err)
		return
	}

	c := &client{conn: conn}
	s.mu.Lock()
	s.clients[c] = struct{}{}
	s.mu.Unlock()
	log.Printf("Viewer connected from %s", r.RemoteAddr)

	defer func() {
		s.remove(c)
		log.Printf("Viewer %s disconnected", r.RemoteAddr)
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Websocket read error: %v", err)
			}
			return
		}
		if err := s.handleMessage(data); err != nil {
			log.Printf("Bad message from %s: %v", r.RemoteAddr, err)
		}
	}
}

func (s *Server) handleMessage(data []byte) error {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return fmt.Errorf("decoding message: %w", err)
	}
	switch msg.Type {
	case MessageTypeKeys:
		keys := make(raycast3d.KeyState, len(msg.Keys))
		for name, down := range msg.Keys {
			keys[name] = down
		}
		s.mu.Lock()
		s.keys = keys
		s.mu.Unlock()
		return nil
	default:
		return fmt.Errorf("unknown message type %q", msg.Type)
	}
}

func (s *Server) remove(c *client) {
	s.mu.Lock()
	_, ok := s.clients[c]
	delete(s.clients, c)
	s.mu.Unlock()
	if ok {
		c.close()
	}
}

// Clients returns the number of connected viewers.
func (s *Server) Clients() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// Keys returns a copy of the key state that the next frame will use.
func (s *Server) Keys() raycast3d.KeyState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.keys.Clone()
}

// Tick renders one frame and sends it to every viewer. With no viewers it
// does nothing, and a tick that arrives while a frame is still rendering is
// dropped.
func (s *Server) Tick(ctx context.Context) error {
	s.mu.RLock()
	targets := make([]*client, 0, len(s.clients))
	for c := range s.clients {
		targets = append(targets, c)
	}
	keys := s.keys.Clone()
	s.mu.RUnlock()

	if len(targets) == 0 {
		return nil
	}

	res, ok, err := s.world.TryStep(ctx, keys)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	var buf bytes.Buffer
	if err := raycast3d.WritePNG(&buf, res, s.overlay); err != nil {
		return err
	}
	for _, c := range targets {
		if err := c.writeFrame(buf.Bytes()); err != nil {
			log.Printf("Dropping viewer: %v", err)
			s.remove(c)
		}
	}
	return nil
}

// Run ticks at the camera's frame rate until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	fps := s.world.Camera().FPS
	ticker := time.NewTicker(time.Duration(float64(time.Second) / fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			// Tick blocks; run it aside so a slow frame drops ticks
			// instead of queueing them.
			go func() {
				if err := s.Tick(ctx); err != nil && ctx.Err() == nil {
					log.Printf("Frame error: %v", err)
				}
			}()
		}
	}
}
