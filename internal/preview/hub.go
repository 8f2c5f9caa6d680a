package preview

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-wordclock/internal/strip"
)

// Hub streams every flushed strip frame to connected WebSocket clients.
type Hub struct {
	mu        sync.Mutex
	face      string
	rows      int
	cols      int
	frameID   uint64
	startTime time.Time
	clients   map[*websocket.Conn]bool
}

var _ strip.Sink = (*Hub)(nil)

type topology struct {
	Face string `json:"face"`
	Rows int    `json:"rows"`
	Cols int    `json:"cols"`
}

type frame struct {
	T        int64  `json:"t"`
	FrameID  uint64 `json:"frame_id"`
	Channels int    `json:"channels"`
	RGB      []byte `json:"rgb"`
}

func NewHub(face string, rows, cols int) *Hub {
	return &Hub{
		face:      face,
		rows:      rows,
		cols:      cols,
		startTime: time.Now(),
		clients:   map[*websocket.Conn]bool{},
	}
}

// Routes returns the preview endpoints.
func (h *Hub) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.HandleFrames)
	mux.HandleFunc("/health", h.HandleHealth)
	return mux
}

func (h *Hub) HandleFrames(w http.ResponseWriter, r *http.Request) {
	up := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := up.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	h.mu.Lock()
	h.clients[conn] = true
	b, _ := json.Marshal(topology{Face: h.face, Rows: h.rows, Cols: h.cols})
	conn.SetWriteDeadline(time.Now().Add(200 * time.Millisecond))
	_ = conn.WriteMessage(websocket.TextMessage, b)
	h.mu.Unlock()

	go func() {
		defer func() {
			h.mu.Lock()
			delete(h.clients, conn)
			h.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *Hub) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	resp := map[string]any{
		"frame_id": h.frameID,
		"uptime_s": time.Since(h.startTime).Seconds(),
		"face":     h.face,
		"clients":  len(h.clients),
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// Send broadcasts f. Slow or dead clients are skipped, never fatal.
func (h *Hub) Send(f strip.Frame) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.frameID++
	b, err := json.Marshal(frame{T: time.Now().UnixNano(), FrameID: h.frameID, Channels: f.Channels, RGB: f.Data})
	if err != nil {
		return err
	}
	for c := range h.clients {
		c.SetWriteDeadline(time.Now().Add(200 * time.Millisecond))
		if err := c.WriteMessage(websocket.TextMessage, b); err != nil {
			log.Debug().Err(err).Msg("write frame")
		}
	}
	return nil
}

func (h *Hub) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		c.Close()
		delete(h.clients, c)
	}
	return nil
}
