package beamstream

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 2 * time.Second

type subscriberConn interface {
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

type subscriber struct {
	conn subscriberConn
	mu   sync.Mutex
}

func (s *subscriber) write(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteMessage(websocket.TextMessage, data)
}

// Hub fans frames out to every connected subscriber. New subscribers first
// receive the latest frame of each emitter.
type Hub struct {
	mu          sync.Mutex
	subscribers map[uint64]*subscriber
	nextID      uint64
	latest      map[string][]byte
	log         *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		subscribers: make(map[uint64]*subscriber),
		latest:      make(map[string][]byte),
		log:         logger.With("component", "beamstream"),
	}
}

// Subscribe registers conn and replays the latest frames to it. It returns
// the id to pass to Unsubscribe.
func (h *Hub) Subscribe(conn subscriberConn) uint64 {
	sub := &subscriber{conn: conn}

	h.mu.Lock()
	h.nextID++
	id := h.nextID
	h.subscribers[id] = sub
	replay := make([][]byte, 0, len(h.latest))
	for _, data := range h.latest {
		replay = append(replay, data)
	}
	h.mu.Unlock()

	h.log.Info("subscriber connected", "id", id)
	for _, data := range replay {
		if err := sub.write(data); err != nil {
			h.drop(id, err)
			break
		}
	}
	return id
}

func (h *Hub) Unsubscribe(id uint64) {
	h.mu.Lock()
	sub, ok := h.subscribers[id]
	delete(h.subscribers, id)
	h.mu.Unlock()
	if ok {
		sub.conn.Close()
		h.log.Info("subscriber disconnected", "id", id)
	}
}

func (h *Hub) drop(id uint64, err error) {
	h.log.Warn("dropping subscriber", "id", id, "error", err)
	h.Unsubscribe(id)
}

func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

// Broadcast sends f to every subscriber. Subscribers whose write fails are
// dropped; only a marshal failure is returned.
func (h *Hub) Broadcast(f Frame) error {
	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshal frame: %w", err)
	}

	h.mu.Lock()
	h.latest[f.Emitter] = data
	subs := make(map[uint64]*subscriber, len(h.subscribers))
	for id, sub := range h.subscribers {
		subs[id] = sub
	}
	h.mu.Unlock()

	for id, sub := range subs {
		if err := sub.write(data); err != nil {
			h.drop(id, err)
		}
	}
	return nil
}

// Reset forgets the replay frames, e.g. after a level reload.
func (h *Hub) Reset() {
	h.mu.Lock()
	clear(h.latest)
	h.mu.Unlock()
}
