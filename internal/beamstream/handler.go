package beamstream

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
	log      *slog.Logger
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		log: hub.log,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	id := h.hub.Subscribe(conn)

	// Clients only listen; reading drives close and ping handling.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.hub.Unsubscribe(id)
			return
		}
	}
}

// NewMux serves the stream at /beams and a liveness probe at /healthz.
func NewMux(hub *Hub) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/beams", NewHandler(hub))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "ok %d\n", hub.Count())
	})
	return mux
}

// Serve listens on addr until ctx is done.
func Serve(ctx context.Context, addr string, hub *Hub) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("beamstream listen: %w", err)
	}
	srv := &http.Server{
		Handler:           NewMux(hub),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	hub.log.Info("beam stream listening", "addr", ln.Addr().String())
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("beamstream serve: %w", err)
	}
	return nil
}
