package ws_get

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"delivery/internal/realtime"
	"delivery/pkg/logger"
)

type Handler struct {
	log        handlerLogger
	registry   *realtime.Registry
	verifier   realtime.TokenVerifier
	authWindow time.Duration
	upgrader   websocket.Upgrader
}

func New(log handlerLogger, registry *realtime.Registry, verifier realtime.TokenVerifier, authWindow time.Duration) *Handler {
	return &Handler{
		log:        log.With(),
		registry:   registry,
		verifier:   verifier,
		authWindow: authWindow,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// browser clients connect from any origin, auth happens in-band
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sock, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Warn("websocket upgrade")
		return
	}

	conn := realtime.NewConn(sock)
	session := realtime.NewSession(conn, h.registry, h.verifier, h.log, h.authWindow)

	// Run blocks until the peer goes away, the server's read loop is this
	// request's goroutine.
	session.Run()
}
