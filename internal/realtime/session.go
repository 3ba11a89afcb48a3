package realtime

import (
	"sync"
	"time"

	"delivery/pkg/logger"
)

type sessionState int

const (
	stateConnected sessionState = iota
	stateAuthenticated
	stateClosed
)

// Session drives one connection through the protocol:
// CONNECTED -> AUTHENTICATED -> CLOSED. A connection that fails to present a
// valid credential inside the auth window is told so and dropped.
type Session struct {
	conn     *Conn
	registry *Registry
	verifier TokenVerifier
	log      sessionLogger

	authWindow time.Duration

	mu    sync.Mutex
	state sessionState
}

func NewSession(conn *Conn, registry *Registry, verifier TokenVerifier, log sessionLogger, authWindow time.Duration) *Session {
	return &Session{
		conn:       conn,
		registry:   registry,
		verifier:   verifier,
		log:        log.With(logger.NewField("client", conn.ID())),
		authWindow: authWindow,
		state:      stateConnected,
	}
}

// Run serves the session until the transport closes. It blocks; the websocket
// handler calls it on the connection's goroutine.
func (s *Session) Run() {
	_ = s.conn.Emit(EventWelcome, WelcomePayload{
		Message:   "Connected! Send auth message to authenticate.",
		ClientID:  s.conn.ID(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})

	timer := time.AfterFunc(s.authWindow, s.authTimeout)
	defer timer.Stop()

	for {
		raw, err := s.conn.ReadMessage()
		if err != nil {
			s.close()
			return
		}
		s.handle(DecodeMessage(raw))
	}
}

func (s *Session) handle(msg Message) {
	switch msg.Kind {
	case MessageAuth:
		s.handleAuth(msg.Token)
	case MessageEcho:
		_ = s.conn.Emit(EventEchoResponse, EchoResponsePayload{
			Received:  msg.Data,
			Status:    "success",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	default:
		s.log.Debug("unrecognized realtime event",
			logger.NewField("event", msg.Event),
		)
	}
}

func (s *Session) handleAuth(token string) {
	if token == "" {
		_ = s.conn.Emit(EventAuthResult, AuthResultPayload{Success: false, Error: "no token"})
		return
	}

	identity, err := s.verifier.Verify(token)
	if err != nil {
		s.log.Warn("realtime auth failed", logger.NewField("error", err))
		_ = s.conn.Emit(EventAuthResult, AuthResultPayload{Success: false, Error: err.Error()})
		return
	}

	s.mu.Lock()
	if s.state != stateConnected {
		s.mu.Unlock()
		return
	}
	s.state = stateAuthenticated
	s.mu.Unlock()

	s.registry.Register(identity.UserID, identity.Role, s.conn)

	_ = s.conn.Emit(EventAuthResult, AuthResultPayload{
		Success: true,
		User:    &AuthResultUser{ID: identity.UserID, Role: identity.Role.String()},
		Message: "Authentication successful",
	})

	s.log.Info("realtime session authenticated",
		logger.NewField("party", identity.UserID),
		logger.NewField("role", identity.Role.String()),
	)
}

// authTimeout fires on the timer goroutine once the auth window elapses.
func (s *Session) authTimeout() {
	s.mu.Lock()
	if s.state != stateConnected {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	s.log.Info("realtime auth window expired, dropping connection")
	_ = s.conn.Emit(EventTimeout, TimeoutPayload{Message: "Authentication timeout"})

	// Give the write pump a moment to flush the timeout event before the
	// transport goes away.
	time.Sleep(100 * time.Millisecond)
	_ = s.conn.Close()
}

// close runs exactly once when the transport drops, from any state.
func (s *Session) close() {
	s.mu.Lock()
	if s.state == stateClosed {
		s.mu.Unlock()
		return
	}
	s.state = stateClosed
	s.mu.Unlock()

	s.registry.Unregister(s.conn)
	_ = s.conn.Close()
	s.log.Debug("realtime session closed")
}
