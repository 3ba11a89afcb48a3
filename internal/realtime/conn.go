package realtime

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pingInterval   = 30 * time.Second
	pongWait       = 2 * pingInterval
	maxMessageSize = 64 * 1024
	sendBuffer     = 256
)

var ErrConnClosed = errors.New("connection closed")

// Emitter is the write side of a live connection. The registry hands Emitters
// to the notification dispatcher so it never touches transport details.
type Emitter interface {
	Emit(event EventType, payload interface{}) error
}

// socket is the subset of *websocket.Conn the connection needs; tests swap in
// an in-memory fake.
type socket interface {
	ReadMessage() (int, []byte, error)
	WriteMessage(messageType int, data []byte) error
	WriteControl(messageType int, data []byte, deadline time.Time) error
	SetReadLimit(limit int64)
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
	SetPongHandler(h func(string) error)
	Close() error
}

type outboundEnvelope struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Conn owns a websocket and serializes all writes through a single pump
// goroutine, as gorilla/websocket permits only one concurrent writer.
type Conn struct {
	id   string
	sock socket
	send chan []byte

	closeOnce sync.Once
	done      chan struct{}
}

func NewConn(sock socket) *Conn {
	c := &Conn{
		id:   uuid.NewString(),
		sock: sock,
		send: make(chan []byte, sendBuffer),
		done: make(chan struct{}),
	}

	sock.SetReadLimit(maxMessageSize)
	sock.SetPongHandler(func(string) error {
		return sock.SetReadDeadline(time.Now().Add(pongWait))
	})

	go c.writePump()
	return c
}

func (c *Conn) ID() string {
	return c.id
}

// Emit queues an event for delivery. A full send buffer drops the event
// instead of blocking the caller: realtime delivery is at-most-once and the
// push channel covers the gap.
func (c *Conn) Emit(event EventType, payload interface{}) error {
	msg, err := json.Marshal(outboundEnvelope{Event: event.String(), Data: payload})
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event, err)
	}

	select {
	case <-c.done:
		return ErrConnClosed
	default:
	}

	select {
	case c.send <- msg:
		EventsEmitted.WithLabelValues(event.String()).Inc()
		return nil
	default:
		return fmt.Errorf("emit %s: send buffer full", event)
	}
}

// ReadMessage blocks on the next inbound frame, refreshing the read deadline.
func (c *Conn) ReadMessage() ([]byte, error) {
	if err := c.sock.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return nil, err
	}
	_, raw, err := c.sock.ReadMessage()
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Conn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.done)
		err = c.sock.Close()
	})
	return err
}

func (c *Conn) writePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		_ = c.Close()
	}()

	for {
		select {
		case <-c.done:
			return
		case msg := <-c.send:
			if err := c.sock.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.sock.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.sock.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
