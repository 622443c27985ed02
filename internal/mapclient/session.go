package mapclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	websocketdto "delivery-track/internal/dashboard-service/core/domain/websocket_dto"
)

const (
	initialBackoff = time.Second
	maxBackoff     = 30 * time.Second
)

// ErrSessionClosed reports that Close ended the session; Run returns it
// instead of redialing.
var ErrSessionClosed = errors.New("relay session closed")

// Session holds the map view's websocket connection to the live relay.
// On a read error it redials with capped exponential backoff; events that
// fire during the gap are simply missed, the next driver refetch catches up.
type Session struct {
	url     string
	token   string
	handler func(websocketdto.LocationUpdate)

	mu     sync.Mutex
	conn   *websocket.Conn
	closed bool
}

func NewSession(url, token string) *Session {
	return &Session{url: url, token: token}
}

// OnDriverLocation registers the handler invoked for every
// driverLocationUpdated event. Must be set before Run.
func (s *Session) OnDriverLocation(handler func(websocketdto.LocationUpdate)) {
	s.handler = handler
}

// Run dials the relay and consumes events until the context is cancelled
// or Close is called.
func (s *Session) Run(ctx context.Context) error {
	backoff := initialBackoff

	for {
		if s.isClosed() {
			return ErrSessionClosed
		}

		if err := s.dial(ctx); err != nil {
			if errors.Is(err, ErrSessionClosed) {
				return err
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
			backoff = nextBackoff(backoff)
			continue
		}
		backoff = initialBackoff

		if err := s.readLoop(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if s.isClosed() {
				return ErrSessionClosed
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
			backoff = nextBackoff(backoff)
		}
	}
}

// PublishLocation pushes an updateLocation event into the relay.
func (s *Session) PublishLocation(update websocketdto.LocationUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return fmt.Errorf("relay session not connected")
	}

	event, err := websocketdto.NewLocationEvent(websocketdto.EventUpdateLocation, update)
	if err != nil {
		return err
	}
	return s.conn.WriteJSON(event)
}

// Close tears down the connection and stops the reconnect loop for good.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if s.conn != nil {
		err := s.conn.Close()
		s.conn = nil
		return err
	}
	return nil
}

func (s *Session) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Session) dial(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, s.url+"?token="+s.token, nil)
	if err != nil {
		return fmt.Errorf("dial relay: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		conn.Close()
		return ErrSessionClosed
	}
	s.conn = conn
	return nil
}

// readLoop consumes from a snapshot of the connection so a concurrent
// Close never leaves it holding a nil conn; the Close itself surfaces
// here as a read error.
func (s *Session) readLoop(ctx context.Context) error {
	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()
	if conn == nil {
		return ErrSessionClosed
	}
	defer s.dropConn(conn)

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		_, payload, err := conn.ReadMessage()
		if err != nil {
			return err
		}

		var event websocketdto.Event
		if err := json.Unmarshal(payload, &event); err != nil {
			continue
		}
		if event.Type != websocketdto.EventDriverLocationUpdated || s.handler == nil {
			continue
		}

		var update websocketdto.LocationUpdate
		if err := json.Unmarshal(event.Data, &update); err != nil {
			continue
		}
		s.handler(update)
	}
}

// dropConn closes the given connection and clears it unless Close or a
// redial already replaced it.
func (s *Session) dropConn(conn *websocket.Conn) {
	conn.Close()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == conn {
		s.conn = nil
	}
}

func nextBackoff(current time.Duration) time.Duration {
	next := current * 2
	if next > maxBackoff {
		return maxBackoff
	}
	return next
}
