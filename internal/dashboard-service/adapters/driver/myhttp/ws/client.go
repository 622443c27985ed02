package ws

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"

	websocketdto "delivery-track/internal/dashboard-service/core/domain/websocket_dto"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	egressBuffer   = 32
)

// Session is one connected dashboard websocket. Reads run on the handler
// goroutine, writes on a dedicated goroutine fed by the egress channel so a
// broadcast never touches the connection from two goroutines at once.
type Session struct {
	id         string
	userID     string
	conn       *websocket.Conn
	dispatcher *Dispatcher
	egress     chan []byte
}

func NewSession(id, userID string, conn *websocket.Conn, dispatcher *Dispatcher) *Session {
	return &Session{
		id:         id,
		userID:     userID,
		conn:       conn,
		dispatcher: dispatcher,
		egress:     make(chan []byte, egressBuffer),
	}
}

// ReadLoop consumes inbound frames until the peer disconnects. The only
// inbound event is updateLocation; anything else is ignored.
func (s *Session) ReadLoop() {
	defer s.conn.Close()

	s.conn.SetReadLimit(maxMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	log := s.dispatcher.log.Action("ws_read")

	for {
		_, payload, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("session closed unexpectedly", "session_id", s.id, "err", err.Error())
			}
			return
		}

		var event websocketdto.Event
		if err := json.Unmarshal(payload, &event); err != nil {
			log.Warn("cannot decode inbound frame", "session_id", s.id, "err", err.Error())
			continue
		}
		if event.Type != websocketdto.EventUpdateLocation {
			continue
		}

		var update websocketdto.LocationUpdate
		if err := json.Unmarshal(event.Data, &update); err != nil {
			log.Warn("cannot decode location update", "session_id", s.id, "err", err.Error())
			continue
		}

		s.dispatcher.Publish(context.Background(), update)
	}
}

// WriteLoop drains the egress channel onto the wire and keeps the
// connection alive with pings. Exits when the channel is closed by
// unregister or a write fails.
func (s *Session) WriteLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-s.egress:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
