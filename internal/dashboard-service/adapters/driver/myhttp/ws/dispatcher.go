package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	websocketdto "delivery-track/internal/dashboard-service/core/domain/websocket_dto"
	"delivery-track/internal/dashboard-service/core/ports"
	"delivery-track/internal/mylogger"
)

var websocketUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// TokenValidator is the slice of the auth service the relay needs.
type TokenValidator interface {
	ValidateToken(token string) (string, error)
}

// Dispatcher is the live relay: a registry of connected dashboard sessions
// keyed by session id, with add-on-connect/remove-on-disconnect lifecycle.
// Publish fans an event out to every session including the sender; the relay
// buffers nothing across connections, so a session that joins after an event
// never sees it.
type Dispatcher struct {
	sessions map[string]*Session
	mu       sync.RWMutex
	auth     TokenValidator
	bridge   ports.IRelayBridge
	log      mylogger.Logger
}

func NewDispatcher(auth TokenValidator, log mylogger.Logger) *Dispatcher {
	return &Dispatcher{
		sessions: make(map[string]*Session),
		auth:     auth,
		log:      log,
	}
}

// SetBridge attaches an optional cross-instance mirror. Must be called
// before the server starts accepting connections.
func (d *Dispatcher) SetBridge(bridge ports.IRelayBridge) {
	d.bridge = bridge
}

func (d *Dispatcher) WsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := d.log.Action("ws_connect")

		token := r.URL.Query().Get("token")
		if token == "" {
			token = bearerToken(r)
		}
		if token == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		userID, err := d.auth.ValidateToken(token)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		conn, err := websocketUpgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Error("cannot upgrade", err)
			return
		}

		session := NewSession(uuid.NewString(), userID, conn, d)
		d.register(session)
		defer d.unregister(session)

		go session.WriteLoop()
		session.ReadLoop()
	}
}

// Publish broadcasts a driver location event to every connected session,
// sender included, and mirrors it to peer instances when a bridge is
// attached. No validation of the driver id or coordinate bounds; failures
// are dropped.
func (d *Dispatcher) Publish(ctx context.Context, update websocketdto.LocationUpdate) {
	d.BroadcastLocal(update)

	if d.bridge != nil {
		if err := d.bridge.Forward(ctx, update); err != nil {
			d.log.Action("relay_bridge").Warn("failed to mirror location event", "err", err.Error())
		}
	}
}

// BroadcastLocal fans an event out to the sessions connected to this
// process only. A session whose egress buffer is full has the frame
// dropped; the relay never blocks on a slow consumer.
func (d *Dispatcher) BroadcastLocal(update websocketdto.LocationUpdate) {
	event, err := websocketdto.NewLocationEvent(websocketdto.EventDriverLocationUpdated, update)
	if err != nil {
		d.log.Action("relay_broadcast").Error("cannot encode location event", err)
		return
	}
	frame, err := json.Marshal(event)
	if err != nil {
		d.log.Action("relay_broadcast").Error("cannot encode relay frame", err)
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, session := range d.sessions {
		select {
		case session.egress <- frame:
		default:
			d.log.Action("relay_broadcast").Warn("session egress full, dropping frame", "session_id", session.id)
		}
	}
}

// SessionCount reports the number of connected sessions.
func (d *Dispatcher) SessionCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.sessions)
}

func (d *Dispatcher) register(session *Session) {
	d.mu.Lock()
	d.sessions[session.id] = session
	total := len(d.sessions)
	d.mu.Unlock()

	d.log.Action("ws_session_registered").Info("dashboard session connected",
		"session_id", session.id, "user_id", session.userID, "total_sessions", total)
}

func (d *Dispatcher) unregister(session *Session) {
	d.mu.Lock()
	if _, exists := d.sessions[session.id]; exists {
		delete(d.sessions, session.id)
		close(session.egress)
	}
	total := len(d.sessions)
	d.mu.Unlock()

	d.log.Action("ws_session_unregistered").Info("dashboard session disconnected",
		"session_id", session.id, "total_sessions", total)
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if len(header) > 7 && header[:7] == "Bearer " {
		return header[7:]
	}
	return header
}
