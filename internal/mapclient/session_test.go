package mapclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	websocketdto "delivery-track/internal/dashboard-service/core/domain/websocket_dto"
)

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func TestSessionReceivesDriverLocationEvents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "token-1", r.URL.Query().Get("token"))

		conn, err := testUpgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()

		event, _ := websocketdto.NewLocationEvent(websocketdto.EventDriverLocationUpdated, websocketdto.LocationUpdate{
			DriverID: "d1", Lat: 43.2, Lng: 76.9,
		})
		require.NoError(t, conn.WriteJSON(event))

		// Hold the connection open until the client goes away.
		conn.ReadMessage()
	}))
	defer server.Close()

	session := NewSession("ws"+strings.TrimPrefix(server.URL, "http"), "token-1")
	received := make(chan websocketdto.LocationUpdate, 1)
	session.OnDriverLocation(func(update websocketdto.LocationUpdate) {
		received <- update
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go session.Run(ctx)

	select {
	case update := <-received:
		assert.Equal(t, "d1", update.DriverID)
		assert.Equal(t, 43.2, update.Lat)
		assert.Equal(t, 76.9, update.Lng)
	case <-time.After(2 * time.Second):
		t.Fatal("no event received")
	}
}

func TestSessionReconnectsAfterDrop(t *testing.T) {
	var connects atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		require.NoError(t, err)

		// First connection drops immediately; the second stays up and
		// delivers an event.
		if connects.Add(1) == 1 {
			conn.Close()
			return
		}
		defer conn.Close()

		event, _ := websocketdto.NewLocationEvent(websocketdto.EventDriverLocationUpdated, websocketdto.LocationUpdate{
			DriverID: "d2", Lat: 1, Lng: 2,
		})
		conn.WriteJSON(event)
		conn.ReadMessage()
	}))
	defer server.Close()

	session := NewSession("ws"+strings.TrimPrefix(server.URL, "http"), "token-1")
	received := make(chan websocketdto.LocationUpdate, 1)
	session.OnDriverLocation(func(update websocketdto.LocationUpdate) {
		received <- update
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go session.Run(ctx)

	select {
	case update := <-received:
		assert.Equal(t, "d2", update.DriverID)
		assert.GreaterOrEqual(t, connects.Load(), int32(2))
	case <-time.After(5 * time.Second):
		t.Fatal("no event after reconnect")
	}
}

func TestPublishLocationWithoutConnection(t *testing.T) {
	session := NewSession("ws://127.0.0.1:0", "token")
	err := session.PublishLocation(websocketdto.LocationUpdate{DriverID: "d1"})
	assert.Error(t, err)
}

func TestCloseStopsRunForGood(t *testing.T) {
	var connects atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()

		connects.Add(1)
		event, _ := websocketdto.NewLocationEvent(websocketdto.EventDriverLocationUpdated, websocketdto.LocationUpdate{
			DriverID: "d1", Lat: 1, Lng: 2,
		})
		conn.WriteJSON(event)
		conn.ReadMessage()
	}))
	defer server.Close()

	session := NewSession("ws"+strings.TrimPrefix(server.URL, "http"), "token-1")
	connected := make(chan struct{}, 1)
	session.OnDriverLocation(func(websocketdto.LocationUpdate) {
		select {
		case connected <- struct{}{}:
		default:
		}
	})

	done := make(chan error, 1)
	go func() {
		done <- session.Run(context.Background())
	}()

	select {
	case <-connected:
	case <-time.After(2 * time.Second):
		t.Fatal("session never connected")
	}

	require.NoError(t, session.Close())

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrSessionClosed)
	case <-time.After(2 * time.Second):
		t.Fatal("Run kept going after Close")
	}

	assert.Equal(t, int32(1), connects.Load(), "no redial after Close")
	assert.Error(t, session.PublishLocation(websocketdto.LocationUpdate{DriverID: "d1"}))
}

func TestCloseBeforeRun(t *testing.T) {
	session := NewSession("ws://127.0.0.1:0", "token")
	require.NoError(t, session.Close())

	err := session.Run(context.Background())
	assert.ErrorIs(t, err, ErrSessionClosed)
}
