package mapclient

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"delivery-track/internal/dashboard-service/core/domain/model"
)

type stubClients struct {
	clients []model.Client
	err     error
}

func (s stubClients) ListClients(context.Context) ([]model.Client, error) {
	return s.clients, s.err
}

func TestArmPointCapturesLonFirst(t *testing.T) {
	ctrl := NewController(stubClients{})

	require.NoError(t, ctrl.ArmPoint(context.Background(), KindPlace))
	assert.Equal(t, ModePoint, ctrl.Mode())

	capture, err := ctrl.Click(43.238, 76.889)
	require.NoError(t, err)
	require.NotNil(t, capture)
	require.NotNil(t, capture.Point)

	assert.Equal(t, KindPlace, capture.Kind)
	assert.Equal(t, []float64{76.889, 43.238}, capture.Point.Coordinates)
	assert.Equal(t, ModeIdle, ctrl.Mode(), "capture returns to idle")
}

func TestArmDeliveryRequiresClients(t *testing.T) {
	ctrl := NewController(stubClients{})

	err := ctrl.ArmPoint(context.Background(), KindDelivery)
	assert.ErrorIs(t, err, ErrNoClients)
	assert.Equal(t, ModeIdle, ctrl.Mode())

	ctrl = NewController(stubClients{clients: []model.Client{{ID: "c1"}}})
	assert.NoError(t, ctrl.ArmPoint(context.Background(), KindDelivery))
	assert.Equal(t, ModePoint, ctrl.Mode())
}

func TestArmDeliveryPropagatesFetchError(t *testing.T) {
	boom := errors.New("api down")
	ctrl := NewController(stubClients{err: boom})

	err := ctrl.ArmPoint(context.Background(), KindDelivery)
	assert.ErrorIs(t, err, boom)
}

func TestArmingNewModeResetsPrevious(t *testing.T) {
	ctrl := NewController(stubClients{})

	ctrl.ArmPolygon()
	ctrl.Click(43.20, 76.90)
	ctrl.Click(43.21, 76.91)
	require.Equal(t, 2, ctrl.VertexCount())

	require.NoError(t, ctrl.ArmPoint(context.Background(), KindDriver))
	assert.Equal(t, ModePoint, ctrl.Mode())
	assert.Zero(t, ctrl.VertexCount(), "partial ring discarded")
}

func TestClickWhileIdle(t *testing.T) {
	ctrl := NewController(stubClients{})

	_, err := ctrl.Click(43.2, 76.9)
	assert.ErrorIs(t, err, ErrNotArmed)
}

func TestPolygonClosesOnProximity(t *testing.T) {
	ctrl := NewController(stubClients{})
	ctrl.ArmPolygon()

	clicks := [][2]float64{
		{43.20, 76.90},
		{43.20, 76.95},
		{43.25, 76.95},
	}
	for _, click := range clicks {
		capture, err := ctrl.Click(click[0], click[1])
		require.NoError(t, err)
		assert.Nil(t, capture, "interaction continues")
	}

	// A click back on (almost exactly) the first vertex closes the ring.
	capture, err := ctrl.Click(43.20, 76.90)
	require.NoError(t, err)
	require.NotNil(t, capture)
	require.NotNil(t, capture.Polygon)

	ring := capture.Polygon.Coordinates[0]
	require.Len(t, ring, 4)
	assert.Equal(t, ring[0], ring[len(ring)-1])
	assert.Equal(t, []float64{76.90, 43.20}, ring[0])
	assert.Equal(t, ModeIdle, ctrl.Mode())
	assert.NoError(t, capture.Polygon.Validate())
}

func TestCompletePolygonNeedsThreeVertices(t *testing.T) {
	ctrl := NewController(stubClients{})
	ctrl.ArmPolygon()
	ctrl.Click(43.20, 76.90)
	ctrl.Click(43.20, 76.95)

	_, err := ctrl.CompletePolygon()
	assert.ErrorIs(t, err, ErrNeedMoreVerts)

	ctrl.Click(43.25, 76.95)
	capture, err := ctrl.CompletePolygon()
	require.NoError(t, err)
	require.NotNil(t, capture.Polygon)
	assert.Len(t, capture.Polygon.Coordinates[0], 4)
}

func TestCancelDiscards(t *testing.T) {
	ctrl := NewController(stubClients{})
	ctrl.ArmPolygon()
	ctrl.Click(43.20, 76.90)

	ctrl.Cancel()
	assert.Equal(t, ModeIdle, ctrl.Mode())
	assert.Zero(t, ctrl.VertexCount())
}
