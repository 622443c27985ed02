package mapclient

import (
	"context"
	"errors"
	"sync"

	"delivery-track/internal/dashboard-service/core/domain/model"
)

// Mode is the interaction state of the map surface.
type Mode int

const (
	ModeIdle Mode = iota
	ModePoint
	ModePolygon
)

// Kind names which entity family an armed point capture is for.
type Kind string

const (
	KindPlace    Kind = "place"
	KindClient   Kind = "client"
	KindDelivery Kind = "delivery"
	KindDriver   Kind = "driver"
)

// closeProximity is the squared lat/lng distance under which a polygon
// click counts as the first vertex, closing the ring.
const closeProximity = 1e-6

var (
	ErrNoClients     = errors.New("no clients exist, create a client first")
	ErrNotArmed      = errors.New("no capture armed")
	ErrNeedMoreVerts = errors.New("polygon needs at least 3 vertices")
)

// ClientLister is the slice of the REST client the controller needs to
// gate delivery creation.
type ClientLister interface {
	ListClients(ctx context.Context) ([]model.Client, error)
}

// Capture is what a completed interaction yields: a point for the armed
// kind, or a closed polygon ring awaiting a name.
type Capture struct {
	Kind    Kind
	Point   *model.Point
	Polygon *model.Polygon
}

// Controller is the click-capture state machine. One mode is active at a
// time; arming a new mode resets whatever was armed before, and a cancel
// or completed capture returns to idle.
type Controller struct {
	mu      sync.Mutex
	mode    Mode
	kind    Kind
	ring    [][]float64
	clients ClientLister
}

func NewController(clients ClientLister) *Controller {
	return &Controller{clients: clients}
}

func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// ArmPoint arms a single-click capture for the given kind. Arming a
// delivery first verifies at least one client exists; a delivery cannot
// reference nothing.
func (c *Controller) ArmPoint(ctx context.Context, kind Kind) error {
	if kind == KindDelivery {
		clients, err := c.clients.ListClients(ctx)
		if err != nil {
			return err
		}
		if len(clients) == 0 {
			return ErrNoClients
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset()
	c.mode = ModePoint
	c.kind = kind
	return nil
}

// ArmPolygon starts a polygon draw.
func (c *Controller) ArmPolygon() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset()
	c.mode = ModePolygon
}

// Cancel discards any armed capture and partial ring.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset()
}

// Click feeds a map click into the machine. In point mode it completes
// immediately with a lon-first point. In polygon mode clicks accumulate
// vertices; a click near the first vertex closes the ring and completes.
// A nil capture with nil error means the click was consumed but the
// interaction continues.
func (c *Controller) Click(lat, lng float64) (*Capture, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.mode {
	case ModePoint:
		kind := c.kind
		c.reset()
		point := model.NewPoint(lng, lat)
		return &Capture{Kind: kind, Point: &point}, nil

	case ModePolygon:
		vertex := []float64{lng, lat}
		if len(c.ring) >= 3 && nearFirst(c.ring, vertex) {
			polygon := model.Polygon{
				Type:        model.GeometryPolygon,
				Coordinates: [][][]float64{model.CloseRing(c.ring)},
			}
			c.reset()
			return &Capture{Polygon: &polygon}, nil
		}
		c.ring = append(c.ring, vertex)
		return nil, nil

	default:
		return nil, ErrNotArmed
	}
}

// CompletePolygon force-closes the current ring, for a double-click or
// keyboard finish that skips the proximity click.
func (c *Controller) CompletePolygon() (*Capture, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode != ModePolygon {
		return nil, ErrNotArmed
	}
	if len(c.ring) < 3 {
		return nil, ErrNeedMoreVerts
	}

	polygon := model.Polygon{
		Type:        model.GeometryPolygon,
		Coordinates: [][][]float64{model.CloseRing(c.ring)},
	}
	c.reset()
	return &Capture{Polygon: &polygon}, nil
}

// VertexCount reports the vertices accumulated so far in a polygon draw.
func (c *Controller) VertexCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.ring)
}

func (c *Controller) reset() {
	c.mode = ModeIdle
	c.kind = ""
	c.ring = nil
}

func nearFirst(ring [][]float64, vertex []float64) bool {
	first := ring[0]
	dx := first[0] - vertex[0]
	dy := first[1] - vertex[1]
	return dx*dx+dy*dy < closeProximity
}
