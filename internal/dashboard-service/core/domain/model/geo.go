package model

import (
	"errors"
	"fmt"
)

// GeoJSON geometry values. Coordinates are [longitude, latitude] — lon
// first, always, even though the UI displays lat first.

const (
	GeometryPoint      = "Point"
	GeometryPolygon    = "Polygon"
	GeometryLineString = "LineString"
)

var (
	ErrBadGeometryType = errors.New("unexpected geometry type")
	ErrBadCoordinates  = errors.New("malformed coordinates")
)

type Point struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

func NewPoint(lon, lat float64) Point {
	return Point{Type: GeometryPoint, Coordinates: []float64{lon, lat}}
}

// Origin is the location a driver carries until it is placed on the map.
func Origin() Point {
	return NewPoint(0, 0)
}

func (p Point) Lon() float64 {
	return p.Coordinates[0]
}

func (p Point) Lat() float64 {
	return p.Coordinates[1]
}

func (p Point) Validate() error {
	if p.Type != GeometryPoint {
		return fmt.Errorf("%w: %q", ErrBadGeometryType, p.Type)
	}
	if len(p.Coordinates) != 2 {
		return fmt.Errorf("%w: point needs exactly [lon, lat]", ErrBadCoordinates)
	}
	return nil
}

// Polygon holds one or more linear rings; the first is the outer boundary.
// Rings are closed: the last vertex repeats the first.
type Polygon struct {
	Type        string        `json:"type"`
	Coordinates [][][]float64 `json:"coordinates"`
}

func NewPolygon(ring [][]float64) Polygon {
	return Polygon{Type: GeometryPolygon, Coordinates: [][][]float64{ring}}
}

func (p Polygon) Validate() error {
	if p.Type != GeometryPolygon {
		return fmt.Errorf("%w: %q", ErrBadGeometryType, p.Type)
	}
	if len(p.Coordinates) == 0 {
		return fmt.Errorf("%w: polygon needs at least one ring", ErrBadCoordinates)
	}
	for _, ring := range p.Coordinates {
		if len(ring) < 4 {
			return fmt.Errorf("%w: closed ring needs at least 4 vertices", ErrBadCoordinates)
		}
		for _, vertex := range ring {
			if len(vertex) != 2 {
				return fmt.Errorf("%w: vertex needs exactly [lon, lat]", ErrBadCoordinates)
			}
		}
		first, last := ring[0], ring[len(ring)-1]
		if first[0] != last[0] || first[1] != last[1] {
			return fmt.Errorf("%w: ring is not closed", ErrBadCoordinates)
		}
	}
	return nil
}

// CloseRing appends the first vertex at the end unless the ring is already
// closed. N captured vertices persist as N+1 coordinates.
func CloseRing(ring [][]float64) [][]float64 {
	if len(ring) == 0 {
		return ring
	}
	first, last := ring[0], ring[len(ring)-1]
	if first[0] == last[0] && first[1] == last[1] {
		return ring
	}
	return append(ring, []float64{first[0], first[1]})
}

type LineString struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"`
}
