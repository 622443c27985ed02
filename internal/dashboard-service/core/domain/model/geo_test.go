package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointMarshalsLonFirst(t *testing.T) {
	point := NewPoint(76.889, 43.238)

	encoded, err := json.Marshal(point)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Point","coordinates":[76.889,43.238]}`, string(encoded))

	assert.Equal(t, 76.889, point.Lon())
	assert.Equal(t, 43.238, point.Lat())
}

func TestPointValidate(t *testing.T) {
	assert.NoError(t, NewPoint(0, 0).Validate())

	err := Point{Type: "Polygon", Coordinates: []float64{1, 2}}.Validate()
	assert.ErrorIs(t, err, ErrBadGeometryType)

	err = Point{Type: GeometryPoint, Coordinates: []float64{1}}.Validate()
	assert.ErrorIs(t, err, ErrBadCoordinates)
}

func TestPolygonValidate(t *testing.T) {
	closed := NewPolygon([][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 0}})
	assert.NoError(t, closed.Validate())

	open := NewPolygon([][]float64{{0, 0}, {1, 0}, {1, 1}, {2, 2}})
	assert.ErrorIs(t, open.Validate(), ErrBadCoordinates)

	short := NewPolygon([][]float64{{0, 0}, {1, 0}, {0, 0}})
	assert.ErrorIs(t, short.Validate(), ErrBadCoordinates)

	empty := Polygon{Type: GeometryPolygon}
	assert.ErrorIs(t, empty.Validate(), ErrBadCoordinates)
}

func TestCloseRing(t *testing.T) {
	open := [][]float64{{0, 0}, {1, 0}, {1, 1}}
	closed := CloseRing(open)
	require.Len(t, closed, 4)
	assert.Equal(t, closed[0], closed[3])

	// Already closed rings come back untouched.
	assert.Len(t, CloseRing(closed), 4)
	assert.Empty(t, CloseRing(nil))
}
