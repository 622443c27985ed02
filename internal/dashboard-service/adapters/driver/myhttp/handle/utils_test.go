package handle

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"delivery-track/internal/dashboard-service/core/domain/model"
	"delivery-track/internal/dashboard-service/core/myerrors"
)

func TestServiceErrorMapsGeometryErrors(t *testing.T) {
	t.Run("point with one coordinate", func(t *testing.T) {
		rec := httptest.NewRecorder()
		serviceError(rec, model.Point{Type: model.GeometryPoint, Coordinates: []float64{1}}.Validate())
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("wrong geometry type", func(t *testing.T) {
		rec := httptest.NewRecorder()
		serviceError(rec, model.Point{Type: "Polygon", Coordinates: []float64{1, 2}}.Validate())
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("open polygon ring", func(t *testing.T) {
		rec := httptest.NewRecorder()
		serviceError(rec, model.NewPolygon([][]float64{{0, 0}, {1, 0}, {1, 1}, {2, 2}}).Validate())
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServiceErrorFallsBackToInternal(t *testing.T) {
	rec := httptest.NewRecorder()
	serviceError(rec, assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error","code":500}`, rec.Body.String())
}

func TestServiceErrorUpstream(t *testing.T) {
	rec := httptest.NewRecorder()
	serviceError(rec, myerrors.ErrRoutingUpstream)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
