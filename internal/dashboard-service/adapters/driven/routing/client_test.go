package routing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"delivery-track/internal/config"
	"delivery-track/internal/mylogger"
)

func newRoutingClient(t *testing.T, upstream http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(upstream)
	t.Cleanup(server.Close)

	log, _ := mylogger.New(mylogger.LevelError)
	return NewClient(&config.Routingconfig{BaseURL: server.URL, Profile: "driving"}, log)
}

func TestPlanSendsLonLatOrder(t *testing.T) {
	var gotPath, gotQuery string
	client := newRoutingClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{
			"code": "Ok",
			"routes": [{
				"geometry": {"type":"LineString","coordinates":[[76.88,43.23],[76.90,43.25]]},
				"distance": 3200.5,
				"duration": 410.2
			}]
		}`))
	})

	plan, err := client.Plan(context.Background(), [][]float64{
		{76.889000, 43.238000},
		{76.901000, 43.251000},
	})
	require.NoError(t, err)

	assert.Equal(t, "/route/v1/driving/76.889000,43.238000;76.901000,43.251000", gotPath)
	assert.Contains(t, gotQuery, "geometries=geojson")
	assert.Equal(t, 3200.5, plan.DistanceMeters)
	assert.Equal(t, 410.2, plan.DurationSeconds)
	require.Len(t, plan.Geometry.Coordinates, 2)
	assert.Equal(t, []float64{76.88, 43.23}, plan.Geometry.Coordinates[0])
}

func TestPlanRejectsTooFewPoints(t *testing.T) {
	client := newRoutingClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})

	_, err := client.Plan(context.Background(), [][]float64{{76.889, 43.238}})
	assert.Error(t, err)
}

func TestPlanUpstreamRejection(t *testing.T) {
	client := newRoutingClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":"NoRoute","routes":[]}`))
	})

	_, err := client.Plan(context.Background(), [][]float64{{0, 0}, {1, 1}})
	assert.ErrorContains(t, err, "NoRoute")
}

func TestPlanUpstreamFailure(t *testing.T) {
	client := newRoutingClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Plan(context.Background(), [][]float64{{0, 0}, {1, 1}})
	assert.ErrorContains(t, err, "500")
}
