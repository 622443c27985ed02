package mapclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"delivery-track/internal/dashboard-service/core/domain/model"
)

func driverMarker(id string, lon, lat float64) Marker {
	return Marker{
		EntityID: id,
		Kind:     KindDriver,
		Location: model.NewPoint(lon, lat),
		Label:    "driver " + id,
	}
}

func TestReconcileComputesDiff(t *testing.T) {
	store := NewMarkerStore()
	gen := store.Generation()

	diff, ok := store.Reconcile(gen, []Marker{
		driverMarker("d1", 76.90, 43.20),
		driverMarker("d2", 76.91, 43.21),
	})
	require.True(t, ok)
	assert.Len(t, diff.Added, 2)
	assert.Empty(t, diff.Updated)
	assert.Empty(t, diff.Removed)

	// d1 moved, d2 vanished, d3 appeared.
	diff, ok = store.Reconcile(gen, []Marker{
		driverMarker("d1", 76.95, 43.25),
		driverMarker("d3", 76.92, 43.22),
	})
	require.True(t, ok)
	require.Len(t, diff.Added, 1)
	assert.Equal(t, "d3", diff.Added[0].EntityID)
	require.Len(t, diff.Updated, 1)
	assert.Equal(t, "d1", diff.Updated[0].EntityID)
	assert.Equal(t, []string{"d2"}, diff.Removed)

	assert.Equal(t, 2, store.Len())
}

func TestReconcileUnchangedMarkerProducesNoOps(t *testing.T) {
	store := NewMarkerStore()
	gen := store.Generation()

	store.Reconcile(gen, []Marker{driverMarker("d1", 76.90, 43.20)})
	diff, ok := store.Reconcile(gen, []Marker{driverMarker("d1", 76.90, 43.20)})
	require.True(t, ok)
	assert.Empty(t, diff.Added)
	assert.Empty(t, diff.Updated)
	assert.Empty(t, diff.Removed)
}

func TestStaleGenerationIsIgnored(t *testing.T) {
	store := NewMarkerStore()
	gen := store.Generation()

	store.Reconcile(gen, []Marker{driverMarker("d1", 76.90, 43.20)})

	// A view switch invalidates while a refetch is in flight.
	store.Invalidate()

	_, ok := store.Reconcile(gen, []Marker{driverMarker("d2", 76.91, 43.21)})
	assert.False(t, ok, "stale response discarded")
	assert.Zero(t, store.Len())

	fresh := store.Generation()
	diff, ok := store.Reconcile(fresh, []Marker{driverMarker("d2", 76.91, 43.21)})
	require.True(t, ok)
	assert.Len(t, diff.Added, 1)
}

func TestDriverMarkers(t *testing.T) {
	markers := DriverMarkers([]model.Driver{
		{ID: "d1", Name: "Marat", CurrentLocation: model.NewPoint(76.90, 43.20)},
	})
	require.Len(t, markers, 1)
	assert.Equal(t, KindDriver, markers[0].Kind)
	assert.Equal(t, "Marat", markers[0].Label)
	assert.Equal(t, 76.90, markers[0].Location.Lon())
}
