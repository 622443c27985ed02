package mapclient

import (
	"sync"

	"delivery-track/internal/dashboard-service/core/domain/model"
)

// Marker is one rendered map pin.
type Marker struct {
	EntityID string
	Kind     Kind
	Location model.Point
	Label    string
}

// Diff is the minimal set of marker operations a reconcile produced.
type Diff struct {
	Added   []Marker
	Updated []Marker
	Removed []string
}

// MarkerStore tracks the markers currently on the map, keyed by entity id.
// Reconcile is how every refetch lands: the store computes what actually
// changed so the map never clears and redraws wholesale.
//
// A generation token guards against stale responses. Callers grab the token
// before a refetch and hand it back with the result; a view switch or
// cancel bumps the generation, so a response that raced the switch is
// silently discarded.
type MarkerStore struct {
	mu         sync.Mutex
	markers    map[string]Marker
	generation uint64
}

func NewMarkerStore() *MarkerStore {
	return &MarkerStore{markers: make(map[string]Marker)}
}

// Generation returns the token a refetch must present on completion.
func (ms *MarkerStore) Generation() uint64 {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.generation
}

// Invalidate bumps the generation so any in-flight refetch result is
// ignored. Called on view switch and interaction cancel.
func (ms *MarkerStore) Invalidate() {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.generation++
	ms.markers = make(map[string]Marker)
}

// Reconcile applies a freshly fetched marker list. It returns the diff
// against the current state, or ok=false when the generation moved on and
// the list is stale.
func (ms *MarkerStore) Reconcile(generation uint64, fetched []Marker) (Diff, bool) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if generation != ms.generation {
		return Diff{}, false
	}

	var diff Diff
	seen := make(map[string]bool, len(fetched))

	for _, marker := range fetched {
		seen[marker.EntityID] = true
		current, exists := ms.markers[marker.EntityID]
		switch {
		case !exists:
			diff.Added = append(diff.Added, marker)
		case !samePosition(current.Location, marker.Location) || current.Label != marker.Label:
			diff.Updated = append(diff.Updated, marker)
		}
		ms.markers[marker.EntityID] = marker
	}

	for id := range ms.markers {
		if !seen[id] {
			diff.Removed = append(diff.Removed, id)
			delete(ms.markers, id)
		}
	}

	return diff, true
}

// Get returns the marker for an entity id, if present.
func (ms *MarkerStore) Get(entityID string) (Marker, bool) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	marker, ok := ms.markers[entityID]
	return marker, ok
}

// Len reports how many markers are on the map.
func (ms *MarkerStore) Len() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return len(ms.markers)
}

func samePosition(a, b model.Point) bool {
	if len(a.Coordinates) != 2 || len(b.Coordinates) != 2 {
		return false
	}
	return a.Coordinates[0] == b.Coordinates[0] && a.Coordinates[1] == b.Coordinates[1]
}

// DriverMarkers converts a driver list into markers, used by the full
// refetch a driverLocationUpdated event triggers. The event itself carries
// only the position; status and capacity come from the fetch.
func DriverMarkers(drivers []model.Driver) []Marker {
	markers := make([]Marker, 0, len(drivers))
	for _, driver := range drivers {
		markers = append(markers, Marker{
			EntityID: driver.ID,
			Kind:     KindDriver,
			Location: driver.CurrentLocation,
			Label:    driver.Name,
		})
	}
	return markers
}
