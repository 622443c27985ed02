package websocketdto

import "encoding/json"

// Wire events on the dashboard relay. One inbound type, one outbound type;
// the payload is carried verbatim.
const (
	EventUpdateLocation        = "updateLocation"
	EventDriverLocationUpdated = "driverLocationUpdated"
)

type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// LocationUpdate is the relay payload. Keys stay camelCase — they are the
// published wire contract shared with every dashboard session.
type LocationUpdate struct {
	DriverID string  `json:"driverId"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
}

func NewLocationEvent(eventType string, update LocationUpdate) (Event, error) {
	data, err := json.Marshal(update)
	if err != nil {
		return Event{}, err
	}
	return Event{Type: eventType, Data: data}, nil
}
