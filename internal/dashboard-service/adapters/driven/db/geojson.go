package db

import (
	"encoding/json"
	"fmt"

	"delivery-track/internal/dashboard-service/core/domain/model"
)

// Locations and zone rings live in jsonb columns so the stored payload is
// byte-for-byte the GeoJSON the API carries, lon-first axis order included.

func encodeJSON(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode geojson: %w", err)
	}
	return data, nil
}

func decodePoint(raw []byte, into *model.Point) error {
	if err := json.Unmarshal(raw, into); err != nil {
		return fmt.Errorf("decode point: %w", err)
	}
	return nil
}

func decodePolygon(raw []byte, into *model.Polygon) error {
	if err := json.Unmarshal(raw, into); err != nil {
		return fmt.Errorf("decode polygon: %w", err)
	}
	return nil
}
