package ports

import (
	"context"

	"delivery-track/internal/dashboard-service/core/domain/dto"
)

// IRoutePlanner resolves an ordered list of [lon, lat] waypoints against an
// external routing service. Synchronous, no fallback on failure.
type IRoutePlanner interface {
	Plan(ctx context.Context, points [][]float64) (dto.RoutePlan, error)
}
