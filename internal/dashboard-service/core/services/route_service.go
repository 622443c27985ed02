package services

import (
	"context"
	"fmt"

	"delivery-track/internal/dashboard-service/core/domain/dto"
	"delivery-track/internal/dashboard-service/core/myerrors"
	"delivery-track/internal/dashboard-service/core/ports"
	"delivery-track/internal/mylogger"
)

type RouteService struct {
	planner ports.IRoutePlanner
	mylog   mylogger.Logger
}

func NewRouteService(planner ports.IRoutePlanner, mylog mylogger.Logger) *RouteService {
	return &RouteService{
		planner: planner,
		mylog:   mylog,
	}
}

func (rs *RouteService) Plan(ctx context.Context, req dto.RouteRequest) (dto.RoutePlan, error) {
	// Waypoints arrive in display order (lat, lng) and leave in geographic
	// order (lon, lat).
	points := make([][]float64, 0, len(req.Points))
	for _, p := range req.Points {
		points = append(points, []float64{p.Lng, p.Lat})
	}

	plan, err := rs.planner.Plan(ctx, points)
	if err != nil {
		rs.mylog.Action("plan_route").Error("routing service call failed", err)
		return dto.RoutePlan{}, fmt.Errorf("%w: %v", myerrors.ErrRoutingUpstream, err)
	}
	return plan, nil
}
