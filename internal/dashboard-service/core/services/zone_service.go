package services

import (
	"context"
	"fmt"

	"delivery-track/internal/dashboard-service/core/domain/dto"
	"delivery-track/internal/dashboard-service/core/domain/model"
	"delivery-track/internal/dashboard-service/core/myerrors"
	"delivery-track/internal/dashboard-service/core/ports"
	"delivery-track/internal/mylogger"
)

type ZoneService struct {
	zoneRepo  ports.IZoneRepo
	changeLog ports.IChangeLogService
	mylog     mylogger.Logger
}

func NewZoneService(zoneRepo ports.IZoneRepo, changeLog ports.IChangeLogService, mylog mylogger.Logger) *ZoneService {
	return &ZoneService{
		zoneRepo:  zoneRepo,
		changeLog: changeLog,
		mylog:     mylog,
	}
}

func (zs *ZoneService) List(ctx context.Context, userID string) ([]model.Zone, error) {
	return zs.zoneRepo.List(ctx, userID)
}

func (zs *ZoneService) Create(ctx context.Context, userID string, req dto.CreateZoneRequest) (model.Zone, error) {
	geometry, err := normalizeGeometry(req.Geometry)
	if err != nil {
		return model.Zone{}, err
	}

	zone, err := zs.zoneRepo.Create(ctx, model.Zone{
		Name:        req.Name,
		Description: req.Description,
		Geometry:    geometry,
		UserID:      userID,
	})
	if err != nil {
		return model.Zone{}, fmt.Errorf("create zone: %w", err)
	}

	zs.changeLog.Record(ctx, userID, "zone", zone.ID, model.ChangeActionCreate)
	return zone, nil
}

func (zs *ZoneService) Update(ctx context.Context, id, userID string, req dto.UpdateZoneRequest) (model.Zone, error) {
	zone, err := zs.zoneRepo.Get(ctx, id, userID)
	if err != nil {
		return model.Zone{}, err
	}

	if req.Name != nil {
		zone.Name = *req.Name
	}
	if req.Description != nil {
		zone.Description = *req.Description
	}

	updated, err := zs.zoneRepo.Update(ctx, zone)
	if err != nil {
		return model.Zone{}, fmt.Errorf("update zone: %w", err)
	}

	zs.changeLog.Record(ctx, userID, "zone", id, model.ChangeActionUpdate)
	return updated, nil
}

func (zs *ZoneService) Delete(ctx context.Context, id, userID string) error {
	if err := zs.zoneRepo.Delete(ctx, id, userID); err != nil {
		return err
	}
	zs.changeLog.Record(ctx, userID, "zone", id, model.ChangeActionDelete)
	return nil
}

// normalizeGeometry closes every ring the drawing tool left open and
// rejects degenerate rings. N captured vertices always persist as N+1
// coordinates with the last equal to the first.
func normalizeGeometry(geometry model.Polygon) (model.Polygon, error) {
	if geometry.Type != model.GeometryPolygon || len(geometry.Coordinates) == 0 {
		return model.Polygon{}, model.ErrBadGeometryType
	}

	closed := make([][][]float64, 0, len(geometry.Coordinates))
	for _, ring := range geometry.Coordinates {
		if len(distinctVertices(ring)) < 3 {
			return model.Polygon{}, myerrors.ErrRingTooShort
		}
		closed = append(closed, model.CloseRing(ring))
	}

	geometry.Coordinates = closed
	if err := geometry.Validate(); err != nil {
		return model.Polygon{}, err
	}
	return geometry, nil
}

func distinctVertices(ring [][]float64) [][]float64 {
	seen := make(map[[2]float64]bool, len(ring))
	var out [][]float64
	for _, vertex := range ring {
		if len(vertex) != 2 {
			continue
		}
		key := [2]float64{vertex[0], vertex[1]}
		if !seen[key] {
			seen[key] = true
			out = append(out, vertex)
		}
	}
	return out
}
