package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"delivery-track/internal/dashboard-service/core/domain/dto"
	"delivery-track/internal/dashboard-service/core/domain/model"
	"delivery-track/internal/dashboard-service/core/myerrors"
)

func newZoneService() *ZoneService {
	return NewZoneService(newFakeZoneRepo(), &fakeChangeLog{}, testLogger())
}

func TestCreateZoneClosesRing(t *testing.T) {
	svc := newZoneService()

	zone, err := svc.Create(context.Background(), testUser, dto.CreateZoneRequest{
		Name: "downtown",
		Geometry: model.NewPolygon([][]float64{
			{76.90, 43.20},
			{76.95, 43.20},
			{76.95, 43.25},
		}),
	})
	require.NoError(t, err)

	ring := zone.Geometry.Coordinates[0]
	require.Len(t, ring, 4, "3 captured vertices persist as 4 coordinates")
	assert.Equal(t, ring[0], ring[len(ring)-1])
}

func TestCreateZoneAlreadyClosedRingUnchanged(t *testing.T) {
	svc := newZoneService()

	zone, err := svc.Create(context.Background(), testUser, dto.CreateZoneRequest{
		Name: "downtown",
		Geometry: model.NewPolygon([][]float64{
			{76.90, 43.20},
			{76.95, 43.20},
			{76.95, 43.25},
			{76.90, 43.20},
		}),
	})
	require.NoError(t, err)
	assert.Len(t, zone.Geometry.Coordinates[0], 4)
}

func TestCreateZoneRejectsDegenerateRing(t *testing.T) {
	svc := newZoneService()

	_, err := svc.Create(context.Background(), testUser, dto.CreateZoneRequest{
		Name: "line",
		Geometry: model.NewPolygon([][]float64{
			{76.90, 43.20},
			{76.95, 43.20},
			{76.90, 43.20},
		}),
	})
	assert.ErrorIs(t, err, myerrors.ErrRingTooShort)
}

func TestUpdateZoneMergesName(t *testing.T) {
	svc := newZoneService()

	zone, err := svc.Create(context.Background(), testUser, dto.CreateZoneRequest{
		Name:        "downtown",
		Description: "core area",
		Geometry: model.NewPolygon([][]float64{
			{76.90, 43.20},
			{76.95, 43.20},
			{76.95, 43.25},
		}),
	})
	require.NoError(t, err)

	name := "midtown"
	updated, err := svc.Update(context.Background(), zone.ID, testUser, dto.UpdateZoneRequest{
		Name: &name,
	})
	require.NoError(t, err)

	assert.Equal(t, "midtown", updated.Name)
	assert.Equal(t, "core area", updated.Description)
	assert.Equal(t, zone.Geometry, updated.Geometry)
}
