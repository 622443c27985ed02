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

const testUser = "user-1"

func newDeliveryFixture() (*DeliveryService, *fakeClientRepo, *fakeDriverRepo, *fakeChangeLog) {
	clients := newFakeClientRepo()
	drivers := newFakeDriverRepo()
	changeLog := &fakeChangeLog{}
	svc := NewDeliveryService(newFakeDeliveryRepo(), clients, drivers, changeLog, testLogger())
	return svc, clients, drivers, changeLog
}

func TestCreateDeliveryUnknownClient(t *testing.T) {
	svc, _, _, _ := newDeliveryFixture()

	_, err := svc.Create(context.Background(), testUser, dto.CreateDeliveryRequest{
		Description: "parcel",
		ClientID:    "missing",
		Location:    model.NewPoint(76.9, 43.2),
	})
	assert.ErrorIs(t, err, myerrors.ErrUnknownClient)
}

func TestCreateDeliveryDefaults(t *testing.T) {
	svc, clients, _, changeLog := newDeliveryFixture()
	client, _ := clients.Create(context.Background(), model.Client{UserID: testUser})

	delivery, err := svc.Create(context.Background(), testUser, dto.CreateDeliveryRequest{
		Description: "parcel",
		ClientID:    client.ID,
		Location:    model.NewPoint(76.9, 43.2),
	})
	require.NoError(t, err)

	assert.Equal(t, model.DeliveryPriorityNormal, delivery.Priority)
	assert.Equal(t, model.DeliveryStatusPending, delivery.Status)
	assert.Nil(t, delivery.DriverID)

	require.Len(t, changeLog.records, 1)
	assert.Equal(t, model.ChangeActionCreate, changeLog.records[0].action)
}

func TestUpdateDeliveryMergesFields(t *testing.T) {
	svc, clients, drivers, _ := newDeliveryFixture()
	client, _ := clients.Create(context.Background(), model.Client{UserID: testUser})
	driver, _ := drivers.Create(context.Background(), model.Driver{UserID: testUser})

	delivery, err := svc.Create(context.Background(), testUser, dto.CreateDeliveryRequest{
		Description: "parcel",
		Priority:    model.DeliveryPriorityHigh,
		ClientID:    client.ID,
		Location:    model.NewPoint(76.9, 43.2),
	})
	require.NoError(t, err)

	status := model.DeliveryStatusAssigned
	updated, err := svc.Update(context.Background(), delivery.ID, testUser, dto.UpdateDeliveryRequest{
		Status:   &status,
		DriverID: &driver.ID,
	})
	require.NoError(t, err)

	// Absent fields keep their stored values.
	assert.Equal(t, "parcel", updated.Description)
	assert.Equal(t, model.DeliveryPriorityHigh, updated.Priority)
	assert.Equal(t, model.DeliveryStatusAssigned, updated.Status)
	require.NotNil(t, updated.DriverID)
	assert.Equal(t, driver.ID, *updated.DriverID)
}

func TestUpdateDeliveryUnknownDriver(t *testing.T) {
	svc, clients, _, _ := newDeliveryFixture()
	client, _ := clients.Create(context.Background(), model.Client{UserID: testUser})

	delivery, err := svc.Create(context.Background(), testUser, dto.CreateDeliveryRequest{
		Description: "parcel",
		ClientID:    client.ID,
		Location:    model.NewPoint(76.9, 43.2),
	})
	require.NoError(t, err)

	missing := "driver-404"
	_, err = svc.Update(context.Background(), delivery.ID, testUser, dto.UpdateDeliveryRequest{
		DriverID: &missing,
	})
	assert.ErrorIs(t, err, myerrors.ErrNotFound)
}

func TestDeliveryForeignRowIsNotFound(t *testing.T) {
	svc, clients, _, _ := newDeliveryFixture()
	client, _ := clients.Create(context.Background(), model.Client{UserID: testUser})

	delivery, err := svc.Create(context.Background(), testUser, dto.CreateDeliveryRequest{
		Description: "parcel",
		ClientID:    client.ID,
		Location:    model.NewPoint(76.9, 43.2),
	})
	require.NoError(t, err)

	desc := "stolen"
	_, err = svc.Update(context.Background(), delivery.ID, "someone-else", dto.UpdateDeliveryRequest{
		Description: &desc,
	})
	assert.ErrorIs(t, err, myerrors.ErrNotFound)
}
