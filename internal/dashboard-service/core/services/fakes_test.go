package services

import (
	"context"
	"fmt"

	"delivery-track/internal/dashboard-service/core/domain/model"
	websocketdto "delivery-track/internal/dashboard-service/core/domain/websocket_dto"
	"delivery-track/internal/dashboard-service/core/myerrors"
	"delivery-track/internal/mylogger"
)

func testLogger() mylogger.Logger {
	log, _ := mylogger.New(mylogger.LevelError)
	return log
}

type fakeUserRepo struct {
	byEmail map[string]model.User
	nextID  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]model.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user model.User) (model.User, error) {
	if _, exists := f.byEmail[user.Email]; exists {
		return model.User{}, myerrors.ErrEmailRegistered
	}
	f.nextID++
	user.ID = fmt.Sprintf("user-%d", f.nextID)
	f.byEmail[user.Email] = user
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (model.User, error) {
	user, exists := f.byEmail[email]
	if !exists {
		return model.User{}, myerrors.ErrUnknownEmail
	}
	return user, nil
}

type fakeClientRepo struct {
	byID map[string]model.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{byID: make(map[string]model.Client)}
}

func (f *fakeClientRepo) List(_ context.Context, userID string) ([]model.Client, error) {
	var out []model.Client
	for _, c := range f.byID {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeClientRepo) Get(_ context.Context, id, userID string) (model.Client, error) {
	client, exists := f.byID[id]
	if !exists || client.UserID != userID {
		return model.Client{}, myerrors.ErrNotFound
	}
	return client, nil
}

func (f *fakeClientRepo) Create(_ context.Context, client model.Client) (model.Client, error) {
	if client.ID == "" {
		client.ID = fmt.Sprintf("client-%d", len(f.byID)+1)
	}
	f.byID[client.ID] = client
	return client, nil
}

func (f *fakeClientRepo) Update(_ context.Context, client model.Client) (model.Client, error) {
	if _, exists := f.byID[client.ID]; !exists {
		return model.Client{}, myerrors.ErrNotFound
	}
	f.byID[client.ID] = client
	return client, nil
}

func (f *fakeClientRepo) Delete(_ context.Context, id, userID string) error {
	client, exists := f.byID[id]
	if !exists || client.UserID != userID {
		return myerrors.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeDeliveryRepo struct {
	byID map[string]model.Delivery
}

func newFakeDeliveryRepo() *fakeDeliveryRepo {
	return &fakeDeliveryRepo{byID: make(map[string]model.Delivery)}
}

func (f *fakeDeliveryRepo) List(_ context.Context, userID string) ([]model.DeliveryDetails, error) {
	var out []model.DeliveryDetails
	for _, d := range f.byID {
		if d.UserID == userID {
			out = append(out, model.DeliveryDetails{Delivery: d})
		}
	}
	return out, nil
}

func (f *fakeDeliveryRepo) Get(_ context.Context, id, userID string) (model.Delivery, error) {
	delivery, exists := f.byID[id]
	if !exists || delivery.UserID != userID {
		return model.Delivery{}, myerrors.ErrNotFound
	}
	return delivery, nil
}

func (f *fakeDeliveryRepo) Create(_ context.Context, delivery model.Delivery) (model.Delivery, error) {
	delivery.ID = fmt.Sprintf("delivery-%d", len(f.byID)+1)
	f.byID[delivery.ID] = delivery
	return delivery, nil
}

func (f *fakeDeliveryRepo) Update(_ context.Context, delivery model.Delivery) (model.Delivery, error) {
	if _, exists := f.byID[delivery.ID]; !exists {
		return model.Delivery{}, myerrors.ErrNotFound
	}
	f.byID[delivery.ID] = delivery
	return delivery, nil
}

func (f *fakeDeliveryRepo) Delete(_ context.Context, id, userID string) error {
	delivery, exists := f.byID[id]
	if !exists || delivery.UserID != userID {
		return myerrors.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeDriverRepo struct {
	byID map[string]model.Driver
}

func newFakeDriverRepo() *fakeDriverRepo {
	return &fakeDriverRepo{byID: make(map[string]model.Driver)}
}

func (f *fakeDriverRepo) List(_ context.Context, userID string) ([]model.Driver, error) {
	var out []model.Driver
	for _, d := range f.byID {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDriverRepo) Get(_ context.Context, id, userID string) (model.Driver, error) {
	driver, exists := f.byID[id]
	if !exists || driver.UserID != userID {
		return model.Driver{}, myerrors.ErrNotFound
	}
	return driver, nil
}

func (f *fakeDriverRepo) Create(_ context.Context, driver model.Driver) (model.Driver, error) {
	driver.ID = fmt.Sprintf("driver-%d", len(f.byID)+1)
	f.byID[driver.ID] = driver
	return driver, nil
}

func (f *fakeDriverRepo) Update(_ context.Context, driver model.Driver) (model.Driver, error) {
	if _, exists := f.byID[driver.ID]; !exists {
		return model.Driver{}, myerrors.ErrNotFound
	}
	f.byID[driver.ID] = driver
	return driver, nil
}

func (f *fakeDriverRepo) Delete(_ context.Context, id, userID string) error {
	driver, exists := f.byID[id]
	if !exists || driver.UserID != userID {
		return myerrors.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeZoneRepo struct {
	byID map[string]model.Zone
}

func newFakeZoneRepo() *fakeZoneRepo {
	return &fakeZoneRepo{byID: make(map[string]model.Zone)}
}

func (f *fakeZoneRepo) List(_ context.Context, userID string) ([]model.Zone, error) {
	var out []model.Zone
	for _, z := range f.byID {
		if z.UserID == userID {
			out = append(out, z)
		}
	}
	return out, nil
}

func (f *fakeZoneRepo) Get(_ context.Context, id, userID string) (model.Zone, error) {
	zone, exists := f.byID[id]
	if !exists || zone.UserID != userID {
		return model.Zone{}, myerrors.ErrNotFound
	}
	return zone, nil
}

func (f *fakeZoneRepo) Create(_ context.Context, zone model.Zone) (model.Zone, error) {
	zone.ID = fmt.Sprintf("zone-%d", len(f.byID)+1)
	f.byID[zone.ID] = zone
	return zone, nil
}

func (f *fakeZoneRepo) Update(_ context.Context, zone model.Zone) (model.Zone, error) {
	if _, exists := f.byID[zone.ID]; !exists {
		return model.Zone{}, myerrors.ErrNotFound
	}
	f.byID[zone.ID] = zone
	return zone, nil
}

func (f *fakeZoneRepo) Delete(_ context.Context, id, userID string) error {
	zone, exists := f.byID[id]
	if !exists || zone.UserID != userID {
		return myerrors.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type recordedChange struct {
	entityType, entityID, action string
}

// fakeChangeLog satisfies ports.IChangeLogService and remembers every
// Record call.
type fakeChangeLog struct {
	records []recordedChange
}

func (f *fakeChangeLog) List(_ context.Context, _ string) ([]model.ChangeEntry, error) {
	return nil, nil
}

func (f *fakeChangeLog) Record(_ context.Context, _, entityType, entityID, action string) {
	f.records = append(f.records, recordedChange{entityType, entityID, action})
}

// fakeRelay satisfies ports.IRelay and remembers every publish.
type fakeRelay struct {
	published []websocketdto.LocationUpdate
}

func (f *fakeRelay) Publish(_ context.Context, update websocketdto.LocationUpdate) {
	f.published = append(f.published, update)
}
