package services

import (
	"context"
	"fmt"

	"delivery-track/internal/dashboard-service/core/domain/dto"
	"delivery-track/internal/dashboard-service/core/domain/model"
	websocketdto "delivery-track/internal/dashboard-service/core/domain/websocket_dto"
	"delivery-track/internal/dashboard-service/core/ports"
	"delivery-track/internal/mylogger"
)

type DriverService struct {
	driverRepo ports.IDriverRepo
	relay      ports.IRelay
	changeLog  ports.IChangeLogService
	mylog      mylogger.Logger
}

func NewDriverService(driverRepo ports.IDriverRepo, relay ports.IRelay, changeLog ports.IChangeLogService, mylog mylogger.Logger) *DriverService {
	return &DriverService{
		driverRepo: driverRepo,
		relay:      relay,
		changeLog:  changeLog,
		mylog:      mylog,
	}
}

func (ds *DriverService) List(ctx context.Context, userID string) ([]model.Driver, error) {
	return ds.driverRepo.List(ctx, userID)
}

func (ds *DriverService) Create(ctx context.Context, userID string, req dto.CreateDriverRequest) (model.Driver, error) {
	capacity := model.DefaultDriverCapacity
	if req.Capacity != nil {
		capacity = *req.Capacity
	}

	// Until the driver is placed on the map it sits at the origin point.
	location := model.Origin()
	if req.CurrentLocation != nil {
		if err := req.CurrentLocation.Validate(); err != nil {
			return model.Driver{}, err
		}
		location = *req.CurrentLocation
	}

	driver, err := ds.driverRepo.Create(ctx, model.Driver{
		Name:            req.Name,
		Vehicle:         req.Vehicle,
		Capacity:        capacity,
		Status:          model.DriverStatusAvailable,
		CurrentLocation: location,
		UserID:          userID,
	})
	if err != nil {
		return model.Driver{}, fmt.Errorf("create driver: %w", err)
	}

	ds.changeLog.Record(ctx, userID, "driver", driver.ID, model.ChangeActionCreate)
	return driver, nil
}

func (ds *DriverService) Update(ctx context.Context, id, userID string, req dto.UpdateDriverRequest) (model.Driver, error) {
	driver, err := ds.driverRepo.Get(ctx, id, userID)
	if err != nil {
		return model.Driver{}, err
	}

	if req.Name != nil {
		driver.Name = *req.Name
	}
	if req.Vehicle != nil {
		driver.Vehicle = *req.Vehicle
	}
	if req.Capacity != nil {
		driver.Capacity = *req.Capacity
	}
	if req.Status != nil {
		driver.Status = *req.Status
	}
	locationChanged := false
	if req.CurrentLocation != nil {
		if err := req.CurrentLocation.Validate(); err != nil {
			return model.Driver{}, err
		}
		driver.CurrentLocation = *req.CurrentLocation
		locationChanged = true
	}

	updated, err := ds.driverRepo.Update(ctx, driver)
	if err != nil {
		return model.Driver{}, fmt.Errorf("update driver: %w", err)
	}

	// An update that moved the driver is announced on the relay so every
	// dashboard session refreshes its driver view. Fire-and-forget.
	if locationChanged {
		ds.relay.Publish(ctx, websocketdto.LocationUpdate{
			DriverID: updated.ID,
			Lat:      updated.CurrentLocation.Lat(),
			Lng:      updated.CurrentLocation.Lon(),
		})
	}

	ds.changeLog.Record(ctx, userID, "driver", id, model.ChangeActionUpdate)
	return updated, nil
}

func (ds *DriverService) Delete(ctx context.Context, id, userID string) error {
	if err := ds.driverRepo.Delete(ctx, id, userID); err != nil {
		return err
	}
	ds.changeLog.Record(ctx, userID, "driver", id, model.ChangeActionDelete)
	return nil
}
