package services

import (
	"context"
	"errors"
	"fmt"

	"delivery-track/internal/dashboard-service/core/domain/dto"
	"delivery-track/internal/dashboard-service/core/domain/model"
	"delivery-track/internal/dashboard-service/core/myerrors"
	"delivery-track/internal/dashboard-service/core/ports"
	"delivery-track/internal/mylogger"
)

type DeliveryService struct {
	deliveryRepo ports.IDeliveryRepo
	clientRepo   ports.IClientRepo
	driverRepo   ports.IDriverRepo
	changeLog    ports.IChangeLogService
	mylog        mylogger.Logger
}

func NewDeliveryService(
	deliveryRepo ports.IDeliveryRepo,
	clientRepo ports.IClientRepo,
	driverRepo ports.IDriverRepo,
	changeLog ports.IChangeLogService,
	mylog mylogger.Logger,
) *DeliveryService {
	return &DeliveryService{
		deliveryRepo: deliveryRepo,
		clientRepo:   clientRepo,
		driverRepo:   driverRepo,
		changeLog:    changeLog,
		mylog:        mylog,
	}
}

func (ds *DeliveryService) List(ctx context.Context, userID string) ([]model.DeliveryDetails, error) {
	return ds.deliveryRepo.List(ctx, userID)
}

func (ds *DeliveryService) Create(ctx context.Context, userID string, req dto.CreateDeliveryRequest) (model.Delivery, error) {
	if err := req.Location.Validate(); err != nil {
		return model.Delivery{}, err
	}

	// A delivery cannot exist without an owning client.
	if _, err := ds.clientRepo.Get(ctx, req.ClientID, userID); err != nil {
		if errors.Is(err, myerrors.ErrNotFound) {
			return model.Delivery{}, myerrors.ErrUnknownClient
		}
		return model.Delivery{}, fmt.Errorf("resolve client: %w", err)
	}

	priority := req.Priority
	if priority == "" {
		priority = model.DeliveryPriorityNormal
	}

	delivery, err := ds.deliveryRepo.Create(ctx, model.Delivery{
		Description: req.Description,
		Priority:    priority,
		Status:      model.DeliveryStatusPending,
		Location:    req.Location,
		ClientID:    req.ClientID,
		UserID:      userID,
	})
	if err != nil {
		return model.Delivery{}, fmt.Errorf("create delivery: %w", err)
	}

	ds.changeLog.Record(ctx, userID, "delivery", delivery.ID, model.ChangeActionCreate)
	return delivery, nil
}

func (ds *DeliveryService) Update(ctx context.Context, id, userID string, req dto.UpdateDeliveryRequest) (model.Delivery, error) {
	delivery, err := ds.deliveryRepo.Get(ctx, id, userID)
	if err != nil {
		return model.Delivery{}, err
	}

	if req.Description != nil {
		delivery.Description = *req.Description
	}
	if req.Priority != nil {
		delivery.Priority = *req.Priority
	}
	if req.Status != nil {
		// Membership is validated at the boundary; transitions are not
		// enforced.
		delivery.Status = *req.Status
	}
	if req.ClientID != nil {
		if _, err := ds.clientRepo.Get(ctx, *req.ClientID, userID); err != nil {
			if errors.Is(err, myerrors.ErrNotFound) {
				return model.Delivery{}, myerrors.ErrUnknownClient
			}
			return model.Delivery{}, fmt.Errorf("resolve client: %w", err)
		}
		delivery.ClientID = *req.ClientID
	}
	if req.DriverID != nil {
		if _, err := ds.driverRepo.Get(ctx, *req.DriverID, userID); err != nil {
			return model.Delivery{}, err
		}
		delivery.DriverID = req.DriverID
	}
	if req.Location != nil {
		if err := req.Location.Validate(); err != nil {
			return model.Delivery{}, err
		}
		delivery.Location = *req.Location
	}

	updated, err := ds.deliveryRepo.Update(ctx, delivery)
	if err != nil {
		return model.Delivery{}, fmt.Errorf("update delivery: %w", err)
	}

	ds.changeLog.Record(ctx, userID, "delivery", id, model.ChangeActionUpdate)
	return updated, nil
}

func (ds *DeliveryService) Delete(ctx context.Context, id, userID string) error {
	if err := ds.deliveryRepo.Delete(ctx, id, userID); err != nil {
		return err
	}
	ds.changeLog.Record(ctx, userID, "delivery", id, model.ChangeActionDelete)
	return nil
}
