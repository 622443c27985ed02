package services

import (
	"context"
	"fmt"

	"delivery-track/internal/dashboard-service/core/domain/dto"
	"delivery-track/internal/dashboard-service/core/domain/model"
	"delivery-track/internal/dashboard-service/core/ports"
	"delivery-track/internal/mylogger"
)

type PlaceService struct {
	placeRepo ports.IPlaceRepo
	changeLog ports.IChangeLogService
	mylog     mylogger.Logger
}

func NewPlaceService(placeRepo ports.IPlaceRepo, changeLog ports.IChangeLogService, mylog mylogger.Logger) *PlaceService {
	return &PlaceService{
		placeRepo: placeRepo,
		changeLog: changeLog,
		mylog:     mylog,
	}
}

func (ps *PlaceService) List(ctx context.Context, userID string) ([]model.Place, error) {
	return ps.placeRepo.List(ctx, userID)
}

func (ps *PlaceService) Create(ctx context.Context, userID string, req dto.CreatePlaceRequest) (model.Place, error) {
	if err := req.Location.Validate(); err != nil {
		return model.Place{}, err
	}

	place, err := ps.placeRepo.Create(ctx, model.Place{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		UserID:      userID,
	})
	if err != nil {
		return model.Place{}, fmt.Errorf("create place: %w", err)
	}

	ps.changeLog.Record(ctx, userID, "place", place.ID, model.ChangeActionCreate)
	return place, nil
}

func (ps *PlaceService) Update(ctx context.Context, id, userID string, req dto.UpdatePlaceRequest) (model.Place, error) {
	place, err := ps.placeRepo.Get(ctx, id, userID)
	if err != nil {
		return model.Place{}, err
	}

	if req.Name != nil {
		place.Name = *req.Name
	}
	if req.Description != nil {
		place.Description = *req.Description
	}
	if req.Location != nil {
		if err := req.Location.Validate(); err != nil {
			return model.Place{}, err
		}
		place.Location = *req.Location
	}

	updated, err := ps.placeRepo.Update(ctx, place)
	if err != nil {
		return model.Place{}, fmt.Errorf("update place: %w", err)
	}

	ps.changeLog.Record(ctx, userID, "place", id, model.ChangeActionUpdate)
	return updated, nil
}

func (ps *PlaceService) Delete(ctx context.Context, id, userID string) error {
	if err := ps.placeRepo.Delete(ctx, id, userID); err != nil {
		return err
	}
	ps.changeLog.Record(ctx, userID, "place", id, model.ChangeActionDelete)
	return nil
}
