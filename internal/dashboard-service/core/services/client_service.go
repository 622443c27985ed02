package services

import (
	"context"
	"fmt"

	"delivery-track/internal/dashboard-service/core/domain/dto"
	"delivery-track/internal/dashboard-service/core/domain/model"
	"delivery-track/internal/dashboard-service/core/ports"
	"delivery-track/internal/mylogger"
)

type ClientService struct {
	clientRepo ports.IClientRepo
	changeLog  ports.IChangeLogService
	mylog      mylogger.Logger
}

func NewClientService(clientRepo ports.IClientRepo, changeLog ports.IChangeLogService, mylog mylogger.Logger) *ClientService {
	return &ClientService{
		clientRepo: clientRepo,
		changeLog:  changeLog,
		mylog:      mylog,
	}
}

func (cs *ClientService) List(ctx context.Context, userID string) ([]model.Client, error) {
	return cs.clientRepo.List(ctx, userID)
}

func (cs *ClientService) Create(ctx context.Context, userID string, req dto.CreateClientRequest) (model.Client, error) {
	if err := req.Location.Validate(); err != nil {
		return model.Client{}, err
	}

	client, err := cs.clientRepo.Create(ctx, model.Client{
		Name:     req.Name,
		Address:  req.Address,
		Phone:    req.Phone,
		Location: req.Location,
		UserID:   userID,
	})
	if err != nil {
		return model.Client{}, fmt.Errorf("create client: %w", err)
	}

	cs.changeLog.Record(ctx, userID, "client", client.ID, model.ChangeActionCreate)
	return client, nil
}

func (cs *ClientService) Update(ctx context.Context, id, userID string, req dto.UpdateClientRequest) (model.Client, error) {
	client, err := cs.clientRepo.Get(ctx, id, userID)
	if err != nil {
		return model.Client{}, err
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Location != nil {
		if err := req.Location.Validate(); err != nil {
			return model.Client{}, err
		}
		client.Location = *req.Location
	}

	updated, err := cs.clientRepo.Update(ctx, client)
	if err != nil {
		return model.Client{}, fmt.Errorf("update client: %w", err)
	}

	cs.changeLog.Record(ctx, userID, "client", id, model.ChangeActionUpdate)
	return updated, nil
}

func (cs *ClientService) Delete(ctx context.Context, id, userID string) error {
	if err := cs.clientRepo.Delete(ctx, id, userID); err != nil {
		return err
	}
	cs.changeLog.Record(ctx, userID, "client", id, model.ChangeActionDelete)
	return nil
}
