package services

import (
	"context"

	"delivery-track/internal/dashboard-service/core/domain/model"
	"delivery-track/internal/dashboard-service/core/ports"
	"delivery-track/internal/mylogger"
)

const changeLogLimit = 200

type ChangeLogService struct {
	changeLogRepo ports.IChangeLogRepo
	mylog         mylogger.Logger
}

func NewChangeLogService(changeLogRepo ports.IChangeLogRepo, mylog mylogger.Logger) *ChangeLogService {
	return &ChangeLogService{
		changeLogRepo: changeLogRepo,
		mylog:         mylog,
	}
}

func (cs *ChangeLogService) List(ctx context.Context, userID string) ([]model.ChangeEntry, error) {
	return cs.changeLogRepo.List(ctx, userID, changeLogLimit)
}

// Record appends an audit entry. A failed append never fails the mutation
// it describes; it is logged and dropped.
func (cs *ChangeLogService) Record(ctx context.Context, userID, entityType, entityID, action string) {
	err := cs.changeLogRepo.Append(ctx, model.ChangeEntry{
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		UserID:     userID,
	})
	if err != nil {
		cs.mylog.Action("record_change").Warn("failed to append change entry",
			"entity_type", entityType, "entity_id", entityID, "err", err.Error())
	}
}
