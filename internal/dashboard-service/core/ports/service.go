package ports

import (
	"context"

	"delivery-track/internal/dashboard-service/core/domain/dto"
	"delivery-track/internal/dashboard-service/core/domain/model"
)

type IAuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error)
	ValidateToken(token string) (string, error)
}

type IPlaceService interface {
	List(ctx context.Context, userID string) ([]model.Place, error)
	Create(ctx context.Context, userID string, req dto.CreatePlaceRequest) (model.Place, error)
	Update(ctx context.Context, id, userID string, req dto.UpdatePlaceRequest) (model.Place, error)
	Delete(ctx context.Context, id, userID string) error
}

type IClientService interface {
	List(ctx context.Context, userID string) ([]model.Client, error)
	Create(ctx context.Context, userID string, req dto.CreateClientRequest) (model.Client, error)
	Update(ctx context.Context, id, userID string, req dto.UpdateClientRequest) (model.Client, error)
	Delete(ctx context.Context, id, userID string) error
}

type IDeliveryService interface {
	List(ctx context.Context, userID string) ([]model.DeliveryDetails, error)
	Create(ctx context.Context, userID string, req dto.CreateDeliveryRequest) (model.Delivery, error)
	Update(ctx context.Context, id, userID string, req dto.UpdateDeliveryRequest) (model.Delivery, error)
	Delete(ctx context.Context, id, userID string) error
}

type IDriverService interface {
	List(ctx context.Context, userID string) ([]model.Driver, error)
	Create(ctx context.Context, userID string, req dto.CreateDriverRequest) (model.Driver, error)
	Update(ctx context.Context, id, userID string, req dto.UpdateDriverRequest) (model.Driver, error)
	Delete(ctx context.Context, id, userID string) error
}

type IZoneService interface {
	List(ctx context.Context, userID string) ([]model.Zone, error)
	Create(ctx context.Context, userID string, req dto.CreateZoneRequest) (model.Zone, error)
	Update(ctx context.Context, id, userID string, req dto.UpdateZoneRequest) (model.Zone, error)
	Delete(ctx context.Context, id, userID string) error
}

type IChangeLogService interface {
	List(ctx context.Context, userID string) ([]model.ChangeEntry, error)
	Record(ctx context.Context, userID, entityType, entityID, action string)
}

type IRouteService interface {
	Plan(ctx context.Context, req dto.RouteRequest) (dto.RoutePlan, error)
}
