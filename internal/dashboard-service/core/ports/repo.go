package ports

import (
	"context"

	"delivery-track/internal/dashboard-service/core/domain/model"
)

type IUserRepo interface {
	Create(ctx context.Context, user model.User) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
}

// Entity repos are owner-scoped: every read and mutation carries the
// authenticated user's id and a row belonging to someone else behaves as
// missing.

type IPlaceRepo interface {
	List(ctx context.Context, userID string) ([]model.Place, error)
	Get(ctx context.Context, id, userID string) (model.Place, error)
	Create(ctx context.Context, place model.Place) (model.Place, error)
	Update(ctx context.Context, place model.Place) (model.Place, error)
	Delete(ctx context.Context, id, userID string) error
}

type IClientRepo interface {
	List(ctx context.Context, userID string) ([]model.Client, error)
	Get(ctx context.Context, id, userID string) (model.Client, error)
	Create(ctx context.Context, client model.Client) (model.Client, error)
	Update(ctx context.Context, client model.Client) (model.Client, error)
	Delete(ctx context.Context, id, userID string) error
}

type IDeliveryRepo interface {
	List(ctx context.Context, userID string) ([]model.DeliveryDetails, error)
	Get(ctx context.Context, id, userID string) (model.Delivery, error)
	Create(ctx context.Context, delivery model.Delivery) (model.Delivery, error)
	Update(ctx context.Context, delivery model.Delivery) (model.Delivery, error)
	Delete(ctx context.Context, id, userID string) error
}

type IDriverRepo interface {
	List(ctx context.Context, userID string) ([]model.Driver, error)
	Get(ctx context.Context, id, userID string) (model.Driver, error)
	Create(ctx context.Context, driver model.Driver) (model.Driver, error)
	Update(ctx context.Context, driver model.Driver) (model.Driver, error)
	Delete(ctx context.Context, id, userID string) error
}

type IZoneRepo interface {
	List(ctx context.Context, userID string) ([]model.Zone, error)
	Get(ctx context.Context, id, userID string) (model.Zone, error)
	Create(ctx context.Context, zone model.Zone) (model.Zone, error)
	Update(ctx context.Context, zone model.Zone) (model.Zone, error)
	Delete(ctx context.Context, id, userID string) error
}

type IChangeLogRepo interface {
	List(ctx context.Context, userID string, limit int) ([]model.ChangeEntry, error)
	Append(ctx context.Context, entry model.ChangeEntry) error
}
