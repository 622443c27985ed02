package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"delivery-track/internal/dashboard-service/core/domain/model"
	"delivery-track/internal/dashboard-service/core/myerrors"
)

type DeliveryRepo struct {
	db *DB
}

func NewDeliveryRepo(db *DB) *DeliveryRepo {
	return &DeliveryRepo{db: db}
}

// List resolves the referenced client and driver into each row. The client
// join is inner (a delivery cannot exist without one), the driver join is
// left (assignment is optional).
func (dr *DeliveryRepo) List(ctx context.Context, userID string) ([]model.DeliveryDetails, error) {
	q := `
		SELECT
			d.id, d.description, d.priority, d.status, d.location,
			d.client_id, d.driver_id, d.user_id, d.created_at,
			c.id, c.name, c.address, c.phone, c.location, c.user_id, c.created_at,
			v.id, v.name, v.vehicle, v.capacity, v.status, v.current_location, v.user_id, v.created_at
		FROM deliveries d
		JOIN clients c ON c.id = d.client_id
		LEFT JOIN drivers v ON v.id = d.driver_id
		WHERE d.user_id = $1
		ORDER BY d.created_at DESC
	`

	rows, err := dr.db.Pool().Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	defer rows.Close()

	deliveries := []model.DeliveryDetails{}
	for rows.Next() {
		var (
			dd               model.DeliveryDetails
			client           model.Client
			deliveryLocation []byte
			clientLocation   []byte

			driverID        *string
			driverName      *string
			driverVehicle   *string
			driverCapacity  *int
			driverStatus    *string
			driverLocation  []byte
			driverUserID    *string
			driverCreatedAt *time.Time
		)

		err := rows.Scan(
			&dd.ID, &dd.Description, &dd.Priority, &dd.Status, &deliveryLocation,
			&dd.ClientID, &dd.DriverID, &dd.UserID, &dd.CreatedAt,
			&client.ID, &client.Name, &client.Address, &client.Phone, &clientLocation, &client.UserID, &client.CreatedAt,
			&driverID, &driverName, &driverVehicle, &driverCapacity, &driverStatus, &driverLocation, &driverUserID, &driverCreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if err := decodePoint(deliveryLocation, &dd.Location); err != nil {
			return nil, err
		}
		if err := decodePoint(clientLocation, &client.Location); err != nil {
			return nil, err
		}
		dd.Client = &client

		if driverID != nil {
			driver := model.Driver{
				ID:        *driverID,
				Name:      *driverName,
				Vehicle:   *driverVehicle,
				Capacity:  *driverCapacity,
				Status:    *driverStatus,
				UserID:    *driverUserID,
				CreatedAt: *driverCreatedAt,
			}
			if err := decodePoint(driverLocation, &driver.CurrentLocation); err != nil {
				return nil, err
			}
			dd.Driver = &driver
		}

		deliveries = append(deliveries, dd)
	}
	return deliveries, rows.Err()
}

func (dr *DeliveryRepo) Get(ctx context.Context, id, userID string) (model.Delivery, error) {
	q := `
		SELECT id, description, priority, status, location, client_id, driver_id, user_id, created_at
		FROM deliveries
		WHERE id = $1 AND user_id = $2
	`

	var d model.Delivery
	var location []byte
	err := dr.db.Pool().QueryRow(ctx, q, id, userID).Scan(
		&d.ID, &d.Description, &d.Priority, &d.Status, &location,
		&d.ClientID, &d.DriverID, &d.UserID, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Delivery{}, myerrors.ErrNotFound
		}
		return model.Delivery{}, err
	}
	if err := decodePoint(location, &d.Location); err != nil {
		return model.Delivery{}, err
	}
	return d, nil
}

func (dr *DeliveryRepo) Create(ctx context.Context, delivery model.Delivery) (model.Delivery, error) {
	location, err := encodeJSON(delivery.Location)
	if err != nil {
		return model.Delivery{}, err
	}

	q := `
		INSERT INTO deliveries (description, priority, status, location, client_id, driver_id, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	row := dr.db.Pool().QueryRow(ctx, q,
		delivery.Description, delivery.Priority, delivery.Status, location,
		delivery.ClientID, delivery.DriverID, delivery.UserID,
	)
	if err := row.Scan(&delivery.ID, &delivery.CreatedAt); err != nil {
		return model.Delivery{}, fmt.Errorf("insert delivery: %w", err)
	}
	return delivery, nil
}

func (dr *DeliveryRepo) Update(ctx context.Context, delivery model.Delivery) (model.Delivery, error) {
	location, err := encodeJSON(delivery.Location)
	if err != nil {
		return model.Delivery{}, err
	}

	q := `
		UPDATE deliveries
		SET description = $1, priority = $2, status = $3, location = $4, client_id = $5, driver_id = $6
		WHERE id = $7 AND user_id = $8
		RETURNING created_at
	`

	row := dr.db.Pool().QueryRow(ctx, q,
		delivery.Description, delivery.Priority, delivery.Status, location,
		delivery.ClientID, delivery.DriverID, delivery.ID, delivery.UserID,
	)
	if err := row.Scan(&delivery.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Delivery{}, myerrors.ErrNotFound
		}
		return model.Delivery{}, fmt.Errorf("update delivery: %w", err)
	}
	return delivery, nil
}

func (dr *DeliveryRepo) Delete(ctx context.Context, id, userID string) error {
	tag, err := dr.db.Pool().Exec(ctx, `DELETE FROM deliveries WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete delivery: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return myerrors.ErrNotFound
	}
	return nil
}
