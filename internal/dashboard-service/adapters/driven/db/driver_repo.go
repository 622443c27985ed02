package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"delivery-track/internal/dashboard-service/core/domain/model"
	"delivery-track/internal/dashboard-service/core/myerrors"
)

type DriverRepo struct {
	db *DB
}

func NewDriverRepo(db *DB) *DriverRepo {
	return &DriverRepo{db: db}
}

func (dr *DriverRepo) List(ctx context.Context, userID string) ([]model.Driver, error) {
	q := `
		SELECT id, name, vehicle, capacity, status, current_location, user_id, created_at
		FROM drivers
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := dr.db.Pool().Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	defer rows.Close()

	drivers := []model.Driver{}
	for rows.Next() {
		var d model.Driver
		var location []byte
		if err := rows.Scan(&d.ID, &d.Name, &d.Vehicle, &d.Capacity, &d.Status, &location, &d.UserID, &d.CreatedAt); err != nil {
			return nil, err
		}
		if err := decodePoint(location, &d.CurrentLocation); err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}
	return drivers, rows.Err()
}

func (dr *DriverRepo) Get(ctx context.Context, id, userID string) (model.Driver, error) {
	q := `
		SELECT id, name, vehicle, capacity, status, current_location, user_id, created_at
		FROM drivers
		WHERE id = $1 AND user_id = $2
	`

	var d model.Driver
	var location []byte
	err := dr.db.Pool().QueryRow(ctx, q, id, userID).Scan(
		&d.ID, &d.Name, &d.Vehicle, &d.Capacity, &d.Status, &location, &d.UserID, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Driver{}, myerrors.ErrNotFound
		}
		return model.Driver{}, err
	}
	if err := decodePoint(location, &d.CurrentLocation); err != nil {
		return model.Driver{}, err
	}
	return d, nil
}

func (dr *DriverRepo) Create(ctx context.Context, driver model.Driver) (model.Driver, error) {
	location, err := encodeJSON(driver.CurrentLocation)
	if err != nil {
		return model.Driver{}, err
	}

	q := `
		INSERT INTO drivers (name, vehicle, capacity, status, current_location, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	row := dr.db.Pool().QueryRow(ctx, q,
		driver.Name, driver.Vehicle, driver.Capacity, driver.Status, location, driver.UserID,
	)
	if err := row.Scan(&driver.ID, &driver.CreatedAt); err != nil {
		return model.Driver{}, fmt.Errorf("insert driver: %w", err)
	}
	return driver, nil
}

func (dr *DriverRepo) Update(ctx context.Context, driver model.Driver) (model.Driver, error) {
	location, err := encodeJSON(driver.CurrentLocation)
	if err != nil {
		return model.Driver{}, err
	}

	q := `
		UPDATE drivers
		SET name = $1, vehicle = $2, capacity = $3, status = $4, current_location = $5
		WHERE id = $6 AND user_id = $7
		RETURNING created_at
	`

	row := dr.db.Pool().QueryRow(ctx, q,
		driver.Name, driver.Vehicle, driver.Capacity, driver.Status, location, driver.ID, driver.UserID,
	)
	if err := row.Scan(&driver.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Driver{}, myerrors.ErrNotFound
		}
		return model.Driver{}, fmt.Errorf("update driver: %w", err)
	}
	return driver, nil
}

func (dr *DriverRepo) Delete(ctx context.Context, id, userID string) error {
	tag, err := dr.db.Pool().Exec(ctx, `DELETE FROM drivers WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete driver: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return myerrors.ErrNotFound
	}
	return nil
}
