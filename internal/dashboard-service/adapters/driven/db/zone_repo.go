package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"delivery-track/internal/dashboard-service/core/domain/model"
	"delivery-track/internal/dashboard-service/core/myerrors"
)

type ZoneRepo struct {
	db *DB
}

func NewZoneRepo(db *DB) *ZoneRepo {
	return &ZoneRepo{db: db}
}

func (zr *ZoneRepo) List(ctx context.Context, userID string) ([]model.Zone, error) {
	q := `
		SELECT id, name, description, geometry, user_id, created_at
		FROM zones
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := zr.db.Pool().Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("list zones: %w", err)
	}
	defer rows.Close()

	zones := []model.Zone{}
	for rows.Next() {
		var z model.Zone
		var geometry []byte
		if err := rows.Scan(&z.ID, &z.Name, &z.Description, &geometry, &z.UserID, &z.CreatedAt); err != nil {
			return nil, err
		}
		if err := decodePolygon(geometry, &z.Geometry); err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}
	return zones, rows.Err()
}

func (zr *ZoneRepo) Get(ctx context.Context, id, userID string) (model.Zone, error) {
	q := `
		SELECT id, name, description, geometry, user_id, created_at
		FROM zones
		WHERE id = $1 AND user_id = $2
	`

	var z model.Zone
	var geometry []byte
	err := zr.db.Pool().QueryRow(ctx, q, id, userID).Scan(
		&z.ID, &z.Name, &z.Description, &geometry, &z.UserID, &z.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Zone{}, myerrors.ErrNotFound
		}
		return model.Zone{}, err
	}
	if err := decodePolygon(geometry, &z.Geometry); err != nil {
		return model.Zone{}, err
	}
	return z, nil
}

func (zr *ZoneRepo) Create(ctx context.Context, zone model.Zone) (model.Zone, error) {
	geometry, err := encodeJSON(zone.Geometry)
	if err != nil {
		return model.Zone{}, err
	}

	q := `
		INSERT INTO zones (name, description, geometry, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	row := zr.db.Pool().QueryRow(ctx, q, zone.Name, zone.Description, geometry, zone.UserID)
	if err := row.Scan(&zone.ID, &zone.CreatedAt); err != nil {
		return model.Zone{}, fmt.Errorf("insert zone: %w", err)
	}
	return zone, nil
}

func (zr *ZoneRepo) Update(ctx context.Context, zone model.Zone) (model.Zone, error) {
	geometry, err := encodeJSON(zone.Geometry)
	if err != nil {
		return model.Zone{}, err
	}

	q := `
		UPDATE zones
		SET name = $1, description = $2, geometry = $3
		WHERE id = $4 AND user_id = $5
		RETURNING created_at
	`

	row := zr.db.Pool().QueryRow(ctx, q, zone.Name, zone.Description, geometry, zone.ID, zone.UserID)
	if err := row.Scan(&zone.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Zone{}, myerrors.ErrNotFound
		}
		return model.Zone{}, fmt.Errorf("update zone: %w", err)
	}
	return zone, nil
}

func (zr *ZoneRepo) Delete(ctx context.Context, id, userID string) error {
	tag, err := zr.db.Pool().Exec(ctx, `DELETE FROM zones WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete zone: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return myerrors.ErrNotFound
	}
	return nil
}
