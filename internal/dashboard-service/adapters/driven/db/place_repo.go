package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"delivery-track/internal/dashboard-service/core/domain/model"
	"delivery-track/internal/dashboard-service/core/myerrors"
)

type PlaceRepo struct {
	db *DB
}

func NewPlaceRepo(db *DB) *PlaceRepo {
	return &PlaceRepo{db: db}
}

func (pr *PlaceRepo) List(ctx context.Context, userID string) ([]model.Place, error) {
	q := `
		SELECT id, name, description, location, user_id, created_at
		FROM places
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := pr.db.Pool().Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("list places: %w", err)
	}
	defer rows.Close()

	places := []model.Place{}
	for rows.Next() {
		var p model.Place
		var location []byte
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &location, &p.UserID, &p.CreatedAt); err != nil {
			return nil, err
		}
		if err := decodePoint(location, &p.Location); err != nil {
			return nil, err
		}
		places = append(places, p)
	}
	return places, rows.Err()
}

func (pr *PlaceRepo) Get(ctx context.Context, id, userID string) (model.Place, error) {
	q := `
		SELECT id, name, description, location, user_id, created_at
		FROM places
		WHERE id = $1 AND user_id = $2
	`

	var p model.Place
	var location []byte
	err := pr.db.Pool().QueryRow(ctx, q, id, userID).Scan(
		&p.ID, &p.Name, &p.Description, &location, &p.UserID, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Place{}, myerrors.ErrNotFound
		}
		return model.Place{}, err
	}
	if err := decodePoint(location, &p.Location); err != nil {
		return model.Place{}, err
	}
	return p, nil
}

func (pr *PlaceRepo) Create(ctx context.Context, place model.Place) (model.Place, error) {
	location, err := encodeJSON(place.Location)
	if err != nil {
		return model.Place{}, err
	}

	q := `
		INSERT INTO places (name, description, location, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	row := pr.db.Pool().QueryRow(ctx, q, place.Name, place.Description, location, place.UserID)
	if err := row.Scan(&place.ID, &place.CreatedAt); err != nil {
		return model.Place{}, fmt.Errorf("insert place: %w", err)
	}
	return place, nil
}

func (pr *PlaceRepo) Update(ctx context.Context, place model.Place) (model.Place, error) {
	location, err := encodeJSON(place.Location)
	if err != nil {
		return model.Place{}, err
	}

	q := `
		UPDATE places
		SET name = $1, description = $2, location = $3
		WHERE id = $4 AND user_id = $5
		RETURNING created_at
	`

	row := pr.db.Pool().QueryRow(ctx, q, place.Name, place.Description, location, place.ID, place.UserID)
	if err := row.Scan(&place.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Place{}, myerrors.ErrNotFound
		}
		return model.Place{}, fmt.Errorf("update place: %w", err)
	}
	return place, nil
}

func (pr *PlaceRepo) Delete(ctx context.Context, id, userID string) error {
	tag, err := pr.db.Pool().Exec(ctx, `DELETE FROM places WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete place: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return myerrors.ErrNotFound
	}
	return nil
}
