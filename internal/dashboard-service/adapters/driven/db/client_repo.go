package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"delivery-track/internal/dashboard-service/core/domain/model"
	"delivery-track/internal/dashboard-service/core/myerrors"
)

type ClientRepo struct {
	db *DB
}

func NewClientRepo(db *DB) *ClientRepo {
	return &ClientRepo{db: db}
}

func (cr *ClientRepo) List(ctx context.Context, userID string) ([]model.Client, error) {
	q := `
		SELECT id, name, address, phone, location, user_id, created_at
		FROM clients
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := cr.db.Pool().Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	clients := []model.Client{}
	for rows.Next() {
		var c model.Client
		var location []byte
		if err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.Phone, &location, &c.UserID, &c.CreatedAt); err != nil {
			return nil, err
		}
		if err := decodePoint(location, &c.Location); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (cr *ClientRepo) Get(ctx context.Context, id, userID string) (model.Client, error) {
	q := `
		SELECT id, name, address, phone, location, user_id, created_at
		FROM clients
		WHERE id = $1 AND user_id = $2
	`

	var c model.Client
	var location []byte
	err := cr.db.Pool().QueryRow(ctx, q, id, userID).Scan(
		&c.ID, &c.Name, &c.Address, &c.Phone, &location, &c.UserID, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Client{}, myerrors.ErrNotFound
		}
		return model.Client{}, err
	}
	if err := decodePoint(location, &c.Location); err != nil {
		return model.Client{}, err
	}
	return c, nil
}

func (cr *ClientRepo) Create(ctx context.Context, client model.Client) (model.Client, error) {
	location, err := encodeJSON(client.Location)
	if err != nil {
		return model.Client{}, err
	}

	q := `
		INSERT INTO clients (name, address, phone, location, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	row := cr.db.Pool().QueryRow(ctx, q, client.Name, client.Address, client.Phone, location, client.UserID)
	if err := row.Scan(&client.ID, &client.CreatedAt); err != nil {
		return model.Client{}, fmt.Errorf("insert client: %w", err)
	}
	return client, nil
}

func (cr *ClientRepo) Update(ctx context.Context, client model.Client) (model.Client, error) {
	location, err := encodeJSON(client.Location)
	if err != nil {
		return model.Client{}, err
	}

	q := `
		UPDATE clients
		SET name = $1, address = $2, phone = $3, location = $4
		WHERE id = $5 AND user_id = $6
		RETURNING created_at
	`

	row := cr.db.Pool().QueryRow(ctx, q, client.Name, client.Address, client.Phone, location, client.ID, client.UserID)
	if err := row.Scan(&client.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Client{}, myerrors.ErrNotFound
		}
		return model.Client{}, fmt.Errorf("update client: %w", err)
	}
	return client, nil
}

func (cr *ClientRepo) Delete(ctx context.Context, id, userID string) error {
	tag, err := cr.db.Pool().Exec(ctx, `DELETE FROM clients WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return myerrors.ErrNotFound
	}
	return nil
}
