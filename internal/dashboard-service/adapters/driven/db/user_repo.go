package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"delivery-track/internal/dashboard-service/core/domain/model"
	"delivery-track/internal/dashboard-service/core/myerrors"
)

type UserRepo struct {
	db *DB
}

func NewUserRepo(db *DB) *UserRepo {
	return &UserRepo{db: db}
}

func (ur *UserRepo) Create(ctx context.Context, user model.User) (model.User, error) {
	q := `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	row := ur.db.Pool().QueryRow(ctx, q, user.Name, user.Email, user.PasswordHash)
	if err := row.Scan(&user.ID, &user.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.User{}, myerrors.ErrEmailRegistered
		}
		return model.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return user, nil
}

func (ur *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	q := `
		SELECT
			u.id,
			u.name,
			u.email,
			u.password_hash,
			u.created_at
		FROM
			users u
		WHERE
			u.email = $1
	`

	var u model.User
	err := ur.db.Pool().QueryRow(ctx, q, email).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, myerrors.ErrUnknownEmail
		}
		return model.User{}, err
	}

	return u, nil
}
