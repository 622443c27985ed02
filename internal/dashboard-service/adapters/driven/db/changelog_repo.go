package db

import (
	"context"
	"fmt"

	"delivery-track/internal/dashboard-service/core/domain/model"
)

type ChangeLogRepo struct {
	db *DB
}

func NewChangeLogRepo(db *DB) *ChangeLogRepo {
	return &ChangeLogRepo{db: db}
}

func (cr *ChangeLogRepo) List(ctx context.Context, userID string, limit int) ([]model.ChangeEntry, error) {
	q := `
		SELECT id, entity_type, entity_id, action, user_id, created_at
		FROM change_log
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := cr.db.Pool().Query(ctx, q, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list change log: %w", err)
	}
	defer rows.Close()

	entries := []model.ChangeEntry{}
	for rows.Next() {
		var e model.ChangeEntry
		if err := rows.Scan(&e.ID, &e.EntityType, &e.EntityID, &e.Action, &e.UserID, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (cr *ChangeLogRepo) Append(ctx context.Context, entry model.ChangeEntry) error {
	q := `
		INSERT INTO change_log (entity_type, entity_id, action, user_id)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := cr.db.Pool().Exec(ctx, q, entry.EntityType, entry.EntityID, entry.Action, entry.UserID); err != nil {
		return fmt.Errorf("append change entry: %w", err)
	}
	return nil
}
