package creds

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hackline/internal/common"
	"hackline/internal/dbx"
)

const (
	keyUsername = "username"
	keyToken    = "token"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func set(ctx context.Context, tx dbx.DBTX, key, value string) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set credentials[%s]: %w", key, err)
	}
	return nil
}

func get(ctx context.Context, tx dbx.DBTX, key string) (string, error) {
	var value string
	err := tx.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("credentials[%s]: %w", key, common.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to get credentials[%s]: %w", key, err)
	}
	return value, nil
}

// Save writes username and token in a single transaction so a crash cannot
// leave a token without its username.
func (r *SQLiteRepository) Save(ctx context.Context, username, token string) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := set(ctx, tx, keyUsername, username); err != nil {
			return err
		}
		return set(ctx, tx, keyToken, token)
	})
}

func (r *SQLiteRepository) Load(ctx context.Context) (string, string, error) {
	username, err := get(ctx, r.db, keyUsername)
	if err != nil {
		return "", "", err
	}
	token, err := get(ctx, r.db, keyToken)
	if err != nil {
		return "", "", err
	}
	return username, token, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM credentials`)
	if err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	return nil
}
