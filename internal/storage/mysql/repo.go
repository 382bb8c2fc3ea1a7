package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"japan_hotel_booking/internal/adapters/observability"
)

// Store persists storefront state as JSON documents in a single key-value table.
type Store struct{ db *sql.DB }

func New(db *sql.DB) *Store { return &Store{db: db} }

func (s *Store) Get(ctx context.Context, key string, dst any) (bool, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx, getEntrySQL, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		observability.ObserveStore("mysql", "get", nil, false)
		return false, nil
	}
	observability.ObserveStore("mysql", "get", err, true)
	if err != nil {
		return false, fmt.Errorf("select %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (s *Store) Set(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	_, err = s.db.ExecContext(ctx, upsertEntrySQL, key, string(b))
	observability.ObserveStore("mysql", "set", err, true)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}
