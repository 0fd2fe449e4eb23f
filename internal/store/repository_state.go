package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/nutri-audit-sync/internal/logger"
)

// Well-known sync_state keys.
const (
	// KeyLastSuccessfulSync holds the RFC 3339 time the last fully
	// successful cycle finished.
	KeyLastSuccessfulSync = "last_successful_sync"
	// KeyAuthToken holds the bearer credential supplied by the login flow.
	KeyAuthToken = "auth_token"
)

type stateRepository struct {
	*DB
	now func() time.Time
}

func NewStateRepository(db *DB) StateRepository {
	return &stateRepository{DB: db, now: time.Now}
}

func (s *stateRepository) Get(ctx context.Context, key string) (string, error) {
	query, args, err := builder.Select("value").
		From("sync_state").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("state %q: %w", key, ErrNotFound)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "stateRepository.Get").
			Str("key", key).
			Msg("failed to read state value")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *stateRepository) Set(ctx context.Context, key, value string) error {
	query, args, err := builder.Insert("sync_state").
		Columns("key", "value", "updated_at").
		Values(key, value, s.now().UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := s.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "stateRepository.Set").
			Str("key", key).
			Msg("failed to write state value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *stateRepository) Delete(ctx context.Context, key string) error {
	query, args, err := builder.Delete("sync_state").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := s.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "stateRepository.Delete").
			Str("key", key).
			Msg("failed to delete state value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
