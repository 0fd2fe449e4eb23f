// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/nutri-audit-sync/internal/logger"
	"github.com/MKhiriev/nutri-audit-sync/models"
)

// metaColumns are the bookkeeping columns every entity table starts with.
var metaColumns = []string{"local_id", "remote_id", "pending", "updated_at", "synced_at", "created_at"}

// entityTable describes how one entity kind maps onto its table. columns
// lists the data columns (parent reference included) in the order values
// and fields produce them.
type entityTable[T models.Record] struct {
	name    string
	columns []string
	values  func(T) []any
	fields  func(*T) []any
	meta    func(*T) *models.SyncMeta
}

func (t entityTable[T]) allColumns() []string {
	cols := make([]string, 0, len(metaColumns)+len(t.columns))
	cols = append(cols, metaColumns...)
	return append(cols, t.columns...)
}

func (t entityTable[T]) row(record T) []any {
	m := record.Meta()
	vals := []any{m.LocalID, m.RemoteID, m.Pending, m.UpdatedAt.UTC(), utcPtr(m.SyncedAt), m.CreatedAt.UTC()}
	return append(vals, t.values(record)...)
}

func (t entityTable[T]) scan(s interface{ Scan(dest ...any) error }) (T, error) {
	var record T
	m := t.meta(&record)
	dest := []any{&m.LocalID, &m.RemoteID, &m.Pending, &m.UpdatedAt, &m.SyncedAt, &m.CreatedAt}
	dest = append(dest, t.fields(&record)...)

	err := s.Scan(dest...)
	return record, err
}

// syncRepository is the SQLite implementation of [SyncRepository] shared by
// all entity kinds.
type syncRepository[T models.Record] struct {
	*DB
	table entityTable[T]
	ids   IDGenerator
	now   func() time.Time
}

func newSyncRepository[T models.Record](db *DB, table entityTable[T], ids IDGenerator) *syncRepository[T] {
	return &syncRepository[T]{
		DB:    db,
		table: table,
		ids:   ids,
		now:   time.Now,
	}
}

func (r *syncRepository[T]) fn(method string) string {
	return "syncRepository[" + r.table.name + "]." + method
}

func (r *syncRepository[T]) selectQuery() sq.SelectBuilder {
	return builder.Select(r.table.allColumns()...).From(r.table.name)
}

func (r *syncRepository[T]) Create(ctx context.Context, record T) (T, error) {
	log := logger.FromContext(ctx)

	now := r.now().UTC()
	m := r.table.meta(&record)
	if m.LocalID == "" {
		m.LocalID = r.ids.Generate()
	}
	m.RemoteID = nil
	m.Pending = true
	m.UpdatedAt = now
	m.CreatedAt = now
	m.SyncedAt = nil

	if err := r.insert(ctx, record); err != nil {
		log.Err(err).
			Str("func", r.fn("Create")).
			Str("local_id", m.LocalID).
			Msg("failed to create record")
		var zero T
		return zero, err
	}

	return record, nil
}

func (r *syncRepository[T]) Update(ctx context.Context, record T) (T, error) {
	log := logger.FromContext(ctx)
	localID := record.Meta().LocalID

	q := builder.Update(r.table.name).
		Set("pending", true).
		Set("updated_at", r.now().UTC())
	for i, v := range r.table.values(record) {
		q = q.Set(r.table.columns[i], v)
	}

	affected, err := r.exec(ctx, r.DB.DB, q.Where(sq.Eq{"local_id": localID}))
	if err != nil {
		log.Err(err).
			Str("func", r.fn("Update")).
			Str("local_id", localID).
			Msg("failed to update record")
		var zero T
		return zero, err
	}
	if affected == 0 {
		var zero T
		return zero, fmt.Errorf("%s %s: %w", r.table.name, localID, ErrNotFound)
	}

	return r.Get(ctx, localID)
}

func (r *syncRepository[T]) Get(ctx context.Context, localID string) (T, error) {
	return r.getOne(ctx, "Get", sq.Eq{"local_id": localID})
}

func (r *syncRepository[T]) GetByRemoteID(ctx context.Context, remoteID int64) (T, error) {
	return r.getOne(ctx, "GetByRemoteID", sq.Eq{"remote_id": remoteID})
}

func (r *syncRepository[T]) getOne(ctx context.Context, method string, where sq.Eq) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	query, args, err := r.selectQuery().Where(where).Limit(1).ToSql()
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	record, err := r.table.scan(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return zero, fmt.Errorf("%s %v: %w", r.table.name, where, ErrNotFound)
	}
	if err != nil {
		log.Err(err).
			Str("func", r.fn(method)).
			Msg("failed to scan record row")
		return zero, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}

func (r *syncRepository[T]) List(ctx context.Context) ([]T, error) {
	return r.list(ctx, "List", nil)
}

func (r *syncRepository[T]) ListPending(ctx context.Context) ([]T, error) {
	return r.list(ctx, "ListPending", sq.Eq{"pending": true})
}

func (r *syncRepository[T]) list(ctx context.Context, method string, where sq.Sqlizer) ([]T, error) {
	log := logger.FromContext(ctx)

	q := r.selectQuery().OrderBy("created_at", "local_id")
	if where != nil {
		q = q.Where(where)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", r.fn(method)).
			Msg("failed to execute query for listing records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []T
	for rows.Next() {
		record, err := r.table.scan(rows)
		if err != nil {
			log.Err(err).
				Str("func", r.fn(method)).
				Msg("failed to scan record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", r.fn(method)).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func (r *syncRepository[T]) CountPending(ctx context.Context) (int, error) {
	query, args, err := builder.Select("COUNT(*)").
		From(r.table.name).
		Where(sq.Eq{"pending": true}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err := r.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", r.fn("CountPending")).
			Msg("failed to count pending records")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func (r *syncRepository[T]) RemoteIDs(ctx context.Context) (map[string]int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.Select("local_id", "remote_id").
		From(r.table.name).
		Where(sq.NotEq{"remote_id": nil}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", r.fn("RemoteIDs")).
			Msg("failed to execute query for remote ids")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make(map[string]int64)
	for rows.Next() {
		var (
			localID  string
			remoteID int64
		)
		if err := rows.Scan(&localID, &remoteID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ids[localID] = remoteID
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}

func (r *syncRepository[T]) MarkSynced(ctx context.Context, localID string, remoteID int64, seenUpdatedAt, syncedAt time.Time) (bool, error) {
	log := logger.FromContext(ctx)
	cleared := false

	err := r.withTx(ctx, func(tx *sql.Tx) error {
		affected, err := r.exec(ctx, tx, builder.Update(r.table.name).
			Set("remote_id", sq.Expr("COALESCE(remote_id, ?)", remoteID)).
			Set("pending", false).
			Set("synced_at", syncedAt.UTC()).
			Where(sq.Eq{"local_id": localID, "updated_at": seenUpdatedAt.UTC()}))
		if err != nil {
			return err
		}
		if affected > 0 {
			cleared = true
			return nil
		}

		// edited while in flight: keep pending, still remember the remote id
		affected, err = r.exec(ctx, tx, builder.Update(r.table.name).
			Set("remote_id", sq.Expr("COALESCE(remote_id, ?)", remoteID)).
			Where(sq.Eq{"local_id": localID}))
		if err != nil {
			return err
		}
		if affected == 0 {
			return fmt.Errorf("%s %s: %w", r.table.name, localID, ErrNotFound)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", r.fn("MarkSynced")).
			Str("local_id", localID).
			Int64("remote_id", remoteID).
			Msg("failed to mark record as synced")
		return false, err
	}

	return cleared, nil
}

func (r *syncRepository[T]) AttachRemoteID(ctx context.Context, localID string, remoteID int64) (bool, error) {
	affected, err := r.exec(ctx, r.DB.DB, builder.Update(r.table.name).
		Set("remote_id", remoteID).
		Where(sq.Eq{"local_id": localID, "remote_id": nil}))
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", r.fn("AttachRemoteID")).
			Str("local_id", localID).
			Int64("remote_id", remoteID).
			Msg("failed to attach remote id")
		return false, err
	}

	return affected > 0, nil
}

func (r *syncRepository[T]) InsertRemote(ctx context.Context, record T, syncedAt time.Time) (T, error) {
	m := r.table.meta(&record)
	if m.LocalID == "" {
		m.LocalID = r.ids.Generate()
	}
	synced := syncedAt.UTC()
	m.Pending = false
	m.UpdatedAt = m.UpdatedAt.UTC()
	m.SyncedAt = &synced
	m.CreatedAt = synced

	if err := r.insert(ctx, record); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", r.fn("InsertRemote")).
			Str("local_id", m.LocalID).
			Msg("failed to insert remote record")
		var zero T
		return zero, err
	}

	return record, nil
}

func (r *syncRepository[T]) OverwriteFromRemote(ctx context.Context, localID string, record T, expectedUpdatedAt, syncedAt time.Time) (bool, error) {
	m := record.Meta()

	q := builder.Update(r.table.name).
		Set("updated_at", m.UpdatedAt.UTC()).
		Set("synced_at", syncedAt.UTC())
	for i, v := range r.table.values(record) {
		q = q.Set(r.table.columns[i], v)
	}
	q = q.Where(sq.Eq{
		"local_id":   localID,
		"pending":    false,
		"updated_at": expectedUpdatedAt.UTC(),
	})

	affected, err := r.exec(ctx, r.DB.DB, q)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", r.fn("OverwriteFromRemote")).
			Str("local_id", localID).
			Msg("failed to overwrite record from remote")
		return false, err
	}

	return affected > 0, nil
}

func (r *syncRepository[T]) insert(ctx context.Context, record T) error {
	query, args, err := builder.Insert(r.table.name).
		Columns(r.table.allColumns()...).
		Values(r.table.row(record)...).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, classifySQLiteError(err))
	}

	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *syncRepository[T]) exec(ctx context.Context, db execer, q sq.UpdateBuilder) (int64, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, classifySQLiteError(err))
	}

	return res.RowsAffected()
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
