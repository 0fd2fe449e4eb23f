package store

import (
	"context"
	"time"

	"github.com/MKhiriev/nutri-audit-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SyncRepository is the local table of one synchronizable entity kind.
//
// Every local mutation made through Create or Update marks the row pending
// and refreshes updated_at. Only MarkSynced clears pending for rows written
// locally; rows written by pull are stored clean.
type SyncRepository[T models.Record] interface {
	// Create stores a new row. An empty LocalID is filled with a freshly
	// generated one. The stored row is returned.
	Create(ctx context.Context, record T) (T, error)
	// Update overwrites the scalar fields and the parent reference of an
	// existing row, marks it pending and refreshes updated_at.
	Update(ctx context.Context, record T) (T, error)

	Get(ctx context.Context, localID string) (T, error)
	GetByRemoteID(ctx context.Context, remoteID int64) (T, error)
	List(ctx context.Context) ([]T, error)
	ListPending(ctx context.Context) ([]T, error)
	CountPending(ctx context.Context) (int, error)

	// RemoteIDs maps the local id of every row the server knows to its
	// remote id.
	RemoteIDs(ctx context.Context) (map[string]int64, error)

	// MarkSynced records a push acknowledgement. The remote id is written
	// only if the row has none. pending is cleared only if updated_at still
	// equals seenUpdatedAt, so an edit made while the push was in flight
	// survives; cleared reports whether that happened.
	MarkSynced(ctx context.Context, localID string, remoteID int64, seenUpdatedAt, syncedAt time.Time) (cleared bool, err error)

	// AttachRemoteID writes remoteID to a row that has no remote id yet.
	// attached is false when the row already had one.
	AttachRemoteID(ctx context.Context, localID string, remoteID int64) (attached bool, err error)

	// InsertRemote stores a row received from the server as clean.
	InsertRemote(ctx context.Context, record T, syncedAt time.Time) (T, error)

	// OverwriteFromRemote replaces the row with the server's copy if the row
	// is clean and its updated_at still equals expectedUpdatedAt. applied is
	// false when a concurrent local edit won.
	OverwriteFromRemote(ctx context.Context, localID string, record T, expectedUpdatedAt, syncedAt time.Time) (applied bool, err error)
}

// StateRepository is the key/value table holding engine state such as the
// last successful sync time and the bearer credential.
type StateRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// FoodRepository holds the read-only nutrition catalog.
type FoodRepository interface {
	Count(ctx context.Context) (int, error)
	Get(ctx context.Context, code int64) (models.Food, error)
	SaveAll(ctx context.Context, foods []models.Food) error
}

// IDGenerator produces local row identifiers.
type IDGenerator interface {
	Generate() string
}
