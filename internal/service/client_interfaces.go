package service

import (
	"context"

	"github.com/MKhiriev/nutri-audit-sync/internal/reachability"
	"github.com/MKhiriev/nutri-audit-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// SyncEngine reconciles the local store with the remote API.
type SyncEngine interface {
	// Sync runs one cycle: push every pending row parents first, then pull
	// every collection and merge it with last-write-wins. A call made while a
	// cycle is already running returns immediately with Skipped set.
	//
	// The cycle is detached from ctx cancellation and bounded by the
	// configured cycle timeout, so a caller that goes away does not leave
	// rows half reconciled.
	Sync(ctx context.Context) (models.SyncReport, error)

	// Status returns the pending row count and the time of the last
	// successful cycle.
	Status(ctx context.Context) (models.SyncStatus, error)

	// Subscribe registers fn to be called with the report of every finished
	// cycle. Skipped calls are not reported. The returned function removes
	// the subscription.
	Subscribe(fn func(models.SyncReport)) (unsubscribe func())
}

// ConnectivityChecker performs a live reachability probe.
type ConnectivityChecker interface {
	Check(ctx context.Context) error
}

// TriggerSource delivers reachability events that should start a cycle.
type TriggerSource interface {
	Subscribe() (<-chan reachability.Event, func())
}

// SyncScheduler decides when the engine runs.
type SyncScheduler interface {
	// Run blocks until ctx is cancelled, starting cycles on the periodic
	// ticker and on trigger events. Automatic cycles respect the cooldown.
	Run(ctx context.Context) error

	// SyncNow starts a cycle immediately, ignoring the cooldown.
	SyncNow(ctx context.Context) (models.SyncReport, error)
}

// CredentialService manages the bearer token used for remote calls.
type CredentialService interface {
	// Token returns the stored token. A missing or expired token is
	// reported as adapter.ErrNoCredentials.
	Token(ctx context.Context) (string, error)
	// Invalidate forgets the stored token.
	Invalidate(ctx context.Context) error
	// SetToken stores a new token. Tokens that are already expired are
	// refused.
	SetToken(ctx context.Context, token string) error
}
