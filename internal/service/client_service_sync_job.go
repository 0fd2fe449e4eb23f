package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/nutri-audit-sync/internal/config"
	"github.com/MKhiriev/nutri-audit-sync/internal/logger"
	"github.com/MKhiriev/nutri-audit-sync/internal/reachability"
	"github.com/MKhiriev/nutri-audit-sync/models"
)

const defaultSyncInterval = 5 * time.Minute

type clientSyncJob struct {
	engine   SyncEngine
	triggers TriggerSource

	interval    time.Duration
	minInterval time.Duration
	now         func() time.Time

	mu            sync.Mutex
	lastCompleted time.Time
	cancel        context.CancelFunc
	wg            sync.WaitGroup

	logger *logger.Logger
}

// NewClientSyncJob creates the [SyncScheduler]. It runs the engine every
// cfg.SyncInterval and on every event from triggers, but never starts an
// automatic cycle sooner than cfg.MinSyncInterval after the previous one
// completed. triggers may be nil.
func NewClientSyncJob(engine SyncEngine, triggers TriggerSource, cfg config.Workers, logger *logger.Logger) SyncScheduler {
	interval := cfg.SyncInterval
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	return &clientSyncJob{
		engine:      engine,
		triggers:    triggers,
		interval:    interval,
		minInterval: cfg.MinSyncInterval,
		now:         time.Now,
		logger:      logger,
	}
}

// Run starts the job and blocks until ctx is cancelled, then waits for the
// job goroutine to exit.
func (j *clientSyncJob) Run(ctx context.Context) error {
	j.Start(ctx)
	<-ctx.Done()
	j.Stop()
	return nil
}

// Start stops any previously running job, then launches a background
// goroutine that syncs once right away and afterwards on the ticker and on
// trigger events. The goroutine exits when ctx is cancelled or Stop is
// called.
func (j *clientSyncJob) Start(ctx context.Context) {
	j.Stop()

	var (
		events      <-chan reachability.Event
		unsubscribe = func() {}
	)
	if j.triggers != nil {
		events, unsubscribe = j.triggers.Subscribe()
	}

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		defer unsubscribe()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		j.syncIfNeeded(jobCtx, "startup")

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.syncIfNeeded(jobCtx, "ticker")
			case ev, ok := <-events:
				if !ok {
					// monitor stopped; keep the ticker going
					events = nil
					continue
				}
				j.syncIfNeeded(jobCtx, string(ev.Kind))
			}
		}
	}()
}

// Stop cancels the background goroutine's context and blocks until it has
// fully exited. Safe to call when the job is not running.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *clientSyncJob) SyncNow(ctx context.Context) (models.SyncReport, error) {
	return j.sync(ctx, "manual")
}

// syncIfNeeded runs a cycle unless the previous one completed less than
// minInterval ago.
func (j *clientSyncJob) syncIfNeeded(ctx context.Context, reason string) {
	j.mu.Lock()
	last := j.lastCompleted
	j.mu.Unlock()

	if !last.IsZero() && j.now().Sub(last) < j.minInterval {
		j.logger.Debug().
			Str("func", "clientSyncJob.syncIfNeeded").
			Str("reason", reason).
			Dur("since_last", j.now().Sub(last)).
			Msg("cooldown active, skipping sync")
		return
	}

	_, _ = j.sync(ctx, reason)
}

func (j *clientSyncJob) sync(ctx context.Context, reason string) (models.SyncReport, error) {
	j.logger.Debug().
		Str("func", "clientSyncJob.sync").
		Str("reason", reason).
		Msg("starting sync")

	report, err := j.engine.Sync(ctx)
	if report.Skipped {
		return report, err
	}

	// a cycle that never reached the server does not count, so the next
	// connected event is not held back by the cooldown
	if !errors.Is(err, ErrOffline) || len(report.Entities) > 0 {
		j.mu.Lock()
		j.lastCompleted = j.now()
		j.mu.Unlock()
	}

	if err != nil {
		j.logger.Warn().Err(err).
			Str("func", "clientSyncJob.sync").
			Str("reason", reason).
			Msg("sync finished with error")
	}
	return report, err
}
