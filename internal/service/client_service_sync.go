// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/MKhiriev/nutri-audit-sync/internal/adapter"
	"github.com/MKhiriev/nutri-audit-sync/internal/config"
	"github.com/MKhiriev/nutri-audit-sync/internal/logger"
	"github.com/MKhiriev/nutri-audit-sync/internal/store"
	"github.com/MKhiriev/nutri-audit-sync/internal/utils"
	"github.com/MKhiriev/nutri-audit-sync/models"
)

type syncEngine struct {
	storages *store.ClientStorages
	gateway  adapter.RemoteGateway
	checker  ConnectivityChecker
	syncers  []entitySyncer

	cycleTimeout time.Duration
	now          func() time.Time

	running atomic.Bool

	subsMu  sync.Mutex
	subs    map[int]func(models.SyncReport)
	nextSub int

	logger *logger.Logger
}

// NewSyncEngine returns the [SyncEngine] reconciling storages with gateway.
// checker is probed at the start of every cycle.
func NewSyncEngine(storages *store.ClientStorages, gateway adapter.RemoteGateway, checker ConnectivityChecker, cfg config.Workers, logger *logger.Logger) SyncEngine {
	e := &syncEngine{
		storages:     storages,
		gateway:      gateway,
		checker:      checker,
		cycleTimeout: cfg.CycleTimeout,
		now:          time.Now,
		subs:         make(map[int]func(models.SyncReport)),
		logger:       logger,
	}
	e.syncers = newEntitySyncers(storages, gateway, e.clock)
	return e
}

func (e *syncEngine) clock() time.Time {
	return e.now().UTC()
}

func (e *syncEngine) Sync(ctx context.Context) (report models.SyncReport, err error) {
	if !e.running.CompareAndSwap(false, true) {
		e.logger.Debug().
			Str("func", "syncEngine.Sync").
			Msg("sync already in progress, skipping")
		return models.SyncReport{Skipped: true}, nil
	}
	// deferred calls run last-in first-out: the flag is cleared before
	// subscribers see the report, so they may start the next cycle
	defer func() { e.publish(report) }()
	defer e.running.Store(false)

	cycleID := ulid.Make().String()
	log := e.logger.ForCycle(cycleID)

	cycleCtx := context.WithoutCancel(ctx)
	if e.cycleTimeout > 0 {
		var cancel context.CancelFunc
		cycleCtx, cancel = context.WithTimeout(cycleCtx, e.cycleTimeout)
		defer cancel()
	}
	cycleCtx = utils.WithCycleID(log.WithContext(cycleCtx), cycleID)

	return e.runCycle(cycleCtx, cycleID)
}

func (e *syncEngine) runCycle(ctx context.Context, cycleID string) (models.SyncReport, error) {
	log := logger.FromContext(ctx)

	report := models.SyncReport{
		CycleID:   cycleID,
		StartedAt: e.clock(),
	}
	finish := func(err error) (models.SyncReport, error) {
		report.FinishedAt = e.clock()
		if err != nil {
			report.Error = err.Error()
		}
		log.Info().
			Str("func", "syncEngine.Sync").
			Bool("success", report.Success).
			Dur("took", report.FinishedAt.Sub(report.StartedAt)).
			Msg("sync cycle finished")
		return report, err
	}

	log.Info().Str("func", "syncEngine.Sync").Msg("sync cycle started")

	if err := e.checker.Check(ctx); err != nil {
		log.Warn().Err(err).
			Str("func", "syncEngine.Sync").
			Msg("remote api unreachable, skipping cycle")
		return finish(fmt.Errorf("%w: %w", ErrOffline, err))
	}

	reports := make([]models.EntityReport, len(e.syncers))
	for i, s := range e.syncers {
		reports[i].Kind = s.Kind()
	}

	// fatal stops every remaining remote call of the cycle
	var fatal error
	failed := false
	run := func(phase string, step func(entitySyncer, *models.EntityReport) error, setErr func(*models.EntityReport, string)) {
		for i, s := range e.syncers {
			r := &reports[i]
			if fatal != nil {
				setErr(r, "not attempted: "+fatal.Error())
				continue
			}
			if err := step(s, r); err != nil {
				failed = true
				setErr(r, err.Error())
				log.Err(err).
					Str("func", "syncEngine.Sync").
					Str("phase", phase).
					Str("kind", string(s.Kind())).
					Msg("sync phase failed")
				if isCycleFatal(err) {
					fatal = err
				}
			}
		}
	}

	run("push",
		func(s entitySyncer, r *models.EntityReport) error { return s.Push(ctx, r) },
		func(r *models.EntityReport, msg string) { r.PushError = msg })
	run("pull",
		func(s entitySyncer, r *models.EntityReport) error { return s.Pull(ctx, r) },
		func(r *models.EntityReport, msg string) { r.PullError = msg })
	report.Entities = reports

	if fatal == nil {
		if err := e.importFoods(ctx); err != nil {
			log.Err(err).
				Str("func", "syncEngine.Sync").
				Msg("failed to import food catalog")
			if isCycleFatal(err) {
				fatal = err
				failed = true
			}
		}
	}

	if fatal != nil {
		return finish(mapAdapterError(fatal))
	}
	if failed {
		return finish(nil)
	}

	report.Success = true
	report.FinishedAt = e.clock()
	if err := e.storages.State.Set(ctx, store.KeyLastSuccessfulSync, report.FinishedAt.Format(time.RFC3339Nano)); err != nil {
		report.Success = false
		log.Err(err).
			Str("func", "syncEngine.Sync").
			Msg("failed to record last successful sync")
		return finish(fmt.Errorf("record last successful sync: %w", err))
	}

	return finish(nil)
}

// importFoods fills the food catalog once. The catalog is reference data
// and is not refreshed while the local copy is non-empty.
func (e *syncEngine) importFoods(ctx context.Context) error {
	count, err := e.storages.Foods.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	foods, err := e.gateway.ListFoods(ctx)
	if err != nil {
		return fmt.Errorf("list foods: %w", err)
	}
	if len(foods) == 0 {
		return nil
	}

	if err := e.storages.Foods.SaveAll(ctx, foods); err != nil {
		return err
	}
	logger.FromContext(ctx).Info().
		Str("func", "syncEngine.importFoods").
		Int("count", len(foods)).
		Msg("food catalog imported")
	return nil
}

func (e *syncEngine) Status(ctx context.Context) (models.SyncStatus, error) {
	status := models.SyncStatus{
		PendingByKind: make(map[models.EntityKind]int, len(models.PushOrder)),
		InProgress:    e.running.Load(),
	}

	counters := map[models.EntityKind]interface {
		CountPending(ctx context.Context) (int, error)
	}{
		models.KindInstitution: e.storages.Institutions,
		models.KindVisit:       e.storages.Visits,
		models.KindDish:        e.storages.Dishes,
		models.KindIngredient:  e.storages.Ingredients,
	}
	for _, kind := range models.PushOrder {
		n, err := counters[kind].CountPending(ctx)
		if err != nil {
			return models.SyncStatus{}, fmt.Errorf("count pending %s: %w", kind, err)
		}
		status.PendingByKind[kind] = n
		status.Pending += n
	}

	raw, err := e.storages.State.Get(ctx, store.KeyLastSuccessfulSync)
	switch {
	case errors.Is(err, store.ErrNotFound):
	case err != nil:
		return models.SyncStatus{}, fmt.Errorf("read last successful sync: %w", err)
	default:
		at, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return models.SyncStatus{}, fmt.Errorf("parse last successful sync %q: %w", raw, err)
		}
		status.LastSuccessfulAt = &at
	}

	return status, nil
}

func (e *syncEngine) Subscribe(fn func(models.SyncReport)) func() {
	e.subsMu.Lock()
	id := e.nextSub
	e.nextSub++
	e.subs[id] = fn
	e.subsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.subsMu.Lock()
			delete(e.subs, id)
			e.subsMu.Unlock()
		})
	}
}

func (e *syncEngine) publish(report models.SyncReport) {
	e.subsMu.Lock()
	fns := make([]func(models.SyncReport), 0, len(e.subs))
	for _, fn := range e.subs {
		fns = append(fns, fn)
	}
	e.subsMu.Unlock()

	for _, fn := range fns {
		fn(report)
	}
}
