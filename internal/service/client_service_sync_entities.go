// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/nutri-audit-sync/internal/adapter"
	"github.com/MKhiriev/nutri-audit-sync/internal/logger"
	"github.com/MKhiriev/nutri-audit-sync/internal/store"
	"github.com/MKhiriev/nutri-audit-sync/models"
)

// entitySyncer pushes and pulls one entity kind.
type entitySyncer interface {
	Kind() models.EntityKind
	Push(ctx context.Context, report *models.EntityReport) error
	Pull(ctx context.Context, report *models.EntityReport) error
}

// entitySync binds a local repository to its remote collection. R is the
// local row type, D its wire representation.
//
// parents is nil for root kinds. For child kinds it is the parent's
// repository: push resolves the parent's remote id through it and pull maps
// the remote parent id back to a local one.
type entitySync[R models.Record, D any] struct {
	kind    models.EntityKind
	repo    store.SyncRepository[R]
	parents interface {
		RemoteIDs(ctx context.Context) (map[string]int64, error)
	}

	// toDTO builds the payload for row with the parent's remote id, or 0
	// for roots.
	toDTO func(row R, parentRemoteID int64) D
	// fromDTO returns the local row for dto and the remote id of its parent.
	// The row's meta holds the remote id, updated_at and echoed local id.
	fromDTO   func(dto D) (R, int64)
	setParent func(row *R, parentLocalID string)
	meta      func(row *R) *models.SyncMeta

	push func(ctx context.Context, items []D) ([]models.PushResult, error)
	list func(ctx context.Context) ([]D, error)

	now func() time.Time
}

func (e *entitySync[R, D]) Kind() models.EntityKind {
	return e.kind
}

func (e *entitySync[R, D]) fn(method string) string {
	return "entitySync[" + string(e.kind) + "]." + method
}

func (e *entitySync[R, D]) parentRemoteIDs(ctx context.Context) (map[string]int64, error) {
	if e.parents == nil {
		return nil, nil
	}
	return e.parents.RemoteIDs(ctx)
}

// Push sends every pending row whose parent the server already knows. Rows
// whose parent has no remote id yet are deferred to a later cycle.
func (e *entitySync[R, D]) Push(ctx context.Context, report *models.EntityReport) error {
	log := logger.FromContext(ctx)

	rows, err := e.repo.ListPending(ctx)
	if err != nil {
		return fmt.Errorf("list pending %s: %w", e.kind, err)
	}
	if len(rows) == 0 {
		return nil
	}

	parentIDs, err := e.parentRemoteIDs(ctx)
	if err != nil {
		return fmt.Errorf("resolve parents of %s: %w", e.kind, err)
	}

	submitted := make([]R, 0, len(rows))
	payload := make([]D, 0, len(rows))
	for _, row := range rows {
		var parentRemoteID int64
		if e.parents != nil {
			id, ok := parentIDs[row.ParentLocalID()]
			if !ok {
				report.Deferred++
				log.Debug().
					Str("func", e.fn("Push")).
					Str("local_id", row.Meta().LocalID).
					Str("parent_local_id", row.ParentLocalID()).
					Msg("parent not synced yet, deferring row")
				continue
			}
			parentRemoteID = id
		}
		submitted = append(submitted, row)
		payload = append(payload, e.toDTO(row, parentRemoteID))
	}
	if len(payload) == 0 {
		return nil
	}

	results, err := e.push(ctx, payload)
	if err != nil {
		return fmt.Errorf("push %s: %w", e.kind, err)
	}
	matched := matchResults(submitted, results)

	syncedAt := e.now()
	for i, row := range submitted {
		m := row.Meta()
		res, ok := matched[i]
		if !ok || !res.Accepted() {
			report.Rejected++
			ev := log.Warn().
				Str("func", e.fn("Push")).
				Str("local_id", m.LocalID)
			if ok {
				ev = ev.Str("error", res.Error)
			}
			ev.Msg("row rejected by server, keeping it pending")
			continue
		}

		cleared, err := e.repo.MarkSynced(ctx, m.LocalID, *res.ID, m.UpdatedAt, syncedAt)
		if errors.Is(err, store.ErrRemoteIDConflict) {
			// the server handed out an id another local row already holds
			report.Rejected++
			log.Error().Err(err).
				Str("func", e.fn("Push")).
				Str("local_id", m.LocalID).
				Int64("remote_id", *res.ID).
				Msg("acknowledged remote id is taken by another row")
			continue
		}
		if err != nil {
			return fmt.Errorf("mark %s %s synced: %w", e.kind, m.LocalID, err)
		}

		if cleared {
			report.Pushed++
		} else {
			report.Superseded++
		}
	}

	return nil
}

// matchResults pairs submitted rows with bulk results. Results are matched by
// echoed local id; a result without one falls back to its position.
func matchResults[R models.Record](submitted []R, results []models.PushResult) map[int]models.PushResult {
	index := make(map[string]int, len(submitted))
	for i, row := range submitted {
		index[row.Meta().LocalID] = i
	}

	matched := make(map[int]models.PushResult, len(results))
	for pos, res := range results {
		if res.LocalID != "" {
			if i, ok := index[res.LocalID]; ok {
				matched[i] = res
			}
			continue
		}
		if pos < len(submitted) {
			if _, taken := matched[pos]; !taken {
				matched[pos] = res
			}
		}
	}
	return matched
}

// Pull merges the complete remote collection into the local table. A remote
// row replaces the local copy only when the local copy is clean and the
// remote updated_at is strictly newer.
func (e *entitySync[R, D]) Pull(ctx context.Context, report *models.EntityReport) error {
	log := logger.FromContext(ctx)

	items, err := e.list(ctx)
	if err != nil {
		return fmt.Errorf("pull %s: %w", e.kind, err)
	}

	var parentLocalIDs map[int64]string
	if e.parents != nil {
		ids, err := e.parentRemoteIDs(ctx)
		if err != nil {
			return fmt.Errorf("resolve parents of %s: %w", e.kind, err)
		}
		parentLocalIDs = make(map[int64]string, len(ids))
		for localID, remoteID := range ids {
			parentLocalIDs[remoteID] = localID
		}
	}

	syncedAt := e.now()
	for _, item := range items {
		row, parentRemoteID := e.fromDTO(item)
		m := e.meta(&row)
		if m.RemoteID == nil {
			log.Warn().
				Str("func", e.fn("Pull")).
				Msg("remote row without id, skipping")
			continue
		}
		remoteID := *m.RemoteID

		if e.parents != nil {
			parentLocalID, ok := parentLocalIDs[parentRemoteID]
			if !ok {
				report.Orphaned++
				log.Warn().
					Str("func", e.fn("Pull")).
					Int64("remote_id", remoteID).
					Int64("parent_remote_id", parentRemoteID).
					Msg("parent unknown locally, skipping row")
				continue
			}
			e.setParent(&row, parentLocalID)
		}

		if err := e.merge(ctx, row, syncedAt, report); err != nil {
			return fmt.Errorf("merge %s %d: %w", e.kind, remoteID, err)
		}
	}

	return nil
}

func (e *entitySync[R, D]) merge(ctx context.Context, row R, syncedAt time.Time, report *models.EntityReport) error {
	m := e.meta(&row)
	remoteID := *m.RemoteID
	echoedLocalID := m.LocalID

	local, err := e.repo.GetByRemoteID(ctx, remoteID)
	if errors.Is(err, store.ErrNotFound) {
		return e.adopt(ctx, row, echoedLocalID, syncedAt, report)
	}
	if err != nil {
		return err
	}

	lm := local.Meta()
	switch {
	case lm.Pending:
		report.Protected++
		return nil
	case !m.UpdatedAt.After(lm.UpdatedAt):
		report.Unchanged++
		return nil
	}

	applied, err := e.repo.OverwriteFromRemote(ctx, lm.LocalID, row, lm.UpdatedAt, syncedAt)
	if err != nil {
		return err
	}
	if applied {
		report.Updated++
	} else {
		report.Protected++
	}
	return nil
}

// adopt handles a remote row with no local counterpart by remote id. If the
// server echoed a local id that still lacks a remote id, the acknowledgement
// of an earlier push was lost: the id is re-attached and the local copy,
// which is pending, is kept. Otherwise the row is inserted.
func (e *entitySync[R, D]) adopt(ctx context.Context, row R, echoedLocalID string, syncedAt time.Time, report *models.EntityReport) error {
	m := e.meta(&row)

	if echoedLocalID != "" {
		local, err := e.repo.Get(ctx, echoedLocalID)
		switch {
		case err == nil && !local.Meta().HasRemoteID():
			attached, err := e.repo.AttachRemoteID(ctx, echoedLocalID, *m.RemoteID)
			if err != nil {
				return err
			}
			if attached {
				report.Protected++
				return nil
			}
			// lost a race with MarkSynced; the row is known now
			report.Unchanged++
			return nil
		case err == nil:
			// echoed id belongs to a different remote row
			m.LocalID = ""
		case !errors.Is(err, store.ErrNotFound):
			return err
		}
	}

	if _, err := e.repo.InsertRemote(ctx, row, syncedAt); err != nil {
		return err
	}
	report.Inserted++
	return nil
}

// newEntitySyncers returns the syncers for every kind in [models.PushOrder].
func newEntitySyncers(storages *store.ClientStorages, gateway adapter.RemoteGateway, now func() time.Time) []entitySyncer {
	return []entitySyncer{
		&entitySync[models.Institution, models.InstitutionDTO]{
			kind:    models.KindInstitution,
			repo:    storages.Institutions,
			toDTO:   institutionToDTO,
			fromDTO: institutionFromDTO,
			meta:    func(r *models.Institution) *models.SyncMeta { return &r.SyncMeta },
			push:    gateway.PushInstitutions,
			list:    gateway.ListInstitutions,
			now:     now,
		},
		&entitySync[models.Visit, models.VisitDTO]{
			kind:      models.KindVisit,
			repo:      storages.Visits,
			parents:   storages.Institutions,
			toDTO:     visitToDTO,
			fromDTO:   visitFromDTO,
			setParent: func(r *models.Visit, id string) { r.InstitutionLocalID = id },
			meta:      func(r *models.Visit) *models.SyncMeta { return &r.SyncMeta },
			push:      gateway.PushVisits,
			list:      gateway.ListVisits,
			now:       now,
		},
		&entitySync[models.Dish, models.DishDTO]{
			kind:      models.KindDish,
			repo:      storages.Dishes,
			parents:   storages.Visits,
			toDTO:     dishToDTO,
			fromDTO:   dishFromDTO,
			setParent: func(r *models.Dish, id string) { r.VisitLocalID = id },
			meta:      func(r *models.Dish) *models.SyncMeta { return &r.SyncMeta },
			push:      gateway.PushDishes,
			list:      gateway.ListDishes,
			now:       now,
		},
		&entitySync[models.Ingredient, models.IngredientDTO]{
			kind:      models.KindIngredient,
			repo:      storages.Ingredients,
			parents:   storages.Dishes,
			toDTO:     ingredientToDTO,
			fromDTO:   ingredientFromDTO,
			setParent: func(r *models.Ingredient, id string) { r.DishLocalID = id },
			meta:      func(r *models.Ingredient) *models.SyncMeta { return &r.SyncMeta },
			push:      gateway.PushIngredients,
			list:      gateway.ListIngredients,
			now:       now,
		},
	}
}
