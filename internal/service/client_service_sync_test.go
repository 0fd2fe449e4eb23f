// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/nutri-audit-sync/internal/adapter"
	"github.com/MKhiriev/nutri-audit-sync/internal/config"
	"github.com/MKhiriev/nutri-audit-sync/internal/logger"
	"github.com/MKhiriev/nutri-audit-sync/internal/mock"
	"github.com/MKhiriev/nutri-audit-sync/internal/store"
	"github.com/MKhiriev/nutri-audit-sync/internal/utils"
	"github.com/MKhiriev/nutri-audit-sync/models"
)

func ok(localID string, id int64) models.PushResult {
	return models.PushResult{LocalID: localID, ID: models.Int64(id), Status: models.PushStatusOK}
}

func newTestStorages(t *testing.T) *store.ClientStorages {
	t.Helper()
	cfg := config.Storage{DB: config.DB{DSN: filepath.Join(t.TempDir(), "audit.db")}}

	s, err := store.NewClientStorages(context.Background(), cfg, utils.NewUUIDGenerator(), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

type engineFixture struct {
	engine   *syncEngine
	storages *store.ClientStorages
	gateway  *mock.MockRemoteGateway
	checker  *mock.MockConnectivityChecker
}

func newEngineFixture(t *testing.T) engineFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	storages := newTestStorages(t)
	gateway := mock.NewMockRemoteGateway(ctrl)
	checker := mock.NewMockConnectivityChecker(ctrl)

	engine := NewSyncEngine(storages, gateway, checker, config.Workers{CycleTimeout: time.Minute}, logger.Nop())
	return engineFixture{
		engine:   engine.(*syncEngine),
		storages: storages,
		gateway:  gateway,
		checker:  checker,
	}
}

// expectEmptyPull expects every collection read of a cycle and returns
// nothing for each.
func (f engineFixture) expectEmptyPull() {
	f.gateway.EXPECT().ListInstitutions(gomock.Any()).Return(nil, nil)
	f.gateway.EXPECT().ListVisits(gomock.Any()).Return(nil, nil)
	f.gateway.EXPECT().ListDishes(gomock.Any()).Return(nil, nil)
	f.gateway.EXPECT().ListIngredients(gomock.Any()).Return(nil, nil)
	f.gateway.EXPECT().ListFoods(gomock.Any()).Return(nil, nil)
}

func createInstitution(t *testing.T, s *store.ClientStorages, localID, name string) models.Institution {
	t.Helper()
	inst, err := s.Institutions.Create(context.Background(), models.Institution{
		SyncMeta: models.SyncMeta{LocalID: localID},
		Code:     "C-" + name,
		Name:     name,
		Type:     models.InstitutionSchool,
		Active:   true,
	})
	require.NoError(t, err)
	return inst
}

func createVisit(t *testing.T, s *store.ClientStorages, institutionLocalID string) models.Visit {
	t.Helper()
	v, err := s.Visits.Create(context.Background(), models.Visit{
		InstitutionLocalID: institutionLocalID,
		Date:               "2026-03-02",
		MealType:           models.MealLunch,
		FormAnswers:        models.FormAnswers{"higiene": "ok"},
	})
	require.NoError(t, err)
	return v
}

// insertClean stores an institution the way a previous pull would have.
func insertClean(t *testing.T, s *store.ClientStorages, remoteID int64, name string, updatedAt time.Time) models.Institution {
	t.Helper()
	inst, err := s.Institutions.InsertRemote(context.Background(), models.Institution{
		SyncMeta: models.SyncMeta{RemoteID: models.Int64(remoteID), UpdatedAt: updatedAt},
		Code:     "C-" + name,
		Name:     name,
		Type:     models.InstitutionSchool,
	}, updatedAt)
	require.NoError(t, err)
	return inst
}

// ── Push ─────────────────────────────────────────────────────────────────────

func TestSyncEngine_Sync_ChildCarriesParentRemoteID(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	createInstitution(t, f.storages, "abc", "Escuela 12")
	visit := createVisit(t, f.storages, "abc")

	f.checker.EXPECT().Check(gomock.Any()).Return(nil)
	gomock.InOrder(
		f.gateway.EXPECT().PushInstitutions(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, items []models.InstitutionDTO) ([]models.PushResult, error) {
				require.Len(t, items, 1)
				assert.Equal(t, "abc", items[0].LocalID)
				assert.Nil(t, items[0].ID)
				return []models.PushResult{ok("abc", 42)}, nil
			}),
		f.gateway.EXPECT().PushVisits(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, items []models.VisitDTO) ([]models.PushResult, error) {
				require.Len(t, items, 1)
				assert.Equal(t, int64(42), items[0].Institution)

				body, err := json.Marshal(items[0])
				require.NoError(t, err)
				assert.Contains(t, string(body), `"institucion":42`)
				assert.Contains(t, string(body), `"local_id":"`+visit.LocalID+`"`)

				return []models.PushResult{ok(visit.LocalID, 7)}, nil
			}),
		f.gateway.EXPECT().ListInstitutions(gomock.Any()).Return(nil, nil),
		f.gateway.EXPECT().ListVisits(gomock.Any()).Return(nil, nil),
		f.gateway.EXPECT().ListDishes(gomock.Any()).Return(nil, nil),
		f.gateway.EXPECT().ListIngredients(gomock.Any()).Return(nil, nil),
		f.gateway.EXPECT().ListFoods(gomock.Any()).Return(nil, nil),
	)

	report, err := f.engine.Sync(ctx)
	require.NoError(t, err)
	assert.True(t, report.Success)
	assert.NotEmpty(t, report.CycleID)
	assert.Equal(t, 1, report.Entity(models.KindInstitution).Pushed)
	assert.Equal(t, 1, report.Entity(models.KindVisit).Pushed)

	inst, err := f.storages.Institutions.Get(ctx, "abc")
	require.NoError(t, err)
	require.NotNil(t, inst.RemoteID)
	assert.Equal(t, int64(42), *inst.RemoteID)
	assert.False(t, inst.Pending)
	assert.NotNil(t, inst.SyncedAt)

	v, err := f.storages.Visits.Get(ctx, visit.LocalID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), *v.RemoteID)
	assert.False(t, v.Pending)

	status, err := f.engine.Status(ctx)
	require.NoError(t, err)
	assert.Zero(t, status.Pending)
	assert.NotNil(t, status.LastSuccessfulAt)
}

func TestSyncEngine_Sync_DefersChildOfRejectedParent(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	createInstitution(t, f.storages, "abc", "Escuela 12")
	visit := createVisit(t, f.storages, "abc")

	f.checker.EXPECT().Check(gomock.Any()).Return(nil)
	f.gateway.EXPECT().PushInstitutions(gomock.Any(), gomock.Any()).Return([]models.PushResult{
		{LocalID: "abc", Status: models.PushStatusError, Error: "codigo: duplicated"},
	}, nil)
	// no PushVisits: the visit has no parent remote id
	f.expectEmptyPull()

	report, err := f.engine.Sync(ctx)
	require.NoError(t, err)
	assert.True(t, report.Success, "row-level rejections do not fail the cycle")
	assert.Equal(t, 1, report.Entity(models.KindInstitution).Rejected)
	assert.Equal(t, 1, report.Entity(models.KindVisit).Deferred)

	v, err := f.storages.Visits.Get(ctx, visit.LocalID)
	require.NoError(t, err)
	assert.True(t, v.Pending)
	assert.Nil(t, v.RemoteID)

	inst, err := f.storages.Institutions.Get(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, inst.Pending)
}

func TestSyncEngine_Sync_EditDuringPushStaysPending(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	inst := createInstitution(t, f.storages, "abc", "Escuela 12")

	f.checker.EXPECT().Check(gomock.Any()).Return(nil)
	f.gateway.EXPECT().PushInstitutions(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ []models.InstitutionDTO) ([]models.PushResult, error) {
			edited := inst
			edited.Name = "Escuela 12 bis"
			_, err := f.storages.Institutions.Update(ctx, edited)
			require.NoError(t, err)
			return []models.PushResult{ok("abc", 42)}, nil
		})
	f.gateway.EXPECT().ListInstitutions(gomock.Any()).Return([]models.InstitutionDTO{
		{LocalID: "abc", ID: models.Int64(42), Name: "Escuela 12", UpdatedAt: time.Now().Add(time.Hour)},
	}, nil)
	f.gateway.EXPECT().ListVisits(gomock.Any()).Return(nil, nil)
	f.gateway.EXPECT().ListDishes(gomock.Any()).Return(nil, nil)
	f.gateway.EXPECT().ListIngredients(gomock.Any()).Return(nil, nil)
	f.gateway.EXPECT().ListFoods(gomock.Any()).Return(nil, nil)

	report, err := f.engine.Sync(ctx)
	require.NoError(t, err)

	er := report.Entity(models.KindInstitution)
	assert.Equal(t, 1, er.Superseded)
	assert.Equal(t, 1, er.Protected)

	got, err := f.storages.Institutions.Get(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, got.Pending)
	assert.Equal(t, int64(42), *got.RemoteID)
	assert.Equal(t, "Escuela 12 bis", got.Name)
}

// ── Pull ─────────────────────────────────────────────────────────────────────

func TestSyncEngine_Sync_PullLastWriteWins(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		remoteAt     time.Time
		wantName     string
		wantUpdated  int
		wantUnchange int
	}{
		{name: "newer remote replaces local", remoteAt: base.Add(time.Hour), wantName: "remote", wantUpdated: 1},
		{name: "equal timestamps keep local", remoteAt: base, wantName: "local", wantUnchange: 1},
		{name: "older remote is ignored", remoteAt: base.Add(-time.Hour), wantName: "local", wantUnchange: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newEngineFixture(t)
			ctx := context.Background()
			local := insertClean(t, f.storages, 5, "local", base)

			f.checker.EXPECT().Check(gomock.Any()).Return(nil)
			f.gateway.EXPECT().ListInstitutions(gomock.Any()).Return([]models.InstitutionDTO{
				{ID: models.Int64(5), Code: "C-remote", Name: "remote", UpdatedAt: tt.remoteAt},
			}, nil)
			f.gateway.EXPECT().ListVisits(gomock.Any()).Return(nil, nil)
			f.gateway.EXPECT().ListDishes(gomock.Any()).Return(nil, nil)
			f.gateway.EXPECT().ListIngredients(gomock.Any()).Return(nil, nil)
			f.gateway.EXPECT().ListFoods(gomock.Any()).Return(nil, nil)

			report, err := f.engine.Sync(ctx)
			require.NoError(t, err)
			er := report.Entity(models.KindInstitution)
			assert.Equal(t, tt.wantUpdated, er.Updated)
			assert.Equal(t, tt.wantUnchange, er.Unchanged)

			got, err := f.storages.Institutions.Get(ctx, local.LocalID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, got.Name)
			assert.False(t, got.Pending)
		})
	}
}

func TestSyncEngine_Sync_PullNeverOverwritesPendingRow(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	local := insertClean(t, f.storages, 5, "local", base)
	local.Name = "edited offline"
	_, err := f.storages.Institutions.Update(ctx, local)
	require.NoError(t, err)

	f.checker.EXPECT().Check(gomock.Any()).Return(nil)
	// the pending row goes up first, but the server rejects it
	f.gateway.EXPECT().PushInstitutions(gomock.Any(), gomock.Any()).Return([]models.PushResult{
		{LocalID: local.LocalID, Status: models.PushStatusError, Error: "validation"},
	}, nil)
	f.gateway.EXPECT().ListInstitutions(gomock.Any()).Return([]models.InstitutionDTO{
		{ID: models.Int64(5), Name: "remote", UpdatedAt: time.Now().Add(24 * time.Hour)},
	}, nil)
	f.gateway.EXPECT().ListVisits(gomock.Any()).Return(nil, nil)
	f.gateway.EXPECT().ListDishes(gomock.Any()).Return(nil, nil)
	f.gateway.EXPECT().ListIngredients(gomock.Any()).Return(nil, nil)
	f.gateway.EXPECT().ListFoods(gomock.Any()).Return(nil, nil)

	report, err := f.engine.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Entity(models.KindInstitution).Protected)

	got, err := f.storages.Institutions.Get(ctx, local.LocalID)
	require.NoError(t, err)
	assert.Equal(t, "edited offline", got.Name)
	assert.True(t, got.Pending)
}

func TestSyncEngine_Sync_PullInsertsNewRowsAndResolvesParents(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	f.checker.EXPECT().Check(gomock.Any()).Return(nil)
	f.gateway.EXPECT().ListInstitutions(gomock.Any()).Return([]models.InstitutionDTO{
		{ID: models.Int64(42), Code: "E12", Name: "Escuela 12", Type: models.InstitutionSchool, UpdatedAt: at},
	}, nil)
	f.gateway.EXPECT().ListVisits(gomock.Any()).Return([]models.VisitDTO{
		{ID: models.Int64(7), Institution: 42, Date: "2026-03-02", MealType: models.MealLunch, UpdatedAt: at},
		{ID: models.Int64(8), Institution: 999, Date: "2026-03-03", UpdatedAt: at},
	}, nil)
	f.gateway.EXPECT().ListDishes(gomock.Any()).Return([]models.DishDTO{
		{ID: models.Int64(3), Visit: 7, Name: "Guiso", Servings: 40, UpdatedAt: at},
	}, nil)
	f.gateway.EXPECT().ListIngredients(gomock.Any()).Return([]models.IngredientDTO{
		{ID: models.Int64(11), Dish: 3, Food: 1001, Quantity: 120, UpdatedAt: at},
	}, nil)
	f.gateway.EXPECT().ListFoods(gomock.Any()).Return(nil, nil)

	report, err := f.engine.Sync(ctx)
	require.NoError(t, err)
	assert.True(t, report.Success)
	assert.Equal(t, 1, report.Entity(models.KindInstitution).Inserted)
	assert.Equal(t, 1, report.Entity(models.KindVisit).Inserted)
	assert.Equal(t, 1, report.Entity(models.KindVisit).Orphaned)
	assert.Equal(t, 1, report.Entity(models.KindDish).Inserted)
	assert.Equal(t, 1, report.Entity(models.KindIngredient).Inserted)

	inst, err := f.storages.Institutions.GetByRemoteID(ctx, 42)
	require.NoError(t, err)
	visit, err := f.storages.Visits.GetByRemoteID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, inst.LocalID, visit.InstitutionLocalID)
	assert.False(t, visit.Pending)

	dish, err := f.storages.Dishes.GetByRemoteID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, visit.LocalID, dish.VisitLocalID)

	ing, err := f.storages.Ingredients.GetByRemoteID(ctx, 11)
	require.NoError(t, err)
	assert.Equal(t, dish.LocalID, ing.DishLocalID)
	assert.Equal(t, models.DefaultUnit, ing.Unit)

	_, err = f.storages.Visits.GetByRemoteID(ctx, 8)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSyncEngine_Sync_PullReattachesLostAcknowledgement(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	createInstitution(t, f.storages, "abc", "Escuela 12")

	f.checker.EXPECT().Check(gomock.Any()).Return(nil)
	// the server stored the row but the response never made it back
	f.gateway.EXPECT().PushInstitutions(gomock.Any(), gomock.Any()).Return(nil, nil)
	f.gateway.EXPECT().ListInstitutions(gomock.Any()).Return([]models.InstitutionDTO{
		{LocalID: "abc", ID: models.Int64(42), Name: "Escuela 12", UpdatedAt: time.Now()},
	}, nil)
	f.gateway.EXPECT().ListVisits(gomock.Any()).Return(nil, nil)
	f.gateway.EXPECT().ListDishes(gomock.Any()).Return(nil, nil)
	f.gateway.EXPECT().ListIngredients(gomock.Any()).Return(nil, nil)
	f.gateway.EXPECT().ListFoods(gomock.Any()).Return(nil, nil)

	report, err := f.engine.Sync(ctx)
	require.NoError(t, err)

	er := report.Entity(models.KindInstitution)
	assert.Equal(t, 1, er.Rejected)
	assert.Equal(t, 1, er.Protected)
	assert.Zero(t, er.Inserted)

	got, err := f.storages.Institutions.Get(ctx, "abc")
	require.NoError(t, err)
	require.NotNil(t, got.RemoteID)
	assert.Equal(t, int64(42), *got.RemoteID)
	assert.True(t, got.Pending)

	all, err := f.storages.Institutions.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

// ── Failures ─────────────────────────────────────────────────────────────────

func TestSyncEngine_Sync_Offline(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	createInstitution(t, f.storages, "abc", "Escuela 12")

	f.checker.EXPECT().Check(gomock.Any()).Return(errors.New("dial tcp: connection refused"))

	report, err := f.engine.Sync(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOffline)
	assert.False(t, report.Success)
	assert.False(t, report.Skipped)
	assert.NotEmpty(t, report.Error)

	status, err := f.engine.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, status.Pending)
	assert.Nil(t, status.LastSuccessfulAt)
}

func TestSyncEngine_Sync_NetworkFailureStopsRemoteCalls(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	createInstitution(t, f.storages, "abc", "Escuela 12")

	f.checker.EXPECT().Check(gomock.Any()).Return(nil)
	f.gateway.EXPECT().PushInstitutions(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: connection reset", adapter.ErrNetwork))
	// nothing else may be called

	report, err := f.engine.Sync(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOffline)
	assert.False(t, report.Success)
	assert.Contains(t, report.Entity(models.KindInstitution).PushError, "connection reset")
	assert.Contains(t, report.Entity(models.KindVisit).PushError, "not attempted")
	assert.Contains(t, report.Entity(models.KindIngredient).PullError, "not attempted")

	got, err := f.storages.Institutions.Get(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, got.Pending)
}

func TestSyncEngine_Sync_Unauthorized(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	f.checker.EXPECT().Check(gomock.Any()).Return(nil)
	f.gateway.EXPECT().ListInstitutions(gomock.Any()).
		Return(nil, fmt.Errorf("%w: token rejected", adapter.ErrUnauthorized))

	_, err := f.engine.Sync(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)

	status, err := f.engine.Status(ctx)
	require.NoError(t, err)
	assert.Nil(t, status.LastSuccessfulAt)
}

func TestSyncEngine_Sync_ServerErrorFailsOnlyThatKind(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	f.checker.EXPECT().Check(gomock.Any()).Return(nil)
	f.gateway.EXPECT().ListInstitutions(gomock.Any()).Return(nil, nil)
	f.gateway.EXPECT().ListVisits(gomock.Any()).Return(nil, adapter.ErrInternalServerError)
	f.gateway.EXPECT().ListDishes(gomock.Any()).Return(nil, nil)
	f.gateway.EXPECT().ListIngredients(gomock.Any()).Return(nil, nil)
	f.gateway.EXPECT().ListFoods(gomock.Any()).Return(nil, nil)

	report, err := f.engine.Sync(ctx)
	require.NoError(t, err)
	assert.False(t, report.Success)
	assert.NotEmpty(t, report.Entity(models.KindVisit).PullError)
	assert.Empty(t, report.Entity(models.KindDish).PullError)

	status, err := f.engine.Status(ctx)
	require.NoError(t, err)
	assert.Nil(t, status.LastSuccessfulAt, "a partial cycle is not a successful one")
}

func TestEntitySync_Push_StoreErrorAbortsPhase(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSyncRepository[models.Institution](ctrl)
	gateway := mock.NewMockRemoteGateway(ctrl)

	storeErr := errors.New("disk I/O error")
	repo.EXPECT().ListPending(gomock.Any()).Return(nil, storeErr)

	s := &entitySync[models.Institution, models.InstitutionDTO]{
		kind:    models.KindInstitution,
		repo:    repo,
		toDTO:   institutionToDTO,
		fromDTO: institutionFromDTO,
		meta:    func(r *models.Institution) *models.SyncMeta { return &r.SyncMeta },
		push:    gateway.PushInstitutions,
		list:    gateway.ListInstitutions,
		now:     time.Now,
	}

	var report models.EntityReport
	err := s.Push(context.Background(), &report)
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.False(t, isCycleFatal(err))
}

func TestEntitySync_Push_RemoteIDConflictRejectsRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSyncRepository[models.Institution](ctrl)
	gateway := mock.NewMockRemoteGateway(ctrl)

	row := models.Institution{SyncMeta: models.SyncMeta{LocalID: "abc", Pending: true, UpdatedAt: time.Now()}}
	repo.EXPECT().ListPending(gomock.Any()).Return([]models.Institution{row}, nil)
	gateway.EXPECT().PushInstitutions(gomock.Any(), gomock.Any()).Return([]models.PushResult{ok("abc", 42)}, nil)
	repo.EXPECT().MarkSynced(gomock.Any(), "abc", int64(42), row.UpdatedAt, gomock.Any()).
		Return(false, fmt.Errorf("%w: %w", store.ErrExecutingStatement, store.ErrRemoteIDConflict))

	s := &entitySync[models.Institution, models.InstitutionDTO]{
		kind:  models.KindInstitution,
		repo:  repo,
		toDTO: institutionToDTO,
		push:  gateway.PushInstitutions,
		now:   time.Now,
	}

	var report models.EntityReport
	require.NoError(t, s.Push(context.Background(), &report))
	assert.Equal(t, 1, report.Rejected)
	assert.Zero(t, report.Pushed)
}

func TestMatchResults(t *testing.T) {
	rows := []models.Institution{
		{SyncMeta: models.SyncMeta{LocalID: "a"}},
		{SyncMeta: models.SyncMeta{LocalID: "b"}},
		{SyncMeta: models.SyncMeta{LocalID: "c"}},
	}

	t.Run("by local id in any order", func(t *testing.T) {
		got := matchResults(rows, []models.PushResult{ok("c", 3), ok("a", 1)})
		assert.Len(t, got, 2)
		assert.Equal(t, int64(1), *got[0].ID)
		assert.Equal(t, int64(3), *got[2].ID)
	})

	t.Run("by position without local id", func(t *testing.T) {
		got := matchResults(rows, []models.PushResult{
			{ID: models.Int64(1)}, {ID: models.Int64(2)}, {ID: models.Int64(3)},
		})
		assert.Len(t, got, 3)
		assert.Equal(t, int64(2), *got[1].ID)
	})

	t.Run("unknown local id is ignored", func(t *testing.T) {
		got := matchResults(rows, []models.PushResult{ok("zzz", 9)})
		assert.Empty(t, got)
	})
}

// ── Concurrency / reporting ──────────────────────────────────────────────────

func TestSyncEngine_Sync_ConcurrentCallIsNoop(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})
	f.checker.EXPECT().Check(gomock.Any()).DoAndReturn(func(context.Context) error {
		close(entered)
		<-release
		return errors.New("offline")
	}).Times(1)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = f.engine.Sync(ctx)
	}()

	<-entered
	status, err := f.engine.Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.InProgress)

	report, err := f.engine.Sync(ctx)
	require.NoError(t, err)
	assert.True(t, report.Skipped)

	close(release)
	wg.Wait()
}

func TestSyncEngine_Sync_DetachedFromCallerCancellation(t *testing.T) {
	f := newEngineFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f.checker.EXPECT().Check(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		return ctx.Err()
	})
	f.expectEmptyPull()

	report, err := f.engine.Sync(ctx)
	require.NoError(t, err)
	assert.True(t, report.Success)
}

func TestSyncEngine_Subscribe(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	var got []models.SyncReport
	unsubscribe := f.engine.Subscribe(func(r models.SyncReport) { got = append(got, r) })

	f.checker.EXPECT().Check(gomock.Any()).Return(errors.New("offline")).Times(2)

	_, _ = f.engine.Sync(ctx)
	require.Len(t, got, 1)
	assert.NotEmpty(t, got[0].CycleID)

	unsubscribe()
	unsubscribe()
	_, _ = f.engine.Sync(ctx)
	assert.Len(t, got, 1)
}

func TestSyncEngine_Subscribe_CallbackCanStartNextCycle(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	f.checker.EXPECT().Check(gomock.Any()).Return(errors.New("offline")).Times(2)

	var (
		inProgress []bool
		followUps  []models.SyncReport
		started    bool
	)
	f.engine.Subscribe(func(r models.SyncReport) {
		status, err := f.engine.Status(ctx)
		require.NoError(t, err)
		inProgress = append(inProgress, status.InProgress)

		if !started {
			started = true
			next, _ := f.engine.Sync(ctx)
			followUps = append(followUps, next)
		}
	})

	_, _ = f.engine.Sync(ctx)

	require.Len(t, followUps, 1)
	assert.False(t, followUps[0].Skipped)
	assert.NotEmpty(t, followUps[0].CycleID)
	assert.Equal(t, []bool{false, false}, inProgress)
}

func TestSyncEngine_Sync_CycleIDReachesGateway(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	var seen string
	f.checker.EXPECT().Check(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		seen, _ = utils.GetCycleIDFromContext(ctx)
		return nil
	})
	f.expectEmptyPull()

	report, err := f.engine.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, report.CycleID, seen)
}

// ── Food catalog ─────────────────────────────────────────────────────────────

func TestSyncEngine_Sync_ImportsFoodCatalogOnce(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	foods := []models.Food{
		{Code: 1001, Name: "Arroz blanco", EnergyKcal: 130},
		{Code: 1002, Name: "Lentejas", EnergyKcal: 116},
	}

	f.checker.EXPECT().Check(gomock.Any()).Return(nil).Times(2)
	f.gateway.EXPECT().ListInstitutions(gomock.Any()).Return(nil, nil).Times(2)
	f.gateway.EXPECT().ListVisits(gomock.Any()).Return(nil, nil).Times(2)
	f.gateway.EXPECT().ListDishes(gomock.Any()).Return(nil, nil).Times(2)
	f.gateway.EXPECT().ListIngredients(gomock.Any()).Return(nil, nil).Times(2)
	f.gateway.EXPECT().ListFoods(gomock.Any()).Return(foods, nil).Times(1)

	_, err := f.engine.Sync(ctx)
	require.NoError(t, err)
	_, err = f.engine.Sync(ctx)
	require.NoError(t, err)

	count, err := f.storages.Foods.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	food, err := f.storages.Foods.Get(ctx, 1002)
	require.NoError(t, err)
	assert.Equal(t, "Lentejas", food.Name)
}

func TestSyncEngine_Status_CountsPendingByKind(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	createInstitution(t, f.storages, "abc", "Escuela 12")
	createVisit(t, f.storages, "abc")
	createVisit(t, f.storages, "abc")

	status, err := f.engine.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, status.Pending)
	assert.Equal(t, 1, status.PendingByKind[models.KindInstitution])
	assert.Equal(t, 2, status.PendingByKind[models.KindVisit])
	assert.Equal(t, 0, status.PendingByKind[models.KindDish])
	assert.False(t, status.InProgress)
}
