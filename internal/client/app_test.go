package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/nutri-audit-sync/internal/config"
	"github.com/MKhiriev/nutri-audit-sync/internal/logger"
	"github.com/MKhiriev/nutri-audit-sync/internal/service"
	"github.com/MKhiriev/nutri-audit-sync/models"
)

// newRemote serves an empty remote: every collection is empty and health
// always answers.
func newRemote(t *testing.T) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var authed atomic.Int64

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer opaque-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		authed.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &authed
}

func newTestConfig(t *testing.T, remoteURL string) *config.ClientConfig {
	t.Helper()
	return &config.ClientConfig{
		Storage: config.Storage{DB: config.DB{DSN: filepath.Join(t.TempDir(), "audit.db")}},
		Adapter: config.Adapter{
			HTTPAddress:    remoteURL,
			RequestTimeout: 2 * time.Second,
			PageSize:       50,
			MaxPages:       5,
		},
		Workers: config.Workers{
			SyncInterval:    time.Hour,
			MinSyncInterval: time.Minute,
			ProbeInterval:   time.Hour,
			CycleTimeout:    10 * time.Second,
		},
		Auth: config.Auth{Token: "opaque-token"},
	}
}

func newTestApp(t *testing.T, cfg *config.ClientConfig) *App {
	t.Helper()
	app, err := NewApp(context.Background(), cfg, models.NewAppBuildInfo("dev", "", ""), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func TestApp_SyncOnce(t *testing.T) {
	remote, authed := newRemote(t)
	app := newTestApp(t, newTestConfig(t, remote.URL))
	ctx := context.Background()

	report, err := app.SyncOnce(ctx)
	require.NoError(t, err)
	assert.True(t, report.Success)
	assert.NotEmpty(t, report.CycleID)
	assert.Len(t, report.Entities, len(models.PushOrder))
	assert.Positive(t, authed.Load())

	status, err := app.Status(ctx)
	require.NoError(t, err)
	assert.Zero(t, status.Pending)
	require.NotNil(t, status.LastSuccessfulAt)
}

func TestApp_ClearToken_SyncUnauthorized(t *testing.T) {
	remote, _ := newRemote(t)
	app := newTestApp(t, newTestConfig(t, remote.URL))
	ctx := context.Background()

	require.NoError(t, app.ClearToken(ctx))

	report, err := app.SyncOnce(ctx)
	require.ErrorIs(t, err, service.ErrUnauthorized)
	assert.False(t, report.Success)

	require.NoError(t, app.SetToken(ctx, "opaque-token"))
	report, err = app.SyncOnce(ctx)
	require.NoError(t, err)
	assert.True(t, report.Success)
}

func TestApp_SyncOnce_Offline(t *testing.T) {
	remote, _ := newRemote(t)
	cfg := newTestConfig(t, remote.URL)
	remote.Close()

	app := newTestApp(t, cfg)

	report, err := app.SyncOnce(context.Background())
	require.ErrorIs(t, err, service.ErrOffline)
	assert.Empty(t, report.Entities)
}

func TestNewApp_InvalidAdapterAddress(t *testing.T) {
	cfg := newTestConfig(t, "http://")

	_, err := NewApp(context.Background(), cfg, models.AppBuildInfo{}, logger.Nop())
	assert.Error(t, err)
}

func TestApp_Run_StopsOnCancel(t *testing.T) {
	remote, _ := newRemote(t)
	cfg := newTestConfig(t, remote.URL)
	cfg.Server.HTTPAddress = "127.0.0.1:0"
	app := newTestApp(t, cfg)
	require.NotNil(t, app.server)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

var _ Client = (*App)(nil)
