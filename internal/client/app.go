package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/nutri-audit-sync/internal/adapter"
	"github.com/MKhiriev/nutri-audit-sync/internal/config"
	myHTTP "github.com/MKhiriev/nutri-audit-sync/internal/handler/http"
	"github.com/MKhiriev/nutri-audit-sync/internal/logger"
	"github.com/MKhiriev/nutri-audit-sync/internal/reachability"
	"github.com/MKhiriev/nutri-audit-sync/internal/server"
	"github.com/MKhiriev/nutri-audit-sync/internal/service"
	"github.com/MKhiriev/nutri-audit-sync/internal/store"
	"github.com/MKhiriev/nutri-audit-sync/internal/utils"
	"github.com/MKhiriev/nutri-audit-sync/internal/workers"
	"github.com/MKhiriev/nutri-audit-sync/models"
)

// App owns every long-lived component of the sync client.
type App struct {
	storages *store.ClientStorages
	services *service.ClientServices
	monitor  *reachability.Monitor

	// handler and server are nil when the status API is disabled.
	handler *myHTTP.Handler
	server  server.Server

	logger *logger.Logger
}

// NewApp opens the local database, stores the bootstrap token from cfg.Auth
// when one is configured and wires the services on top. The caller must
// Close the returned App.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, utils.NewUUIDGenerator(), logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	app, err := newApp(ctx, cfg, storages, buildInfo, logger)
	if err != nil {
		storages.Close()
		return nil, err
	}
	return app, nil
}

func newApp(ctx context.Context, cfg *config.ClientConfig, storages *store.ClientStorages, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	credentials := service.NewCredentialService(storages.State)
	if cfg.Auth.Token != "" {
		if err := credentials.SetToken(ctx, cfg.Auth.Token); err != nil {
			return nil, fmt.Errorf("store bootstrap token: %w", err)
		}
	}

	gateway, err := adapter.NewHTTPGateway(cfg.Adapter, credentials, logger)
	if err != nil {
		return nil, fmt.Errorf("create remote gateway: %w", err)
	}

	monitor := reachability.NewMonitor(gateway, cfg.Workers.ProbeInterval, logger)
	services := service.NewClientServices(storages, gateway, credentials, monitor, monitor, cfg.Workers, logger)

	app := &App{
		storages: storages,
		services: services,
		monitor:  monitor,
		logger:   logger,
	}

	if cfg.Server.HTTPAddress != "" {
		app.handler = myHTTP.NewHandler(services, monitor, buildInfo, logger)
		app.server, err = server.NewServer(app.handler, cfg.Server, logger)
		if err != nil {
			app.handler.Close()
			return nil, fmt.Errorf("create status server: %w", err)
		}
	}

	return app, nil
}

// Run starts the reachability monitor, the sync scheduler and, when
// configured, the status API. It blocks until ctx is cancelled or a worker
// fails.
func (a *App) Run(ctx context.Context) error {
	ws := []workers.Worker{a.monitor, a.services.SyncJob}
	if a.server != nil {
		ws = append(ws, a.server)
	}

	a.logger.Info().Int("workers", len(ws)).Msg("sync client started")
	err := workers.NewWorkers(ws...).Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	a.logger.Info().Msg("sync client stopped")
	return nil
}

// SyncOnce runs a single cycle in the foreground.
func (a *App) SyncOnce(ctx context.Context) (models.SyncReport, error) {
	return a.services.SyncJob.SyncNow(ctx)
}

func (a *App) Status(ctx context.Context) (models.SyncStatus, error) {
	return a.services.SyncEngine.Status(ctx)
}

func (a *App) SetToken(ctx context.Context, token string) error {
	return a.services.Credentials.SetToken(ctx, token)
}

func (a *App) ClearToken(ctx context.Context) error {
	return a.services.Credentials.Invalidate(ctx)
}

// Close stops the monitor and releases the database.
func (a *App) Close() error {
	if a.handler != nil {
		a.handler.Close()
	}
	a.monitor.Stop()
	return a.storages.Close()
}
