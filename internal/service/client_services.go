package service

import (
	"github.com/MKhiriev/nutri-audit-sync/internal/adapter"
	"github.com/MKhiriev/nutri-audit-sync/internal/config"
	"github.com/MKhiriev/nutri-audit-sync/internal/logger"
	"github.com/MKhiriev/nutri-audit-sync/internal/store"
)

type ClientServices struct {
	Credentials CredentialService
	SyncEngine  SyncEngine
	SyncJob     SyncScheduler
}

// NewClientServices wires the engine and its scheduler. credentials must be
// the same store the gateway reads its token from.
func NewClientServices(storages *store.ClientStorages, gateway adapter.RemoteGateway, credentials CredentialService,
	checker ConnectivityChecker, triggers TriggerSource, cfg config.Workers, logger *logger.Logger) *ClientServices {
	engine := NewSyncEngine(storages, gateway, checker, cfg, logger)

	return &ClientServices{
		Credentials: credentials,
		SyncEngine:  engine,
		SyncJob:     NewClientSyncJob(engine, triggers, cfg, logger),
	}
}
