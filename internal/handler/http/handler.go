package http

import (
	"sync"

	"github.com/MKhiriev/nutri-audit-sync/internal/logger"
	"github.com/MKhiriev/nutri-audit-sync/internal/service"
	"github.com/MKhiriev/nutri-audit-sync/models"
)

// ForegroundNotifier receives the application-foreground signal.
type ForegroundNotifier interface {
	NotifyForeground()
}

type Handler struct {
	services  *service.ClientServices
	monitor   ForegroundNotifier
	buildInfo models.AppBuildInfo

	mu          sync.RWMutex
	lastReport  *models.SyncReport
	unsubscribe func()

	logger *logger.Logger
}

// NewHandler creates the handler and subscribes it to cycle reports, so the
// last one can be served to clients that were not waiting for it.
func NewHandler(services *service.ClientServices, monitor ForegroundNotifier, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	h := &Handler{
		services:  services,
		monitor:   monitor,
		buildInfo: buildInfo,
		logger:    logger,
	}
	h.unsubscribe = services.SyncEngine.Subscribe(h.recordReport)

	logger.Info().Msg("http handler created")
	return h
}

func (h *Handler) recordReport(report models.SyncReport) {
	h.mu.Lock()
	h.lastReport = &report
	h.mu.Unlock()
}

// Close stops receiving cycle reports.
func (h *Handler) Close() {
	if h.unsubscribe != nil {
		h.unsubscribe()
	}
}
