package http

import (
	"net/http"

	"github.com/MKhiriev/nutri-audit-sync/internal/app"
	"github.com/MKhiriev/nutri-audit-sync/internal/logger"
	"github.com/MKhiriev/nutri-audit-sync/internal/utils"
)

func (h *Handler) getSyncStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	status, err := h.services.SyncEngine.Status(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getSyncStatus").Msg("error reading sync status")
		http.Error(w, app.MsgErrorReadingSyncStatus, statusFromError(err))
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}

// syncNow runs a manual cycle and answers with its report. The report is
// written for failed cycles too, with the status mapped from the error.
func (h *Handler) syncNow(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	report, err := h.services.SyncJob.SyncNow(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.syncNow").Msg("manual sync failed")
		utils.WriteJSON(w, report, statusFromError(err))
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) getLastReport(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	report := h.lastReport
	h.mu.RUnlock()

	if report == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) appForeground(w http.ResponseWriter, r *http.Request) {
	h.monitor.NotifyForeground()
	w.WriteHeader(http.StatusAccepted)
}
