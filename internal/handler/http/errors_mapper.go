package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/nutri-audit-sync/internal/service"
	"github.com/MKhiriev/nutri-audit-sync/internal/store"
)

// errorStatuses is checked in order; the first sentinel found in the error
// chain decides the status.
var errorStatuses = []struct {
	err    error
	status int
}{
	{service.ErrUnauthorized, http.StatusUnauthorized},
	{service.ErrOffline, http.StatusServiceUnavailable},
	{service.ErrCycleTimeout, http.StatusGatewayTimeout},
	{service.ErrTokenIsExpired, http.StatusBadRequest},
	{service.ErrEmptyToken, http.StatusBadRequest},

	{ErrEmptyAuthorizationHeader, http.StatusBadRequest},
	{ErrInvalidAuthorizationHeader, http.StatusBadRequest},
	{ErrEmptyToken, http.StatusBadRequest},

	{store.ErrNotFound, http.StatusNotFound},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
