// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/nutri-audit-sync/internal/logger"
)

// checkHTTPMethod is registered as the router's MethodNotAllowed handler.
// chi calls it when the path is known but the method is not; the request
// is answered like an unknown route, with 404 instead of 405.
func (h *Handler) checkHTTPMethod(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("func", "*Handler.checkHTTPMethod").
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("method not registered for route")

	http.NotFound(w, r)
}
