package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	traceIDHeader = "X-Trace-ID"
	// maxTraceIDLen bounds a caller supplied trace id before it reaches the
	// logs.
	maxTraceIDLen = 128
)

// withTraceID tags the request logger with a trace id, echoing the one the
// UI shell sent or generating a new one.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" || len(traceID) > maxTraceIDLen {
			traceID = uuid.NewString()
		}

		l := h.logger.With().Str("trace_id", traceID).Logger()
		ctx := l.WithContext(r.Context())
		zerolog.Ctx(ctx).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("status api request")

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
