package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/nutri-audit-sync/internal/app"
	"github.com/MKhiriev/nutri-audit-sync/internal/logger"
	"github.com/MKhiriev/nutri-audit-sync/internal/service"
)

// setToken stores the bearer token carried in the request's "Authorization"
// header, as issued by the remote login flow.
func (h *Handler) setToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		log.Err(ErrEmptyAuthorizationHeader).Send()
		http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusBadRequest)
		return
	}

	tokenString, err := getTokenFromAuthHeader(authHeader)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.Credentials.SetToken(r.Context(), tokenString); err != nil {
		log.Err(err).Str("func", "*Handler.setToken").Msg("error storing token")
		http.Error(w, tokenErrorMessage(err), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) clearToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.services.Credentials.Invalidate(r.Context()); err != nil {
		log.Err(err).Str("func", "*Handler.clearToken").Msg("error clearing token")
		http.Error(w, app.MsgErrorClearingToken, statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func tokenErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrTokenIsExpired):
		return app.MsgTokenIsExpired
	case errors.Is(err, service.ErrEmptyToken):
		return app.MsgInvalidToken
	default:
		return app.MsgInternalServerError
	}
}

// getTokenFromAuthHeader extracts the token from a raw "Authorization"
// header value of the form "<scheme> <token>".
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] if the header has no token part.
//   - [ErrEmptyToken] if the token part is empty.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
