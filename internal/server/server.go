package server

import (
	"github.com/MKhiriev/nutri-audit-sync/internal/config"
	myHTTP "github.com/MKhiriev/nutri-audit-sync/internal/handler/http"
	"github.com/MKhiriev/nutri-audit-sync/internal/logger"
)

// NewServer creates the HTTP server for handler. It returns
// errNoListenAddress when no listen address is configured.
func NewServer(handler *myHTTP.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" {
		return nil, errNoListenAddress
	}

	return newHTTPServer(handler.Init(), cfg.HTTPAddress, logger), nil
}
