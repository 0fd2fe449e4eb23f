// Package http implements the local HTTP API the user interface talks to.
//
// It exposes the sync status, a manual sync trigger, the foreground signal
// of the reachability monitor and the credential endpoints. Request tracing
// and access logging are handled here before requests are delegated to the
// service layer.
package http
