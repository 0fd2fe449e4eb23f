// Package server runs the local HTTP API.
//
// It owns the listener lifecycle: serving until the run context is
// cancelled, then shutting down gracefully.
package server
