package service

import "errors"

var (
	// ErrOffline is returned when the remote API cannot be reached at the
	// start of a cycle or stops answering during one.
	ErrOffline = errors.New("remote api is offline")

	// ErrUnauthorized is returned when no usable credential exists or the
	// server rejected it. The user has to provide a new token.
	ErrUnauthorized = errors.New("sync is not authorized")

	// ErrCycleTimeout is returned when a cycle runs longer than the configured
	// cycle timeout.
	ErrCycleTimeout = errors.New("sync cycle timed out")

	ErrTokenIsExpired = errors.New("token is expired")
	ErrEmptyToken     = errors.New("empty token")
)
