// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the local
// status API handlers.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies when a request fails.
package app

const (
	// MsgInternalServerError is returned when an unexpected failure occurs
	// that the caller cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgErrorReadingSyncStatus is returned when pending counts or the last
	// successful sync time cannot be read from the local store.
	MsgErrorReadingSyncStatus = "error reading sync status"

	// MsgErrorClearingToken is returned when the stored credential could not
	// be removed.
	MsgErrorClearingToken = "error clearing token"

	// MsgInvalidToken is returned when the submitted bearer token is empty or
	// malformed.
	MsgInvalidToken = "invalid token"

	// MsgTokenIsExpired is returned when the submitted JWT has already
	// expired.
	MsgTokenIsExpired = "token is expired"
)
