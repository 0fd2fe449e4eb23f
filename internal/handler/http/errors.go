// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors returned when parsing the "Authorization" header of a
// token update. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the request does not
	// include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header cannot be
	// split into a scheme and a token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the header has the scheme prefix but
	// the token value itself is empty.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
