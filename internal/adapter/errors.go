package adapter

import "errors"

// Sentinel errors returned by [RemoteGateway] implementations.
var (
	// ErrNetwork means the server could not be reached or answered with a
	// gateway error. The sync engine stops making remote calls for the rest
	// of the cycle when it sees this error.
	ErrNetwork = errors.New("remote api unreachable")

	// ErrUnauthorized means the bearer credential is missing or was rejected.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrNoCredentials is returned by a [CredentialStore] with no usable
	// token. The gateway reports it wrapped in [ErrUnauthorized].
	ErrNoCredentials = errors.New("no credentials available")

	// ErrPageLimit is returned when a collection has more pages than the
	// configured maximum.
	ErrPageLimit = errors.New("collection page limit reached")

	// ErrMalformedResponse is returned when a 2xx body cannot be decoded.
	ErrMalformedResponse = errors.New("malformed response body")

	// ErrResultMismatch is returned when a bulk response has a different
	// number of results than rows were sent and none of them echoes a
	// local id, so results cannot be paired with rows.
	ErrResultMismatch = errors.New("bulk response does not match request")
)

// Errors mapped from HTTP status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrGatewayTimeout      = errors.New("gateway timeout")
)
