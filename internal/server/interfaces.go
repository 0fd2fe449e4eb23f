package server

import "context"

// Server defines the lifecycle contract for transport servers managed by
// this package.
//
// Run serves requests until ctx is cancelled, then shuts the server down
// and returns. It satisfies workers.Worker.
type Server interface {
	Run(ctx context.Context) error
}
