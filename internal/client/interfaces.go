// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the background workers and blocks until ctx is cancelled or
	// one of them fails.
	Run(ctx context.Context) error
	// Close releases every resource held by the client.
	Close() error
}
