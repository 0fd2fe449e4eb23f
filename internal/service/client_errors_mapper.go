// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/nutri-audit-sync/internal/adapter"
)

// isCycleFatal reports whether err means no further remote call can succeed
// during the current cycle.
func isCycleFatal(err error) bool {
	return errors.Is(err, adapter.ErrNetwork) ||
		errors.Is(err, adapter.ErrUnauthorized) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled)
}

// mapAdapterError translates the adapter's transport error into a service error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	case errors.Is(err, adapter.ErrNetwork):
		return fmt.Errorf("%w: %w", ErrOffline, err)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrCycleTimeout, err)
	}

	return err
}
