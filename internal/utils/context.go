// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, HTTP response
// writing, HTTP client initialization, JWT inspection, local identifier
// generation and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// CycleIDCtxKey is the key used to store the identifier of the running sync
// cycle in the context. Outbound requests made during the cycle carry it so
// server logs can be correlated with client logs.
var CycleIDCtxKey = contextKey("cycleID")

// WithCycleID returns a copy of ctx carrying the sync cycle identifier.
func WithCycleID(ctx context.Context, cycleID string) context.Context {
	return context.WithValue(ctx, CycleIDCtxKey, cycleID)
}

// GetCycleIDFromContext retrieves the sync cycle identifier from the context.
//
// Returns the identifier and an ok flag:
//   - ok == true: value is found, is a string and is not empty
//   - ok == false: value is missing, empty or has an unexpected type
func GetCycleIDFromContext(ctx context.Context) (string, bool) {
	cycleID, ok := ctx.Value(CycleIDCtxKey).(string)
	return cycleID, ok && cycleID != ""
}
