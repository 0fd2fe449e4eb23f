// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the sync client runtime.
//
// It wires the local store, the remote gateway, the reachability monitor, the
// sync engine and the optional local status API into a single process
// lifecycle. Short-lived commands (one sync, status, token management) use the
// same wiring without starting the background workers.
package client
