// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// PushStatus is the per-row verdict returned by a bulk sync endpoint.
type PushStatus string

const (
	PushStatusOK    PushStatus = "ok"
	PushStatusError PushStatus = "error"
)

// PushResult is one element of a bulk sync response. Results come back in
// the order the rows were submitted.
type PushResult struct {
	LocalID string     `json:"local_id"`
	ID      *int64     `json:"id"`
	Status  PushStatus `json:"status"`
	Error   string     `json:"error,omitempty"`
}

// Accepted reports whether the server confirmed the row and returned the
// remote id it is stored under.
func (r PushResult) Accepted() bool {
	return r.Status != PushStatusError && r.ID != nil
}

// Page is the paginated envelope returned by collection endpoints.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// DecodePage decodes a collection response that is either a paged envelope
// or a bare JSON array. A bare array is returned as a single page with no
// next link.
func DecodePage[T any](body []byte) (Page[T], error) {
	var items []T
	if err := json.Unmarshal(body, &items); err == nil {
		return Page[T]{Count: len(items), Results: items}, nil
	}

	var page Page[T]
	if err := json.Unmarshal(body, &page); err != nil {
		return Page[T]{}, err
	}
	return page, nil
}

// EntityReport summarises what one sync cycle did for one entity kind.
type EntityReport struct {
	Kind EntityKind `json:"kind"`

	// Pushed counts rows acknowledged by the server.
	Pushed int `json:"pushed"`
	// Rejected counts rows the server marked as errored or omitted. They
	// stay pending.
	Rejected int `json:"rejected"`
	// Deferred counts rows whose parent had no remote id yet.
	Deferred int `json:"deferred"`
	// Superseded counts acknowledged rows that were edited again while the
	// push was in flight; they got their remote id but stay pending.
	Superseded int `json:"superseded"`

	Inserted  int `json:"inserted"`
	Updated   int `json:"updated"`
	Unchanged int `json:"unchanged"`
	// Protected counts remote rows ignored because the local copy is pending.
	Protected int `json:"protected"`
	// Orphaned counts remote rows skipped because their parent is unknown.
	Orphaned int `json:"orphaned"`

	PushError string `json:"push_error,omitempty"`
	PullError string `json:"pull_error,omitempty"`
}

// Failed reports whether either phase ended with an error for this kind.
func (r EntityReport) Failed() bool {
	return r.PushError != "" || r.PullError != ""
}

// SyncReport is the outcome of one Sync call.
type SyncReport struct {
	CycleID    string    `json:"cycle_id,omitempty"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	// Skipped is true when another cycle was already running and this call
	// did nothing.
	Skipped bool `json:"skipped"`

	// Success is true when every phase of every entity kind completed.
	// Row-level rejections do not make a cycle unsuccessful.
	Success bool `json:"success"`

	Entities []EntityReport `json:"entities,omitempty"`

	Error string `json:"error,omitempty"`
}

// Entity returns the report for kind, or a zero report.
func (r SyncReport) Entity(kind EntityKind) EntityReport {
	for _, e := range r.Entities {
		if e.Kind == kind {
			return e
		}
	}
	return EntityReport{Kind: kind}
}

// SyncStatus is the user-visible state of the engine: how many rows still
// wait for the server and when the last successful cycle finished.
type SyncStatus struct {
	Pending          int                `json:"pending"`
	PendingByKind    map[EntityKind]int `json:"pending_by_kind"`
	LastSuccessfulAt *time.Time         `json:"last_successful_sync,omitempty"`
	InProgress       bool               `json:"in_progress"`
}
