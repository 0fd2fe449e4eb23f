// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EntityKind names a synchronizable entity type. The value doubles as the
// local table name.
type EntityKind string

const (
	KindInstitution EntityKind = "institutions"
	KindVisit       EntityKind = "visits"
	KindDish        EntityKind = "dishes"
	KindIngredient  EntityKind = "ingredients"
)

// PushOrder lists entity kinds parents first. Push and pull both walk it in
// this order so that a child is only handled after its parent.
var PushOrder = []EntityKind{KindInstitution, KindVisit, KindDish, KindIngredient}

// SyncMeta is the bookkeeping every synchronizable row carries.
type SyncMeta struct {
	// LocalID is generated on the device when the row is created. It is
	// never reassigned and is sent upstream only as "local_id".
	LocalID string `json:"local_id"`

	// RemoteID is assigned by the server on the first acknowledged push.
	// Once set it never changes.
	RemoteID *int64 `json:"id"`

	// Pending marks rows with local changes the server has not acknowledged.
	Pending bool `json:"-"`

	// UpdatedAt is refreshed on every local mutation and is the
	// last-write-wins authority during pull.
	UpdatedAt time.Time `json:"updated_at"`

	// SyncedAt is stamped when a push or pull completes for the row.
	SyncedAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"-"`
}

// Meta returns a copy of the bookkeeping fields. Entities embed SyncMeta and
// inherit this method, which lets generic code read them.
func (m SyncMeta) Meta() SyncMeta {
	return m
}

// HasRemoteID reports whether the server already knows the row.
func (m SyncMeta) HasRemoteID() bool {
	return m.RemoteID != nil
}

// Record is implemented by every synchronizable entity.
type Record interface {
	Meta() SyncMeta
	Kind() EntityKind
	// ParentLocalID returns the local id of the parent row, or "" for roots.
	ParentLocalID() string
}

// Int64 returns a pointer to v.
func Int64(v int64) *int64 {
	return &v
}
