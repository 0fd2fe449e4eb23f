// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// InstitutionKind is the type of audited institution.
type InstitutionKind string

const (
	InstitutionSchool    InstitutionKind = "escuela"
	InstitutionCDI       InstitutionKind = "cdi"
	InstitutionHome      InstitutionKind = "hogar"
	InstitutionGeriatric InstitutionKind = "geriatrico"
	InstitutionOther     InstitutionKind = "otro"
)

// Institution is an audited establishment (school, care home, ...). It is
// the root of the entity tree and has no parent.
type Institution struct {
	SyncMeta

	Code         string
	Name         string
	Type         InstitutionKind
	Address      string
	Neighborhood string
	District     string
	Active       bool
}

// Kind implements [Record].
func (Institution) Kind() EntityKind { return KindInstitution }

// ParentLocalID implements [Record]. Institutions are roots.
func (Institution) ParentLocalID() string { return "" }

// InstitutionDTO is the wire representation used by the bulk sync and
// collection endpoints.
type InstitutionDTO struct {
	LocalID      string          `json:"local_id,omitempty"`
	ID           *int64          `json:"id"`
	Code         string          `json:"codigo"`
	Name         string          `json:"nombre"`
	Type         InstitutionKind `json:"tipo"`
	Address      string          `json:"direccion"`
	Neighborhood string          `json:"barrio"`
	District     string          `json:"comuna"`
	Active       bool            `json:"activo"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
