// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// MealType is the meal observed during a visit.
type MealType string

const (
	MealBreakfast MealType = "desayuno"
	MealLunch     MealType = "almuerzo"
	MealSnack     MealType = "merienda"
	MealDinner    MealType = "cena"
	MealPacked    MealType = "vianda"
)

// Visit is one audit visit to an institution.
type Visit struct {
	SyncMeta

	// InstitutionLocalID references the parent institution by its local id.
	InstitutionLocalID string
	// Date is the visit day in YYYY-MM-DD form.
	Date          string
	MealType      MealType
	Observations  string
	FormCompleted bool
	FormAnswers   FormAnswers
}

// Kind implements [Record].
func (Visit) Kind() EntityKind { return KindVisit }

// ParentLocalID implements [Record].
func (v Visit) ParentLocalID() string { return v.InstitutionLocalID }

// VisitDTO is the wire representation of a visit. Institution carries the
// parent's remote id.
type VisitDTO struct {
	LocalID       string      `json:"local_id,omitempty"`
	ID            *int64      `json:"id"`
	Institution   int64       `json:"institucion"`
	Date          string      `json:"fecha"`
	MealType      MealType    `json:"tipo_comida"`
	Observations  string      `json:"observaciones"`
	FormCompleted bool        `json:"formulario_completado"`
	FormAnswers   FormAnswers `json:"formulario_respuestas"`
	UpdatedAt     time.Time   `json:"updated_at"`
}
