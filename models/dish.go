// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DishType classifies an observed dish.
type DishType string

const (
	DishMain    DishType = "principal"
	DishSide    DishType = "guarnicion"
	DishDessert DishType = "postre"
	DishDrink   DishType = "bebida"
	DishOther   DishType = "otro"
)

// Dish is a dish observed during a visit.
type Dish struct {
	SyncMeta

	VisitLocalID string
	Name         string
	Type         DishType
	Servings     int64
	Notes        string
}

// Kind implements [Record].
func (Dish) Kind() EntityKind { return KindDish }

// ParentLocalID implements [Record].
func (d Dish) ParentLocalID() string { return d.VisitLocalID }

// DishDTO is the wire representation of a dish.
type DishDTO struct {
	LocalID   string    `json:"local_id,omitempty"`
	ID        *int64    `json:"id"`
	Visit     int64     `json:"visita"`
	Name      string    `json:"nombre"`
	Type      DishType  `json:"tipo_plato"`
	Servings  int64     `json:"porciones_servidas"`
	Notes     string    `json:"notas"`
	UpdatedAt time.Time `json:"updated_at"`
}
