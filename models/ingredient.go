// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DefaultUnit is used when an ingredient is recorded without a unit.
const DefaultUnit = "g"

// Ingredient is a food item and quantity that makes up a dish.
type Ingredient struct {
	SyncMeta

	DishLocalID string
	// FoodCode references the remote food catalog.
	FoodCode int64
	Quantity float64
	Unit     string
	Order    int64
}

// Kind implements [Record].
func (Ingredient) Kind() EntityKind { return KindIngredient }

// ParentLocalID implements [Record].
func (i Ingredient) ParentLocalID() string { return i.DishLocalID }

// IngredientDTO is the wire representation of an ingredient.
type IngredientDTO struct {
	LocalID   string    `json:"local_id,omitempty"`
	ID        *int64    `json:"id"`
	Dish      int64     `json:"plato"`
	Food      int64     `json:"alimento"`
	Quantity  float64   `json:"cantidad"`
	Unit      string    `json:"unidad"`
	Order     int64     `json:"orden"`
	UpdatedAt time.Time `json:"updated_at"`
}
