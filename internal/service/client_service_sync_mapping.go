package service

import (
	"time"

	"github.com/MKhiriev/nutri-audit-sync/models"
)

// remoteMeta builds the bookkeeping of a row received from the server.
func remoteMeta(localID string, id *int64, updatedAt time.Time) models.SyncMeta {
	return models.SyncMeta{
		LocalID:   localID,
		RemoteID:  id,
		UpdatedAt: updatedAt.UTC(),
	}
}

func institutionToDTO(i models.Institution, _ int64) models.InstitutionDTO {
	return models.InstitutionDTO{
		LocalID:      i.LocalID,
		ID:           i.RemoteID,
		Code:         i.Code,
		Name:         i.Name,
		Type:         i.Type,
		Address:      i.Address,
		Neighborhood: i.Neighborhood,
		District:     i.District,
		Active:       i.Active,
		UpdatedAt:    i.UpdatedAt,
	}
}

func institutionFromDTO(d models.InstitutionDTO) (models.Institution, int64) {
	return models.Institution{
		SyncMeta:     remoteMeta(d.LocalID, d.ID, d.UpdatedAt),
		Code:         d.Code,
		Name:         d.Name,
		Type:         d.Type,
		Address:      d.Address,
		Neighborhood: d.Neighborhood,
		District:     d.District,
		Active:       d.Active,
	}, 0
}

func visitToDTO(v models.Visit, institutionID int64) models.VisitDTO {
	return models.VisitDTO{
		LocalID:       v.LocalID,
		ID:            v.RemoteID,
		Institution:   institutionID,
		Date:          v.Date,
		MealType:      v.MealType,
		Observations:  v.Observations,
		FormCompleted: v.FormCompleted,
		FormAnswers:   v.FormAnswers,
		UpdatedAt:     v.UpdatedAt,
	}
}

func visitFromDTO(d models.VisitDTO) (models.Visit, int64) {
	answers := d.FormAnswers
	if answers == nil {
		answers = models.FormAnswers{}
	}
	return models.Visit{
		SyncMeta:      remoteMeta(d.LocalID, d.ID, d.UpdatedAt),
		Date:          d.Date,
		MealType:      d.MealType,
		Observations:  d.Observations,
		FormCompleted: d.FormCompleted,
		FormAnswers:   answers,
	}, d.Institution
}

func dishToDTO(d models.Dish, visitID int64) models.DishDTO {
	return models.DishDTO{
		LocalID:   d.LocalID,
		ID:        d.RemoteID,
		Visit:     visitID,
		Name:      d.Name,
		Type:      d.Type,
		Servings:  d.Servings,
		Notes:     d.Notes,
		UpdatedAt: d.UpdatedAt,
	}
}

func dishFromDTO(d models.DishDTO) (models.Dish, int64) {
	return models.Dish{
		SyncMeta: remoteMeta(d.LocalID, d.ID, d.UpdatedAt),
		Name:     d.Name,
		Type:     d.Type,
		Servings: d.Servings,
		Notes:    d.Notes,
	}, d.Visit
}

func ingredientToDTO(i models.Ingredient, dishID int64) models.IngredientDTO {
	return models.IngredientDTO{
		LocalID:   i.LocalID,
		ID:        i.RemoteID,
		Dish:      dishID,
		Food:      i.FoodCode,
		Quantity:  i.Quantity,
		Unit:      i.Unit,
		Order:     i.Order,
		UpdatedAt: i.UpdatedAt,
	}
}

func ingredientFromDTO(d models.IngredientDTO) (models.Ingredient, int64) {
	unit := d.Unit
	if unit == "" {
		unit = models.DefaultUnit
	}
	return models.Ingredient{
		SyncMeta: remoteMeta(d.LocalID, d.ID, d.UpdatedAt),
		FoodCode: d.Food,
		Quantity: d.Quantity,
		Unit:     unit,
		Order:    d.Order,
	}, d.Dish
}
