package store

import (
	"github.com/MKhiriev/nutri-audit-sync/models"
)

var institutionsTable = entityTable[models.Institution]{
	name:    string(models.KindInstitution),
	columns: []string{"code", "name", "type", "address", "neighborhood", "district", "active"},
	values: func(i models.Institution) []any {
		return []any{i.Code, i.Name, i.Type, i.Address, i.Neighborhood, i.District, i.Active}
	},
	fields: func(i *models.Institution) []any {
		return []any{&i.Code, &i.Name, &i.Type, &i.Address, &i.Neighborhood, &i.District, &i.Active}
	},
	meta: func(i *models.Institution) *models.SyncMeta { return &i.SyncMeta },
}

var visitsTable = entityTable[models.Visit]{
	name:    string(models.KindVisit),
	columns: []string{"institution_local_id", "date", "meal_type", "observations", "form_completed", "form_answers"},
	values: func(v models.Visit) []any {
		return []any{v.InstitutionLocalID, v.Date, v.MealType, v.Observations, v.FormCompleted, v.FormAnswers}
	},
	fields: func(v *models.Visit) []any {
		return []any{&v.InstitutionLocalID, &v.Date, &v.MealType, &v.Observations, &v.FormCompleted, &v.FormAnswers}
	},
	meta: func(v *models.Visit) *models.SyncMeta { return &v.SyncMeta },
}

var dishesTable = entityTable[models.Dish]{
	name:    string(models.KindDish),
	columns: []string{"visit_local_id", "name", "type", "servings", "notes"},
	values: func(d models.Dish) []any {
		return []any{d.VisitLocalID, d.Name, d.Type, d.Servings, d.Notes}
	},
	fields: func(d *models.Dish) []any {
		return []any{&d.VisitLocalID, &d.Name, &d.Type, &d.Servings, &d.Notes}
	},
	meta: func(d *models.Dish) *models.SyncMeta { return &d.SyncMeta },
}

var ingredientsTable = entityTable[models.Ingredient]{
	name:    string(models.KindIngredient),
	columns: []string{"dish_local_id", "food_code", "quantity", "unit", "sort_order"},
	values: func(i models.Ingredient) []any {
		unit := i.Unit
		if unit == "" {
			unit = models.DefaultUnit
		}
		return []any{i.DishLocalID, i.FoodCode, i.Quantity, unit, i.Order}
	},
	fields: func(i *models.Ingredient) []any {
		return []any{&i.DishLocalID, &i.FoodCode, &i.Quantity, &i.Unit, &i.Order}
	},
	meta: func(i *models.Ingredient) *models.SyncMeta { return &i.SyncMeta },
}

func NewInstitutionRepository(db *DB, ids IDGenerator) SyncRepository[models.Institution] {
	return newSyncRepository(db, institutionsTable, ids)
}

func NewVisitRepository(db *DB, ids IDGenerator) SyncRepository[models.Visit] {
	return newSyncRepository(db, visitsTable, ids)
}

func NewDishRepository(db *DB, ids IDGenerator) SyncRepository[models.Dish] {
	return newSyncRepository(db, dishesTable, ids)
}

func NewIngredientRepository(db *DB, ids IDGenerator) SyncRepository[models.Ingredient] {
	return newSyncRepository(db, ingredientsTable, ids)
}
