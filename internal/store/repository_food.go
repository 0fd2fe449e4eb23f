package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/nutri-audit-sync/internal/logger"
	"github.com/MKhiriev/nutri-audit-sync/models"
)

var foodColumns = []string{"code", "name", "category_id", "energy_kcal", "proteins_g", "fats_g", "carbohydrate_g"}

type foodRepository struct {
	*DB
}

func NewFoodRepository(db *DB) FoodRepository {
	return &foodRepository{DB: db}
}

func (f *foodRepository) Count(ctx context.Context) (int, error) {
	query, args, err := builder.Select("COUNT(*)").From("foods").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err := f.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "foodRepository.Count").
			Msg("failed to count foods")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func (f *foodRepository) Get(ctx context.Context, code int64) (models.Food, error) {
	query, args, err := builder.Select(foodColumns...).
		From("foods").
		Where(sq.Eq{"code": code}).
		ToSql()
	if err != nil {
		return models.Food{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var food models.Food
	err = f.QueryRowContext(ctx, query, args...).Scan(
		&food.Code,
		&food.Name,
		&food.CategoryID,
		&food.EnergyKcal,
		&food.ProteinsG,
		&food.FatsG,
		&food.CarbohydrateG,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Food{}, fmt.Errorf("food %d: %w", code, ErrNotFound)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "foodRepository.Get").
			Int64("code", code).
			Msg("failed to scan food row")
		return models.Food{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return food, nil
}

// SaveAll upserts the catalog in one transaction.
func (f *foodRepository) SaveAll(ctx context.Context, foods []models.Food) error {
	if len(foods) == 0 {
		return nil
	}

	err := f.withTx(ctx, func(tx *sql.Tx) error {
		for _, food := range foods {
			query, args, err := builder.Insert("foods").
				Options("OR REPLACE").
				Columns(foodColumns...).
				Values(food.Code, food.Name, food.CategoryID, food.EnergyKcal, food.ProteinsG, food.FatsG, food.CarbohydrateG).
				ToSql()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("%w (code=%d): %w", ErrExecutingStatement, food.Code, err)
			}
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "foodRepository.SaveAll").
			Int("count", len(foods)).
			Msg("failed to save food catalog")
		return err
	}

	return nil
}
