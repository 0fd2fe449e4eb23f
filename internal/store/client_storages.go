package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/nutri-audit-sync/internal/config"
	"github.com/MKhiriev/nutri-audit-sync/internal/logger"
	"github.com/MKhiriev/nutri-audit-sync/models"
)

// ClientStorages groups all local repositories into a single value that can
// be passed around the service layer.
type ClientStorages struct {
	Institutions SyncRepository[models.Institution]
	Visits       SyncRepository[models.Visit]
	Dishes       SyncRepository[models.Dish]
	Ingredients  SyncRepository[models.Ingredient]

	// State holds engine bookkeeping and the bearer credential.
	State StateRepository
	// Foods is the read-only nutrition catalog.
	Foods FoodRepository

	db *DB
}

// NewClientStorages initialises the local storage layer. It performs the
// following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs every repository on top of the shared connection.
func NewClientStorages(ctx context.Context, cfg config.Storage, ids IDGenerator, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewClientStoragesFromDB(db, ids), nil
}

// NewClientStoragesFromDB wires the repositories on top of an already
// migrated database.
func NewClientStoragesFromDB(db *DB, ids IDGenerator) *ClientStorages {
	return &ClientStorages{
		Institutions: NewInstitutionRepository(db, ids),
		Visits:       NewVisitRepository(db, ids),
		Dishes:       NewDishRepository(db, ids),
		Ingredients:  NewIngredientRepository(db, ids),
		State:        NewStateRepository(db),
		Foods:        NewFoodRepository(db),
		db:           db,
	}
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
