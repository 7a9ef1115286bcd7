package repositories

import (
	"context"

	"infinite-experiment/flightdeck/internal/models/dtos"
	"infinite-experiment/flightdeck/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// DestinationRepository handles destination table operations
type DestinationRepository struct {
	db *gormlib.DB
}

// NewDestinationRepository creates a new destination repository
func NewDestinationRepository(db *gormlib.DB) *DestinationRepository {
	return &DestinationRepository{db: db}
}

// FindByCode finds a destination by its short code (case-insensitive).
// Returns nil when no row matches.
func (r *DestinationRepository) FindByCode(ctx context.Context, code string) (*gorm.Destination, error) {
	var destination gorm.Destination

	err := r.db.WithContext(ctx).
		Where("UPPER(destination_code) = UPPER(?)", code).
		First(&destination).Error

	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &destination, nil
}

// Find returns destinations matching the conjunction of the supplied
// filters; no filters returns every row.
func (r *DestinationRepository) Find(ctx context.Context, f dtos.DestinationFilters) ([]gorm.Destination, error) {
	query := r.db.WithContext(ctx).Model(&gorm.Destination{})

	if f.Code != "" {
		query = query.Where("destination_code = ?", f.Code)
	}
	if f.Name != "" {
		query = query.Where("airport_name = ?", f.Name)
	}
	if f.City != "" {
		query = query.Where("city = ?", f.City)
	}
	if f.Country != "" {
		query = query.Where("country = ?", f.Country)
	}

	var destinations []gorm.Destination
	if err := query.Find(&destinations).Error; err != nil {
		return nil, err
	}

	return destinations, nil
}

// ApplyChanges applies each supplied field as an independent SET inside one
// transaction. Deliberately no existence check: a nonexistent code affects
// zero rows, which callers detect by comparing pre/post lookups.
func (r *DestinationRepository) ApplyChanges(ctx context.Context, code string, changes dtos.DestinationChanges) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gormlib.DB) error {
		if changes.Name != "" {
			if err := tx.Model(&gorm.Destination{}).
				Where("destination_code = ?", code).
				Update("airport_name", changes.Name).Error; err != nil {
				return err
			}
		}

		if changes.City != "" {
			if err := tx.Model(&gorm.Destination{}).
				Where("destination_code = ?", code).
				Update("city", changes.City).Error; err != nil {
				return err
			}
		}

		if changes.Country != "" {
			if err := tx.Model(&gorm.Destination{}).
				Where("destination_code = ?", code).
				Update("country", changes.Country).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Count returns total number of destinations
func (r *DestinationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&gorm.Destination{}).Count(&count).Error
	return count, err
}
