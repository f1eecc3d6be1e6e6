package repository

import (
	"context"
	"fmt"

	"moviehub/internal/models"

	"gorm.io/gorm"
)

type CountryRepo struct {
	db *gorm.DB
}

func NewCountryRepo(db *gorm.DB) *CountryRepo {
	return &CountryRepo{db: db}
}

func (r *CountryRepo) GetAll(ctx context.Context) ([]models.Country, error) {
	var list []models.Country
	if err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get countries: %w", err)
	}
	return list, nil
}

func (r *CountryRepo) GetByID(ctx context.Context, id int64) (*models.Country, error) {
	var c models.Country
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, fmt.Errorf("get country: %w", translate(err))
	}
	return &c, nil
}

func (r *CountryRepo) Create(ctx context.Context, c *models.Country) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("create country: %w", translate(err))
	}
	return nil
}

func (r *CountryRepo) Update(ctx context.Context, id int64, c *models.Country) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Country
		if err := tx.First(&existing, id).Error; err != nil {
			return fmt.Errorf("update country: %w", translate(err))
		}
		c.ID = id
		if err := tx.Save(c).Error; err != nil {
			return fmt.Errorf("update country: %w", translate(err))
		}
		return nil
	})
}

// Delete removes a country together with all of its movies. Each movie takes
// its owned moments, reviews, junction rows and favorite items with it, so the
// whole subtree disappears in one transaction.
func (r *CountryRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c models.Country
		if err := tx.First(&c, id).Error; err != nil {
			return fmt.Errorf("delete country: %w", translate(err))
		}

		var movieIDs []int64
		if err := tx.Model(&models.Movie{}).Where("country_id = ?", id).
			Pluck("id", &movieIDs).Error; err != nil {
			return fmt.Errorf("delete country movies: %w", err)
		}
		for _, movieID := range movieIDs {
			if err := deleteMovieCascade(tx, movieID); err != nil {
				return fmt.Errorf("delete country movies: %w", err)
			}
		}

		if err := tx.Delete(&models.Country{}, id).Error; err != nil {
			return fmt.Errorf("delete country: %w", translate(err))
		}
		return nil
	})
}
