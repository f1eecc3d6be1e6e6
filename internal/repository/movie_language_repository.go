package repository

import (
	"context"
	"fmt"

	"moviehub/internal/models"

	"gorm.io/gorm"
)

type MovieLanguageRepo struct {
	db *gorm.DB
}

func NewMovieLanguageRepo(db *gorm.DB) *MovieLanguageRepo {
	return &MovieLanguageRepo{db: db}
}

func (r *MovieLanguageRepo) GetAll(ctx context.Context) ([]models.MovieLanguage, error) {
	var list []models.MovieLanguage
	if err := r.db.WithContext(ctx).Order("id asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get movie languages: %w", err)
	}
	return list, nil
}

func (r *MovieLanguageRepo) GetByID(ctx context.Context, id int64) (*models.MovieLanguage, error) {
	var ml models.MovieLanguage
	if err := r.db.WithContext(ctx).First(&ml, id).Error; err != nil {
		return nil, fmt.Errorf("get movie language: %w", translate(err))
	}
	return &ml, nil
}

func (r *MovieLanguageRepo) Create(ctx context.Context, ml *models.MovieLanguage) error {
	if err := r.db.WithContext(ctx).Create(ml).Error; err != nil {
		return fmt.Errorf("create movie language: %w", translate(err))
	}
	return nil
}

func (r *MovieLanguageRepo) Update(ctx context.Context, id int64, ml *models.MovieLanguage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.MovieLanguage
		if err := tx.First(&existing, id).Error; err != nil {
			return fmt.Errorf("update movie language: %w", translate(err))
		}
		ml.ID = id
		if err := tx.Save(ml).Error; err != nil {
			return fmt.Errorf("update movie language: %w", translate(err))
		}
		return nil
	})
}

func (r *MovieLanguageRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.MovieLanguage{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete movie language: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete movie language: %w", ErrNotFound)
	}
	return nil
}
