package repository

import (
	"context"
	"fmt"

	"moviehub/internal/models"

	"gorm.io/gorm"
)

type DirectorRepo struct {
	db *gorm.DB
}

func NewDirectorRepo(db *gorm.DB) *DirectorRepo {
	return &DirectorRepo{db: db}
}

func (r *DirectorRepo) GetAll(ctx context.Context) ([]models.Director, error) {
	var list []models.Director
	if err := r.db.WithContext(ctx).Order("id asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get directors: %w", err)
	}
	return list, nil
}

func (r *DirectorRepo) GetByID(ctx context.Context, id int64) (*models.Director, error) {
	var d models.Director
	if err := r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, fmt.Errorf("get director: %w", translate(err))
	}
	return &d, nil
}

func (r *DirectorRepo) Create(ctx context.Context, d *models.Director) error {
	if err := r.db.WithContext(ctx).Create(d).Error; err != nil {
		return fmt.Errorf("create director: %w", translate(err))
	}
	return nil
}

func (r *DirectorRepo) Update(ctx context.Context, id int64, d *models.Director) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Director
		if err := tx.First(&existing, id).Error; err != nil {
			return fmt.Errorf("update director: %w", translate(err))
		}
		d.ID = id
		if err := tx.Save(d).Error; err != nil {
			return fmt.Errorf("update director: %w", translate(err))
		}
		return nil
	})
}

// Delete clears director_id on the linked movie (set-null, never a cascade)
// and then removes the director row.
func (r *DirectorRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var d models.Director
		if err := tx.First(&d, id).Error; err != nil {
			return fmt.Errorf("delete director: %w", translate(err))
		}
		if err := tx.Model(&models.Movie{}).Where("director_id = ?", id).
			Update("director_id", nil).Error; err != nil {
			return fmt.Errorf("unlink director movie: %w", err)
		}
		if err := tx.Delete(&models.Director{}, id).Error; err != nil {
			return fmt.Errorf("delete director: %w", translate(err))
		}
		return nil
	})
}
