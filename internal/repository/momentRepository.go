package repository

import (
	"context"
	"fmt"

	"moviehub/internal/models"

	"gorm.io/gorm"
)

type MomentRepo struct {
	db *gorm.DB
}

func NewMomentRepo(db *gorm.DB) *MomentRepo {
	return &MomentRepo{db: db}
}

func (r *MomentRepo) GetAll(ctx context.Context) ([]models.Moment, error) {
	var list []models.Moment
	if err := r.db.WithContext(ctx).Order("id asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get moments: %w", err)
	}
	return list, nil
}

func (r *MomentRepo) GetByID(ctx context.Context, id int64) (*models.Moment, error) {
	var m models.Moment
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, fmt.Errorf("get moment: %w", translate(err))
	}
	return &m, nil
}

func (r *MomentRepo) Create(ctx context.Context, m *models.Moment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var movie models.Movie
		if err := tx.Select("id").First(&movie, m.MovieID).Error; err != nil {
			return fmt.Errorf("moment movie %d: %w", m.MovieID, translate(err))
		}
		if err := tx.Create(m).Error; err != nil {
			return fmt.Errorf("create moment: %w", translate(err))
		}
		return nil
	})
}

func (r *MomentRepo) Update(ctx context.Context, id int64, m *models.Moment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Moment
		if err := tx.First(&existing, id).Error; err != nil {
			return fmt.Errorf("update moment: %w", translate(err))
		}
		var movie models.Movie
		if err := tx.Select("id").First(&movie, m.MovieID).Error; err != nil {
			return fmt.Errorf("moment movie %d: %w", m.MovieID, translate(err))
		}
		m.ID = id
		if err := tx.Save(m).Error; err != nil {
			return fmt.Errorf("update moment: %w", translate(err))
		}
		return nil
	})
}

func (r *MomentRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Moment{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete moment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete moment: %w", ErrNotFound)
	}
	return nil
}
