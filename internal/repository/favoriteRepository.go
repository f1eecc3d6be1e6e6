package repository

import (
	"context"
	"fmt"

	"moviehub/internal/models"

	"gorm.io/gorm"
)

type FavoriteRepository interface {
	GetByUser(ctx context.Context, userID int64) (*models.Favorite, error)
	AddItem(ctx context.Context, favoriteID, movieID int64) (*models.FavoriteItem, error)
	RemoveItem(ctx context.Context, favoriteID, movieID int64) error
	Exists(ctx context.Context, favoriteID, movieID int64) (bool, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// GetByUser loads the user's list with items in insertion order.
func (r *favoriteRepository) GetByUser(ctx context.Context, userID int64) (*models.Favorite, error) {
	var favorite models.Favorite
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("favorite_items.id asc")
		}).
		Preload("Items.Movie").
		First(&favorite).Error; err != nil {
		return nil, fmt.Errorf("get favorite list: %w", translate(err))
	}
	return &favorite, nil
}

func (r *favoriteRepository) AddItem(ctx context.Context, favoriteID, movieID int64) (*models.FavoriteItem, error) {
	item := &models.FavoriteItem{
		FavoriteID: favoriteID,
		MovieID:    movieID,
	}
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, fmt.Errorf("add favorite item: %w", translate(err))
	}
	return item, nil
}

// RemoveItem is deliberately not idempotent: removing an item that is not on
// the list reports NotFound.
func (r *favoriteRepository) RemoveItem(ctx context.Context, favoriteID, movieID int64) error {
	res := r.db.WithContext(ctx).
		Where("favorite_id = ? AND movie_id = ?", favoriteID, movieID).
		Delete(&models.FavoriteItem{})
	if res.Error != nil {
		return fmt.Errorf("remove favorite item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("remove favorite item: %w", ErrNotFound)
	}
	return nil
}

func (r *favoriteRepository) Exists(ctx context.Context, favoriteID, movieID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.FavoriteItem{}).
		Where("favorite_id = ? AND movie_id = ?", favoriteID, movieID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("check favorite item: %w", err)
	}
	return count > 0, nil
}
