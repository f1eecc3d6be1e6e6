package repository

import (
	"context"
	"fmt"

	"moviehub/internal/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	Update(ctx context.Context, id int64, review *models.Review) error
	GetByID(ctx context.Context, id int64) (*models.Review, error)
	GetByMovie(ctx context.Context, movieID int64) ([]models.Review, error)
	DeleteSubtree(ctx context.Context, id int64) (int64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return fmt.Errorf("create review: %w", translate(err))
	}
	return nil
}

func (r *reviewRepository) Update(ctx context.Context, id int64, review *models.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Review
		if err := tx.First(&existing, id).Error; err != nil {
			return fmt.Errorf("update review: %w", translate(err))
		}
		review.ID = id
		review.CreatedAt = existing.CreatedAt
		if err := tx.Save(review).Error; err != nil {
			return fmt.Errorf("update review: %w", translate(err))
		}
		return nil
	})
}

func (r *reviewRepository) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	var review models.Review
	if err := r.db.WithContext(ctx).Preload("User").First(&review, id).Error; err != nil {
		return nil, fmt.Errorf("get review: %w", translate(err))
	}
	return &review, nil
}

// GetByMovie returns the whole review forest of a movie, oldest first.
func (r *reviewRepository) GetByMovie(ctx context.Context, movieID int64) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Where("movie_id = ?", movieID).
		Preload("User").
		Order("id asc").
		Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("get movie reviews: %w", err)
	}
	return reviews, nil
}

// DeleteSubtree removes a review and every reply reachable from it over the
// parent_id edge. The subtree is collected level by level rather than by
// recursing over loaded rows, then deleted in one statement so the whole
// operation stays atomic. Returns the number of rows removed.
func (r *reviewRepository) DeleteSubtree(ctx context.Context, id int64) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var root models.Review
		if err := tx.First(&root, id).Error; err != nil {
			return fmt.Errorf("delete review: %w", translate(err))
		}

		doomed := []int64{id}
		frontier := []int64{id}
		for len(frontier) > 0 {
			var children []int64
			if err := tx.Model(&models.Review{}).
				Where("parent_id IN ?", frontier).
				Pluck("id", &children).Error; err != nil {
				return fmt.Errorf("collect review replies: %w", err)
			}
			doomed = append(doomed, children...)
			frontier = children
		}

		res := tx.Where("id IN ?", doomed).Delete(&models.Review{})
		if res.Error != nil {
			return fmt.Errorf("delete review subtree: %w", res.Error)
		}
		deleted = res.RowsAffected
		return nil
	})
	return deleted, err
}
