package repository

import (
	"context"
	"errors"
	"fmt"

	"moviehub/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user profile data operations.
type UserRepository interface {
	Create(ctx context.Context, user *models.UserProfile) error
	GetAll(ctx context.Context) ([]models.UserProfile, error)
	FindByID(ctx context.Context, id int64) (*models.UserProfile, error)
	FindByUsername(ctx context.Context, username string) (*models.UserProfile, error)
	FindByEmail(ctx context.Context, email string) (*models.UserProfile, error)
	Update(ctx context.Context, id int64, user *models.UserProfile) error
	Delete(ctx context.Context, id int64) error
}

// userRepository is the GORM implementation of UserRepository.
type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create writes the profile and its favorites list in the same transaction,
// so a user never exists without exactly one list.
func (r *userRepository) Create(ctx context.Context, user *models.UserProfile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("create user: %w", translate(err))
		}
		if err := tx.Create(&models.Favorite{UserID: user.ID}).Error; err != nil {
			return fmt.Errorf("create favorite list: %w", translate(err))
		}
		return nil
	})
}

func (r *userRepository) GetAll(ctx context.Context) ([]models.UserProfile, error) {
	var users []models.UserProfile
	if err := r.db.WithContext(ctx).Order("id asc").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}
	return users, nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*models.UserProfile, error) {
	var user models.UserProfile
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, fmt.Errorf("get user: %w", translate(err))
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.UserProfile, error) {
	var user models.UserProfile
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, fmt.Errorf("get user by username: %w", translate(err))
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	var user models.UserProfile
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, fmt.Errorf("get user by email: %w", translate(err))
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, id int64, user *models.UserProfile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.UserProfile
		if err := tx.First(&existing, id).Error; err != nil {
			return fmt.Errorf("update user: %w", translate(err))
		}
		user.ID = id
		user.CreatedAt = existing.CreatedAt
		if err := tx.Save(user).Error; err != nil {
			return fmt.Errorf("update user: %w", translate(err))
		}
		return nil
	})
}

// Delete removes the profile with its favorites list, list items and refresh
// tokens. Authored reviews keep the profile referenced, so they block the
// delete as a conflict instead of being silently orphaned.
func (r *userRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.UserProfile
		if err := tx.First(&user, id).Error; err != nil {
			return fmt.Errorf("delete user: %w", translate(err))
		}

		var reviews int64
		if err := tx.Model(&models.Review{}).Where("user_id = ?", id).Count(&reviews).Error; err != nil {
			return fmt.Errorf("check user reviews: %w", err)
		}
		if reviews > 0 {
			return fmt.Errorf("user %d still has reviews: %w", id, ErrConflict)
		}

		var favorite models.Favorite
		err := tx.Where("user_id = ?", id).First(&favorite).Error
		if err == nil {
			if err := tx.Where("favorite_id = ?", favorite.ID).Delete(&models.FavoriteItem{}).Error; err != nil {
				return fmt.Errorf("delete user favorite items: %w", err)
			}
			if err := tx.Delete(&models.Favorite{}, favorite.ID).Error; err != nil {
				return fmt.Errorf("delete user favorite list: %w", err)
			}
		} else if !errors.Is(translate(err), ErrNotFound) {
			return fmt.Errorf("load user favorite list: %w", err)
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.RefreshToken{}).Error; err != nil {
			return fmt.Errorf("delete user tokens: %w", err)
		}
		if err := tx.Delete(&models.UserProfile{}, id).Error; err != nil {
			return fmt.Errorf("delete user: %w", translate(err))
		}
		return nil
	})
}
