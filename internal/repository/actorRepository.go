package repository

import (
	"context"
	"fmt"

	"moviehub/internal/models"

	"gorm.io/gorm"
)

type ActorRepo struct {
	db *gorm.DB
}

func NewActorRepo(db *gorm.DB) *ActorRepo {
	return &ActorRepo{db: db}
}

func (r *ActorRepo) GetAll(ctx context.Context) ([]models.Actor, error) {
	var list []models.Actor
	if err := r.db.WithContext(ctx).Order("id asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get actors: %w", err)
	}
	return list, nil
}

func (r *ActorRepo) GetByID(ctx context.Context, id int64) (*models.Actor, error) {
	var a models.Actor
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, fmt.Errorf("get actor: %w", translate(err))
	}
	return &a, nil
}

func (r *ActorRepo) Create(ctx context.Context, a *models.Actor) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("create actor: %w", translate(err))
	}
	return nil
}

func (r *ActorRepo) Update(ctx context.Context, id int64, a *models.Actor) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Actor
		if err := tx.First(&existing, id).Error; err != nil {
			return fmt.Errorf("update actor: %w", translate(err))
		}
		a.ID = id
		if err := tx.Save(a).Error; err != nil {
			return fmt.Errorf("update actor: %w", translate(err))
		}
		return nil
	})
}

// Delete drops the actor's junction rows along with the actor itself; movies
// keep existing.
func (r *ActorRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var a models.Actor
		if err := tx.First(&a, id).Error; err != nil {
			return fmt.Errorf("delete actor: %w", translate(err))
		}
		if err := tx.Where("actor_id = ?", id).Delete(&models.MovieActor{}).Error; err != nil {
			return fmt.Errorf("delete actor links: %w", err)
		}
		if err := tx.Delete(&models.Actor{}, id).Error; err != nil {
			return fmt.Errorf("delete actor: %w", translate(err))
		}
		return nil
	})
}
