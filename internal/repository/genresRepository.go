package repository

import (
	"context"
	"fmt"

	"moviehub/internal/models"

	"gorm.io/gorm"
)

type GenreRepo struct {
	db *gorm.DB
}

func NewGenreRepo(db *gorm.DB) *GenreRepo {
	return &GenreRepo{db: db}
}

func (r *GenreRepo) GetAll(ctx context.Context) ([]models.Genre, error) {
	var list []models.Genre
	if err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get genres: %w", err)
	}
	return list, nil
}

func (r *GenreRepo) GetByID(ctx context.Context, id int64) (*models.Genre, error) {
	var g models.Genre
	if err := r.db.WithContext(ctx).First(&g, id).Error; err != nil {
		return nil, fmt.Errorf("get genre: %w", translate(err))
	}
	return &g, nil
}

func (r *GenreRepo) Create(ctx context.Context, g *models.Genre) error {
	if err := r.db.WithContext(ctx).Create(g).Error; err != nil {
		return fmt.Errorf("create genre: %w", translate(err))
	}
	return nil
}

func (r *GenreRepo) Update(ctx context.Context, id int64, g *models.Genre) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Genre
		if err := tx.First(&existing, id).Error; err != nil {
			return fmt.Errorf("update genre: %w", translate(err))
		}
		g.ID = id
		if err := tx.Save(g).Error; err != nil {
			return fmt.Errorf("update genre: %w", translate(err))
		}
		return nil
	})
}

func (r *GenreRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var g models.Genre
		if err := tx.First(&g, id).Error; err != nil {
			return fmt.Errorf("delete genre: %w", translate(err))
		}
		if err := tx.Where("genre_id = ?", id).Delete(&models.MovieGenre{}).Error; err != nil {
			return fmt.Errorf("delete genre links: %w", err)
		}
		if err := tx.Delete(&models.Genre{}, id).Error; err != nil {
			return fmt.Errorf("delete genre: %w", translate(err))
		}
		return nil
	})
}

// GetMoviesByGenre returns the movies linked to the given genre id.
func (r *GenreRepo) GetMoviesByGenre(ctx context.Context, genreID int64) ([]models.Movie, error) {
	var list []models.Movie
	if err := r.db.WithContext(ctx).
		Model(&models.Movie{}).
		Joins("JOIN movie_genres mg ON mg.movie_id = movies.id").
		Where("mg.genre_id = ?", genreID).
		Preload("Genres").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get movies by genre: %w", err)
	}
	return list, nil
}
