package service

import (
	"context"
	"strings"

	"moviehub/internal/models"
	"moviehub/internal/repository"
)

type GenreService interface {
	GetAll(ctx context.Context) ([]models.Genre, error)
	GetByID(ctx context.Context, id int64) (*models.Genre, error)
	Create(ctx context.Context, g *models.Genre) error
	Update(ctx context.Context, id int64, g *models.Genre) error
	Delete(ctx context.Context, id int64) error
	GetMoviesByGenre(ctx context.Context, genreID int64) ([]models.Movie, error)
}

type genreService struct {
	repo *repository.GenreRepo
}

func NewGenreService(repo *repository.GenreRepo) GenreService {
	return &genreService{repo: repo}
}

func (s *genreService) GetAll(ctx context.Context) ([]models.Genre, error) {
	return s.repo.GetAll(ctx)
}

func (s *genreService) GetByID(ctx context.Context, id int64) (*models.Genre, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *genreService) Create(ctx context.Context, g *models.Genre) error {
	g.Name = strings.TrimSpace(g.Name)
	if g.Name == "" {
		return invalid("name", "is required")
	}
	return s.repo.Create(ctx, g)
}

func (s *genreService) Update(ctx context.Context, id int64, g *models.Genre) error {
	g.Name = strings.TrimSpace(g.Name)
	if g.Name == "" {
		return invalid("name", "is required")
	}
	return s.repo.Update(ctx, id, g)
}

func (s *genreService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *genreService) GetMoviesByGenre(ctx context.Context, genreID int64) ([]models.Movie, error) {
	if _, err := s.repo.GetByID(ctx, genreID); err != nil {
		return nil, err
	}
	return s.repo.GetMoviesByGenre(ctx, genreID)
}
