package service

import (
	"context"
	"strings"
	"time"

	"moviehub/internal/models"
	"moviehub/internal/repository"
)

type MovieService interface {
	GetAll(ctx context.Context) ([]models.Movie, error)
	GetByID(ctx context.Context, id int64) (*models.Movie, error)
	Create(ctx context.Context, m *models.Movie, actorIDs, genreIDs []int64) error
	Update(ctx context.Context, id int64, m *models.Movie, actorIDs, genreIDs []int64) error
	Delete(ctx context.Context, id int64) error
}

type movieService struct {
	repo *repository.MovieRepo
}

func NewMovieService(repo *repository.MovieRepo) MovieService {
	return &movieService{repo: repo}
}

func (s *movieService) GetAll(ctx context.Context) ([]models.Movie, error) {
	return s.repo.GetAll(ctx)
}

func (s *movieService) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *movieService) Create(ctx context.Context, m *models.Movie, actorIDs, genreIDs []int64) error {
	if err := validateMovie(m); err != nil {
		return err
	}
	return s.repo.Create(ctx, m, actorIDs, genreIDs)
}

func (s *movieService) Update(ctx context.Context, id int64, m *models.Movie, actorIDs, genreIDs []int64) error {
	if err := validateMovie(m); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, m, actorIDs, genreIDs)
}

// Delete cascades to moments, reviews, junction rows and favorite items; see
// MovieRepo.Delete.
func (s *movieService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func validateMovie(m *models.Movie) error {
	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		return invalid("name", "is required")
	}
	if strings.TrimSpace(m.Trailer) == "" {
		return invalid("trailer", "is required")
	}
	if strings.TrimSpace(m.Image) == "" {
		return invalid("image", "is required")
	}
	if m.Status == "" {
		m.Status = models.StatusSimple
	}
	if !models.ValidStatus(m.Status) {
		return invalid("status", "must be 'pro' or 'simple'")
	}
	if m.Year <= 0 {
		return invalid("year", "is required")
	}
	if m.Year > time.Now().Year() {
		return invalid("year", "cannot be in the future")
	}
	for _, res := range m.Resolutions {
		if !models.ValidResolution(res) {
			return invalid("resolutions", "unknown resolution tag "+res)
		}
	}
	if m.Duration <= 0 {
		return invalid("duration", "must be positive")
	}
	return nil
}
