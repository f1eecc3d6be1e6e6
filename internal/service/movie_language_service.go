package service

import (
	"context"
	"strings"

	"moviehub/internal/models"
	"moviehub/internal/repository"
)

type MovieLanguageService interface {
	GetAll(ctx context.Context) ([]models.MovieLanguage, error)
	GetByID(ctx context.Context, id int64) (*models.MovieLanguage, error)
	Create(ctx context.Context, ml *models.MovieLanguage) error
	Update(ctx context.Context, id int64, ml *models.MovieLanguage) error
	Delete(ctx context.Context, id int64) error
}

type movieLanguageService struct {
	repo *repository.MovieLanguageRepo
}

func NewMovieLanguageService(repo *repository.MovieLanguageRepo) MovieLanguageService {
	return &movieLanguageService{repo: repo}
}

func (s *movieLanguageService) GetAll(ctx context.Context) ([]models.MovieLanguage, error) {
	return s.repo.GetAll(ctx)
}

func (s *movieLanguageService) GetByID(ctx context.Context, id int64) (*models.MovieLanguage, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *movieLanguageService) Create(ctx context.Context, ml *models.MovieLanguage) error {
	if err := validateMovieLanguage(ml); err != nil {
		return err
	}
	return s.repo.Create(ctx, ml)
}

func (s *movieLanguageService) Update(ctx context.Context, id int64, ml *models.MovieLanguage) error {
	if err := validateMovieLanguage(ml); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, ml)
}

func (s *movieLanguageService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func validateMovieLanguage(ml *models.MovieLanguage) error {
	ml.Language = strings.TrimSpace(ml.Language)
	if ml.Language == "" {
		return invalid("language", "is required")
	}
	if strings.TrimSpace(ml.Video) == "" {
		return invalid("video", "is required")
	}
	return nil
}
