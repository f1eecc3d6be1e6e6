package service

import (
	"context"
	"strings"

	"moviehub/internal/models"
	"moviehub/internal/repository"
)

type CountryService interface {
	GetAll(ctx context.Context) ([]models.Country, error)
	GetByID(ctx context.Context, id int64) (*models.Country, error)
	Create(ctx context.Context, c *models.Country) error
	Update(ctx context.Context, id int64, c *models.Country) error
	Delete(ctx context.Context, id int64) error
}

type countryService struct {
	repo *repository.CountryRepo
}

func NewCountryService(repo *repository.CountryRepo) CountryService {
	return &countryService{repo: repo}
}

func (s *countryService) GetAll(ctx context.Context) ([]models.Country, error) {
	return s.repo.GetAll(ctx)
}

func (s *countryService) GetByID(ctx context.Context, id int64) (*models.Country, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *countryService) Create(ctx context.Context, c *models.Country) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return invalid("name", "is required")
	}
	return s.repo.Create(ctx, c)
}

func (s *countryService) Update(ctx context.Context, id int64, c *models.Country) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return invalid("name", "is required")
	}
	return s.repo.Update(ctx, id, c)
}

// Delete cascades to every movie of the country; see CountryRepo.Delete.
func (s *countryService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
