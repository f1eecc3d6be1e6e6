package service

import (
	"context"
	"strings"

	"moviehub/internal/models"
	"moviehub/internal/repository"
)

type DirectorService interface {
	GetAll(ctx context.Context) ([]models.Director, error)
	GetByID(ctx context.Context, id int64) (*models.Director, error)
	Create(ctx context.Context, d *models.Director) error
	Update(ctx context.Context, id int64, d *models.Director) error
	Delete(ctx context.Context, id int64) error
}

type directorService struct {
	repo *repository.DirectorRepo
}

func NewDirectorService(repo *repository.DirectorRepo) DirectorService {
	return &directorService{repo: repo}
}

func (s *directorService) GetAll(ctx context.Context) ([]models.Director, error) {
	return s.repo.GetAll(ctx)
}

func (s *directorService) GetByID(ctx context.Context, id int64) (*models.Director, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *directorService) Create(ctx context.Context, d *models.Director) error {
	if err := validatePerson(d.Name, d.Age); err != nil {
		return err
	}
	return s.repo.Create(ctx, d)
}

func (s *directorService) Update(ctx context.Context, id int64, d *models.Director) error {
	if err := validatePerson(d.Name, d.Age); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, d)
}

// Delete clears the linked movie's director_id; the movie itself survives.
func (s *directorService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func validatePerson(name string, age int) error {
	if strings.TrimSpace(name) == "" {
		return invalid("name", "is required")
	}
	return validateAge(age)
}
