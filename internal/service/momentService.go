package service

import (
	"context"
	"strings"

	"moviehub/internal/models"
	"moviehub/internal/repository"
)

type MomentService interface {
	GetAll(ctx context.Context) ([]models.Moment, error)
	GetByID(ctx context.Context, id int64) (*models.Moment, error)
	Create(ctx context.Context, m *models.Moment) error
	Update(ctx context.Context, id int64, m *models.Moment) error
	Delete(ctx context.Context, id int64) error
}

type momentService struct {
	repo *repository.MomentRepo
}

func NewMomentService(repo *repository.MomentRepo) MomentService {
	return &momentService{repo: repo}
}

func (s *momentService) GetAll(ctx context.Context) ([]models.Moment, error) {
	return s.repo.GetAll(ctx)
}

func (s *momentService) GetByID(ctx context.Context, id int64) (*models.Moment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *momentService) Create(ctx context.Context, m *models.Moment) error {
	if strings.TrimSpace(m.Image) == "" {
		return invalid("image", "is required")
	}
	return s.repo.Create(ctx, m)
}

func (s *momentService) Update(ctx context.Context, id int64, m *models.Moment) error {
	if strings.TrimSpace(m.Image) == "" {
		return invalid("image", "is required")
	}
	return s.repo.Update(ctx, id, m)
}

func (s *momentService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
