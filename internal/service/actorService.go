package service

import (
	"context"

	"moviehub/internal/models"
	"moviehub/internal/repository"
)

type ActorService interface {
	GetAll(ctx context.Context) ([]models.Actor, error)
	GetByID(ctx context.Context, id int64) (*models.Actor, error)
	Create(ctx context.Context, a *models.Actor) error
	Update(ctx context.Context, id int64, a *models.Actor) error
	Delete(ctx context.Context, id int64) error
}

type actorService struct {
	repo *repository.ActorRepo
}

func NewActorService(repo *repository.ActorRepo) ActorService {
	return &actorService{repo: repo}
}

func (s *actorService) GetAll(ctx context.Context) ([]models.Actor, error) {
	return s.repo.GetAll(ctx)
}

func (s *actorService) GetByID(ctx context.Context, id int64) (*models.Actor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *actorService) Create(ctx context.Context, a *models.Actor) error {
	if err := validatePerson(a.Name, a.Age); err != nil {
		return err
	}
	return s.repo.Create(ctx, a)
}

func (s *actorService) Update(ctx context.Context, id int64, a *models.Actor) error {
	if err := validatePerson(a.Name, a.Age); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, a)
}

func (s *actorService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
