package service

import (
	"context"
	"fmt"

	"moviehub/internal/models"
	"moviehub/internal/repository"
)

// ErrAlreadyFavorited wraps the conflict sentinel so handlers can branch on
// either the specific or the generic condition.
var ErrAlreadyFavorited = fmt.Errorf("movie already in favorites: %w", repository.ErrConflict)

type FavoriteService interface {
	Add(ctx context.Context, userID, movieID int64) (*models.FavoriteItem, error)
	Remove(ctx context.Context, userID, movieID int64) error
	List(ctx context.Context, userID int64) (*models.Favorite, error)
}

type favoriteService struct {
	repo      repository.FavoriteRepository
	movieRepo *repository.MovieRepo
	userRepo  repository.UserRepository
}

func NewFavoriteService(repo repository.FavoriteRepository, movieRepo *repository.MovieRepo, userRepo repository.UserRepository) FavoriteService {
	return &favoriteService{
		repo:      repo,
		movieRepo: movieRepo,
		userRepo:  userRepo,
	}
}

// Add puts a movie on the user's list. A movie can appear at most once per
// list; the unique index on (favorite_id, movie_id) backstops the pre-check
// under concurrent adds.
func (s *favoriteService) Add(ctx context.Context, userID, movieID int64) (*models.FavoriteItem, error) {
	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		return nil, err
	}
	favorite, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.Exists(ctx, favorite.ID, movieID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyFavorited
	}

	return s.repo.AddItem(ctx, favorite.ID, movieID)
}

// Remove deletes the item. A second call for the same movie reports NotFound.
func (s *favoriteService) Remove(ctx context.Context, userID, movieID int64) error {
	favorite, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return err
	}
	return s.repo.RemoveItem(ctx, favorite.ID, movieID)
}

func (s *favoriteService) List(ctx context.Context, userID int64) (*models.Favorite, error) {
	return s.repo.GetByUser(ctx, userID)
}
