package service

import (
	"context"
	"strings"

	"moviehub/internal/models"
	"moviehub/internal/repository"
)

type ReviewService interface {
	Create(ctx context.Context, review *models.Review) error
	Update(ctx context.Context, id int64, review *models.Review) error
	GetByID(ctx context.Context, id int64) (*models.Review, error)
	GetByMovie(ctx context.Context, movieID int64) ([]models.Review, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type reviewService struct {
	repo      repository.ReviewRepository
	movieRepo *repository.MovieRepo
	userRepo  repository.UserRepository
}

func NewReviewService(repo repository.ReviewRepository, movieRepo *repository.MovieRepo, userRepo repository.UserRepository) ReviewService {
	return &reviewService{
		repo:      repo,
		movieRepo: movieRepo,
		userRepo:  userRepo,
	}
}

func (s *reviewService) Create(ctx context.Context, review *models.Review) error {
	if err := s.validate(ctx, review); err != nil {
		return err
	}
	return s.repo.Create(ctx, review)
}

func (s *reviewService) Update(ctx context.Context, id int64, review *models.Review) error {
	if err := s.validate(ctx, review); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, review)
}

func (s *reviewService) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *reviewService) GetByMovie(ctx context.Context, movieID int64) ([]models.Review, error) {
	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		return nil, err
	}
	return s.repo.GetByMovie(ctx, movieID)
}

// Delete removes the review and its whole reply subtree; returns how many
// rows went away.
func (s *reviewService) Delete(ctx context.Context, id int64) (int64, error) {
	return s.repo.DeleteSubtree(ctx, id)
}

// validate enforces the rating-or-text rule and checks every reference:
// the movie and author must exist, and a parent reply must sit on the same
// movie as its child.
func (s *reviewService) validate(ctx context.Context, review *models.Review) error {
	if review.Rating != nil && (*review.Rating < 1 || *review.Rating > 5) {
		return invalid("rating", "must be between 1 and 5")
	}
	if review.Text != nil {
		trimmed := strings.TrimSpace(*review.Text)
		if trimmed == "" {
			return invalid("text", "cannot be empty")
		}
		review.Text = &trimmed
	}
	if review.Rating == nil && review.Text == nil {
		return invalid("review", "either rating or text must be provided")
	}

	if _, err := s.movieRepo.GetByID(ctx, review.MovieID); err != nil {
		return err
	}
	if _, err := s.userRepo.FindByID(ctx, review.UserID); err != nil {
		return err
	}
	if review.ParentID != nil {
		parent, err := s.repo.GetByID(ctx, *review.ParentID)
		if err != nil {
			return err
		}
		if parent.MovieID != review.MovieID {
			return invalid("parent_id", "parent review belongs to a different movie")
		}
	}
	return nil
}
