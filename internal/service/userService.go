package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"moviehub/internal/auth"
	"moviehub/internal/models"
	"moviehub/internal/repository"
)

type UserService interface {
	GetAll(ctx context.Context) ([]models.UserProfile, error)
	GetByID(ctx context.Context, id int64) (*models.UserProfile, error)
	Create(ctx context.Context, user *models.UserProfile, password string) error
	Update(ctx context.Context, id int64, user *models.UserProfile, password string) error
	Delete(ctx context.Context, id int64) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) GetAll(ctx context.Context) ([]models.UserProfile, error) {
	return s.repo.GetAll(ctx)
}

func (s *userService) GetByID(ctx context.Context, id int64) (*models.UserProfile, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *userService) Create(ctx context.Context, user *models.UserProfile, password string) error {
	if err := validateUserProfile(user); err != nil {
		return err
	}
	if password == "" {
		return invalid("password", "is required")
	}
	if err := s.checkUnique(ctx, user.Username, user.Email, 0); err != nil {
		return err
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.repo.Create(ctx, user)
}

// Update replaces the full profile field set. An empty password keeps the
// stored hash.
func (s *userService) Update(ctx context.Context, id int64, user *models.UserProfile, password string) error {
	if err := validateUserProfile(user); err != nil {
		return err
	}
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.checkUnique(ctx, user.Username, user.Email, id); err != nil {
		return err
	}
	if password != "" {
		hash, err := auth.HashPassword(password)
		if err != nil {
			return err
		}
		user.PasswordHash = hash
	} else {
		user.PasswordHash = existing.PasswordHash
	}
	return s.repo.Update(ctx, id, user)
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// checkUnique rejects usernames and emails held by another profile. The
// unique indexes backstop this under concurrent writes.
func (s *userService) checkUnique(ctx context.Context, username, email string, selfID int64) error {
	if other, err := s.repo.FindByUsername(ctx, username); err == nil && other.ID != selfID {
		return fmt.Errorf("username already in use: %w", repository.ErrConflict)
	} else if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if other, err := s.repo.FindByEmail(ctx, email); err == nil && other.ID != selfID {
		return fmt.Errorf("email already in use: %w", repository.ErrConflict)
	} else if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	return nil
}

func validateUserProfile(user *models.UserProfile) error {
	user.FirstName = strings.TrimSpace(user.FirstName)
	user.Username = strings.TrimSpace(user.Username)
	user.Email = strings.TrimSpace(user.Email)
	if user.FirstName == "" {
		return invalid("first_name", "is required")
	}
	if user.Username == "" {
		return invalid("username", "is required")
	}
	if user.Email == "" {
		return invalid("email", "is required")
	}
	if err := validateAge(user.Age); err != nil {
		return err
	}
	if user.Status == "" {
		user.Status = models.StatusSimple
	}
	if !models.ValidStatus(user.Status) {
		return invalid("status", "must be 'pro' or 'simple'")
	}
	return nil
}
