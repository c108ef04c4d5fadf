package services

import (
	"errors"
	"fmt"
	"strings"

	"pcbuilder/internal/models"
	"pcbuilder/internal/repositories"
)

// UserService handles self-service profile operations and the admin views
// over users.
type UserService struct {
	userRepo  repositories.UserRepository
	publisher EventPublisher
}

// NewUserService creates a new UserService. publisher may be nil.
func NewUserService(userRepo repositories.UserRepository, publisher EventPublisher) *UserService {
	return &UserService{userRepo: userRepo, publisher: publisher}
}

// GetUser loads a user by ID.
func (s *UserService) GetUser(id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return user, nil
}

// UpdateName changes the user's display name. A nil or blank name leaves the
// profile untouched.
func (s *UserService) UpdateName(id string, name *string) (*models.User, error) {
	if name == nil || strings.TrimSpace(*name) == "" {
		return s.GetUser(id)
	}
	user, err := s.userRepo.UpdateName(id, strings.TrimSpace(*name))
	if err != nil {
		return nil, mapRepoError(err)
	}
	return user, nil
}

// ListUsers returns every account.
func (s *UserService) ListUsers() ([]models.User, error) {
	return s.userRepo.List()
}

// DeleteUser removes the account and every build it owns.
func (s *UserService) DeleteUser(id string) error {
	if err := s.userRepo.DeleteWithBuilds(id); err != nil {
		return mapRepoError(err)
	}
	publishEvent(s.publisher, EventUserDeleted, map[string]string{"userId": id})
	return nil
}

func mapRepoError(err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return err
}
