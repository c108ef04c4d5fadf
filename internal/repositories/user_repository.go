package repositories

import "pcbuilder/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	UpdateName(id, name string) (*models.User, error)
	List() ([]models.User, error)
	// DeleteWithBuilds removes the user and every build it owns atomically.
	DeleteWithBuilds(id string) error
}
