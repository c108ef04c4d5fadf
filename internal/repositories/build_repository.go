package repositories

import "pcbuilder/internal/models"

// BuildRepository defines the interface for saved build data access.
type BuildRepository interface {
	Create(build *models.Build) error
	GetByID(id string) (*models.Build, error)
	ListByUser(userID string) ([]models.Build, error)
	// ListAllWithOwners returns every build with its owner populated.
	ListAllWithOwners() ([]models.Build, error)
	Delete(id string) error
}
