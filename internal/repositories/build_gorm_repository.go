package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pcbuilder/internal/models"
)

// GORMBuildRepository is a GORM implementation of BuildRepository.
type GORMBuildRepository struct {
	db *gorm.DB
}

// NewGORMBuildRepository creates a new instance of GORMBuildRepository.
func NewGORMBuildRepository(db *gorm.DB) *GORMBuildRepository {
	return &GORMBuildRepository{db: db}
}

// Create stores a new build.
func (r *GORMBuildRepository) Create(build *models.Build) error {
	if build.ID == "" {
		build.ID = uuid.New().String()
	}
	if err := r.db.Create(build).Error; err != nil {
		return fmt.Errorf("failed to create build: %w", err)
	}
	return nil
}

// GetByID retrieves a single build.
func (r *GORMBuildRepository) GetByID(id string) (*models.Build, error) {
	var build models.Build
	if err := r.db.First(&build, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("build with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get build by ID %s: %w", id, err)
	}
	return &build, nil
}

// ListByUser returns the builds of one user, newest first.
func (r *GORMBuildRepository) ListByUser(userID string) ([]models.Build, error) {
	builds := []models.Build{}
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&builds).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list builds of user %s: %w", userID, err)
	}
	return builds, nil
}

// ListAllWithOwners returns every build, newest first, with the owner's
// name and email attached.
func (r *GORMBuildRepository) ListAllWithOwners() ([]models.Build, error) {
	builds := []models.Build{}
	if err := r.db.Order("created_at DESC").Find(&builds).Error; err != nil {
		return nil, fmt.Errorf("failed to list builds: %w", err)
	}
	if len(builds) == 0 {
		return builds, nil
	}

	ids := make([]string, 0, len(builds))
	seen := make(map[string]struct{}, len(builds))
	for _, b := range builds {
		if _, ok := seen[b.UserID]; !ok {
			seen[b.UserID] = struct{}{}
			ids = append(ids, b.UserID)
		}
	}

	var owners []models.BuildOwner
	err := r.db.Model(&models.User{}).Select("id", "name", "email").Where("id IN ?", ids).Find(&owners).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load build owners: %w", err)
	}
	byID := make(map[string]*models.BuildOwner, len(owners))
	for i := range owners {
		byID[owners[i].ID] = &owners[i]
	}
	for i := range builds {
		builds[i].Owner = byID[builds[i].UserID]
	}
	return builds, nil
}

// Delete removes a build by its ID.
func (r *GORMBuildRepository) Delete(id string) error {
	res := r.db.Delete(&models.Build{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete build: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("build with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
