package services

import (
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"pcbuilder/internal/models"
	"pcbuilder/internal/repositories"
)

// BuildService handles saved builds and their ownership rules.
type BuildService struct {
	buildRepo repositories.BuildRepository
	userRepo  repositories.UserRepository
	publisher EventPublisher
}

// NewBuildService creates a new BuildService. publisher may be nil.
func NewBuildService(buildRepo repositories.BuildRepository, userRepo repositories.UserRepository, publisher EventPublisher) *BuildService {
	return &BuildService{
		buildRepo: buildRepo,
		userRepo:  userRepo,
		publisher: publisher,
	}
}

// SaveBuild stores the recommendation payload as given for userID. Totals
// are not recomputed.
func (s *BuildService) SaveBuild(userID string, build *models.Build) error {
	build.ID = ""
	build.UserID = userID
	build.Owner = nil
	build.CreatedAt = time.Time{}
	build.UpdatedAt = time.Time{}
	if strings.TrimSpace(build.BuildName) == "" {
		build.BuildName = models.DefaultBuildName
	}
	if err := s.buildRepo.Create(build); err != nil {
		return err
	}

	zap.L().Info("Build saved", zap.String("buildId", build.ID), zap.String("userId", userID))
	publishEvent(s.publisher, EventBuildSaved, map[string]any{
		"buildId":   build.ID,
		"userId":    userID,
		"totalCost": build.TotalCost,
		"useCase":   build.UseCase,
	})
	return nil
}

// ListUserBuilds returns the builds of userID, newest first.
func (s *BuildService) ListUserBuilds(userID string) ([]models.Build, error) {
	return s.buildRepo.ListByUser(userID)
}

// ListAllBuilds returns every build with its owner populated.
func (s *BuildService) ListAllBuilds() ([]models.Build, error) {
	return s.buildRepo.ListAllWithOwners()
}

// GetBuildFor returns a build if requesterID owns it or is an admin.
func (s *BuildService) GetBuildFor(requesterID, buildID string) (*models.Build, error) {
	build, err := s.buildRepo.GetByID(buildID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	if err := s.authorize(requesterID, build); err != nil {
		return nil, err
	}
	return build, nil
}

// DeleteBuildFor deletes a build if requesterID owns it or is an admin.
func (s *BuildService) DeleteBuildFor(requesterID, buildID string) error {
	build, err := s.buildRepo.GetByID(buildID)
	if err != nil {
		return mapRepoError(err)
	}
	if err := s.authorize(requesterID, build); err != nil {
		return err
	}
	return s.DeleteBuild(buildID)
}

// DeleteBuild deletes a build without ownership checks.
func (s *BuildService) DeleteBuild(buildID string) error {
	if err := s.buildRepo.Delete(buildID); err != nil {
		return mapRepoError(err)
	}
	publishEvent(s.publisher, EventBuildDeleted, map[string]string{"buildId": buildID})
	return nil
}

func (s *BuildService) authorize(requesterID string, build *models.Build) error {
	if build.OwnedBy(requesterID) {
		return nil
	}
	requester, err := s.userRepo.GetByID(requesterID)
	if err != nil {
		if isNotFound(err) {
			return ErrForbidden
		}
		return err
	}
	if !requester.IsAdmin {
		return ErrForbidden
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, repositories.ErrNotFound) || errors.Is(err, ErrNotFound)
}
