package services

import "pcbuilder/internal/models"

// AdminService exposes the cross-account operations reserved for admins.
// Callers are expected to have passed the admin guard already.
type AdminService struct {
	users  *UserService
	builds *BuildService
}

// NewAdminService creates a new AdminService.
func NewAdminService(users *UserService, builds *BuildService) *AdminService {
	return &AdminService{users: users, builds: builds}
}

func (s *AdminService) ListUsers() ([]models.User, error) {
	return s.users.ListUsers()
}

func (s *AdminService) ListBuilds() ([]models.Build, error) {
	return s.builds.ListAllBuilds()
}

// DeleteUser removes a user together with all of their builds.
func (s *AdminService) DeleteUser(id string) error {
	return s.users.DeleteUser(id)
}

func (s *AdminService) DeleteBuild(id string) error {
	return s.builds.DeleteBuild(id)
}
