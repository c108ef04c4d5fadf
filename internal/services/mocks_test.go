package services_test

import (
	"sync"

	"github.com/stretchr/testify/mock"

	"pcbuilder/internal/models"
	"pcbuilder/internal/repositories"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateName(id, name string) (*models.User, error) {
	args := m.Called(id, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) List() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) DeleteWithBuilds(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockBuildRepository is a mock implementation of repositories.BuildRepository
type MockBuildRepository struct {
	mock.Mock
}

func (m *MockBuildRepository) Create(build *models.Build) error {
	args := m.Called(build)
	return args.Error(0)
}

func (m *MockBuildRepository) GetByID(id string) (*models.Build, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Build), args.Error(1)
}

func (m *MockBuildRepository) ListByUser(userID string) ([]models.Build, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Build), args.Error(1)
}

func (m *MockBuildRepository) ListAllWithOwners() ([]models.Build, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Build), args.Error(1)
}

func (m *MockBuildRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockBenchmarkRepository is a mock implementation of repositories.BenchmarkRepository
type MockBenchmarkRepository struct {
	mock.Mock
}

func (m *MockBenchmarkRepository) List(filter repositories.BenchmarkFilter) ([]models.Benchmark, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Benchmark), args.Error(1)
}

func (m *MockBenchmarkRepository) GetByID(id string) (*models.Benchmark, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Benchmark), args.Error(1)
}

func (m *MockBenchmarkRepository) GetByIDs(ids []string) ([]models.Benchmark, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Benchmark), args.Error(1)
}

func (m *MockBenchmarkRepository) DistinctTypes() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBenchmarkRepository) DistinctBrands(componentType string) ([]string, error) {
	args := m.Called(componentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBenchmarkRepository) ReplaceAll(benchmarks []models.Benchmark) (int, error) {
	args := m.Called(benchmarks)
	return args.Int(0), args.Error(1)
}

// recordingPublisher captures published events.
type recordingPublisher struct {
	mu     sync.Mutex
	events []string
	err    error
}

func (p *recordingPublisher) PublishEvent(routingKey string, _ any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, routingKey)
	return p.err
}

func (p *recordingPublisher) Events() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.events...)
}
