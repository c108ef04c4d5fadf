package repositories

import "pcbuilder/internal/models"

// BenchmarkFilter narrows and orders a benchmark listing. SortColumn must be
// a trusted storage column name.
type BenchmarkFilter struct {
	ComponentType string
	Brand         string
	SortColumn    string
	SortDesc      bool
	Limit         int
}

// BenchmarkRepository defines the interface for benchmark data access.
type BenchmarkRepository interface {
	List(filter BenchmarkFilter) ([]models.Benchmark, error)
	GetByID(id string) (*models.Benchmark, error)
	GetByIDs(ids []string) ([]models.Benchmark, error)
	DistinctTypes() ([]string, error)
	DistinctBrands(componentType string) ([]string, error)
	// ReplaceAll swaps the whole benchmark set for the given records.
	ReplaceAll(benchmarks []models.Benchmark) (int, error)
}
