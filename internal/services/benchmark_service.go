package services

import (
	"fmt"
	"strconv"
	"strings"

	"pcbuilder/internal/models"
	"pcbuilder/internal/repositories"
)

const (
	DefaultBenchmarkLimit = 10
	MaxBenchmarkLimit     = 100
)

var benchmarkSortColumns = map[string]string{
	"name":          "name",
	"brand":         "brand",
	"year":          "year",
	"price":         "price",
	"componentType": "component_type",
	"createdAt":     "created_at",
}

// BenchmarkQuery carries the raw listing parameters as received.
type BenchmarkQuery struct {
	ComponentType string
	Brand         string
	Sort          string
	Limit         string
}

// BenchmarkService handles benchmark lookups and comparisons.
type BenchmarkService struct {
	repo repositories.BenchmarkRepository
}

// NewBenchmarkService creates a new BenchmarkService.
func NewBenchmarkService(repo repositories.BenchmarkRepository) *BenchmarkService {
	return &BenchmarkService{repo: repo}
}

// List returns benchmarks filtered by type and brand, sorted by a
// "field:asc|desc" expression and capped by limit.
func (s *BenchmarkService) List(q BenchmarkQuery) ([]models.Benchmark, error) {
	column, desc, err := ParseSort(q.Sort)
	if err != nil {
		return nil, err
	}
	return s.repo.List(repositories.BenchmarkFilter{
		ComponentType: q.ComponentType,
		Brand:         q.Brand,
		SortColumn:    column,
		SortDesc:      desc,
		Limit:         ParseLimit(q.Limit),
	})
}

// Get returns a single benchmark.
func (s *BenchmarkService) Get(id string) (*models.Benchmark, error) {
	b, err := s.repo.GetByID(id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return b, nil
}

// Compare loads the given benchmarks for a side-by-side view. Duplicate IDs
// are collapsed; every ID must exist and all must share a component type.
func (s *BenchmarkService) Compare(ids []string) ([]models.Benchmark, error) {
	unique := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	if len(unique) < 2 {
		return nil, ErrTooFewIDs
	}

	found, err := s.repo.GetByIDs(unique)
	if err != nil {
		return nil, err
	}
	if len(found) != len(unique) {
		return nil, fmt.Errorf("%w: one or more benchmarks not found", ErrNotFound)
	}
	for _, b := range found[1:] {
		if b.ComponentType != found[0].ComponentType {
			return nil, ErrMixedTypes
		}
	}
	return found, nil
}

// Types lists the component types with at least one benchmark.
func (s *BenchmarkService) Types() ([]string, error) {
	return s.repo.DistinctTypes()
}

// Brands lists the brands present for a component type.
func (s *BenchmarkService) Brands(componentType string) ([]string, error) {
	return s.repo.DistinctBrands(componentType)
}

// ParseSort turns "field:dir" into a storage column and direction. An empty
// expression sorts by name ascending.
func ParseSort(expr string) (column string, desc bool, err error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return "name", false, nil
	}
	field, dir, _ := strings.Cut(expr, ":")
	desc = strings.EqualFold(strings.TrimSpace(dir), "desc")

	field = strings.TrimSpace(field)
	if metric, ok := strings.CutPrefix(field, "scores."); ok {
		if col, ok := models.ScoreColumns[metric]; ok {
			return col, desc, nil
		}
		return "", false, fmt.Errorf("%w: %s", ErrInvalidSort, field)
	}
	if col, ok := benchmarkSortColumns[field]; ok {
		return col, desc, nil
	}
	return "", false, fmt.Errorf("%w: %s", ErrInvalidSort, field)
}

// ParseLimit applies the listing limit rules: default when missing or not a
// positive integer, capped at MaxBenchmarkLimit.
func ParseLimit(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return DefaultBenchmarkLimit
	}
	if n > MaxBenchmarkLimit {
		return MaxBenchmarkLimit
	}
	return n
}
