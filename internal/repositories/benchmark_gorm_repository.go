package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pcbuilder/internal/models"
)

// GORMBenchmarkRepository is a GORM implementation of BenchmarkRepository.
type GORMBenchmarkRepository struct {
	db *gorm.DB
}

// NewGORMBenchmarkRepository creates a new instance of GORMBenchmarkRepository.
func NewGORMBenchmarkRepository(db *gorm.DB) *GORMBenchmarkRepository {
	return &GORMBenchmarkRepository{db: db}
}

// List returns benchmarks matching the filter.
func (r *GORMBenchmarkRepository) List(filter BenchmarkFilter) ([]models.Benchmark, error) {
	q := r.db.Model(&models.Benchmark{})
	if filter.ComponentType != "" {
		q = q.Where("component_type = ?", filter.ComponentType)
	}
	if filter.Brand != "" {
		q = q.Where("brand = ?", filter.Brand)
	}

	column := filter.SortColumn
	if column == "" {
		column = "name"
	}
	// Missing metrics sort as the smallest value on every dialect: first when
	// ascending, last when descending. column comes from the sort whitelist.
	q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: column + " IS NULL", Raw: true}, Desc: !filter.SortDesc}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: filter.SortDesc}).
		Order("id")

	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	benchmarks := []models.Benchmark{}
	if err := q.Find(&benchmarks).Error; err != nil {
		return nil, fmt.Errorf("failed to list benchmarks: %w", err)
	}
	return benchmarks, nil
}

// GetByID retrieves a single benchmark.
func (r *GORMBenchmarkRepository) GetByID(id string) (*models.Benchmark, error) {
	var benchmark models.Benchmark
	if err := r.db.First(&benchmark, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("benchmark with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get benchmark by ID %s: %w", id, err)
	}
	return &benchmark, nil
}

// GetByIDs returns the benchmarks whose IDs are in ids, in the order given.
// IDs that do not exist are skipped.
func (r *GORMBenchmarkRepository) GetByIDs(ids []string) ([]models.Benchmark, error) {
	var found []models.Benchmark
	if len(ids) == 0 {
		return found, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&found).Error; err != nil {
		return nil, fmt.Errorf("failed to get benchmarks: %w", err)
	}

	byID := make(map[string]models.Benchmark, len(found))
	for _, b := range found {
		byID[b.ID] = b
	}
	ordered := make([]models.Benchmark, 0, len(found))
	for _, id := range ids {
		if b, ok := byID[id]; ok {
			ordered = append(ordered, b)
		}
	}
	return ordered, nil
}

// DistinctTypes lists the component types present in the table.
func (r *GORMBenchmarkRepository) DistinctTypes() ([]string, error) {
	types := []string{}
	err := r.db.Model(&models.Benchmark{}).Distinct().Order("component_type").Pluck("component_type", &types).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list component types: %w", err)
	}
	return types, nil
}

// DistinctBrands lists the brands present for one component type.
func (r *GORMBenchmarkRepository) DistinctBrands(componentType string) ([]string, error) {
	brands := []string{}
	err := r.db.Model(&models.Benchmark{}).Where("component_type = ?", componentType).
		Distinct().Order("brand").Pluck("brand", &brands).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list brands for %s: %w", componentType, err)
	}
	return brands, nil
}

// ReplaceAll deletes every benchmark and inserts the given set in one
// transaction.
func (r *GORMBenchmarkRepository) ReplaceAll(benchmarks []models.Benchmark) (int, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Benchmark{}).Error; err != nil {
			return fmt.Errorf("failed to clear benchmarks: %w", err)
		}
		if len(benchmarks) == 0 {
			return nil
		}
		for i := range benchmarks {
			if benchmarks[i].ID == "" {
				benchmarks[i].ID = uuid.New().String()
			}
		}
		if err := tx.CreateInBatches(benchmarks, 100).Error; err != nil {
			return fmt.Errorf("failed to insert benchmarks: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(benchmarks), nil
}
