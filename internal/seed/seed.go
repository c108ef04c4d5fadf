// Package seed loads the reference benchmark set shipped with the binary.
package seed

import (
	_ "embed"
	"fmt"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"pcbuilder/internal/models"
	"pcbuilder/internal/repositories"
)

//go:embed benchmarks.json
var benchmarksJSON []byte

// Benchmarks decodes the embedded reference set. Every record is checked to
// carry a known component type.
func Benchmarks() ([]models.Benchmark, error) {
	var set []models.Benchmark
	if err := json.Unmarshal(benchmarksJSON, &set); err != nil {
		return nil, fmt.Errorf("failed to decode embedded benchmarks: %w", err)
	}
	for i, b := range set {
		if !b.ComponentType.Valid() {
			return nil, fmt.Errorf("benchmark %d (%s): unknown component type %q", i, b.Name, b.ComponentType)
		}
		if _, err := b.Metrics(); err != nil {
			return nil, fmt.Errorf("benchmark %d (%s): %w", i, b.Name, err)
		}
	}
	return set, nil
}

// Run replaces every stored benchmark with the reference set.
func Run(repo repositories.BenchmarkRepository) (int, error) {
	set, err := Benchmarks()
	if err != nil {
		return 0, err
	}
	n, err := repo.ReplaceAll(set)
	if err != nil {
		return 0, err
	}
	zap.L().Info("Benchmark data seeded", zap.Int("records", n))
	return n, nil
}
