package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"pcbuilder/internal/models"
)

// BenchmarkFilter narrows a benchmark listing. Zero values are omitted.
type BenchmarkFilter struct {
	ComponentType string
	Brand         string
	Sort          string
	Limit         int
}

func (f BenchmarkFilter) query() string {
	q := url.Values{}
	if f.ComponentType != "" {
		q.Set("componentType", f.ComponentType)
	}
	if f.Brand != "" {
		q.Set("brand", f.Brand)
	}
	if f.Sort != "" {
		q.Set("sort", f.Sort)
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

func (c *Client) ListBenchmarks(ctx context.Context, filter BenchmarkFilter) ([]models.Benchmark, error) {
	var out envelope[[]models.Benchmark]
	if err := c.do(ctx, http.MethodGet, "/benchmarks/"+filter.query(), "", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) GetBenchmark(ctx context.Context, id string) (*models.Benchmark, error) {
	var out envelope[models.Benchmark]
	if err := c.do(ctx, http.MethodGet, "/benchmarks/"+url.PathEscape(id), "", nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// CompareBenchmarks returns the benchmarks named by ids. The server requires
// at least two ids of one component type.
func (c *Client) CompareBenchmarks(ctx context.Context, ids []string) ([]models.Benchmark, error) {
	var out envelope[[]models.Benchmark]
	in := map[string][]string{"ids": ids}
	if err := c.do(ctx, http.MethodPost, "/benchmarks/compare", "", in, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) ComponentTypes(ctx context.Context) ([]string, error) {
	var out envelope[[]string]
	if err := c.do(ctx, http.MethodGet, "/benchmarks/types/all", "", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) Brands(ctx context.Context, componentType string) ([]string, error) {
	var out envelope[[]string]
	if err := c.do(ctx, http.MethodGet, "/benchmarks/brands/"+url.PathEscape(componentType), "", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}
