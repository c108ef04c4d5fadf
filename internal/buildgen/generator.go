package buildgen

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"pcbuilder/internal/models"
)

var (
	// ErrInvalidAPIKey is returned by a Completer whose credentials were rejected.
	ErrInvalidAPIKey = errors.New("AI API key is invalid or expired")
	// ErrQuota is returned by a Completer when the upstream quota is exhausted.
	ErrQuota = errors.New("AI quota exceeded")
	// ErrNotConfigured is returned when no Completer is wired.
	ErrNotConfigured = errors.New("AI completion is not configured")
)

// Completer produces free-form text for a prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ReviewSearcher finds review videos for a search query.
type ReviewSearcher interface {
	SearchVideos(ctx context.Context, query string, maxResults int64) ([]models.VideoReview, error)
}

// Generator turns a build request into an enriched recommendation.
type Generator struct {
	completer Completer
	searcher  ReviewSearcher
}

// NewGenerator creates a Generator. searcher may be nil, in which case
// recommendations carry no reviews.
func NewGenerator(completer Completer, searcher ReviewSearcher) *Generator {
	return &Generator{completer: completer, searcher: searcher}
}

// Generate runs the pipeline once. Errors are terminal: the completion call
// is never retried.
func (g *Generator) Generate(ctx context.Context, req Request) (*Recommendation, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if g.completer == nil {
		return nil, ErrNotConfigured
	}

	text, err := g.completer.Complete(ctx, ComposePrompt(req))
	if err != nil {
		return nil, fmt.Errorf("completion failed: %w", err)
	}

	var rec Recommendation
	if err := ExtractJSON(text, &rec); err != nil {
		zap.L().Warn("Could not parse AI response", zap.Error(err), zap.Int("length", len(text)))
		return nil, err
	}
	if rec.ReviewComponents == nil {
		rec.ReviewComponents = []string{}
	}
	if rec.Components == nil {
		rec.Components = []models.Component{}
	}

	rec.YoutubeReviews = g.fetchReviews(ctx, rec.ReviewComponents)
	return &rec, nil
}

// fetchReviews looks up one review per component concurrently. A failed
// lookup contributes nothing; the result keeps the order of components.
func (g *Generator) fetchReviews(ctx context.Context, components []string) []models.VideoReview {
	reviews := []models.VideoReview{}
	if g.searcher == nil || len(components) == 0 {
		return reviews
	}

	results := make([][]models.VideoReview, len(components))
	var wg sync.WaitGroup
	for i, component := range components {
		wg.Add(1)
		go func(idx int, component string) {
			defer wg.Done()
			found, err := g.searcher.SearchVideos(ctx, component+" review", 1)
			if err != nil {
				zap.L().Warn("Review lookup failed", zap.String("component", component), zap.Error(err))
				return
			}
			for j := range found {
				found[j].Component = component
			}
			results[idx] = found
		}(i, component)
	}
	wg.Wait()

	for _, r := range results {
		reviews = append(reviews, r...)
	}
	return reviews
}
