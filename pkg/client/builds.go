package client

import (
	"context"
	"net/http"
	"net/url"

	"pcbuilder/internal/buildgen"
	"pcbuilder/internal/models"
)

// Generate asks the server for a recommendation. It does not need a session.
func (c *Client) Generate(ctx context.Context, req buildgen.Request) (*buildgen.Recommendation, error) {
	var out buildgen.Recommendation
	if err := c.do(ctx, http.MethodPost, "/generateBuild", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SaveBuild stores build under the current user.
func (c *Client) SaveBuild(ctx context.Context, build *models.Build) (*models.Build, error) {
	token, err := c.token()
	if err != nil {
		return nil, err
	}
	var out models.Build
	if err := c.do(ctx, http.MethodPost, "/builds/save", token, build, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BuildFromRecommendation converts a generated recommendation into a build
// ready to save.
func BuildFromRecommendation(name, useCase string, rec *buildgen.Recommendation) *models.Build {
	return &models.Build{
		BuildName:          name,
		Summary:            rec.Summary,
		Components:         rec.Components,
		TotalCost:          rec.TotalCost,
		CompatibilityNotes: rec.CompatibilityNotes,
		ReviewComponents:   rec.ReviewComponents,
		YoutubeReviews:     rec.YoutubeReviews,
		UseCase:            useCase,
	}
}

// ListBuilds returns the current user's builds, newest first.
func (c *Client) ListBuilds(ctx context.Context) ([]models.Build, error) {
	token, err := c.token()
	if err != nil {
		return nil, err
	}
	var out []models.Build
	if err := c.do(ctx, http.MethodGet, "/builds/user", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetBuild returns one build the current user may read.
func (c *Client) GetBuild(ctx context.Context, id string) (*models.Build, error) {
	token, err := c.token()
	if err != nil {
		return nil, err
	}
	var out models.Build
	if err := c.do(ctx, http.MethodGet, "/builds/"+url.PathEscape(id), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteBuild deletes one build the current user may delete.
func (c *Client) DeleteBuild(ctx context.Context, id string) error {
	token, err := c.token()
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, "/builds/"+url.PathEscape(id), token, nil, nil)
}
