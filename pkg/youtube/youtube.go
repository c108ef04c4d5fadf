// Package youtube searches review videos through the YouTube Data API.
package youtube

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	"pcbuilder/internal/models"
)

// Config holds the YouTube client settings.
type Config struct {
	APIKey  string
	Options []option.ClientOption
}

// Searcher implements buildgen.ReviewSearcher.
type Searcher struct {
	svc *yt.Service
}

// NewSearcher creates a Searcher. The API key is required.
func NewSearcher(ctx context.Context, cfg Config) (*Searcher, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("youtube: API key is required")
	}
	opts := append([]option.ClientOption{option.WithAPIKey(cfg.APIKey)}, cfg.Options...)
	svc, err := yt.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube client: %w", err)
	}
	return &Searcher{svc: svc}, nil
}

// SearchVideos returns up to maxResults videos matching query. The Component
// field of the results is left empty.
func (s *Searcher) SearchVideos(ctx context.Context, query string, maxResults int64) ([]models.VideoReview, error) {
	resp, err := s.svc.Search.List([]string{"snippet"}).
		Q(query).
		MaxResults(maxResults).
		Type("video").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("youtube search %q: %w", query, err)
	}

	videos := make([]models.VideoReview, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Snippet == nil {
			continue
		}
		video := models.VideoReview{
			Title:       item.Snippet.Title,
			Description: item.Snippet.Description,
			VideoID:     item.Id.VideoId,
		}
		if th := item.Snippet.Thumbnails; th != nil {
			switch {
			case th.Medium != nil:
				video.Thumbnail = th.Medium.Url
			case th.Default != nil:
				video.Thumbnail = th.Default.Url
			}
		}
		videos = append(videos, video)
	}
	return videos, nil
}
