package cache

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"pcbuilder/internal/buildgen"
	"pcbuilder/internal/models"
)

const (
	keyPrefix  = "pcbuilder:reviews:"
	DefaultTTL = 24 * time.Hour
)

// CachedSearcher wraps a ReviewSearcher with a Redis cache keyed by the
// normalized query. Cache failures fall through to the live search.
type CachedSearcher struct {
	next   buildgen.ReviewSearcher
	client *redis.Client
	ttl    time.Duration
}

// NewCachedSearcher creates a CachedSearcher.
func NewCachedSearcher(next buildgen.ReviewSearcher, client *redis.Client, ttl time.Duration) *CachedSearcher {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CachedSearcher{next: next, client: client, ttl: ttl}
}

// SearchVideos implements buildgen.ReviewSearcher.
func (c *CachedSearcher) SearchVideos(ctx context.Context, query string, maxResults int64) ([]models.VideoReview, error) {
	key := Key(query, maxResults)

	cached, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var videos []models.VideoReview
		if jerr := json.Unmarshal(cached, &videos); jerr == nil {
			return videos, nil
		}
		zap.L().Warn("Discarding corrupt cache entry", zap.String("key", key))
	case !errors.Is(err, redis.Nil):
		zap.L().Warn("Review cache read failed", zap.String("key", key), zap.Error(err))
	}

	videos, err := c.next.SearchVideos(ctx, query, maxResults)
	if err != nil {
		return nil, err
	}

	if payload, jerr := json.Marshal(videos); jerr == nil {
		if serr := c.client.Set(ctx, key, payload, c.ttl).Err(); serr != nil {
			zap.L().Warn("Review cache write failed", zap.String("key", key), zap.Error(serr))
		}
	}
	return videos, nil
}

// Key returns the cache key for a query.
func Key(query string, maxResults int64) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(query)), " ")
	return keyPrefix + strconv.FormatInt(maxResults, 10) + ":" + normalized
}
