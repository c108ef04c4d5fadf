package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

const searchResponse = `{
  "kind": "youtube#searchListResponse",
  "items": [
    {
      "id": {"kind": "youtube#video", "videoId": "abc123"},
      "snippet": {
        "title": "RTX 4060 Review",
        "description": "Is it worth it?",
        "thumbnails": {"medium": {"url": "https://i.ytimg.com/vi/abc123/mqdefault.jpg"}}
      }
    }
  ]
}`

func newTestSearcher(t *testing.T, handler http.HandlerFunc) *Searcher {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	s, err := NewSearcher(context.Background(), Config{
		APIKey: "test-key",
		Options: []option.ClientOption{
			option.WithEndpoint(srv.URL + "/"),
			option.WithHTTPClient(srv.Client()),
		},
	})
	require.NoError(t, err)
	return s
}

func TestSearcher_SearchVideos(t *testing.T) {
	var gotQuery, gotMax, gotType string
	s := newTestSearcher(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotMax = r.URL.Query().Get("maxResults")
		gotType = r.URL.Query().Get("type")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(searchResponse))
	})

	videos, err := s.SearchVideos(context.Background(), "RTX 4060 review", 1)
	require.NoError(t, err)

	assert.Equal(t, "RTX 4060 review", gotQuery)
	assert.Equal(t, "1", gotMax)
	assert.Equal(t, "video", gotType)

	require.Len(t, videos, 1)
	assert.Equal(t, "abc123", videos[0].VideoID)
	assert.Equal(t, "RTX 4060 Review", videos[0].Title)
	assert.Equal(t, "https://i.ytimg.com/vi/abc123/mqdefault.jpg", videos[0].Thumbnail)
	assert.Empty(t, videos[0].Component)
}

func TestSearcher_UpstreamError(t *testing.T) {
	s := newTestSearcher(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"quotaExceeded"}}`))
	})

	_, err := s.SearchVideos(context.Background(), "anything", 1)
	assert.Error(t, err)
}

func TestNewSearcher_RequiresKey(t *testing.T) {
	_, err := NewSearcher(context.Background(), Config{})
	assert.Error(t, err)
}
