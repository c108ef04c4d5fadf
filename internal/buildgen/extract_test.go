package buildgen

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(data)
}

func TestExtractJSON_Fixtures(t *testing.T) {
	t.Run("fenced block", func(t *testing.T) {
		var rec Recommendation
		require.NoError(t, ExtractJSON(readFixture(t, "fenced.txt"), &rec))
		assert.Equal(t, "1080p gaming build", rec.Summary)
		require.Len(t, rec.Components, 2)
		assert.Equal(t, "NVIDIA RTX 4060", rec.Components[1].Name)
		assert.EqualValues(t, 78500, rec.TotalCost)
		assert.Equal(t, []string{"AMD Ryzen 5 7600", "NVIDIA RTX 4060"}, rec.ReviewComponents)
	})

	t.Run("object wrapped in prose", func(t *testing.T) {
		var rec Recommendation
		require.NoError(t, ExtractJSON(readFixture(t, "prose.txt"), &rec))
		assert.Equal(t, "Editing workstation", rec.Summary)
		assert.EqualValues(t, 145000, rec.TotalCost)
		assert.EqualValues(t, 38000, rec.Components[0].Price)
	})

	t.Run("bare object", func(t *testing.T) {
		var rec Recommendation
		require.NoError(t, ExtractJSON(readFixture(t, "bare.txt"), &rec))
		assert.Equal(t, "Budget office PC", rec.Summary)
		assert.Empty(t, rec.ReviewComponents)
	})

	for _, name := range []string{"invalid.txt", "broken_fence.txt"} {
		t.Run(name, func(t *testing.T) {
			raw := readFixture(t, name)
			var rec Recommendation
			err := ExtractJSON(raw, &rec)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, raw, perr.Raw)
		})
	}
}

func TestExtractJSON_EmptyText(t *testing.T) {
	var rec Recommendation
	err := ExtractJSON("   ", &rec)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "   ", perr.Raw)
}

func TestJSONCandidates_Order(t *testing.T) {
	text := "intro {\"a\":1}\n```json\n{\"b\":2}\n```"
	candidates := jsonCandidates(text)
	require.NotEmpty(t, candidates)
	assert.Equal(t, `{"b":2}`, candidates[0])
	assert.Equal(t, text, candidates[len(candidates)-1])
}
