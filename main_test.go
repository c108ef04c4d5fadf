package main

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pcbuilder/internal/buildgen"
	"pcbuilder/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:           "0",
		Environment:    "test",
		ReviewCacheTTL: time.Minute,
	}
}

func TestNewGenerator_WithoutKeys(t *testing.T) {
	gen, cleanup := newGenerator(context.Background(), testConfig())
	defer cleanup()
	require.NotNil(t, gen)

	_, err := gen.Generate(context.Background(), buildgen.Request{Budget: 80000, UseCase: "Gaming"})
	assert.ErrorIs(t, err, buildgen.ErrNotConfigured)

	_, err = gen.Generate(context.Background(), buildgen.Request{UseCase: "Gaming"})
	assert.ErrorIs(t, err, buildgen.ErrMissingInput)
}

func TestNewGenerator_UnreachableCache(t *testing.T) {
	cfg := testConfig()
	cfg.YouTubeAPIKey = "yt-key"
	cfg.RedisAddr = "127.0.0.1:1"

	gen, cleanup := newGenerator(context.Background(), cfg)
	defer cleanup()
	assert.NotNil(t, gen)
}

func TestNewGenerator_WithCache(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig()
	cfg.YouTubeAPIKey = "yt-key"
	cfg.RedisAddr = mr.Addr()

	gen, cleanup := newGenerator(context.Background(), cfg)
	require.NotNil(t, gen)
	cleanup()
}
