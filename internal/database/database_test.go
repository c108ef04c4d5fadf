package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pcbuilder/internal/database"
	"pcbuilder/internal/models"
)

func TestOpenMigratePing(t *testing.T) {
	db, err := database.Open("sqlite", "file:dbtest?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, database.Migrate(db))
	assert.NoError(t, database.Ping(context.Background(), db))

	assert.True(t, db.Migrator().HasTable(&models.User{}))
	assert.True(t, db.Migrator().HasTable(&models.Build{}))
	assert.True(t, db.Migrator().HasColumn(&models.Benchmark{}, "score_single_core"))
	assert.True(t, db.Migrator().HasColumn(&models.Benchmark{}, "score_fps1440p"))
	assert.True(t, db.Migrator().HasIndex(&models.Benchmark{}, "ComponentType"))
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := database.Open("mysql", "whatever")
	assert.Error(t, err)
}
