package repositories_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pcbuilder/internal/database"
	"pcbuilder/internal/models"
	"pcbuilder/internal/repositories"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Open("sqlite", dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func TestUserRepository_CreateAndLookup(t *testing.T) {
	repo := repositories.NewGORMUserRepository(newTestDB(t))

	user := &models.User{Name: "Alice", Email: " Alice@Example.com ", Password: "hash"}
	require.NoError(t, repo.Create(user))
	assert.NotEmpty(t, user.ID)

	byEmail, err := repo.GetByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	err = repo.Create(&models.User{Name: "Other", Email: "alice@example.com", Password: "hash"})
	assert.True(t, errors.Is(err, repositories.ErrDuplicate), "got %v", err)

	_, err = repo.GetByID("missing")
	assert.True(t, errors.Is(err, repositories.ErrNotFound))

	updated, err := repo.UpdateName(user.ID, "Alicia")
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.Name)

	_, err = repo.UpdateName("missing", "x")
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
}

func TestUserRepository_DeleteWithBuildsCascades(t *testing.T) {
	db := newTestDB(t)
	users := repositories.NewGORMUserRepository(db)
	builds := repositories.NewGORMBuildRepository(db)

	owner := &models.User{Name: "Owner", Email: "owner@example.com", Password: "hash"}
	other := &models.User{Name: "Other", Email: "other@example.com", Password: "hash"}
	require.NoError(t, users.Create(owner))
	require.NoError(t, users.Create(other))

	require.NoError(t, builds.Create(&models.Build{UserID: owner.ID, BuildName: "a", Summary: "a"}))
	require.NoError(t, builds.Create(&models.Build{UserID: owner.ID, BuildName: "b", Summary: "b"}))
	require.NoError(t, builds.Create(&models.Build{UserID: other.ID, BuildName: "c", Summary: "c"}))

	require.NoError(t, users.DeleteWithBuilds(owner.ID))

	all, err := builds.ListAllWithOwners()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, other.ID, all[0].UserID)
	require.NotNil(t, all[0].Owner)
	assert.Equal(t, "other@example.com", all[0].Owner.Email)

	err = users.DeleteWithBuilds(owner.ID)
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
}

func TestBuildRepository_ListByUserNewestFirst(t *testing.T) {
	repo := repositories.NewGORMBuildRepository(newTestDB(t))

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, name := range []string{"old", "mid", "new"} {
		require.NoError(t, repo.Create(&models.Build{
			UserID:    "u1",
			BuildName: name,
			Summary:   name,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}
	require.NoError(t, repo.Create(&models.Build{UserID: "u2", BuildName: "x", Summary: "x"}))

	list, err := repo.ListByUser("u1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"new", "mid", "old"}, []string{list[0].BuildName, list[1].BuildName, list[2].BuildName})

	empty, err := repo.ListByUser("nobody")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestBuildRepository_RoundTripKeepsComponentOrder(t *testing.T) {
	repo := repositories.NewGORMBuildRepository(newTestDB(t))

	build := &models.Build{
		UserID:    "u1",
		BuildName: "Gaming rig",
		Summary:   "1080p gaming",
		Components: []models.Component{
			{Name: "Ryzen 5 7600", Type: "CPU", Specs: "6C/12T", Price: 19000, Rationale: "value"},
			{Name: "RX 7700 XT", Type: "GPU", Specs: "12GB", Price: 38000, Rationale: "fps"},
			{Name: "B650", Type: "Motherboard", Specs: "AM5", Price: 14000, Rationale: "platform"},
		},
		TotalCost:        71000,
		ReviewComponents: []string{"Ryzen 5 7600", "RX 7700 XT"},
		YoutubeReviews:   []models.VideoReview{{Title: "t", VideoID: "v", Component: "RX 7700 XT"}},
	}
	require.NoError(t, repo.Create(build))

	got, err := repo.GetByID(build.ID)
	require.NoError(t, err)
	assert.Equal(t, build.Components, got.Components)
	assert.Equal(t, build.ReviewComponents, got.ReviewComponents)
	assert.Equal(t, build.YoutubeReviews, got.YoutubeReviews)
	assert.EqualValues(t, 71000, got.TotalCost)

	require.NoError(t, repo.Delete(build.ID))
	assert.True(t, errors.Is(repo.Delete(build.ID), repositories.ErrNotFound))
	_, err = repo.GetByID(build.ID)
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
}

func seedBenchmarks(t *testing.T, repo *repositories.GORMBenchmarkRepository) []models.Benchmark {
	t.Helper()
	mk := func(name, brand string, m models.Metrics, price float64) models.Benchmark {
		b := models.Benchmark{Name: name, Brand: brand, Year: 2022, Price: price}
		b.SetMetrics(m)
		return b
	}
	set := []models.Benchmark{
		mk("Intel Core i9-13900K", "Intel", models.CPUMetrics{SingleCore: 2150, MultiCore: 38650}, 589),
		mk("AMD Ryzen 7 7800X3D", "AMD", models.CPUMetrics{SingleCore: 1950, MultiCore: 25800}, 449),
		mk("AMD Ryzen 5 7600X", "AMD", models.CPUMetrics{SingleCore: 1890, MultiCore: 18750}, 299),
		mk("NVIDIA RTX 4090", "NVIDIA", models.GPUMetrics{FPS1080p: 380, FPS1440p: 250, FPS4k: 150}, 1599),
		mk("Noctua NH-D15", "Noctua", models.CoolerMetrics{Thermals: 92, Noise: 88}, 99),
	}
	n, err := repo.ReplaceAll(set)
	require.NoError(t, err)
	require.Equal(t, len(set), n)
	return set
}

func TestBenchmarkRepository_ListFiltersAndSorts(t *testing.T) {
	repo := repositories.NewGORMBenchmarkRepository(newTestDB(t))
	seedBenchmarks(t, repo)

	cpus, err := repo.List(repositories.BenchmarkFilter{ComponentType: "CPU"})
	require.NoError(t, err)
	require.Len(t, cpus, 3)
	assert.Equal(t, "AMD Ryzen 5 7600X", cpus[0].Name)

	amd, err := repo.List(repositories.BenchmarkFilter{ComponentType: "CPU", Brand: "AMD"})
	require.NoError(t, err)
	assert.Len(t, amd, 2)

	bySingle, err := repo.List(repositories.BenchmarkFilter{
		ComponentType: "CPU", SortColumn: models.ScoreColumns["singleCore"], SortDesc: true, Limit: 2,
	})
	require.NoError(t, err)
	require.Len(t, bySingle, 2)
	assert.Equal(t, "Intel Core i9-13900K", bySingle[0].Name)
	assert.Equal(t, "AMD Ryzen 7 7800X3D", bySingle[1].Name)
	v, ok := bySingle[0].Scores.Value("singleCore")
	assert.True(t, ok)
	assert.Equal(t, 2150.0, v)
}

func TestBenchmarkRepository_MissingMetricsSortAsSmallest(t *testing.T) {
	repo := repositories.NewGORMBenchmarkRepository(newTestDB(t))
	seedBenchmarks(t, repo)
	column := models.ScoreColumns["multiCore"]

	desc, err := repo.List(repositories.BenchmarkFilter{SortColumn: column, SortDesc: true})
	require.NoError(t, err)
	require.Len(t, desc, 5)
	assert.Equal(t, "Intel Core i9-13900K", desc[0].Name)
	assert.Equal(t, "AMD Ryzen 5 7600X", desc[2].Name)
	for _, b := range desc[3:] {
		assert.Nil(t, b.Scores.MultiCore, b.Name)
	}

	asc, err := repo.List(repositories.BenchmarkFilter{SortColumn: column})
	require.NoError(t, err)
	require.Len(t, asc, 5)
	for _, b := range asc[:2] {
		assert.Nil(t, b.Scores.MultiCore, b.Name)
	}
	assert.Equal(t, "AMD Ryzen 5 7600X", asc[2].Name)
	assert.Equal(t, "Intel Core i9-13900K", asc[4].Name)
}

func TestBenchmarkRepository_DistinctAndLookup(t *testing.T) {
	repo := repositories.NewGORMBenchmarkRepository(newTestDB(t))
	set := seedBenchmarks(t, repo)

	types, err := repo.DistinctTypes()
	require.NoError(t, err)
	assert.Equal(t, []string{"CPU", "Cooler", "GPU"}, types)

	again, err := repo.DistinctTypes()
	require.NoError(t, err)
	assert.Equal(t, types, again)

	brands, err := repo.DistinctBrands("CPU")
	require.NoError(t, err)
	assert.Equal(t, []string{"AMD", "Intel"}, brands)

	got, err := repo.GetByIDs([]string{set[3].ID, "missing", set[0].ID})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, set[3].ID, got[0].ID)
	assert.Equal(t, set[0].ID, got[1].ID)

	_, err = repo.GetByID("missing")
	assert.True(t, errors.Is(err, repositories.ErrNotFound))

	n, err := repo.ReplaceAll(nil)
	require.NoError(t, err)
	assert.Zero(t, n)
	types, err = repo.DistinctTypes()
	require.NoError(t, err)
	assert.Empty(t, types)
}
