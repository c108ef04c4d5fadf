package main

import (
	"bytes"
	"context"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pcbuilder/internal/buildgen"
	"pcbuilder/internal/config"
	"pcbuilder/internal/database"
	"pcbuilder/internal/models"
	"pcbuilder/internal/repositories"
	"pcbuilder/internal/seed"
	"pcbuilder/internal/server"
)

const cliPassword = "Secret1!"

type cannedCompleter struct{}

func (cannedCompleter) Complete(context.Context, string) (string, error) {
	return `Here you go: {"summary":"Budget build","components":[{"name":"Core i5-14400F","type":"CPU","specs":"10C","price":"₹16,500","rationale":"value"}],"totalCost":16500,"compatibilityNotes":"","reviewComponents":[]}`, nil
}

type cliEnv struct {
	configPath string
	sessionDir string
}

func setupCLITestEnv(t *testing.T) *cliEnv {
	t.Helper()
	db, err := database.Open("sqlite", "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	_, err = seed.Run(repositories.NewGORMBenchmarkRepository(db))
	require.NoError(t, err)

	app := server.New(&config.Config{
		Environment: "test",
		JWTSecret:   "cli-test-secret",
		TokenTTL:    time.Hour,
	}, server.Deps{DB: db, Generator: buildgen.NewGenerator(cannedCompleter{}, nil)})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() {
		_ = app.Shutdown()
		_ = database.Close(db)
	})

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	require.NoError(t, writeSampleConfig(cfgPath, &cliConfig{
		APIURL:      "http://" + ln.Addr().String(),
		SessionFile: filepath.Join(dir, "session.json"),
	}))
	return &cliEnv{configPath: cfgPath, sessionDir: dir}
}

func runCLI(t *testing.T, env *cliEnv, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCLI_AccountFlow(t *testing.T) {
	env := setupCLITestEnv(t)

	_, err := runCLI(t, env, "whoami")
	require.Error(t, err)
	assert.Contains(t, describeError(err), "Not logged in")

	out, err := runCLI(t, env, "register", "--name", "Dana", "--email", "dana@example.com", "--password", cliPassword)
	require.NoError(t, err)
	assert.Contains(t, out, "Registered and logged in")

	out, err = runCLI(t, env, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "dana@example.com")

	out, err = runCLI(t, env, "profile", "update", "--name", "Dana Scully")
	require.NoError(t, err)
	assert.Contains(t, out, "Dana Scully")

	_, err = runCLI(t, env, "admin", "users")
	require.Error(t, err)
	assert.Contains(t, describeError(err), "admin account")

	out, err = runCLI(t, env, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged out")
	_, err = os.Stat(filepath.Join(env.sessionDir, "session.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestCLI_GenerateSaveExport(t *testing.T) {
	env := setupCLITestEnv(t)
	_, err := runCLI(t, env, "register", "--name", "Eve", "--email", "eve@example.com", "--password", cliPassword)
	require.NoError(t, err)

	out, err := runCLI(t, env, "--json", "generate", "--budget", "₹20,000", "--use-case", "Office", "--save", "--name", "Desk PC")
	require.NoError(t, err)
	var saved models.Build
	require.NoError(t, json.Unmarshal([]byte(out), &saved))
	assert.Equal(t, "Desk PC", saved.BuildName)
	assert.EqualValues(t, 16500, saved.TotalCost)

	out, err = runCLI(t, env, "builds", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Desk PC")
	assert.Contains(t, out, "₹16,500")

	target := filepath.Join(t.TempDir(), "build.json")
	_, err = runCLI(t, env, "builds", "export", saved.ID, "-o", target)
	require.NoError(t, err)
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Core i5-14400F")

	_, err = runCLI(t, env, "builds", "delete", saved.ID)
	require.NoError(t, err)
	out, err = runCLI(t, env, "builds", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No saved builds")
}

func TestCLI_GenerateRequiresInput(t *testing.T) {
	env := setupCLITestEnv(t)
	_, err := runCLI(t, env, "generate", "--budget", "0", "--use-case", "Gaming")
	require.Error(t, err)
	assert.Contains(t, describeError(err), "Budget and use case are required")
}

func TestCLI_Benchmarks(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, env, "--json", "benchmarks", "list", "--type", "GPU", "--sort", "scores.fps1440p:desc", "--limit", "2")
	require.NoError(t, err)
	var gpus []models.Benchmark
	require.NoError(t, json.Unmarshal([]byte(out), &gpus))
	require.Len(t, gpus, 2)

	out, err = runCLI(t, env, "benchmarks", "compare", gpus[0].ID, gpus[1].ID)
	require.NoError(t, err)
	assert.Contains(t, out, "fps1440p")
	assert.Contains(t, out, gpus[0].Name)

	out, err = runCLI(t, env, "benchmarks", "chart", "--metric", "fps4k", gpus[0].ID, gpus[1].ID)
	require.NoError(t, err)
	assert.Contains(t, out, "█")

	out, err = runCLI(t, env, "benchmarks", "types")
	require.NoError(t, err)
	assert.Contains(t, out, "CPU")

	_, err = runCLI(t, env, "benchmarks", "list", "--sort", "bogus")
	require.Error(t, err)
	assert.Contains(t, describeError(err), "Invalid sort field")
}

func TestLoadCLIConfig(t *testing.T) {
	t.Setenv("PCBUILDER_API_URL", "")
	dir := t.TempDir()

	_, err := loadCLIConfig(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("api_url = \"http://api.example:9000\"\n"), 0o644))
	cfg, err := loadCLIConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http://api.example:9000", cfg.APIURL)
	assert.Equal(t, filepath.Join(dir, "session.json"), cfg.SessionFile)

	t.Setenv("PCBUILDER_API_URL", "http://override:1")
	cfg, err = loadCLIConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http://override:1", cfg.APIURL)
}

func TestFormatRupees(t *testing.T) {
	cases := map[float64]string{
		0:       "₹0",
		999:     "₹999",
		38000:   "₹38,000",
		145000:  "₹1,45,000",
		1234567: "₹12,34,567",
		-5000:   "-₹5,000",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatRupees(in), "%v", in)
	}
}

func TestRenderChart_MissingMetric(t *testing.T) {
	items := []models.Benchmark{{Name: "A"}, {Name: "B"}}
	_, err := renderChart(items, "gaming", false)
	assert.Error(t, err)
}

func TestRenderTable_PadsShortRowsAndAlignsNumbers(t *testing.T) {
	out := renderTable([]column{textCol("Part"), numCol("Price")}, [][]string{
		{"CPU", formatRupees(18000)},
		{"Case"},
	})

	lines := strings.Split(out, "\n")
	var cpu, pcCase string
	for _, l := range lines {
		switch {
		case strings.Contains(l, "CPU"):
			cpu = l
		case strings.Contains(l, "Case"):
			pcCase = l
		}
	}
	require.NotEmpty(t, cpu)
	require.NotEmpty(t, pcCase)
	assert.Contains(t, cpu, "₹18,000 │")
	assert.Equal(t, len([]rune(cpu)), len([]rune(pcCase)))

	assert.Empty(t, renderTable(nil, nil))
}
