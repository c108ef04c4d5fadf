package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultSQLiteDSN = "file:pcbuilder.db?cache=shared&_foreign_keys=on"

// Config holds every runtime setting of the API server.
type Config struct {
	Port        string
	Environment string
	LogLevel    string

	DatabaseDriver string
	DatabaseDSN    string

	JWTSecret string
	TokenTTL  time.Duration

	GeminiAPIKey  string
	GeminiModel   string
	YouTubeAPIKey string

	AllowedOrigins []string
	FrontendDir    string

	RabbitMQURL string

	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	ReviewCacheTTL time.Duration
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromViper(NewViper())
}

// NewViper returns a viper instance bound to the environment with defaults.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("PORT", "11822")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("TOKEN_TTL", "288h") // 12 days
	v.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REVIEW_CACHE_TTL", "24h")
	v.AutomaticEnv()
	return v
}

// FromViper builds a Config out of an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:           strings.TrimPrefix(strings.TrimSpace(v.GetString("PORT")), ":"),
		Environment:    strings.ToLower(strings.TrimSpace(v.GetString("ENVIRONMENT"))),
		LogLevel:       v.GetString("LOG_LEVEL"),
		DatabaseDriver: strings.ToLower(strings.TrimSpace(v.GetString("DATABASE_DRIVER"))),
		DatabaseDSN:    strings.TrimSpace(v.GetString("DATABASE_DSN")),
		JWTSecret:      v.GetString("JWT_SECRET"),
		TokenTTL:       v.GetDuration("TOKEN_TTL"),
		GeminiAPIKey:   strings.TrimSpace(v.GetString("GEMINI_API_KEY")),
		GeminiModel:    strings.TrimSpace(v.GetString("GEMINI_MODEL")),
		YouTubeAPIKey:  strings.TrimSpace(v.GetString("YOUTUBE_API_KEY")),
		AllowedOrigins: splitList(v.GetString("ALLOWED_ORIGINS")),
		FrontendDir:    strings.TrimSpace(v.GetString("FRONTEND_DIR")),
		RabbitMQURL:    strings.TrimSpace(v.GetString("RABBITMQ_URL")),
		RedisAddr:      strings.TrimSpace(v.GetString("REDIS_ADDR")),
		RedisPassword:  v.GetString("REDIS_PASSWORD"),
		RedisDB:        v.GetInt("REDIS_DB"),
		ReviewCacheTTL: v.GetDuration("REVIEW_CACHE_TTL"),
	}

	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = strings.TrimSpace(v.GetString("CONNECTION_STRING"))
	}
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = defaultSQLiteDSN
	}
	if cfg.DatabaseDriver == "" {
		cfg.DatabaseDriver = DetectDriver(cfg.DatabaseDSN)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ListenAddr returns the address Fiber should listen on.
func (c *Config) ListenAddr() string {
	return ":" + c.Port
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.Port == "" {
		return errors.New("PORT must not be empty")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	switch c.DatabaseDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.DatabaseDriver)
	}
	return nil
}

// DetectDriver guesses the GORM dialect from a DSN.
func DetectDriver(dsn string) string {
	lower := strings.ToLower(dsn)
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"),
		strings.Contains(lower, "host=") && strings.Contains(lower, "dbname="):
		return "postgres"
	default:
		return "sqlite"
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
