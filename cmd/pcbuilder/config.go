package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const defaultAPIURL = "http://localhost:11822"

// cliConfig is the optional TOML file of the terminal client.
type cliConfig struct {
	APIURL      string `toml:"api_url"`
	SessionFile string `toml:"session_file,omitempty"`
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "pcbuilder", "config.toml")
}

// loadCLIConfig reads path when it exists and fills defaults. An explicit
// path that does not exist is an error; the default path may be absent.
func loadCLIConfig(path string) (*cliConfig, error) {
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = defaultConfigPath()
	}

	cfg := &cliConfig{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	if env := strings.TrimSpace(os.Getenv("PCBUILDER_API_URL")); env != "" {
		cfg.APIURL = env
	}
	if cfg.APIURL == "" {
		cfg.APIURL = defaultAPIURL
	}
	if cfg.SessionFile == "" {
		cfg.SessionFile = filepath.Join(filepath.Dir(path), "session.json")
	}
	return cfg, nil
}

func writeSampleConfig(path string, cfg *cliConfig) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
