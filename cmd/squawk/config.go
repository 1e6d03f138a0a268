package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const configFileName = ".squawk.toml"

type uploadToGitHubConfig struct {
	FailOnViolations bool `toml:"fail_on_violations"`
}

type config struct {
	ExcludedPaths       []string             `toml:"excluded_paths"`
	ExcludedRules       []string             `toml:"excluded_rules"`
	PgVersion           string               `toml:"pg_version"`
	AssumeInTransaction bool                 `toml:"assume_in_transaction"`
	UploadToGitHub      uploadToGitHubConfig `toml:"upload_to_github"`
}

// loadConfig reads the given path, or discovers .squawk.toml by walking from
// the working directory toward the root. A missing config is not an error.
func loadConfig(customPath string) (*config, error) {
	path := customPath
	if path == "" {
		found, err := findConfigFile()
		if err != nil {
			return nil, err
		}
		path = found
	}
	if path == "" {
		slog.Debug("no config file found")
		return &config{}, nil
	}
	slog.Debug("using config file", "path", path)

	var cfg config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return &cfg, nil
}

func findConfigFile() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
