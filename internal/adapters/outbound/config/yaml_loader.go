package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/orderdesk/orderdesk/internal/domain"
	"gopkg.in/yaml.v3"
)

const (
	FileName = ".orderdesk.yaml"
	// EnvBaseURL overrides base_url from the file.
	EnvBaseURL = "ORDERDESK_API_BASE_URL"
)

// YAMLLoader reads .orderdesk.yaml and applies environment overrides.
type YAMLLoader struct {
	getenv func(string) string
}

// New creates a YAMLLoader reading the process environment.
func New() *YAMLLoader { return &YAMLLoader{getenv: os.Getenv} }

// NewWithEnv creates a YAMLLoader with a custom environment lookup.
func NewWithEnv(getenv func(string) string) *YAMLLoader {
	return &YAMLLoader{getenv: getenv}
}

// Load reads .orderdesk.yaml from dir.
// Returns DefaultConfig (plus env overrides) if the file does not exist.
func (l *YAMLLoader) Load(dir string) (domain.ClientConfig, error) {
	cfg, err := l.read(filepath.Join(dir, FileName), true)
	if err != nil {
		return domain.ClientConfig{}, err
	}
	return l.finish(cfg)
}

// LoadFile reads an explicitly named config file, which must exist.
func (l *YAMLLoader) LoadFile(path string) (domain.ClientConfig, error) {
	cfg, err := l.read(path, false)
	if err != nil {
		return domain.ClientConfig{}, err
	}
	return l.finish(cfg)
}

func (l *YAMLLoader) read(path string, optional bool) (domain.ClientConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return domain.ClientConfig{}, nil
		}
		return domain.ClientConfig{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var cfg domain.ClientConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ClientConfig{}, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	// Validate before defaults so typos in the file are reported as such.
	if err := cfg.Validate(); err != nil {
		return domain.ClientConfig{}, fmt.Errorf("invalid %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

func (l *YAMLLoader) finish(cfg domain.ClientConfig) (domain.ClientConfig, error) {
	if v := l.getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
		if err := cfg.Validate(); err != nil {
			return domain.ClientConfig{}, fmt.Errorf("invalid %s: %w", EnvBaseURL, err)
		}
	}
	return cfg.WithDefaults(), nil
}
