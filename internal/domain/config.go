package domain

import (
	"fmt"
	"net/url"
)

const DefaultBaseURL = "http://127.0.0.1:8000"

// ClientConfig holds the settings loaded from .orderdesk.yaml.
type ClientConfig struct {
	BaseURL   string `yaml:"base_url"   json:"base_url"`
	PageSize  int    `yaml:"page_size"  json:"page_size"`
	UserAgent string `yaml:"user_agent" json:"user_agent,omitempty"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() ClientConfig {
	return ClientConfig{
		BaseURL:  DefaultBaseURL,
		PageSize: DefaultPageSize,
	}
}

// WithDefaults fills zero fields from DefaultConfig.
func (c ClientConfig) WithDefaults() ClientConfig {
	d := DefaultConfig()
	if c.BaseURL == "" {
		c.BaseURL = d.BaseURL
	}
	if c.PageSize == 0 {
		c.PageSize = d.PageSize
	}
	return c
}

// Validate checks that the configuration is usable. Zero values are allowed
// and mean "use the default".
func (c ClientConfig) Validate() error {
	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil {
			return fmt.Errorf("base_url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("base_url: scheme must be http or https, got %q", u.Scheme)
		}
		if u.Host == "" {
			return fmt.Errorf("base_url: missing host in %q", c.BaseURL)
		}
	}
	if c.PageSize < 0 || c.PageSize > MaxPageSize {
		return fmt.Errorf("page_size: must be between 1 and %d, got %d", MaxPageSize, c.PageSize)
	}
	return nil
}
