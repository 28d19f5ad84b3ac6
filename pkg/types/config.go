// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines configuration structures shared by the arxiv
// library and CLI.
package types

import "time"

// Defaults applied when a config field is left zero.
const (
	DefaultBaseURL   = "https://export.arxiv.org/api/query"
	DefaultUserAgent = "arxiv-go/0.1"
	DefaultTimeout   = 30 * time.Second
)

// HTTPConfig holds shared HTTP settings used by operations that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "arxiv-go/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// ClientConfig holds settings for the metadata lookup client.
type ClientConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BaseURL is the Atom query endpoint. The identifier is appended as
	// the id_list parameter.
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`
}

// WithDefaults returns a copy of c with zero fields filled in.
func (c ClientConfig) WithDefaults() ClientConfig {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}

// CatalogConfig holds settings for the local manuscript catalog.
type CatalogConfig struct {
	// Path is the SQLite database file (e.g. "arxiv.db").
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// DownloadConfig holds settings for PDF downloads.
type DownloadConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// Dir is the directory PDFs are written to.
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`
}
