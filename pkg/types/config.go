// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "citeflex/2.0").
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// RequestsPerSecond caps the outbound request rate per provider
	// client (default 2).
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second"`
}

// EnrichConfig holds settings for the enrichment stage.
type EnrichConfig struct {
	HTTPConfig `yaml:",inline"`

	// ParallelTimeout bounds the whole provider fan-out (default 12s).
	// Providers that have not answered by the deadline are abandoned.
	ParallelTimeout time.Duration `json:"parallel_timeout" yaml:"parallel_timeout"`

	// MaxWorkers limits concurrent provider calls (default 4).
	MaxWorkers int `json:"max_workers" yaml:"max_workers"`

	// PoliteEmail is sent to Crossref/OpenAlex for polite-pool access.
	PoliteEmail string `json:"polite_email,omitempty" yaml:"polite_email,omitempty"`

	// SemanticScholarAPIKey is an optional key for higher rate limits.
	SemanticScholarAPIKey string `json:"semantic_scholar_api_key,omitempty" yaml:"semantic_scholar_api_key,omitempty"`

	// EnableCourtListener turns on the network fallback for legal
	// citations that miss the landmark cache. Off by default: the
	// default legal path never touches the network.
	EnableCourtListener bool `json:"enable_courtlistener" yaml:"enable_courtlistener"`

	// CourtListenerToken authenticates CourtListener API requests.
	CourtListenerToken string `json:"courtlistener_token,omitempty" yaml:"courtlistener_token,omitempty"`
}

// StoreConfig holds settings for the local citation store.
type StoreConfig struct {
	// Path is the SQLite database file (default "citeflex.db").
	// Empty disables the store.
	Path string `json:"path" yaml:"path"`
}

// FormatConfig holds settings for the formatting stage.
type FormatConfig struct {
	// Style is the default citation style name (default "chicago").
	Style string `json:"style" yaml:"style"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Enrich EnrichConfig `json:"enrich" yaml:"enrich"`
	Store  StoreConfig  `json:"store" yaml:"store"`
	Format FormatConfig `json:"format" yaml:"format"`
}

// WithDefaults returns a copy of cfg with zero values replaced by defaults.
func (c EnrichConfig) WithDefaults() EnrichConfig {
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
	if c.UserAgent == "" {
		c.UserAgent = "citeflex/2.0"
	}
	if c.RequestsPerSecond <= 0 {
		c.RequestsPerSecond = 2
	}
	if c.ParallelTimeout <= 0 {
		c.ParallelTimeout = 12 * time.Second
	}
	if c.MaxWorkers <= 0 {
		c.MaxWorkers = 4
	}
	return c
}
