// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// OracleConfig holds shared settings for calls into the language-model oracle.
type OracleConfig struct {
	// Model is the chat model identifier (e.g. "gpt-4o-mini").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the oracle API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxRetries is the number of retry attempts for a failed oracle call
	// before the affected field degrades to its empty value (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// RequestsPerSecond bounds the oracle request rate across all
	// enrichment workers (default 3).
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second"`
}

// EnrichConfig holds settings for the enrichment stage.
type EnrichConfig struct {
	OracleConfig `yaml:",inline"`

	// Workers is the size of the enrichment worker pool (default 4).
	// Oracle calls are idempotent and independent per ingredient, so the
	// pool size never changes output, only wall time.
	Workers int `json:"workers" yaml:"workers"`

	// CheckpointInterval is how many completed ingredients may accumulate
	// between knowledge-base flushes (default 20). A crash loses at most the
	// trailing incomplete interval.
	CheckpointInterval int `json:"checkpoint_interval" yaml:"checkpoint_interval"`
}
