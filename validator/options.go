package validator

import (
	"github.com/Hanliang-Xu/asltools/internal/options"
	"github.com/Hanliang-Xu/asltools/schema"
	"github.com/Hanliang-Xu/asltools/sidecar"
)

// Option is a function that configures a validation operation
type Option func(*validateConfig) error

// validateConfig holds configuration for a validation operation
type validateConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	record   *sidecar.Record

	// Configuration options
	includeWarnings bool
	required        schema.Schema
	recommended     schema.Schema
	logger          sidecar.Logger
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*validateConfig, error) {
	cfg := &validateConfig{
		// Set defaults to match New()
		includeWarnings: true,
		required:        schema.Required(),
		recommended:     schema.Recommended(),
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// Validate exactly one input source is specified
	if err := options.ValidateSingleInputSource(
		"must specify an input source (use WithFilePath or WithRecord)",
		"must specify exactly one input source",
		cfg.filePath != nil, cfg.record != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath specifies a sidecar file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *validateConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithRecord specifies an already loaded sidecar record as the input source
func WithRecord(rec sidecar.Record) Option {
	return func(cfg *validateConfig) error {
		cfg.record = &rec
		return nil
	}
}

// WithSchemas replaces the built-in required and recommended schemas.
// A nil schema disables the corresponding pass.
func WithSchemas(required, recommended schema.Schema) Option {
	return func(cfg *validateConfig) error {
		cfg.required = required
		cfg.recommended = recommended
		return nil
	}
}

// WithIncludeWarnings enables or disables warnings
// Default: true
func WithIncludeWarnings(enabled bool) Option {
	return func(cfg *validateConfig) error {
		cfg.includeWarnings = enabled
		return nil
	}
}

// WithLogger sets the logger used while loading and validating
// Default: no logging
func WithLogger(logger sidecar.Logger) Option {
	return func(cfg *validateConfig) error {
		cfg.logger = logger
		return nil
	}
}
