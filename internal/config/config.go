package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file looked up in the working directory
// when no path is given.
const DefaultFile = ".unusedexpr.yaml"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrInvalidFormat is returned when the output format is not recognized.
var ErrInvalidFormat = errors.New("invalid output format")

// Config is the contents of a configuration file.
type Config struct {
	// Options are the rule options.
	Options Options `yaml:"options"`

	// ReportUnusedIgnores reports unusedexpr:ignore comments that suppressed
	// nothing.
	ReportUnusedIgnores bool `yaml:"reportUnusedIgnores"`

	// Format is the output format, "text" or "json".
	Format string `yaml:"format"`
}

// FieldError is a validation error for a specific configuration field.
type FieldError struct {
	// Field is the path to the field (e.g., "format").
	Field string

	// Err is the underlying error.
	Err error
}

// Error returns the error message for this field error.
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills in zero-valued fields.
func ApplyDefaults(cfg *Config) {
	if cfg.Format == "" {
		cfg.Format = FormatText
	}
}

// Validate checks the configuration.
func Validate(cfg *Config) error {
	switch cfg.Format {
	case FormatText, FormatJSON:
	default:
		return &FieldError{Field: "format", Err: fmt.Errorf("%q: %w", cfg.Format, ErrInvalidFormat)}
	}
	return nil
}

// Load loads configuration from a YAML file at the specified path.
// It applies default values and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("configuration file %q: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML configuration, applies defaults and validates it.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Resolve loads the file at path. An empty path means [DefaultFile], which
// may be absent; an explicitly named file must exist.
func Resolve(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}

	cfg, err := Load(DefaultFile)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}
