// Package config holds the settings of the shape command.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
	"sigs.k8s.io/yaml"

	"github.com/hasbyte1/go-shape-utils/pivot"
)

// ErrInvalidConfig is returned by [Config.Validate] and wraps every
// validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Config is read from YAML or JSON; both use the json field names.
type Config struct {
	// Group is the field transpose groups rows by.
	Group string `json:"group,omitempty"`
	// Merge lists "spread=value" pairs for transpose.
	Merge []string `json:"merge,omitempty"`
	// Keys is the grouping path for the group command.
	Keys []string `json:"keys,omitempty"`
	// KeepEmpty keeps records whose key is empty.
	KeepEmpty bool `json:"keepEmpty,omitempty"`
	// Sort names fields to sort records by before grouping. A leading "-"
	// sorts that field descending.
	Sort []string `json:"sort,omitempty"`

	Format   string `json:"format,omitempty"`
	LogLevel string `json:"logLevel,omitempty"`
	// Input forces the input format; empty means detect from the path.
	Input string `json:"input,omitempty"`
}

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig() Config {
	return Config{
		Format:   FormatTable,
		LogLevel: "warn",
	}
}

// Load reads path over the defaults. Unknown fields are an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	return cfg, nil
}

// MergeMap parses Merge.
func (c Config) MergeMap() (pivot.MergeMap, error) {
	m, err := pivot.ParseMergeMap(c.Merge...)
	if err != nil {
		return nil, fmt.Errorf("%w: merge: %w", ErrInvalidConfig, err)
	}
	return m, nil
}

// Level parses LogLevel.
func (c Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return lvl, fmt.Errorf("%w: logLevel: %v", ErrInvalidConfig, err)
	}
	return lvl, nil
}

// Validate checks the settings shared by every command.
func (c Config) Validate() error {
	switch c.Format {
	case FormatTable, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: format %q", ErrInvalidConfig, c.Format)
	}
	switch c.Input {
	case "", "csv", "json", "yaml":
	default:
		return fmt.Errorf("%w: input %q", ErrInvalidConfig, c.Input)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	for _, s := range c.Sort {
		if strings.TrimPrefix(s, "-") == "" {
			return fmt.Errorf("%w: empty sort field", ErrInvalidConfig)
		}
	}
	return nil
}

// ValidateTranspose checks the settings of the transpose command.
func (c Config) ValidateTranspose() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(c.Group) == "" {
		return fmt.Errorf("%w: group field is required", ErrInvalidConfig)
	}
	_, err := c.MergeMap()
	return err
}

// ValidateGroup checks the settings of the group command.
func (c Config) ValidateGroup() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if len(c.Keys) == 0 {
		return fmt.Errorf("%w: at least one key is required", ErrInvalidConfig)
	}
	return nil
}
