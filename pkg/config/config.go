// Package config loads agentready configuration from TOML, YAML, or JSON
// files, falling back to defaults when none are present.
package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/agentready/agentready/pkg/language"
	"github.com/agentready/agentready/pkg/match"
	"github.com/agentready/agentready/pkg/models"
)

// Config holds all configuration options for agentready.
type Config struct {
	// Scan settings
	Scan ScanConfig `koanf:"scan" toml:"scan"`

	// Scoring overrides
	Scoring ScoringConfig `koanf:"scoring" toml:"scoring"`

	// File exclusion patterns
	Exclude ExcludeConfig `koanf:"exclude" toml:"exclude"`

	// Output settings
	Output OutputConfig `koanf:"output" toml:"output"`
}

// ScanConfig bounds the filesystem walks.
type ScanConfig struct {
	MaxFiles    int `koanf:"max_files" toml:"max_files"`
	SearchDepth int `koanf:"search_depth" toml:"search_depth"`
}

// ScoringConfig overrides category weights and sets the pass threshold.
// Weights left empty keep their defaults; when set they must sum to 1.0.
type ScoringConfig struct {
	Weights  map[string]float64 `koanf:"weights" toml:"weights"`
	MinScore float64            `koanf:"min_score" toml:"min_score"`
}

// ExcludeConfig adds directories to the fixed exclusion set.
type ExcludeConfig struct {
	Dirs      []string `koanf:"dirs" toml:"dirs"`
	Gitignore bool     `koanf:"gitignore" toml:"gitignore"`
}

// OutputConfig controls output formatting.
type OutputConfig struct {
	Format  string `koanf:"format" toml:"format"` // text, json, markdown
	Color   bool   `koanf:"color" toml:"color"`
	Verbose bool   `koanf:"verbose" toml:"verbose"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			MaxFiles:    language.DefaultMaxFiles,
			SearchDepth: match.DefaultRecursionDepth,
		},
		Scoring: ScoringConfig{
			MinScore: 0,
		},
		Exclude: ExcludeConfig{
			Gitignore: false,
		},
		Output: OutputConfig{
			Format:  "text",
			Color:   true,
			Verbose: false,
		},
	}
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		parser = toml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault tries standard config locations or returns defaults.
func LoadOrDefault() *Config {
	configNames := []string{
		"agentready.toml",
		"agentready.yaml",
		"agentready.yml",
		"agentready.json",
		".agentready.toml",
		".agentready.yaml",
		".agentready.yml",
		".agentready.json",
	}

	for _, name := range configNames {
		if _, err := os.Stat(name); err == nil {
			cfg, err := Load(name)
			if err == nil {
				return cfg
			}
		}
	}

	return DefaultConfig()
}

// Validate checks weight overrides: every key must be a known category and
// the full weight set must still sum to 1.0 within a small tolerance.
func (c *Config) Validate() error {
	if c.Scoring.MinScore < 0 || c.Scoring.MinScore > 100 {
		return fmt.Errorf("min_score must be between 0 and 100, got %g", c.Scoring.MinScore)
	}
	if len(c.Scoring.Weights) == 0 {
		return nil
	}

	merged := c.CategoryWeights()
	for name := range c.Scoring.Weights {
		if _, ok := models.CategoryWeights[models.Category(name)]; !ok {
			return fmt.Errorf("unknown scoring category %q", name)
		}
	}

	sum := 0.0
	for _, w := range merged {
		sum += w
	}
	if math.Abs(sum-1.0) > 0.01 {
		return fmt.Errorf("category weights must sum to 1.0, got %.3f", sum)
	}
	return nil
}

// CategoryWeights returns the default weights with any overrides applied.
func (c *Config) CategoryWeights() map[models.Category]float64 {
	merged := make(map[models.Category]float64, len(models.CategoryWeights))
	for cat, w := range models.CategoryWeights {
		merged[cat] = w
	}
	for name, w := range c.Scoring.Weights {
		if _, ok := merged[models.Category(name)]; ok {
			merged[models.Category(name)] = w
		}
	}
	return merged
}
