package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/agentready/agentready/pkg/language"
	"github.com/agentready/agentready/pkg/match"
	"github.com/agentready/agentready/pkg/models"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Scan.MaxFiles != language.DefaultMaxFiles {
		t.Errorf("MaxFiles = %d, want %d", cfg.Scan.MaxFiles, language.DefaultMaxFiles)
	}
	if cfg.Scan.SearchDepth != match.DefaultRecursionDepth {
		t.Errorf("SearchDepth = %d, want %d", cfg.Scan.SearchDepth, match.DefaultRecursionDepth)
	}
	if cfg.Output.Format != "text" || !cfg.Output.Color {
		t.Errorf("unexpected output defaults: %+v", cfg.Output)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, "agentready.toml", `
[scan]
max_files = 500
search_depth = 3

[exclude]
dirs = ["generated"]
gitignore = true

[output]
format = "json"
verbose = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Scan.MaxFiles != 500 || cfg.Scan.SearchDepth != 3 {
		t.Errorf("scan config = %+v", cfg.Scan)
	}
	if len(cfg.Exclude.Dirs) != 1 || cfg.Exclude.Dirs[0] != "generated" {
		t.Errorf("exclude dirs = %v", cfg.Exclude.Dirs)
	}
	if !cfg.Exclude.Gitignore {
		t.Error("gitignore should be enabled")
	}
	if cfg.Output.Format != "json" || !cfg.Output.Verbose {
		t.Errorf("output config = %+v", cfg.Output)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "agentready.yaml", `
scan:
  max_files: 250
scoring:
  min_score: 75
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Scan.MaxFiles != 250 {
		t.Errorf("MaxFiles = %d, want 250", cfg.Scan.MaxFiles)
	}
	if cfg.Scoring.MinScore != 75 {
		t.Errorf("MinScore = %v, want 75", cfg.Scoring.MinScore)
	}
	// Unset values keep their defaults.
	if cfg.Scan.SearchDepth != match.DefaultRecursionDepth {
		t.Errorf("SearchDepth = %d, want default", cfg.Scan.SearchDepth)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeConfig(t, "agentready.json", `{"output": {"format": "markdown"}}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Output.Format != "markdown" {
		t.Errorf("Format = %q, want markdown", cfg.Output.Format)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}

func TestValidateUnknownCategory(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scoring.Weights = map[string]float64{"velocity": 0.5}
	if err := cfg.Validate(); err == nil {
		t.Error("unknown category should fail validation")
	}
}

func TestValidateWeightsMustSumToOne(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scoring.Weights = map[string]float64{"testing": 0.5}
	if err := cfg.Validate(); err == nil {
		t.Error("weights summing past 1.0 should fail validation")
	}

	// A compensated override keeps the sum valid.
	cfg.Scoring.Weights = map[string]float64{"testing": 0.25, "style": 0.10}
	if err := cfg.Validate(); err != nil {
		t.Errorf("balanced override should validate: %v", err)
	}
}

func TestValidateMinScoreBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scoring.MinScore = 120
	if err := cfg.Validate(); err == nil {
		t.Error("min_score above 100 should fail validation")
	}
	cfg.Scoring.MinScore = -1
	if err := cfg.Validate(); err == nil {
		t.Error("negative min_score should fail validation")
	}
}

func TestCategoryWeightsMerge(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scoring.Weights = map[string]float64{"testing": 0.25, "style": 0.10}

	merged := cfg.CategoryWeights()
	if merged[models.CategoryTesting] != 0.25 {
		t.Errorf("testing weight = %v, want 0.25", merged[models.CategoryTesting])
	}
	if merged[models.CategoryStyle] != 0.10 {
		t.Errorf("style weight = %v, want 0.10", merged[models.CategoryStyle])
	}
	if merged[models.CategoryBuild] != models.CategoryWeights[models.CategoryBuild] {
		t.Error("untouched categories keep their defaults")
	}

	sum := 0.0
	for _, w := range merged {
		sum += w
	}
	if math.Abs(sum-1.0) > 0.01 {
		t.Errorf("merged weights sum to %v", sum)
	}
}
