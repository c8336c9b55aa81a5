package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"
)

func TestGenerateDefaultConfig(t *testing.T) {
	content, err := generateDefaultConfig()
	if err != nil {
		t.Fatalf("generateDefaultConfig() error: %v", err)
	}

	for _, want := range []string{
		"# Agentready Configuration",
		"[scan]",
		"[scoring]",
		"[exclude]",
		"[output]",
		"max_files",
		"search_depth",
		"format",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("generated config missing %q:\n%s", want, content)
		}
	}
}

func runApp(t *testing.T, args ...string) error {
	t.Helper()
	app := &cli.App{
		Commands: []*cli.Command{initCmd()},
	}
	return app.Run(append([]string{"agentready"}, args...))
}

func TestInitCommandWritesConfig(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "agentready.toml")

	if err := runApp(t, "init", "--output", outputPath); err != nil {
		t.Fatalf("init command error: %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "[scan]") {
		t.Errorf("written config missing [scan] section:\n%s", data)
	}
}

func TestInitCommandRefusesOverwrite(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "agentready.toml")
	if err := os.WriteFile(outputPath, []byte("# existing\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := runApp(t, "init", "--output", outputPath); err == nil {
		t.Error("init should refuse to overwrite without --force")
	}

	if err := runApp(t, "init", "--output", outputPath, "--force"); err != nil {
		t.Errorf("init --force error: %v", err)
	}
	data, _ := os.ReadFile(outputPath)
	if !strings.Contains(string(data), "[scoring]") {
		t.Error("--force should replace the existing file")
	}
}

func TestInitCommandCreatesDirectories(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "configs", "nested", "agentready.toml")

	if err := runApp(t, "init", "--output", outputPath); err != nil {
		t.Fatalf("init command error: %v", err)
	}
	if _, err := os.Stat(outputPath); err != nil {
		t.Errorf("config file should exist at nested path: %v", err)
	}
}
