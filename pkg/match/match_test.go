package match

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("MkdirAll: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
}

func TestFindFirstDirect(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		".eslintrc.json": "{}",
	})

	m := New()
	got := m.FindFirst(root, root, []string{".eslintrc.json", ".eslintrc.js"})
	if got != ".eslintrc.json" {
		t.Errorf("FindFirst = %q, want .eslintrc.json", got)
	}
}

func TestFindFirstPatternOrder(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"yarn.lock":         "",
		"package-lock.json": "{}",
	})

	m := New()
	got := m.FindFirst(root, root, []string{"package-lock.json", "yarn.lock"})
	if got != "package-lock.json" {
		t.Errorf("FindFirst = %q, want package-lock.json (pattern order wins)", got)
	}
}

func TestFindFirstWildcard(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		".eslintrc.yaml": "",
	})

	m := New()
	if got := m.FindFirst(root, root, []string{".eslintrc*"}); got != ".eslintrc.yaml" {
		t.Errorf("FindFirst = %q, want .eslintrc.yaml", got)
	}
}

func TestFindFirstRecursiveWildcard(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"src/generated/api.proto": "",
	})

	m := New()
	if got := m.FindFirst(root, root, []string{"**/*.proto"}); got != "src/generated/api.proto" {
		t.Errorf("FindFirst = %q, want src/generated/api.proto", got)
	}
}

func TestFindFirstSubdirFallback(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"backend/pyproject.toml": "",
	})

	m := New()
	if got := m.FindFirst(root, root, []string{"pyproject.toml"}); got != "backend/pyproject.toml" {
		t.Errorf("FindFirst = %q, want backend/pyproject.toml", got)
	}
}

func TestFindFirstDepthBound(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"a/b/c/mypy.ini": "",
	})

	m := New()
	if got := m.FindFirst(root, root, []string{"mypy.ini"}); got != "" {
		t.Errorf("FindFirst = %q, want no match beyond depth %d", got, DefaultRecursionDepth)
	}

	deep := New(WithMaxDepth(3))
	if got := deep.FindFirst(root, root, []string{"mypy.ini"}); got != "a/b/c/mypy.ini" {
		t.Errorf("FindFirst with depth 3 = %q, want a/b/c/mypy.ini", got)
	}
}

func TestFindFirstSkipsExcludedDirs(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"node_modules/pkg/.eslintrc.json": "{}",
	})

	m := New()
	if got := m.FindFirst(root, root, []string{".eslintrc.json"}); got != "" {
		t.Errorf("FindFirst = %q, want no match inside node_modules", got)
	}
}

func TestFindFirstDirectoryPattern(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"docs/index.md": "",
		"doc":           "a plain file, not a directory",
	})

	m := New()
	if got := m.FindFirst(root, root, []string{"doc/", "docs/"}); got != "docs" {
		t.Errorf("FindFirst = %q, want docs (trailing slash requires a directory)", got)
	}
}

func TestFindFirstReportsRelativeToReportRoot(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"packages/api/jest.config.js": "",
	})

	m := New()
	pkgDir := filepath.Join(root, "packages", "api")
	got := m.FindFirst(pkgDir, root, []string{"jest.config.js"})
	if got != "packages/api/jest.config.js" {
		t.Errorf("FindFirst = %q, want packages/api/jest.config.js", got)
	}
}

func TestFindFirstNoMatch(t *testing.T) {
	m := New()
	if got := m.FindFirst(t.TempDir(), t.TempDir(), []string{"missing.toml"}); got != "" {
		t.Errorf("FindFirst = %q, want empty", got)
	}
}

func TestWithExtraExcludedDirs(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"generated/schema.graphql": "",
	})

	m := New(WithExtraExcludedDirs([]string{"generated"}))
	if got := m.FindFirst(root, root, []string{"**/*.graphql"}); got != "" {
		t.Errorf("FindFirst = %q, want extra excluded dir to be skipped", got)
	}
	if !m.ExcludedDir("generated") || !m.ExcludedDir("node_modules") {
		t.Error("merged exclusion set should contain both fixed and extra dirs")
	}
}

func TestLoadGitignore(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		".gitignore":        "secrets/\n",
		"secrets/creds.env": "",
		"config/app.env":    "",
	})

	m := New()
	m.LoadGitignore(root)

	if !m.IsExcluded("secrets/creds.env", false) {
		t.Error("gitignored path should be excluded")
	}
	if m.IsExcluded("config/app.env", false) {
		t.Error("non-ignored path should not be excluded")
	}
	if got := m.FindFirst(root, root, []string{"**/*.env"}); got != "config/app.env" {
		t.Errorf("FindFirst = %q, want config/app.env", got)
	}
}
