package scanner

import (
	"math"
	"strings"
	"testing"

	"github.com/agentready/agentready/internal/testutil"
	"github.com/agentready/agentready/pkg/language"
	"github.com/agentready/agentready/pkg/match"
	"github.com/agentready/agentready/pkg/models"
)

func goStats() *language.Stats {
	return &language.Stats{
		Primary:    language.Go,
		Languages:  map[language.Language]int{language.Go: 10},
		TotalFiles: 10,
		Confidence: 1.0,
	}
}

func pyStats() *language.Stats {
	return &language.Stats{
		Primary:    language.Python,
		Languages:  map[language.Language]int{language.Python: 10},
		TotalFiles: 10,
		Confidence: 1.0,
	}
}

func TestScoreWeightedRatio(t *testing.T) {
	findings := []models.Finding{
		{Name: "a", Found: true, Weight: 2.0},
		{Name: "b", Found: false, Weight: 1.0},
		{Name: "c", Found: true, Weight: 1.0},
	}
	cs := Score(models.CategoryTesting, findings)

	if math.Abs(cs.Score-75.0) > 1e-9 {
		t.Errorf("Score = %v, want 75", cs.Score)
	}
	if cs.Weight != models.CategoryWeights[models.CategoryTesting] {
		t.Errorf("Weight = %v, want category weight", cs.Weight)
	}
	if math.Abs(cs.WeightedScore-75.0*0.20) > 1e-9 {
		t.Errorf("WeightedScore = %v, want 15", cs.WeightedScore)
	}
}

func TestScoreEmptyFindings(t *testing.T) {
	cs := Score(models.CategoryStyle, nil)
	if cs.Score != 0 || cs.WeightedScore != 0 {
		t.Errorf("empty findings should score zero, got %+v", cs)
	}
}

func TestCheckApplies(t *testing.T) {
	universal := Check{Name: "u"}
	if !universal.Applies(func(language.Language) bool { return false }) {
		t.Error("nil Langs should always apply")
	}

	jsOnly := Check{Name: "j", Langs: []language.Language{language.JavaScript, language.TypeScript}}
	hasTS := func(l language.Language) bool { return l == language.TypeScript }
	hasGo := func(l language.Language) bool { return l == language.Go }
	if !jsOnly.Applies(hasTS) {
		t.Error("TS repo should satisfy a JS/TS check")
	}
	if jsOnly.Applies(hasGo) {
		t.Error("Go repo should not satisfy a JS/TS check")
	}
}

func TestRunChecksSkipsForeignLanguages(t *testing.T) {
	root := testutil.Repo(t, map[string]string{
		"go.mod":  "module example.com/app\n",
		"main.go": "package main\n",
	})

	s := &TestingScanner{base: base{finder: match.New()}}
	cs := s.Scan(root, goStats())

	for _, f := range cs.Findings {
		if strings.Contains(f.Name, "Jest") || strings.Contains(f.Name, "pytest") {
			t.Errorf("language-tagged check %q evaluated in a pure-Go repo", f.Name)
		}
	}
}

func TestRunChecksNilStatsEvaluatesEverything(t *testing.T) {
	root := testutil.Repo(t, map[string]string{})

	s := &TestingScanner{base: base{finder: match.New()}}
	all := s.Scan(root, nil)
	goOnly := s.Scan(root, goStats())
	if len(all.Findings) <= len(goOnly.Findings) {
		t.Errorf("nil stats should evaluate the full table: %d vs %d", len(all.Findings), len(goOnly.Findings))
	}
}

func TestDependenciesMissingLockfileCritical(t *testing.T) {
	root := testutil.Repo(t, map[string]string{
		"package.json": `{"name": "app"}`,
		"index.js":     "",
	})

	s := &DependenciesScanner{base: base{finder: match.New()}}
	cs := s.Scan(root, &language.Stats{
		Languages:  map[language.Language]int{language.JavaScript: 1},
		TotalFiles: 1,
	})

	var critical *models.Finding
	for i := range cs.Findings {
		if cs.Findings[i].Name == "Node lockfile (CRITICAL)" {
			critical = &cs.Findings[i]
		}
	}
	if critical == nil {
		t.Fatal("expected a critical Node lockfile finding")
	}
	if critical.Found {
		t.Error("critical finding should be unfound")
	}
	if critical.Weight != CriticalLockfileWeight {
		t.Errorf("critical weight = %v, want %v", critical.Weight, CriticalLockfileWeight)
	}
	if !strings.Contains(critical.Details, "package.json") {
		t.Errorf("details should name the manifest: %q", critical.Details)
	}
}

func TestDependenciesLockfilePresentNoCritical(t *testing.T) {
	root := testutil.Repo(t, map[string]string{
		"package.json": `{"name": "app"}`,
		"yarn.lock":    "",
		"index.js":     "",
	})

	findings := missingLockfiles(root)
	if len(findings) != 0 {
		t.Errorf("lockfile present, want no critical findings: %v", findings)
	}
}

func TestDocumentationReadmeLength(t *testing.T) {
	short := testutil.Repo(t, map[string]string{
		"README.md": "# App\n\nShort.\n",
	})
	findings := readmeLength(short)
	if len(findings) != 1 {
		t.Fatalf("want one README length finding, got %d", len(findings))
	}
	if findings[0].Found {
		t.Error("3-line README should not count as substantial")
	}
	if !strings.Contains(findings[0].Details, "3 lines") {
		t.Errorf("details = %q, want line count", findings[0].Details)
	}

	long := testutil.Repo(t, map[string]string{
		"README.md": strings.Repeat("content\n", 30),
	})
	findings = readmeLength(long)
	if len(findings) != 1 || !findings[0].Found {
		t.Errorf("30-line README should be substantial: %v", findings)
	}
	if findings[0].Path != "README.md" {
		t.Errorf("Path = %q, want README.md", findings[0].Path)
	}
}

func TestDocumentationNoReadme(t *testing.T) {
	if findings := readmeLength(t.TempDir()); findings != nil {
		t.Errorf("no README, want no length finding: %v", findings)
	}
}

func TestTypingTypeScriptStrict(t *testing.T) {
	strict := testutil.Repo(t, map[string]string{
		"tsconfig.json": `{"compilerOptions": {"strict": true}}`,
		"index.ts":      "",
	})
	s := &TypingScanner{base: base{finder: match.New()}}
	stats := &language.Stats{
		Languages:  map[language.Language]int{language.TypeScript: 1},
		TotalFiles: 1,
	}

	cs := s.Scan(strict, stats)
	f := findingByName(t, cs.Findings, "TypeScript strict mode")
	if !f.Found {
		t.Error("strict: true should be detected")
	}
	if f.Details != "strict: true enabled" {
		t.Errorf("Details = %q", f.Details)
	}

	loose := testutil.Repo(t, map[string]string{
		"tsconfig.json": `{"compilerOptions": {}}`,
		"index.ts":      "",
	})
	cs = s.Scan(loose, stats)
	f = findingByName(t, cs.Findings, "TypeScript strict mode")
	if f.Found {
		t.Error("missing strict flag should be unfound")
	}
}

func TestTypingPythonAnnotations(t *testing.T) {
	hinted := testutil.Repo(t, map[string]string{
		"app.py": "def add(a: int, b: int) -> int:\n    return a + b\n",
	})
	s := &TypingScanner{base: base{finder: match.New()}}

	cs := s.Scan(hinted, pyStats())
	f := findingByName(t, cs.Findings, "Python type annotations")
	if !f.Found {
		t.Error("return annotation should be detected")
	}

	bare := testutil.Repo(t, map[string]string{
		"app.py": "def add(a, b):\n    return a + b\n",
	})
	cs = s.Scan(bare, pyStats())
	f = findingByName(t, cs.Findings, "Python type annotations")
	if f.Found {
		t.Error("unannotated code should be unfound")
	}
}

func TestTypingMypyInPyproject(t *testing.T) {
	root := testutil.Repo(t, map[string]string{
		"pyproject.toml": "[project]\nname = \"x\"\n\n[tool.mypy]\nstrict = true\n",
		"app.py":         "",
	})
	s := &TypingScanner{base: base{finder: match.New()}}

	cs := s.Scan(root, pyStats())
	f := findingByName(t, cs.Findings, "mypy in pyproject.toml")
	if !f.Found {
		t.Error("[tool.mypy] section should be detected")
	}
	if f.Path != "pyproject.toml" {
		t.Errorf("Path = %q, want pyproject.toml", f.Path)
	}
}

func TestDefaultRegistryOrder(t *testing.T) {
	r := DefaultRegistry(match.New())
	got := r.Categories()
	want := models.Categories()
	if len(got) != len(want) {
		t.Fatalf("Categories() = %v, want all eight", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRegistryRegisterReplaces(t *testing.T) {
	r := DefaultRegistry(match.New())
	replacement := &StyleScanner{base: base{finder: match.New()}}
	r.Register(replacement)

	if len(r.All()) != 8 {
		t.Errorf("replacement should not grow the registry: %d", len(r.All()))
	}
	s, ok := r.Get(models.CategoryStyle)
	if !ok || s != Scanner(replacement) {
		t.Error("replacement scanner not returned by Get")
	}
	if r.All()[0] != Scanner(replacement) {
		t.Error("replacement should keep the original position")
	}
}

func TestScannersFindExpectedFiles(t *testing.T) {
	root := testutil.Repo(t, map[string]string{
		"go.mod":                   "module example.com/app\n",
		"main.go":                  "package main\n",
		"main_test.go":             "package main\n",
		".golangci.yml":            "",
		"Makefile":                 "all:\n",
		".github/workflows/ci.yml": "",
	})

	r := DefaultRegistry(match.New())
	stats := goStats()

	style, _ := r.Get(models.CategoryStyle)
	cs := style.Scan(root, stats)
	if !findingByName(t, cs.Findings, "golangci-lint").Found {
		t.Error(".golangci.yml should satisfy the golangci-lint check")
	}

	build, _ := r.Get(models.CategoryBuild)
	cs = build.Scan(root, stats)
	if !findingByName(t, cs.Findings, "Makefile").Found {
		t.Error("Makefile should be found")
	}
	if !findingByName(t, cs.Findings, "GitHub Actions").Found {
		t.Error("workflow file should satisfy the CI check")
	}

	testScanner, _ := r.Get(models.CategoryTesting)
	cs = testScanner.Scan(root, stats)
	if !findingByName(t, cs.Findings, "Go tests").Found {
		t.Error("main_test.go should satisfy the Go test check")
	}
}

func findingByName(t *testing.T, findings []models.Finding, name string) models.Finding {
	t.Helper()
	for _, f := range findings {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("finding %q not present", name)
	return models.Finding{}
}
