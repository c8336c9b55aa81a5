package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/agentready/agentready/pkg/language"
	"github.com/agentready/agentready/pkg/models"
)

// MaxPythonFilesToCheck caps the type-annotation sample.
const MaxPythonFilesToCheck = 10

// typeHintPattern matches a Python function signature with a return
// annotation.
var typeHintPattern = regexp.MustCompile(`def\s+\w+\([^)]*\)\s*->\s*\w+`)

// TypingScanner checks for type checkers, type definitions, and schema
// files, plus content analysis for Python annotations and TypeScript strict
// mode.
type TypingScanner struct {
	base
}

func (s *TypingScanner) Category() models.Category { return models.CategoryTyping }
func (s *TypingScanner) Name() string              { return "Static Typing" }
func (s *TypingScanner) Description() string {
	return "Checks for type definitions, type checkers, and type annotations"
}

func (s *TypingScanner) Scan(root string, stats *language.Stats) models.CategoryScore {
	findings := s.runChecks(root, stats, s.Checks())

	if stats == nil || stats.HasLanguage(language.Python) {
		hinted := pythonTypeHints(root)
		f := models.Finding{
			Name:   "Python type annotations",
			Found:  hinted,
			Weight: 1.5,
		}
		if hinted {
			f.Details = "Found `def func() -> type:` patterns"
		}
		findings = append(findings, f)

		if data, err := os.ReadFile(filepath.Join(root, "pyproject.toml")); err == nil {
			hasMypy := strings.Contains(string(data), "[tool.mypy]")
			f := models.Finding{
				Name:   "mypy in pyproject.toml",
				Found:  hasMypy,
				Weight: 1.2,
			}
			if hasMypy {
				f.Path = "pyproject.toml"
			}
			findings = append(findings, f)
		}
	}

	if stats == nil || stats.HasLanguage(language.TypeScript) {
		if data, err := os.ReadFile(filepath.Join(root, "tsconfig.json")); err == nil {
			content := string(data)
			strict := strings.Contains(content, `"strict": true`) || strings.Contains(content, `"strict":true`)
			f := models.Finding{
				Name:    "TypeScript strict mode",
				Found:   strict,
				Details: "strict mode not enabled",
				Weight:  1.5,
			}
			if strict {
				f.Path = "tsconfig.json"
				f.Details = "strict: true enabled"
			}
			findings = append(findings, f)
		}
	}

	return Score(s.Category(), findings)
}

// pythonTypeHints samples Python files under root for return annotations,
// stopping after the sample cap.
func pythonTypeHints(root string) bool {
	checked := 0
	found := false
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if language.SkipDirs[d.Name()] {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".py") {
			return nil
		}
		data, readErr := os.ReadFile(path)
		if readErr == nil {
			if typeHintPattern.Match(data) {
				found = true
				return fs.SkipAll
			}
			checked++
		}
		if checked >= MaxPythonFilesToCheck {
			return fs.SkipAll
		}
		return nil
	})
	return found
}

func (s *TypingScanner) Checks() []Check {
	return []Check{
		universal("GraphQL schema", 1.0, "**/*.graphql", "schema.graphql"),
		universal("Protobuf definitions", 1.0, "**/*.proto", "proto/"),
		universal("JSON Schema", 0.8, "**/*.schema.json", "schemas/"),
		universal("Avro schema", 0.8, "**/*.avsc"),
		universal("OpenAPI spec", 1.0, "openapi.yaml", "openapi.json", "swagger.yaml"),
		universal("Thrift definitions", 0.8, "**/*.thrift"),

		py("mypy config", 1.5, "mypy.ini", ".mypy.ini"),
		py("Pyright config", 1.5, "pyrightconfig.json"),
		py("pyproject.toml (typing)", 1.0, "pyproject.toml"),
		py("py.typed marker", 1.5, "**/py.typed", "src/**/py.typed"),
		py("Type stubs (.pyi)", 1.0, "**/*.pyi", "stubs/", "typings/"),
		py("pytype config", 1.0, ".pytype"),

		ts("tsconfig.json", 2.0, "tsconfig.json"),
		ts("Extended tsconfigs", 1.0, "tsconfig.*.json"),
		ts("Type declarations (.d.ts)", 1.0, "**/*.d.ts"),
		ts("Type definitions dir", 1.0, "@types/", "types/", "typings/"),

		js("jsconfig.json", 1.2, "jsconfig.json"),

		golang("Go interfaces", 1.0, "**/*_interface.go", "**/interfaces.go"),
		golang("Go source (typed)", 0.8, "**/*.go"),

		rust("Rust source (typed)", 0.8, "**/*.rs"),
		rust("Rust modules", 1.0, "**/lib.rs", "**/mod.rs"),

		java("Java source (typed)", 0.8, "**/*.java"),
		java("Kotlin source (typed)", 0.8, "**/*.kt"),
		java("Lombok config", 0.5, "lombok.config"),

		swift("Swift source (typed)", 0.8, "**/*.swift"),

		csharp("C# source (typed)", 0.8, "**/*.cs"),
		csharp("MSBuild (nullable)", 1.0, "Directory.Build.props"),

		cpp("C++ source (typed)", 0.8, "**/*.cpp", "**/*.cc", "**/*.hpp"),
		cpp("C/C++ headers", 1.0, "**/*.h"),

		php("PHPStan (static)", 1.5, "phpstan.neon", "phpstan.neon.dist"),
		php("Psalm (static)", 1.5, "psalm.xml"),
		php("Phan config", 1.2, "phan.php", ".phan/config.php"),

		elixir("Dialyzer", 1.5, "dialyzer.ignore-warnings", ".dialyzer_ignore.exs"),
		elixir("Elixir source", 0.5, "**/*.ex"),

		dart("Dart analysis", 1.5, "analysis_options.yaml"),
		dart("Dart source (typed)", 0.8, "**/*.dart"),

		ruby("Sorbet config", 2.0, "sorbet/", "sorbet/config"),
		ruby("Sorbet RBI files", 1.5, "**/*.rbi"),
		ruby("Tapioca config", 1.0, "tapioca.yml"),
		ruby("Steep config", 1.5, "steep/", "Steepfile"),

		langCheck("Haskell source (typed)", 0.8, []string{"**/*.hs"}, language.Haskell),
		langCheck("Scala source (typed)", 0.8, []string{"**/*.scala"}, language.Scala),
		langCheck("Zig source (typed)", 0.8, []string{"**/*.zig"}, language.Zig),
	}
}
