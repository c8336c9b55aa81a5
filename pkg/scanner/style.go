package scanner

import (
	"github.com/agentready/agentready/pkg/language"
	"github.com/agentready/agentready/pkg/models"
)

// StyleScanner checks for linter and formatter configuration across all
// supported languages.
type StyleScanner struct {
	base
}

func (s *StyleScanner) Category() models.Category { return models.CategoryStyle }
func (s *StyleScanner) Name() string              { return "Style & Validation" }
func (s *StyleScanner) Description() string {
	return "Checks for linter configs, formatters, and code style enforcement"
}

func (s *StyleScanner) Scan(root string, stats *language.Stats) models.CategoryScore {
	return Score(s.Category(), s.runChecks(root, stats, s.Checks()))
}

func (s *StyleScanner) Checks() []Check {
	return []Check{
		universal("EditorConfig", 1.0, ".editorconfig"),
		universal("Pre-commit hooks", 1.5, ".pre-commit-config.yaml", ".pre-commit-config.yml"),
		universal("CI linting workflow", 1.0, ".github/workflows/*.yml"),

		py("Ruff (Python)", 1.5, "ruff.toml", ".ruff.toml", "pyproject.toml"),
		py("Black (Python)", 1.0, "pyproject.toml", ".black.toml"),
		py("Flake8 (Python)", 1.0, ".flake8", "setup.cfg", "tox.ini"),
		py("Pylint (Python)", 1.0, ".pylintrc", "pylintrc"),
		py("isort (Python)", 0.8, ".isort.cfg", "pyproject.toml"),
		py("mypy (Python)", 1.2, "mypy.ini", ".mypy.ini", "pyproject.toml"),
		py("Bandit security (Python)", 1.0, ".bandit", ".bandit.yaml"),

		js("ESLint", 1.5, ".eslintrc*", "eslint.config.*", ".eslintrc.json", ".eslintrc.js", "eslint.config.mjs"),
		js("Prettier", 1.2, ".prettierrc*", "prettier.config.*", ".prettierrc.json"),
		js("Biome", 1.5, "biome.json", "biome.jsonc"),
		js("Stylelint (CSS)", 1.0, ".stylelintrc*", "stylelint.config.*"),
		js("Husky git hooks", 1.0, ".huskyrc*", ".husky/*"),
		js("lint-staged", 0.8, ".lintstagedrc*", "lint-staged.config.*"),
		ts("TSLint (deprecated)", 0.5, "tslint.json"),

		golang("golangci-lint", 1.5, ".golangci.yml", ".golangci.yaml", ".golangci.toml"),
		golang("Revive linter", 1.0, ".revive.toml"),
		golang("Staticcheck", 1.0, ".staticcheck.conf"),
		golang("gofmt config", 0.8, "gofmt"),

		rust("rustfmt", 1.5, "rustfmt.toml", ".rustfmt.toml"),
		rust("Clippy lints", 1.5, "clippy.toml", ".clippy.toml"),
		rust("Cargo config", 0.8, ".cargo/config.toml"),

		ruby("RuboCop", 1.5, ".rubocop.yml", ".rubocop.yaml"),
		ruby("Standard Ruby", 1.2, ".standard.yml"),
		ruby("Reek (code smells)", 1.0, ".reek.yml"),
		ruby("HAML Lint", 0.8, ".haml-lint.yml"),
		ruby("ERB Lint", 0.8, ".erb-lint.yml"),

		java("Checkstyle", 1.5, "checkstyle.xml", ".checkstyle"),
		java("PMD", 1.2, "pmd.xml", ".pmd"),
		java("SpotBugs", 1.2, "spotbugs.xml"),
		java("Google Java Format", 1.0, ".editorconfig", "google-java-format"),
		java("Detekt (Kotlin)", 1.5, "detekt.yml", ".detekt.yml"),
		java("ktlint (Kotlin)", 1.2, "ktlint", ".ktlint"),

		swift("SwiftLint", 1.5, ".swiftlint.yml", ".swiftlint.yaml"),
		swift("swift-format", 1.2, ".swift-format"),

		csharp("C# EditorConfig", 1.0, ".editorconfig"),
		csharp("StyleCop", 1.2, "stylecop.json", ".stylecop"),
		csharp("Global analyzer config", 1.0, ".globalconfig"),

		cpp("clang-format", 1.5, ".clang-format", "_clang-format"),
		cpp("clang-tidy", 1.5, ".clang-tidy"),
		cpp("cppcheck", 1.2, ".cppcheck", "cppcheck.cfg"),
		cpp("cpplint", 1.0, ".cpplint", "CPPLINT.cfg"),

		php("PHP_CodeSniffer", 1.5, "phpcs.xml", ".phpcs.xml", "phpcs.xml.dist"),
		php("PHP-CS-Fixer", 1.5, ".php-cs-fixer.php", ".php-cs-fixer.dist.php"),
		php("PHPStan", 1.2, "phpstan.neon", "phpstan.neon.dist"),
		php("Psalm", 1.2, "psalm.xml"),
		php("Laravel Pint", 1.0, "pint.json"),

		elixir("Credo", 1.5, ".credo.exs"),
		elixir("Elixir Formatter", 1.2, ".formatter.exs"),
		elixir("Dialyzer", 1.0, "dialyzer.ignore-warnings", ".dialyzer_ignore.exs"),

		dart("Dart Analyzer", 1.5, "analysis_options.yaml"),
		dart("Dart tooling", 0.8, ".dart_tool"),

		universal("MegaLinter", 1.5, "megalinter.yml", ".mega-linter.yml"),
		universal("Trunk.io", 1.2, ".trunk/trunk.yaml"),
		universal("Lefthook", 1.0, "lefthook.yml", ".lefthook.yml"),
	}
}
