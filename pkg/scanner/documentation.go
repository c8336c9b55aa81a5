package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentready/agentready/pkg/language"
	"github.com/agentready/agentready/pkg/models"
)

// MinReadmeLines is the threshold above which a README counts as
// substantial.
const MinReadmeLines = 20

var readmeNames = []string{"README.md", "README.rst", "README.txt", "README"}

// DocumentationScanner checks for READMEs, docs directories, API docs, and
// contribution guides, plus a content check on README length.
type DocumentationScanner struct {
	base
}

func (s *DocumentationScanner) Category() models.Category { return models.CategoryDocumentation }
func (s *DocumentationScanner) Name() string              { return "Documentation" }
func (s *DocumentationScanner) Description() string {
	return "Checks for README, docs directory, API documentation, and contribution guides"
}

func (s *DocumentationScanner) Scan(root string, stats *language.Stats) models.CategoryScore {
	findings := s.runChecks(root, stats, s.Checks())
	findings = append(findings, readmeLength(root)...)
	return Score(s.Category(), findings)
}

// readmeLength scores the first README found at root on whether it exceeds
// the substantial-length threshold.
func readmeLength(root string) []models.Finding {
	for _, name := range readmeNames {
		data, err := os.ReadFile(filepath.Join(root, name))
		if err != nil {
			if _, statErr := os.Stat(filepath.Join(root, name)); statErr == nil {
				break
			}
			continue
		}
		lines := len(strings.Split(strings.TrimSuffix(string(data), "\n"), "\n"))
		substantial := lines > MinReadmeLines
		f := models.Finding{
			Name:    fmt.Sprintf("README substantial (>%d lines)", MinReadmeLines),
			Found:   substantial,
			Details: fmt.Sprintf("README has %d lines", lines),
			Weight:  1.0,
		}
		if substantial {
			f.Path = name
		}
		return []models.Finding{f}
	}
	return nil
}

func (s *DocumentationScanner) Checks() []Check {
	return []Check{
		universal("README", 2.0, "README.md", "README.rst", "README.txt", "README"),
		universal("CONTRIBUTING", 1.5, "CONTRIBUTING.md", "CONTRIBUTING.rst", ".github/CONTRIBUTING.md"),
		universal("CHANGELOG", 1.2, "CHANGELOG.md", "CHANGELOG.rst", "HISTORY.md", "CHANGES.md", "RELEASES.md"),
		universal("CODE_OF_CONDUCT", 0.8, "CODE_OF_CONDUCT.md", ".github/CODE_OF_CONDUCT.md"),
		universal("LICENSE", 1.0, "LICENSE", "LICENSE.md", "LICENSE.txt", "COPYING"),
		universal("SECURITY", 1.0, "SECURITY.md", ".github/SECURITY.md"),

		universal("Docs directory", 1.5, "docs/", "doc/", "documentation/", "wiki/"),
		universal("Examples directory", 1.0, "examples/", "example/", "samples/"),

		universal("OpenAPI spec", 1.2, "openapi.yaml", "openapi.json", "swagger.yaml", "swagger.json"),
		universal("API docs dir", 1.0, "docs/api/", "api-docs/", "api/"),
		universal("API documentation", 1.0, "api.md", "API.md", "docs/api.md"),

		universal("Issue templates", 1.0, ".github/ISSUE_TEMPLATE/", ".github/ISSUE_TEMPLATE.md"),
		universal("PR template", 1.0, ".github/PULL_REQUEST_TEMPLATE.md", ".github/PULL_REQUEST_TEMPLATE/"),
		universal("CODEOWNERS", 0.8, ".github/CODEOWNERS", "CODEOWNERS"),
		universal("Funding config", 0.5, ".github/FUNDING.yml"),

		universal("Architecture docs", 1.2, "ARCHITECTURE.md", "docs/architecture*", "ADR/", "docs/adr/"),
		universal("Design docs", 1.0, "docs/design/", "design/", "rfc/", "docs/rfc/"),

		universal("MkDocs", 1.0, "mkdocs.yml", "mkdocs.yaml"),
		universal("VitePress", 1.0, ".vitepress/config.*", "docs/.vitepress/"),
		universal("Docusaurus", 1.0, "docusaurus.config.*"),
		universal("mdBook", 1.0, "book.toml"),
		universal("Antora", 1.0, "antora.yml"),
		universal("Hugo", 0.8, "hugo.toml", "hugo.yaml", "config/_default/"),
		universal("Jekyll", 0.8, "_config.yml"),

		py("Sphinx", 1.2, "docs/conf.py", "conf.py"),
		py("Sphinx source", 1.0, "docs/source/", "source/"),
		py("pdoc", 1.0, "pdoc/", "**/pdoc.py"),
		py("pydoc", 0.8, "pydoc/"),
		py("Python API docs", 1.0, "docs/api.rst", "docs/api.md"),

		js("TypeDoc", 1.2, "typedoc.json", "typedoc.js"),
		js("JSDoc", 1.0, "jsdoc.json", "jsdoc.conf.json"),
		js("ESDoc", 0.8, "esdoc.json"),
		js("Storybook", 1.0, ".storybook/", "storybook/"),
		js("API Extractor", 1.0, "api-extractor.json"),

		golang("Go doc.go", 1.2, "doc.go", "**/doc.go"),
		golang("godoc output", 1.0, "godoc/", "docs/godoc/"),
		golang("Go examples", 1.0, "examples_test.go", "example_test.go"),

		rust("docs.rs config", 1.0, "docs.rs"),
		rust("Crate READMEs", 1.0, "README.md", "crates/*/README.md"),
		rust("Crate changelogs", 1.0, "CHANGELOG.md", "crates/*/CHANGELOG.md"),
		rust("Rust examples", 1.0, "examples/*.rs"),

		ruby("YARD", 1.2, ".yardopts", "doc/.yardoc/"),
		ruby("RDoc", 0.8, ".rdoc_options"),
		ruby("Rails guides", 1.0, "docs/guides/", "guides/"),
		ruby("Upgrade guide", 1.0, "RAILS_UPGRADE.md", "UPGRADING.md"),

		java("Javadoc", 1.2, "javadoc/", "docs/javadoc/", "apidocs/"),
		java("Dokka (Kotlin)", 1.2, "dokka.json", "dokka/"),
		java("Javadoc sources", 1.0, "src/main/javadoc/"),
		java("Migration guide", 1.0, "MIGRATION.md", "docs/migration*"),

		swift("DocC", 1.2, "docs/docc/", "*.docc/"),
		swift("Jazzy", 1.0, "jazzy.yaml", ".jazzy.yaml"),
		swift("Swift Package manifest", 0.8, "Package.swift"),

		csharp("DocFX", 1.2, "docfx.json"),
		csharp("XML docs", 0.8, "*.xml"),
		csharp("API reference", 1.0, "api/", "docs/api/"),

		cpp("Doxygen", 1.2, "Doxyfile", "Doxyfile.in", "doxygen.conf"),
		cpp("Generated docs", 1.0, "docs/html/", "html/"),
		cpp("Man pages", 0.8, "man/", "man1/"),

		php("phpDocumentor", 1.2, "phpdoc.xml", "phpdoc.dist.xml"),
		php("PHP docs", 1.0, "docs/"),
		php("Sami", 0.8, "sami.php"),

		elixir("ExDoc formatter", 0.8, ".formatter.exs"),
		elixir("Elixir guides", 1.0, "guides/"),
		elixir("ExDoc pages", 1.0, "pages/"),
		elixir("Cheatsheets", 0.8, "cheatsheets/"),

		dart("dartdoc config", 1.2, "dartdoc_options.yaml"),
		dart("Dart API docs", 1.0, "doc/api/", "api/"),
		dart("Dart examples", 1.0, "example/"),
	}
}
