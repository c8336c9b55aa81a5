package scanner

import (
	"os"
	"path/filepath"

	"github.com/agentready/agentready/pkg/language"
	"github.com/agentready/agentready/pkg/models"
)

// CriticalLockfileWeight is the penalty weight for a manifest that ships
// without any lockfile. Heavier than any normal check: agents cannot
// reliably install dependencies without one.
const CriticalLockfileWeight = 3.0

// criticalPair is a manifest whose absence of a lockfile is a critical
// finding.
type criticalPair struct {
	Manifest  string
	Lockfiles []string
	Ecosystem string
}

var criticalPairs = []criticalPair{
	{"package.json", []string{"package-lock.json", "yarn.lock", "pnpm-lock.yaml", "bun.lockb"}, "Node"},
	{"Gemfile", []string{"Gemfile.lock"}, "Ruby"},
	{"composer.json", []string{"composer.lock"}, "PHP"},
	{"pubspec.yaml", []string{"pubspec.lock"}, "Dart"},
	{"mix.exs", []string{"mix.lock"}, "Elixir"},
}

// DependenciesScanner checks for lockfiles, dependency pinning, and
// update/security automation. Beyond the check table it synthesizes a
// critical finding for every manifest present without a lockfile.
type DependenciesScanner struct {
	base
}

func (s *DependenciesScanner) Category() models.Category { return models.CategoryDependencies }
func (s *DependenciesScanner) Name() string              { return "Dependency Management" }
func (s *DependenciesScanner) Description() string {
	return "Checks for lockfiles, dependency pinning, and security scanning"
}

func (s *DependenciesScanner) Scan(root string, stats *language.Stats) models.CategoryScore {
	findings := s.runChecks(root, stats, s.Checks())
	findings = append(findings, missingLockfiles(root)...)
	return Score(s.Category(), findings)
}

// missingLockfiles synthesizes one critical finding per manifest at root
// that lacks every lockfile alternative.
func missingLockfiles(root string) []models.Finding {
	var findings []models.Finding
	for _, pair := range criticalPairs {
		if _, err := os.Stat(filepath.Join(root, pair.Manifest)); err != nil {
			continue
		}
		locked := false
		for _, lf := range pair.Lockfiles {
			if _, err := os.Stat(filepath.Join(root, lf)); err == nil {
				locked = true
				break
			}
		}
		if !locked {
			findings = append(findings, models.Finding{
				Name:    pair.Ecosystem + " lockfile (CRITICAL)",
				Found:   false,
				Details: pair.Manifest + " exists without lockfile - agents cannot reliably install",
				Weight:  CriticalLockfileWeight,
			})
		}
	}
	return findings
}

func (s *DependenciesScanner) Checks() []Check {
	return []Check{
		universal("Dependabot", 1.5, ".github/dependabot.yml", ".github/dependabot.yaml"),
		universal("Renovate", 1.5, "renovate.json", "renovate.json5", ".renovaterc", ".renovaterc.json"),
		universal("License file", 1.0, "LICENSE", "LICENSE.md", "LICENSE.txt", "COPYING"),
		universal("Snyk config", 1.0, ".snyk"),
		universal("Security policy", 1.0, "SECURITY.md", ".github/SECURITY.md"),

		py("Poetry lockfile", 2.0, "poetry.lock"),
		py("Pipenv lockfile", 2.0, "Pipfile.lock"),
		py("PDM lockfile", 2.0, "pdm.lock"),
		py("uv lockfile", 2.0, "uv.lock"),
		py("pip-tools lockfile", 1.5, "requirements.lock", "requirements-lock.txt"),
		py("Requirements file", 1.0, "requirements.txt", "requirements/*.txt"),
		py("Pip constraints", 0.8, "constraints.txt"),
		py("Safety config", 1.0, ".safety-policy.yml"),
		py("pip-audit config", 1.0, "pip-audit.toml", ".pip-audit.toml"),

		js("npm lockfile", 2.0, "package-lock.json"),
		js("Yarn lockfile", 2.0, "yarn.lock"),
		js("pnpm lockfile", 2.0, "pnpm-lock.yaml"),
		js("Bun lockfile", 2.0, "bun.lockb"),
		js("npm shrinkwrap", 1.5, "shrinkwrap.json"),
		js("npm config", 0.8, ".npmrc"),
		js("Yarn config", 0.8, ".yarnrc", ".yarnrc.yml"),
		js("Node version", 0.8, ".nvmrc", ".node-version"),

		golang("Go checksum", 2.0, "go.sum"),
		golang("Go modules", 1.5, "go.mod"),
		golang("Go vendor dir", 1.0, "vendor/"),
		golang("Go workspace", 0.8, "go.work", "go.work.sum"),

		rust("Cargo lockfile", 2.0, "Cargo.lock"),
		rust("Cargo manifest", 1.5, "Cargo.toml"),
		rust("Rust toolchain", 1.0, "rust-toolchain.toml", "rust-toolchain"),
		rust("Cargo config", 0.8, ".cargo/config.toml"),
		rust("cargo-deny", 1.2, "deny.toml"),
		rust("cargo-audit config", 1.0, "audit.toml"),

		ruby("Bundler lockfile", 2.0, "Gemfile.lock"),
		ruby("Gemfile", 1.5, "Gemfile"),
		ruby("Ruby version", 1.0, ".ruby-version"),
		ruby("RVM gemset", 0.8, ".ruby-gemset"),
		ruby("Bundler config", 0.8, ".bundle/config"),
		ruby("bundler-audit", 1.0, "bundler-audit.yml"),

		java("Maven POM", 1.5, "pom.xml"),
		java("Gradle lockfile", 2.0, "build.gradle.lockfile", "gradle.lockfile"),
		java("Gradle verification", 1.5, "gradle/verification-metadata.xml"),
		java("Maven wrapper", 1.0, "mvnw", ".mvn/"),
		java("Gradle wrapper", 1.0, "gradlew", "gradle/wrapper/"),
		java("SDKMAN config", 0.8, ".sdkmanrc"),

		swift("Swift Package resolved", 2.0, "Package.resolved"),
		swift("CocoaPods lockfile", 2.0, "Podfile.lock"),
		swift("Carthage resolved", 1.5, "Cartfile.resolved"),
		swift("Swift version", 1.0, ".swift-version"),

		csharp("NuGet lockfile", 2.0, "packages.lock.json"),
		csharp("Central package management", 1.5, "Directory.Packages.props"),
		csharp("NuGet config", 0.8, "nuget.config"),
		csharp(".NET global.json", 1.0, "global.json"),

		cpp("Conan lockfile", 2.0, "conan.lock"),
		cpp("vcpkg manifest", 1.5, "vcpkg.json"),
		cpp("vcpkg config", 1.0, "vcpkg-configuration.json"),
		cpp("Conan manifest", 1.2, "conanfile.txt", "conanfile.py"),

		php("Composer lockfile", 2.0, "composer.lock"),
		php("Composer manifest", 1.5, "composer.json"),
		php("Composer auth", 0.5, "auth.json"),

		elixir("Mix lockfile", 2.0, "mix.lock"),
		elixir("Mix manifest", 1.5, "mix.exs"),
		elixir("Rebar3 lockfile", 1.5, "rebar.lock"),

		dart("Pub lockfile", 2.0, "pubspec.lock"),
		dart("Pub manifest", 1.5, "pubspec.yaml"),

		langCheck("Haskell lockfile", 2.0, []string{"cabal.project.freeze", "stack.yaml.lock"}, language.Haskell),
		langCheck("Zig lockfile", 1.5, []string{"build.zig.zon"}, language.Zig),
	}
}
