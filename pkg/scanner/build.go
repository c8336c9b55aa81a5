package scanner

import (
	"github.com/agentready/agentready/pkg/language"
	"github.com/agentready/agentready/pkg/models"
)

// BuildScanner checks for build systems, CI/CD pipelines, and container
// tooling.
type BuildScanner struct {
	base
}

func (s *BuildScanner) Category() models.Category { return models.CategoryBuild }
func (s *BuildScanner) Name() string              { return "Build Systems" }
func (s *BuildScanner) Description() string {
	return "Checks for build tools, CI/CD configs, and automation"
}

func (s *BuildScanner) Scan(root string, stats *language.Stats) models.CategoryScore {
	return Score(s.Category(), s.runChecks(root, stats, s.Checks()))
}

func (s *BuildScanner) Checks() []Check {
	return []Check{
		universal("Makefile", 1.2, "Makefile", "makefile", "GNUmakefile"),
		universal("Just", 1.0, "justfile", "Justfile", ".justfile"),
		universal("Task", 1.0, "Taskfile.yml", "Taskfile.yaml"),
		universal("Build script", 0.8, "build.sh", "scripts/build.sh"),

		universal("GitHub Actions", 1.5, ".github/workflows/*.yml", ".github/workflows/*.yaml"),
		universal("GitLab CI", 1.5, ".gitlab-ci.yml", ".gitlab-ci.yaml"),
		universal("CircleCI", 1.2, ".circleci/config.yml"),
		universal("Jenkins", 1.0, "Jenkinsfile"),
		universal("Travis CI", 0.8, ".travis.yml"),
		universal("Azure Pipelines", 1.0, "azure-pipelines.yml"),
		universal("Bitbucket Pipelines", 1.0, "bitbucket-pipelines.yml"),
		universal("Drone CI", 1.0, ".drone.yml"),
		universal("Buildkite", 1.0, "buildkite.yml", ".buildkite/*"),
		universal("Google Cloud Build", 1.0, "cloudbuild.yaml"),
		universal("AppVeyor", 0.8, "appveyor.yml"),
		universal("Woodpecker CI", 1.0, ".woodpecker.yml"),

		universal("Dockerfile", 1.2, "Dockerfile", "*.dockerfile", "Dockerfile.*"),
		universal("Docker Compose", 1.0, "docker-compose.yml", "docker-compose.yaml", "compose.yml", "compose.yaml"),
		universal("Docker Bake", 0.8, "docker-bake.hcl"),
		universal("Podman/Buildah", 1.0, "Containerfile"),

		py("pyproject.toml", 1.5, "pyproject.toml"),
		py("setup.py", 0.8, "setup.py"),
		py("setup.cfg", 0.8, "setup.cfg"),
		py("Tox", 1.0, "tox.ini"),
		py("Nox", 1.0, "noxfile.py"),
		py("Hatch", 1.0, "hatch.toml"),

		js("package.json", 1.5, "package.json"),
		js("Webpack", 1.0, "webpack.config.*"),
		js("Vite", 1.2, "vite.config.*"),
		js("Rollup", 1.0, "rollup.config.*"),
		js("esbuild", 1.0, "esbuild.config.*", "esbuild.mjs"),
		js("Turborepo", 1.2, "turbo.json"),
		js("Nx", 1.2, "nx.json"),
		js("Lerna", 0.8, "lerna.json"),
		js("tsup", 1.0, "tsup.config.*"),

		golang("Go modules", 1.5, "go.mod"),
		golang("Go build", 1.0, "Makefile", "magefile.go"),
		golang("GoReleaser", 1.2, "goreleaser.yml", ".goreleaser.yaml"),
		golang("Mage", 1.0, "mage.go", "magefile.go"),

		rust("Cargo.toml", 1.5, "Cargo.toml"),
		rust("build.rs", 1.0, "build.rs"),
		rust("Cargo config", 0.8, ".cargo/config.toml"),
		rust("Cross (cross-compile)", 1.0, "Cross.toml"),

		ruby("Gemfile", 1.5, "Gemfile"),
		ruby("Rake", 1.2, "Rakefile"),
		ruby("Gemspec", 1.0, "*.gemspec"),

		java("Maven", 1.5, "pom.xml"),
		java("Gradle", 1.5, "build.gradle", "build.gradle.kts"),
		java("Gradle settings", 0.8, "settings.gradle", "settings.gradle.kts"),
		java("Gradle wrapper", 1.0, "gradlew"),
		java("Maven wrapper", 1.0, "mvnw"),
		java("SBT (Scala)", 1.2, "build.sbt"),
		java("Ant", 0.5, "build.xml"),

		swift("Swift Package", 1.5, "Package.swift"),
		swift("Xcode project", 1.2, "*.xcodeproj", "*.xcworkspace"),
		swift("CocoaPods", 1.0, "Podfile"),
		swift("Carthage", 0.8, "Cartfile"),
		swift("Xcode project file", 1.0, "project.pbxproj"),
		swift("Fastlane", 1.2, "Fastfile", "fastlane/*"),

		csharp("Visual Studio Solution", 1.5, "*.sln"),
		csharp("C# Project", 1.5, "*.csproj"),
		csharp("MSBuild props", 1.0, "Directory.Build.props"),
		csharp(".NET global.json", 0.8, "global.json"),
		csharp("NuGet config", 0.8, "nuget.config"),

		cpp("CMake", 1.5, "CMakeLists.txt"),
		cpp("Meson", 1.2, "meson.build"),
		cpp("Autoconf", 1.0, "configure.ac", "configure"),
		cpp("Conan", 1.0, "conanfile.txt", "conanfile.py"),
		cpp("vcpkg", 1.0, "vcpkg.json"),
		cpp("Premake", 1.0, "premake5.lua"),
		cpp("xmake", 1.0, "xmake.lua"),
		cpp("Bazel", 1.2, "WORKSPACE", "BUILD"),

		php("Composer", 1.5, "composer.json"),
		php("Laravel Artisan", 1.0, "artisan"),
		php("Symfony Console", 1.0, "bin/console"),

		elixir("Mix", 1.5, "mix.exs"),
		elixir("Rebar3", 1.0, "rebar.config"),

		dart("Dart pubspec", 1.5, "pubspec.yaml"),
		dart("Dart build", 1.0, "build.yaml"),

		universal("Terraform", 1.0, "terraform/*.tf", "*.tf"),
		universal("Pulumi", 1.0, "pulumi/*", "Pulumi.yaml"),
		universal("Ansible", 0.8, "ansible.cfg", "playbook.yml"),
		universal("Serverless Framework", 1.0, "serverless.yml"),
	}
}
