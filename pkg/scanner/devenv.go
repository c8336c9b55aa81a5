package scanner

import (
	"github.com/agentready/agentready/pkg/language"
	"github.com/agentready/agentready/pkg/models"
)

// DevEnvScanner checks for reproducible development environments:
// devcontainers, Nix, version managers, and IDE configuration.
type DevEnvScanner struct {
	base
}

func (s *DevEnvScanner) Category() models.Category { return models.CategoryDevEnv }
func (s *DevEnvScanner) Name() string              { return "Dev Environments" }
func (s *DevEnvScanner) Description() string {
	return "Checks for containerization, devcontainers, and reproducible environments"
}

func (s *DevEnvScanner) Scan(root string, stats *language.Stats) models.CategoryScore {
	return Score(s.Category(), s.runChecks(root, stats, s.Checks()))
}

func (s *DevEnvScanner) Checks() []Check {
	return []Check{
		universal("DevContainer config", 2.0, ".devcontainer/devcontainer.json", ".devcontainer.json"),
		universal("DevContainer Dockerfile", 1.5, ".devcontainer/Dockerfile"),
		universal("Gitpod config", 1.5, ".gitpod.yml"),
		universal("GitHub Codespaces", 1.5, ".github/codespaces/*"),

		universal("Nix flake", 1.5, "flake.nix"),
		universal("Nix shell", 1.2, "shell.nix", "default.nix"),
		universal("direnv config", 1.0, ".envrc"),

		universal("Docker Compose (dev)", 1.2, "docker-compose.dev.yml", "docker-compose.override.yml"),
		universal("Dev Dockerfile", 1.0, "Dockerfile.dev", "dev.Dockerfile"),

		universal("Env template", 1.0, ".env.example", ".env.template", ".env.sample", ".env.local.example"),

		universal("VS Code settings", 0.8, ".vscode/settings.json"),
		universal("VS Code extensions", 0.8, ".vscode/extensions.json"),
		universal("VS Code launch config", 0.8, ".vscode/launch.json"),
		universal("VS Code tasks", 0.5, ".vscode/tasks.json"),
		universal("IntelliJ IDEA config", 0.8, ".idea/", "*.iml"),
		universal("EditorConfig", 0.8, ".editorconfig"),

		universal("asdf versions", 1.2, ".tool-versions"),
		universal("mise config", 1.2, ".mise.toml", "mise.toml"),
		universal("rtx config", 1.0, ".rtx.toml"),

		py("Python version (pyenv)", 1.0, ".python-version"),
		py("Pipenv", 1.0, "Pipfile"),
		py("Poetry", 1.0, "poetry.toml", "poetry.lock"),
		py("PDM", 1.0, "pdm.lock", "pdm.toml"),
		py("Virtual environment", 0.8, ".venv/", "venv/"),
		py("Dev requirements", 0.8, "requirements-dev.txt", "requirements/dev.txt"),
		py("venv config", 0.5, "pyenv.cfg"),
		py("Hatch config", 1.0, "hatch.toml", "[tool.hatch]"),

		js("Node version", 1.0, ".nvmrc", ".node-version"),
		js("npm config", 0.8, ".npmrc"),
		js("Yarn config", 0.8, ".yarnrc", ".yarnrc.yml"),
		js("pnpm config", 0.8, ".pnpmrc"),
		js("Browserslist", 0.8, ".browserslistrc", "browserslist"),
		js("Volta config", 1.0, "volta.json"),

		golang("Go workspace", 1.0, "go.work"),
		golang("Go version", 0.8, ".go-version"),
		golang("Go tools file", 1.0, "tools.go", "tools/tools.go"),

		rust("Rust toolchain", 1.5, "rust-toolchain.toml", "rust-toolchain"),
		rust("Cargo config", 1.0, ".cargo/config.toml"),

		ruby("Ruby version", 1.0, ".ruby-version"),
		ruby("RVM gemset", 0.8, ".ruby-gemset"),
		ruby("RVM config", 0.5, ".rvmrc"),
		ruby("rbenv vars", 0.5, ".rbenv-vars"),
		ruby("Homebrew deps", 1.0, "Brewfile"),
		ruby("Setup scripts", 1.2, "bin/setup", "bin/dev"),
		ruby("Foreman dev", 1.0, "Procfile.dev"),

		java("SDKMAN config", 1.2, ".sdkmanrc"),
		java("Java version", 1.0, ".java-version"),
		java("Gradle properties", 0.8, "gradle.properties"),
		java("Maven JVM config", 0.8, ".mvn/jvm.config"),

		swift("Swift version", 1.0, ".swift-version"),
		swift("Mint packages", 1.0, "Mintfile"),

		csharp(".NET global.json", 1.2, "global.json"),
		csharp("OmniSharp config", 0.8, "omnisharp.json"),
		csharp("MSBuild props", 0.8, "Directory.Build.props"),
		csharp(".NET tools", 1.0, ".config/dotnet-tools.json"),

		cpp("CMake presets", 1.2, "CMakePresets.json"),
		cpp("clangd config", 0.8, ".clangd"),
		cpp("Compile commands", 1.0, "compile_commands.json"),
		cpp("ccls config", 0.8, ".ccls", "ccls.json"),

		php("PHP version", 1.0, ".php-version"),
		php("Laravel Homestead", 1.0, "Homestead.yaml"),
		php("Docker (Laravel)", 0.8, "docker-compose.yml"),
		php("Laravel Sail", 1.0, "sail", "docker-compose.yml"),

		elixir("Elixir/Erlang version", 1.0, ".elixir-version", ".erlang-version"),
		elixir("IEx config", 0.5, ".iex.exs"),

		dart("Flutter version", 1.0, ".fvm/", "fvm_config.json"),
		dart("Flutter platforms", 0.8, "android/", "ios/"),

		universal("Vagrant", 1.0, "Vagrantfile"),
		universal("Vagrant data", 0.5, ".vagrant/"),

		universal("Skaffold config", 1.2, "skaffold.yaml"),
		universal("Tilt config", 1.2, "tilt.yaml", "Tiltfile"),
		universal("Telepresence", 1.0, "telepresence.yaml"),
		universal("K8s manifests", 1.0, "k8s/", "kubernetes/", "charts/"),
	}
}
