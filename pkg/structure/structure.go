// Package structure classifies a repository as a single package, a monorepo,
// or a polyrepo, and discovers the packages inside it. Discovery is
// deliberately shallow: manifests and language extensions are probed at most
// two directory levels down so large trees stay cheap to scan.
package structure

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"github.com/agentready/agentready/pkg/language"
	"github.com/agentready/agentready/pkg/match"
	"github.com/agentready/agentready/pkg/models"
)

// Manifest maps a package manifest file to its package manager and the
// languages it implies.
type Manifest struct {
	File      string
	Manager   string
	Languages []language.Language
}

// Manifests is ordered: the first manifest present in a directory decides the
// package manager.
var Manifests = []Manifest{
	{"package.json", "npm", []language.Language{language.JavaScript, language.TypeScript}},
	{"pyproject.toml", "python", []language.Language{language.Python}},
	{"setup.py", "python", []language.Language{language.Python}},
	{"Cargo.toml", "cargo", []language.Language{language.Rust}},
	{"go.mod", "go", []language.Language{language.Go}},
	{"Gemfile", "bundler", []language.Language{language.Ruby}},
	{"pom.xml", "maven", []language.Language{language.Java}},
	{"build.gradle", "gradle", []language.Language{language.Java, language.Kotlin}},
	{"build.gradle.kts", "gradle", []language.Language{language.Kotlin}},
	{"Package.swift", "spm", []language.Language{language.Swift}},
	{"composer.json", "composer", []language.Language{language.PHP}},
	{"mix.exs", "mix", []language.Language{language.Elixir}},
	{"pubspec.yaml", "pub", []language.Language{language.Dart}},
}

// Lockfiles pin dependency versions for the managers above.
var Lockfiles = []string{
	"package-lock.json", "yarn.lock", "pnpm-lock.yaml", "bun.lockb",
	"Cargo.lock", "go.sum", "Gemfile.lock", "poetry.lock", "uv.lock",
	"composer.lock", "mix.lock", "pubspec.lock", "Package.resolved",
	"packages.lock.json",
}

// TestDirs are directory names that indicate a test suite.
var TestDirs = []string{"tests", "test", "__tests__", "spec", "specs", "_tests", "e2e"}

// SharedConfig is a root-level config file or directory that benefits every
// package in a multi-package repository. A trailing slash marks a directory.
type SharedConfig struct {
	Pattern string
	Name    string
}

// SharedConfigs in display order.
var SharedConfigs = []SharedConfig{
	{".editorconfig", "EditorConfig"},
	{".prettierrc", "Prettier"},
	{".prettierrc.json", "Prettier"},
	{".prettierrc.yaml", "Prettier"},
	{"prettier.config.js", "Prettier"},
	{"prettier.config.mjs", "Prettier"},
	{".github/workflows/", "CI/CD Workflows"},
	{".github/dependabot.yml", "Dependabot"},
	{".devcontainer/", "Dev Container"},
	{"CONTRIBUTING.md", "Contributing Guide"},
	{"README.md", "README"},
	{".pre-commit-config.yaml", "Pre-commit hooks"},
	{"Makefile", "Makefile"},
	{"docker-compose.yml", "Docker Compose"},
	{"docker-compose.yaml", "Docker Compose"},
	{"turbo.json", "Turborepo"},
	{"nx.json", "Nx"},
	{"lerna.json", "Lerna"},
}

// packageDepth bounds manifest discovery and per-package language probing.
const packageDepth = 2

// shallowExtensions maps extensions checked during the fast per-package
// language probe. Solidity is grouped with JavaScript since it ships with JS
// tooling.
var shallowExtensions = map[string]language.Language{
	".py":    language.Python,
	".js":    language.JavaScript,
	".jsx":   language.JavaScript,
	".ts":    language.TypeScript,
	".tsx":   language.TypeScript,
	".go":    language.Go,
	".rs":    language.Rust,
	".rb":    language.Ruby,
	".java":  language.Java,
	".kt":    language.Kotlin,
	".swift": language.Swift,
	".cs":    language.CSharp,
	".php":   language.PHP,
	".ex":    language.Elixir,
	".exs":   language.Elixir,
	".dart":  language.Dart,
	".sol":   language.JavaScript,
}

// Detect classifies root and returns its structure: workspace configs force
// MONOREPO, multiple discovered packages or a single non-root package mean
// POLYREPO, and everything else is SINGLE.
func Detect(root string) *models.RepoStructure {
	var packages []models.Package
	var repoType models.RepoType

	if wsDirs := workspaceDirectories(root); len(wsDirs) > 0 {
		for _, dir := range wsDirs {
			if pkg, ok := newPackage(root, dir); ok {
				packages = append(packages, pkg)
			}
		}
		repoType = models.RepoMonorepo
	} else {
		packages = detectPackages(root)
		switch {
		case len(packages) > 1:
			repoType = models.RepoPolyrepo
		case len(packages) == 1 && packages[0].Path != ".":
			repoType = models.RepoPolyrepo
		default:
			repoType = models.RepoSingle
		}
	}

	return &models.RepoStructure{
		Type:          repoType,
		Packages:      packages,
		RootConfigs:   rootConfigs(root),
		RootLanguages: shallowLanguages(root, 1),
	}
}

// workspaceDirectories reads monorepo workspace configuration: package.json
// workspaces take precedence, then pnpm-workspace.yaml, then a Cargo.toml
// [workspace] section. Patterns with a wildcard expand one level.
func workspaceDirectories(root string) []string {
	if dirs := npmWorkspaces(root); len(dirs) > 0 {
		return dirs
	}
	if dirs := pnpmWorkspaces(root); len(dirs) > 0 {
		return dirs
	}
	return cargoWorkspaces(root)
}

func npmWorkspaces(root string) []string {
	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		return nil
	}
	var manifest struct {
		Workspaces json.RawMessage `json:"workspaces"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil || manifest.Workspaces == nil {
		return nil
	}

	var patterns []string
	if err := json.Unmarshal(manifest.Workspaces, &patterns); err != nil {
		// Object form: {"packages": [...]}
		var obj struct {
			Packages []string `json:"packages"`
		}
		if err := json.Unmarshal(manifest.Workspaces, &obj); err != nil {
			return nil
		}
		patterns = obj.Packages
	}
	return expandWorkspacePatterns(root, patterns)
}

func pnpmWorkspaces(root string) []string {
	data, err := os.ReadFile(filepath.Join(root, "pnpm-workspace.yaml"))
	if err != nil {
		return nil
	}
	var ws struct {
		Packages []string `yaml:"packages"`
	}
	if err := yaml.Unmarshal(data, &ws); err != nil {
		return nil
	}
	return expandWorkspacePatterns(root, ws.Packages)
}

func cargoWorkspaces(root string) []string {
	tree, err := toml.LoadFile(filepath.Join(root, "Cargo.toml"))
	if err != nil {
		return nil
	}
	members, ok := tree.Get("workspace.members").([]interface{})
	if !ok {
		return nil
	}
	var patterns []string
	for _, m := range members {
		if s, ok := m.(string); ok {
			patterns = append(patterns, s)
		}
	}
	return expandWorkspacePatterns(root, patterns)
}

// expandWorkspacePatterns resolves workspace entries to directories. A
// pattern like "packages/*" lists the immediate children of its base.
func expandWorkspacePatterns(root string, patterns []string) []string {
	var dirs []string
	for _, pattern := range patterns {
		if strings.Contains(pattern, "*") {
			base := strings.TrimSuffix(strings.TrimSuffix(pattern, "/**"), "/*")
			entries, err := os.ReadDir(filepath.Join(root, base))
			if err != nil {
				continue
			}
			for _, entry := range entries {
				if entry.IsDir() && !match.ExcludedDirs[entry.Name()] {
					dirs = append(dirs, filepath.Join(root, base, entry.Name()))
				}
			}
		} else {
			path := filepath.Join(root, pattern)
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				dirs = append(dirs, path)
			}
		}
	}
	return dirs
}

// detectPackages walks root looking for manifests. A workspace root found at
// depth zero is skipped so its members are counted instead. When nothing is
// found the root itself becomes the single package.
func detectPackages(root string) []models.Package {
	var packages []models.Package
	seen := map[string]bool{}

	var scan func(dir string, depth int)
	scan = func(dir string, depth int) {
		if depth > packageDepth {
			return
		}
		rel := relOrDot(root, dir)
		if seen[rel] {
			return
		}

		for _, m := range Manifests {
			if exists(filepath.Join(dir, m.File)) {
				if depth > 0 || !isWorkspaceRoot(dir) {
					if pkg, ok := newPackage(root, dir); ok {
						packages = append(packages, pkg)
						seen[rel] = true
					}
				}
				break
			}
		}

		if depth < packageDepth {
			entries, err := os.ReadDir(dir)
			if err != nil {
				return
			}
			sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
			for _, entry := range entries {
				if entry.IsDir() && !match.ExcludedDirs[entry.Name()] {
					scan(filepath.Join(dir, entry.Name()), depth+1)
				}
			}
		}
	}
	scan(root, 0)

	if len(packages) == 0 {
		if pkg, ok := newPackage(root, root); ok {
			packages = append(packages, pkg)
		}
	}
	return packages
}

// isWorkspaceRoot reports whether dir declares workspace members.
func isWorkspaceRoot(dir string) bool {
	if data, err := os.ReadFile(filepath.Join(dir, "package.json")); err == nil {
		var manifest map[string]json.RawMessage
		if json.Unmarshal(data, &manifest) == nil {
			if _, ok := manifest["workspaces"]; ok {
				return true
			}
		}
	}
	if exists(filepath.Join(dir, "pnpm-workspace.yaml")) {
		return true
	}
	if exists(filepath.Join(dir, "lerna.json")) {
		return true
	}
	if data, err := os.ReadFile(filepath.Join(dir, "Cargo.toml")); err == nil {
		if strings.Contains(string(data), "[workspace]") {
			return true
		}
	}
	return false
}

// newPackage builds a Package for pkgDir. Returns false when no language can
// be attributed to the directory.
func newPackage(root, pkgDir string) (models.Package, bool) {
	rel := relOrDot(root, pkgDir)
	name := filepath.Base(pkgDir)
	if rel == "." {
		name = filepath.Base(root)
	}

	var manager string
	langs := map[language.Language]bool{}
	for _, m := range Manifests {
		if exists(filepath.Join(pkgDir, m.File)) {
			manager = m.Manager
			for _, l := range m.Languages {
				langs[l] = true
			}
			break
		}
	}

	for l := range shallowLanguages(pkgDir, packageDepth) {
		langs[l] = true
	}
	if len(langs) == 0 {
		return models.Package{}, false
	}

	hasLockfile := hasAny(pkgDir, Lockfiles)
	if !hasLockfile && pkgDir != root {
		hasLockfile = hasAny(root, Lockfiles)
	}

	return models.Package{
		Path:           rel,
		Name:           name,
		Languages:      langs,
		PackageManager: manager,
		HasTests:       hasTests(pkgDir),
		HasLockfile:    hasLockfile,
		HasTypes:       hasTypes(pkgDir, root, langs),
		LineCount:      countLines(pkgDir),
	}, true
}

// shallowLanguages probes dir for languages via manifest files and source
// extensions down to maxDepth levels.
func shallowLanguages(dir string, maxDepth int) map[language.Language]bool {
	langs := map[language.Language]bool{}

	if exists(filepath.Join(dir, "package.json")) {
		langs[language.JavaScript] = true
		if exists(filepath.Join(dir, "tsconfig.json")) {
			langs[language.TypeScript] = true
		}
	}
	if exists(filepath.Join(dir, "pyproject.toml")) || exists(filepath.Join(dir, "setup.py")) {
		langs[language.Python] = true
	}
	if exists(filepath.Join(dir, "go.mod")) {
		langs[language.Go] = true
	}
	if exists(filepath.Join(dir, "Cargo.toml")) {
		langs[language.Rust] = true
	}
	if exists(filepath.Join(dir, "Gemfile")) {
		langs[language.Ruby] = true
	}
	if exists(filepath.Join(dir, "pom.xml")) || exists(filepath.Join(dir, "build.gradle")) {
		langs[language.Java] = true
	}
	if exists(filepath.Join(dir, "Package.swift")) {
		langs[language.Swift] = true
	}
	if exists(filepath.Join(dir, "composer.json")) {
		langs[language.PHP] = true
	}
	if exists(filepath.Join(dir, "mix.exs")) {
		langs[language.Elixir] = true
	}
	if exists(filepath.Join(dir, "pubspec.yaml")) {
		langs[language.Dart] = true
	}

	var scan func(d string, depth int)
	scan = func(d string, depth int) {
		if depth > maxDepth {
			return
		}
		entries, err := os.ReadDir(d)
		if err != nil {
			return
		}
		for _, entry := range entries {
			if entry.IsDir() {
				if depth < maxDepth && !match.ExcludedDirs[entry.Name()] {
					scan(filepath.Join(d, entry.Name()), depth+1)
				}
				continue
			}
			ext := strings.ToLower(filepath.Ext(entry.Name()))
			if l, ok := shallowExtensions[ext]; ok {
				langs[l] = true
			}
		}
	}
	scan(dir, 0)

	return langs
}

// hasTests checks for test directories, test files under src/, and test
// files at the package root. No recursive globbing.
func hasTests(pkgDir string) bool {
	for _, td := range TestDirs {
		if info, err := os.Stat(filepath.Join(pkgDir, td)); err == nil && info.IsDir() {
			return true
		}
	}

	if entries, err := os.ReadDir(filepath.Join(pkgDir, "src")); err == nil {
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			name := strings.ToLower(entry.Name())
			if strings.HasPrefix(name, "test_") || hasTestSuffix(name) {
				return true
			}
		}
	}

	entries, err := os.ReadDir(pkgDir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := strings.ToLower(entry.Name())
		if strings.HasPrefix(name, "test_") || strings.Contains(name, "test") || strings.Contains(name, "spec") {
			switch filepath.Ext(name) {
			case ".py", ".js", ".ts", ".go", ".rs":
				return true
			}
		}
	}
	return false
}

func hasTestSuffix(name string) bool {
	for _, suffix := range []string{".test.ts", ".test.js", ".spec.ts", ".spec.js", "_test.go", "_test.py"} {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// pythonTypeConfigs are checked per package and at the repo root.
var pythonTypeConfigs = []string{"mypy.ini", ".mypy.ini", "pyrightconfig.json", "py.typed"}

// hasTypes reports whether the package opts in to type checking. Go and Rust
// always qualify.
func hasTypes(pkgDir, root string, langs map[language.Language]bool) bool {
	if langs[language.TypeScript] || langs[language.JavaScript] {
		if exists(filepath.Join(pkgDir, "tsconfig.json")) {
			return true
		}
		if pkgDir != root && exists(filepath.Join(root, "tsconfig.json")) {
			return true
		}
		if exists(filepath.Join(pkgDir, "tsconfig.base.json")) {
			return true
		}
	}

	if langs[language.Python] {
		for _, tc := range pythonTypeConfigs {
			if exists(filepath.Join(pkgDir, tc)) {
				return true
			}
			if pkgDir != root && exists(filepath.Join(root, tc)) {
				return true
			}
		}
		if data, err := os.ReadFile(filepath.Join(pkgDir, "pyproject.toml")); err == nil {
			if strings.Contains(string(data), "[tool.mypy]") {
				return true
			}
		}
	}

	return langs[language.Go] || langs[language.Rust]
}

// countLines sums line counts of recognized source files down to the package
// probe depth. The total feeds the package weight tiers.
func countLines(pkgDir string) int {
	total := 0
	var scan func(dir string, depth int)
	scan = func(dir string, depth int) {
		if depth > packageDepth {
			return
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			return
		}
		for _, entry := range entries {
			if entry.IsDir() {
				if depth < packageDepth && !match.ExcludedDirs[entry.Name()] {
					scan(filepath.Join(dir, entry.Name()), depth+1)
				}
				continue
			}
			ext := strings.ToLower(filepath.Ext(entry.Name()))
			if _, ok := shallowExtensions[ext]; !ok {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
			if err != nil {
				continue
			}
			total += strings.Count(string(data), "\n")
		}
	}
	scan(pkgDir, 0)
	return total
}

// rootConfigs returns the shared configs present at root, repo-relative.
func rootConfigs(root string) []string {
	var configs []string
	for _, sc := range SharedConfigs {
		if strings.HasSuffix(sc.Pattern, "/") {
			dir := strings.TrimSuffix(sc.Pattern, "/")
			if info, err := os.Stat(filepath.Join(root, dir)); err == nil && info.IsDir() {
				configs = append(configs, dir)
			}
		} else if exists(filepath.Join(root, sc.Pattern)) {
			configs = append(configs, sc.Pattern)
		}
	}
	return configs
}

func hasAny(dir string, names []string) bool {
	for _, name := range names {
		if exists(filepath.Join(dir, name)) {
			return true
		}
	}
	return false
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func relOrDot(root, dir string) string {
	rel, err := filepath.Rel(root, dir)
	if err != nil || rel == "." {
		return "."
	}
	return filepath.ToSlash(rel)
}
