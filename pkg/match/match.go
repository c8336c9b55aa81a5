// Package match locates files by glob pattern beneath a search root,
// applying directory-exclusion rules and a bounded-depth recursive fallback.
// Scoring correctness depends entirely on these semantics: patterns support
// single-segment `*` and `?` wildcards, literal path segments, an optional
// `**` for explicit recursion, and a trailing `/` to require a directory.
package match

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// ExcludedDirs are skipped during every search: dependency caches, build
// outputs, VCS metadata, and IDE/tooling state.
var ExcludedDirs = map[string]bool{
	"node_modules":  true,
	".git":          true,
	"__pycache__":   true,
	".venv":         true,
	"venv":          true,
	"env":           true,
	"dist":          true,
	"build":         true,
	"target":        true,
	".next":         true,
	".nuxt":         true,
	"coverage":      true,
	".pytest_cache": true,
	".mypy_cache":   true,
	".ruff_cache":   true,
	"vendor":        true,
	".cargo":        true,
	".rustup":       true,
	"Pods":          true,
	".gradle":       true,
	".idea":         true,
	".vscode":       true,
	".turbo":        true,
	".vercel":       true,
	".netlify":      true,
	"out":           true,
	".output":       true,
}

// DefaultRecursionDepth bounds the recursive fallback pass. Two directory
// levels keeps cost under control on large trees.
const DefaultRecursionDepth = 2

// Matcher finds files matching glob patterns, skipping excluded directories.
type Matcher struct {
	excluded  map[string]bool
	ignorers  []gitignore.Matcher
	maxDepth  int
	extraDirs []string
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithMaxDepth sets the recursive fallback depth.
func WithMaxDepth(depth int) Option {
	return func(m *Matcher) {
		if depth > 0 {
			m.maxDepth = depth
		}
	}
}

// WithExtraExcludedDirs adds directory names to the fixed exclusion set.
func WithExtraExcludedDirs(dirs []string) Option {
	return func(m *Matcher) {
		m.extraDirs = append(m.extraDirs, dirs...)
	}
}

// New creates a Matcher with the fixed exclusion set.
func New(opts ...Option) *Matcher {
	m := &Matcher{
		excluded: ExcludedDirs,
		maxDepth: DefaultRecursionDepth,
	}
	for _, opt := range opts {
		opt(m)
	}
	if len(m.extraDirs) > 0 {
		merged := make(map[string]bool, len(ExcludedDirs)+len(m.extraDirs))
		for d := range ExcludedDirs {
			merged[d] = true
		}
		for _, d := range m.extraDirs {
			merged[d] = true
		}
		m.excluded = merged
	}
	return m
}

// LoadGitignore reads .gitignore patterns beneath root and adds them to the
// exclusion rules. A missing or unreadable .gitignore is treated as empty.
func (m *Matcher) LoadGitignore(root string) {
	bfs := osfs.New(root)
	patterns, err := gitignore.ReadPatterns(bfs, nil)
	if err != nil || len(patterns) == 0 {
		return
	}
	m.ignorers = append(m.ignorers, gitignore.NewMatcher(patterns))
}

// IsExcluded reports whether a repo-relative path falls inside an excluded
// directory or matches a loaded .gitignore pattern.
func (m *Matcher) IsExcluded(rel string, isDir bool) bool {
	parts := strings.Split(filepath.ToSlash(rel), "/")
	for _, part := range parts {
		if m.excluded[part] {
			return true
		}
	}
	for _, ig := range m.ignorers {
		if ig.Match(parts, isDir) {
			return true
		}
	}
	return false
}

// ExcludedDir reports whether a bare directory name is in the exclusion set.
func (m *Matcher) ExcludedDir(name string) bool {
	return m.excluded[name]
}

// FindFirst returns the first path under searchRoot matching any pattern, in
// pattern order, expressed relative to reportRoot. Patterns are first
// evaluated directly against searchRoot; patterns without a recursive
// wildcard are then retried in subdirectories down to the bounded depth.
// Returns "" when nothing matches. Permission errors never propagate;
// unreadable directories behave as empty.
func (m *Matcher) FindFirst(searchRoot, reportRoot string, patterns []string) string {
	for _, pattern := range patterns {
		if rel := m.globDir(searchRoot, pattern); rel != "" {
			return m.report(reportRoot, filepath.Join(searchRoot, rel))
		}
	}

	for _, pattern := range patterns {
		if strings.Contains(pattern, "**") || strings.HasSuffix(pattern, "/") {
			continue
		}
		if found := m.searchSubdirs(searchRoot, pattern, m.maxDepth); found != "" {
			return m.report(reportRoot, found)
		}
	}

	return ""
}

// globDir evaluates one pattern against dir, returning the first
// non-excluded match relative to dir, or "".
func (m *Matcher) globDir(dir, pattern string) string {
	dirOnly := strings.HasSuffix(pattern, "/")
	pattern = strings.TrimSuffix(pattern, "/")
	if pattern == "" {
		return ""
	}

	fsys := os.DirFS(dir)
	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return ""
	}

	for _, rel := range matches {
		info, err := fs.Stat(fsys, rel)
		if err != nil {
			continue
		}
		if dirOnly && !info.IsDir() {
			continue
		}
		if m.IsExcluded(rel, info.IsDir()) {
			continue
		}
		return rel
	}
	return ""
}

// searchSubdirs globs pattern inside each non-excluded subdirectory of dir,
// descending at most depth levels. Returns an absolute-ish path rooted at
// dir, or "".
func (m *Matcher) searchSubdirs(dir, pattern string, depth int) string {
	if depth <= 0 {
		return ""
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	for _, entry := range entries {
		if !entry.IsDir() || m.excluded[entry.Name()] {
			continue
		}
		sub := filepath.Join(dir, entry.Name())
		if rel := m.globDir(sub, pattern); rel != "" {
			return filepath.Join(sub, rel)
		}
		if found := m.searchSubdirs(sub, pattern, depth-1); found != "" {
			return found
		}
	}
	return ""
}

// report expresses path relative to reportRoot so package-scoped hits are
// reported against the whole repository.
func (m *Matcher) report(reportRoot, path string) string {
	rel, err := filepath.Rel(reportRoot, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
