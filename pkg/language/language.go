package language

import (
	"path/filepath"
	"sort"
	"strings"
)

// Language represents a supported programming language.
type Language string

const (
	Python     Language = "python"
	JavaScript Language = "javascript"
	TypeScript Language = "typescript"
	Go         Language = "go"
	Rust       Language = "rust"
	Ruby       Language = "ruby"
	Java       Language = "java"
	Kotlin     Language = "kotlin"
	Swift      Language = "swift"
	CSharp     Language = "csharp"
	CPP        Language = "cpp"
	C          Language = "c"
	PHP        Language = "php"
	Elixir     Language = "elixir"
	Scala      Language = "scala"
	Haskell    Language = "haskell"
	Lua        Language = "lua"
	Dart       Language = "dart"
	Zig        Language = "zig"
	Unknown    Language = "unknown"
)

func (l Language) String() string { return string(l) }

// extensionMap maps lowercase file extensions to languages.
var extensionMap = map[string]Language{
	".py":      Python,
	".pyi":     Python,
	".pyx":     Python,
	".js":      JavaScript,
	".mjs":     JavaScript,
	".cjs":     JavaScript,
	".jsx":     JavaScript,
	".ts":      TypeScript,
	".tsx":     TypeScript,
	".mts":     TypeScript,
	".cts":     TypeScript,
	".go":      Go,
	".rs":      Rust,
	".rb":      Ruby,
	".rake":    Ruby,
	".gemspec": Ruby,
	".java":    Java,
	".kt":      Kotlin,
	".kts":     Kotlin,
	".swift":   Swift,
	".cs":      CSharp,
	".cpp":     CPP,
	".cc":      CPP,
	".cxx":     CPP,
	".hpp":     CPP,
	".hxx":     CPP,
	".c":       C,
	".h":       C,
	".php":     PHP,
	".ex":      Elixir,
	".exs":     Elixir,
	".scala":   Scala,
	".sc":      Scala,
	".hs":      Haskell,
	".lhs":     Haskell,
	".lua":     Lua,
	".dart":    Dart,
	".zig":     Zig,
}

// FromExtension maps a file path's extension to a Language.
func FromExtension(path string) Language {
	ext := strings.ToLower(filepath.Ext(path))
	if lang, ok := extensionMap[ext]; ok {
		return lang
	}
	return Unknown
}

// SkipDirs are directory names excluded from language detection traversal:
// dependency caches, build outputs, and VCS metadata.
var SkipDirs = map[string]bool{
	"__pycache__":   true,
	".git":          true,
	".svn":          true,
	".hg":           true,
	"node_modules":  true,
	".venv":         true,
	"venv":          true,
	"env":           true,
	"build":         true,
	"dist":          true,
	"target":        true,
	"out":           true,
	"bin":           true,
	"obj":           true,
	".pytest_cache": true,
	".mypy_cache":   true,
	".ruff_cache":   true,
	"vendor":        true,
	"deps":          true,
	"_build":        true,
	".bundle":       true,
	".next":         true,
	".nuxt":         true,
	".output":       true,
}

// SignificantThreshold is the minimum file-count ratio for a language to be
// considered significant in a repository.
const SignificantThreshold = 0.1

// Stats holds the detected language breakdown for a repository.
type Stats struct {
	Primary    Language         `json:"primary"`
	Languages  map[Language]int `json:"languages"`
	TotalFiles int              `json:"total_files"`
	Confidence float64          `json:"confidence"`
}

// HasLanguage reports whether the language appears in the repository at all.
func (s *Stats) HasLanguage(lang Language) bool {
	return s.Languages[lang] > 0
}

// Ratio returns the fraction of counted files attributed to lang.
func (s *Stats) Ratio(lang Language) float64 {
	if s.TotalFiles == 0 {
		return 0
	}
	return float64(s.Languages[lang]) / float64(s.TotalFiles)
}

// IsMultiLanguage reports whether more than one language crosses the
// significance threshold.
func (s *Stats) IsMultiLanguage() bool {
	if s.TotalFiles == 0 {
		return false
	}
	significant := 0
	for _, count := range s.Languages {
		if float64(count)/float64(s.TotalFiles) > SignificantThreshold {
			significant++
		}
	}
	return significant > 1
}

// Significant returns the languages whose file-count ratio meets the
// significance threshold, most files first. Count ties break alphabetically
// so repeated scans of the same tree report the same order.
func (s *Stats) Significant() []Language {
	if s.TotalFiles == 0 {
		return nil
	}
	type entry struct {
		lang  Language
		count int
	}
	var significant []entry
	for lang, count := range s.Languages {
		if float64(count)/float64(s.TotalFiles) >= SignificantThreshold {
			significant = append(significant, entry{lang, count})
		}
	}
	sort.Slice(significant, func(i, j int) bool {
		if significant[i].count != significant[j].count {
			return significant[i].count > significant[j].count
		}
		return significant[i].lang < significant[j].lang
	})
	langs := make([]Language, len(significant))
	for i, e := range significant {
		langs[i] = e.lang
	}
	return langs
}

// Family returns the set of languages related to lang (for example JS and TS
// share tooling), including lang itself.
func Family(lang Language) map[Language]bool {
	families := [][]Language{
		{JavaScript, TypeScript},
		{C, CPP},
		{Java, Kotlin, Scala},
	}
	for _, family := range families {
		for _, member := range family {
			if member == lang {
				set := make(map[Language]bool, len(family))
				for _, m := range family {
					set[m] = true
				}
				return set
			}
		}
	}
	return map[Language]bool{lang: true}
}
