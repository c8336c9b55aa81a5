package scanner

import "github.com/agentready/agentready/pkg/language"

// Scope controls where a check is evaluated in multi-package repositories.
type Scope int

const (
	// ScopeAny checks the repository root first, then each package.
	ScopeAny Scope = iota
	// ScopeRoot checks only the repository root.
	ScopeRoot
	// ScopePackage checks each package directory.
	ScopePackage
)

// Check is one file-presence probe. Langs nil means the check applies to
// every repository; otherwise it is skipped unless one of the listed
// languages is present. Critical marks synthetic findings that carry an
// elevated weight when they fail.
type Check struct {
	Name     string
	Patterns []string
	Weight   float64
	Langs    []language.Language
	Scope    Scope
	Critical bool
}

// Applies reports whether the check is relevant for the given language set.
func (c Check) Applies(has func(language.Language) bool) bool {
	if c.Langs == nil {
		return true
	}
	for _, l := range c.Langs {
		if has(l) {
			return true
		}
	}
	return false
}

func universal(name string, weight float64, patterns ...string) Check {
	return Check{Name: name, Patterns: patterns, Weight: weight}
}

func langCheck(name string, weight float64, patterns []string, langs ...language.Language) Check {
	return Check{Name: name, Patterns: patterns, Weight: weight, Langs: langs}
}

func py(name string, weight float64, patterns ...string) Check {
	return langCheck(name, weight, patterns, language.Python)
}

func js(name string, weight float64, patterns ...string) Check {
	return langCheck(name, weight, patterns, language.JavaScript, language.TypeScript)
}

func ts(name string, weight float64, patterns ...string) Check {
	return langCheck(name, weight, patterns, language.TypeScript)
}

func golang(name string, weight float64, patterns ...string) Check {
	return langCheck(name, weight, patterns, language.Go)
}

func rust(name string, weight float64, patterns ...string) Check {
	return langCheck(name, weight, patterns, language.Rust)
}

func ruby(name string, weight float64, patterns ...string) Check {
	return langCheck(name, weight, patterns, language.Ruby)
}

func java(name string, weight float64, patterns ...string) Check {
	return langCheck(name, weight, patterns, language.Java, language.Kotlin)
}

func swift(name string, weight float64, patterns ...string) Check {
	return langCheck(name, weight, patterns, language.Swift)
}

func csharp(name string, weight float64, patterns ...string) Check {
	return langCheck(name, weight, patterns, language.CSharp)
}

func cpp(name string, weight float64, patterns ...string) Check {
	return langCheck(name, weight, patterns, language.C, language.CPP)
}

func php(name string, weight float64, patterns ...string) Check {
	return langCheck(name, weight, patterns, language.PHP)
}

func elixir(name string, weight float64, patterns ...string) Check {
	return langCheck(name, weight, patterns, language.Elixir)
}

func dart(name string, weight float64, patterns ...string) Check {
	return langCheck(name, weight, patterns, language.Dart)
}
