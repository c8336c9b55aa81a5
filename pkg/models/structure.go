package models

import (
	"sort"

	"github.com/agentready/agentready/pkg/language"
)

// RepoType classifies the repository layout.
type RepoType string

const (
	RepoSingle   RepoType = "single"
	RepoMonorepo RepoType = "monorepo"
	RepoPolyrepo RepoType = "polyrepo"
)

func (r RepoType) String() string { return string(r) }

// Package line-count tiers drive the per-package aggregation weight.
const (
	smallPackageLines = 1000
	largePackageLines = 10000
)

// Package is a directory identified as an independently buildable unit via a
// recognized manifest file. Fields are fixed at structure-detection time.
type Package struct {
	Path           string                     `json:"path"` // relative to repo root, "." for root
	Name           string                     `json:"name"`
	Languages      map[language.Language]bool `json:"-"`
	PackageManager string                     `json:"package_manager,omitempty"`
	HasTests       bool                       `json:"has_tests"`
	HasLockfile    bool                       `json:"has_lockfile"`
	HasTypes       bool                       `json:"has_types"`
	LineCount      int                        `json:"line_count"`
}

// Weight returns the aggregation weight for the package's size tier.
func (p *Package) Weight() float64 {
	switch {
	case p.LineCount > largePackageLines:
		return 2.0
	case p.LineCount >= smallPackageLines:
		return 1.5
	default:
		return 1.0
	}
}

// HasLanguage reports whether the package's language set contains lang.
func (p *Package) HasLanguage(lang language.Language) bool {
	return p.Languages[lang]
}

// LanguageNames returns the package's languages as sorted strings for
// serialization.
func (p *Package) LanguageNames() []string {
	names := make([]string, 0, len(p.Languages))
	for lang := range p.Languages {
		names = append(names, lang.String())
	}
	sort.Strings(names)
	return names
}

// RepoStructure is the result of repository-structure detection.
type RepoStructure struct {
	Type          RepoType                   `json:"type"`
	Packages      []Package                  `json:"packages"`
	RootConfigs   []string                   `json:"root_configs"`
	RootLanguages map[language.Language]bool `json:"-"`
}

// IsMultiPackage reports whether the repo is a monorepo or polyrepo.
func (rs *RepoStructure) IsMultiPackage() bool {
	return rs.Type == RepoMonorepo || rs.Type == RepoPolyrepo
}
