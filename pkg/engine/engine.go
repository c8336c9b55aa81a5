// Package engine orchestrates a repository scan: structure detection,
// language detection, per-category scanning, and score aggregation for
// multi-package repositories.
package engine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/agentready/agentready/pkg/language"
	"github.com/agentready/agentready/pkg/match"
	"github.com/agentready/agentready/pkg/models"
	"github.com/agentready/agentready/pkg/scanner"
	"github.com/agentready/agentready/pkg/structure"
)

// Precondition failures, testable with errors.Is.
var (
	ErrPathNotFound = errors.New("repository path does not exist")
	ErrNotDirectory = errors.New("repository path is not a directory")
)

const (
	// SharedConfigWeight is the bonus per shared root config in
	// multi-package repositories.
	SharedConfigWeight = 2.0
	// SharedBonusCap limits the total shared-infrastructure bonus.
	SharedBonusCap = 15.0
	// CriticalPenalty is subtracted per missing non-negotiable item.
	CriticalPenalty = 5.0
)

// Engine runs scans. Construct with New; the registry and finder are
// injected so tests can substitute either.
type Engine struct {
	registry *scanner.Registry
	finder   *match.Matcher
	maxFiles int
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxFiles caps the language-detection walk.
func WithMaxFiles(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxFiles = n
		}
	}
}

// New builds an Engine around a scanner registry and file finder.
func New(registry *scanner.Registry, finder *match.Matcher, opts ...Option) *Engine {
	e := &Engine{
		registry: registry,
		finder:   finder,
		maxFiles: language.DefaultMaxFiles,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Scan scores the repository at root and returns the full report.
// Multi-package repositories are scored per package and aggregated with
// shared-infrastructure bonuses; single-package repositories sum the
// weighted category scores directly.
func (e *Engine) Scan(root string) (*models.ScanReport, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	start := time.Now()

	repoStructure := structure.Detect(root)
	stats := language.Detect(root, e.maxFiles)
	sharedInfra := e.sharedInfrastructure(root)

	var (
		packageScores  []models.PackageScore
		categoryScores []models.CategoryScore
		totalScore     float64
	)

	if repoStructure.IsMultiPackage() && len(repoStructure.Packages) > 0 {
		packageScores = e.scanPackages(root, repoStructure.Packages)
		categoryScores = e.aggregate(root, repoStructure, stats)
		totalScore = e.multiPackageScore(root, packageScores, sharedInfra)
	} else {
		for _, s := range e.registry.All() {
			categoryScores = append(categoryScores, s.Scan(root, stats))
		}
		for _, cs := range categoryScores {
			totalScore += cs.WeightedScore
		}
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		absRoot = root
	}

	var detected []string
	for _, l := range stats.Significant() {
		detected = append(detected, string(l))
	}

	return &models.ScanReport{
		RepoPath:          absRoot,
		TotalScore:        totalScore,
		Grade:             models.CalculateGrade(totalScore),
		CategoryScores:    categoryScores,
		ScanDurationMs:    float64(time.Since(start).Microseconds()) / 1000,
		Timestamp:         time.Now().UTC().Format(time.RFC3339),
		DetectedLanguages: detected,
		Structure:         repoStructure,
		PackageScores:     packageScores,
		SharedInfra:       sharedInfra,
	}, nil
}

// scanPackages scores each package independently over all checks whose
// scope and languages match it. Root-scope checks are excluded here; any-
// scope checks fall back to the repository root when not found inside the
// package.
func (e *Engine) scanPackages(root string, packages []models.Package) []models.PackageScore {
	var scores []models.PackageScore

	for _, pkg := range packages {
		pkgPath := root
		if pkg.Path != "." {
			pkgPath = filepath.Join(root, filepath.FromSlash(pkg.Path))
		}

		var findings []models.Finding
		var totalWeight, foundWeight float64

		for _, s := range e.registry.All() {
			for _, c := range s.Checks() {
				if c.Scope == scanner.ScopeRoot {
					continue
				}
				if !c.Applies(func(l language.Language) bool { return pkg.Languages[l] }) {
					continue
				}

				found := e.finder.FindFirst(pkgPath, root, c.Patterns)
				if found == "" && c.Scope == scanner.ScopeAny && pkgPath != root {
					found = e.finder.FindFirst(root, root, c.Patterns)
				}

				f := models.Finding{
					Name:   c.Name,
					Found:  found != "",
					Weight: c.Weight,
				}
				if found != "" {
					f.Path = found
				}
				findings = append(findings, f)

				totalWeight += c.Weight
				if found != "" {
					foundWeight += c.Weight
				}
			}
		}

		score := 0.0
		if totalWeight > 0 {
			score = foundWeight / totalWeight * 100
		}

		scores = append(scores, models.PackageScore{
			Package:  pkg,
			Score:    score,
			Findings: findings,
		})
	}

	return scores
}

// aggregate builds the per-category view for multi-package repositories.
// Each check is evaluated once across its scope fan-out: root-scope at the
// root, package-scope in every qualifying package, any-scope at the root
// first and then the packages.
func (e *Engine) aggregate(root string, rs *models.RepoStructure, stats *language.Stats) []models.CategoryScore {
	var categoryScores []models.CategoryScore

	for _, s := range e.registry.All() {
		var findings []models.Finding

		for _, c := range s.Checks() {
			if stats != nil && !c.Applies(stats.HasLanguage) {
				continue
			}

			var found string
			switch c.Scope {
			case scanner.ScopeRoot:
				found = e.finder.FindFirst(root, root, c.Patterns)
			case scanner.ScopePackage:
				found = e.findInPackages(root, rs.Packages, c)
			default:
				found = e.finder.FindFirst(root, root, c.Patterns)
				if found == "" {
					found = e.findInPackages(root, rs.Packages, c)
				}
			}

			f := models.Finding{
				Name:   c.Name,
				Found:  found != "",
				Weight: c.Weight,
			}
			if found != "" {
				f.Path = found
			}
			findings = append(findings, f)
		}

		categoryScores = append(categoryScores, scanner.Score(s.Category(), findings))
	}

	return categoryScores
}

// findInPackages evaluates a check inside each package the check's
// languages apply to, returning the first hit relative to root.
func (e *Engine) findInPackages(root string, packages []models.Package, c scanner.Check) string {
	for _, pkg := range packages {
		if !c.Applies(func(l language.Language) bool { return pkg.Languages[l] }) {
			continue
		}
		pkgPath := root
		if pkg.Path != "." {
			pkgPath = filepath.Join(root, filepath.FromSlash(pkg.Path))
		}
		if found := e.finder.FindFirst(pkgPath, root, c.Patterns); found != "" {
			return found
		}
	}
	return ""
}

// sharedInfrastructure reports which root-level shared configs exist.
func (e *Engine) sharedInfrastructure(root string) []models.SharedInfraFinding {
	var findings []models.SharedInfraFinding
	for _, sc := range structure.SharedConfigs {
		var found bool
		rel := sc.Pattern
		if rel[len(rel)-1] == '/' {
			rel = rel[:len(rel)-1]
			info, err := os.Stat(filepath.Join(root, rel))
			found = err == nil && info.IsDir()
		} else {
			_, err := os.Stat(filepath.Join(root, rel))
			found = err == nil
		}
		f := models.SharedInfraFinding{Name: sc.Name, Found: found}
		if found {
			f.Path = rel
		}
		findings = append(findings, f)
	}
	return findings
}

// multiPackageScore combines per-package scores into the repository total:
// a weighted average by package size tier, plus a capped bonus for shared
// root configuration, minus a flat penalty per missing non-negotiable item.
func (e *Engine) multiPackageScore(root string, packageScores []models.PackageScore, sharedInfra []models.SharedInfraFinding) float64 {
	if len(packageScores) == 0 {
		return 0
	}

	var totalWeight, weightedSum float64
	for i := range packageScores {
		ps := &packageScores[i]
		totalWeight += ps.Weight()
		weightedSum += ps.Score * ps.Weight()
	}
	base := 0.0
	if totalWeight > 0 {
		base = weightedSum / totalWeight
	} else {
		for i := range packageScores {
			base += packageScores[i].Score
		}
		base /= float64(len(packageScores))
	}

	sharedFound := 0
	for _, si := range sharedInfra {
		if si.Found {
			sharedFound++
		}
	}
	bonus := float64(sharedFound) * SharedConfigWeight
	if bonus > SharedBonusCap {
		bonus = SharedBonusCap
	}

	missing := 0
	if _, err := os.Stat(filepath.Join(root, "README.md")); err != nil {
		missing++
	}
	if !hasWorkflows(root) {
		missing++
	}
	penalty := float64(missing) * CriticalPenalty

	total := base + bonus - penalty
	if total > 100 {
		total = 100
	}
	if total < 0 {
		total = 0
	}
	return total
}

// hasWorkflows reports whether the repository carries CI workflow files.
func hasWorkflows(root string) bool {
	wf := filepath.Join(root, ".github", "workflows")
	if info, err := os.Stat(wf); err == nil && info.IsDir() {
		return true
	}
	matches, err := filepath.Glob(filepath.Join(wf, "*.yml"))
	return err == nil && len(matches) > 0
}
