// Package scanner holds the eight category scanners and the check tables
// they evaluate. Each scanner is mostly declarative: a list of Check probes,
// with a few scanners layering content analysis on top (README length,
// missing lockfiles, type-annotation sampling).
package scanner

import (
	"github.com/agentready/agentready/pkg/language"
	"github.com/agentready/agentready/pkg/match"
	"github.com/agentready/agentready/pkg/models"
)

// Scanner evaluates one scoring category against a repository.
type Scanner interface {
	Category() models.Category
	Name() string
	Description() string

	// Checks returns the full check table. Language filtering happens at
	// evaluation time, not here.
	Checks() []Check

	// Scan runs every applicable check against root and scores the category.
	// stats may be nil, in which case language-tagged checks all apply.
	Scan(root string, stats *language.Stats) models.CategoryScore
}

// base carries the shared evaluation logic; each category scanner embeds it.
type base struct {
	finder *match.Matcher
}

// runChecks evaluates a check table against root. Checks whose languages are
// absent from the repository are skipped entirely and contribute nothing to
// the score denominator.
func (b *base) runChecks(root string, stats *language.Stats, checks []Check) []models.Finding {
	var findings []models.Finding
	for _, c := range checks {
		if stats != nil && !c.Applies(stats.HasLanguage) {
			continue
		}
		found := b.finder.FindFirst(root, root, c.Patterns)
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
	return findings
}

// Score turns findings into a CategoryScore using the weighted found/total
// ratio. An empty finding list scores zero.
func Score(category models.Category, findings []models.Finding) models.CategoryScore {
	var total, found float64
	for _, f := range findings {
		total += f.Weight
		if f.Found {
			found += f.Weight
		}
	}
	score := 0.0
	if total > 0 {
		score = found / total * 100
	}

	weight := models.CategoryWeights[category]
	return models.CategoryScore{
		Category:      category,
		Score:         score,
		Weight:        weight,
		WeightedScore: score * weight,
		Findings:      findings,
	}
}
