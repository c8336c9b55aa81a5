package models

import "math"

// ScanReport is the terminal artifact of one scan. It is constructed once
// and never mutated.
type ScanReport struct {
	RepoPath          string
	TotalScore        float64
	Grade             string
	CategoryScores    []CategoryScore
	ScanDurationMs    float64
	Timestamp         string
	DetectedLanguages []string

	// Populated for multi-package repositories.
	Structure     *RepoStructure
	PackageScores []PackageScore
	SharedInfra   []SharedInfraFinding
}

// ToMap converts the report into a nested mapping of primitive values
// suitable for direct JSON encoding. Scores are rounded to one decimal,
// weighted scores and durations to two.
func (r *ScanReport) ToMap() map[string]any {
	categories := make([]map[string]any, 0, len(r.CategoryScores))
	for i := range r.CategoryScores {
		cs := &r.CategoryScores[i]
		findings := make([]map[string]any, 0, len(cs.Findings))
		for _, f := range cs.Findings {
			entry := map[string]any{
				"name":  f.Name,
				"found": f.Found,
			}
			if f.Path != "" {
				entry["path"] = f.Path
			}
			if f.Details != "" {
				entry["details"] = f.Details
			}
			findings = append(findings, entry)
		}
		categories = append(categories, map[string]any{
			"name":           cs.Category.String(),
			"score":          round1(cs.Score),
			"weight":         cs.Weight,
			"weighted_score": round2(cs.WeightedScore),
			"found":          cs.FoundCount(),
			"total":          cs.TotalCount(),
			"findings":       findings,
		})
	}

	out := map[string]any{
		"repo_path":          r.RepoPath,
		"total_score":        round1(r.TotalScore),
		"grade":              r.Grade,
		"detected_languages": r.DetectedLanguages,
		"scan_duration_ms":   round2(r.ScanDurationMs),
		"timestamp":          r.Timestamp,
		"categories":         categories,
	}

	if r.Structure != nil {
		packages := make([]map[string]any, 0, len(r.Structure.Packages))
		for i := range r.Structure.Packages {
			p := &r.Structure.Packages[i]
			packages = append(packages, map[string]any{
				"path":            p.Path,
				"name":            p.Name,
				"languages":       p.LanguageNames(),
				"package_manager": p.PackageManager,
				"has_tests":       p.HasTests,
				"has_lockfile":    p.HasLockfile,
				"has_types":       p.HasTypes,
			})
		}
		out["repo_structure"] = map[string]any{
			"type":         r.Structure.Type.String(),
			"packages":     packages,
			"root_configs": r.Structure.RootConfigs,
		}
	}

	if len(r.PackageScores) > 0 {
		scores := make([]map[string]any, 0, len(r.PackageScores))
		for i := range r.PackageScores {
			ps := &r.PackageScores[i]
			scores = append(scores, map[string]any{
				"path":   ps.Package.Path,
				"name":   ps.Package.Name,
				"score":  round1(ps.Score),
				"weight": ps.Weight(),
			})
		}
		out["package_scores"] = scores
	}

	if len(r.SharedInfra) > 0 {
		infra := make([]map[string]any, 0, len(r.SharedInfra))
		for _, si := range r.SharedInfra {
			entry := map[string]any{
				"name":  si.Name,
				"found": si.Found,
			}
			if si.Path != "" {
				entry["path"] = si.Path
			}
			infra = append(infra, entry)
		}
		out["shared_infrastructure"] = infra
	}

	return out
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
