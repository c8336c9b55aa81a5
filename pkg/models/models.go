package models

// Category identifies one of the eight readiness dimensions.
type Category string

const (
	CategoryStyle         Category = "style"
	CategoryBuild         Category = "build"
	CategoryDevEnv        Category = "devenv"
	CategoryObservability Category = "observability"
	CategoryTesting       Category = "testing"
	CategoryDependencies  Category = "dependencies"
	CategoryDocumentation Category = "documentation"
	CategoryTyping        Category = "typing"
)

func (c Category) String() string { return string(c) }

// Categories returns all categories in their canonical order.
func Categories() []Category {
	return []Category{
		CategoryStyle,
		CategoryBuild,
		CategoryDevEnv,
		CategoryObservability,
		CategoryTesting,
		CategoryDependencies,
		CategoryDocumentation,
		CategoryTyping,
	}
}

// CategoryWeights maps each category to its fixed share of the total score.
// The weights must sum to 1.0; config overrides are validated against the
// same rule.
var CategoryWeights = map[Category]float64{
	CategoryStyle:         0.15,
	CategoryBuild:         0.10,
	CategoryDevEnv:        0.15,
	CategoryObservability: 0.10,
	CategoryTesting:       0.20,
	CategoryDependencies:  0.10,
	CategoryDocumentation: 0.10,
	CategoryTyping:        0.10,
}

// Finding is the outcome of evaluating one check against the file tree.
type Finding struct {
	Name    string  `json:"name"`
	Found   bool    `json:"found"`
	Path    string  `json:"path,omitempty"`
	Details string  `json:"details,omitempty"`
	Weight  float64 `json:"-"`
}

// CategoryScore is the weighted completion score for a single category.
type CategoryScore struct {
	Category      Category  `json:"name"`
	Score         float64   `json:"score"`
	Weight        float64   `json:"weight"`
	WeightedScore float64   `json:"weighted_score"`
	Findings      []Finding `json:"findings"`
}

// FoundCount returns the number of findings that were satisfied.
func (cs *CategoryScore) FoundCount() int {
	n := 0
	for _, f := range cs.Findings {
		if f.Found {
			n++
		}
	}
	return n
}

// TotalCount returns the number of evaluated findings.
func (cs *CategoryScore) TotalCount() int { return len(cs.Findings) }

// PackageScore is the standalone score of one detected package.
type PackageScore struct {
	Package  Package   `json:"package"`
	Score    float64   `json:"score"`
	Findings []Finding `json:"findings"`
}

// Weight delegates to the package's size-tier weight.
func (ps *PackageScore) Weight() float64 { return ps.Package.Weight() }

// SharedInfraFinding records presence of a repo-root config that benefits
// every package in a multi-package repository.
type SharedInfraFinding struct {
	Name  string `json:"name"`
	Found bool   `json:"found"`
	Path  string `json:"path,omitempty"`
}

// CalculateGrade converts a numeric score to a letter grade. Band lower
// bounds are inclusive: 90 is an A, 89.99 a B.
func CalculateGrade(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}
