package scanner

import (
	"github.com/agentready/agentready/pkg/match"
	"github.com/agentready/agentready/pkg/models"
)

// Registry holds the scanners the engine runs, in a fixed order. It is built
// once during wiring and passed in explicitly; there is no global state.
type Registry struct {
	scanners []Scanner
	byCat    map[models.Category]Scanner
}

// NewRegistry builds a registry from an ordered scanner list. A later
// scanner for the same category replaces an earlier one.
func NewRegistry(scanners ...Scanner) *Registry {
	r := &Registry{byCat: map[models.Category]Scanner{}}
	for _, s := range scanners {
		r.Register(s)
	}
	return r
}

// DefaultRegistry returns all eight category scanners in display order,
// sharing one file finder.
func DefaultRegistry(finder *match.Matcher) *Registry {
	b := base{finder: finder}
	return NewRegistry(
		&StyleScanner{base: b},
		&BuildScanner{base: b},
		&DevEnvScanner{base: b},
		&ObservabilityScanner{base: b},
		&TestingScanner{base: b},
		&DependenciesScanner{base: b},
		&DocumentationScanner{base: b},
		&TypingScanner{base: b},
	)
}

// Register adds or replaces the scanner for its category.
func (r *Registry) Register(s Scanner) {
	if _, ok := r.byCat[s.Category()]; ok {
		for i, existing := range r.scanners {
			if existing.Category() == s.Category() {
				r.scanners[i] = s
				break
			}
		}
	} else {
		r.scanners = append(r.scanners, s)
	}
	r.byCat[s.Category()] = s
}

// Get returns the scanner for a category.
func (r *Registry) Get(category models.Category) (Scanner, bool) {
	s, ok := r.byCat[category]
	return s, ok
}

// All returns the scanners in registration order.
func (r *Registry) All() []Scanner {
	return r.scanners
}

// Categories returns the registered categories in order.
func (r *Registry) Categories() []models.Category {
	cats := make([]models.Category, 0, len(r.scanners))
	for _, s := range r.scanners {
		cats = append(cats, s.Category())
	}
	return cats
}
