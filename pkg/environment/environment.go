// Package environment derives the small set of facts that every downstream
// inclusion decision branches on. The facts are computed exactly once, from
// the resolved configuration, and passed explicitly to each consumer so that
// all gates see a consistent view.
package environment

import (
	"strings"

	"github.com/stackforge/stackforge/pkg/config"
)

// Facts is the derived, immutable environment record.
type Facts struct {
	// ProductionGrade is true iff the environment indicator is one of the
	// accepted production spellings, compared case-insensitively. Every
	// other indicator, including the default, is non-production.
	ProductionGrade bool

	// Ephemeral marks a deployment whose resources must remain deletable by
	// automated tooling. It is deliberately independent of ProductionGrade:
	// delete-ability for testing is not the inverse of a production
	// safeguard.
	Ephemeral bool

	classified bool
}

var productionSpellings = []string{"prod", "production"}

// Classify maps the resolved environment indicator to Facts. Classification
// is total and idempotent: every indicator value maps to exactly one Facts
// state, and classifying the same configuration twice yields equal Facts.
func Classify(cfg config.Resolved) Facts {
	indicator := strings.ToLower(strings.TrimSpace(cfg.Environment))

	facts := Facts{
		Ephemeral:  cfg.Ephemeral,
		classified: true,
	}
	for _, spelling := range productionSpellings {
		if indicator == spelling {
			facts.ProductionGrade = true
			break
		}
	}
	return facts
}

// Valid reports whether the value was produced by Classify rather than being
// a zero value. A gate consulted with invalid Facts is a programming error:
// the pipeline ran a conditional decision before classification.
func (f Facts) Valid() bool {
	return f.classified
}
