package stack

import (
	"github.com/stackforge/stackforge/pkg/config"
)

type (
	// ExportSpec is one entry of the curated export list: which value to
	// expose at the stack boundary and under what name. Exactly one of
	// Scalar (a resolved configuration field) or Module+Output (a module
	// instance's output) identifies the source.
	ExportSpec struct {
		Name        string
		Description string
		Sensitive   bool

		// Required makes a missing source a completeness error instead of a
		// silent skip.
		Required bool

		Scalar string
		Module string
		Output string
	}

	// Binding is a finalized (name, value, description, sensitivity) tuple
	// in the stack's output map.
	Binding struct {
		Name        string
		Value       string
		Description string
		Sensitive   bool
	}
)

// Aggregate collects the curated subset of configuration scalars and module
// outputs into the final, ordered output map. Every exposed name is unique.
// A binding whose source module was never constructed is skipped unless it
// was declared Required, in which case the omission is fatal. Aggregation is
// the terminal, read-only step: it never constructs anything.
func Aggregate(cfg config.Resolved, s *Stack, specs []ExportSpec) ([]Binding, error) {
	seen := make(map[string]struct{}, len(specs))
	bindings := make([]Binding, 0, len(specs))

	for _, spec := range specs {
		if _, dup := seen[spec.Name]; dup {
			return nil, &DuplicateExportError{Name: spec.Name}
		}
		seen[spec.Name] = struct{}{}

		value, ok := lookupSource(cfg, s, spec)
		if !ok {
			if spec.Required {
				return nil, &CompletenessError{Name: spec.Name, Module: spec.Module, Output: spec.Output}
			}
			continue
		}

		bindings = append(bindings, Binding{
			Name:        spec.Name,
			Value:       value,
			Description: spec.Description,
			Sensitive:   spec.Sensitive,
		})
	}

	return bindings, nil
}

func lookupSource(cfg config.Resolved, s *Stack, spec ExportSpec) (string, bool) {
	if spec.Scalar != "" {
		return cfg.Scalar(spec.Scalar)
	}
	instance, ok := s.Instance(spec.Module)
	if !ok {
		return "", false
	}
	value, ok := instance.Outputs[spec.Output]
	return value, ok
}
