// Package stack contains the composition layer: the module registry, the
// dependency wirer that realizes descriptors in topological order, and the
// output aggregator that assembles the stack boundary.
package stack

import (
	"github.com/stackforge/stackforge/pkg/config"
	"github.com/stackforge/stackforge/pkg/environment"
)

type (
	// Ref names another module's declared output. Every cross-module
	// reference must be declared this way, as an explicit edge in the
	// descriptor, so cycles and missing producers are caught statically
	// before any construction begins.
	Ref struct {
		Module string
		Output string
	}

	// InputSpec declares one named input of a module: either a scalar from
	// the resolved configuration (FromConfig) or another module's output
	// (Ref). Exactly one of the two must be set.
	InputSpec struct {
		Name       string
		FromConfig string
		Ref        *Ref
	}

	// Inputs is the concrete named-input record handed to a constructor.
	Inputs map[string]string

	// Outputs is the named-output record a constructor returns. The
	// constructor must produce every output its descriptor declares.
	Outputs map[string]string

	// BuildContext carries everything a constructor may read. Facts are
	// passed explicitly rather than read from any ambient state.
	BuildContext struct {
		Config config.Resolved
		Facts  environment.Facts
		Inputs Inputs
	}

	// BuildFunc is the module constructor contract: synchronous, never
	// mutates inputs it did not declare, returns a named-output record.
	BuildFunc func(ctx BuildContext) (Outputs, error)

	// Descriptor is the static metadata for one module in the catalogue.
	Descriptor struct {
		Name    string
		Inputs  []InputSpec
		Outputs []string
		Build   BuildFunc

		// Include, when non-nil, gates the whole module. A suppressed
		// module is never constructed, and neither is anything that
		// declared a dependency on its outputs.
		Include func(facts environment.Facts, cfg config.Resolved) bool
	}

	// Instance is the realized result of one descriptor's constructor. It is
	// created once per run and owns its outputs; consumers read them by
	// reference.
	Instance struct {
		Name    string
		Outputs Outputs
	}
)

// Id implements graph.Identifiable.
func (d *Descriptor) Id() string {
	return d.Name
}

// dependencies returns the names of the modules d consumes outputs from.
func (d *Descriptor) dependencies() []string {
	var deps []string
	seen := make(map[string]struct{})
	for _, in := range d.Inputs {
		if in.Ref == nil {
			continue
		}
		if _, ok := seen[in.Ref.Module]; ok {
			continue
		}
		seen[in.Ref.Module] = struct{}{}
		deps = append(deps, in.Ref.Module)
	}
	return deps
}

// declaresOutput reports whether the descriptor promises the named output.
func (d *Descriptor) declaresOutput(name string) bool {
	for _, out := range d.Outputs {
		if out == name {
			return true
		}
	}
	return false
}
