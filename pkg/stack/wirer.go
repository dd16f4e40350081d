package stack

import (
	"errors"

	"go.uber.org/zap"

	"github.com/stackforge/stackforge/pkg/config"
	"github.com/stackforge/stackforge/pkg/environment"
	"github.com/stackforge/stackforge/pkg/graph"
	"github.com/stackforge/stackforge/pkg/multierr"
)

type (
	// Wirer realizes a registry's descriptors as instances, constructing
	// each module strictly after every module whose outputs it consumes.
	Wirer struct {
		registry *Registry
		cfg      config.Resolved
		facts    environment.Facts
	}

	// Stack is the result of one wiring pass: the realized instances plus
	// the order they were constructed in.
	Stack struct {
		order     []string
		instances map[string]*Instance
	}
)

func NewWirer(registry *Registry, cfg config.Resolved, facts environment.Facts) *Wirer {
	if !facts.Valid() {
		panic("stack: wirer created before environment classification ran")
	}
	return &Wirer{
		registry: registry,
		cfg:      cfg,
		facts:    facts,
	}
}

// Validate statically checks every declared edge: each config-sourced input
// must name a real configuration field, and each referenced output must be
// declared by a registered producer. All violations are reported together.
func (w *Wirer) Validate() error {
	var errs multierr.Error
	for _, d := range w.registry.Descriptors() {
		for _, in := range d.Inputs {
			switch {
			case in.FromConfig != "":
				if _, ok := w.cfg.Scalar(in.FromConfig); !ok {
					errs.Append(&UnknownScalarError{Module: d.Name, Input: in.Name, Scalar: in.FromConfig})
				}

			case in.Ref != nil:
				producer, ok := w.registry.Get(in.Ref.Module)
				if !ok || !producer.declaresOutput(in.Ref.Output) {
					errs.Append(&WiringError{Module: d.Name, Input: in.Name, Ref: *in.Ref})
				}
			}
		}
	}
	return errs.ErrOrNil()
}

// Wire validates the registry, orders the declared producer/consumer edges
// topologically, and constructs every included module in that order,
// threading upstream outputs into downstream inputs. A cycle or a dangling
// reference is fatal before any construction begins; there is no
// partial-success state.
func (w *Wirer) Wire() (*Stack, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	g := graph.NewDirected[*Descriptor]()
	for _, d := range w.registry.Descriptors() {
		g.AddVertex(d)
	}
	for _, d := range w.registry.Descriptors() {
		for _, dep := range d.dependencies() {
			if err := g.AddEdge(dep, d.Name); err != nil {
				return nil, err
			}
		}
	}

	order, err := g.Topology()
	if err != nil {
		if errors.Is(err, graph.ErrCycle) {
			return nil, &CycleError{Cause: err}
		}
		return nil, err
	}

	suppressed := w.suppressed(order)

	s := &Stack{instances: make(map[string]*Instance)}
	log := zap.S()
	for _, d := range order {
		if _, ok := suppressed[d.Name]; ok {
			log.Debugf("skipping module %s (gated out for this environment)", d.Name)
			continue
		}
		if _, ok := s.instances[d.Name]; ok {
			// The topological order visits each vertex once; a repeat means
			// the registry invariant was broken upstream.
			continue
		}

		inputs, err := w.gatherInputs(d, s)
		if err != nil {
			return nil, err
		}

		outputs, err := d.Build(BuildContext{Config: w.cfg, Facts: w.facts, Inputs: inputs})
		if err != nil {
			return nil, &ConstructionError{Module: d.Name, Cause: err}
		}
		for _, name := range d.Outputs {
			if _, ok := outputs[name]; !ok {
				return nil, &OutputNotProducedError{Module: d.Name, Output: name}
			}
		}

		s.instances[d.Name] = &Instance{Name: d.Name, Outputs: outputs}
		s.order = append(s.order, d.Name)
		log.Debugf("constructed module %s (%d outputs)", d.Name, len(outputs))
	}

	return s, nil
}

// suppressed returns the modules gated out for this environment, plus every
// module that transitively consumes one of them. The slice is already in
// topological order, so one forward pass is enough.
func (w *Wirer) suppressed(order []*Descriptor) map[string]struct{} {
	out := make(map[string]struct{})
	for _, d := range order {
		if d.Include != nil && !d.Include(w.facts, w.cfg) {
			out[d.Name] = struct{}{}
			continue
		}
		for _, dep := range d.dependencies() {
			if _, ok := out[dep]; ok {
				out[d.Name] = struct{}{}
				break
			}
		}
	}
	return out
}

func (w *Wirer) gatherInputs(d *Descriptor, s *Stack) (Inputs, error) {
	inputs := make(Inputs, len(d.Inputs))
	for _, in := range d.Inputs {
		switch {
		case in.FromConfig != "":
			v, _ := w.cfg.Scalar(in.FromConfig) // existence checked in Validate
			inputs[in.Name] = v

		case in.Ref != nil:
			instance, ok := s.instances[in.Ref.Module]
			if !ok {
				// Upstream was constructed before us or suppressed along
				// with us; reaching here means the ordering invariant broke.
				return nil, &WiringError{Module: d.Name, Input: in.Name, Ref: *in.Ref}
			}
			inputs[in.Name] = instance.Outputs[in.Ref.Output]
		}
	}
	return inputs, nil
}

// Instance looks up a realized module by name.
func (s *Stack) Instance(name string) (*Instance, bool) {
	i, ok := s.instances[name]
	return i, ok
}

// Order returns the module names in construction order.
func (s *Stack) Order() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
