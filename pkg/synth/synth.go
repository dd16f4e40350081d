// Package synth runs the whole composition pipeline in one call:
// resolve the configuration, classify the environment, wire the module
// catalogue, and aggregate the exported bindings. The pipeline is a single
// synchronous pass; it either completes in full or fails with no usable
// output map.
package synth

import (
	"github.com/stackforge/stackforge/pkg/catalogue"
	"github.com/stackforge/stackforge/pkg/config"
	"github.com/stackforge/stackforge/pkg/environment"
	"github.com/stackforge/stackforge/pkg/stack"
)

type (
	Request struct {
		Properties config.Properties

		// Defaults overrides the documented default table; nil means
		// config.StandardDefaults.
		Defaults *config.Defaults

		// Overrides is the process-wide override-signal lookup; nil means no
		// signals are set. CLI callers pass config.EnvOverrides.
		Overrides config.Overrides
	}

	Result struct {
		Config   config.Resolved
		Facts    environment.Facts
		Stack    *stack.Stack
		Bindings []stack.Binding
	}
)

// Run executes resolve, classify, wire, aggregate, in that order.
func Run(req Request) (*Result, error) {
	defaults := config.StandardDefaults
	if req.Defaults != nil {
		defaults = *req.Defaults
	}

	cfg, err := config.Resolve(req.Properties, defaults, req.Overrides)
	if err != nil {
		return nil, err
	}

	facts := environment.Classify(cfg)

	registry, err := catalogue.NewRegistry()
	if err != nil {
		return nil, err
	}

	s, err := stack.NewWirer(registry, cfg, facts).Wire()
	if err != nil {
		return nil, err
	}

	bindings, err := stack.Aggregate(cfg, s, catalogue.Exports())
	if err != nil {
		return nil, err
	}

	return &Result{
		Config:   cfg,
		Facts:    facts,
		Stack:    s,
		Bindings: bindings,
	}, nil
}
