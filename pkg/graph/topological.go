package graph

import (
	"sort"

	"github.com/pkg/errors"
)

// ErrCycle is returned by Topology when the declared edges do not form a DAG.
var ErrCycle = errors.New("graph contains at least one cycle")

// Topology returns the vertices in a topological order that is additionally
// stable across runs: among the vertices that are simultaneously ready, the
// one with the smallest id is emitted first. The default sort in the
// underlying library iterates Go maps, which would make the construction
// order (and therefore synthesized resource names) vary between runs.
func (d *Directed[V]) Topology() ([]V, error) {
	predecessors, err := d.underlying.PredecessorMap()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get predecessor map")
	}

	remaining := make(map[string]int, len(predecessors))
	for id, preds := range predecessors {
		remaining[id] = len(preds)
	}

	successors, err := d.underlying.AdjacencyMap()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get adjacency map")
	}

	var ready []string
	for id, count := range remaining {
		if count == 0 {
			ready = append(ready, id)
		}
	}

	order := make([]V, 0, len(remaining))
	for len(ready) > 0 {
		sort.Strings(ready)
		id := ready[0]
		ready = ready[1:]

		v, err := d.underlying.Vertex(id)
		if err != nil {
			return nil, errors.Wrapf(err, "could not resolve vertex %q", id)
		}
		order = append(order, v)

		var next []string
		for succ := range successors[id] {
			remaining[succ]--
			if remaining[succ] == 0 {
				next = append(next, succ)
			}
		}
		ready = append(ready, next...)
	}

	if len(order) != len(remaining) {
		return nil, ErrCycle
	}
	return order, nil
}
