// Package graph wraps github.com/dominikbraun/graph with the small directed
// surface the dependency wirer needs: vertex/edge insertion keyed by string
// id, and a deterministic topological ordering.
package graph

import (
	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type (
	Directed[V Identifiable] struct {
		underlying graph.Graph[string, V]
	}

	Identifiable interface {
		Id() string
	}
)

func NewDirected[V Identifiable]() *Directed[V] {
	return &Directed[V]{
		underlying: graph.New(V.Id, graph.Directed()),
	}
}

func (d *Directed[V]) AddVertex(v V) {
	err := d.underlying.AddVertex(v) // ignore errors if this is a duplicate
	if err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
		zap.S().With(zap.Error(err)).Errorf("unexpected error while adding vertex %s", v.Id())
	}
}

func (d *Directed[V]) AddEdge(source string, dest string) error {
	err := d.underlying.AddEdge(source, dest)
	if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
		return errors.Wrapf(err, "could not add edge %s -> %s", source, dest)
	}
	return nil
}
