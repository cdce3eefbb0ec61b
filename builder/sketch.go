// SPDX-License-Identifier: MIT
// Package: lvwalk/builder
//
// sketch.go - the vertex set constructors write into before the graph exists.
//
// A graph.Graph is created over a fixed vertex list, while constructors add
// vertices and edges incrementally. Sketch bridges the two: it keeps vertices
// in insertion order, reuses a vertex when its ID is added again, and skips
// an edge that was already emitted, so composing constructors over shared
// IDs never duplicates anything.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/graph"
)

// Sketch is an ordered, ID-indexed set of vertices of one graph.Kind.
type Sketch struct {
	kind     graph.Kind
	directed bool

	order []*graph.Vertex[string]
	byID  map[string]*graph.Vertex[string]
	edges map[[2]string]struct{}
}

func newSketch(kind graph.Kind, directed bool) *Sketch {
	return &Sketch{
		kind:     kind,
		directed: directed,
		byID:     make(map[string]*graph.Vertex[string]),
		edges:    make(map[[2]string]struct{}),
	}
}

// Kind reports whether the sketch builds weighted vertices.
func (s *Sketch) Kind() graph.Kind { return s.kind }

// Len returns the number of vertices added so far.
func (s *Sketch) Len() int { return len(s.order) }

// AddVertex returns the vertex with the given ID, creating it on first use.
func (s *Sketch) AddVertex(id string) *graph.Vertex[string] {
	if v, ok := s.byID[id]; ok {
		return v
	}

	var v *graph.Vertex[string]
	if s.kind == graph.Weighted {
		v = graph.NewWeightedVertex(id)
	} else {
		v = graph.NewVertex(id)
	}
	s.byID[id] = v
	s.order = append(s.order, v)

	return v
}

// AddEdge appends u -> v (and v -> u unless the build is directed).
// Missing endpoints are created. The weight is ignored for unweighted
// sketches. An edge already present is left untouched.
func (s *Sketch) AddEdge(u, v string, w float64) error {
	if err := s.link(u, v, w); err != nil {
		return err
	}
	if s.directed || u == v {
		return nil
	}

	return s.link(v, u, w)
}

func (s *Sketch) link(u, v string, w float64) error {
	key := [2]string{u, v}
	if _, dup := s.edges[key]; dup {
		return nil
	}

	from, to := s.AddVertex(u), s.AddVertex(v)
	var err error
	if s.kind == graph.Weighted {
		err = from.AppendWeighted(to, w)
	} else {
		err = from.Append(to)
	}
	if err != nil {
		return fmt.Errorf("AddEdge(%s→%s): %w", u, v, err)
	}
	s.edges[key] = struct{}{}

	return nil
}

// draw returns the next edge weight: from cfg for weighted sketches, 0 otherwise.
func (s *Sketch) draw(cfg builderConfig) float64 {
	if s.kind != graph.Weighted {
		return 0
	}

	return cfg.weight()
}

// Vertices returns the vertices in insertion order.
func (s *Sketch) Vertices() []*graph.Vertex[string] {
	out := make([]*graph.Vertex[string], len(s.order))
	copy(out, s.order)

	return out
}
