package graph

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-multierror"
)

// Adjacency is one outgoing entry of a vertex.
//
// For unweighted vertices Weight is always zero and never displayed; for
// weighted vertices it carries the edge weight.
type Adjacency[T any] struct {
	Vertex *Vertex[T]
	Weight float64
}

// format renders the adjacency the way its graph kind displays it:
// "(v)" for unweighted entries, "(v, w)" for weighted ones.
func (a Adjacency[T]) format(k Kind) string {
	if k == Weighted {
		return fmt.Sprintf("(%v, %g)", a.Vertex.value, a.Weight)
	}

	return a.Vertex.String()
}

// Label is the best known route from a vertex to the destination of the
// last ShortestPath run: the next vertex to move to and the accumulated cost.
// NextHop is nil on the destination itself.
type Label[T any] struct {
	NextHop *Vertex[T]
	Cost    float64
}

// Vertex is a value-carrying node with an append-only adjacency list.
//
// The payload is fixed at creation. visited, level and label are scratch state
// owned by the traversal currently running on the vertex's graph: they are
// readable through accessors but only the graph mutates them.
type Vertex[T any] struct {
	value T
	kind  Kind

	visited bool
	level   int // 0 means "no level assigned"
	label   *Label[T]

	adjacencies []Adjacency[T]
}

// NewVertex returns an unweighted vertex carrying value.
func NewVertex[T any](value T) *Vertex[T] {
	return &Vertex[T]{value: value, kind: Unweighted}
}

// NewWeightedVertex returns a weighted vertex carrying value.
func NewWeightedVertex[T any](value T) *Vertex[T] {
	return &Vertex[T]{value: value, kind: Weighted}
}

// Value returns the payload.
func (v *Vertex[T]) Value() T { return v.value }

// Kind reports whether the vertex holds plain or weighted adjacencies.
func (v *Vertex[T]) Kind() Kind { return v.kind }

// Visited reports the traversal scratch flag. Outside a running traversal it
// is always false.
func (v *Vertex[T]) Visited() bool { return v.visited }

// Level returns the BFS level assigned by the last SetLevels run that reached
// this vertex. ok is false if no level was ever assigned.
func (v *Vertex[T]) Level() (level int, ok bool) {
	return v.level, v.level > 0
}

// Label returns the path label assigned by the last ShortestPath run.
func (v *Vertex[T]) Label() (Label[T], bool) {
	if v.label == nil {
		return Label[T]{}, false
	}

	return *v.label, true
}

// Degree returns the number of adjacency entries.
func (v *Vertex[T]) Degree() int { return len(v.adjacencies) }

// Adjacent returns the i-th adjacency entry, or ok=false when i is out of range.
func (v *Vertex[T]) Adjacent(i int) (Adjacency[T], bool) {
	if i < 0 || i >= len(v.adjacencies) {
		return Adjacency[T]{}, false
	}

	return v.adjacencies[i], true
}

// Adjacencies returns a copy of the adjacency list in stored order.
func (v *Vertex[T]) Adjacencies() []Adjacency[T] {
	out := make([]Adjacency[T], len(v.adjacencies))
	copy(out, v.adjacencies)

	return out
}

// Neighbors returns the adjacent vertices in stored order.
func (v *Vertex[T]) Neighbors() []*Vertex[T] {
	out := make([]*Vertex[T], len(v.adjacencies))
	for i, a := range v.adjacencies {
		out[i] = a.Vertex
	}

	return out
}

// String renders the vertex as "(value)".
func (v *Vertex[T]) String() string {
	return fmt.Sprintf("(%v)", v.value)
}

// Append adds plain neighbor references to an unweighted vertex.
// Either every neighbor is appended or none is: any nil or weighted neighbor
// fails the whole call with an error wrapping ErrStructural.
func (v *Vertex[T]) Append(neighbors ...*Vertex[T]) error {
	if v.kind != Unweighted {
		return fmt.Errorf("%w: Append on %s vertex %s: %w", ErrStructural, v.kind, v, ErrKindMismatch)
	}

	var merr *multierror.Error
	for i, n := range neighbors {
		switch {
		case n == nil:
			merr = multierror.Append(merr, fmt.Errorf("neighbor #%d: %w", i, ErrNilVertex))
		case n.kind != Unweighted:
			merr = multierror.Append(merr, fmt.Errorf("neighbor #%d %s is %s: %w", i, n, n.kind, ErrKindMismatch))
		}
	}
	if err := merr.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: Append on %s: %w", ErrStructural, v, err)
	}

	for _, n := range neighbors {
		v.adjacencies = append(v.adjacencies, Adjacency[T]{Vertex: n})
	}

	return nil
}

// AppendWeighted adds one weighted edge v -> to.
func (v *Vertex[T]) AppendWeighted(to *Vertex[T], weight float64) error {
	return v.AppendEdges(Adjacency[T]{Vertex: to, Weight: weight})
}

// AppendEdges adds (neighbor, weight) pairs to a weighted vertex.
// Validation is all-or-nothing, as in Append. NaN weights are rejected.
func (v *Vertex[T]) AppendEdges(edges ...Adjacency[T]) error {
	if v.kind != Weighted {
		return fmt.Errorf("%w: AppendEdges on %s vertex %s: %w", ErrStructural, v.kind, v, ErrKindMismatch)
	}

	var merr *multierror.Error
	for i, e := range edges {
		switch {
		case e.Vertex == nil:
			merr = multierror.Append(merr, fmt.Errorf("edge #%d: %w", i, ErrNilVertex))
		case e.Vertex.kind != Weighted:
			merr = multierror.Append(merr, fmt.Errorf("edge #%d to %s is %s: %w", i, e.Vertex, e.Vertex.kind, ErrKindMismatch))
		case math.IsNaN(e.Weight):
			merr = multierror.Append(merr, fmt.Errorf("edge #%d to %s: %w", i, e.Vertex, ErrBadWeight))
		}
	}
	if err := merr.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: AppendEdges on %s: %w", ErrStructural, v, err)
	}

	v.adjacencies = append(v.adjacencies, edges...)

	return nil
}

// ordered returns the adjacency list in the order dictated by d.
// Right shares the backing slice; Left returns a reversed copy.
func (v *Vertex[T]) ordered(d Direction) []Adjacency[T] {
	if d != Left {
		return v.adjacencies
	}

	n := len(v.adjacencies)
	out := make([]Adjacency[T], n)
	for i, a := range v.adjacencies {
		out[n-1-i] = a
	}

	return out
}
