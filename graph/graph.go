package graph

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
)

// Option configures a Graph at construction time.
type Option func(*Options)

// Options holds the ambient collaborators of a Graph.
type Options struct {
	// Logger receives Debug-level traversal diagnostics.
	Logger *logrus.Entry

	// Output receives the lines printed by the default actions and by
	// ShowAdjacencies.
	Output io.Writer
}

// DefaultOptions returns Options that log through logrus.StandardLogger()
// and print to os.Stdout.
func DefaultOptions() Options {
	return Options{
		Logger: logrus.NewEntry(logrus.StandardLogger()),
		Output: os.Stdout,
	}
}

// WithLogger sets the logger used for traversal diagnostics.
// A nil entry keeps the default.
func WithLogger(l *logrus.Entry) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOutput sets the writer used by default actions and ShowAdjacencies.
// A nil writer keeps the default.
func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		if w != nil {
			o.Output = w
		}
	}
}

// Graph is a labelled collection of vertices of a single Kind.
//
// The graph holds references to caller-created vertices; adjacency entries
// point into the same collection. Topology only grows, through the vertices'
// Append methods. A Graph is not safe for concurrent traversals: every
// operation mutates per-vertex scratch state and resets it before returning.
type Graph[T any] struct {
	label    string
	kind     Kind
	vertices []*Vertex[T]
	index    map[*Vertex[T]]int

	log *logrus.Entry
	out io.Writer
}

// WeightedGraph is a Graph whose vertices carry weighted adjacencies.
// It adds destination-rooted path labelling on top of the common traversals.
type WeightedGraph[T any] struct {
	*Graph[T]
}

// NewGraph builds an unweighted graph named label over vertices.
//
// Every vertex must be non-nil, unweighted and listed once. All offending
// entries are reported together; the returned error wraps ErrStructural
// and no graph is created.
func NewGraph[T any](label string, vertices []*Vertex[T], opts ...Option) (*Graph[T], error) {
	return newGraph(label, Unweighted, vertices, opts)
}

// NewWeightedGraph builds a weighted graph named label over vertices.
// Validation mirrors NewGraph with Weighted as the required kind.
func NewWeightedGraph[T any](label string, vertices []*Vertex[T], opts ...Option) (*WeightedGraph[T], error) {
	g, err := newGraph(label, Weighted, vertices, opts)
	if err != nil {
		return nil, err
	}

	return &WeightedGraph[T]{Graph: g}, nil
}

func newGraph[T any](label string, kind Kind, vertices []*Vertex[T], opts []Option) (*Graph[T], error) {
	var merr *multierror.Error
	index := make(map[*Vertex[T]]int, len(vertices))
	for i, v := range vertices {
		switch {
		case v == nil:
			merr = multierror.Append(merr, fmt.Errorf("vertex #%d: %w", i, ErrNilVertex))
		case v.kind != kind:
			merr = multierror.Append(merr, fmt.Errorf("vertex #%d %s is %s, want %s: %w", i, v, v.kind, kind, ErrKindMismatch))
		default:
			if j, dup := index[v]; dup {
				merr = multierror.Append(merr, fmt.Errorf("vertex #%d %s already listed at #%d: %w", i, v, j, ErrDuplicateVertex))
				continue
			}
			index[v] = i
		}
	}
	if err := merr.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("%w: graph %q: %w", ErrStructural, label, err)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	vs := make([]*Vertex[T], len(vertices))
	copy(vs, vertices)

	return &Graph[T]{
		label:    label,
		kind:     kind,
		vertices: vs,
		index:    index,
		log:      o.Logger.WithField("graph", label),
		out:      o.Output,
	}, nil
}

// Label returns the graph's name.
func (g *Graph[T]) Label() string { return g.label }

// Kind reports whether the graph is weighted.
func (g *Graph[T]) Kind() Kind { return g.kind }

// Len returns the number of vertices.
func (g *Graph[T]) Len() int { return len(g.vertices) }

// Vertices returns the vertices in construction order. The slice is a copy;
// the vertices are shared.
func (g *Graph[T]) Vertices() []*Vertex[T] {
	out := make([]*Vertex[T], len(g.vertices))
	copy(out, g.vertices)

	return out
}

// Contains reports whether v belongs to the graph.
func (g *Graph[T]) Contains(v *Vertex[T]) bool {
	_, ok := g.index[v]
	return ok
}

// Logger returns the graph-scoped logger.
func (g *Graph[T]) Logger() *logrus.Entry { return g.log }

// Adjacencies renders one line per vertex with its adjacency set:
//
//	Adjacencies of tree:
//	(1) -> {(2), (3)}
func (g *Graph[T]) Adjacencies() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Adjacencies of %s:\n", g.label)
	for _, v := range g.vertices {
		parts := make([]string, len(v.adjacencies))
		for i, a := range v.adjacencies {
			parts[i] = a.format(g.kind)
		}
		fmt.Fprintf(&sb, "%s -> {%s}\n", v, strings.Join(parts, ", "))
	}

	return sb.String()
}

// ShowAdjacencies writes Adjacencies() followed by a blank line to the output.
func (g *Graph[T]) ShowAdjacencies() error {
	_, err := fmt.Fprintln(g.out, g.Adjacencies())
	return err
}

// ClearLevels forgets every level assigned by SetLevels.
func (g *Graph[T]) ClearLevels() {
	for _, v := range g.vertices {
		v.level = 0
	}
}

// checkRoot validates a traversal root.
func (g *Graph[T]) checkRoot(v *Vertex[T]) error {
	if v == nil {
		return fmt.Errorf("%w: %w", ErrPreconditionViolation, ErrNilVertex)
	}
	if !g.Contains(v) {
		return fmt.Errorf("%w: %s in graph %q", ErrVertexNotFound, v, g.label)
	}

	return nil
}

// resetVisited clears the visited flag on every vertex of the graph and on
// every extra vertex a traversal marked (neighbors appended after
// construction may live outside the collection).
func (g *Graph[T]) resetVisited(extra []*Vertex[T]) {
	for _, v := range g.vertices {
		v.visited = false
	}
	for _, v := range extra {
		v.visited = false
	}
}

// printVertex is the default Explore action: print and continue.
func (g *Graph[T]) printVertex(v *Vertex[T], _ any) (Outcome, error) {
	if _, err := fmt.Fprintf(g.out, "  %s\n", v); err != nil {
		return Outcome{}, err
	}

	return Outcome{}, nil
}
