package graph

import "errors"

// Sentinel errors for graph construction and traversal.
var (
	// ErrStructural wraps every construction-time or edge-insertion failure.
	// It is never recoverable for the call that produced it.
	ErrStructural = errors.New("graph: structural violation")

	// ErrNilVertex indicates a nil *Vertex where a vertex was required.
	ErrNilVertex = errors.New("graph: vertex is nil")

	// ErrKindMismatch indicates a weighted vertex where an unweighted one was
	// expected, or vice versa.
	ErrKindMismatch = errors.New("graph: vertex kind mismatch")

	// ErrDuplicateVertex indicates the same vertex was listed twice.
	ErrDuplicateVertex = errors.New("graph: duplicate vertex")

	// ErrBadWeight indicates a NaN edge weight.
	ErrBadWeight = errors.New("graph: bad edge weight")

	// ErrVertexNotFound indicates a traversal root that is not part of the graph.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrPreconditionViolation indicates a call made without a required
	// argument (nil target, nil heuristic) or a level-limited traversal that
	// reached a vertex with no level.
	ErrPreconditionViolation = errors.New("graph: precondition violation")

	// ErrOptionViolation is returned when an invalid option is supplied.
	ErrOptionViolation = errors.New("graph: invalid option supplied")

	// ErrNegativeWeight is returned by ShortestPath when any edge weight is negative.
	ErrNegativeWeight = errors.New("graph: negative edge weight encountered")

	// ErrNoLabel is returned by PathFrom when the source carries no label.
	ErrNoLabel = errors.New("graph: vertex has no path label")

	// ErrLabelCycle is returned by PathFrom when next-hops loop back on themselves.
	ErrLabelCycle = errors.New("graph: next-hop labels form a cycle")

	// ErrStepLimit is returned by ExploreWithHeuristic when WithMaxSteps is exceeded.
	ErrStepLimit = errors.New("graph: step limit reached")
)

// ErrEmptyFrontier is the panic value raised when a frontier reports itself
// non-empty yet yields no element. It signals a programming error.
var ErrEmptyFrontier = errors.New("graph: frontier reported non-empty but yielded nothing")
