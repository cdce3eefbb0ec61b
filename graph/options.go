package graph

import (
	"fmt"
	"math/rand"
)

// ExploreOption configures Explore, Seek and SetLevels.
// Invalid options are recorded and surfaced as ErrOptionViolation when the
// traversal is invoked.
type ExploreOption func(*ExploreOptions)

// ExploreOptions holds the parameters of one traversal.
type ExploreOptions struct {
	// Algorithm picks the frontier: Queue for BFS, Stack for DFS.
	Algorithm Algorithm

	// Direction picks the adjacency expansion order.
	Direction Direction

	// LevelLimit, if > 0, admits only neighbors whose level is <= LevelLimit.
	LevelLimit int

	// ComputeLevels runs SetLevels from the start vertex before exploring.
	ComputeLevels bool

	// Iterative restarts exploration from the start vertex in growing rounds
	// and never marks vertices visited. It does not terminate on cyclic graphs.
	Iterative bool

	// Arg is handed to the action on every call.
	Arg any

	action   any // Action[T], checked against the graph's T at call time
	equality any // Equality[T], used by Seek
	err      error
}

// DefaultExploreOptions returns BFS, RIGHT, no level limit, no level
// computation, single pass, default action.
func DefaultExploreOptions() ExploreOptions {
	return ExploreOptions{
		Algorithm: BFS,
		Direction: Right,
	}
}

// WithAlgorithm selects BFS or DFS.
func WithAlgorithm(a Algorithm) ExploreOption {
	return func(o *ExploreOptions) {
		if a != BFS && a != DFS {
			o.err = fmt.Errorf("%w: unknown algorithm %s", ErrOptionViolation, a)
			return
		}
		o.Algorithm = a
	}
}

// WithDirection selects RIGHT (stored order) or LEFT (reversed order).
func WithDirection(d Direction) ExploreOption {
	return func(o *ExploreOptions) {
		if d != Right && d != Left {
			o.err = fmt.Errorf("%w: unknown direction %s", ErrOptionViolation, d)
			return
		}
		o.Direction = d
	}
}

// WithLevelLimit prunes neighbors whose level exceeds limit.
// Levels start at 1 on the root, so limit must be >= 1.
func WithLevelLimit(limit int) ExploreOption {
	return func(o *ExploreOptions) {
		if limit < 1 {
			o.err = fmt.Errorf("%w: level limit must be >= 1 (%d)", ErrOptionViolation, limit)
			return
		}
		o.LevelLimit = limit
	}
}

// WithComputeLevels runs SetLevels from the start vertex first.
func WithComputeLevels() ExploreOption {
	return func(o *ExploreOptions) { o.ComputeLevels = true }
}

// WithIterative enables round-based re-exploration from the start vertex.
func WithIterative() ExploreOption {
	return func(o *ExploreOptions) { o.Iterative = true }
}

// WithArg sets the argument passed to the action.
func WithArg(arg any) ExploreOption {
	return func(o *ExploreOptions) { o.Arg = arg }
}

// WithAction replaces the default print action. A nil fn keeps the default.
func WithAction[T any](fn Action[T]) ExploreOption {
	return func(o *ExploreOptions) {
		if fn != nil {
			o.action = fn
		}
	}
}

// WithEquality sets the predicate Seek uses to recognise its target.
// A nil fn keeps pointer identity.
func WithEquality[T any](fn Equality[T]) ExploreOption {
	return func(o *ExploreOptions) {
		if fn != nil {
			o.equality = fn
		}
	}
}

func buildExploreOptions(opts []ExploreOption) (ExploreOptions, error) {
	o := DefaultExploreOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// exploreAction resolves the configured action for element type T.
func exploreAction[T any](o ExploreOptions, fallback Action[T]) (Action[T], error) {
	if o.action == nil {
		return fallback, nil
	}
	fn, ok := o.action.(Action[T])
	if !ok {
		return nil, fmt.Errorf("%w: action has type %T, want %T", ErrOptionViolation, o.action, fallback)
	}

	return fn, nil
}

// seekEquality resolves the configured equality for element type T.
func seekEquality[T any](o ExploreOptions) (Equality[T], error) {
	if o.equality == nil {
		return SameVertex[T], nil
	}
	fn, ok := o.equality.(Equality[T])
	if !ok {
		return nil, fmt.Errorf("%w: equality has type %T, want %T", ErrOptionViolation, o.equality, Equality[T](nil))
	}

	return fn, nil
}

// HeuristicOption configures ExploreWithHeuristic.
type HeuristicOption func(*HeuristicOptions)

// HeuristicOptions holds the parameters of one heuristic search.
type HeuristicOptions struct {
	// Objective selects whether low (Minimize) or high (Maximize) scores win.
	Objective Objective

	// Arg is handed to the heuristic and to the action.
	Arg any

	// Seed feeds the tie-break RNG when Rand is nil. Zero selects a fixed
	// default seed, so runs are reproducible unless a seed is given.
	Seed int64

	// Rand, if non-nil, is used for tie-breaks instead of a seeded source.
	Rand *rand.Rand

	// MaxSteps, if > 0, bounds the number of visited vertices.
	MaxSteps int

	action any // HeuristicAction[T]
	err    error
}

// DefaultHeuristicOptions returns Minimize, default seed, unbounded steps.
func DefaultHeuristicOptions() HeuristicOptions {
	return HeuristicOptions{Objective: Minimize}
}

// WithObjective selects Minimize or Maximize.
func WithObjective(obj Objective) HeuristicOption {
	return func(o *HeuristicOptions) {
		if obj != Minimize && obj != Maximize {
			o.err = fmt.Errorf("%w: unknown objective %s", ErrOptionViolation, obj)
			return
		}
		o.Objective = obj
	}
}

// WithHeuristicArg sets the argument passed to the heuristic and the action.
func WithHeuristicArg(arg any) HeuristicOption {
	return func(o *HeuristicOptions) { o.Arg = arg }
}

// WithSeed seeds the tie-break RNG.
func WithSeed(seed int64) HeuristicOption {
	return func(o *HeuristicOptions) { o.Seed = seed }
}

// WithRand supplies the tie-break RNG directly. A nil r keeps the seeded source.
func WithRand(r *rand.Rand) HeuristicOption {
	return func(o *HeuristicOptions) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithMaxSteps bounds the search to n visited vertices (n >= 0, 0 = unbounded).
func WithMaxSteps(n int) HeuristicOption {
	return func(o *HeuristicOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithHeuristicAction replaces the default print-and-compare action.
func WithHeuristicAction[T any](fn HeuristicAction[T]) HeuristicOption {
	return func(o *HeuristicOptions) {
		if fn != nil {
			o.action = fn
		}
	}
}

func buildHeuristicOptions(opts []HeuristicOption) (HeuristicOptions, error) {
	o := DefaultHeuristicOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

func heuristicAction[T any](o HeuristicOptions, fallback HeuristicAction[T]) (HeuristicAction[T], error) {
	if o.action == nil {
		return fallback, nil
	}
	fn, ok := o.action.(HeuristicAction[T])
	if !ok {
		return nil, fmt.Errorf("%w: heuristic action has type %T, want %T", ErrOptionViolation, o.action, fallback)
	}

	return fn, nil
}
