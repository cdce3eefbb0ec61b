package graph

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvwalk/frontier"
)

// walker encapsulates the mutable state of one Explore call.
type walker[T any] struct {
	graph  *Graph[T]
	opts   ExploreOptions
	action Action[T]
	log    *logrus.Entry

	// newFrontier builds the container for each round; swapped in tests.
	newFrontier func(frontier.Discipline) frontier.Frontier[*Vertex[T]]
	front       frontier.Frontier[*Vertex[T]]

	marked []*Vertex[T] // vertices flagged visited by this walk
}

// Explore traverses the graph from start, running an action on every vertex
// removed from the frontier.
//
// The frontier is a Queue for BFS and a Stack for DFS. Neighbors are expanded
// in stored order (RIGHT) or reversed (LEFT), so DFS-RIGHT finishes the first
// child's subtree before the second child; with a level limit only
// neighbors whose level is <= limit are admitted. Outside iterative mode,
// neighbors are marked visited as they are added, so no vertex is queued twice.
//
// Iterative mode restarts from start in rounds: round k pops k vertices, the
// k-th popped vertex is not expanded, and nothing is ever marked visited.
// It is meant for repeated sweeps of trees and does not terminate on graphs
// with cycles unless the action stops it.
//
// Returns:
//   - the action's Outcome (Stop == true) when it ends the walk early;
//   - a zero Outcome when the frontier is exhausted;
//   - ErrOptionViolation, ErrVertexNotFound or ErrPreconditionViolation for bad
//     input, including a level-limited walk reaching a vertex with no level;
//   - any action error, wrapped.
//
// On every return path no vertex is left with Visited() == true.
// Complexity: O(V + E) per pass.
func (g *Graph[T]) Explore(start *Vertex[T], opts ...ExploreOption) (Outcome, error) {
	o, err := buildExploreOptions(opts)
	if err != nil {
		return Outcome{}, err
	}
	if err = g.checkRoot(start); err != nil {
		return Outcome{}, err
	}
	action, err := exploreAction[T](o, g.printVertex)
	if err != nil {
		return Outcome{}, err
	}

	if o.ComputeLevels {
		if err = g.SetLevels(start, WithDirection(o.Direction)); err != nil {
			return Outcome{}, err
		}
	}

	w := g.newWalker(o, action)
	defer func() { g.resetVisited(w.marked) }()

	return w.run(start)
}

func (g *Graph[T]) newWalker(o ExploreOptions, action Action[T]) *walker[T] {
	return &walker[T]{
		graph:  g,
		opts:   o,
		action: action,
		log: g.log.WithFields(logrus.Fields{
			"algorithm": o.Algorithm,
			"direction": o.Direction,
		}),
		newFrontier: frontier.New[*Vertex[T]],
	}
}

// run is the main loop of Explore.
func (w *walker[T]) run(start *Vertex[T]) (Outcome, error) {
	var (
		round  = 1
		popped int // vertices removed in the current round
		quota  int // vertices the current round may remove (iterative mode)
	)

	w.log.WithFields(logrus.Fields{
		"start":       start.String(),
		"level_limit": w.opts.LevelLimit,
		"iterative":   w.opts.Iterative,
	}).Debug("explore started")

	w.front = w.newFrontier(w.opts.Algorithm.discipline())
	w.seed(start)
	quota++

	for !w.front.IsEmpty() {
		v := w.next()

		out, err := w.action(v, w.opts.Arg)
		if err != nil {
			return Outcome{}, fmt.Errorf("graph: action at %s: %w", v, err)
		}
		if out.Stop {
			w.log.WithField("vertex", v.String()).Debug("explore stopped by action")
			return out, nil
		}

		popped++
		if w.opts.Iterative && popped == quota {
			round++
			quota++
			popped = 0
			w.front = w.newFrontier(w.opts.Algorithm.discipline())
			w.seed(start)
			w.log.WithField("round", round).Debug("iterative round restarted")
			continue
		}

		if err = w.expand(v); err != nil {
			return Outcome{}, err
		}
	}

	w.log.Debug("explore exhausted frontier")

	return Outcome{}, nil
}

// seed places the start vertex into the frontier.
func (w *walker[T]) seed(start *Vertex[T]) {
	w.front.Add(start)
	if !w.opts.Iterative {
		w.mark(start)
	}
}

// next removes the following vertex; an empty result from a non-empty
// frontier is a broken invariant.
func (w *walker[T]) next() *Vertex[T] {
	v, ok := w.front.Remove()
	if !ok || v == nil {
		panic(ErrEmptyFrontier)
	}

	return v
}

// expand admits v's neighbors into the frontier. A Stack receives them
// back to front so that, for both disciplines, they leave the frontier in
// the order given by Direction.
func (w *walker[T]) expand(v *Vertex[T]) error {
	adjs := v.ordered(w.opts.Direction)
	lifo := w.opts.Algorithm.discipline() == frontier.LIFO
	for i := range adjs {
		adj := adjs[i]
		if lifo {
			adj = adjs[len(adjs)-1-i]
		}
		n := adj.Vertex
		if n.visited {
			continue
		}
		if w.opts.LevelLimit > 0 {
			lvl, ok := n.Level()
			if !ok {
				return fmt.Errorf("%w: level limit %d set but %s has no level (use WithComputeLevels)",
					ErrPreconditionViolation, w.opts.LevelLimit, n)
			}
			if lvl > w.opts.LevelLimit {
				continue
			}
		}

		w.front.Add(n)
		if !w.opts.Iterative {
			w.mark(n)
		}
	}

	return nil
}

func (w *walker[T]) mark(v *Vertex[T]) {
	v.visited = true
	w.marked = append(w.marked, v)
}
