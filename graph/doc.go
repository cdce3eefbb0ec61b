// Package graph is a small traversal engine: one exploration loop,
// parameterised by frontier discipline, direction and stopping strategy,
// drives breadth-first search, depth-first search, level assignment,
// destination-rooted path labelling and hill-climbing search.
//
// What
//
//   - Vertex[T]: a payload plus an append-only adjacency list. A vertex is
//     either Unweighted (plain neighbor references) or Weighted
//     ((neighbor, weight) pairs); the kind is fixed at creation.
//   - Graph[T]: a labelled collection of vertices of one kind.
//     NewGraph / NewWeightedGraph reject nil, duplicate or wrong-kind vertices.
//   - Explore:   unified BFS/DFS walk with RIGHT/LEFT direction, optional
//     level limit, level pre-computation and iterative re-exploration.
//   - SetLevels: BFS layering from a root (root = level 1).
//   - Seek:      Explore with a counting action that stops on a match.
//   - ShortestPath (WeightedGraph): FIFO label propagation from a destination.
//   - ExploreWithHeuristic: one-step-lookahead greedy walk with seeded
//     random tie-breaks.
//
// Scratch state
//
//	visited, level and label live on the vertices and belong to the
//	traversal that is running. Every operation resets visited flags before
//	returning, on every exit path. Levels and labels persist until the next
//	SetLevels/ClearLevels or ShortestPath call.
//
// Concurrency
//
//	Traversals mutate the vertices in place. A Graph supports exactly one
//	caller at a time; there is no locking.
//
// Errors
//
//   - ErrStructural (wrapping ErrNilVertex, ErrKindMismatch,
//     ErrDuplicateVertex, ErrBadWeight) from constructors and Append*.
//   - ErrPreconditionViolation for missing targets/heuristics and for
//     level-limited walks over vertices without a level.
//   - ErrVertexNotFound, ErrOptionViolation, ErrNegativeWeight, ErrNoLabel,
//     ErrLabelCycle, ErrStepLimit.
//   - A frontier that reports non-empty but yields nothing panics with
//     ErrEmptyFrontier.
//
// Usage
//
//	v1, v2, v3 := graph.NewVertex(1), graph.NewVertex(2), graph.NewVertex(3)
//	_ = v1.Append(v2, v3)
//	g, err := graph.NewGraph("tree", []*graph.Vertex[int]{v1, v2, v3})
//	if err != nil {
//		// errors.Is(err, graph.ErrStructural)
//	}
//	_, _ = g.Explore(v1, graph.WithAlgorithm(graph.DFS), graph.WithDirection(graph.Left))
//	visits, found, _ := g.Seek(v1, v3)
package graph
