// Package puzzle models the 8-puzzle as a state space for the graph package.
//
// A Board is a comparable 3x3 array with 0 as the blank, so boards can be
// matched by value with graph.SameValue. The package provides:
//
//   - move generation (Board.Move, Board.Successors) in the fixed order
//     Up, Down, Left, Right of the blank;
//   - the misplaced-tile and Manhattan-distance heuristics, both as plain
//     functions and as graph.Heuristic values for ExploreWithHeuristic;
//   - NewTree, the fixed 36-state search tree used by the lvwalk demos,
//     whose only goal state lies four levels below the root;
//   - Generate, which unfolds the full search tree of a board to a given
//     depth without stepping straight back to the parent state.
//
// Search trees are trees of vertices, not graphs of states: a board reached
// along two different paths appears as two vertices.
package puzzle
