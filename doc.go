// Package lvwalk is a small engine for walking graphs: one exploration loop,
// parameterized by frontier discipline and direction, gives breadth-first
// and depth-first search, level assignment, target seeking, destination
// labelling and hill climbing over the same vertex representation.
//
// 🚀 What is in the box?
//
//	• frontier/ - Queue (FIFO) and Stack (LIFO) over a doubly-linked list
//	• graph/    - Vertex, Graph, WeightedGraph and every traversal:
//	              Explore, SetLevels, Seek, ShortestPath, PathFrom,
//	              ExploreWithHeuristic
//	• builder/  - deterministic fixtures: path, cycle, star, complete,
//	              grid, k-ary tree, random sparse, explicit edge lists
//	• puzzle/   - the 8-puzzle as a state space, with heuristics
//	• cmd/lvwalk - the demos behind a cobra CLI
//
// ✨ Ground rules
//
//   - Vertices are created by the caller and shared by reference; topology
//     only grows, through Vertex.Append and Vertex.AppendEdges.
//   - Traversal scratch state (visited flags) is reset before every
//     operation returns, on every exit path.
//   - Traversals are single-threaded; one graph, one walk at a time.
//   - Diagnostics go to a logrus entry at Debug level; printed vertices go
//     to the graph's output writer.
//
// Quick example:
//
//	v1, v2, v3 := graph.NewVertex(1), graph.NewVertex(2), graph.NewVertex(3)
//	_ = v1.Append(v2, v3)
//	g, _ := graph.NewGraph("tree", []*graph.Vertex[int]{v1, v2, v3})
//	_, _ = g.Explore(v1, graph.WithAlgorithm(graph.DFS))
//
//	go install github.com/katalvlaran/lvwalk/cmd/lvwalk@latest
package lvwalk
