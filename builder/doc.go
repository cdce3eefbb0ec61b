// Package builder assembles lvwalk graphs from deterministic topology
// constructors. It keeps fixtures for tests, examples and the CLI short and
// reproducible.
//
// The package offers the following key components:
//
//   - Orchestrators:
//     – BuildGraph:          runs constructors, returns *graph.Graph[string].
//     – BuildWeightedGraph:  same for *graph.WeightedGraph[string].
//     – Lookup:              find a built vertex by its ID.
//   - Constructors (Constructor values, composable over shared IDs):
//     – Path, Cycle, Star, Complete, Grid, Tree, RandomSparse, Edges.
//   - Configuration (BuilderOption):
//     – WithIDScheme / WithLetterIDs.
//     – WithSeed / WithRand:        RNG for RandomSparse and weight draws.
//     – WithWeightFn / WithConstantWeight / WithIntegerWeights.
//     – WithDirected:               one adjacency entry per edge instead of two.
//     – WithGraphOptions:           logger/output forwarded to the graph.
//
// Vertices carry their string ID as payload. Edges are appended to the
// vertices' adjacency lists in the order each constructor documents, which
// fixes traversal order: BFS on Tree(2, 3) built WithDirected visits
// "0".."6" in sequence.
//
// Guarantees:
//
//   - Same options, seed and constructor order give identical graphs.
//   - Re-emitting an existing vertex or edge is a no-op.
//   - Invalid options are all reported at once (ErrOptionViolation);
//     invalid sizes fail before anything is built (ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource).
package builder
