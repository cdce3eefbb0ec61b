package puzzle

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/graph"
)

// TreeLabel is the label of the graph built by NewTree.
const TreeLabel = "Puzzle"

// GoalBoard is the state the demo tree is searched for.
var GoalBoard = Board{{2, 3, 8}, {1, 4, 5}, {7, 0, 6}}

// treeBoards holds the demo states; index i is vertex i+1 of the tree.
var treeBoards = [...]Board{
	// level 1
	{{2, 3, 8}, {1, 0, 4}, {7, 6, 5}},
	// level 2
	{{2, 3, 8}, {0, 1, 4}, {7, 6, 5}},
	{{2, 0, 8}, {1, 3, 4}, {7, 6, 5}},
	{{2, 3, 8}, {1, 4, 0}, {7, 6, 5}},
	{{2, 3, 8}, {1, 6, 4}, {7, 0, 5}},
	// level 3
	{{0, 3, 8}, {2, 1, 4}, {7, 6, 5}},
	{{2, 3, 8}, {7, 1, 4}, {0, 6, 5}},
	{{2, 3, 8}, {1, 0, 4}, {7, 6, 5}},
	{{0, 2, 8}, {1, 3, 4}, {7, 6, 5}},
	{{2, 3, 8}, {1, 0, 4}, {7, 6, 5}},
	{{2, 8, 0}, {1, 3, 4}, {7, 6, 5}},
	{{2, 3, 0}, {1, 4, 8}, {7, 6, 5}},
	{{2, 3, 8}, {1, 4, 5}, {7, 6, 0}},
	{{2, 3, 8}, {1, 0, 4}, {7, 6, 5}},
	{{2, 3, 8}, {1, 6, 4}, {0, 7, 5}},
	{{2, 3, 8}, {1, 6, 4}, {7, 5, 0}},
	{{2, 3, 8}, {1, 0, 4}, {7, 6, 5}},
	// level 4
	{{2, 3, 8}, {0, 1, 4}, {7, 6, 5}},
	{{3, 0, 8}, {2, 1, 4}, {7, 6, 5}},
	{{2, 3, 8}, {0, 1, 4}, {7, 6, 5}},
	{{2, 3, 8}, {0, 1, 4}, {7, 6, 5}},
	{{2, 3, 8}, {0, 1, 4}, {7, 6, 5}},
	{{2, 0, 8}, {1, 3, 4}, {7, 6, 5}},
	{{2, 3, 8}, {1, 4, 0}, {7, 6, 5}},
	{{2, 3, 8}, {1, 6, 4}, {7, 0, 5}},
	{{1, 2, 8}, {0, 3, 4}, {7, 6, 5}},
	{{2, 0, 8}, {1, 3, 4}, {7, 6, 5}},
	{{2, 3, 8}, {0, 1, 4}, {7, 6, 5}},
	{{2, 0, 8}, {1, 3, 4}, {7, 6, 5}},
	{{2, 3, 8}, {1, 4, 0}, {7, 6, 5}},
	{{2, 3, 8}, {1, 6, 4}, {7, 0, 5}},
	{{2, 0, 8}, {1, 3, 4}, {7, 6, 5}},
	{{2, 8, 4}, {1, 3, 0}, {7, 6, 5}},
	{{2, 0, 3}, {1, 4, 8}, {7, 6, 5}},
	{{2, 3, 8}, {1, 4, 0}, {7, 6, 5}},
	{{2, 3, 8}, {1, 4, 5}, {7, 0, 6}},
}

// treeChildren maps a 1-based vertex number to its children, in order.
var treeChildren = map[int][]int{
	1:  {2, 3, 4, 5},
	2:  {6, 7, 8},
	3:  {9, 10, 11},
	4:  {12, 13, 14},
	5:  {15, 16, 17},
	6:  {18, 19},
	7:  {20, 21},
	8:  {22, 23, 24, 25},
	9:  {26, 27},
	10: {28, 29, 30, 31},
	11: {32, 33},
	12: {34, 35},
	13: {36},
}

// Tree is the demo search tree together with its notable vertices.
type Tree struct {
	Graph *graph.Graph[Board]

	// Root is the starting state.
	Root *graph.Vertex[Board]

	// Goal is the vertex of the tree that holds GoalBoard.
	Goal *graph.Vertex[Board]

	// Target is a detached vertex holding GoalBoard, for value-based Seek.
	Target *graph.Vertex[Board]

	vertices []*graph.Vertex[Board]
}

// NewTree builds the 36-vertex demo tree. The only vertex equal to
// GoalBoard is the single child of vertex 13, at level 4.
func NewTree(opts ...graph.Option) (*Tree, error) {
	vs := make([]*graph.Vertex[Board], len(treeBoards))
	for i, b := range treeBoards {
		vs[i] = graph.NewVertex(b)
	}
	for parent := 1; parent <= len(vs); parent++ {
		kids := treeChildren[parent]
		if len(kids) == 0 {
			continue
		}
		children := make([]*graph.Vertex[Board], len(kids))
		for i, k := range kids {
			children[i] = vs[k-1]
		}
		if err := vs[parent-1].Append(children...); err != nil {
			return nil, fmt.Errorf("puzzle: vertex %d: %w", parent, err)
		}
	}

	g, err := graph.NewGraph(TreeLabel, vs, opts...)
	if err != nil {
		return nil, fmt.Errorf("puzzle: %w", err)
	}

	return &Tree{
		Graph:    g,
		Root:     vs[0],
		Goal:     vs[len(vs)-1],
		Target:   graph.NewVertex(GoalBoard),
		vertices: vs,
	}, nil
}

// Vertex returns the tree vertex with the given 1-based number, or nil.
func (t *Tree) Vertex(n int) *graph.Vertex[Board] {
	if n < 1 || n > len(t.vertices) {
		return nil
	}

	return t.vertices[n-1]
}
