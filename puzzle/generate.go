package puzzle

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/graph"
)

// Generate unfolds the search tree of start down to depth levels, start
// being level 1. Each vertex gets one child per legal move in Moves order,
// except the move that restores its parent's board.
//
// The returned graph lists vertices in breadth-first order, so the root is
// Vertices()[0]. Level d holds at most 4·3^(d-2) vertices, so keep depth
// small.
func Generate(start Board, depth int, opts ...graph.Option) (*graph.Graph[Board], *graph.Vertex[Board], error) {
	if err := start.Validate(); err != nil {
		return nil, nil, err
	}
	if depth < 1 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrInvalidDepth, depth)
	}

	type node struct {
		v      *graph.Vertex[Board]
		parent *Board
	}

	root := graph.NewVertex(start)
	all := []*graph.Vertex[Board]{root}
	level := []node{{v: root}}

	for d := 2; d <= depth && len(level) > 0; d++ {
		var next []node
		for _, n := range level {
			b := n.v.Value()
			var kids []*graph.Vertex[Board]
			for _, s := range b.Successors() {
				if n.parent != nil && s == *n.parent {
					continue
				}
				kid := graph.NewVertex(s)
				kids = append(kids, kid)
				next = append(next, node{v: kid, parent: &b})
			}
			if err := n.v.Append(kids...); err != nil {
				return nil, nil, fmt.Errorf("puzzle: expand %s: %w", b, err)
			}
			all = append(all, kids...)
		}
		level = next
	}

	g, err := graph.NewGraph(fmt.Sprintf("Puzzle %s depth %d", start, depth), all, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("puzzle: %w", err)
	}

	return g, root, nil
}
