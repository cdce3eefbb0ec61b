package graph

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvwalk/frontier"
)

// SetLevels assigns BFS levels from root: root gets level 1 and every
// first-discovered neighbor gets its parent's level + 1.
//
// A Queue is used regardless of any Algorithm option, since a level is a
// breadth distance. Only the Direction option is honoured (discovery order).
// Vertices unreachable from root keep whatever level they had before; call
// ClearLevels first when that matters.
//
// Visited flags are reset before returning.
// Complexity: O(V + E).
func (g *Graph[T]) SetLevels(root *Vertex[T], opts ...ExploreOption) error {
	o, err := buildExploreOptions(opts)
	if err != nil {
		return err
	}
	if err = g.checkRoot(root); err != nil {
		return err
	}

	marked := make([]*Vertex[T], 0, len(g.vertices))
	defer func() { g.resetVisited(marked) }()

	log := g.log.WithField("root", root.String())
	log.Debug("computing levels")

	q := frontier.NewQueue[*Vertex[T]]()
	root.visited = true
	root.level = 1
	marked = append(marked, root)
	q.Enqueue(root)

	for !q.IsEmpty() {
		v, ok := q.Dequeue()
		if !ok {
			panic(ErrEmptyFrontier)
		}
		log.WithFields(logrus.Fields{"vertex": v.String(), "level": v.level}).Debug("level assigned")

		for _, adj := range v.ordered(o.Direction) {
			n := adj.Vertex
			if n.visited {
				continue
			}
			n.visited = true
			n.level = v.level + 1
			marked = append(marked, n)
			q.Enqueue(n)
		}
	}

	return nil
}
