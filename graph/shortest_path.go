package graph

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvwalk/frontier"
)

// ShortestPath labels every vertex that can reach destiny with the cheapest
// route found so far: Label{NextHop, Cost}, where NextHop is the neighbor to
// move to and Cost the accumulated weight to destiny.
//
// Labelling starts at destiny ({nil, 0}) and spreads through its adjacencies
// in FIFO order, so adjacency entries are read as "neighbor can reach v at
// weight w"; build edges in both directions for undirected graphs.
// For each dequeued v and adjacency (n, w) the candidate is {v, cost(v)+w}:
//   - an unlabelled n takes the candidate and is enqueued;
//   - a labelled n takes it only if strictly cheaper, and is NOT enqueued again.
//
// Because improvements are never re-propagated, the result is exact for
// uniform weights but may be sub-optimal for general weights: a vertex
// relaxed after it was dequeued leaves its own dependants with stale costs.
// This is a best-effort labelling, not Dijkstra.
//
// Previous labels are cleared first, on the graph's vertices and on every
// vertex their adjacencies lead to. Negative weights anywhere in that set are
// rejected with ErrNegativeWeight before any label is written.
// Complexity: O(V + E).
func (g *WeightedGraph[T]) ShortestPath(destiny *Vertex[T]) error {
	if err := g.checkRoot(destiny); err != nil {
		return err
	}
	all := g.reach()
	for _, v := range all {
		for _, a := range v.adjacencies {
			if a.Weight < 0 {
				return fmt.Errorf("%w: %s -> %s (%g)", ErrNegativeWeight, v, a.Vertex, a.Weight)
			}
		}
	}
	for _, v := range all {
		v.label = nil
	}

	log := g.log.WithField("destiny", destiny.String())
	log.Debug("labelling shortest paths")

	q := frontier.NewQueue[*Vertex[T]]()
	destiny.label = &Label[T]{}
	q.Enqueue(destiny)

	for !q.IsEmpty() {
		v, ok := q.Dequeue()
		if !ok {
			panic(ErrEmptyFrontier)
		}

		for _, adj := range v.adjacencies {
			n := adj.Vertex
			cand := Label[T]{NextHop: v, Cost: v.label.Cost + adj.Weight}
			switch {
			case n.label == nil:
				n.label = &cand
				q.Enqueue(n)
			case cand.Cost < n.label.Cost:
				log.WithFields(logrus.Fields{
					"vertex": n.String(),
					"from":   n.label.Cost,
					"to":     cand.Cost,
					"via":    v.String(),
				}).Debug("label relaxed")
				*n.label = cand
			}
		}
	}

	return nil
}

// PathFrom follows next-hop labels from source to the destination of the
// last ShortestPath run. It returns the vertices visited (source first,
// destination last) and the cost recorded on source's label.
//
// ErrNoLabel is returned for an unlabelled source, ErrLabelCycle if the
// next-hops loop.
func (g *WeightedGraph[T]) PathFrom(source *Vertex[T]) ([]*Vertex[T], float64, error) {
	if source == nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrPreconditionViolation, ErrNilVertex)
	}
	if source.label == nil {
		return nil, 0, fmt.Errorf("%w: %s", ErrNoLabel, source)
	}

	path := []*Vertex[T]{source}
	seen := map[*Vertex[T]]bool{source: true}
	for cur := source; cur.label.NextHop != nil; {
		cur = cur.label.NextHop
		if seen[cur] {
			return nil, 0, fmt.Errorf("%w: from %s at %s", ErrLabelCycle, source, cur)
		}
		if cur.label == nil {
			return nil, 0, fmt.Errorf("%w: %s on the path from %s", ErrNoLabel, cur, source)
		}
		seen[cur] = true
		path = append(path, cur)
	}

	return path, source.label.Cost, nil
}

// reach returns the graph's vertices followed by every vertex reachable
// from them through adjacencies that is not itself listed in the graph.
// Topology only grows, so this covers every vertex an earlier run labelled.
func (g *WeightedGraph[T]) reach() []*Vertex[T] {
	all := make([]*Vertex[T], len(g.vertices))
	copy(all, g.vertices)
	seen := make(map[*Vertex[T]]bool, len(all))
	for _, v := range all {
		seen[v] = true
	}
	for i := 0; i < len(all); i++ {
		for _, a := range all[i].adjacencies {
			if !seen[a.Vertex] {
				seen[a.Vertex] = true
				all = append(all, a.Vertex)
			}
		}
	}

	return all
}
