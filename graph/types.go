package graph

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/frontier"
)

// Kind tells how a vertex stores its adjacency list.
type Kind int

const (
	// Unweighted vertices hold plain neighbor references.
	Unweighted Kind = iota
	// Weighted vertices hold (neighbor, weight) pairs.
	Weighted
)

// String returns "unweighted" or "weighted".
func (k Kind) String() string {
	switch k {
	case Unweighted:
		return "unweighted"
	case Weighted:
		return "weighted"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Algorithm selects the frontier discipline of Explore.
type Algorithm int

const (
	// BFS explores breadth-first (Queue).
	BFS Algorithm = iota
	// DFS explores depth-first (Stack).
	DFS
)

// String returns "BFS" or "DFS".
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// discipline maps the algorithm onto its frontier.
func (a Algorithm) discipline() frontier.Discipline {
	if a == DFS {
		return frontier.LIFO
	}

	return frontier.FIFO
}

// Direction selects the order in which a vertex's adjacencies are expanded.
type Direction int

const (
	// Right expands adjacencies in stored order.
	Right Direction = iota
	// Left expands adjacencies in reverse stored order.
	Left
)

// String returns "RIGHT" or "LEFT".
func (d Direction) String() string {
	switch d {
	case Right:
		return "RIGHT"
	case Left:
		return "LEFT"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Objective selects whether the heuristic search prefers low or high scores.
type Objective int

const (
	// Minimize prefers the candidate with the smallest heuristic value.
	Minimize Objective = iota
	// Maximize prefers the candidate with the largest heuristic value.
	Maximize
)

// String returns "MINIMIZE" or "MAXIMIZE".
func (o Objective) String() string {
	switch o {
	case Minimize:
		return "MINIMIZE"
	case Maximize:
		return "MAXIMIZE"
	default:
		return fmt.Sprintf("Objective(%d)", int(o))
	}
}

// Outcome is what an action reports for a visited vertex.
// Stop ends the traversal; Value is handed back to the caller of Explore.
type Outcome struct {
	Stop  bool
	Value any
}

// Action runs once per vertex removed from the frontier.
// A non-nil error aborts the traversal and is returned wrapped.
type Action[T any] func(v *Vertex[T], arg any) (Outcome, error)

// HeuristicAction runs once per vertex visited by ExploreWithHeuristic.
type HeuristicAction[T any] func(v, seek *Vertex[T], arg any) (Outcome, error)

// Heuristic scores candidate as the next step from current towards seek.
type Heuristic[T any] func(candidate, current, seek *Vertex[T], arg any) float64

// Equality decides whether a visited vertex matches the sought one.
type Equality[T any] func(visited, target *Vertex[T]) bool

// SameVertex is the default Equality: pointer identity.
func SameVertex[T any](visited, target *Vertex[T]) bool {
	return visited == target
}

// SameValue returns an Equality that compares vertex payloads with ==.
func SameValue[T comparable]() Equality[T] {
	return func(visited, target *Vertex[T]) bool {
		return visited.value == target.value
	}
}
