package graph

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/sirupsen/logrus"
)

// scored pairs a candidate with its heuristic value.
type scored[T any] struct {
	v *Vertex[T]
	h float64
}

// ExploreWithHeuristic performs a hill-climbing walk from start towards seek.
//
// The frontier holds a single vertex. Each step pops it and runs the action
// (by default: print the vertex and stop when it is seek, returning it as
// Outcome.Value). Otherwise all of its direct neighbors become candidates,
// previous candidates are discarded, and they are ranked by
// h(candidate, current, seek, arg): ascending under Minimize, descending
// under Maximize. Among the candidates tied at the best value one is chosen
// uniformly at random and becomes the next frontier. A vertex without
// neighbors sends the walk back to start.
//
// Tie-breaks draw from WithRand or from a source seeded by WithSeed (a fixed
// default seed otherwise), so a given graph, heuristic and seed always yield
// the same walk. Without WithMaxSteps the walk only ends when the action
// stops it.
//
// Returns ErrPreconditionViolation for a nil seek or heuristic,
// ErrVertexNotFound for a foreign start, ErrStepLimit when the step bound
// is exceeded, and wrapped action errors.
func (g *Graph[T]) ExploreWithHeuristic(start, seek *Vertex[T], h Heuristic[T], opts ...HeuristicOption) (Outcome, error) {
	if seek == nil {
		return Outcome{}, fmt.Errorf("%w: heuristic seek: %w", ErrPreconditionViolation, ErrNilVertex)
	}
	if h == nil {
		return Outcome{}, fmt.Errorf("%w: heuristic is nil", ErrPreconditionViolation)
	}
	if err := g.checkRoot(start); err != nil {
		return Outcome{}, err
	}
	o, err := buildHeuristicOptions(opts)
	if err != nil {
		return Outcome{}, err
	}
	action, err := heuristicAction[T](o, g.printUntilSeek)
	if err != nil {
		return Outcome{}, err
	}

	rng := o.Rand
	if rng == nil {
		rng = rngFromSeed(o.Seed)
	}

	log := g.log.WithFields(logrus.Fields{
		"start":     start.String(),
		"seek":      seek.String(),
		"objective": o.Objective,
	})
	log.Debug("heuristic walk started")

	current := start
	for steps := 1; ; steps++ {
		if o.MaxSteps > 0 && steps > o.MaxSteps {
			return Outcome{}, fmt.Errorf("%w: %d steps without reaching %s", ErrStepLimit, o.MaxSteps, seek)
		}

		out, err := action(current, seek, o.Arg)
		if err != nil {
			return Outcome{}, fmt.Errorf("graph: heuristic action at %s: %w", current, err)
		}
		if out.Stop {
			log.WithField("steps", steps).Debug("heuristic walk stopped by action")
			return out, nil
		}

		if current.Degree() == 0 {
			log.WithField("vertex", current.String()).Debug("dead end, restarting from start")
			current = start
			continue
		}

		current = g.choose(current, seek, h, o, rng, log)
	}
}

// choose ranks current's neighbors and picks one of the best at random.
func (g *Graph[T]) choose(current, seek *Vertex[T], h Heuristic[T], o HeuristicOptions, rng *rand.Rand, log *logrus.Entry) *Vertex[T] {
	cands := make([]scored[T], len(current.adjacencies))
	for i, a := range current.adjacencies {
		cands[i] = scored[T]{v: a.Vertex, h: h(a.Vertex, current, seek, o.Arg)}
	}
	sort.SliceStable(cands, func(i, j int) bool {
		if o.Objective == Maximize {
			return cands[i].h > cands[j].h
		}
		return cands[i].h < cands[j].h
	})

	best := cands[0].h
	ties := 1
	for ties < len(cands) && cands[ties].h == best {
		ties++
	}
	pick := cands[pickIndex(rng, ties)].v

	log.WithFields(logrus.Fields{
		"from":  current.String(),
		"to":    pick.String(),
		"score": best,
		"ties":  ties,
	}).Debug("heuristic step")

	return pick
}

// printUntilSeek is the default heuristic action.
func (g *Graph[T]) printUntilSeek(v, seek *Vertex[T], _ any) (Outcome, error) {
	if _, err := g.printVertex(v, nil); err != nil {
		return Outcome{}, err
	}
	if v == seek {
		return Outcome{Stop: true, Value: v}, nil
	}

	return Outcome{}, nil
}
