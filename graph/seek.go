package graph

import (
	"fmt"
)

// Seek explores from start until a visited vertex matches target, and
// reports how many vertices were visited up to and including the match.
//
// Matching uses the predicate given with WithEquality (pointer identity by
// default) and is applied to each visited vertex against target. All
// ExploreOptions apply except WithAction, which Seek replaces with its own
// counting action; each visited vertex is still printed to the graph output.
//
// Returns (visits, true, nil) on a match and (visits, false, nil) when the
// walk ends without one, visits then being the number of vertices seen.
// A nil target is an ErrPreconditionViolation.
func (g *Graph[T]) Seek(start, target *Vertex[T], opts ...ExploreOption) (visits int, found bool, err error) {
	if target == nil {
		return 0, false, fmt.Errorf("%w: Seek target: %w", ErrPreconditionViolation, ErrNilVertex)
	}
	o, err := buildExploreOptions(opts)
	if err != nil {
		return 0, false, err
	}
	eq, err := seekEquality[T](o)
	if err != nil {
		return 0, false, err
	}

	g.log.WithField("target", target.String()).Debug("seeking")

	count := 0
	counter := func(v *Vertex[T], _ any) (Outcome, error) {
		count++
		if _, perr := g.printVertex(v, nil); perr != nil {
			return Outcome{}, perr
		}

		return Outcome{Stop: eq(v, target), Value: count}, nil
	}

	all := make([]ExploreOption, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, WithAction(Action[T](counter)))

	out, err := g.Explore(start, all...)
	if err != nil {
		return count, false, err
	}

	return count, out.Stop, nil
}
