package puzzle

import "github.com/katalvlaran/lvwalk/graph"

// Misplaced counts the tiles of b, blank excluded, that are not where goal
// has them.
func Misplaced(b, goal Board) int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] != Blank && b[r][c] != goal[r][c] {
				n++
			}
		}
	}

	return n
}

// Manhattan sums, over every tile but the blank, the row and column
// distance between its position in b and in goal.
func Manhattan(b, goal Board) int {
	var pos [Size * Size][2]int
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if t := goal[r][c]; t >= 0 && t < Size*Size {
				pos[t] = [2]int{r, c}
			}
		}
	}

	sum := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			t := b[r][c]
			if t == Blank || t < 0 || t >= Size*Size {
				continue
			}
			sum += abs(r-pos[t][0]) + abs(c-pos[t][1])
		}
	}

	return sum
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// MisplacedHeuristic scores a candidate by Misplaced against the seek
// vertex's board. Use it with graph.Minimize.
func MisplacedHeuristic() graph.Heuristic[Board] {
	return func(candidate, _, seek *graph.Vertex[Board], _ any) float64 {
		return float64(Misplaced(candidate.Value(), seek.Value()))
	}
}

// ManhattanHeuristic scores a candidate by Manhattan against the seek
// vertex's board. Use it with graph.Minimize.
func ManhattanHeuristic() graph.Heuristic[Board] {
	return func(candidate, _, seek *graph.Vertex[Board], _ any) float64 {
		return float64(Manhattan(candidate.Value(), seek.Value()))
	}
}

// SameBoard matches vertices by board value.
func SameBoard() graph.Equality[Board] {
	return graph.SameValue[Board]()
}
