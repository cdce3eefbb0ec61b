package puzzle

import (
	"fmt"
	"strconv"
	"strings"
)

// Size is the side length of the board.
const Size = 3

// Blank is the value that marks the empty cell.
const Blank = 0

// Board is an 8-puzzle position, indexed [row][col].
type Board [Size][Size]int

// Move names the direction the blank slides.
type Move int

const (
	Up Move = iota
	Down
	Left
	Right
)

// Moves lists every Move in generation order.
var Moves = []Move{Up, Down, Left, Right}

func (m Move) String() string {
	switch m {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Move(" + strconv.Itoa(int(m)) + ")"
	}
}

func (m Move) delta() (dr, dc int) {
	switch m {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}

// Validate reports whether b holds each of 0..8 exactly once.
func (b Board) Validate() error {
	var seen [Size * Size]bool
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			t := b[r][c]
			if t < 0 || t >= Size*Size {
				return fmt.Errorf("%w: tile %d at (%d,%d) out of range", ErrInvalidBoard, t, r, c)
			}
			if seen[t] {
				return fmt.Errorf("%w: tile %d repeated at (%d,%d)", ErrInvalidBoard, t, r, c)
			}
			seen[t] = true
		}
	}

	return nil
}

// BlankAt returns the position of the blank, or (-1, -1) if there is none.
func (b Board) BlankAt() (row, col int) {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] == Blank {
				return r, c
			}
		}
	}

	return -1, -1
}

// Move slides the blank one cell in direction m. It returns false, and b
// unchanged, when the blank would leave the board.
func (b Board) Move(m Move) (Board, bool) {
	r, c := b.BlankAt()
	dr, dc := m.delta()
	if r < 0 || (dr == 0 && dc == 0) {
		return b, false
	}
	nr, nc := r+dr, c+dc
	if nr < 0 || nr >= Size || nc < 0 || nc >= Size {
		return b, false
	}
	b[r][c], b[nr][nc] = b[nr][nc], b[r][c]

	return b, true
}

// Successors returns the boards reachable in one move, in Moves order.
func (b Board) Successors() []Board {
	out := make([]Board, 0, len(Moves))
	for _, m := range Moves {
		if next, ok := b.Move(m); ok {
			out = append(out, next)
		}
	}

	return out
}

// String renders the rows separated by '/', the blank shown as '_':
// "238/1_4/765".
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		for c := 0; c < Size; c++ {
			if b[r][c] == Blank {
				sb.WriteByte('_')
				continue
			}
			sb.WriteString(strconv.Itoa(b[r][c]))
		}
	}

	return sb.String()
}
