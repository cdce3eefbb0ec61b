package frontier

import (
	"fmt"
	"strings"
)

// Discipline selects the removal order of a Frontier.
type Discipline int

const (
	// FIFO removes elements in insertion order (Queue).
	FIFO Discipline = iota
	// LIFO removes the most recently inserted element first (Stack).
	LIFO
)

// String returns "FIFO" or "LIFO".
func (d Discipline) String() string {
	switch d {
	case FIFO:
		return "FIFO"
	case LIFO:
		return "LIFO"
	default:
		return fmt.Sprintf("Discipline(%d)", int(d))
	}
}

// Frontier is an ordered container of discovered-but-unprocessed elements.
type Frontier[T any] interface {
	// Add inserts value into the container.
	Add(value T)

	// Remove takes the next element out of the container.
	// ok is false when the container is empty.
	Remove() (value T, ok bool)

	// Peek returns the next element without removing it.
	Peek() (value T, ok bool)

	// Size reports the number of stored elements.
	Size() int

	// IsEmpty reports whether Size() == 0.
	IsEmpty() bool

	// Values returns a snapshot of the elements in removal order.
	Values() []T
}

// New returns an empty Frontier for the given discipline.
// Any value other than LIFO yields a Queue.
func New[T any](d Discipline) Frontier[T] {
	if d == LIFO {
		return NewStack[T]()
	}

	return NewQueue[T]()
}

// format renders values as "[a b c]".
func format[T any](values []T) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')

	return sb.String()
}
