package frontier

// Stack is a LIFO Frontier. The zero value is an empty stack ready to use.
type Stack[T any] struct {
	top  *node[T]
	size int
}

// Compile-time check that Stack satisfies Frontier.
var _ Frontier[int] = (*Stack[int])(nil)

// NewStack returns an empty Stack.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push places value on top of the stack. Complexity: O(1).
func (s *Stack[T]) Push(value T) {
	n := &node[T]{value: value, next: s.top}
	if s.top != nil {
		s.top.prev = n
	}
	s.top = n
	s.size++
}

// Pop removes and returns the top element. Complexity: O(1).
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if s.top == nil {
		return zero, false
	}

	n := s.top
	s.top = n.next
	if s.top != nil {
		s.top.prev = nil
	}
	n.unlink()
	s.size--

	return n.value, true
}

// Add is an alias for Push.
func (s *Stack[T]) Add(value T) { s.Push(value) }

// Remove is an alias for Pop.
func (s *Stack[T]) Remove() (T, bool) { return s.Pop() }

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if s.top == nil {
		var zero T
		return zero, false
	}

	return s.top.value, true
}

// Size reports the number of stacked elements.
func (s *Stack[T]) Size() int { return s.size }

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool { return s.size == 0 }

// Values returns the stacked elements from top to bottom.
func (s *Stack[T]) Values() []T {
	out := make([]T, 0, s.size)
	for n := s.top; n != nil; n = n.next {
		out = append(out, n.value)
	}

	return out
}

// String renders the stack top-first, e.g. "[3 2 1]".
func (s *Stack[T]) String() string { return format(s.Values()) }
