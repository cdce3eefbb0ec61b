package frontier

// Queue is a FIFO Frontier. The zero value is an empty queue ready to use.
type Queue[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

// Compile-time check that Queue satisfies Frontier.
var _ Frontier[int] = (*Queue[int])(nil)

// NewQueue returns an empty Queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Enqueue appends value at the tail. Complexity: O(1).
func (q *Queue[T]) Enqueue(value T) {
	n := &node[T]{value: value}
	if q.tail == nil {
		q.head = n
		q.tail = n
	} else {
		n.prev = q.tail
		q.tail.next = n
		q.tail = n
	}
	q.size++
}

// Dequeue removes and returns the head element. Complexity: O(1).
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if q.head == nil {
		return zero, false
	}

	n := q.head
	q.head = n.next
	if q.head != nil {
		q.head.prev = nil
	} else {
		q.tail = nil
	}
	n.unlink()
	q.size--

	return n.value, true
}

// Add is an alias for Enqueue.
func (q *Queue[T]) Add(value T) { q.Enqueue(value) }

// Remove is an alias for Dequeue.
func (q *Queue[T]) Remove() (T, bool) { return q.Dequeue() }

// Peek returns the head element without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if q.head == nil {
		var zero T
		return zero, false
	}

	return q.head.value, true
}

// Size reports the number of queued elements.
func (q *Queue[T]) Size() int { return q.size }

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool { return q.size == 0 }

// Values returns the queued elements from head to tail.
func (q *Queue[T]) Values() []T {
	out := make([]T, 0, q.size)
	for n := q.head; n != nil; n = n.next {
		out = append(out, n.value)
	}

	return out
}

// String renders the queue head-first, e.g. "[1 2 3]".
func (q *Queue[T]) String() string { return format(q.Values()) }
