package frontier

// node is one cell of the doubly-linked sequence backing Queue and Stack.
type node[T any] struct {
	value T
	next  *node[T]
	prev  *node[T]
}

// unlink clears both links so a removed cell does not pin its neighbours.
func (n *node[T]) unlink() {
	n.next = nil
	n.prev = nil
}
