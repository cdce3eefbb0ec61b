// Package frontier provides the ordered containers that drive a graph traversal:
// a FIFO Queue (breadth-first) and a LIFO Stack (depth-first).
//
// What
//
//   - Frontier[T] is the contract shared by both containers:
//     Add, Remove, Peek, Size, IsEmpty.
//   - Queue[T] removes the earliest-added element.
//   - Stack[T] removes the most recently added element.
//   - New[T](d) selects one of them by Discipline at traversal start.
//
// Both containers are backed by a doubly-linked sequence of nodes, so Add and
// Remove run in O(1) regardless of size. There is no capacity limit.
//
// Concurrency
//
//	Containers are owned by a single traversal call and are not safe for
//	concurrent use.
//
// Usage
//
//	q := frontier.New[string](frontier.FIFO)
//	q.Add("a")
//	q.Add("b")
//	v, _ := q.Remove() // "a"
package frontier
