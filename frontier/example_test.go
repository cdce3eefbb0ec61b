package frontier_test

import (
	"fmt"

	"github.com/katalvlaran/lvwalk/frontier"
)

// ExampleNew shows how the same calls produce breadth-first vs depth-first order.
func ExampleNew() {
	for _, d := range []frontier.Discipline{frontier.FIFO, frontier.LIFO} {
		f := frontier.New[string](d)
		f.Add("v2")
		f.Add("v3")
		f.Add("v4")

		order := make([]string, 0, f.Size())
		for !f.IsEmpty() {
			v, _ := f.Remove()
			order = append(order, v)
		}
		fmt.Println(d, order)
	}
	// Output:
	// FIFO [v2 v3 v4]
	// LIFO [v4 v3 v2]
}
