package frontier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvwalk/frontier"
)

// TestQueue_FIFO verifies that elements leave the queue in insertion order.
func TestQueue_FIFO(t *testing.T) {
	q := frontier.NewQueue[int]()
	require.True(t, q.IsEmpty())

	for i := 1; i <= 3; i++ {
		q.Add(i)
	}
	require.Equal(t, 3, q.Size())
	require.Equal(t, []int{1, 2, 3}, q.Values())

	head, ok := q.Peek()
	require.True(t, ok)
	require.Equal(t, 1, head)
	require.Equal(t, 3, q.Size(), "Peek must not remove")

	for want := 1; want <= 3; want++ {
		got, ok := q.Remove()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	require.True(t, q.IsEmpty())

	_, ok = q.Remove()
	assert.False(t, ok, "Remove on empty queue")
	_, ok = q.Peek()
	assert.False(t, ok, "Peek on empty queue")
}

// TestQueue_ReuseAfterDrain checks that head/tail are reset once the queue empties.
func TestQueue_ReuseAfterDrain(t *testing.T) {
	var q frontier.Queue[string]
	q.Enqueue("a")
	_, _ = q.Dequeue()
	q.Enqueue("b")
	q.Enqueue("c")

	require.Equal(t, "[b c]", q.String())
	v, _ := q.Dequeue()
	require.Equal(t, "b", v)
}

// TestStack_LIFO verifies that the most recently pushed element leaves first.
func TestStack_LIFO(t *testing.T) {
	s := frontier.NewStack[int]()
	for i := 1; i <= 3; i++ {
		s.Add(i)
	}
	require.Equal(t, []int{3, 2, 1}, s.Values())
	require.Equal(t, "[3 2 1]", s.String())

	top, ok := s.Peek()
	require.True(t, ok)
	require.Equal(t, 3, top)

	for want := 3; want >= 1; want-- {
		got, ok := s.Remove()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok = s.Pop()
	assert.False(t, ok)
	assert.Equal(t, 0, s.Size())
}

// TestNew_SelectsDiscipline ensures New dispatches on Discipline.
func TestNew_SelectsDiscipline(t *testing.T) {
	cases := []struct {
		d     frontier.Discipline
		first int
		name  string
	}{
		{frontier.FIFO, 1, "FIFO"},
		{frontier.LIFO, 2, "LIFO"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := frontier.New[int](tc.d)
			f.Add(1)
			f.Add(2)
			got, ok := f.Remove()
			require.True(t, ok)
			assert.Equal(t, tc.first, got)
			assert.Equal(t, tc.name, tc.d.String())
		})
	}
	assert.Equal(t, "Discipline(7)", frontier.Discipline(7).String())
}

// TestInterleaved mixes adds and removes to exercise relinking in both containers.
func TestInterleaved(t *testing.T) {
	q := frontier.New[int](frontier.FIFO)
	s := frontier.New[int](frontier.LIFO)
	for _, f := range []frontier.Frontier[int]{q, s} {
		f.Add(1)
		f.Add(2)
		_, _ = f.Remove()
		f.Add(3)
	}
	assert.Equal(t, []int{2, 3}, q.Values())
	assert.Equal(t, []int{3, 1}, s.Values())
}
