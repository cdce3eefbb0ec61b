package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvwalk/builder"
)

func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		fn   builder.IDFn
		idx  int
		want string
	}{
		{builder.DefaultIDFn, 0, "0"},
		{builder.DefaultIDFn, 123, "123"},
		{builder.LetterIDFn, 0, "A"},
		{builder.LetterIDFn, 25, "Z"},
		{builder.LetterIDFn, 26, "AA"},
		{builder.LetterIDFn, 27, "AB"},
		{builder.LetterIDFn, 701, "ZZ"},
		{builder.LetterIDFn, 702, "AAA"},
	}
	for _, tc := range tests {
		assert.Equalf(t, tc.want, tc.fn(tc.idx), "index %d", tc.idx)
	}

	require.Panics(t, func() { builder.LetterIDFn(-1) })
}
