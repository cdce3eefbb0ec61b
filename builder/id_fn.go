package builder

import (
	"fmt"
	"strconv"
)

// IDFn names the vertex at a zero-based index. It must be pure.
type IDFn func(idx int) string

// DefaultIDFn names vertices by their decimal index: "0", "1", ...
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// LetterIDFn names vertices with capital letters, continuing past "Z" with
// two letters: 0 is "A", 25 is "Z", 26 is "AA", 701 is "ZZ".
// Builders never pass a negative index; one panics.
func LetterIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("LetterIDFn: negative index %d", idx))
	}

	var name []byte
	for ; idx >= 0; idx = idx/26 - 1 {
		name = append([]byte{byte('A' + idx%26)}, name...)
	}

	return string(name)
}

// WithLetterIDs names built vertices with LetterIDFn.
func WithLetterIDs() BuilderOption {
	return WithIDScheme(LetterIDFn)
}
